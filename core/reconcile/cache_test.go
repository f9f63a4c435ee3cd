package reconcile

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cacheInput(amount string) Input {
	a := Dataset{Name: "a", Rows: []Row{{"id": "1", "amt": "100"}}}
	b := Dataset{Name: "b", Rows: []Row{{"id": "1", "amt": amount}}}
	return Input{
		A:          &a,
		B:          &b,
		Mappings:   amountMappings(),
		Tolerances: amountTolerance(0.01),
	}
}

// TestCache_Disabled always recomputes.
func TestCache_Disabled(t *testing.T) {
	c := NewCache(0)

	first, hit, err := c.GetOrRun(cacheInput("100"))
	require.NoError(t, err)
	assert.False(t, hit)

	second, hit, err := c.GetOrRun(cacheInput("100"))
	require.NoError(t, err)
	assert.False(t, hit)
	assert.NotSame(t, first, second)
	assert.Equal(t, 0, c.Len())
}

// TestCache_HitAndExpiry checks reuse within the TTL and rebuild after it.
func TestCache_HitAndExpiry(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewCache(time.Minute)
	c.now = func() time.Time { return now }

	first, hit, err := c.GetOrRun(cacheInput("100"))
	require.NoError(t, err)
	assert.False(t, hit)

	second, hit, err := c.GetOrRun(cacheInput("100"))
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Same(t, first, second)

	other, hit, err := c.GetOrRun(cacheInput("200"))
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, StatusMismatched, other.Results[0].Status)
	assert.Equal(t, 2, c.Len())

	now = now.Add(2 * time.Minute)
	third, hit, err := c.GetOrRun(cacheInput("100"))
	require.NoError(t, err)
	assert.False(t, hit)
	assert.NotSame(t, first, third)
	assert.Equal(t, first.Results, third.Results)

	c.Invalidate()
	assert.Equal(t, 0, c.Len())
}

// TestCache_ValidationErrorNotCached checks errors propagate and are not stored.
func TestCache_ValidationErrorNotCached(t *testing.T) {
	c := NewCache(time.Minute)
	in := cacheInput("100")
	in.Mappings = in.Mappings[1:]

	_, _, err := c.GetOrRun(in)
	assert.ErrorIs(t, err, ErrNoReferenceMapping)
	assert.Equal(t, 0, c.Len())
}

// TestCache_Concurrent checks concurrent callers agree on the result.
func TestCache_Concurrent(t *testing.T) {
	c := NewCache(time.Minute)

	var wg sync.WaitGroup
	reports := make([]*Report, 16)
	for i := range reports {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r, _, err := c.GetOrRun(cacheInput("100"))
			assert.NoError(t, err)
			reports[i] = r
		}(i)
	}
	wg.Wait()

	for _, r := range reports {
		require.NotNil(t, r)
		assert.Equal(t, reports[0].Results, r.Results)
	}
	assert.Equal(t, 1, c.Len())
}

func TestDigest(t *testing.T) {
	d1, err := Digest(cacheInput("100"))
	require.NoError(t, err)
	d2, err := Digest(cacheInput("100"))
	require.NoError(t, err)
	d3, err := Digest(cacheInput("101"))
	require.NoError(t, err)

	assert.Equal(t, d1, d2)
	assert.NotEqual(t, d1, d3)
	assert.Len(t, d1, 64)
}

// TestCache_EvictsExpired keeps the map bounded when inputs never repeat.
func TestCache_EvictsExpired(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewCache(time.Second)
	c.now = func() time.Time { return now }

	for i := 0; i < 200; i++ {
		_, _, err := c.GetOrRun(cacheInput(fmt.Sprint(i)))
		require.NoError(t, err)
		now = now.Add(time.Hour)
	}
	assert.Equal(t, 1, c.Len())
}

// TestCache_MaxEntries evicts the oldest report once the cap is reached.
func TestCache_MaxEntries(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewCache(time.Hour)
	c.maxEntries = 3
	c.now = func() time.Time { return now }

	for i := 0; i < 5; i++ {
		_, _, err := c.GetOrRun(cacheInput(fmt.Sprint(i)))
		require.NoError(t, err)
		now = now.Add(time.Second)
	}
	assert.Equal(t, 3, c.Len())

	// "0" was evicted, "4" is still cached.
	_, hit, err := c.GetOrRun(cacheInput("4"))
	require.NoError(t, err)
	assert.True(t, hit)
	_, hit, err = c.GetOrRun(cacheInput("0"))
	require.NoError(t, err)
	assert.False(t, hit)
}
