package reconciliation

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"time"

	"reconciler/core/ingest"
	"reconciler/core/metrics"
	"reconciler/core/profile"
	"reconciler/core/recognize"
	"reconciler/core/reconcile"
	"reconciler/core/report"
	"reconciler/core/storage"
	"reconciler/core/utils"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

var (
	// ErrHistoryDisabled is returned by history operations when no database is connected.
	ErrHistoryDisabled = errors.New("run history is disabled: no database connection")
	// ErrStorageDisabled is returned by bucket operations when object storage is off.
	ErrStorageDisabled = errors.New("object storage is disabled")
	// ErrBadRequest marks malformed client input.
	ErrBadRequest = errors.New("bad request")
)

// RunConfig is the client supplied part of a reconciliation.
// Without mappings, mappings are suggested from the headers; without
// tolerances, defaults are derived from the mappings.
type RunConfig struct {
	Mappings      []reconcile.FieldMapping     `json:"mappings"`
	Tolerances    []reconcile.ToleranceSetting `json:"tolerances"`
	ReportUnkeyed *bool                        `json:"report_unkeyed,omitempty"`
}

// ProfileConfig turns a saved profile into a RunConfig. A profile that does not
// set report_unkeyed leaves the configured default in place.
func ProfileConfig(p *profile.Profile) *RunConfig {
	return &RunConfig{
		Mappings:      p.Mappings,
		Tolerances:    p.Tolerances,
		ReportUnkeyed: p.ReportUnkeyed,
	}
}

// Upload is a dataset file received from a client.
type Upload struct {
	Name string
	Data []byte
}

// Outcome is a finished reconciliation.
type Outcome struct {
	RunID      string                       `json:"run_id"`
	Cached     bool                         `json:"cached"`
	Saved      bool                         `json:"saved"`
	FileA      string                       `json:"file_a"`
	FileB      string                       `json:"file_b"`
	Mappings   []reconcile.FieldMapping     `json:"mappings"`
	Tolerances []reconcile.ToleranceSetting `json:"tolerances"`
	Report     *reconcile.Report            `json:"-"`
}

// Service runs reconciliations and manages their history.
type Service struct {
	store    *Store
	cache    *reconcile.Cache
	client   storage.Client
	storage  storage.Config
	defaults reconcile.Config
	logger   *zap.Logger
	now      func() time.Time
}

// NewService creates a service. store and client may be nil, which disables
// run history and object storage respectively.
func NewService(store *Store, client storage.Client, storageCfg storage.Config, defaults reconcile.Config, logger *zap.Logger) *Service {
	return &Service{
		store:    store,
		cache:    reconcile.NewCache(defaults.CacheTTL()),
		client:   client,
		storage:  storageCfg,
		defaults: defaults,
		logger:   logger,
		now:      time.Now,
	}
}

// HistoryEnabled reports whether runs are persisted.
func (s *Service) HistoryEnabled() bool {
	return s.store != nil
}

// Reconcile reconciles two parsed datasets and persists the run when history is enabled.
func (s *Service) Reconcile(ctx context.Context, a, b *reconcile.Dataset, cfg *RunConfig) (*Outcome, error) {
	return s.run(ctx, uuid.NewString(), a, b, cfg)
}

// ReconcileUploads parses two uploaded files, reconciles them and archives the
// raw uploads when object storage is enabled.
func (s *Service) ReconcileUploads(ctx context.Context, a, b Upload, cfg *RunConfig) (*Outcome, error) {
	dsA, err := ingest.Parse(a.Name, bytes.NewReader(a.Data))
	if err != nil {
		metrics.RunsTotal.WithLabelValues("invalid").Inc()
		return nil, err
	}
	dsB, err := ingest.Parse(b.Name, bytes.NewReader(b.Data))
	if err != nil {
		metrics.RunsTotal.WithLabelValues("invalid").Inc()
		return nil, err
	}

	runID := uuid.NewString()
	out, err := s.run(ctx, runID, dsA, dsB, cfg)
	if err != nil {
		return nil, err
	}

	if s.client != nil {
		s.archiveUploads(ctx, runID, a, b)
	}

	return out, nil
}

// archiveUploads stores the raw uploads next to the run. Failures are logged
// and do not fail the run.
func (s *Service) archiveUploads(ctx context.Context, runID string, a, b Upload) {
	if err := storage.EnsureBucket(ctx, s.client, s.storage.Bucket); err != nil {
		s.logger.Warn("Skipping upload archive", zap.String("run_id", runID), zap.Error(err))
		return
	}
	for _, side := range []struct {
		name string
		up   Upload
	}{{"a", a}, {"b", b}} {
		object := s.datasetObject(runID, side.name, side.up.Name)
		if err := storage.PutBytes(ctx, s.client, s.storage.Bucket, object, side.up.Data, "application/octet-stream"); err != nil {
			s.logger.Warn("Failed to archive upload", zap.String("run_id", runID), zap.String("object", object), zap.Error(err))
		}
	}
}

// ReconcileObjects reconciles two objects of the configured bucket.
func (s *Service) ReconcileObjects(ctx context.Context, objectA, objectB string, cfg *RunConfig) (*Outcome, error) {
	if s.client == nil {
		return nil, ErrStorageDisabled
	}
	if objectA == "" || objectB == "" {
		return nil, fmt.Errorf("%w: object_a and object_b are required", ErrBadRequest)
	}

	dsA, err := ingest.LoadObject(ctx, s.client, s.storage.Bucket, objectA)
	if err != nil {
		return nil, err
	}
	dsB, err := ingest.LoadObject(ctx, s.client, s.storage.Bucket, objectB)
	if err != nil {
		return nil, err
	}

	return s.run(ctx, uuid.NewString(), dsA, dsB, cfg)
}

// Input resolves cfg against the datasets into an engine input.
func (s *Service) Input(a, b *reconcile.Dataset, cfg *RunConfig) reconcile.Input {
	recognize.Annotate(a)
	recognize.Annotate(b)

	in := reconcile.Input{
		A:       a,
		B:       b,
		Options: reconcile.Options{ReportUnkeyed: s.defaults.ReportUnkeyed},
	}
	if cfg != nil {
		in.Mappings = cfg.Mappings
		in.Tolerances = cfg.Tolerances
		if cfg.ReportUnkeyed != nil {
			in.Options.ReportUnkeyed = *cfg.ReportUnkeyed
		}
	}
	if len(in.Mappings) == 0 {
		in.Mappings = recognize.SuggestMappings(a, b)
	}
	if in.Tolerances == nil {
		in.Tolerances = recognize.DefaultTolerances(in.Mappings)
	}
	return in
}

func (s *Service) run(ctx context.Context, runID string, a, b *reconcile.Dataset, cfg *RunConfig) (*Outcome, error) {
	in := s.Input(a, b, cfg)

	start := s.now()
	rep, hit, err := s.cache.GetOrRun(in)
	elapsed := s.now().Sub(start)
	if err != nil {
		outcome := "error"
		if reconcile.IsValidationError(err) {
			outcome = "invalid"
		}
		metrics.RunsTotal.WithLabelValues(outcome).Inc()
		return nil, err
	}

	metrics.RunDuration.Observe(elapsed.Seconds())
	metrics.RunsTotal.WithLabelValues("ok").Inc()
	if hit {
		metrics.CacheTotal.WithLabelValues("hit").Inc()
	} else {
		metrics.CacheTotal.WithLabelValues("miss").Inc()
	}
	for _, st := range reconcile.Statuses {
		if n := rep.Summary.Count(st); n > 0 {
			metrics.ResultsTotal.WithLabelValues(string(st)).Add(float64(n))
		}
	}

	s.logger.Info("Reconciliation completed",
		zap.String("run_id", runID),
		zap.String("file_a", a.Name),
		zap.String("file_b", b.Name),
		zap.Int("rows_a", rep.Summary.RowsA),
		zap.Int("rows_b", rep.Summary.RowsB),
		zap.Int("matched", rep.Summary.Matched),
		zap.Int("mismatched", rep.Summary.Mismatched),
		zap.Int("missing_in_a", rep.Summary.MissingInA),
		zap.Int("missing_in_b", rep.Summary.MissingInB),
		zap.Int("duplicates", rep.Summary.Duplicates),
		zap.Int("unkeyed", rep.Summary.Unkeyed),
		zap.Bool("cached", hit),
		zap.Duration("duration", elapsed),
	)

	out := &Outcome{
		RunID:      runID,
		Cached:     hit,
		FileA:      a.Name,
		FileB:      b.Name,
		Mappings:   in.Mappings,
		Tolerances: in.Tolerances,
		Report:     rep,
	}

	if s.store != nil {
		run, err := newRun(runID, in, rep, s.now())
		if err != nil {
			return nil, err
		}
		if err := s.store.Save(ctx, run, rep.Results); err != nil {
			return nil, err
		}
		out.Saved = true
	}

	return out, nil
}

// ListRuns returns recent runs, newest first.
func (s *Service) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if s.store == nil {
		return nil, ErrHistoryDisabled
	}
	if limit <= 0 {
		limit = s.historyLimit()
	}
	return s.store.List(ctx, utils.Clamp(limit, 1, s.historyLimit()))
}

func (s *Service) historyLimit() int {
	if s.defaults.HistoryLimit <= 0 {
		return 50
	}
	return s.defaults.HistoryLimit
}

// GetRun returns a stored run and its results.
func (s *Service) GetRun(ctx context.Context, id string) (*Run, []reconcile.Result, error) {
	if s.store == nil {
		return nil, nil, ErrHistoryDisabled
	}
	run, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	results, err := s.store.Results(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return run, results, nil
}

// Export writes the CSV report of a stored run, filtered by status and search.
func (s *Service) Export(ctx context.Context, id, status, search string, w io.Writer) error {
	run, results, err := s.GetRun(ctx, id)
	if err != nil {
		return err
	}
	mappings, err := run.FieldMappings()
	if err != nil {
		return err
	}
	return report.WriteCSV(w, report.Filter(results, status, search), mappings)
}

// Publish uploads the full CSV report of a run to the bucket and returns the object name.
func (s *Service) Publish(ctx context.Context, id string) (string, error) {
	if s.client == nil {
		return "", ErrStorageDisabled
	}

	var buf bytes.Buffer
	if err := s.Export(ctx, id, report.StatusAll, "", &buf); err != nil {
		return "", err
	}

	if err := storage.EnsureBucket(ctx, s.client, s.storage.Bucket); err != nil {
		return "", err
	}
	object := s.reportObject(id)
	if err := storage.PutBytes(ctx, s.client, s.storage.Bucket, object, buf.Bytes(), "text/csv"); err != nil {
		return "", err
	}
	if err := s.store.SetReportObject(ctx, id, object); err != nil {
		return "", err
	}

	s.logger.Info("Report published", zap.String("run_id", id), zap.String("object", object))
	return object, nil
}

// DeleteRun removes a run from history together with its archived uploads and
// published report.
func (s *Service) DeleteRun(ctx context.Context, id string) error {
	if s.store == nil {
		return ErrHistoryDisabled
	}
	run, err := s.store.Get(ctx, id)
	if err != nil {
		return err
	}

	if s.client != nil {
		removed, err := storage.RemovePrefix(ctx, s.client, s.storage.Bucket, s.datasetFolder(id))
		if err != nil {
			return err
		}
		if run.ReportObject != "" {
			if err := s.client.RemoveObject(ctx, s.storage.Bucket, run.ReportObject, minio.RemoveObjectOptions{}); err != nil {
				return fmt.Errorf("failed to remove report %s: %w", run.ReportObject, err)
			}
		}
		s.logger.Info("Run objects removed", zap.String("run_id", id), zap.Int("datasets", removed))
	}

	return s.store.Delete(ctx, id)
}

// InvalidateCache drops every cached report.
func (s *Service) InvalidateCache() {
	s.cache.Invalidate()
}

func (s *Service) datasetFolder(runID string) string {
	return path.Join(s.storage.DatasetPrefix, runID) + "/"
}

func (s *Service) datasetObject(runID, side, name string) string {
	return s.datasetFolder(runID) + side + "_" + filepath.Base(name)
}

func (s *Service) reportObject(runID string) string {
	return path.Join(s.storage.ReportPrefix, runID+".csv")
}
