package database

// Config holds configuration for the run history database.
type Config struct {
	// Driver selects the gorm dialector: mysql or sqlite.
	Driver string `mapstructure:"driver" default:"sqlite"`
	// Host is the MySQL host.
	Host string `mapstructure:"host" default:"localhost"`
	// Port is the MySQL port.
	Port int `mapstructure:"port" default:"3306"`
	// User is the MySQL user.
	User string `mapstructure:"user" default:"root"`
	// Password is the MySQL password.
	Password string `mapstructure:"password" default:""`
	// Name is the MySQL schema, or the SQLite file path (":memory:" allowed).
	Name string `mapstructure:"name" default:"reconciler.db"`
	// TimeoutSeconds bounds connection setup, reads and writes.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
