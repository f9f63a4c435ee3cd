// Package database opens the optional run history database and inspects its schema.
//
// Connect wraps gorm with either the MySQL or the SQLite dialector, chosen by
// Config.Driver. SQLite needs no server and is the default; ":memory:" is useful
// in tests.
//
// GetTableColumns and MissingColumns back the integrity check, which verifies
// that the run history tables carry every column the models expect.
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Warn("Run history disabled", zap.Error(err))
//	}
package database
