// Package database handles the database configuration section and the
// connection pool.
//
// It wraps GORM to apply the pool limits from configuration (max/min
// connections, idle and lifetime caps) and to verify connectivity with a
// bounded ping before the server starts accepting requests.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    return err // fatal at startup
//	}
package database
