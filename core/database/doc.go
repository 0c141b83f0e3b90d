// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM to configure MySQL (production) or SQLite
// (local development and tests) connections based on the application's configuration.
//
// # Connect
//
// Connect opens the database, tunes the connection pool and pings it with the
// configured timeout. SQLite is pinned to a single connection so that in-memory
// databases survive across queries and transactions.
//
// # Schema Inspection
//
// GetTableColumns lists a table's live columns, which the integrity feature compares
// against the GORM models of teams, inventory parts and builds.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "inventory_parts")
package database
