// Package database provides the SQLite connection for the optional local
// sensor history store.
//
// The schema is a single table owned by the history package; there is no
// migration chain. The database file lives wherever history.path in
// config.yaml points and is created on first use.
package database
