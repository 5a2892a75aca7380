// Package store provides SQLite-backed durable storage for todo items.
//
// The store is a single local file holding one table:
//
//	todos(id INTEGER PRIMARY KEY AUTOINCREMENT, title TEXT NOT NULL)
//
// Identifiers are assigned by SQLite and are strictly increasing. Records are
// only ever appended; nothing in this package updates or deletes a row.
//
// # Database Configuration
//
//   - WAL mode
//   - synchronous=FULL: every committed insert is on disk
//   - busy_timeout=5000: wait for locks up to 5 seconds
//
// Writers in separate processes sharing one file are not coordinated beyond
// SQLite's own locking.
//
// Every failure returned by a Store method wraps ErrStorageUnavailable.
package store
