// Package services implements the driving port interfaces with core
// business logic. Services validate identifiers before any SQL is built
// and delegate execution to driven ports (the SQLite schema store).
package services
