// Package sqlite implements web storage over a single SQLite file.
package sqlite
