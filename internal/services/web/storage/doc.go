// Package storage declares persistence contracts for translation projects,
// accounts, the contact inbox and the machine translation cache.
package storage
