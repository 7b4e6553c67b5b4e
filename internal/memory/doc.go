// Package memory provides a persistent translation memory backed by SQLite.
// Engine results are stored per engine and language pair so repeated runs
// do not pay for the same API call twice.
package memory
