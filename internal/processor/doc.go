// Package processor contains the core business logic for translation runs.
// It orchestrates terminology loading, engine selection, the optional
// translation memory and batch processing. This package serves as the main
// coordinator between all other components.
package processor
