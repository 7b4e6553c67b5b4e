// Package terminology loads controlled terminology from CSV files and
// provides lookup, placeholder substitution, option listing and export in
// JSON, CSV and in-process record form. A Manager holds one loaded
// terminology set for its lifetime; reloading means a new Manager.
package terminology
