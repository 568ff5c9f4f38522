// Package storage defines where exported game data goes.
//
// Exports are one way: the loaded catalogs remain the source of truth, and the
// stored rows are a snapshot for tools that cannot read the data files.
package storage
