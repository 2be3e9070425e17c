// Package model defines the calendar value types shared across the engine
// and the UI: day identity keys, grid entries, month section identifiers,
// and generated period grids. All types are comparable value types designed
// for direct use as map keys and for structural equality.
package model
