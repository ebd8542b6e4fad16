// Package preset holds the catalogue of built-in figures and the snapshot
// of the settings a figure is drawn with. Both are stored as HCL.
package preset
