// Package app ties the command line to the renderer: it resolves the
// settings to draw with, renders the figure onto a canvas and saves both
// the picture and, when asked, the settings snapshot.
package app
