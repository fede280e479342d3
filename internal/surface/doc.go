// Package surface provides drawing targets for the glitch engine: a raster
// canvas backed by gg and a terminal cell buffer rendered with lipgloss.
package surface
