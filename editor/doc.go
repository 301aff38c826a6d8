// Package editor provides a Bubble Tea diagram editor component backed by
// the graph package.
//
// The package is responsible for mouse and key handling, the rename prompt,
// full-redraw rendering onto a terminal cell surface, the placeholder pass
// count display, PNG export and change events.
package editor
