// Package render draws a graph onto a 2D drawing surface.
//
// Every call to Draw repaints the whole surface: edges first, then nodes, so
// node outlines are never covered by edge strokes.
package render
