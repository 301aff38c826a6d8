// Package graph implements the pure, in-memory diagram model for taskgraph.
//
// Coordinates are canvas units with (0,0) at the top-left. Nodes and edges
// are identified by pointer; node ids are display numbers and may repeat
// after deletions.
package graph
