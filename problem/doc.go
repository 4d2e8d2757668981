// Package problem reads and writes TSP instance documents.
//
// A Document is either a list of cities (x, y, elevation) with a geo.Mode, or
// an explicit cost matrix. YAML is the file format; the same structure is
// accepted as JSON by the HTTP server. Missing edges are written as ".inf" or
// "inf" in YAML and as "inf" or null in JSON.
//
//	name: square
//	start: 0
//	matrix:
//	  - [inf, 10, 15, 20]
//	  - [5, inf, 9, 10]
//	  - [6, 13, inf, 12]
//	  - [8, 8, 9, inf]
package problem
