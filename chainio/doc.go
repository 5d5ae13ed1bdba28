// Package chainio loads and saves chain files and current (polygonal path)
// files against a fixed mesh.
package chainio
