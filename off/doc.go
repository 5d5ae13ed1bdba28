// Package off parses the OFF mesh file subset used to load a triangulated
// 2-complex: an "OFF" header line, a vertex/edge/face count line, one
// "x y z" line per vertex, then one "3 i j k" line per triangular face.
// Lines beginning with '#' are comments and are skipped.
package off
