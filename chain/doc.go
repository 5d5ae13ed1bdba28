// Package chain implements dense 1-chains and 2-chains over a shared,
// read-only mesh.Mesh reference: a 1-chain assigns a real coefficient to
// each mesh edge, a 2-chain to each triangle.
//
// A Chain holds a non-owning reference to the mesh whose table it indexes;
// the mesh must outlive every chain built against it, and no chain aliases
// another's coefficient storage.
package chain
