// Package core holds the central Graph, Vertex, and Edge types of the
// dependency engine: files, entities, and mappings as typed vertices,
// connected by FileEntity/FileMapping/EntitySource/EntityTarget edges.
//
// Graph uses two separate sync.RWMutex locks (muVert for the vertex
// catalog, muEdgeAdj for edges and adjacency) so concurrent readers
// (subgraph queries, counts, lookups) never block each other. A single
// ingestion session must still not interleave with reader sessions: the
// locks guard against individual operations racing bookkeeping, not
// against two whole sessions sharing a store concurrently.
//
// Descendants/Neighborhood/FindCycle are not hand-rolled traversals: they
// delegate to the bfs and dfs packages through small adapters (see
// reachability.go), so the one BFS/DFS implementation backs both directed
// reachability queries and acyclicity checking.
package core
