// Package unionfind is an in-memory disjoint-set (union–find) forest together
// with the connectivity algorithms built on it.
//
//	dsu/          - Forest: Find with path compression, Union by size, Size, Count
//	prim_kruskal/ - minimum spanning tree (Kruskal over dsu, Prim as cross-check)
//	acquaintance/ - earliest moment a group becomes fully connected
//	malware/      - which infected node to remove to minimize malware spread
//	cmd/unionfind - runs YAML scenarios for the packages above
//
// Quick ASCII example:
//
//	0───1   2───3      Union(0,1), Union(2,3)
//	                   Count() == 2, Size(0) == 2
//
// Library packages have no dependencies beyond dsu and the standard library
// and are not safe for concurrent use.
//
//	go get github.com/katalvlaran/unionfind/dsu
package unionfind
