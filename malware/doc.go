// Package malware ranks initially infected nodes of a network by how much
// malware spread their removal prevents.
//
// The network is an n×n adjacency matrix (non-zero = link). Infection spreads
// from every initially infected node to its whole connected component.
// Two variants are supported:
//
//   - Quarantine (MinimizeSpread): the chosen node stays in the network and
//     only stops being initially infected. It saves its component only if no
//     other initial node sits in the same component.
//
//   - Removal (MinimizeSpreadRemoval): the chosen node and all its links are
//     deleted. Clean nodes are grouped into components without the infected
//     nodes; a clean component is saved only if the chosen node is the sole
//     infected node adjacent to it.
//
// Both answers pick the node with the largest saving, ties broken by the
// smallest node index. Impact exposes the per-node savings behind either answer.
//
// Components are computed with a dsu.Forest: O(n²·α(n)) for the matrix scan.
package malware
