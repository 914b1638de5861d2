// Package acquaintance answers "when did everyone become connected?" over a
// timestamped log of pairwise meetings among n people numbered 0..n-1.
//
// Friendship is transitive: once a and b, and b and c, have met, a and c are
// acquainted. Logs are replayed in ascending (Timestamp, A, B) order through a
// dsu.Forest; the answer is the timestamp of the first log after which the set
// containing its participants has size n.
//
//   - EarliestAcq(logs, n) - that timestamp, or ErrNeverAcquainted.
//   - Timeline(logs, n)    - every log that merged two groups, with the number
//     of groups left and the largest group size after it.
//
// The input slice is never reordered.
package acquaintance
