// Package metric implements the similarity strategies available to victor
// tables: Euclidean (L2) distance and cosine similarity.
//
// The two metrics order their scores in opposite directions, so a Strategy
// carries the ordering alongside the score function:
//
//   - L2: lower score is better, worst sentinel is +Inf
//   - Cosine: higher score is better, worst sentinel is -1.0
//
// Score kernels are SIMD-accelerated via github.com/viant/vec.
package metric
