// Package victor provides an in-memory vector similarity index for Go.
//
// Victor stores fixed-dimension float32 vectors under a caller-chosen metric
// (Euclidean distance or cosine similarity) and answers best-match, top-N and
// threshold queries over a growing, mutable collection, safely under
// concurrent access.
//
// # Storage model
//
// Vectors live in fixed-capacity 1 MiB arenas ("buckets") chained as the
// collection grows, up to 128 buckets per table. Dimensions are padded to a
// multiple of 4 floats for SIMD-friendly layout. The 32-bit identifier
// returned by Insert encodes the vector's physical location (bucket and slot)
// and is never reused: Delete tombstones the slot and retires the identifier
// permanently.
//
// # Quick start
//
//	ctx := context.Background()
//	db, err := victor.New(4, victor.WithMetric(metric.Cosine))
//	if err != nil {
//		panic(err)
//	}
//	defer db.Close()
//
//	id, _ := db.Insert(ctx, []float32{1, 0, 0, 0})
//
//	best, _ := db.Search(ctx, []float32{1, 0, 0, 0})
//	top, _ := db.SearchN(ctx, []float32{1, 0, 0, 0}, 10)
//	hit, _ := db.SearchWithin(ctx, []float32{1, 0, 0, 0}, 0.9)
//
//	_ = db.Delete(ctx, id)
//
// SearchWithin returns the first candidate beating the threshold in scan
// order, not the global best; see the method documentation.
package victor
