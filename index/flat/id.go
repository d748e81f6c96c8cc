package flat

// Identifier layout: bits 31-24 carry the signed bucket index, bits 23-0 the
// unsigned slot index within that bucket. The 8-bit bucket field hard-caps a
// table at 128 buckets; widening the cap means widening the identifier, not
// silently changing maxBuckets.
const (
	slotBits = 24
	slotMask = 1<<slotBits - 1
)

// maxBuckets bounds the bucket chain. Load-bearing for the identifier
// encoding above.
const maxBuckets = 128

func encodeID(bucket int8, slot uint32) int32 {
	return int32(bucket)<<slotBits | int32(slot&slotMask)
}

func decodeID(id int32) (bucket, slot int) {
	return int(int8(id >> slotBits)), int(id & slotMask)
}
