package cms

const (
	fnvOffsetBasis uint64 = 14695981039346656037
	fnvPrime       uint64 = 1099511628211
)

// DefaultHash computes one 64-bit FNV-1a hash per row, mixing the row index
// into the offset basis so the rows act as independent hash functions.
func DefaultHash(depth uint32, key string) []uint64 {
	hashes := make([]uint64, depth)
	for i := uint32(0); i < depth; i++ {
		hashes[i] = fnv1a(key, uint64(i))
	}

	return hashes
}

// fnv1a is FNV-1a over key with the offset basis shifted by 31*seed. The
// stdlib hash/fnv exposes no way to alter the basis, so the loop is inlined
// here.
func fnv1a(key string, seed uint64) uint64 {
	h := fnvOffsetBasis + 31*seed
	for i := 0; i < len(key); i++ {
		h ^= uint64(key[i])
		h *= fnvPrime
	}

	return h
}
