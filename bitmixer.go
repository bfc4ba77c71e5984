package fsa

// mix32 is the 32-bit finalization step of MurmurHash3.
func mix32(v int) uint32 {
	k := uint32(v)
	k = (k ^ (k >> 16)) * 0x85ebca6b
	k = (k ^ (k >> 13)) * 0xc2b2ae35
	return k ^ (k >> 16)
}

// hashSet hashes a set of handles independently of their order.
func hashSet(values []int) uint64 {
	h := uint64(len(values))
	for _, v := range values {
		h += uint64(mix32(v))
	}
	return h
}

// hashSeq hashes a sequence of handles; order matters.
func hashSeq(values []int) uint64 {
	h := uint64(len(values))
	for _, v := range values {
		h = h*31 + uint64(mix32(v))
	}
	return h
}
