package xfloat

// RandSource is satisfied by math/rand.Rand and friends.
type RandSource interface {
	Uint64() uint64
}

// RandDS returns a uniformly distributed value in [0, 1) carrying 48 random
// bits.
func RandDS(source RandSource) DS {
	v := source.Uint64()
	hi := float32(v>>40) * 0x1p-24
	lo := float32((v>>16)&0xFFFFFF) * 0x1p-48
	return DSFromSum(hi, lo)
}

// DifferenceDD subtracts the smaller of a and b from the larger. NaN in
// either gives NaN.
func DifferenceDD(a, b DD) DD {
	if a.IsNaN() || b.IsNaN() {
		return ddNaN
	}
	if a.hi > b.hi {
		return a.Sub(b)
	} else if a.hi < b.hi {
		return b.Sub(a)
	} else if a.lo > b.lo {
		return a.Sub(b)
	} else if a.lo < b.lo {
		return b.Sub(a)
	}
	return DD{}
}

// LargerDD returns the larger of a and b, or NaN if either is NaN.
func LargerDD(a, b DD) DD {
	if a.IsNaN() || b.IsNaN() {
		return ddNaN
	}
	if a.hi > b.hi {
		return a
	} else if a.hi < b.hi {
		return b
	} else if a.lo > b.lo {
		return a
	} else if a.lo < b.lo {
		return b
	}
	return a
}

// SmallerDD returns the smaller of a and b, or NaN if either is NaN.
func SmallerDD(a, b DD) DD {
	if a.IsNaN() || b.IsNaN() {
		return ddNaN
	}
	if a.hi < b.hi {
		return a
	} else if a.hi > b.hi {
		return b
	} else if a.lo < b.lo {
		return a
	} else if a.lo > b.lo {
		return b
	}
	return a
}
