package net

// Enabled reports whether transition t is enabled at the marking given by
// mask: every input place holds a token, and every pure-output place
// (post(t)\pre(t)) is empty.
func Enabled(mask uint64, t Transition) bool {
	if mask&t.PreMask != t.PreMask {
		return false
	}
	return mask&t.PureOutputMask() == 0
}

// Fire computes the successor marking of firing t at mask, as a total
// function over two bitmask checks plus a mask rewrite:
//
//   - enabled check:   (m & pre) == pre
//   - 1-safety check:  (m & (post &^ pre)) == 0
//   - next:            (m &^ pre) | post
//
// It returns (next, true) when both checks pass, or (0, false) otherwise.
// Self-looped places (in both Pre and Post) pass the 1-safety check
// automatically and remain set in next.
func Fire(mask uint64, t Transition) (next uint64, ok bool) {
	if !Enabled(mask, t) {
		return 0, false
	}
	return (mask &^ t.PreMask) | t.PostMask, true
}

// MaskToTuple expands a bitmask marking into a tuple of 0/1 values ordered
// by place index, the inverse of TupleToMask.
func MaskToTuple(mask uint64, numPlaces int) []int {
	tuple := make([]int, numPlaces)
	for i := 0; i < numPlaces; i++ {
		tuple[i] = int((mask >> uint(i)) & 1)
	}
	return tuple
}

// TupleToMask packs a tuple of 0/1 values into a bitmask, the inverse of
// MaskToTuple. Values other than 0 are treated as 1.
func TupleToMask(tuple []int) uint64 {
	var mask uint64
	for i, v := range tuple {
		if v != 0 {
			mask |= 1 << uint(i)
		}
	}
	return mask
}
