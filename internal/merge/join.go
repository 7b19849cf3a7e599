package merge

import "cmp"

// Join performs an ordered full outer join over two key-sorted slices.
// Both slices must already be sorted ascending by their key; the scan is
// linear, advancing whichever side holds the smaller key. Exactly one of
// the callbacks fires per element: both when a key exists on both sides,
// leftOnly/rightOnly otherwise. Callbacks fire in ascending key order.
func Join[L, R any, K cmp.Ordered](
	left []L,
	right []R,
	leftKey func(L) K,
	rightKey func(R) K,
	both func(L, R),
	leftOnly func(L),
	rightOnly func(R),
) {
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		lk, rk := leftKey(left[i]), rightKey(right[j])
		switch {
		case lk == rk:
			both(left[i], right[j])
			i++
			j++
		case lk < rk:
			leftOnly(left[i])
			i++
		default:
			rightOnly(right[j])
			j++
		}
	}
	for ; i < len(left); i++ {
		leftOnly(left[i])
	}
	for ; j < len(right); j++ {
		rightOnly(right[j])
	}
}
