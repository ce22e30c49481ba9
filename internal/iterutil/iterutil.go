// The code in this package is derivative of https://github.com/jub0bs/iterutil (all credit to jub0bs).
// Mount of this source code is governed by a MIT License that can be found
// at https://github.com/jub0bs/iterutil/blob/main/LICENSE.

package iterutil

import "iter"

// SeqOf yields elems in order. It's used to turn a slice collected once
// (e.g. a struct's exported field names) into an iter.Seq, which the
// reflection adapter's Fields walks to build its iter.Seq2.
func SeqOf[E any](elems ...E) iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, e := range elems {
			if !yield(e) {
				return
			}
		}
	}
}

// Left projects the keys out of a Seq2, used to enumerate a Mapping's
// keys without building an intermediate slice.
func Left[K, V any](seq iter.Seq2[K, V]) iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range seq {
			if !yield(k) {
				return
			}
		}
	}
}

// Right projects the values out of a Seq2, used to enumerate a Mapping's
// values without building an intermediate slice.
func Right[K, V any](seq iter.Seq2[K, V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range seq {
			if !yield(v) {
				return
			}
		}
	}
}
