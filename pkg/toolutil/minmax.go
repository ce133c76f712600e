package toolutil

import (
	"golang.org/x/exp/constraints"
)

// Max 返回一组有序值中的最大值，至少要传一个
func Max[T constraints.Ordered](first T, rest ...T) T {
	m := first
	for _, v := range rest {
		if v > m {
			m = v
		}
	}
	return m
}

// Min 返回一组有序值中的最小值，至少要传一个
func Min[T constraints.Ordered](first T, rest ...T) T {
	m := first
	for _, v := range rest {
		if v < m {
			m = v
		}
	}
	return m
}

// MaxOf 返回切片里的最大值，空切片返回 (零值, false)
func MaxOf[T constraints.Ordered](xs []T) (T, bool) {
	if len(xs) == 0 {
		var zero T
		return zero, false
	}
	return Max(xs[0], xs[1:]...), true
}
