package common

import "github.com/go-gl/mathgl/mgl64"

type Vec3 = mgl64.Vec3

type IT interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// CopySlice returns a fresh slice holding the elements of src, or nil when src is empty.
func CopySlice[T any](src []T) []T {
	if len(src) == 0 {
		return nil
	}
	dst := make([]T, len(src))
	copy(dst, src)
	return dst
}
