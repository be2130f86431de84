package common

import (
	"cmp"
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var ErrNotInvertible = errors.New("common: projection times modelview is not invertible")

// Abs returns the absolute value.
func Abs[T IT](a T) T {
	if a < 0 {
		return -a
	}
	return a
}

// Clamp returns value clamped to [minInclusive, maxInclusive].
func Clamp[T cmp.Ordered](value, minInclusive, maxInclusive T) T {
	if value < minInclusive {
		return minInclusive
	}
	if value > maxInclusive {
		return maxInclusive
	}
	return value
}

// IsFinite reports whether every component of v is a finite number.
func IsFinite(v Vec3) bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// Vdist returns the distance between two points.
func Vdist(v1, v2 Vec3) float64 {
	return v1.Sub(v2).Len()
}

// GluProject maps an object-space point to window coordinates with depth in [0,1].
func GluProject(obj Vec3, modelview, projection mgl64.Mat4, view [4]int) Vec3 {
	return mgl64.Project(obj, modelview, projection, view[0], view[1], view[2], view[3])
}

// GluUnProject maps window coordinates (x, y, depth) back to object space.
func GluUnProject(win Vec3, modelview, projection mgl64.Mat4, view [4]int) (Vec3, error) {
	if view[2] <= 0 || view[3] <= 0 {
		return Vec3{}, ErrNotInvertible
	}
	obj, err := mgl64.UnProject(win, modelview, projection, view[0], view[1], view[2], view[3])
	if err != nil {
		return Vec3{}, ErrNotInvertible
	}
	return obj, nil
}

// GluPickMatrix returns the matrix that, multiplied in front of a projection,
// maps the dx by dy pixel region centred on window point (x, y) onto the whole
// clip volume.
func GluPickMatrix(x, y, dx, dy float64, view [4]int) mgl64.Mat4 {
	if dx <= 0 || dy <= 0 {
		return mgl64.Ident4()
	}
	vw, vh := float64(view[2]), float64(view[3])
	t := mgl64.Translate3D(
		(vw-2*(x-float64(view[0])))/dx,
		(vh-2*(y-float64(view[1])))/dy,
		0)
	return t.Mul4(mgl64.Scale3D(vw/dx, vh/dy, 1))
}
