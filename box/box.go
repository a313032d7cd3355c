package box

import (
	"fmt"
	"math"
)

// Scalar is the coordinate type of vectors and boxes.
type Scalar interface {
	~float32 | ~float64
}

// V2 is a 2D corner vector.
type V2[S Scalar] struct {
	X, Y S
}

// V3 is a 3D corner vector.
type V3[S Scalar] struct {
	X, Y, Z S
}

// B2 is an axis-aligned 2D bounding box, described by its min and max
// corners. Boxes are immutable by convention: operations return new boxes.
type B2[S Scalar] struct {
	Min, Max V2[S]
}

// B3 is an axis-aligned 3D bounding box, described by its min and max
// corners. Boxes are immutable by convention: operations return new boxes.
type B3[S Scalar] struct {
	Min, Max V3[S]
}

// New2 creates a 2D box from two corner points. The corners need not be
// ordered; coordinates are normalized per axis.
func New2[S Scalar](a, b V2[S]) B2[S] {
	return B2[S]{
		Min: V2[S]{X: min(a.X, b.X), Y: min(a.Y, b.Y)},
		Max: V2[S]{X: max(a.X, b.X), Y: max(a.Y, b.Y)},
	}
}

// New3 creates a 3D box from two corner points. The corners need not be
// ordered; coordinates are normalized per axis.
func New3[S Scalar](a, b V3[S]) B3[S] {
	return B3[S]{
		Min: V3[S]{X: min(a.X, b.X), Y: min(a.Y, b.Y), Z: min(a.Z, b.Z)},
		Max: V3[S]{X: max(a.X, b.X), Y: max(a.Y, b.Y), Z: max(a.Z, b.Z)},
	}
}

// Cube creates a 3D box spanning [origin, origin+extent] on every axis.
func Cube[S Scalar](origin, extent S) B3[S] {
	return New3(V3[S]{X: origin, Y: origin, Z: origin},
		V3[S]{X: origin + extent, Y: origin + extent, Z: origin + extent})
}

// NaN2 returns the 2D sentinel box with all corners NaN. It is the
// defensive stand-in for "bounds of an empty tree".
func NaN2[S Scalar]() B2[S] {
	nan := S(math.NaN())
	return B2[S]{Min: V2[S]{X: nan, Y: nan}, Max: V2[S]{X: nan, Y: nan}}
}

// NaN3 returns the 3D sentinel box with all corners NaN.
func NaN3[S Scalar]() B3[S] {
	nan := S(math.NaN())
	return B3[S]{Min: V3[S]{X: nan, Y: nan, Z: nan}, Max: V3[S]{X: nan, Y: nan, Z: nan}}
}

// MergedWith returns the smallest box containing both b and other.
func (b B2[S]) MergedWith(other B2[S]) B2[S] {
	return B2[S]{
		Min: V2[S]{X: min(b.Min.X, other.Min.X), Y: min(b.Min.Y, other.Min.Y)},
		Max: V2[S]{X: max(b.Max.X, other.Max.X), Y: max(b.Max.Y, other.Max.Y)},
	}
}

// MergedWith returns the smallest box containing both b and other.
func (b B3[S]) MergedWith(other B3[S]) B3[S] {
	return B3[S]{
		Min: V3[S]{X: min(b.Min.X, other.Min.X), Y: min(b.Min.Y, other.Min.Y), Z: min(b.Min.Z, other.Min.Z)},
		Max: V3[S]{X: max(b.Max.X, other.Max.X), Y: max(b.Max.Y, other.Max.Y), Z: max(b.Max.Z, other.Max.Z)},
	}
}

// Volume returns the area of the box. 2D boxes use area as their volume
// measure for growth comparisons.
func (b B2[S]) Volume() S {
	return (b.Max.X - b.Min.X) * (b.Max.Y - b.Min.Y)
}

// Volume returns the volume of the box.
func (b B3[S]) Volume() S {
	return (b.Max.X - b.Min.X) * (b.Max.Y - b.Min.Y) * (b.Max.Z - b.Min.Z)
}

// Contains reports whether other lies completely inside b. A box contains
// itself; comparisons are inclusive.
func (b B2[S]) Contains(other B2[S]) bool {
	return b.Min.X <= other.Min.X && other.Max.X <= b.Max.X &&
		b.Min.Y <= other.Min.Y && other.Max.Y <= b.Max.Y
}

// Contains reports whether other lies completely inside b. A box contains
// itself; comparisons are inclusive.
func (b B3[S]) Contains(other B3[S]) bool {
	return b.Min.X <= other.Min.X && other.Max.X <= b.Max.X &&
		b.Min.Y <= other.Min.Y && other.Max.Y <= b.Max.Y &&
		b.Min.Z <= other.Min.Z && other.Max.Z <= b.Max.Z
}

// Intersects reports whether b and other overlap on every axis.
func (b B2[S]) Intersects(other B2[S]) bool {
	return b.Min.X <= other.Max.X && b.Max.X >= other.Min.X &&
		b.Min.Y <= other.Max.Y && b.Max.Y >= other.Min.Y
}

// Intersects reports whether b and other overlap on every axis.
func (b B3[S]) Intersects(other B3[S]) bool {
	return b.Min.X <= other.Max.X && b.Max.X >= other.Min.X &&
		b.Min.Y <= other.Max.Y && b.Max.Y >= other.Min.Y &&
		b.Min.Z <= other.Max.Z && b.Max.Z >= other.Min.Z
}

// Size returns the edge lengths of the box.
func (b B2[S]) Size() V2[S] {
	return V2[S]{X: b.Max.X - b.Min.X, Y: b.Max.Y - b.Min.Y}
}

// Size returns the edge lengths of the box.
func (b B3[S]) Size() V3[S] {
	return V3[S]{X: b.Max.X - b.Min.X, Y: b.Max.Y - b.Min.Y, Z: b.Max.Z - b.Min.Z}
}

// Center returns the center point of the box.
func (b B2[S]) Center() V2[S] {
	return V2[S]{X: (b.Min.X + b.Max.X) / 2, Y: (b.Min.Y + b.Max.Y) / 2}
}

// Center returns the center point of the box.
func (b B3[S]) Center() V3[S] {
	return V3[S]{X: (b.Min.X + b.Max.X) / 2, Y: (b.Min.Y + b.Max.Y) / 2, Z: (b.Min.Z + b.Max.Z) / 2}
}

// IsNaN reports whether any coordinate of the box is NaN.
func (b B2[S]) IsNaN() bool {
	return isNaN(b.Min.X) || isNaN(b.Min.Y) || isNaN(b.Max.X) || isNaN(b.Max.Y)
}

// IsNaN reports whether any coordinate of the box is NaN.
func (b B3[S]) IsNaN() bool {
	return isNaN(b.Min.X) || isNaN(b.Min.Y) || isNaN(b.Min.Z) ||
		isNaN(b.Max.X) || isNaN(b.Max.Y) || isNaN(b.Max.Z)
}

func (b B2[S]) String() string {
	return fmt.Sprintf("[ (%v %v) (%v %v) ]", b.Min.X, b.Min.Y, b.Max.X, b.Max.Y)
}

func (b B3[S]) String() string {
	return fmt.Sprintf("[ (%v %v %v) (%v %v %v) ]",
		b.Min.X, b.Min.Y, b.Min.Z, b.Max.X, b.Max.Y, b.Max.Z)
}

func isNaN[S Scalar](x S) bool {
	return math.IsNaN(float64(x))
}
