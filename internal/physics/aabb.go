package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// EmptyBox returns a box with inverted infinite extents. It is the identity for Union
// and never intersects anything.
func EmptyBox() rl.BoundingBox {
	inf := math32.Inf(1)
	return rl.NewBoundingBox(
		rl.NewVector3(inf, inf, inf),
		rl.NewVector3(-inf, -inf, -inf),
	)
}

// IsEmpty reports whether b encloses no volume on at least one axis.
func IsEmpty(b rl.BoundingBox) bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// BoxFromCenterAndSize returns the box of the given full size centered on center.
func BoxFromCenterAndSize(center, size rl.Vector3) rl.BoundingBox {
	half := rl.Vector3Scale(size, 0.5)
	return rl.NewBoundingBox(rl.Vector3Subtract(center, half), rl.Vector3Add(center, half))
}

// Union returns the smallest box enclosing both a and b.
func Union(a, b rl.BoundingBox) rl.BoundingBox {
	return rl.NewBoundingBox(rl.Vector3Min(a.Min, b.Min), rl.Vector3Max(a.Max, b.Max))
}

// TransformBox returns the axis-aligned box enclosing all eight corners of b after
// transforming them by m. An empty box stays empty.
func TransformBox(b rl.BoundingBox, m rl.Matrix) rl.BoundingBox {
	if IsEmpty(b) {
		return b
	}
	out := EmptyBox()
	for i := 0; i < 8; i++ {
		corner := b.Min
		if i&1 != 0 {
			corner.X = b.Max.X
		}
		if i&2 != 0 {
			corner.Y = b.Max.Y
		}
		if i&4 != 0 {
			corner.Z = b.Max.Z
		}
		p := rl.Vector3Transform(corner, m)
		out.Min = rl.Vector3Min(out.Min, p)
		out.Max = rl.Vector3Max(out.Max, p)
	}
	return out
}

// Intersects reports whether a and b overlap on all three axes. Overlap is strict:
// boxes that only share a face, edge or corner do not intersect.
func Intersects(a, b rl.BoundingBox) bool {
	return a.Max.X > b.Min.X && a.Min.X < b.Max.X &&
		a.Max.Y > b.Min.Y && a.Min.Y < b.Max.Y &&
		a.Max.Z > b.Min.Z && a.Min.Z < b.Max.Z
}
