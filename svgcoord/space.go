package svgcoord

// ObjectToUserSpace maps p, given in objectBoundingBox units (fractions
// of the box), to user space.
func ObjectToUserSpace(p Point, box Bounds) Point {
	return Point{X: box.X + p.X*box.W, Y: box.Y + p.Y*box.H}
}

// ObjectSizeToUserSpace scales the size p, given in fractions of box,
// to user space.
func ObjectSizeToUserSpace(p Point, box Bounds) Point {
	return Point{X: p.X * box.W, Y: p.Y * box.H}
}

// UserSpaceToObject is the inverse of ObjectToUserSpace.
// A zero sized axis of box gives 0 on that axis.
func UserSpaceToObject(p Point, box Bounds) Point {
	var out Point
	if box.W != 0 {
		out.X = (p.X - box.X) / box.W
	}
	if box.H != 0 {
		out.Y = (p.Y - box.Y) / box.H
	}
	return out
}

// UserSizeToObject is the inverse of ObjectSizeToUserSpace.
// A zero sized axis of box gives 0 on that axis.
func UserSizeToObject(p Point, box Bounds) Point {
	var out Point
	if box.W != 0 {
		out.X = p.X / box.W
	}
	if box.H != 0 {
		out.Y = p.Y / box.H
	}
	return out
}
