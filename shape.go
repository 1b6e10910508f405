package vecpath

// Kappa is the distance of a cubic Bézier's handles from its endpoints,
// relative to the radius, that best approximates a quarter circle.
const Kappa = 0.5522847498

// Rectangle returns the closed path around r, starting at r's origin and
// visiting the corners in the order (X0, Y0), (X1, Y0), (X1, Y1), (X0, Y1).
func Rectangle(r Rect) *Path {
	return NewPath(
		MoveTo(Pt(r.X0, r.Y0)),
		LineTo(Pt(r.X1, r.Y0)),
		LineTo(Pt(r.X1, r.Y1)),
		LineTo(Pt(r.X0, r.Y1)),
		Close(),
	)
}

// RoundedRectangle returns the closed path around r with rounded corners.
// Radii are not clamped; radii that exceed half the rectangle's width or
// height produce overlapping corners.
func RoundedRectangle(r Rect, radii RoundedRectRadii) *Path {
	x, y := r.X0, r.Y0
	w, h := r.Width(), r.Height()
	tl, tr, br, bl := radii.TopLeft, radii.TopRight, radii.BottomRight, radii.BottomLeft
	const k = 1 - Kappa

	return NewPath(
		MoveTo(Pt(x, y+tl)),
		CurveTo(Pt(x, y+tl*k), Pt(x+tl*k, y), Pt(x+tl, y)),
		LineTo(Pt(x+w-tr, y)),
		CurveTo(Pt(x+w-tr*k, y), Pt(x+w, y+tr*k), Pt(x+w, y+tr)),
		LineTo(Pt(x+w, y+h-br)),
		CurveTo(Pt(x+w, y+h-br*k), Pt(x+w-br*k, y+h), Pt(x+w-br, y+h)),
		LineTo(Pt(x+bl, y+h)),
		CurveTo(Pt(x+bl*k, y+h), Pt(x, y+h-bl*k), Pt(x, y+h-bl)),
		Close(),
	)
}

// Ellipse returns a closed path approximating the axis-aligned ellipse with
// the given center and radii, made of four cubic Béziers. It starts at the
// rightmost point and proceeds towards negative y first.
func Ellipse(center Point, rx, ry float64) *Path {
	cx, cy := center.X, center.Y
	return NewPath(
		MoveTo(Pt(cx+rx, cy)),
		CurveTo(Pt(cx+rx, cy-ry*Kappa), Pt(cx+rx*Kappa, cy-ry), Pt(cx, cy-ry)),
		CurveTo(Pt(cx-rx*Kappa, cy-ry), Pt(cx-rx, cy-ry*Kappa), Pt(cx-rx, cy)),
		CurveTo(Pt(cx-rx, cy+ry*Kappa), Pt(cx-rx*Kappa, cy+ry), Pt(cx, cy+ry)),
		CurveTo(Pt(cx+rx*Kappa, cy+ry), Pt(cx+rx, cy+ry*Kappa), Pt(cx+rx, cy)),
		Close(),
	)
}

// Circle returns a closed path approximating the circle with the given center
// and radius.
func Circle(center Point, r float64) *Path {
	return Ellipse(center, r, r)
}
