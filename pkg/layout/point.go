package layout

// Point represents an x/y coordinate in pixels.
type Point struct {
	X, Y float64
}

// Size represents a width/height pair in pixels.
type Size struct {
	Width, Height float64
}
