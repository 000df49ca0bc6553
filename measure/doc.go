// Package measure reports how wide a string renders.
//
// Every Measurer rounds up so that a box sized from a measurement never
// clips the last glyph. Empty text always measures 0.
package measure

// Measurer returns the rendered width of text in the measurer's unit
// (pixels for Font, terminal cells for Cells).
type Measurer interface {
	Measure(text string) int
}

// Func adapts a plain function to Measurer.
type Func func(text string) int

func (f Func) Measure(text string) int {
	if f == nil || text == "" {
		return 0
	}
	return f(text)
}
