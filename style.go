package pdfsplit

// RGB is a 24-bit color.
type RGB struct {
	R, G, B int
}

// Style groups the numeric rendering constants shared by the tile and map
// renderers. A Style is immutable for the duration of a run; build a
// modified copy of DefaultStyle instead of mutating package state.
type Style struct {
	MMToPoint    float64 // millimeter to PostScript point conversion
	FontFamily   string  // guide text font
	FontSize     float64 // guide text size, points
	GuideWidthMM float64 // guide line width, millimeters
	Gray         RGB     // guide and label color
	OutOfRange   string  // marker for positions outside the grid
}

// DefaultStyle returns the standard rendering constants.
func DefaultStyle() Style {
	return Style{
		MMToPoint:    2.83465,
		FontFamily:   "Helvetica",
		FontSize:     9,
		GuideWidthMM: 0.25,
		Gray:         RGB{R: 128, G: 128, B: 128},
		OutOfRange:   "□", // empty box
	}
}

// MarginPts converts a margin in millimeters to points.
func (s Style) MarginPts(mm float64) float64 {
	return mm * s.MMToPoint
}

// GuideWidthPts returns the guide line width in points.
func (s Style) GuideWidthPts() float64 {
	return s.GuideWidthMM * s.MMToPoint
}
