package parts

import (
	"fmt"
	"strconv"
)

// Color is an RGB triple with an opacity in [0, 1].
type Color struct {
	Red   uint8   `json:"red" yaml:"red"`
	Green uint8   `json:"green" yaml:"green"`
	Blue  uint8   `json:"blue" yaml:"blue"`
	Alpha float64 `json:"alpha" yaml:"alpha"`
}

// NewColor returns an opaque color.
func NewColor(red, green, blue uint8) Color {
	return Color{Red: red, Green: green, Blue: blue, Alpha: 1}
}

// WithAlpha returns a copy of c with the given opacity. A nil alpha returns c
// unchanged.
func (c Color) WithAlpha(alpha *float64) Color {
	if alpha == nil {
		return c
	}
	c.Alpha = *alpha
	return c
}

// String renders the color in CSS rgba() notation.
func (c Color) String() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.Red, c.Green, c.Blue, strconv.FormatFloat(c.Alpha, 'f', -1, 64))
}
