package deck

import "fmt"

// RGB is a 24-bit color.
type RGB struct {
	R, G, B uint8
}

// Hex returns the color as an uppercase RRGGBB hex string, the form OOXML
// expects in srgbClr values.
func (c RGB) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// White and Black are used as defaults throughout the package.
var (
	White = RGB{255, 255, 255}
	Black = RGB{0, 0, 0}
)
