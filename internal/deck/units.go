package deck

// EMU is an English Metric Unit, the native OOXML coordinate unit.
// 914400 EMU = 1 inch; 12700 EMU = 1 point.
type EMU int64

const (
	// EMUPerInch is the number of EMUs in one inch.
	EMUPerInch EMU = 914400
	// EMUPerPoint is the number of EMUs in one typographic point.
	EMUPerPoint EMU = 12700
)

// Inches converts inches to EMUs.
func Inches(in float64) EMU {
	return EMU(in * float64(EMUPerInch))
}

// Points converts typographic points to EMUs. Used for line widths.
func Points(pt float64) EMU {
	return EMU(pt * float64(EMUPerPoint))
}

// centipoints returns a font size in hundredths of a point, the unit of the
// sz attribute on run properties.
func centipoints(pt float64) int {
	return int(pt * 100)
}
