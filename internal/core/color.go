package core

// Color is the role of a screen cell's foreground. The terminal front end
// maps each role to a concrete style through its theme, so the board code
// never names a terminal color.
type Color uint8

const (
	ColorDefault Color = iota
	ColorTitle         // HUD header line
	ColorText          // quota counts, in-bounds lattice points
	ColorMuted         // grid lines, footer, out-of-bounds points
	ColorSquare
	ColorTriangle
	ColorCircle
	ColorPath
	ColorStart
	ColorEnd
	ColorHover       // hovered point the path would accept
	ColorHoverMuted  // hovered point the path would reject
	ColorGood        // solved result
	ColorBad         // unsolved result

	colorCount
)

var colorNames = [colorCount]string{
	"default", "title", "text", "muted",
	"square", "triangle", "circle",
	"path", "start", "end", "hover", "hover-muted",
	"good", "bad",
}

// String returns the role name.
func (c Color) String() string {
	if c < colorCount {
		return colorNames[c]
	}
	return "unknown"
}

// Colors lists every role in declaration order.
func Colors() []Color {
	out := make([]Color, 0, colorCount)
	for c := ColorDefault; c < colorCount; c++ {
		out = append(out, c)
	}
	return out
}
