package vga

// Color is a 4-bit VGA text-mode palette index.
type Color uint8

const (
	Black Color = iota
	Blue
	Green
	Cyan
	Red
	Magenta
	Brown
	LightGray
	DarkGray
	LightBlue
	LightGreen
	LightCyan
	LightRed
	Pink
	Yellow
	White
)

var colorNames = [16]string{
	"black", "blue", "green", "cyan", "red", "magenta", "brown", "light_gray",
	"dark_gray", "light_blue", "light_green", "light_cyan", "light_red", "pink",
	"yellow", "white",
}

func (c Color) String() string {
	if c > White {
		return "unknown"
	}
	return colorNames[c]
}

// ColorCode is a packed attribute byte: background in the high nibble,
// foreground in the low nibble.
type ColorCode uint8

// NewColorCode packs fg and bg. Only the low four bits of each are used.
func NewColorCode(fg, bg Color) ColorCode {
	return ColorCode((bg&0x0F)<<4 | fg&0x0F)
}

func (c ColorCode) Foreground() Color { return Color(c & 0x0F) }
func (c ColorCode) Background() Color { return Color(c >> 4) }

// DefaultColor is white on black.
var DefaultColor = NewColorCode(White, Black)

// Cell is one character and its attribute.
type Cell struct {
	Char  byte
	Color ColorCode
}

// word returns the cell as the device stores it: character in the low byte,
// attribute in the high byte.
func (c Cell) word() uint16 {
	return uint16(c.Color)<<8 | uint16(c.Char)
}

func cellFromWord(v uint16) Cell {
	return Cell{Char: byte(v), Color: ColorCode(v >> 8)}
}
