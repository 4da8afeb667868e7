package hal

// Palette is the standard 16-colour VGA text-mode palette in 8-bit RGB,
// indexed by the 4-bit colour code.
var Palette = [16][3]uint8{
	{0x00, 0x00, 0x00}, // black
	{0x00, 0x00, 0xAA}, // blue
	{0x00, 0xAA, 0x00}, // green
	{0x00, 0xAA, 0xAA}, // cyan
	{0xAA, 0x00, 0x00}, // red
	{0xAA, 0x00, 0xAA}, // magenta
	{0xAA, 0x55, 0x00}, // brown
	{0xAA, 0xAA, 0xAA}, // light gray
	{0x55, 0x55, 0x55}, // dark gray
	{0x55, 0x55, 0xFF}, // light blue
	{0x55, 0xFF, 0x55}, // light green
	{0x55, 0xFF, 0xFF}, // light cyan
	{0xFF, 0x55, 0x55}, // light red
	{0xFF, 0x55, 0xFF}, // pink
	{0xFF, 0xFF, 0x55}, // yellow
	{0xFF, 0xFF, 0xFF}, // white
}

// splitCell unpacks a text cell word into character, foreground and
// background palette indices.
func splitCell(v uint16) (ch byte, fg, bg uint8) {
	attr := uint8(v >> 8)
	return byte(v), attr & 0x0F, attr >> 4
}
