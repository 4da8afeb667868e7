package vga

var logo = "\n\n" +
	"    _  _                 ___  ___ \n" +
	"   (_)| |               / _ \\/ __|\n" +
	"    _ | |__   ___  _ __| | | \\__ \\\n" +
	"   | || '_ \\ / _ \\| '__| | | |__) |\n" +
	"   | || |_) |  __/| |  | |_| / __/\n" +
	"   |_||_.__/ \\___||_|   \\___/\\___|\n" +
	"\n      A Go Microkernel OS\n\n"

// LogoColor is the attribute the logo is drawn in.
var LogoColor = NewColorCode(LightCyan, Black)

// PrintLogo draws the banner in LogoColor without changing the active color.
func (w *Writer) PrintLogo() {
	w.WriteStringColor(logo, LogoColor)
}
