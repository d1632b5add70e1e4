package cli

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/jmylchreest/tinge/pkg/color"
	"github.com/jmylchreest/tinge/pkg/scheme"
)

// ANSI escape codes for truecolor terminal output.
const (
	ansiReset     = "\033[0m"
	ansiFgPrefix  = "\033[38;2;"
	ansiBgPrefix  = "\033[48;2;"
	ansiSuffix    = "m"
	ansiClearLine = "\r\033[K"

	defaultSwatchWidth   = 8
	defaultTerminalWidth = 80
)

// colorOutputEnabled reports whether w is a terminal that will render ANSI
// escapes. NO_COLOR and TERM=dumb opt out.
func colorOutputEnabled(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// terminalWidth returns the column count of w when it is a terminal.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return defaultTerminalWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultTerminalWidth
	}
	return width
}

// swatch returns a solid color block using a truecolor background escape.
func swatch(rgb color.RGB, width int) string {
	if width <= 0 {
		width = defaultSwatchWidth
	}
	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, rgb.R, rgb.G, rgb.B, ansiSuffix)
	return bg + strings.Repeat(" ", width) + ansiReset
}

// swatchWithText overlays text on a color block, choosing black or white
// for contrast against the background.
func swatchWithText(rgb color.RGB, text string, width int) string {
	if width <= 0 {
		width = defaultSwatchWidth
	}
	fgR, fgG, fgB := 255, 255, 255
	if relativeLuminance(rgb) > 0.5 {
		fgR, fgG, fgB = 0, 0, 0
	}
	if len(text) > width {
		text = text[:width]
	} else if len(text) < width {
		pad := (width - len(text)) / 2
		text = strings.Repeat(" ", pad) + text + strings.Repeat(" ", width-len(text)-pad)
	}
	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, rgb.R, rgb.G, rgb.B, ansiSuffix)
	fg := fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, fgR, fgG, fgB, ansiSuffix)
	return bg + fg + text + ansiReset
}

// relativeLuminance is the WCAG sRGB relative luminance, used to pick
// readable overlay text.
func relativeLuminance(rgb color.RGB) float64 {
	lin := func(c int) float64 {
		v := float64(c) / 255
		if v <= 0.03928 {
			return v / 12.92
		}
		return math.Pow((v+0.055)/1.055, 2.4)
	}
	return 0.2126*lin(rgb.R) + 0.7152*lin(rgb.G) + 0.0722*lin(rgb.B)
}

// renderColor writes a single color, as a labelled swatch on terminals and
// as plain text elsewhere.
func renderColor(w io.Writer, c color.Color) error {
	h, err := color.Convert(c, color.SpaceHex, nil)
	if err != nil {
		return err
	}
	hex := h.(color.Hex)
	if !colorOutputEnabled(w) {
		_, err = fmt.Fprintln(w, hex)
		return err
	}
	rgb, err := color.Convert(hex, color.SpaceRGB, nil)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s  %s\n", swatch(rgb.(color.RGB), defaultSwatchWidth), hex)
	return err
}

// renderPalette writes one labelled swatch per line.
func renderPalette(w io.Writer, palette []color.Hex) error {
	for _, h := range palette {
		if err := renderColor(w, h); err != nil {
			return err
		}
	}
	return nil
}

// renderScheme previews a scheme: its distinct colors from darkest to
// lightest, then the terminal palette row.
func renderScheme(w io.Writer, cs *scheme.Colorscheme) error {
	palette, err := cs.GetPalette(&scheme.PaletteOptions{Threshold: 0})
	if err != nil {
		return err
	}
	if cs.Name != "" {
		if _, err := fmt.Fprintln(w, cs.Name); err != nil {
			return err
		}
	}
	if err := renderPalette(w, palette); err != nil {
		return err
	}
	slots := cs.TerminalSlots()
	if len(slots) == 0 || !colorOutputEnabled(w) {
		return nil
	}
	var row strings.Builder
	for _, slot := range slots {
		rgb, err := color.Convert(cs.Terminal[slot], color.SpaceRGB, nil)
		if err != nil {
			return err
		}
		row.WriteString(swatchWithText(rgb.(color.RGB), fmt.Sprintf("%d", slot), 4))
	}
	_, err = fmt.Fprintln(w, row.String())
	return err
}

// renderFrame writes one animation frame as a row of swatches. On a
// terminal the row redraws in place; elsewhere each frame gets its own
// line of hex values.
func renderFrame(w io.Writer, cs *scheme.Colorscheme) error {
	palette, err := cs.GetPalette(&scheme.PaletteOptions{Threshold: 0})
	if err != nil {
		return err
	}
	if !colorOutputEnabled(w) {
		parts := make([]string, len(palette))
		for i, h := range palette {
			parts[i] = string(h)
		}
		_, err = fmt.Fprintf(w, "%s %s\n", cs.Name, strings.Join(parts, " "))
		return err
	}
	swatchW := 4
	if max := terminalWidth(w); len(palette)*swatchW > max {
		swatchW = 1
	}
	var row strings.Builder
	row.WriteString(ansiClearLine)
	for _, h := range palette {
		rgb, err := color.Convert(h, color.SpaceRGB, nil)
		if err != nil {
			return err
		}
		row.WriteString(swatch(rgb.(color.RGB), swatchW))
	}
	row.WriteString(" " + cs.Name)
	_, err = io.WriteString(w, row.String())
	return err
}
