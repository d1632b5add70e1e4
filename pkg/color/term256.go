package color

// The 256-color terminal palette: 16 VGA colors, a 6x6x6 RGB cube at
// indices 16-231 and a 24-step grayscale ramp at 232-255. Lookups in both
// directions use this table; nearest-index searches compare in Oklab so
// perceptually close palette entries win.

var term256Palette = buildTerm256Palette()

// term256Lab caches the Oklab form of every palette entry for the nearest
// search.
var term256Lab = buildTerm256Lab()

// grayIndices are the palette slots with r==g==b: the six gray cube
// diagonals plus the ramp. Achromatic inputs search only these so a gray
// never maps to a tinted entry.
var grayIndices = buildGrayIndices()

func buildTerm256Palette() [256]RGB {
	var p [256]RGB

	vga := [16]RGB{
		{0x00, 0x00, 0x00}, {0xAA, 0x00, 0x00}, {0x00, 0xAA, 0x00}, {0xAA, 0x55, 0x00},
		{0x00, 0x00, 0xAA}, {0xAA, 0x00, 0xAA}, {0x00, 0xAA, 0xAA}, {0xAA, 0xAA, 0xAA},
		{0x55, 0x55, 0x55}, {0xFF, 0x55, 0x55}, {0x55, 0xFF, 0x55}, {0xFF, 0xFF, 0x55},
		{0x55, 0x55, 0xFF}, {0xFF, 0x55, 0xFF}, {0x55, 0xFF, 0xFF}, {0xFF, 0xFF, 0xFF},
	}
	copy(p[:16], vga[:])

	levels := [6]int{0x00, 0x5f, 0x87, 0xaf, 0xd7, 0xff}
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				p[16+36*r+6*g+b] = RGB{levels[r], levels[g], levels[b]}
			}
		}
	}

	for i := 0; i < 24; i++ {
		v := 8 + 10*i
		p[232+i] = RGB{v, v, v}
	}

	return p
}

func buildTerm256Lab() [256]Oklab {
	var labs [256]Oklab
	for i, c := range term256Palette {
		labs[i] = rgbToOklab(c)
	}
	return labs
}

func buildGrayIndices() []uint8 {
	idx := make([]uint8, 0, 30)
	for i := 16; i < 256; i++ {
		c := term256Palette[i]
		if c.R == c.G && c.G == c.B {
			idx = append(idx, uint8(i))
		}
	}
	return idx
}

// nearestEightBit returns the palette index closest to lab in Oklab space.
// The first 16 entries vary between terminals, so only indices 16-255 are
// candidates. Achromatic inputs are restricted to the gray entries.
func nearestEightBit(lab Oklab) EightBit {
	if lab.A == 0 && lab.B == 0 {
		best := grayIndices[0]
		bestDist := OklabDistance(lab, term256Lab[best])
		for _, i := range grayIndices[1:] {
			if d := OklabDistance(lab, term256Lab[i]); d < bestDist {
				best, bestDist = i, d
			}
		}
		return EightBit(best)
	}

	best := 16
	bestDist := OklabDistance(lab, term256Lab[16])
	for i := 17; i < 256; i++ {
		if d := OklabDistance(lab, term256Lab[i]); d < bestDist {
			best, bestDist = i, d
		}
	}
	return EightBit(best)
}

// eightBitToRGB expands a palette index to its RGB entry.
func eightBitToRGB(i EightBit) RGB {
	return term256Palette[i]
}
