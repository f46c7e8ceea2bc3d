package layout

// theme holds the fixed report styling.
type theme struct {
	text, muted, primary, dark, rule Color
	white, link, code                Color
	calloutBg, codeBg, codeBorder    Color
	rowAlt, grid                     Color

	titleSize, subtitleSize, bodySize, codeSize, tableSize float64
	headingSizes                                          [4]float64 // H1, H2, H3, H4 and deeper
	overlaySize                                           float64
	leading                                               float64
}

var defaultTheme = theme{
	text:       Color{0x21, 0x21, 0x21},
	muted:      Color{0x61, 0x61, 0x61},
	primary:    Color{0x15, 0x65, 0xC0},
	dark:       Color{0x0D, 0x47, 0xA1},
	rule:       Color{0xBD, 0xBD, 0xBD},
	white:      Color{0xFF, 0xFF, 0xFF},
	link:       Color{0x15, 0x65, 0xC0},
	code:       Color{0xC6, 0x28, 0x28},
	calloutBg:  Color{0xE3, 0xF2, 0xFD},
	codeBg:     Color{0xEC, 0xEF, 0xF1},
	codeBorder: Color{0xCF, 0xD8, 0xDC},
	rowAlt:     Color{0xF5, 0xF5, 0xF5},
	grid:       Color{0xBD, 0xBD, 0xBD},

	titleSize:    26,
	subtitleSize: 16,
	bodySize:     11,
	codeSize:     9,
	tableSize:    10,
	headingSizes: [4]float64{20, 18, 16, 14},
	overlaySize:  9,
	leading:      1.4,
}

func (t theme) headingSize(level int) float64 {
	i := level - 1
	if i < 0 {
		i = 0
	}
	if i >= len(t.headingSizes) {
		i = len(t.headingSizes) - 1
	}
	return t.headingSizes[i]
}

func (t theme) lineHeight(size float64) float64 {
	return size * t.leading
}

// baseline returns the text baseline for a line whose box starts at top.
func (t theme) baseline(top, size float64) float64 {
	return top + (t.lineHeight(size)-size)/2 + size*0.8
}

func (t theme) body() Font { return Font{Family: FamilySans, Size: t.bodySize} }
