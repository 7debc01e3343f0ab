package tui

import "strings"

// Some terminal fonts render box-drawing glyphs poorly; ascii swaps them for
// plain characters.

type glyphSet int

const (
	glyphSetUnicode glyphSet = iota
	glyphSetASCII
)

// The program runs a single event loop, so this is only written at startup.
var currentGlyphs = glyphSetUnicode

func applyGlyphPreference(v string) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "unicode", "utf8":
		currentGlyphs = glyphSetUnicode
	case "ascii":
		currentGlyphs = glyphSetASCII
	default:
		// Unknown value: ignore.
	}
}

func glyphFocus() string {
	if currentGlyphs == glyphSetASCII {
		return ">"
	}
	return "›"
}

func glyphHRule() string {
	if currentGlyphs == glyphSetASCII {
		return "-"
	}
	return "─"
}
