package memory

import (
	"fmt"
	"strings"
)

// glyphAlphabet supplies one face symbol per identifier.
const glyphAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// Glyph returns the two-character card face for an identifier.
// Identifiers past the alphabet fall back to a zero-padded number.
func Glyph(id int) string {
	if id <= 0 {
		return "  "
	}
	if id <= len(glyphAlphabet) {
		return strings.Repeat(string(glyphAlphabet[id-1]), 2)
	}
	return fmt.Sprintf("%02d", id%100)
}
