package rezept

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// typographic characters that show up in PDF text extraction and OCR
// output, mapped to their plain equivalents.
var normalizeReplacer = strings.NewReplacer(
	" ", " ", // no-break space
	"​", "", // zero-width space
	"«", `"`,
	"»", `"`,
	"‘", "'",
	"’", "'",
	"“", `"`,
	"”", `"`,
	"–", "-",
	"—", "-",
)

// Normalize canonicalizes text extracted from a PDF: Unicode compatibility
// normalization plus replacement of typographic punctuation and invisible
// whitespace. Normalize is idempotent.
func Normalize(s string) string {
	return normalizeReplacer.Replace(norm.NFKC.String(s))
}
