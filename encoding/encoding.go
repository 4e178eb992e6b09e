// Package encoding implements the byte-input entry point's encoding
// handling: BOM detection and UTF-8 acceptance. Full charset sniffing (meta
// charset prescan, legacy non-UTF-8 encodings) is out of scope — callers
// that need it decode bytes to UTF-8 themselves before calling the parser.
package encoding

import "errors"

// ErrInvalidEncoding is returned when the specified encoding is not supported.
var ErrInvalidEncoding = errors.New("unsupported or invalid encoding")

// Encoding identifies the character encoding a byte input was decoded from.
type Encoding struct {
	// Name is the canonical name of the encoding.
	Name string
}

// Common encodings recognized by Decode.
var (
	UTF8    = &Encoding{Name: "UTF-8"}
	UTF16LE = &Encoding{Name: "utf-16le"}
	UTF16BE = &Encoding{Name: "utf-16be"}
)

// Decode strips a recognized BOM and returns the remaining bytes as UTF-8.
//
// hint, if non-empty, must be an encoding label for UTF-8 (the only encoding
// this entry point can actually decode); anything else is rejected with
// ErrInvalidEncoding rather than silently misdecoded.
func Decode(data []byte, hint string) (string, *Encoding, error) {
	if hint != "" && !isUTF8Label(hint) {
		return "", nil, ErrInvalidEncoding
	}

	if enc := detectBOM(data); enc != nil {
		if enc != UTF8 {
			return "", enc, ErrInvalidEncoding
		}
		return string(data[bomLength(enc):]), enc, nil
	}

	return string(data), UTF8, nil
}

func isUTF8Label(label string) bool {
	switch normalizeLabel(label) {
	case "utf-8", "utf8", "unicode-1-1-utf-8":
		return true
	}
	return false
}

func normalizeLabel(label string) string {
	b := make([]byte, 0, len(label))
	for i := 0; i < len(label); i++ {
		c := label[i]
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' {
			continue
		}
		if c >= 'A' && c <= 'Z' {
			c |= 0x20
		}
		b = append(b, c)
	}
	return string(b)
}

// detectBOM checks for a Byte Order Mark and returns the corresponding encoding.
func detectBOM(data []byte) *Encoding {
	if len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF {
		return UTF8
	}
	if len(data) >= 2 && data[0] == 0xFF && data[1] == 0xFE {
		return UTF16LE
	}
	if len(data) >= 2 && data[0] == 0xFE && data[1] == 0xFF {
		return UTF16BE
	}
	return nil
}

// bomLength returns the length of the BOM for the given encoding.
func bomLength(enc *Encoding) int {
	switch enc {
	case UTF8:
		return 3
	case UTF16LE, UTF16BE:
		return 2
	default:
		return 0
	}
}
