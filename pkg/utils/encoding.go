package utils

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
)

// ErrInvalidUTF8 is returned when UTF-8 input contains invalid byte sequences.
var ErrInvalidUTF8 = errors.New("invalid UTF-8 byte sequence")

// LookupEncoding resolves an encoding label such as "UTF-8" or
// "Windows-1252". An empty name means UTF-8.
func LookupEncoding(name string) (encoding.Encoding, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return unicode.UTF8, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("unsupported encoding %q: %w", name, err)
	}
	return enc, nil
}

// Decode converts data to a Go string. UTF-8 input is validated rather than
// transformed, so the bytes round-trip unchanged (BOM included).
func Decode(enc encoding.Encoding, data []byte) (string, error) {
	if isUTF8(enc) {
		if !utf8.Valid(data) {
			return "", ErrInvalidUTF8
		}
		return string(data), nil
	}

	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Encode converts text to bytes in enc. Runes the encoding cannot represent
// are an error, never silently replaced.
func Encode(enc encoding.Encoding, text string) ([]byte, error) {
	if isUTF8(enc) {
		if !utf8.ValidString(text) {
			return nil, ErrInvalidUTF8
		}
		return []byte(text), nil
	}

	return enc.NewEncoder().Bytes([]byte(text))
}

func isUTF8(enc encoding.Encoding) bool {
	return enc == nil || enc == unicode.UTF8
}
