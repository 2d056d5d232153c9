package aspx2html

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

// sourceEncodings maps accepted encoding names to their decoders.
// UTF-8 is handled separately as a pass-through.
var sourceEncodings = map[string]encoding.Encoding{
	"shift_jis": japanese.ShiftJIS,
	"shift-jis": japanese.ShiftJIS,
	"sjis":      japanese.ShiftJIS,
	"euc-jp":    japanese.EUCJP,
	"eucjp":     japanese.EUCJP,
}

// DecodeText converts raw source bytes to a UTF-8 string. The name is
// case-insensitive; "", "utf-8" and "utf8" pass the bytes through unchanged.
// Legacy Web Forms trees commonly use shift_jis or euc-jp.
func DecodeText(data []byte, name string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	switch normalized {
	case "", "utf-8", "utf8":
		return string(data), nil
	}

	enc, ok := sourceEncodings[normalized]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedEncoding, name)
	}

	decoded, _, err := transform.Bytes(enc.NewDecoder(), data)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecodeSource, err)
	}
	return string(decoded), nil
}

// ValidEncoding reports whether name is accepted by DecodeText.
func ValidEncoding(name string) bool {
	normalized := strings.ToLower(strings.TrimSpace(name))
	switch normalized {
	case "", "utf-8", "utf8":
		return true
	}
	_, ok := sourceEncodings[normalized]
	return ok
}
