package utils

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrUndecodable is returned when bytes are neither UTF-8/16 nor a known legacy encoding.
var ErrUndecodable = errors.New("text is not in a supported encoding")

// IsJSONFile reports whether path names an existing .json file.
func IsJSONFile(path string) bool {
	if !strings.HasSuffix(strings.ToLower(path), ".json") {
		return false
	}
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// ErrNotUnicode is returned by DecodeUnicode for bytes that are neither UTF-8 nor BOM-marked UTF-16.
var ErrNotUnicode = errors.New("text is not UTF-8 or UTF-16")

// DecodeUnicode converts document bytes to a UTF-8 string.
// It supports:
// - UTF-8 (with or without BOM)
// - UTF-16 LE/BE with BOM
func DecodeUnicode(data []byte) (string, error) {
	if len(data) == 0 {
		return "", nil
	}

	if bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}) {
		data = data[3:]
	}

	if bytes.HasPrefix(data, []byte{0xFE, 0xFF}) {
		return decodeWith(data, unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewDecoder())
	}
	if bytes.HasPrefix(data, []byte{0xFF, 0xFE}) {
		return decodeWith(data, unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder())
	}

	if utf8.Valid(data) {
		return string(data), nil
	}
	return "", ErrNotUnicode
}

// DecodeText is DecodeUnicode with a GB18030/GBK fallback for legacy local files.
func DecodeText(data []byte) (string, error) {
	s, err := DecodeUnicode(data)
	if !errors.Is(err, ErrNotUnicode) {
		return s, err
	}

	for _, dec := range []transform.Transformer{
		simplifiedchinese.GB18030.NewDecoder(),
		simplifiedchinese.GBK.NewDecoder(),
	} {
		if s, err := decodeWith(data, dec); err == nil && utf8.ValidString(s) {
			return s, nil
		}
	}
	return "", ErrUndecodable
}

func decodeWith(data []byte, dec transform.Transformer) (string, error) {
	b, err := io.ReadAll(transform.NewReader(bytes.NewReader(data), dec))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// SplitLines normalizes CRLF/CR line endings and splits on "\n".
func SplitLines(text string) []string {
	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")
	return strings.Split(normalized, "\n")
}
