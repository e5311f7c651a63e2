package utils

import (
	"errors"
	"testing"
)

func TestDecodeText(t *testing.T) {
	cases := []struct {
		name string
		in   []byte
		want string
	}{
		{"utf8", []byte(`{"a":"é"}`), `{"a":"é"}`},
		{"utf8 bom", []byte("\xEF\xBB\xBF{}"), "{}"},
		{"utf16 le", []byte{0xFF, 0xFE, '{', 0, '}', 0}, "{}"},
		{"utf16 be", []byte{0xFE, 0xFF, 0, '{', 0, '}'}, "{}"},
		{"gbk", []byte{0xC4, 0xE3, 0xBA, 0xC3}, "你好"},
		{"empty", nil, ""},
	}
	for _, tc := range cases {
		got, err := DecodeText(tc.in)
		if err != nil || got != tc.want {
			t.Errorf("%s: DecodeText = %q, %v, want %q", tc.name, got, err, tc.want)
		}
	}
}

func TestDecodeUnicode(t *testing.T) {
	cases := []struct {
		name string
		in   []byte
		want string
	}{
		{"utf8", []byte(`{"a":"é"}`), `{"a":"é"}`},
		{"utf8 bom", []byte("\xEF\xBB\xBF{}"), "{}"},
		{"utf16 le", []byte{0xFF, 0xFE, '{', 0, '}', 0}, "{}"},
		{"utf16 be", []byte{0xFE, 0xFF, 0, '{', 0, '}'}, "{}"},
		{"empty", nil, ""},
	}
	for _, tc := range cases {
		got, err := DecodeUnicode(tc.in)
		if err != nil || got != tc.want {
			t.Errorf("%s: DecodeUnicode = %q, %v, want %q", tc.name, got, err, tc.want)
		}
	}
}

func TestDecodeUnicodeRejectsLegacyBytes(t *testing.T) {
	for _, in := range [][]byte{
		[]byte("{\"t\":\"na\xefve\"}"),
		{0xC4, 0xE3, 0xBA, 0xC3},
	} {
		got, err := DecodeUnicode(in)
		if !errors.Is(err, ErrNotUnicode) {
			t.Errorf("DecodeUnicode(%q) = %q, %v, want ErrNotUnicode", in, got, err)
		}
	}
}

func TestSplitLines(t *testing.T) {
	got := SplitLines("a\r\nb\rc\nd")
	if len(got) != 4 || got[3] != "d" {
		t.Fatalf("SplitLines = %q", got)
	}
}
