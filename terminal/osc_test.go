// Copyright 2021 weiplanet. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package terminal

import (
	"testing"
)

func TestParseColorSpec(t *testing.T) {
	tc := []struct {
		label   string
		spec    string
		want    uint32
		success bool
	}{
		{"two digit channels", "rgb:12/34/56", 0x00563412, true},
		{"round trip example", "rgb:aa/bb/cc", 0x00ccbbaa, true},
		{"upper case hex    ", "rgb:AA/BB/CC", 0x00ccbbaa, true},
		{"one digit channels", "rgb:1/2/3", 0x00030201, true},
		{"mixed widths      ", "rgb:12/3/45", 0x00450312, true},
		{"white             ", "rgb:ff/ff/ff", 0x00ffffff, true},
		{"too short         ", "rgb:1/2", 0, false},
		{"too long          ", "rgb:123/45/67", 0, false},
		{"bad prefix        ", "cmy:12/34/56", 0, false},
		{"bad hex           ", "rgb:zz/00/00", 0, false},
		{"missing channel   ", "rgb:12/34/", 0, false},
		{"three digit channel", "rgb:111/22/33", 0, false},
		{"empty             ", "", 0, false},
	}

	for _, v := range tc {
		got, success := parseColorSpec(v.spec)
		if success != v.success || got != v.want {
			t.Errorf("%s %q expect (%#x,%t), got (%#x,%t)\n",
				v.label, v.spec, v.want, v.success, got, success)
		}
	}
}

func TestParseColorTableSpec(t *testing.T) {
	tc := []struct {
		label   string
		spec    string
		index   int
		color   uint32
		success bool
	}{
		{"single digit index", "1;rgb:12/34/56", 1, 0x00563412, true},
		{"three digit index ", "255;rgb:aa/bb/cc", 255, 0x00ccbbaa, true},
		{"short channels    ", "7;rgb:a/b/c", 7, 0x000c0b0a, true},
		{"index out of range", "256;rgb:aa/bb/cc", 0, 0, false},
		{"missing index     ", ";rgb:aa/bb/cc", 0, 0, false},
		{"four digit index  ", "1000;rgb:aa/bb/cc", 0, 0, false},
		{"bad color         ", "1;rgb:aa/bb", 0, 0, false},
		{"empty             ", "", 0, 0, false},
	}

	for _, v := range tc {
		index, color, success := parseColorTableSpec(v.spec)
		if success != v.success || index != v.index || color != v.color {
			t.Errorf("%s %q expect (%d,%#x,%t), got (%d,%#x,%t)\n",
				v.label, v.spec, v.index, v.color, v.success, index, color, success)
		}
	}
}

func TestParseClipboard(t *testing.T) {
	tc := []struct {
		label   string
		payload string
		content string
		query   bool
		success bool
	}{
		{"base64 content", "c;aGVsbG8=", "hello", false, true},
		{"base64 with symbols", "c;Pz4+", "?>>", false, true},
		{"query", "c;?", "", true, true},
		{"empty selection", ";aGVsbG8=", "hello", false, true},
		{"invalid base64", "c;not/valid!", "", false, false},
		{"no separator", "aGVsbG8=", "", false, false},
	}

	for _, v := range tc {
		content, query, success := parseClipboard(v.payload)
		if content != v.content || query != v.query || success != v.success {
			t.Errorf("%s %q expect (%q,%t,%t), got (%q,%t,%t)\n",
				v.label, v.payload, v.content, v.query, v.success, content, query, success)
		}
	}
}

func TestParseHyperlink(t *testing.T) {
	tc := []struct {
		label   string
		payload string
		id      string
		uri     string
		success bool
	}{
		{"uri with id", "id=foo;http://example.com", "foo", "http://example.com", true},
		{"uri without params", ";http://example.com", "", "http://example.com", true},
		{"close link", ";", "", "", true},
		{"no separator", "http://example.com", "", "", false},
		{"id among params", "a=b:id=x;http://e.com", "x", "http://e.com", true},
	}

	for _, v := range tc {
		id, uri, success := parseHyperlink(v.payload)
		if id != v.id || uri != v.uri || success != v.success {
			t.Errorf("%s %q expect (%q,%q,%t), got (%q,%q,%t)\n",
				v.label, v.payload, v.id, v.uri, v.success, id, uri, success)
		}
	}
}
