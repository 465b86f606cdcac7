// Copyright 2021 weiplanet. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package util

import (
	"testing"

	"github.com/creack/pty"
	"golang.org/x/sys/unix"
)

func TestSetIUTF8(t *testing.T) {
	ptmx, pts, err := pty.Open()
	if err != nil {
		t.Fatalf("#setIUTF8 Open %s\n", err)
	}
	defer func() {
		ptmx.Close()
		pts.Close()
	}()

	if err = SetIUTF8(int(ptmx.Fd())); err != nil {
		t.Errorf("#setIUTF8 master got %s, expect nil\n", err)
	}

	flag, err := CheckIUTF8(int(ptmx.Fd()))
	if err != nil {
		t.Errorf("#checkIUTF8 master %s\n", err)
	}
	if !flag {
		t.Errorf("#checkIUTF8 master got %t, expect %t\n", flag, true)
	}
}

func TestConvertWinsize(t *testing.T) {
	tc := []struct {
		label  string
		win    *unix.Winsize
		expect *pty.Winsize
	}{
		{
			"normal case",
			&unix.Winsize{Col: 80, Row: 40, Xpixel: 0, Ypixel: 0},
			&pty.Winsize{Cols: 80, Rows: 40, X: 0, Y: 0},
		},
		{"nil case", nil, nil},
	}

	for _, v := range tc {
		got := ConvertWinsize(v.win)

		if v.expect != nil && *got != *v.expect {
			t.Errorf("#test %q expect %v, got %v\n", v.label, v.expect, got)
		}
		if v.expect == nil && got != nil {
			t.Errorf("#test %q expect %v, got %v\n", v.label, v.expect, got)
		}
	}
}
