// Copyright 2021 weiplanet. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package terminal

import (
	"testing"

	"github.com/rivo/uniseg"

	"github.com/weiplanet/vtparser/parser"
)

func TestRunesWidth(t *testing.T) {
	tc := []struct {
		name  string
		raw   string
		width int
	}{
		{"latin    ", "long", 4},
		{"chinese  ", "中国", 4},
		{"combining", "shangha\u0308\u0308i", 8},
		{"emoji    ", "🏖", 2},
	}

	for _, v := range tc {
		graphemes := uniseg.NewGraphemes(v.raw)
		width := 0
		for graphemes.Next() {
			width += runesWidth(graphemes.Runes())
		}
		if v.width != width {
			t.Errorf("%s: %q expect width %d, got %d\n", v.name, v.raw, v.width, width)
		}
	}
}

func TestTraceDispatchPosition(t *testing.T) {
	tc := []struct {
		label    string
		seq      string
		row, col int
	}{
		{"plain print", "hello", 1, 6},
		{"cup moves", "\x1b[5;10H", 5, 10},
		{"print then cr", "hello\r", 1, 1},
		{"line feed keeps column", "ab\x1bD", 2, 3},
		{"next line returns", "ab\x1bE", 2, 1},
		{"wide runes", "中国", 1, 5},
		{"hard reset homes", "hi\x1b[3;3H\x1bc", 1, 1},
		{"backward clamps", "\x1b[9D", 1, 1},
	}

	for _, v := range tc {
		trace := NewTraceDispatch()
		engine := NewOutputEngine(trace)
		engine.SetTelemetry(&Telemetry{})
		sm := parser.NewStateMachine(engine)
		sm.ProcessString(v.seq)

		if trace.Row != v.row || trace.Col != v.col {
			t.Errorf("%s expect (%d,%d), got (%d,%d)\n",
				v.label, v.row, v.col, trace.Row, trace.Col)
		}
	}
}
