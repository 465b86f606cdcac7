// Copyright 2021 weiplanet. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parser

import (
	"testing"
)

func TestVTIDPacking(t *testing.T) {
	tc := []struct {
		label string
		seq   string
		want  VTID
	}{
		{"plain final    ", "A", VTID('A')},
		{"private marker ", "?h", VTID('?') | VTID('h')<<8},
		{"intermediate   ", "#8", VTID('#') | VTID('8')<<8},
		{"space intermed ", " q", VTID(' ') | VTID('q')<<8},
	}

	for _, v := range tc {
		if got := ID(v.seq); got != v.want {
			t.Errorf("%s expect %x, got %x\n", v.label, v.want, got)
		}
	}
}

func TestVTIDAccessors(t *testing.T) {
	id := ID("?h")
	if id.First() != '?' {
		t.Errorf("First expect %q, got %q\n", '?', id.First())
	}
	if id.SubSequence(1) != ID("h") {
		t.Errorf("SubSequence expect %x, got %x\n", ID("h"), id.SubSequence(1))
	}
	if id.String() != "?h" {
		t.Errorf("String expect %q, got %q\n", "?h", id.String())
	}
}

func TestVTIDBuilder(t *testing.T) {
	var b VTIDBuilder
	b.AddIntermediate('(')
	if got := b.Finalize('B'); got != ID("(B") {
		t.Errorf("builder expect %x, got %x\n", ID("(B"), got)
	}

	// ordering of intermediates is preserved
	b.Clear()
	b.AddIntermediate('!')
	b.AddIntermediate('#')
	if got := b.Finalize('p'); got != ID("!#p") {
		t.Errorf("builder expect %x, got %x\n", ID("!#p"), got)
	}
}

func TestVTIDBuilderOverflow(t *testing.T) {
	// more intermediates than fit reset the accumulator, leaving an id
	// with zero intermediates that matches nothing
	var b VTIDBuilder
	for i := 0; i < 8; i++ {
		b.AddIntermediate('!')
	}
	got := b.Finalize('p')
	if got == ID("!p") {
		t.Errorf("overflowed builder must not produce a matching id, got %x\n", got)
	}
}
