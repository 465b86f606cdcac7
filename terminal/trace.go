// Copyright 2021 weiplanet. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package terminal

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/weiplanet/vtparser/parser"
	"github.com/weiplanet/vtparser/util"
)

var _ Dispatch = (*TraceDispatch)(nil)

// runesWidth reports the number of cells a grapheme occupies. National
// flags get 1+1=2 in the loop.
func runesWidth(runes []rune) (width int) {
	// quick pass for iso8859-1
	if len(runes) == 1 && runes[0] < 0x00fe {
		return 1
	}

	cond := runewidth.NewCondition()
	cond.StrictEmojiNeutral = false
	cond.EastAsianWidth = true

	for i := 0; i < len(runes); i++ {
		width += cond.RuneWidth(runes[i])
	}

	return width
}

// stringWidth sums the grapheme widths of a printed run.
func stringWidth(s string) (width int) {
	graphemes := uniseg.NewGraphemes(s)
	for graphemes.Next() {
		width += runesWidth(graphemes.Runes())
	}
	return width
}

// TraceDispatch is a dispatch target that records every operation to
// the log and keeps an approximate cursor position from the print and
// motion traffic. cmd/vtdump drives the engine with it; it is also the
// reference for what a host implementation has to provide.
type TraceDispatch struct {
	Row, Col int
}

func NewTraceDispatch() *TraceDispatch {
	return &TraceDispatch{Row: 1, Col: 1}
}

func (t *TraceDispatch) op(name string, args ...any) error {
	kv := append([]any{"op", name}, args...)
	util.Logger.Debug("dispatch", kv...)
	return nil
}

func (t *TraceDispatch) Print(ch rune) error {
	t.Col += runesWidth([]rune{ch})
	return t.op("Print", "ch", string(ch))
}

func (t *TraceDispatch) PrintString(s string) error {
	t.Col += stringWidth(s)
	return t.op("PrintString", "s", s, "width", stringWidth(s))
}

func (t *TraceDispatch) CursorUp(distance int) error {
	t.Row -= distance
	if t.Row < 1 {
		t.Row = 1
	}
	return t.op("CursorUp", "distance", distance)
}

func (t *TraceDispatch) CursorDown(distance int) error {
	t.Row += distance
	return t.op("CursorDown", "distance", distance)
}

func (t *TraceDispatch) CursorForward(distance int) error {
	t.Col += distance
	return t.op("CursorForward", "distance", distance)
}

func (t *TraceDispatch) CursorBackward(distance int) error {
	t.Col -= distance
	if t.Col < 1 {
		t.Col = 1
	}
	return t.op("CursorBackward", "distance", distance)
}

func (t *TraceDispatch) CursorNextLine(distance int) error {
	t.Row += distance
	t.Col = 1
	return t.op("CursorNextLine", "distance", distance)
}

func (t *TraceDispatch) CursorPrevLine(distance int) error {
	t.Row -= distance
	if t.Row < 1 {
		t.Row = 1
	}
	t.Col = 1
	return t.op("CursorPrevLine", "distance", distance)
}

func (t *TraceDispatch) CursorHorizontalPositionAbsolute(column int) error {
	t.Col = column
	return t.op("CursorHorizontalPositionAbsolute", "column", column)
}

func (t *TraceDispatch) VerticalLinePositionAbsolute(line int) error {
	t.Row = line
	return t.op("VerticalLinePositionAbsolute", "line", line)
}

func (t *TraceDispatch) HorizontalPositionRelative(distance int) error {
	t.Col += distance
	return t.op("HorizontalPositionRelative", "distance", distance)
}

func (t *TraceDispatch) VerticalPositionRelative(distance int) error {
	t.Row += distance
	return t.op("VerticalPositionRelative", "distance", distance)
}

func (t *TraceDispatch) CursorPosition(line, column int) error {
	t.Row, t.Col = line, column
	return t.op("CursorPosition", "line", line, "column", column)
}

func (t *TraceDispatch) CursorSaveState() error   { return t.op("CursorSaveState") }
func (t *TraceDispatch) CursorRestoreState() error { return t.op("CursorRestoreState") }

func (t *TraceDispatch) SetCursorStyle(style CursorStyle) error {
	return t.op("SetCursorStyle", "style", int(style))
}

func (t *TraceDispatch) InsertCharacter(count int) error {
	return t.op("InsertCharacter", "count", count)
}

func (t *TraceDispatch) DeleteCharacter(count int) error {
	return t.op("DeleteCharacter", "count", count)
}

func (t *TraceDispatch) InsertLine(count int) error { return t.op("InsertLine", "count", count) }
func (t *TraceDispatch) DeleteLine(count int) error { return t.op("DeleteLine", "count", count) }

func (t *TraceDispatch) EraseInDisplay(eraseType EraseType) error {
	return t.op("EraseInDisplay", "type", int(eraseType))
}

func (t *TraceDispatch) EraseInLine(eraseType EraseType) error {
	return t.op("EraseInLine", "type", int(eraseType))
}

func (t *TraceDispatch) EraseCharacters(count int) error {
	return t.op("EraseCharacters", "count", count)
}

func (t *TraceDispatch) ScrollUp(distance int) error   { return t.op("ScrollUp", "distance", distance) }
func (t *TraceDispatch) ScrollDown(distance int) error { return t.op("ScrollDown", "distance", distance) }

func (t *TraceDispatch) ForwardTab(numTabs int) error {
	return t.op("ForwardTab", "numTabs", numTabs)
}

func (t *TraceDispatch) BackwardsTab(numTabs int) error {
	return t.op("BackwardsTab", "numTabs", numTabs)
}

func (t *TraceDispatch) HorizontalTabSet() error { return t.op("HorizontalTabSet") }

func (t *TraceDispatch) TabClear(clearType TabClearType) error {
	return t.op("TabClear", "type", int(clearType))
}

func (t *TraceDispatch) SetPrivateModes(modes []PrivateMode) error {
	return t.op("SetPrivateModes", "modes", modes)
}

func (t *TraceDispatch) ResetPrivateModes(modes []PrivateMode) error {
	return t.op("ResetPrivateModes", "modes", modes)
}

func (t *TraceDispatch) SetGraphicsRendition(options []GraphicsOption) error {
	return t.op("SetGraphicsRendition", "options", options)
}

func (t *TraceDispatch) SetTopBottomScrollingMargins(top, bottom int) error {
	return t.op("SetTopBottomScrollingMargins", "top", top, "bottom", bottom)
}

func (t *TraceDispatch) SetKeypadMode(applicationMode bool) error {
	return t.op("SetKeypadMode", "application", applicationMode)
}

func (t *TraceDispatch) DeviceStatusReport(statusType StatusType) error {
	return t.op("DeviceStatusReport", "type", int(statusType))
}

func (t *TraceDispatch) DeviceAttributes() error          { return t.op("DeviceAttributes") }
func (t *TraceDispatch) SecondaryDeviceAttributes() error { return t.op("SecondaryDeviceAttributes") }
func (t *TraceDispatch) TertiaryDeviceAttributes() error  { return t.op("TertiaryDeviceAttributes") }
func (t *TraceDispatch) Vt52DeviceAttributes() error      { return t.op("Vt52DeviceAttributes") }

func (t *TraceDispatch) LineFeed(lineFeedType LineFeedType) error {
	t.Row++
	if lineFeedType == LineFeedWithReturn {
		t.Col = 1
	}
	return t.op("LineFeed", "type", int(lineFeedType))
}

func (t *TraceDispatch) ReverseLineFeed() error {
	if t.Row > 1 {
		t.Row--
	}
	return t.op("ReverseLineFeed")
}

func (t *TraceDispatch) CarriageReturn() error {
	t.Col = 1
	return t.op("CarriageReturn")
}

func (t *TraceDispatch) WarningBell() error { return t.op("WarningBell") }

func (t *TraceDispatch) SingleShift(gsetNumber int) error {
	return t.op("SingleShift", "gset", gsetNumber)
}

func (t *TraceDispatch) LockingShift(gsetNumber int) error {
	return t.op("LockingShift", "gset", gsetNumber)
}

func (t *TraceDispatch) LockingShiftRight(gsetNumber int) error {
	return t.op("LockingShiftRight", "gset", gsetNumber)
}

func (t *TraceDispatch) Designate94Charset(gsetNumber int, charset parser.VTID) error {
	return t.op("Designate94Charset", "gset", gsetNumber, "charset", uint64(charset))
}

func (t *TraceDispatch) Designate96Charset(gsetNumber int, charset parser.VTID) error {
	return t.op("Designate96Charset", "gset", gsetNumber, "charset", uint64(charset))
}

func (t *TraceDispatch) DesignateCodingSystem(codingSystem parser.VTID) error {
	return t.op("DesignateCodingSystem", "codingSystem", uint64(codingSystem))
}

func (t *TraceDispatch) SoftReset() error { return t.op("SoftReset") }

func (t *TraceDispatch) HardReset() error {
	t.Row, t.Col = 1, 1
	return t.op("HardReset")
}

func (t *TraceDispatch) ScreenAlignmentPattern() error { return t.op("ScreenAlignmentPattern") }

func (t *TraceDispatch) SetWindowTitle(title string) error {
	return t.op("SetWindowTitle", "title", title)
}

func (t *TraceDispatch) SetColorTableEntry(tableIndex int, color uint32) error {
	return t.op("SetColorTableEntry", "index", tableIndex, "color", color)
}

func (t *TraceDispatch) SetDefaultForeground(color uint32) error {
	return t.op("SetDefaultForeground", "color", color)
}

func (t *TraceDispatch) SetDefaultBackground(color uint32) error {
	return t.op("SetDefaultBackground", "color", color)
}

func (t *TraceDispatch) SetCursorColor(color uint32) error {
	return t.op("SetCursorColor", "color", color)
}

func (t *TraceDispatch) SetClipboard(content string) error {
	return t.op("SetClipboard", "bytes", len(content))
}

func (t *TraceDispatch) AddHyperlink(uri, id string) error {
	return t.op("AddHyperlink", "uri", uri, "id", id)
}

func (t *TraceDispatch) EndHyperlink() error { return t.op("EndHyperlink") }

func (t *TraceDispatch) WindowManipulation(function WindowManipulationType, params []int) error {
	return t.op("WindowManipulation", "function", int(function), "params", params)
}
