// Copyright 2021 weiplanet. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package terminal

import (
	"github.com/weiplanet/vtparser/parser"
)

// EraseType selects the region for ED and EL.
type EraseType int

const (
	EraseToEnd         EraseType = 0
	EraseFromBeginning EraseType = 1
	EraseAll           EraseType = 2
	EraseScrollback    EraseType = 3
)

// TabClearType selects the tab stops TBC removes.
type TabClearType int

const (
	ClearCurrentColumn TabClearType = 0
	ClearAllColumns    TabClearType = 3
)

// WindowManipulationType is the first parameter of a DTTERM window
// manipulation sequence. Only two functions are recognized on the
// output side.
type WindowManipulationType int

const (
	WindowManipulationInvalid WindowManipulationType = 0
	RefreshWindow             WindowManipulationType = 7
	ResizeWindowInCharacters  WindowManipulationType = 8
)

// CursorStyle is the DECSCUSR shape parameter.
type CursorStyle int

const (
	CursorStyleUserDefault CursorStyle = iota
	CursorStyleBlinkingBlock
	CursorStyleSteadyBlock
	CursorStyleBlinkingUnderline
	CursorStyleSteadyUnderline
	CursorStyleBlinkingBar
	CursorStyleSteadyBar
)

// LineFeedType distinguishes the three line feed flavors: NEL returns
// the column, IND keeps it, and the C0 feeds depend on LNM.
type LineFeedType int

const (
	LineFeedWithReturn LineFeedType = iota
	LineFeedWithoutReturn
	LineFeedDependsOnMode
)

// StatusType is the DSR request parameter.
type StatusType int

const (
	StatusOperatingStatus      StatusType = 5
	StatusCursorPositionReport StatusType = 6
)

// GraphicsOption is a single SGR parameter. Values pass through to the
// dispatch target as received; the enumeration follows ECMA-48 plus the
// xterm extensions.
type GraphicsOption int

const (
	GraphicsOff                     GraphicsOption = 0
	GraphicsBoldBright              GraphicsOption = 1
	GraphicsRGBColorOrFaint         GraphicsOption = 2
	GraphicsItalics                 GraphicsOption = 3
	GraphicsUnderline               GraphicsOption = 4
	GraphicsBlinkOrXterm256Index    GraphicsOption = 5
	GraphicsRapidBlink              GraphicsOption = 6
	GraphicsNegative                GraphicsOption = 7
	GraphicsInvisible               GraphicsOption = 8
	GraphicsCrossedOut              GraphicsOption = 9
	GraphicsDoublyUnderlined        GraphicsOption = 21
	GraphicsNotBoldOrFaint          GraphicsOption = 22
	GraphicsNotItalics              GraphicsOption = 23
	GraphicsNoUnderline             GraphicsOption = 24
	GraphicsSteady                  GraphicsOption = 25
	GraphicsPositive                GraphicsOption = 27
	GraphicsVisible                 GraphicsOption = 28
	GraphicsNotCrossedOut           GraphicsOption = 29
	GraphicsForegroundBlack         GraphicsOption = 30
	GraphicsForegroundRed           GraphicsOption = 31
	GraphicsForegroundGreen         GraphicsOption = 32
	GraphicsForegroundYellow        GraphicsOption = 33
	GraphicsForegroundBlue          GraphicsOption = 34
	GraphicsForegroundMagenta       GraphicsOption = 35
	GraphicsForegroundCyan          GraphicsOption = 36
	GraphicsForegroundWhite         GraphicsOption = 37
	GraphicsForegroundExtended      GraphicsOption = 38
	GraphicsForegroundDefault       GraphicsOption = 39
	GraphicsBackgroundBlack         GraphicsOption = 40
	GraphicsBackgroundRed           GraphicsOption = 41
	GraphicsBackgroundGreen         GraphicsOption = 42
	GraphicsBackgroundYellow        GraphicsOption = 43
	GraphicsBackgroundBlue          GraphicsOption = 44
	GraphicsBackgroundMagenta       GraphicsOption = 45
	GraphicsBackgroundCyan          GraphicsOption = 46
	GraphicsBackgroundWhite         GraphicsOption = 47
	GraphicsBackgroundExtended      GraphicsOption = 48
	GraphicsBackgroundDefault       GraphicsOption = 49
	GraphicsOverline                GraphicsOption = 53
	GraphicsNoOverline              GraphicsOption = 55
	GraphicsBrightForegroundBlack   GraphicsOption = 90
	GraphicsBrightForegroundRed     GraphicsOption = 91
	GraphicsBrightForegroundGreen   GraphicsOption = 92
	GraphicsBrightForegroundYellow  GraphicsOption = 93
	GraphicsBrightForegroundBlue    GraphicsOption = 94
	GraphicsBrightForegroundMagenta GraphicsOption = 95
	GraphicsBrightForegroundCyan    GraphicsOption = 96
	GraphicsBrightForegroundWhite   GraphicsOption = 97
	GraphicsBrightBackgroundBlack   GraphicsOption = 100
	GraphicsBrightBackgroundRed     GraphicsOption = 101
	GraphicsBrightBackgroundGreen   GraphicsOption = 102
	GraphicsBrightBackgroundYellow  GraphicsOption = 103
	GraphicsBrightBackgroundBlue    GraphicsOption = 104
	GraphicsBrightBackgroundMagenta GraphicsOption = 105
	GraphicsBrightBackgroundCyan    GraphicsOption = 106
	GraphicsBrightBackgroundWhite   GraphicsOption = 107
)

// PrivateMode is a DECSET/DECRST parameter.
type PrivateMode int

const (
	ModeDECCKM              PrivateMode = 1    // cursor keys
	ModeDECANM              PrivateMode = 2    // ANSI / VT52
	ModeDECCOLM             PrivateMode = 3    // 132 columns
	ModeDECSCNM             PrivateMode = 5    // reverse video
	ModeDECOM               PrivateMode = 6    // origin
	ModeDECAWM              PrivateMode = 7    // autowrap
	ModeATT610              PrivateMode = 12   // cursor blink
	ModeDECTCEM             PrivateMode = 25   // cursor visible
	ModeXtermDECCOLMSupport PrivateMode = 40
	ModeVT200Mouse          PrivateMode = 1000
	ModeButtonEventMouse    PrivateMode = 1002
	ModeAnyEventMouse       PrivateMode = 1003
	ModeUTF8Mouse           PrivateMode = 1005
	ModeSGRMouse            PrivateMode = 1006
	ModeAlternateScroll     PrivateMode = 1007
	ModeAltScreenBuffer     PrivateMode = 1049
)

// Charset designators handed to Designate94Charset.
var (
	CharsetDecSpecialGraphics = parser.ID("0")
	CharsetASCII              = parser.ID("B")
)

// Dispatch is the operation vocabulary of the terminal the engine
// drives. One concrete implementation exists per host; a nil return
// means the operation was handled. Any error bubbles to the engine,
// which falls back to the TTY pass-through when one is configured.
type Dispatch interface {
	Print(ch rune) error
	PrintString(s string) error

	CursorUp(distance int) error
	CursorDown(distance int) error
	CursorForward(distance int) error
	CursorBackward(distance int) error
	CursorNextLine(distance int) error
	CursorPrevLine(distance int) error
	CursorHorizontalPositionAbsolute(column int) error
	VerticalLinePositionAbsolute(line int) error
	HorizontalPositionRelative(distance int) error
	VerticalPositionRelative(distance int) error
	CursorPosition(line, column int) error
	CursorSaveState() error
	CursorRestoreState() error
	SetCursorStyle(style CursorStyle) error

	InsertCharacter(count int) error
	DeleteCharacter(count int) error
	InsertLine(count int) error
	DeleteLine(count int) error
	EraseInDisplay(eraseType EraseType) error
	EraseInLine(eraseType EraseType) error
	EraseCharacters(count int) error
	ScrollUp(distance int) error
	ScrollDown(distance int) error

	ForwardTab(numTabs int) error
	BackwardsTab(numTabs int) error
	HorizontalTabSet() error
	TabClear(clearType TabClearType) error

	SetPrivateModes(modes []PrivateMode) error
	ResetPrivateModes(modes []PrivateMode) error
	SetGraphicsRendition(options []GraphicsOption) error
	SetTopBottomScrollingMargins(top, bottom int) error
	SetKeypadMode(applicationMode bool) error

	DeviceStatusReport(statusType StatusType) error
	DeviceAttributes() error
	SecondaryDeviceAttributes() error
	TertiaryDeviceAttributes() error
	Vt52DeviceAttributes() error

	LineFeed(lineFeedType LineFeedType) error
	ReverseLineFeed() error
	CarriageReturn() error
	WarningBell() error

	SingleShift(gsetNumber int) error
	LockingShift(gsetNumber int) error
	LockingShiftRight(gsetNumber int) error
	Designate94Charset(gsetNumber int, charset parser.VTID) error
	Designate96Charset(gsetNumber int, charset parser.VTID) error
	DesignateCodingSystem(codingSystem parser.VTID) error

	SoftReset() error
	HardReset() error
	ScreenAlignmentPattern() error

	SetWindowTitle(title string) error
	SetColorTableEntry(tableIndex int, color uint32) error
	SetDefaultForeground(color uint32) error
	SetDefaultBackground(color uint32) error
	SetCursorColor(color uint32) error
	SetClipboard(content string) error
	AddHyperlink(uri, id string) error
	EndHyperlink() error
	WindowManipulation(function WindowManipulationType, params []int) error
}

// NoopDispatch accepts every operation and does nothing. It backs test
// doubles and absorbs a missing host implementation.
type NoopDispatch struct{}

func (NoopDispatch) Print(ch rune) error                                 { return nil }
func (NoopDispatch) PrintString(s string) error                          { return nil }
func (NoopDispatch) CursorUp(distance int) error                         { return nil }
func (NoopDispatch) CursorDown(distance int) error                       { return nil }
func (NoopDispatch) CursorForward(distance int) error                    { return nil }
func (NoopDispatch) CursorBackward(distance int) error                   { return nil }
func (NoopDispatch) CursorNextLine(distance int) error                   { return nil }
func (NoopDispatch) CursorPrevLine(distance int) error                   { return nil }
func (NoopDispatch) CursorHorizontalPositionAbsolute(column int) error   { return nil }
func (NoopDispatch) VerticalLinePositionAbsolute(line int) error         { return nil }
func (NoopDispatch) HorizontalPositionRelative(distance int) error       { return nil }
func (NoopDispatch) VerticalPositionRelative(distance int) error         { return nil }
func (NoopDispatch) CursorPosition(line, column int) error               { return nil }
func (NoopDispatch) CursorSaveState() error                              { return nil }
func (NoopDispatch) CursorRestoreState() error                           { return nil }
func (NoopDispatch) SetCursorStyle(style CursorStyle) error              { return nil }
func (NoopDispatch) InsertCharacter(count int) error                     { return nil }
func (NoopDispatch) DeleteCharacter(count int) error                     { return nil }
func (NoopDispatch) InsertLine(count int) error                          { return nil }
func (NoopDispatch) DeleteLine(count int) error                          { return nil }
func (NoopDispatch) EraseInDisplay(eraseType EraseType) error            { return nil }
func (NoopDispatch) EraseInLine(eraseType EraseType) error               { return nil }
func (NoopDispatch) EraseCharacters(count int) error                     { return nil }
func (NoopDispatch) ScrollUp(distance int) error                         { return nil }
func (NoopDispatch) ScrollDown(distance int) error                       { return nil }
func (NoopDispatch) ForwardTab(numTabs int) error                        { return nil }
func (NoopDispatch) BackwardsTab(numTabs int) error                      { return nil }
func (NoopDispatch) HorizontalTabSet() error                             { return nil }
func (NoopDispatch) TabClear(clearType TabClearType) error               { return nil }
func (NoopDispatch) SetPrivateModes(modes []PrivateMode) error           { return nil }
func (NoopDispatch) ResetPrivateModes(modes []PrivateMode) error         { return nil }
func (NoopDispatch) SetGraphicsRendition(options []GraphicsOption) error { return nil }
func (NoopDispatch) SetTopBottomScrollingMargins(top, bottom int) error  { return nil }
func (NoopDispatch) SetKeypadMode(applicationMode bool) error            { return nil }
func (NoopDispatch) DeviceStatusReport(statusType StatusType) error      { return nil }
func (NoopDispatch) DeviceAttributes() error                             { return nil }
func (NoopDispatch) SecondaryDeviceAttributes() error                    { return nil }
func (NoopDispatch) TertiaryDeviceAttributes() error                     { return nil }
func (NoopDispatch) Vt52DeviceAttributes() error                         { return nil }
func (NoopDispatch) LineFeed(lineFeedType LineFeedType) error            { return nil }
func (NoopDispatch) ReverseLineFeed() error                              { return nil }
func (NoopDispatch) CarriageReturn() error                               { return nil }
func (NoopDispatch) WarningBell() error                                  { return nil }
func (NoopDispatch) SingleShift(gsetNumber int) error                    { return nil }
func (NoopDispatch) LockingShift(gsetNumber int) error                   { return nil }
func (NoopDispatch) LockingShiftRight(gsetNumber int) error              { return nil }
func (NoopDispatch) Designate94Charset(gsetNumber int, charset parser.VTID) error { return nil }
func (NoopDispatch) Designate96Charset(gsetNumber int, charset parser.VTID) error { return nil }
func (NoopDispatch) DesignateCodingSystem(codingSystem parser.VTID) error { return nil }
func (NoopDispatch) SoftReset() error                                    { return nil }
func (NoopDispatch) HardReset() error                                    { return nil }
func (NoopDispatch) ScreenAlignmentPattern() error                       { return nil }
func (NoopDispatch) SetWindowTitle(title string) error                   { return nil }
func (NoopDispatch) SetColorTableEntry(tableIndex int, color uint32) error { return nil }
func (NoopDispatch) SetDefaultForeground(color uint32) error             { return nil }
func (NoopDispatch) SetDefaultBackground(color uint32) error             { return nil }
func (NoopDispatch) SetCursorColor(color uint32) error                   { return nil }
func (NoopDispatch) SetClipboard(content string) error                   { return nil }
func (NoopDispatch) AddHyperlink(uri, id string) error                   { return nil }
func (NoopDispatch) EndHyperlink() error                                 { return nil }
func (NoopDispatch) WindowManipulation(function WindowManipulationType, params []int) error {
	return nil
}
