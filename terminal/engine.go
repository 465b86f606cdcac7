// Copyright 2021 weiplanet. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package terminal

import (
	"strings"
	"unicode/utf8"

	"github.com/weiplanet/vtparser/parser"
	"github.com/weiplanet/vtparser/util"
)

// escape sequence identifiers
var (
	escST      = parser.ID("\\")
	escDECSC   = parser.ID("7")
	escDECRC   = parser.ID("8")
	escDECKPAM = parser.ID("=")
	escDECKPNM = parser.ID(">")
	escIND     = parser.ID("D")
	escNEL     = parser.ID("E")
	escHTS     = parser.ID("H")
	escRI      = parser.ID("M")
	escSS2     = parser.ID("N")
	escSS3     = parser.ID("O")
	escRIS     = parser.ID("c")
	escLS2     = parser.ID("n")
	escLS3     = parser.ID("o")
	escLS1R    = parser.ID("~")
	escLS2R    = parser.ID("}")
	escLS3R    = parser.ID("|")
	escDECALN  = parser.ID("#8")
)

// control sequence identifiers
var (
	csiICH       = parser.ID("@")
	csiCUU       = parser.ID("A")
	csiCUD       = parser.ID("B")
	csiCUF       = parser.ID("C")
	csiCUB       = parser.ID("D")
	csiCNL       = parser.ID("E")
	csiCPL       = parser.ID("F")
	csiCHA       = parser.ID("G")
	csiCUP       = parser.ID("H")
	csiCHT       = parser.ID("I")
	csiED        = parser.ID("J")
	csiEL        = parser.ID("K")
	csiIL        = parser.ID("L")
	csiDL        = parser.ID("M")
	csiDCH       = parser.ID("P")
	csiSU        = parser.ID("S")
	csiSD        = parser.ID("T")
	csiECH       = parser.ID("X")
	csiCBT       = parser.ID("Z")
	csiHPA       = parser.ID("`")
	csiHPR       = parser.ID("a")
	csiREP       = parser.ID("b")
	csiDA        = parser.ID("c")
	csiDA2       = parser.ID(">c")
	csiDA3       = parser.ID("=c")
	csiVPA       = parser.ID("d")
	csiVPR       = parser.ID("e")
	csiHVP       = parser.ID("f")
	csiTBC       = parser.ID("g")
	csiDECSET    = parser.ID("?h")
	csiDECRST    = parser.ID("?l")
	csiSGR       = parser.ID("m")
	csiDSR       = parser.ID("n")
	csiDECSTBM   = parser.ID("r")
	csiANSISYSSC = parser.ID("s")
	csiDTTERM    = parser.ID("t")
	csiANSISYSRC = parser.ID("u")
	csiDECSCUSR  = parser.ID(" q")
	csiDECSTR    = parser.ID("!p")
	csiDECSCPP   = parser.ID("$|") // recognized, no output dispatch
)

// VT52 sequence identifiers
var (
	vt52CursorUp            = parser.ID("A")
	vt52CursorDown          = parser.ID("B")
	vt52CursorRight         = parser.ID("C")
	vt52CursorLeft          = parser.ID("D")
	vt52EnterGraphics       = parser.ID("F")
	vt52ExitGraphics        = parser.ID("G")
	vt52CursorToHome        = parser.ID("H")
	vt52ReverseLineFeed     = parser.ID("I")
	vt52EraseToEndOfScreen  = parser.ID("J")
	vt52EraseToEndOfLine    = parser.ID("K")
	vt52DirectCursorAddress = parser.ID("Y")
	vt52Identify            = parser.ID("Z")
	vt52EnterAltKeypad      = parser.ID("=")
	vt52ExitAltKeypad       = parser.ID(">")
	vt52ExitVt52Mode        = parser.ID("<")
)

// OSC action codes
const (
	oscSetIconAndWindowTitle = 0
	oscSetWindowIcon         = 1
	oscSetWindowTitle        = 2
	oscSetColor              = 4
	oscHyperlink             = 8
	oscSetForegroundColor    = 10
	oscSetBackgroundColor    = 11
	oscSetCursorColor        = 12
	oscSetClipboard          = 52
	oscResetCursorColor      = 112
)

// the "invalid color" sentinel OSC 112 delivers
const invalidColor = 0xFFFFFFFF

// TerminalOutputConnection is a write-only sink to a downstream
// terminal. The host guarantees it outlives the engine.
type TerminalOutputConnection interface {
	WriteTerminal(s string) error
}

// OutputEngine interprets the sequences the state machine recognizes
// and drives the dispatch target. It owns the dispatch target for its
// whole lifetime. When a TTY connection is configured, anything the
// engine cannot interpret is re-serialized to the downstream terminal
// through the flush-to-terminal callback.
type OutputEngine struct {
	dispatch        Dispatch
	ttyConnection   TerminalOutputConnection
	flushToTerminal func() bool

	// last graphical character printed, consumed by REP
	lastPrintedChar rune

	// retained across CSI dispatches; color-heavy applications emit a
	// lot of SGR sequences
	graphicsOptions []GraphicsOption

	telemetry *Telemetry
}

var _ parser.Engine = (*OutputEngine)(nil)

// NewOutputEngine builds an engine around the given dispatch target. A
// nil dispatch is replaced by the no-op target.
func NewOutputEngine(dispatch Dispatch) *OutputEngine {
	if dispatch == nil {
		dispatch = NoopDispatch{}
	}
	return &OutputEngine{
		dispatch:        dispatch,
		graphicsOptions: make([]GraphicsOption, 0, 16),
		telemetry:       DefaultTelemetry,
	}
}

// Dispatch exposes the owned dispatch target.
func (e *OutputEngine) Dispatch() Dispatch {
	return e.dispatch
}

// SetTelemetry replaces the engine's counter handle.
func (e *OutputEngine) SetTelemetry(t *Telemetry) {
	e.telemetry = t
}

// SetTerminalConnection attaches a downstream terminal. conn receives
// pass-through strings; flushToTerminal asks the state machine to
// re-serialize the pending sequence and deliver it via
// ActionPassThroughString. The callback must not capture the engine.
func (e *OutputEngine) SetTerminalConnection(conn TerminalOutputConnection, flushToTerminal func() bool) {
	e.ttyConnection = conn
	e.flushToTerminal = flushToTerminal
}

func (e *OutputEngine) clearLastChar() {
	e.lastPrintedChar = 0
}

func ok(err error) bool {
	return err == nil
}

// ActionExecute responds to a C0 control character.
func (e *OutputEngine) ActionExecute(ch rune) bool {
	switch ch {
	case 0x00:
		// Applications legitimately write NUL and expect nothing to
		// happen; it must not occupy buffer space.
	case '\a':
		e.dispatch.WarningBell()
		// with a terminal attached, the BEL also passes through
		if e.flushToTerminal != nil {
			e.flushToTerminal()
		}
	case '\b':
		e.dispatch.CursorBackward(1)
	case '\t':
		e.dispatch.ForwardTab(1)
	case '\r':
		e.dispatch.CarriageReturn()
	case '\n', '\f', '\v':
		// LF, FF and VT are identical in function
		e.dispatch.LineFeed(LineFeedDependsOnMode)
	case 0x0F: // SI
		e.dispatch.LockingShift(0)
	case 0x0E: // SO
		e.dispatch.LockingShift(1)
	default:
		e.dispatch.Print(ch)
	}
	e.clearLastChar()
	return true
}

// ActionExecuteFromEscape responds to a C0 control encountered in the
// Escape state. The output engine treats it exactly like ActionExecute;
// the separate entry point exists so the two paths may diverge.
func (e *OutputEngine) ActionExecuteFromEscape(ch rune) bool {
	return e.ActionExecute(ch)
}

// ActionPrint renders a single graphical character.
func (e *OutputEngine) ActionPrint(ch rune) bool {
	if ch >= 0x20 {
		e.lastPrintedChar = ch
	}
	e.dispatch.Print(ch)
	return true
}

// ActionPrintString renders a run of characters.
func (e *OutputEngine) ActionPrintString(s string) bool {
	if s == "" {
		return true
	}
	if last, _ := utf8.DecodeLastRuneInString(s); last >= 0x20 {
		e.lastPrintedChar = last
	}
	e.dispatch.PrintString(s)
	return true
}

// ActionPassThroughString hands a string we did not understand to the
// downstream terminal. Without a connection the string is eaten.
func (e *OutputEngine) ActionPassThroughString(s string) bool {
	success := true
	if e.ttyConnection != nil {
		if err := e.ttyConnection.WriteTerminal(s); err != nil {
			util.Logger.Warn("terminal connection write failed", "error", err)
			success = false
		}
	}
	return success
}

// ActionEscDispatch handles a simple escape sequence.
func (e *OutputEngine) ActionEscDispatch(id parser.VTID) bool {
	var success bool

	switch id {
	case escST:
		// the 7-bit string terminator on its own is a no-op
		success = true
	case escDECSC:
		success = ok(e.dispatch.CursorSaveState())
		e.telemetry.Log(TelDECSC)
	case escDECRC:
		success = ok(e.dispatch.CursorRestoreState())
		e.telemetry.Log(TelDECRC)
	case escDECKPAM:
		success = ok(e.dispatch.SetKeypadMode(true))
		e.telemetry.Log(TelDECKPAM)
	case escDECKPNM:
		success = ok(e.dispatch.SetKeypadMode(false))
		e.telemetry.Log(TelDECKPNM)
	case escNEL:
		success = ok(e.dispatch.LineFeed(LineFeedWithReturn))
		e.telemetry.Log(TelNEL)
	case escIND:
		success = ok(e.dispatch.LineFeed(LineFeedWithoutReturn))
		e.telemetry.Log(TelIND)
	case escRI:
		success = ok(e.dispatch.ReverseLineFeed())
		e.telemetry.Log(TelRI)
	case escHTS:
		success = ok(e.dispatch.HorizontalTabSet())
		e.telemetry.Log(TelHTS)
	case escRIS:
		success = ok(e.dispatch.HardReset())
		e.telemetry.Log(TelRIS)
	case escSS2:
		success = ok(e.dispatch.SingleShift(2))
		e.telemetry.Log(TelSS2)
	case escSS3:
		success = ok(e.dispatch.SingleShift(3))
		e.telemetry.Log(TelSS3)
	case escLS2:
		success = ok(e.dispatch.LockingShift(2))
		e.telemetry.Log(TelLS2)
	case escLS3:
		success = ok(e.dispatch.LockingShift(3))
		e.telemetry.Log(TelLS3)
	case escLS1R:
		success = ok(e.dispatch.LockingShiftRight(1))
		e.telemetry.Log(TelLS1R)
	case escLS2R:
		success = ok(e.dispatch.LockingShiftRight(2))
		e.telemetry.Log(TelLS2R)
	case escLS3R:
		success = ok(e.dispatch.LockingShiftRight(3))
		e.telemetry.Log(TelLS3R)
	case escDECALN:
		success = ok(e.dispatch.ScreenAlignmentPattern())
		e.telemetry.Log(TelDECALN)
	default:
		// Charset designations carry the target G-set in the first
		// character and the designator in the rest.
		designator := id.SubSequence(1)
		switch id.First() {
		case '%':
			success = ok(e.dispatch.DesignateCodingSystem(designator))
			e.telemetry.Log(TelDOCS)
		case '(':
			success = ok(e.dispatch.Designate94Charset(0, designator))
			e.telemetry.Log(TelDesignateG0)
		case ')':
			success = ok(e.dispatch.Designate94Charset(1, designator))
			e.telemetry.Log(TelDesignateG1)
		case '*':
			success = ok(e.dispatch.Designate94Charset(2, designator))
			e.telemetry.Log(TelDesignateG2)
		case '+':
			success = ok(e.dispatch.Designate94Charset(3, designator))
			e.telemetry.Log(TelDesignateG3)
		case '-':
			success = ok(e.dispatch.Designate96Charset(1, designator))
			e.telemetry.Log(TelDesignateG1)
		case '.':
			success = ok(e.dispatch.Designate96Charset(2, designator))
			e.telemetry.Log(TelDesignateG2)
		case '/':
			success = ok(e.dispatch.Designate96Charset(3, designator))
			e.telemetry.Log(TelDesignateG3)
		}
	}

	if e.flushToTerminal != nil && !success {
		success = e.flushToTerminal()
	}
	e.clearLastChar()
	return success
}

// ActionVt52EscDispatch handles a VT52 escape sequence.
func (e *OutputEngine) ActionVt52EscDispatch(id parser.VTID, params []int) bool {
	var success bool

	switch id {
	case vt52CursorUp:
		success = ok(e.dispatch.CursorUp(1))
	case vt52CursorDown:
		success = ok(e.dispatch.CursorDown(1))
	case vt52CursorRight:
		success = ok(e.dispatch.CursorForward(1))
	case vt52CursorLeft:
		success = ok(e.dispatch.CursorBackward(1))
	case vt52EnterGraphics:
		success = ok(e.dispatch.Designate94Charset(0, CharsetDecSpecialGraphics))
	case vt52ExitGraphics:
		success = ok(e.dispatch.Designate94Charset(0, CharsetASCII))
	case vt52CursorToHome:
		success = ok(e.dispatch.CursorPosition(1, 1))
	case vt52ReverseLineFeed:
		success = ok(e.dispatch.ReverseLineFeed())
	case vt52EraseToEndOfScreen:
		success = ok(e.dispatch.EraseInDisplay(EraseToEnd))
	case vt52EraseToEndOfLine:
		success = ok(e.dispatch.EraseInLine(EraseToEnd))
	case vt52DirectCursorAddress:
		// addresses arrive as raw characters, offset from space
		if len(params) >= 2 {
			success = ok(e.dispatch.CursorPosition(params[0]-' '+1, params[1]-' '+1))
		}
	case vt52Identify:
		success = ok(e.dispatch.Vt52DeviceAttributes())
	case vt52EnterAltKeypad:
		success = ok(e.dispatch.SetKeypadMode(true))
	case vt52ExitAltKeypad:
		success = ok(e.dispatch.SetKeypadMode(false))
	case vt52ExitVt52Mode:
		success = ok(e.dispatch.SetPrivateModes([]PrivateMode{ModeDECANM}))
	}

	e.clearLastChar()
	return success
}

// ActionCsiDispatch validates the parameters of a control sequence and
// dispatches it.
func (e *OutputEngine) ActionCsiDispatch(id parser.VTID, params []int) bool {
	var (
		success      bool
		distance     int
		line, column int
		top, bottom  int
		numTabs      int
		clearType    TabClearType
		function     WindowManipulationType
		eraseType    EraseType
		privateModes []PrivateMode
		statusType   StatusType
		repeatCount  int
		cursorStyle  CursorStyle
	)

	// the args after the first one, for window manipulation
	var remaining []int
	if len(params) > 1 {
		remaining = params[1:]
	}

	e.graphicsOptions = e.graphicsOptions[:0]

	switch id {
	case csiCUU, csiCUD, csiCUF, csiCUB, csiCNL, csiCPL,
		csiCHA, csiHPA, csiVPA, csiHPR, csiVPR,
		csiICH, csiDCH, csiECH:
		distance, success = getCursorDistance(params)
	case csiCUP, csiHVP:
		line, column, success = getXYPosition(params)
	case csiDECSTBM:
		top, bottom, success = getTopBottomMargins(params)
	case csiED, csiEL:
		eraseType, success = getEraseOperation(params)
	case csiDECSET, csiDECRST:
		privateModes, success = getPrivateModeParams(params)
	case csiSGR:
		e.graphicsOptions = appendGraphicsOptions(e.graphicsOptions, params)
		success = true
	case csiDSR:
		statusType, success = getDeviceStatusOperation(params)
	case csiDA, csiDA2, csiDA3:
		success = verifyDeviceAttributesParams(params)
	case csiSU, csiSD, csiIL, csiDL:
		distance, success = getScrollDistance(params)
	case csiANSISYSSC, csiANSISYSRC:
		success = len(params) == 0
	case csiCHT, csiCBT:
		numTabs, success = getTabDistance(params)
	case csiTBC:
		clearType, success = getTabClearType(params)
	case csiDTTERM:
		function, success = getWindowManipulationType(params)
	case csiREP:
		repeatCount, success = getRepeatCount(params)
	case csiDECSCUSR:
		cursorStyle, success = getCursorStyle(params)
	default:
		// nothing to fill
		success = true
	}

	if success {
		switch id {
		case csiCUU:
			success = ok(e.dispatch.CursorUp(distance))
			e.telemetry.Log(TelCUU)
		case csiCUD:
			success = ok(e.dispatch.CursorDown(distance))
			e.telemetry.Log(TelCUD)
		case csiCUF:
			success = ok(e.dispatch.CursorForward(distance))
			e.telemetry.Log(TelCUF)
		case csiCUB:
			success = ok(e.dispatch.CursorBackward(distance))
			e.telemetry.Log(TelCUB)
		case csiCNL:
			success = ok(e.dispatch.CursorNextLine(distance))
			e.telemetry.Log(TelCNL)
		case csiCPL:
			success = ok(e.dispatch.CursorPrevLine(distance))
			e.telemetry.Log(TelCPL)
		case csiCHA, csiHPA:
			success = ok(e.dispatch.CursorHorizontalPositionAbsolute(distance))
			e.telemetry.Log(TelCHA)
		case csiVPA:
			success = ok(e.dispatch.VerticalLinePositionAbsolute(distance))
			e.telemetry.Log(TelVPA)
		case csiHPR:
			success = ok(e.dispatch.HorizontalPositionRelative(distance))
			e.telemetry.Log(TelHPR)
		case csiVPR:
			success = ok(e.dispatch.VerticalPositionRelative(distance))
			e.telemetry.Log(TelVPR)
		case csiCUP, csiHVP:
			success = ok(e.dispatch.CursorPosition(line, column))
			e.telemetry.Log(TelCUP)
		case csiDECSTBM:
			success = ok(e.dispatch.SetTopBottomScrollingMargins(top, bottom))
			e.telemetry.Log(TelDECSTBM)
		case csiICH:
			success = ok(e.dispatch.InsertCharacter(distance))
			e.telemetry.Log(TelICH)
		case csiDCH:
			success = ok(e.dispatch.DeleteCharacter(distance))
			e.telemetry.Log(TelDCH)
		case csiED:
			success = ok(e.dispatch.EraseInDisplay(eraseType))
			e.telemetry.Log(TelED)
		case csiEL:
			success = ok(e.dispatch.EraseInLine(eraseType))
			e.telemetry.Log(TelEL)
		case csiDECSET:
			success = ok(e.dispatch.SetPrivateModes(privateModes))
			e.telemetry.Log(TelDECSET)
		case csiDECRST:
			success = ok(e.dispatch.ResetPrivateModes(privateModes))
			e.telemetry.Log(TelDECRST)
		case csiSGR:
			success = ok(e.dispatch.SetGraphicsRendition(e.graphicsOptions))
			e.telemetry.Log(TelSGR)
		case csiDSR:
			success = ok(e.dispatch.DeviceStatusReport(statusType))
			e.telemetry.Log(TelDSR)
		case csiDA:
			success = ok(e.dispatch.DeviceAttributes())
			e.telemetry.Log(TelDA)
		case csiDA2:
			success = ok(e.dispatch.SecondaryDeviceAttributes())
			e.telemetry.Log(TelDA2)
		case csiDA3:
			success = ok(e.dispatch.TertiaryDeviceAttributes())
			e.telemetry.Log(TelDA3)
		case csiSU:
			success = ok(e.dispatch.ScrollUp(distance))
			e.telemetry.Log(TelSU)
		case csiSD:
			success = ok(e.dispatch.ScrollDown(distance))
			e.telemetry.Log(TelSD)
		case csiANSISYSSC:
			success = ok(e.dispatch.CursorSaveState())
			e.telemetry.Log(TelANSISYSSC)
		case csiANSISYSRC:
			success = ok(e.dispatch.CursorRestoreState())
			e.telemetry.Log(TelANSISYSRC)
		case csiIL:
			success = ok(e.dispatch.InsertLine(distance))
			e.telemetry.Log(TelIL)
		case csiDL:
			success = ok(e.dispatch.DeleteLine(distance))
			e.telemetry.Log(TelDL)
		case csiCHT:
			success = ok(e.dispatch.ForwardTab(numTabs))
			e.telemetry.Log(TelCHT)
		case csiCBT:
			success = ok(e.dispatch.BackwardsTab(numTabs))
			e.telemetry.Log(TelCBT)
		case csiTBC:
			success = ok(e.dispatch.TabClear(clearType))
			e.telemetry.Log(TelTBC)
		case csiECH:
			success = ok(e.dispatch.EraseCharacters(distance))
			e.telemetry.Log(TelECH)
		case csiDTTERM:
			success = ok(e.dispatch.WindowManipulation(function, remaining))
			e.telemetry.Log(TelDTTERMWM)
		case csiREP:
			// Handled without the dispatch target: repeating is just
			// printing the stashed character again.
			if e.lastPrintedChar != 0 {
				e.dispatch.PrintString(strings.Repeat(string(e.lastPrintedChar), repeatCount))
			}
			success = true
			e.telemetry.Log(TelREP)
		case csiDECSCUSR:
			success = ok(e.dispatch.SetCursorStyle(cursorStyle))
			e.telemetry.Log(TelDECSCUSR)
		case csiDECSTR:
			success = ok(e.dispatch.SoftReset())
			e.telemetry.Log(TelDECSTR)
		default:
			success = false
		}
	}

	if e.flushToTerminal != nil && !success {
		success = e.flushToTerminal()
	}
	e.clearLastChar()
	return success
}

// ActionOscDispatch parses an operating system command payload and
// dispatches it.
func (e *OutputEngine) ActionOscDispatch(terminator rune, parameter int, payload string) bool {
	var (
		success          bool
		title            string
		tableIndex       int
		color            uint32
		clipboardContent string
		queryClipboard   bool
		linkID, uri      string
	)

	switch parameter {
	case oscSetIconAndWindowTitle, oscSetWindowIcon, oscSetWindowTitle:
		// the payload is the title, verbatim; empty is a valid title
		title = payload
		success = true
	case oscSetColor:
		tableIndex, color, success = parseColorTableSpec(payload)
	case oscSetForegroundColor, oscSetBackgroundColor, oscSetCursorColor:
		color, success = parseColorSpec(payload)
	case oscSetClipboard:
		clipboardContent, queryClipboard, success = parseClipboard(payload)
	case oscResetCursorColor:
		color = invalidColor
		success = true
	case oscHyperlink:
		linkID, uri, success = parseHyperlink(payload)
	default:
		util.Logger.Debug("unhandled OSC", "parameter", parameter)
	}

	if success {
		switch parameter {
		case oscSetIconAndWindowTitle, oscSetWindowIcon, oscSetWindowTitle:
			success = ok(e.dispatch.SetWindowTitle(title))
			e.telemetry.Log(TelOSCWindowTitle)
		case oscSetColor:
			success = ok(e.dispatch.SetColorTableEntry(tableIndex, color))
			e.telemetry.Log(TelOSCColorTable)
		case oscSetForegroundColor:
			success = ok(e.dispatch.SetDefaultForeground(color))
			e.telemetry.Log(TelOSCForeground)
		case oscSetBackgroundColor:
			success = ok(e.dispatch.SetDefaultBackground(color))
			e.telemetry.Log(TelOSCBackground)
		case oscSetCursorColor:
			success = ok(e.dispatch.SetCursorColor(color))
			e.telemetry.Log(TelOSCCursorColor)
		case oscSetClipboard:
			// a query is for the input side; it is recognized but not
			// dispatched here
			if !queryClipboard {
				success = ok(e.dispatch.SetClipboard(clipboardContent))
			}
			e.telemetry.Log(TelOSCClipboard)
		case oscResetCursorColor:
			success = ok(e.dispatch.SetCursorColor(color))
			e.telemetry.Log(TelOSCResetCursorColor)
		case oscHyperlink:
			if uri == "" {
				success = ok(e.dispatch.EndHyperlink())
			} else {
				success = ok(e.dispatch.AddHyperlink(uri, linkID))
			}
			e.telemetry.Log(TelOSCHyperlink)
		}
	}

	if e.flushToTerminal != nil && !success {
		success = e.flushToTerminal()
	}
	e.clearLastChar()
	return success
}

// ActionSs3Dispatch always fails: no SS3 sequences are defined on the
// output side.
func (e *OutputEngine) ActionSs3Dispatch(ch rune, params []int) bool {
	e.clearLastChar()
	return false
}

func (e *OutputEngine) ActionClear() bool {
	return true
}

func (e *OutputEngine) ActionIgnore() bool {
	return true
}

// The output engine dispatches an SS3 on its final character.
func (e *OutputEngine) ParseControlSequenceAfterSs3() bool {
	return false
}

// Partial sequences persist across input chunks.
func (e *OutputEngine) FlushAtEndOfString() bool {
	return false
}

// A control character in the Escape state executes without disturbing
// the pending escape.
func (e *OutputEngine) DispatchControlCharsFromEscape() bool {
	return false
}

// Intermediates collected in Escape are buffered; charset designations
// need them.
func (e *OutputEngine) DispatchIntermediatesFromEscape() bool {
	return false
}

// parameter validation

func getCursorDistance(params []int) (int, bool) {
	distance := 1
	success := false
	switch len(params) {
	case 0:
		success = true
	case 1:
		distance = params[0]
		success = true
	}
	// distances of 0 are treated as 1
	if distance == 0 {
		distance = 1
	}
	return distance, success
}

func getScrollDistance(params []int) (int, bool) {
	return getCursorDistance(params)
}

func getTabDistance(params []int) (int, bool) {
	return getCursorDistance(params)
}

func getRepeatCount(params []int) (int, bool) {
	return getCursorDistance(params)
}

func getXYPosition(params []int) (line, column int, success bool) {
	line, column = 1, 1
	switch len(params) {
	case 0:
		success = true
	case 1:
		line = params[0]
		success = true
	case 2:
		line = params[0]
		column = params[1]
		success = true
	}
	// a 0 coordinate means 1 in the 1-origin convention
	if line == 0 {
		line = 1
	}
	if column == 0 {
		column = 1
	}
	return line, column, success
}

// Having only a top or only a bottom margin is legal; an inverted pair
// is rejected.
func getTopBottomMargins(params []int) (top, bottom int, success bool) {
	switch len(params) {
	case 0:
		success = true
	case 1:
		top = params[0]
		success = true
	case 2:
		top = params[0]
		bottom = params[1]
		success = true
	}
	if bottom > 0 && bottom < top {
		success = false
	}
	return top, bottom, success
}

func getEraseOperation(params []int) (EraseType, bool) {
	if len(params) == 0 {
		return EraseToEnd, true
	}
	if len(params) == 1 {
		switch t := EraseType(params[0]); t {
		case EraseToEnd, EraseFromBeginning, EraseAll, EraseScrollback:
			return t, true
		}
	}
	return EraseToEnd, false
}

func getDeviceStatusOperation(params []int) (StatusType, bool) {
	if len(params) == 1 {
		switch t := StatusType(params[0]); t {
		case StatusOperatingStatus, StatusCursorPositionReport:
			return t, true
		}
	}
	return 0, false
}

func getPrivateModeParams(params []int) ([]PrivateMode, bool) {
	// can't set nothing at all
	if len(params) == 0 {
		return nil, false
	}
	modes := make([]PrivateMode, 0, len(params))
	for _, p := range params {
		modes = append(modes, PrivateMode(p))
	}
	return modes, true
}

func verifyDeviceAttributesParams(params []int) bool {
	return len(params) == 0 || (len(params) == 1 && params[0] == 0)
}

func getTabClearType(params []int) (TabClearType, bool) {
	switch len(params) {
	case 0:
		return ClearCurrentColumn, true
	case 1:
		return TabClearType(params[0]), true
	}
	return ClearCurrentColumn, false
}

func getWindowManipulationType(params []int) (WindowManipulationType, bool) {
	if len(params) > 0 {
		switch f := WindowManipulationType(params[0]); f {
		case RefreshWindow, ResizeWindowInCharacters:
			return f, true
		}
	}
	return WindowManipulationInvalid, false
}

func getCursorStyle(params []int) (CursorStyle, bool) {
	switch len(params) {
	case 0:
		return CursorStyleUserDefault, true
	case 1:
		return CursorStyle(params[0]), true
	}
	return CursorStyleUserDefault, false
}

// An empty SGR means reset everything.
func appendGraphicsOptions(options []GraphicsOption, params []int) []GraphicsOption {
	if len(params) == 0 {
		return append(options, GraphicsOff)
	}
	for _, p := range params {
		options = append(options, GraphicsOption(p))
	}
	return options
}
