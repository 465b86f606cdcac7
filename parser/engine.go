// Copyright 2021 weiplanet. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parser

// Engine receives the actions the state machine emits as it classifies
// input. Exactly one action fires per recognized event; the boolean
// result reports whether the engine could act on it, which the machine
// only uses for fall-back logging.
//
// The four predicates configure the machine for the engine attached to
// it. The output engine answers false to all of them: SS3 sequences
// dispatch on their final, control characters seen in the Escape state
// execute without disturbing the pending escape, intermediates collected
// in Escape are buffered for charset designations, and partial sequences
// persist across input chunks.
type Engine interface {
	ActionExecute(ch rune) bool
	ActionExecuteFromEscape(ch rune) bool
	ActionPrint(ch rune) bool
	ActionPrintString(s string) bool
	ActionPassThroughString(s string) bool
	ActionEscDispatch(id VTID) bool
	ActionVt52EscDispatch(id VTID, params []int) bool
	ActionCsiDispatch(id VTID, params []int) bool
	ActionOscDispatch(terminator rune, parameter int, payload string) bool
	ActionSs3Dispatch(ch rune, params []int) bool
	ActionClear() bool
	ActionIgnore() bool

	ParseControlSequenceAfterSs3() bool
	FlushAtEndOfString() bool
	DispatchControlCharsFromEscape() bool
	DispatchIntermediatesFromEscape() bool
}
