/*
 * d17bsim - D17B/D37C guidance computer state layout and instruction
 * constants.
 *
 * Copyright 2026, Zane Hambly
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

// Package cpu implements the D17B/D37C cycle-stepped guidance computer
// core: its 24-bit sign-magnitude word format, its 47x128 channel/sector
// memory plus rapid-access loop aliases, its instruction decoder and the
// five executor families (arithmetic, shift, control, special, transfer).
package cpu

import (
	"errors"
	"log/slog"
)

// debugMask selects which trace categories Debug has enabled.
type debugMask int

const (
	debugInst debugMask = 1 << iota
	debugMem
	debugIO
)

var debugOption = map[string]debugMask{
	"INST": debugInst,
	"MEM":  debugMem,
	"IO":   debugIO,
}

var debugMsk debugMask

// Debug enables a trace category by name for every core created by New
// from this point on; a core that already exists keeps the mask it was
// created with, including across Reset. Unknown category names are
// reported as errors.
func Debug(opt string) error {
	flag, ok := debugOption[opt]
	if !ok {
		return errors.New("cpu debug option invalid: " + opt)
	}
	debugMsk |= flag
	return nil
}

// DebugEnabled reports whether opt has been enabled via Debug. It is
// meant to be handed to a log handler (see util/logger.NewHandler) so a
// --log file can be gated by the same trace categories DEBUG enables.
func DebugEnabled(opt string) bool {
	flag, ok := debugOption[opt]
	return ok && debugMsk&flag != 0
}

const (
	// WordBits is the native word width; WordMask covers magnitude plus sign.
	WordBits = 24
	WordMask = 0xFFFFFF

	// SignBit is the top bit of a word: 0 = positive, 1 = negative.
	SignBit       = 0x800000
	MagnitudeMask = 0x7FFFFF
)

// Memory geometry: 47 channels of 128 sectors each addressed directly by
// an instruction's channel/sector fields.
const (
	Channels = 47
	Sectors  = 128
)

// Rapid-access loop channel addresses (spec §4.2, given in octal), aliased
// onto dedicated small loop stores rather than the main channel/sector
// grid. Each loop's sector index is taken modulo its own size, independent
// of the 128-sector grid; U and L alias the U and L registers directly.
const (
	LoopF = 052 // discrete telemetry loop, 4 words, index sector&3
	LoopH = 054 // high-speed loop, 16 words, index sector&15
	LoopE = 056 // engine-status loop, 8 words, index sector&7
	LoopU = 060 // U register, index ignored
	LoopL = 064 // L register, index ignored
	LoopV = 070 // voltage-monitor input loop, 4 words, index sector&3
	LoopR = 072 // resolver input loop, 4 words, index sector&3
)

const (
	sizeF = 4
	sizeH = 16
	sizeE = 8
	sizeV = 4
	sizeR = 4
)

// Instruction field extraction (spec §4.3).
const (
	opcodeShift = 20
	opcodeMask  = 0xF

	flagShift = 19
	flagMask  = 0x1

	spShift = 15
	spMask  = 0xF

	channelShift = 9
	channelMask  = 0x3F

	sectorShift = 2
	sectorMask  = 0x7F

	flagCodeMask = 0x7
)

// Primary opcode families (spec §4.3). Opcode 3 is unassigned and is
// absorbed as a no-op, same as an unrecognized shift/special sub-opcode.
const (
	opShift   = 0x0
	opScl     = 0x1
	opTmiTze  = 0x2 // TMI in D17B mode, TZE in D37C mode
	opSmp     = 0x4
	opMpy     = 0x5
	opTmi     = 0x6 // unconditional-mode TMI, same in both modes
	opDivMpm  = 0x7 // DIV in D37C mode, MPM in D17B mode
	opSpecial = 0x8
	opCla     = 0x9
	opTra     = 0xA
	opSto     = 0xB
	opSad     = 0xC
	opAdd     = 0xD
	opSsu     = 0xE
	opSub     = 0xF
)

// Shift-family sub-opcodes, carved from the S field as (S>>3)&0x1F with
// a 0..7 count in the low 3 bits (spec §4.5). ALC and SRL share slot
// 0x0B, ARC and SRR share slot 0x0F: d37c_mode, read at dispatch time,
// resolves which runs.
const (
	subSAL    = 0x08
	subALS    = 0x09
	subSLL    = 0x0A
	subALCSRL = 0x0B
	subSAR    = 0x0C
	subARS    = 0x0D
	subSLR    = 0x0E
	subARCSRR = 0x0F
	subCOA    = 0x10
)

// Special-family sub-opcodes, carved from the S field as (S>>1)&0x3F
// (spec §4.6).
const (
	subBOC = 0x01
	subBOA = 0x04
	subBOB = 0x05
	subRSD = 0x08
	subHPR = 0x09
	subDOA = 0x0B
	subVOA = 0x0C
	subVOB = 0x0D
	subVOC = 0x0E
	subORA = 0x10 // D37C only
	subANA = 0x11
	subMIM = 0x12
	subCOM = 0x13
	subDIB = 0x14
	subDIA = 0x15
	subHFC = 0x18 // also the undefined GPT slot; spec §9 resolves this as HFC
	subEFC = 0x19
	subLPR = 0x1E // 0x1E and 0x1F both select LPR
)

// Flag-store routing table (spec §4.6): when an arithmetic instruction
// has its flag bit set, the low 3 bits of S select where A is
// additionally stored, independent of the instruction's normal result
// destination.
const (
	flagNone      = 0
	flagLoopF     = 1
	flagTelemetry = 2
	flagChan0x28  = 3
	flagLoopE     = 4
	flagL         = 5
	flagLoopH     = 6
	flagU         = 7
)

// State is the complete architectural state of one D17B/D37C core: its
// registers, its memory, and its discrete I/O latches.
type State struct {
	A uint32 // accumulator
	L uint32 // lower accumulator / remainder / low product
	N uint32 // internal multiply scratch
	I uint32 // location counter: (channel<<9) | (sector<<2)
	P uint32 // phase register, 0-7, set by LPR
	U uint32 // 1-word loop

	F [sizeF]uint32 // rapid-access loop
	E [sizeE]uint32 // rapid-access loop
	H [sizeH]uint32 // rapid-access loop
	V [sizeV]uint32 // resolver/voltage input loop
	R [sizeR]uint32 // resolver input loop

	memory [Channels][Sectors]uint32

	currentSector uint32
	cycleCount    uint64
	halted        bool
	error         bool

	d37cMode bool

	discreteInA  uint32
	discreteInB  uint32
	discreteOutA uint32
	voltageOut   [4]int16
	binaryOut    [4]uint8
	detector     bool

	fineCountdown    uint32
	countdownEnabled bool

	log   *slog.Logger
	debug debugMask
}

// StepResult reports the outcome of a single Step call.
type StepResult struct {
	OK     bool
	Halted bool
	Error  bool
}

// RunResult reports why Run returned.
type RunResult struct {
	Halted          bool
	BudgetExhausted bool
	CyclesRun       uint64
}

// Option configures a State at construction time.
type Option func(*State)

// WithD37CMode overrides the default D37C-mode-enabled boot state.
func WithD37CMode(enabled bool) Option {
	return func(s *State) { s.d37cMode = enabled }
}

// WithLogger attaches a structured logger; a nil logger disables logging.
func WithLogger(l *slog.Logger) Option {
	return func(s *State) { s.log = l }
}
