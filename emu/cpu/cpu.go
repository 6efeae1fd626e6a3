/*
 * d17bsim - fetch-step driver: New, Reset, Step, Run and the per-family
 * opcode dispatch (spec §4.7).
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

package cpu

// New creates a State in its post-init condition: every field zeroed,
// D37C mode enabled by default, I = 0.
func New(opts ...Option) *State {
	s := &State{d37cMode: true, debug: debugMsk}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Reset re-zeros all runtime state (registers, loops, memory, latches)
// but leaves d37c_mode untouched.
func (s *State) Reset() {
	mode := s.d37cMode
	log := s.log
	debug := s.debug
	*s = State{}
	s.d37cMode = mode
	s.log = log
	s.debug = debug
}

// D37CMode reports the current instruction-set mode.
func (s *State) D37CMode() bool { return s.d37cMode }

// SetD37CMode changes the instruction-set mode.
func (s *State) SetD37CMode(enabled bool) { s.d37cMode = enabled }

// Halted reports whether HPR has halted this core.
func (s *State) Halted() bool { return s.halted }

// Error reports whether a divide fault has latched.
func (s *State) Error() bool { return s.error }

// SetDiscreteInA/SetDiscreteInB load the discrete input latches the host
// writes before a step.
func (s *State) SetDiscreteInA(v uint32) { s.discreteInA = v & WordMask }
func (s *State) SetDiscreteInB(v uint32) { s.discreteInB = v & WordMask }

// DiscreteInA reports the discrete input latch A.
func (s *State) DiscreteInA() uint32 { return s.discreteInA }

// DiscreteOutA, VoltageOut and BinaryOut are the output latches the host
// reads after a step.
func (s *State) DiscreteOutA() uint32     { return s.discreteOutA }
func (s *State) VoltageOut(i int) int16   { return s.voltageOut[i] }
func (s *State) BinaryOut(i int) uint8    { return s.binaryOut[i] }
func (s *State) Detector() bool           { return s.detector }
func (s *State) SetDetector(v bool)       { s.detector = v }
func (s *State) FineCountdown() uint32    { return s.fineCountdown }
func (s *State) SetFineCountdown(v uint32) { s.fineCountdown = v & WordMask }
func (s *State) CountdownEnabled() bool   { return s.countdownEnabled }
func (s *State) CycleCount() uint64       { return s.cycleCount }
func (s *State) CurrentSector() uint32    { return s.currentSector }

// execute dispatches one decoded instruction to its family executor.
// Control-family instructions report whether they jumped and, if so,
// where to.
func (s *State) execute(in instruction) (jumped bool, target uint32) {
	switch in.opcode {
	case opShift:
		s.execShift(in)
	case opScl:
		s.execSCL(in)
	case opTmiTze:
		return s.execTmiTze(in)
	case opSmp, opMpy, opDivMpm, opCla, opSto, opSad, opAdd, opSsu, opSub:
		s.execArithmetic(in)
	case opTmi:
		return s.execTMI(in)
	case opSpecial:
		s.execSpecial(in)
	case opTra:
		return s.execTRA(in)
	}
	return false, 0
}

// Step executes exactly one instruction. A core that is already halted
// refuses to run and reports so without mutating further state.
func (s *State) Step() StepResult {
	if s.halted {
		return StepResult{OK: false, Halted: true}
	}

	fetchChannel := (s.I >> channelShift) & channelMask
	in := s.fetch()
	if s.log != nil && s.debug&debugInst != 0 {
		s.log.Debug("fetch", "category", "INST", "i", s.I, "opcode", in.opcode, "channel", in.channel, "sector", in.sector)
	}

	jumped, target := s.execute(in)
	if jumped {
		s.I = target
	} else {
		s.I = (fetchChannel << channelShift) | (in.sp << sectorShift)
	}

	s.currentSector = (s.currentSector + 1) % Sectors
	s.cycleCount++
	if s.countdownEnabled && s.fineCountdown > 0 {
		s.fineCountdown--
	}

	return StepResult{OK: true, Halted: s.halted, Error: s.error}
}

// Run steps repeatedly until halted, an error latches, or maxCycles
// steps have run, whichever comes first.
func (s *State) Run(maxCycles uint64) RunResult {
	var ran uint64
	for ran < maxCycles {
		if s.halted || s.error {
			break
		}
		s.Step()
		ran++
	}
	return RunResult{
		Halted:          s.halted,
		BudgetExhausted: ran >= maxCycles && !s.halted && !s.error,
		CyclesRun:       ran,
	}
}
