/*
 * d17bsim - arithmetic-family executors: CLA, ADD, SUB, SAD, SSU, MPY,
 * SMP, DIV/MPM, STO, and the shared flag-store side effect.
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

// applyFlagStore implements the side effect common to every arithmetic
// opcode that carries its flag bit (spec §4.6): route the current A into
// the destination selected by the low 3 bits of the sector field,
// independent of whatever the opcode itself does with A.
func (s *State) applyFlagStore(in instruction) {
	if !in.flag {
		return
	}
	switch in.flagCode {
	case flagNone:
		// flag bit set, but code 0 selects no destination
	case flagLoopF:
		s.F[in.sector&0x3] = s.A
	case flagTelemetry:
		// Stub: telemetry output has no observable core effect here.
	case flagChan0x28:
		s.Write(0x28, (in.sector-2)&0x7F, s.A)
	case flagLoopE:
		s.E[in.sector&0x7] = s.A
	case flagL:
		s.L = s.A
	case flagLoopH:
		s.H[in.sector&0xF] = s.A
	case flagU:
		s.U = s.A
	}
}

// execArithmetic dispatches the arithmetic-family opcodes (CLA, ADD, SUB,
// SAD, SSU, MPY, SMP, MPM/DIV, STO), each of which reads its operand from
// (C,S), performs its operation, then applies flag-store against the
// resulting A if F=1.
func (s *State) execArithmetic(in instruction) {
	operand := s.Read(in.channel, in.sector)

	switch in.opcode {
	case opCla:
		s.A = operand
	case opAdd:
		s.A = add24(s.A, operand)
	case opSub:
		s.A = sub24(s.A, operand)
	case opSad:
		s.A = laneAdd12(s.A, operand)
	case opSsu:
		s.A = laneSub12(s.A, operand)
	case opMpy:
		s.A, s.L = multiply24(s.A, operand)
	case opSmp:
		s.A, s.L = multiplySplit10(s.A, operand)
	case opDivMpm:
		if s.d37cMode {
			s.execDIV(operand)
		} else {
			s.execMPM(operand)
		}
	case opSto:
		s.Write(in.channel, in.sector, s.A)
	}

	s.applyFlagStore(in)
}

// execDIV implements the D37C DIV opcode: A:L form a 46-bit dividend,
// divided by operand. Division by zero sets the error flag and leaves
// A/L untouched.
func (s *State) execDIV(operand uint32) {
	q, r, divByZero, overflow := divide24(s.A, s.L, operand)
	if divByZero {
		s.error = true
		return
	}
	s.A = q
	s.L = r
	if overflow {
		s.error = true
	}
}

// execMPM implements the D17B MPM opcode occupying the same opcode slot
// as DIV: treat A and the operand as their absolute values, then perform
// a full multiply.
func (s *State) execMPM(operand uint32) {
	s.A, s.L = multiply24(s.A&MagnitudeMask, operand&MagnitudeMask)
}
