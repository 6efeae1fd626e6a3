/*
 * d17bsim - special-family executor: I/O latches, halt, countdown gate,
 * bitwise ops, phase-register load (spec §4.6).
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

// execSpecial dispatches the special family (spec §4.6). Unrecognized
// sub-opcodes are absorbed silently, same as the shift family.
func (s *State) execSpecial(in instruction) {
	switch in.specialOp {
	case subBOA:
		s.binaryOut[0] = uint8((s.A >> 22) & 0x3)
	case subBOB:
		s.binaryOut[1] = uint8((s.A >> 22) & 0x3)
	case subBOC:
		s.binaryOut[2] = uint8((s.A >> 22) & 0x3)
	case subRSD:
		s.detector = false
	case subHPR:
		s.halted = true
	case subDOA:
		s.discreteOutA = s.A
	case subVOA:
		s.voltageOut[0] = int16(toSigned(s.A) >> 15)
	case subVOB:
		s.voltageOut[1] = int16(toSigned(s.A) >> 15)
	case subVOC:
		s.voltageOut[2] = int16(toSigned(s.A) >> 15)
	case subORA:
		if s.d37cMode {
			s.A = s.A | s.L
		}
	case subANA:
		s.A = s.A & s.L
	case subMIM:
		s.A |= SignBit
	case subCOM:
		s.A = complement24(s.A)
	case subDIB:
		s.A = s.discreteInB
	case subDIA:
		s.A = s.discreteInA
	case subHFC:
		s.countdownEnabled = false
	case subEFC:
		s.countdownEnabled = true
	case subLPR:
		s.P = in.sector & 0x7
	default:
		if in.specialOp == 0x1F {
			s.P = in.sector & 0x7
		}
	}

	switch in.specialOp {
	case subBOA, subBOB, subBOC, subDOA, subVOA, subVOB, subVOC, subDIB, subDIA:
		if s.log != nil && s.debug&debugIO != 0 {
			s.log.Debug("io", "category", "IO", "sub", in.specialOp, "a", s.A)
		}
	}
}
