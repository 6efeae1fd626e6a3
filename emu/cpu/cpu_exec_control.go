/*
 * d17bsim - control-family executor: TRA, TMI, TZE, SCL (spec §4.7).
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

func jumpTarget(in instruction) uint32 {
	return (in.channel << 9) | (in.sector << 2)
}

// execTRA is the unconditional jump.
func (s *State) execTRA(in instruction) (jumped bool, target uint32) {
	return true, jumpTarget(in)
}

// execTMI jumps iff bit 23 of A is set. Used both by the plain op=6 slot
// and, in D17B mode, by the op=2 slot.
func (s *State) execTMI(in instruction) (jumped bool, target uint32) {
	if s.A&SignBit != 0 {
		return true, jumpTarget(in)
	}
	return false, 0
}

// execTZE jumps iff A's magnitude is zero; positive and negative zero
// both satisfy it. Occupies the op=2 slot in D37C mode.
func (s *State) execTZE(in instruction) (jumped bool, target uint32) {
	if s.A&MagnitudeMask == 0 {
		return true, jumpTarget(in)
	}
	return false, 0
}

// execTmiTze resolves the op=2 slot collision by mode.
func (s *State) execTmiTze(in instruction) (jumped bool, target uint32) {
	if s.d37cMode {
		return s.execTZE(in)
	}
	return s.execTMI(in)
}

func clamp32(v, bound int32) int32 {
	if v > bound {
		return bound
	}
	if v < -bound {
		return -bound
	}
	return v
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

// execSCL implements split-compare-and-limit: each 12-bit lane of A is
// sign-extended and clamped to [-|operand_lane|, +|operand_lane|].
func (s *State) execSCL(in instruction) {
	operand := s.Read(in.channel, in.sector)
	aHi, aLo := splitLanes(s.A)
	opHi, opLo := splitLanes(operand)
	s.A = joinLanes(clamp32(aHi, abs32(opHi)), clamp32(aLo, abs32(opLo)))
}
