/*
 * d17bsim - shift-family executor (spec §4.5).
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

func hiLane(w uint32) uint32 { return (w >> 12) & 0xFFF }
func loLane(w uint32) uint32 { return w & 0xFFF }

func combineLanes(hi, lo uint32) uint32 {
	return ((hi & 0xFFF) << 12) | (lo & 0xFFF)
}

// rotateLeft24 and rotateRight24 treat A as an unsigned 24-bit ring;
// count is always in [1,8].
func rotateLeft24(w, count uint32) uint32 {
	return ((w << count) | (w >> (WordBits - count))) & WordMask
}

func rotateRight24(w, count uint32) uint32 {
	return ((w >> count) | (w << (WordBits - count))) & WordMask
}

// execShift dispatches the shift family. d37cMode, read once at dispatch
// time, resolves the ALC/SRL collision at sub-op 0x0B and the ARC/SRR
// collision at 0x0F; there is no second instruction table.
func (s *State) execShift(in instruction) {
	count := in.shiftCnt

	switch in.shiftOp {
	case subSAL:
		s.A = combineLanes((hiLane(s.A)<<count)&0xFFF, (loLane(s.A)<<count)&0xFFF)
	case subALS:
		s.A = (s.A << count) & WordMask
	case subSLL:
		s.A = combineLanes((hiLane(s.A)<<count)&0xFFF, loLane(s.A))
	case subALCSRL:
		if s.d37cMode {
			s.A = rotateLeft24(s.A, count)
		} else {
			s.A = combineLanes(hiLane(s.A), (loLane(s.A)<<count)&0xFFF)
		}
	case subSAR:
		s.A = combineLanes(hiLane(s.A)>>count, loLane(s.A)>>count)
	case subARS:
		s.A = (s.A >> count) & WordMask
	case subSLR:
		s.A = combineLanes(hiLane(s.A)>>count, loLane(s.A))
	case subARCSRR:
		if s.d37cMode {
			s.A = rotateRight24(s.A, count)
		} else {
			s.A = combineLanes(hiLane(s.A), loLane(s.A)>>count)
		}
	case subCOA:
		// character-output stub, no observable core effect
	}
}
