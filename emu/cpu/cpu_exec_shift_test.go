/*
 * d17bsim - shift-family executor tests.
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

import "testing"

// shiftInstr builds a bare op=0 (shift) instruction word with the given
// sub-opcode and count packed into the sector field.
func shiftInstr(subOp, count uint32) instruction {
	sector := (subOp << 3) | (count & 0x7)
	return decode(sector << sectorShift)
}

func TestALCRotateScenario(t *testing.T) {
	s := New(WithD37CMode(true))
	s.A = 0x800001
	s.execShift(shiftInstr(subALCSRL, 1))
	if s.A != 0x000003 {
		t.Fatalf("ALC 1 on 0x800001 = %#x, want 0x000003", s.A)
	}
}

func TestALCThenARCRestoresA(t *testing.T) {
	s := New(WithD37CMode(true))
	original := uint32(0x5A5A5A)
	s.A = original
	s.execShift(shiftInstr(subALCSRL, 5))
	s.execShift(shiftInstr(subARCSRR, 5))
	if s.A != original {
		t.Fatalf("ALC 5 then ARC 5 = %#x, want %#x", s.A, original)
	}
}

func TestShiftCountZeroMeansEight(t *testing.T) {
	s := New()
	s.A = 0x000001
	in := shiftInstr(subALS, 0)
	if in.shiftCnt != 8 {
		t.Fatalf("count field 0 decoded to %d, want 8", in.shiftCnt)
	}
	s.execShift(in)
	if s.A != 0x000100 {
		t.Fatalf("ALS with count-as-8 on 1 = %#x, want 0x100", s.A)
	}
}

func TestSRLD17BShiftsOnlyLowLane(t *testing.T) {
	s := New(WithD37CMode(false))
	s.A = combineLanes(0x001, 0x001)
	s.execShift(shiftInstr(subALCSRL, 1))
	if hiLane(s.A) != 0x001 {
		t.Fatalf("SRL touched the high lane: got %#x", hiLane(s.A))
	}
	if loLane(s.A) != 0x002 {
		t.Fatalf("SRL did not shift the low lane: got %#x", loLane(s.A))
	}
}
