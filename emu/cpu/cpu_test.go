/*
 * d17bsim - fetch-step driver tests.
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

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRunAddProgram(t *testing.T) {
	s := New()

	// CLA 0,1 ; sp=2
	s.Write(0, 0, 0x910004)
	s.Write(0, 1, 5)
	// ADD 0,3 ; sp=4
	s.Write(0, 2, 0xD2000C)
	s.Write(0, 3, 3)
	// STO 0,6 ; sp=5
	s.Write(0, 4, 0xB28018)
	// HPR
	s.Write(0, 5, 0x800048)

	res := s.Run(100)
	if !res.Halted {
		t.Fatalf("program did not halt: %+v", res)
	}
	if got := s.Read(0, 6); got != 8 {
		t.Fatalf("memory[0][6] = %d, want 8", got)
	}
}

func TestStepRefusesAfterHalt(t *testing.T) {
	s := New()
	s.halted = true
	res := s.Step()
	if res.OK || !res.Halted {
		t.Fatalf("Step on halted core = %+v, want refused", res)
	}
}

func TestResetPreservesMode(t *testing.T) {
	s := New(WithD37CMode(false))
	s.A = 0x123
	s.halted = true
	s.Reset()
	if s.d37cMode {
		t.Fatal("Reset should preserve D17B mode, got D37C")
	}
	if s.A != 0 || s.halted {
		t.Fatalf("Reset left stale state: A=%#x halted=%v", s.A, s.halted)
	}
}

func TestLoopAliasWritesBypassMainGrid(t *testing.T) {
	s := New()
	s.Write(LoopF, 1, 0xABCDEF)
	if s.memory[LoopF][1] != 0 {
		t.Fatal("loop write leaked into the main memory grid")
	}
	if got := s.Read(LoopF, 5); got != 0xABCDEF {
		t.Fatalf("Read(LoopF, 5) = %#x, want 0xABCDEF (modular aliasing of sector 1 and 5)", got)
	}
}

func TestDivideByZeroSetsErrorAndStops(t *testing.T) {
	s := New(WithD37CMode(true))
	s.A = 0
	s.L = 24
	s.Write(0, 1, 0)
	// DIV 0,1 ; op=7
	s.Write(0, 0, uint32(opDivMpm)<<20|0<<9|1<<2)

	s.Step()
	if !s.error {
		t.Fatal("divide by zero did not set error")
	}
	if res := s.Run(10); res.CyclesRun != 0 {
		t.Fatalf("Run after a latched error ran %d cycles, want 0", res.CyclesRun)
	}
}

func TestTZEvsTMIModeDispatch(t *testing.T) {
	for _, mode := range []bool{true, false} {
		s := New(WithD37CMode(mode))
		s.A = 0
		jumped, _ := s.execute(decode(uint32(opTmiTze) << 20))
		wantJump := mode // D37C: TZE jumps on zero. D17B: TMI does not jump on positive A.
		if jumped != wantJump {
			t.Errorf("mode d37c=%v: op=2 with A=0 jumped=%v, want %v", mode, jumped, wantJump)
		}
	}
}

func TestApplyFlagStoreRoutesToL(t *testing.T) {
	s := New()
	s.A = 99
	in := decode(uint32(opAdd)<<20 | 1<<19 | 5<<2) // flag=1, flagCode = 5 -> L
	s.applyFlagStore(in)
	if s.L != 99 {
		t.Fatalf("flag-store code 5 left L=%d, want 99", s.L)
	}
}

func TestApplyFlagStoreTelemetryIsStub(t *testing.T) {
	s := New()
	s.A = 99
	s.discreteOutA = 0x7F // sentinel: DOA-style latch value, set by nothing in this test
	in := decode(uint32(opAdd)<<20 | 1<<19 | 2<<2) // flag=1, flagCode = 2 -> telemetry stub
	s.applyFlagStore(in)
	if s.discreteOutA != 0x7F {
		t.Fatalf("flag-store code 2 (telemetry stub) changed discreteOutA to %#x, want untouched 0x7F", s.discreteOutA)
	}
}

func TestStateFieldsStayWithinWord(t *testing.T) {
	s := New()
	s.Write(3, 10, 0xFFFFFFFF)
	got := s.Read(3, 10)
	if diff := cmp.Diff(uint32(WordMask), got); diff != "" {
		t.Fatalf("write did not mask to 24 bits (-want +got):\n%s", diff)
	}
}
