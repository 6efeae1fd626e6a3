/*
 * d17bsim - instruction disassembler tests.
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

package disassembler

import (
	"strings"
	"testing"
)

func TestDisassembleADD(t *testing.T) {
	// ADD channel 2, sector 12, flag clear.
	word := uint32(0xD)<<20 | 2<<9 | 12<<2
	got := Disassemble(word)
	if !strings.HasPrefix(got, "ADD") || !strings.Contains(got, "2,12") {
		t.Fatalf("Disassemble(ADD 2,12) = %q", got)
	}
}

func TestDisassembleFlagMarker(t *testing.T) {
	word := uint32(0xD)<<20 | 1<<19 | 2<<9 | 5<<2
	got := Disassemble(word)
	if !strings.Contains(got, "F2,5") {
		t.Fatalf("Disassemble(flagged ADD) = %q, want F marker before operand", got)
	}
}

func TestDisassembleShiftCountZeroMeansEight(t *testing.T) {
	sub := uint32(0x0B) // ALC/SRL
	word := (sub << 3) << sectorShift
	got := Disassemble(word)
	if !strings.Contains(got, "8") {
		t.Fatalf("Disassemble(shift count=0) = %q, want count rendered as 8", got)
	}
}

func TestDisassembleSpecialHPR(t *testing.T) {
	sub := uint32(0x09)
	word := uint32(0x8)<<20 | (sub << 1) << sectorShift
	got := Disassemble(word)
	if !strings.HasPrefix(got, "HPR") {
		t.Fatalf("Disassemble(HPR) = %q", got)
	}
}

func TestDisassembleUnknownOpcode(t *testing.T) {
	word := uint32(0x3) << 20
	got := Disassemble(word)
	if !strings.HasPrefix(got, "???") {
		t.Fatalf("Disassemble(opcode 3) = %q, want unknown marker", got)
	}
}
