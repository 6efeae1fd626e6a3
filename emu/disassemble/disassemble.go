/*
 * d17bsim - instruction disassembler.
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

// Package disassembler renders a 24-bit instruction word as a mnemonic
// and operand string for the console's and the CLI's disasm commands.
package disassembler

import "fmt"

const (
	opcodeShift = 20
	flagShift   = 19
	channelShift = 9
	channelMask  = 0x3F
	sectorShift  = 2
	sectorMask   = 0x7F
)

var primaryName = map[uint32]string{
	0x0: "SHF",
	0x1: "SCL",
	0x2: "TMI/TZE",
	0x4: "SMP",
	0x5: "MPY",
	0x6: "TMI",
	0x7: "DIV/MPM",
	0x8: "SPC",
	0x9: "CLA",
	0xA: "TRA",
	0xB: "STO",
	0xC: "SAD",
	0xD: "ADD",
	0xE: "SSU",
	0xF: "SUB",
}

var shiftName = map[uint32]string{
	0x08: "SAL",
	0x09: "ALS",
	0x0A: "SLL",
	0x0B: "ALC/SRL",
	0x0C: "SAR",
	0x0D: "ARS",
	0x0E: "SLR",
	0x0F: "ARC/SRR",
	0x10: "COA",
}

var specialName = map[uint32]string{
	0x01: "BOC",
	0x04: "BOA",
	0x05: "BOB",
	0x08: "RSD",
	0x09: "HPR",
	0x0B: "DOA",
	0x0C: "VOA",
	0x0D: "VOB",
	0x0E: "VOC",
	0x10: "ORA",
	0x11: "ANA",
	0x12: "MIM",
	0x13: "COM",
	0x14: "DIB",
	0x15: "DIA",
	0x18: "HFC",
	0x19: "EFC",
	0x1E: "LPR",
	0x1F: "LPR",
}

// Disassemble renders a single 24-bit instruction word as text: the
// opcode mnemonic, the flag marker if F=1, and the channel/sector
// operand (or shift/special sub-opcode name) that word decodes to.
func Disassemble(word uint32) string {
	opcode := (word >> opcodeShift) & 0xF
	flag := (word>>flagShift)&0x1 != 0
	channel := (word >> channelShift) & channelMask
	sector := (word >> sectorShift) & sectorMask

	name, ok := primaryName[opcode]
	if !ok {
		return fmt.Sprintf("??? %#07x", word)
	}

	flagMark := ""
	if flag {
		flagMark = "F"
	}

	switch opcode {
	case 0x0:
		sub := (sector >> 3) & 0x1F
		cnt := sector & 0x7
		if cnt == 0 {
			cnt = 8
		}
		sname, ok := shiftName[sub]
		if !ok {
			sname = fmt.Sprintf("sub=%#02x", sub)
		}
		return fmt.Sprintf("%-7s %d", sname, cnt)
	case 0x8:
		sub := (sector >> 1) & 0x3F
		sname, ok := specialName[sub]
		if !ok {
			sname = fmt.Sprintf("sub=%#02x", sub)
		}
		return fmt.Sprintf("%-7s %#02x", sname, sector)
	default:
		return fmt.Sprintf("%-7s %s%d,%d", name, flagMark, channel, sector)
	}
}
