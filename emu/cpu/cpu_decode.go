/*
 * d17bsim - instruction fetch and field decode.
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

// instruction holds the fields extracted from one fetched instruction
// word: primary opcode, flag bit, next-sector pointer, operand channel
// and sector, plus the sub-fields the shift/special families carve out
// of the sector field.
type instruction struct {
	word    uint32
	opcode  uint32
	flag    bool
	sp      uint32
	channel uint32
	sector  uint32

	flagCode  uint32 // low 3 bits of sector, used by flag-store
	shiftOp   uint32 // (sector>>3)&0x1F, shift family
	shiftCnt  uint32 // sector&7, 0 means 8
	specialOp uint32 // (sector>>1)&0x3F, special family
}

// decode splits a raw instruction word into its fields (spec §4.3).
func decode(word uint32) instruction {
	sector := (word >> sectorShift) & sectorMask
	count := sector & 0x7
	if count == 0 {
		count = 8
	}
	return instruction{
		word:      word,
		opcode:    (word >> opcodeShift) & opcodeMask,
		flag:      (word>>flagShift)&flagMask != 0,
		sp:        (word >> spShift) & spMask,
		channel:   (word >> channelShift) & channelMask,
		sector:    sector,
		flagCode:  sector & flagCodeMask,
		shiftOp:   (sector >> 3) & 0x1F,
		shiftCnt:  count,
		specialOp: (sector >> 1) & 0x3F,
	}
}

// fetch reads the instruction at the current location counter I and
// decodes it; I itself is left unchanged.
func (s *State) fetch() instruction {
	channel := (s.I >> 9) & channelMask
	sector := (s.I >> 2) & sectorMask
	word := s.Read(channel, sector)
	return decode(word)
}
