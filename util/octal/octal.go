/*
 * d17bsim - convert words to octal strings.
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

// Package octal formats words the way the console displays them: the
// guidance computer's native radix, not hex. Channel and sector
// addresses in the field manuals are given in octal, so the examine
// and show commands follow suit.
package octal

import "strings"

const octalMap = "01234567"

// FormatWord writes a 24-bit word as 8 octal digits followed by a space.
func FormatWord(str *strings.Builder, words []uint32) {
	for _, word := range words {
		shift := 21
		for range 8 {
			str.WriteByte(octalMap[(word>>shift)&0x7])
			shift -= 3
		}
		str.WriteByte(' ')
	}
}

// FormatSector writes a 7-bit sector index as 3 octal digits.
func FormatSector(str *strings.Builder, sector uint32) {
	str.WriteByte(octalMap[(sector>>6)&0x7])
	str.WriteByte(octalMap[(sector>>3)&0x7])
	str.WriteByte(octalMap[sector&0x7])
}

// FormatChannel writes a 6-bit channel index as 2 octal digits.
func FormatChannel(str *strings.Builder, channel uint32) {
	str.WriteByte(octalMap[(channel>>3)&0x7])
	str.WriteByte(octalMap[channel&0x7])
}
