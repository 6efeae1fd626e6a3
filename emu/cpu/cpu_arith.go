/*
 * d17bsim - 24-bit sign-magnitude word arithmetic.
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

// toSigned converts a 24-bit sign-magnitude word to a Go int. Negative
// zero (0x800000) converts to 0, same as positive zero, but is preserved
// bit-for-bit by the word representation itself.
func toSigned(w uint32) int {
	mag := int(w & MagnitudeMask)
	if w&SignBit != 0 {
		return -mag
	}
	return mag
}

// fromSigned packs a Go int back into 24-bit sign-magnitude, saturating
// at the magnitude's representable range.
func fromSigned(v int) uint32 {
	neg := v < 0
	if neg {
		v = -v
	}
	if v > MagnitudeMask {
		v = MagnitudeMask
	}
	w := uint32(v) & MagnitudeMask
	if neg {
		w |= SignBit
	}
	return w
}

// add24 computes a+b as sign-magnitude words, saturating to +-max
// magnitude rather than wrapping.
func add24(a, b uint32) uint32 {
	return fromSigned(toSigned(a) + toSigned(b))
}

// sub24 computes a-b as sign-magnitude words, saturating like add24.
func sub24(a, b uint32) uint32 {
	return fromSigned(toSigned(a) - toSigned(b))
}

// complement24 flips the sign bit, leaving the magnitude untouched.
func complement24(w uint32) uint32 {
	return w ^ SignBit
}

// productToAL packs a signed product into the A:L pair the way every
// multiply variant distributes its result: A gets the sign and the high
// 23 bits of the magnitude, L gets the low 23 bits.
func productToAL(product int64) (hi, lo uint32) {
	neg := product < 0
	if neg {
		product = -product
	}
	hiVal := uint32(product>>23) & MagnitudeMask
	loVal := uint32(product) & MagnitudeMask
	if neg {
		hiVal |= SignBit
	}
	return hiVal, loVal
}

// multiply24 implements the MPY full multiply: a signed 24-bit
// sign-magnitude product of the two full-precision operands, distributed
// into A:L by productToAL.
func multiply24(a, b uint32) (hi, lo uint32) {
	return productToAL(int64(toSigned(a)) * int64(toSigned(b)))
}

// lane10 extracts the 10-bit signed lane SMP multiplies: bits 23..14 of
// the source word, sign preserved from the original bit 23. This lane
// width is distinct from SAD/SSU's 12-bit lanes and must not share logic
// with them.
func lane10(w uint32) int {
	raw := (w >> 14) & 0x3FF
	if raw&0x200 != 0 {
		return -int(raw & 0x1FF)
	}
	return int(raw & 0x1FF)
}

// multiplySplit10 implements the SMP split-word multiply: each operand
// is the 10-bit signed lane taken from bits 23..14, multiplied and
// distributed into A:L by the same rule as the full multiply.
func multiplySplit10(a, b uint32) (hi, lo uint32) {
	return productToAL(int64(lane10(a)) * int64(lane10(b)))
}

// divide24 implements the 46-bit dividend (A:L) over 24-bit divisor
// division used by DIV. divByZero is true when the divisor magnitude is
// zero, in which case the caller must set the error flag and leave A/L
// unchanged. overflow is true when the quotient magnitude exceeds
// 2^23-1, in which case quotient is already saturated and the caller
// must still set the error flag.
func divide24(a, l, divisor uint32) (quotient, remainder uint32, divByZero, overflow bool) {
	if divisor&MagnitudeMask == 0 {
		return 0, 0, true, false
	}

	dividend := (int64(a&MagnitudeMask) << 23) | int64(l&MagnitudeMask)
	dividendNeg := a&SignBit != 0
	divisorNeg := divisor&SignBit != 0

	q := dividend / int64(divisor&MagnitudeMask)
	r := dividend % int64(divisor&MagnitudeMask)

	quotientNeg := dividendNeg != divisorNeg

	if q > MagnitudeMask {
		return MagnitudeMask | boolSign(quotientNeg), 0, false, true
	}

	qWord := uint32(q) & MagnitudeMask
	if quotientNeg && qWord != 0 {
		qWord |= SignBit
	}

	rWord := uint32(r) & MagnitudeMask
	if dividendNeg && rWord != 0 {
		rWord |= SignBit
	}

	return qWord, rWord, false, false
}

func boolSign(neg bool) uint32 {
	if neg {
		return SignBit
	}
	return 0
}

// laneAdd12/laneSub12 implement the 12-bit dual-lane split-word
// arithmetic used by SAD/SSU/SCL/the shift family: the word is split into
// two independent 12-bit lanes (bits 23..12 and 11..0), each lane
// computed without carry or borrow across the split, and without
// saturation (this lane split is distinct from multiplySplit10's 10-bit
// lanes and must not share logic with it).
func splitLanes(w uint32) (hi, lo int32) {
	hiRaw := (w >> 12) & 0xFFF
	loRaw := w & 0xFFF
	return signExtend12(hiRaw), signExtend12(loRaw)
}

func signExtend12(v uint32) int32 {
	if v&0x800 != 0 {
		return int32(v) - 0x1000
	}
	return int32(v)
}

func joinLanes(hi, lo int32) uint32 {
	hiField := uint32(hi) & 0xFFF
	loField := uint32(lo) & 0xFFF
	return (hiField << 12) | loField
}

func laneAdd12(a, b uint32) uint32 {
	ah, al := splitLanes(a)
	bh, bl := splitLanes(b)
	return joinLanes(ah+bh, al+bl)
}

func laneSub12(a, b uint32) uint32 {
	ah, al := splitLanes(a)
	bh, bl := splitLanes(b)
	return joinLanes(ah-bh, al-bl)
}
