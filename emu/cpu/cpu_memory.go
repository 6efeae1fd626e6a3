/*
 * d17bsim - channel/sector memory model and rapid-access loop aliasing.
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

import "github.com/zanehambly/d17bsim/util/debug"

// Read fetches the word stored at channel/sector. Rapid-access loop
// channels (F/H/E/U/L/V/R) are aliased onto their own small stores (or,
// for U and L, onto the U and L registers directly) and bypass the main
// channel/sector grid entirely.
func (s *State) Read(channel, sector uint32) uint32 {
	switch channel {
	case LoopF:
		return s.F[sector%sizeF]
	case LoopH:
		return s.H[sector%sizeH]
	case LoopE:
		return s.E[sector%sizeE]
	case LoopU:
		return s.U
	case LoopL:
		return s.L
	case LoopV:
		return s.V[sector%sizeV]
	case LoopR:
		return s.R[sector%sizeR]
	}
	if channel >= Channels || sector >= Sectors {
		return 0
	}
	debug.Debugf("mem", int(s.debug), int(debugMem), "read ch=%d sec=%d", channel, sector)
	if s.log != nil && s.debug&debugMem != 0 {
		s.log.Debug("mem read", "category", "MEM", "channel", channel, "sector", sector)
	}
	return s.memory[channel][sector]
}

// Write stores word at channel/sector, through the same loop-alias rules
// as Read. Every write is masked to 24 bits before it lands.
func (s *State) Write(channel, sector, word uint32) {
	word &= WordMask
	switch channel {
	case LoopF:
		s.F[sector%sizeF] = word
		return
	case LoopH:
		s.H[sector%sizeH] = word
		return
	case LoopE:
		s.E[sector%sizeE] = word
		return
	case LoopU:
		s.U = word
		return
	case LoopL:
		s.L = word
		return
	case LoopV:
		s.V[sector%sizeV] = word
		return
	case LoopR:
		s.R[sector%sizeR] = word
		return
	}
	if channel >= Channels || sector >= Sectors {
		return
	}
	debug.Debugf("mem", int(s.debug), int(debugMem), "write ch=%d sec=%d word=%07o", channel, sector, word)
	if s.log != nil && s.debug&debugMem != 0 {
		s.log.Debug("mem write", "category", "MEM", "channel", channel, "sector", sector, "word", word)
	}
	s.memory[channel][sector] = word
}
