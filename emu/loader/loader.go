/*
 * d17bsim - TOML demo program loader.
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

// Package loader reads a demo program as TOML: a flat list of
// (channel, sector, word) pokes plus the entry location to start the
// core at, rather than a full assembler (spec.md excludes one).
package loader

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/zanehambly/d17bsim/emu/cpu"
)

// Word is one memory poke: a word deposited at a channel/sector pair.
type Word struct {
	Channel uint32 `toml:"channel"`
	Sector  uint32 `toml:"sector"`
	Value   uint32 `toml:"value"`
}

// IPL is a program's start location and instruction-set mode, the
// same pair the IPL/MODE config directives (config/bootconfig) can
// also set from outside a program file.
type IPL struct {
	Channel  uint32 `toml:"channel"`
	Sector   uint32 `toml:"sector"`
	D37CMode bool   `toml:"d37c_mode"`
}

// Program is a demo program: its memory image and its start location.
type Program struct {
	Name  string `toml:"name"`
	IPL   IPL    `toml:"ipl"`
	Words []Word `toml:"word"`
}

// Load parses a TOML program file from path.
func Load(path string) (*Program, error) {
	var p Program
	if _, err := toml.DecodeFile(path, &p); err != nil {
		return nil, fmt.Errorf("loading program %s: %w", path, err)
	}
	return &p, nil
}

// Install pokes every word of p into s and positions the location
// counter at its entry point; it does not reset s first.
func (p *Program) Install(s *cpu.State) {
	s.SetD37CMode(p.IPL.D37CMode)
	for _, w := range p.Words {
		s.Write(w.Channel, w.Sector, w.Value)
	}
	s.I = (p.IPL.Channel << 9) | (p.IPL.Sector << 2)
}
