/*
 * d17bsim - console command parser.
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

// Package parser implements the console command language for a single
// D17B/D37C core: step, run, reset, examine/deposit memory, mode
// switching and disassembly, plus tab completion for liner.
package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/zanehambly/d17bsim/emu/cpu"
	"github.com/zanehambly/d17bsim/emu/disassemble"
)

type cmd struct {
	name    string
	min     int
	process func(*cmdLine, *cpu.State) (bool, error)
}

type cmdLine struct {
	line string
	pos  int
}

var cmdList = []cmd{
	{name: "step", min: 1, process: step},
	{name: "run", min: 1, process: run},
	{name: "reset", min: 1, process: reset},
	{name: "examine", min: 2, process: examine},
	{name: "deposit", min: 3, process: deposit},
	{name: "mode", min: 2, process: mode},
	{name: "disasm", min: 3, process: disasm},
	{name: "show", min: 2, process: show},
	{name: "quit", min: 1, process: quit},
}

// ProcessCommand executes one line of console input against s.
func ProcessCommand(commandLine string, s *cpu.State) (bool, error) {
	line := cmdLine{line: commandLine}
	name := line.getWord()

	match := matchList(name)
	if len(match) == 0 {
		return false, errors.New("command not found: " + name)
	}
	if len(match) > 1 {
		return false, errors.New("ambiguous command: " + name)
	}
	return match[0].process(&line, s)
}

// CompleteCmd returns the command names matching the line's first word,
// for liner's tab completion.
func CompleteCmd(commandLine string) []string {
	line := cmdLine{line: commandLine}
	name := line.getWord()

	matches := matchList(name)
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.name
	}
	return out
}

func matchCommand(m cmd, name string) bool {
	if len(name) > len(m.name) {
		return false
	}
	for i := range name {
		if m.name[i] != name[i] {
			return false
		}
	}
	return len(name) >= m.min
}

func matchList(name string) []cmd {
	if name == "" {
		return nil
	}
	var match []cmd
	for _, m := range cmdList {
		if matchCommand(m, name) {
			match = append(match, m)
		}
	}
	return match
}

func (line *cmdLine) isEOL() bool {
	return line.pos >= len(line.line)
}

func (line *cmdLine) skipSpace() {
	for !line.isEOL() && unicode.IsSpace(rune(line.line[line.pos])) {
		line.pos++
	}
}

// getWord returns the next space-delimited token, lower-cased.
func (line *cmdLine) getWord() string {
	line.skipSpace()
	start := line.pos
	for !line.isEOL() && !unicode.IsSpace(rune(line.line[line.pos])) {
		line.pos++
	}
	return strings.ToLower(line.line[start:line.pos])
}

// getNumber parses the next token as an unsigned integer in base, 0
// meaning Go's usual 0x/0 prefix sniffing.
func (line *cmdLine) getNumber(base int) (uint64, error) {
	tok := line.getWord()
	if tok == "" {
		return 0, errors.New("expected a number")
	}
	return strconv.ParseUint(tok, base, 32)
}

func step(line *cmdLine, s *cpu.State) (bool, error) {
	count := uint64(1)
	if tok := line.getWord(); tok != "" {
		n, err := strconv.ParseUint(tok, 10, 32)
		if err != nil {
			return false, errors.New("step count must be a number: " + tok)
		}
		count = n
	}
	for i := uint64(0); i < count; i++ {
		res := s.Step()
		if !res.OK {
			fmt.Println("core is halted")
			break
		}
		if res.Halted {
			fmt.Println("halted")
			break
		}
		if res.Error {
			fmt.Println("error latched")
			break
		}
	}
	return false, nil
}

func run(line *cmdLine, s *cpu.State) (bool, error) {
	max := uint64(1 << 20)
	if tok := line.getWord(); tok != "" {
		n, err := strconv.ParseUint(tok, 10, 64)
		if err != nil {
			return false, errors.New("cycle budget must be a number: " + tok)
		}
		max = n
	}
	res := s.Run(max)
	switch {
	case res.Halted:
		fmt.Println("halted")
	case res.BudgetExhausted:
		fmt.Printf("cycle budget exhausted after %d cycles\n", res.CyclesRun)
	case s.Error():
		fmt.Println("error latched")
	}
	return false, nil
}

func reset(_ *cmdLine, s *cpu.State) (bool, error) {
	s.Reset()
	return false, nil
}

func examine(line *cmdLine, s *cpu.State) (bool, error) {
	channel, err := line.getNumber(8)
	if err != nil {
		return false, errors.New("examine requires a channel in octal: " + err.Error())
	}
	sector, err := line.getNumber(8)
	if err != nil {
		return false, errors.New("examine requires a sector in octal: " + err.Error())
	}
	word := s.Read(uint32(channel), uint32(sector))
	fmt.Printf("%02o,%03o: %07o\n", channel, sector, word)
	return false, nil
}

func deposit(line *cmdLine, s *cpu.State) (bool, error) {
	channel, err := line.getNumber(8)
	if err != nil {
		return false, errors.New("deposit requires a channel in octal: " + err.Error())
	}
	sector, err := line.getNumber(8)
	if err != nil {
		return false, errors.New("deposit requires a sector in octal: " + err.Error())
	}
	word, err := line.getNumber(8)
	if err != nil {
		return false, errors.New("deposit requires a word in octal: " + err.Error())
	}
	s.Write(uint32(channel), uint32(sector), uint32(word))
	return false, nil
}

func mode(line *cmdLine, s *cpu.State) (bool, error) {
	switch line.getWord() {
	case "d17b":
		s.SetD37CMode(false)
	case "d37c":
		s.SetD37CMode(true)
	case "":
		if s.D37CMode() {
			fmt.Println("d37c")
		} else {
			fmt.Println("d17b")
		}
	default:
		return false, errors.New("mode must be d17b or d37c")
	}
	return false, nil
}

func disasm(line *cmdLine, s *cpu.State) (bool, error) {
	channel, err := line.getNumber(8)
	if err != nil {
		return false, errors.New("disasm requires a channel in octal: " + err.Error())
	}
	sector, err := line.getNumber(8)
	if err != nil {
		return false, errors.New("disasm requires a sector in octal: " + err.Error())
	}
	word := s.Read(uint32(channel), uint32(sector))
	fmt.Println(disassembler.Disassemble(word))
	return false, nil
}

func show(_ *cmdLine, s *cpu.State) (bool, error) {
	mode := "d17b"
	if s.D37CMode() {
		mode = "d37c"
	}
	fmt.Printf("A=%07o L=%07o I=%06o P=%o mode=%s halted=%v error=%v cycles=%d\n",
		s.A, s.L, s.I, s.P, mode, s.Halted(), s.Error(), s.CycleCount())
	return false, nil
}

func quit(_ *cmdLine, _ *cpu.State) (bool, error) {
	return true, nil
}
