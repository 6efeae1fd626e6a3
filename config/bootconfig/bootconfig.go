/*
 * d17bsim - boot option configuration (MODE, IPL, LOGFILE).
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

// Package bootconfig registers the MODE, IPL and LOGFILE config
// directives, which set the same boot parameters the "run"/"step"/
// "repl" commands otherwise take as CLI flags or a loader.Program,
// so a config file alone can describe how a core should start.
package bootconfig

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	config "github.com/zanehambly/d17bsim/config/configparser"
)

var (
	modeSet bool
	d37c    bool
	iplSet  bool
	channel uint32
	sector  uint32
	logPath string
	logSet  bool
)

func init() {
	config.RegisterOption("MODE", setMode)
	config.RegisterModel("IPL", config.TypeOptions, setIPL)
	config.RegisterOption("LOGFILE", setLogFile)
}

// setMode handles "MODE d17b" / "MODE d37c".
func setMode(value string, _ []config.Option) error {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "D37C":
		d37c = true
	case "D17B":
		d37c = false
	default:
		return fmt.Errorf("unknown MODE %q, want d17b or d37c", value)
	}
	modeSet = true
	return nil
}

// setIPL handles "IPL channel=N sector=N", the config-file equivalent
// of loader.Program's [ipl] table.
func setIPL(_ string, options []config.Option) error {
	var ch, sec uint32
	var sawChannel, sawSector bool
	for _, opt := range options {
		switch strings.ToUpper(opt.Name) {
		case "CHANNEL":
			n, err := strconv.ParseUint(opt.EqualOpt, 10, 32)
			if err != nil {
				return fmt.Errorf("invalid IPL channel %q: %w", opt.EqualOpt, err)
			}
			ch = uint32(n)
			sawChannel = true
		case "SECTOR":
			n, err := strconv.ParseUint(opt.EqualOpt, 10, 32)
			if err != nil {
				return fmt.Errorf("invalid IPL sector %q: %w", opt.EqualOpt, err)
			}
			sec = uint32(n)
			sawSector = true
		default:
			return fmt.Errorf("unknown IPL option %q", opt.Name)
		}
	}
	if !sawChannel || !sawSector {
		return errors.New("IPL requires both channel= and sector=")
	}
	channel, sector = ch, sec
	iplSet = true
	return nil
}

func setLogFile(value string, _ []config.Option) error {
	if value == "" {
		return errors.New("LOGFILE requires a path")
	}
	logPath = value
	logSet = true
	return nil
}

// Mode reports whether MODE was set in a loaded config file, and the
// D37C-mode value it selected.
func Mode() (set bool, d37cMode bool) {
	return modeSet, d37c
}

// IPL reports whether IPL was set in a loaded config file, and the
// channel/sector it selected as the start location.
func IPL() (set bool, ch uint32, sec uint32) {
	return iplSet, channel, sector
}

// LogFile reports whether LOGFILE was set in a loaded config file,
// and the path it named.
func LogFile() (set bool, path string) {
	return logSet, logPath
}
