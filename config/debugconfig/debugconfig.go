/*
 * d17bsim - debug trace configuration.
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

// Package debugconfig registers the DEBUG config directive, routing its
// option names to the single core's trace category switches.
package debugconfig

import (
	"errors"
	"strings"

	config "github.com/zanehambly/d17bsim/config/configparser"
	"github.com/zanehambly/d17bsim/emu/cpu"
)

func init() {
	config.RegisterModel("DEBUG", config.TypeOptions, setDebug)
}

// setDebug enables one or more CPU trace categories (INST, MEM, IO).
func setDebug(_ string, options []config.Option) error {
	if len(options) == 0 {
		return errors.New("debug requires at least one trace category")
	}
	for _, opt := range options {
		if err := cpu.Debug(strings.ToUpper(opt.Name)); err != nil {
			return err
		}
		for _, value := range opt.Value {
			if err := cpu.Debug(strings.ToUpper(*value)); err != nil {
				return err
			}
		}
	}
	return nil
}
