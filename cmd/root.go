/*
 * d17bsim - cobra command tree.
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

// Package cmd builds the d17bsim command tree: run, step, repl and
// disasm all load an optional demo program then drive a single core.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/zanehambly/d17bsim/command/reader"
	"github.com/zanehambly/d17bsim/config/bootconfig"
	config "github.com/zanehambly/d17bsim/config/configparser"
	_ "github.com/zanehambly/d17bsim/config/debugconfig"
	"github.com/zanehambly/d17bsim/emu/cpu"
	"github.com/zanehambly/d17bsim/emu/disassemble"
	"github.com/zanehambly/d17bsim/emu/loader"
	_ "github.com/zanehambly/d17bsim/util/debug"
	"github.com/zanehambly/d17bsim/util/logger"
)

var (
	programPath string
	logPath     string
	configPath  string
	d37cMode    bool
)

// Execute runs the root command; main calls this and exits on error.
func Execute() error {
	return rootCmd().Execute()
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "d17bsim",
		Short: "D17B/D37C guidance computer core emulator",
	}
	root.PersistentFlags().StringVarP(&programPath, "program", "p", "", "TOML demo program to load before starting")
	root.PersistentFlags().StringVarP(&logPath, "log", "l", "", "log file path")
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file enabling DEBUG/DEBUGFILE directives")
	root.PersistentFlags().BoolVar(&d37cMode, "d37c", true, "start in D37C instruction-set mode")

	root.AddCommand(runCmd(), stepCmd(), replCmd(), disasmCmd())
	return root
}

// newCore builds a core from the CLI flags on cmd plus any MODE/IPL/
// LOGFILE directives found in a loaded --config file. A directive only
// takes effect where the matching flag was left at its default: an
// explicit --d37c or --log on the command line always wins. An explicit
// --d37c or a MODE directive also overrides the mode a --program's [ipl]
// table sets, and an IPL directive overrides its entry point.
func newCore(cmd *cobra.Command) (*cpu.State, error) {
	if configPath != "" {
		if err := config.LoadConfigFile(configPath); err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
	}

	mode := d37cMode
	modeExplicit := cmd.Flag("d37c").Changed
	if set, d37c := bootconfig.Mode(); set && !modeExplicit {
		mode = d37c
		modeExplicit = true
	}

	effectiveLogPath := logPath
	if set, path := bootconfig.LogFile(); set && logPath == "" {
		effectiveLogPath = path
	}

	var file io.Writer
	debugOn := effectiveLogPath != ""
	if debugOn {
		f, err := os.Create(effectiveLogPath)
		if err != nil {
			return nil, fmt.Errorf("creating log file: %w", err)
		}
		file = f
	}
	level := new(slog.LevelVar)
	level.Set(slog.LevelDebug)
	log := slog.New(logger.NewHandler(file, &slog.HandlerOptions{Level: level}, &debugOn, cpu.DebugEnabled))

	s := cpu.New(cpu.WithD37CMode(mode), cpu.WithLogger(log))

	if programPath != "" {
		prog, err := loader.Load(programPath)
		if err != nil {
			return nil, err
		}
		prog.Install(s)
		if modeExplicit {
			s.SetD37CMode(mode)
		}
	}

	if set, ch, sec := bootconfig.IPL(); set {
		s.I = (ch << 9) | (sec << 2)
	}
	return s, nil
}

func runCmd() *cobra.Command {
	var maxCycles uint64
	c := &cobra.Command{
		Use:   "run",
		Short: "run the core until it halts, faults, or exhausts its cycle budget",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := newCore(cmd)
			if err != nil {
				return err
			}
			res := s.Run(maxCycles)
			fmt.Printf("halted=%v budget_exhausted=%v cycles=%d\n", res.Halted, res.BudgetExhausted, res.CyclesRun)
			return nil
		},
	}
	c.Flags().Uint64Var(&maxCycles, "max-cycles", 1<<20, "cycle budget")
	return c
}

func stepCmd() *cobra.Command {
	var count uint64
	c := &cobra.Command{
		Use:   "step",
		Short: "step the core a fixed number of cycles and print its final state",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := newCore(cmd)
			if err != nil {
				return err
			}
			for i := uint64(0); i < count; i++ {
				res := s.Step()
				if !res.OK || res.Halted || res.Error {
					break
				}
			}
			fmt.Printf("A=%07o L=%07o I=%06o halted=%v error=%v\n", s.A, s.L, s.I, s.Halted(), s.Error())
			return nil
		},
	}
	c.Flags().Uint64Var(&count, "count", 1, "number of instructions to step")
	return c
}

func replCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "start an interactive console over a single core",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := newCore(cmd)
			if err != nil {
				return err
			}
			reader.ConsoleReader(s)
			return nil
		},
	}
}

func disasmCmd() *cobra.Command {
	var channel, sector uint32
	c := &cobra.Command{
		Use:   "disasm",
		Short: "disassemble one word of a loaded program",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := newCore(cmd)
			if err != nil {
				return err
			}
			fmt.Println(disassembler.Disassemble(s.Read(channel, sector)))
			return nil
		},
	}
	c.Flags().Uint32Var(&channel, "channel", 0, "channel, base 10")
	c.Flags().Uint32Var(&sector, "sector", 0, "sector, base 10")
	return c
}
