/*
 * d17bsim - loader tests.
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

package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/zanehambly/d17bsim/emu/cpu"
)

const sampleProgram = `
name = "add-two"

[ipl]
d37c_mode = true
channel = 0
sector = 0

[[word]]
channel = 0
sector = 1
value = 4

[[word]]
channel = 0
sector = 0
value = 0xD00004
`

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "demo.toml")
	if err := os.WriteFile(path, []byte(sampleProgram), 0o644); err != nil {
		t.Fatalf("writing sample program: %v", err)
	}
	return path
}

func TestLoadAndInstall(t *testing.T) {
	path := writeSample(t)
	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.Name != "add-two" || len(p.Words) != 2 {
		t.Fatalf("Load parsed %+v", p)
	}

	s := cpu.New()
	p.Install(s)

	if s.Read(0, 1) != 4 {
		t.Fatalf("Install did not poke channel 0 sector 1")
	}
	if s.I != 0 {
		t.Fatalf("Install set I=%#x, want 0", s.I)
	}
	if !s.D37CMode() {
		t.Fatal("Install did not apply d37c_mode")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("Load on a missing file did not return an error")
	}
}
