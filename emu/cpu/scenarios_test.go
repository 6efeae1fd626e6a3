/*
 * d17bsim - acceptance scenarios for the fetch-step driver.
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

package cpu_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/zanehambly/d17bsim/emu/cpu"
)

func TestScenarios(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "D17B/D37C core scenarios")
}

var _ = Describe("the guidance computer core", func() {
	var s *cpu.State

	BeforeEach(func() {
		s = cpu.New()
	})

	Describe("division", func() {
		It("divides a 46-bit dividend by a 24-bit divisor", func() {
			s.A = 0
			s.L = 24
			s.Write(0, 1, 4)
			// DIV 0,1
			s.Write(0, 0, uint32(7)<<20|0<<9|1<<2)

			res := s.Step()
			Expect(res.Error).To(BeFalse())
			Expect(res.Halted).To(BeFalse())
			Expect(s.A).To(Equal(uint32(6)))
			Expect(s.L).To(Equal(uint32(0)))
		})
	})

	Describe("flag-store", func() {
		It("leaves L equal to A after an ADD with flag_code 5", func() {
			// ADD 2,5 with the flag bit set; sector 5's low 3 bits are
			// 5, selecting the L destination.
			s.Write(2, 5, 7)
			word := uint32(0xD)<<20 | 1<<19 | 2<<9 | 5<<2
			s.Write(9, 0, word)

			s.I = 9 << 9
			s.Step()

			Expect(s.L).To(Equal(s.A))
		})
	})

	Describe("divide by zero", func() {
		It("sets the error latch and leaves the core in a valid state", func() {
			s.Write(0, 1, 0)
			s.Write(0, 0, uint32(7)<<20|0<<9|1<<2)

			res := s.Step()
			Expect(res.Error).To(BeTrue())
			Expect(s.A).To(BeNumerically("<", 1<<24))
			Expect(s.L).To(BeNumerically("<", 1<<24))
		})
	})

	Describe("mode-dependent op=2", func() {
		It("jumps as TZE in D37C mode when A is zero", func() {
			s.SetD37CMode(true)
			s.A = 0
			s.Write(0, 0, uint32(2)<<20|3<<9|0<<2)
			s.Step()
			Expect(s.I).To(Equal(uint32(3 << 9)))
		})

		It("does not jump as TMI in D17B mode when A is positive", func() {
			s.SetD37CMode(false)
			s.A = 1
			s.Write(0, 0, uint32(2)<<20|3<<9|0<<2)
			s.Step()
			Expect(s.I).NotTo(Equal(uint32(3 << 9)))
		})
	})
})
