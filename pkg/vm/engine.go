// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package vm

import (
	"github.com/consensys/go-uvm/pkg/isa"
	log "github.com/sirupsen/logrus"
)

// DefaultMaxSteps is the step budget applied when none is configured.  The
// instruction set has no halt opcode, so the budget is the only guard
// against runaway jumps.
const DefaultMaxSteps = 1 << 20

// Outcome classifies how a run ended.
type Outcome uint8

const (
	// HaltNormal means the program counter left the program range.
	HaltNormal Outcome = iota
	// HaltFault means a decode, bounds or register violation stopped the
	// run.  The result carries the fault.
	HaltFault
	// HaltStepLimit means the step budget was exhausted.  This is a
	// normal bounded-termination outcome, not a fault.
	HaltStepLimit
)

// String returns a human-readable name for this outcome.
func (o Outcome) String() string {
	switch o {
	case HaltNormal:
		return "halted"
	case HaltFault:
		return "faulted"
	case HaltStepLimit:
		return "step limit reached"
	default:
		return "unknown"
	}
}

// Result summarises one completed run.
type Result struct {
	// Outcome of the run.
	Outcome Outcome
	// Steps executed before halting.
	Steps uint64
	// PC at which the run halted.  For a normal halt this is the first
	// index past the program; for a fault, the faulting instruction.
	PC uint64
	// Err is the fault which stopped the run, or nil.  It is always a
	// *Fault carrying the faulting program counter.
	Err error
}

// Engine drives one machine state through a program image.  Execution is
// strictly sequential: each instruction completes all of its reads and
// writes before the next is fetched, and the engine is the sole writer of
// the state.
type Engine struct {
	program  []byte
	state    *State
	maxSteps uint64
}

// NewEngine constructs an engine over a program image and a machine state.
// The step budget starts at DefaultMaxSteps.
func NewEngine(program []byte, state *State) *Engine {
	return &Engine{program: program, state: state, maxSteps: DefaultMaxSteps}
}

// SetMaxSteps replaces the step budget for subsequent runs.
func (e *Engine) SetMaxSteps(n uint64) {
	e.maxSteps = n
}

// Run executes the fetch-decode-execute cycle from the current program
// counter until the counter leaves the program, a fault occurs, or the
// step budget is exhausted.  Faults halt the run immediately; nothing is
// retried or clamped.
func (e *Engine) Run() Result {
	var steps uint64
	//
	for {
		pc := e.state.pc
		// Enforce the step budget before fetching.
		if steps >= e.maxSteps {
			return Result{Outcome: HaltStepLimit, Steps: steps, PC: pc}
		}
		// Fetch.  A counter at or past the program end is a normal halt,
		// as is a trailing fragment shorter than one word.
		offset := pc * isa.WordSize
		if offset+isa.WordSize > uint64(len(e.program)) {
			return Result{Outcome: HaltNormal, Steps: steps, PC: pc}
		}
		// Decode.
		insn, err := isa.Decode(e.program[offset : offset+isa.WordSize])
		if err != nil {
			return e.fault(pc, steps, err)
		}
		// Execute, computing the next program counter.
		next, err := e.execute(pc, insn)
		if err != nil {
			return e.fault(pc, steps, err)
		}
		// Commit.
		e.state.pc = next
		steps++
	}
}

// execute dispatches one decoded instruction against the machine state and
// returns the next program counter.  The default is to advance by one
// word; only jumps override it.
func (e *Engine) execute(pc uint64, insn isa.Instruction) (uint64, error) {
	var (
		s    = e.state
		next = pc + 1
	)
	//
	switch insn := insn.(type) {
	case isa.Nop:
		// nothing to do
	case isa.Ldi:
		if err := s.SetReg(insn.Target, int32(insn.Value)); err != nil {
			return 0, err
		}
	case isa.Load:
		value, err := s.Load(insn.Addr)
		if err != nil {
			return 0, err
		}
		//
		if err := s.SetReg(insn.Target, value); err != nil {
			return 0, err
		}
	case isa.Store:
		value, err := s.Reg(insn.Source)
		if err != nil {
			return 0, err
		}
		//
		if err := s.Store(insn.Addr, value); err != nil {
			return 0, err
		}
	case isa.Neq:
		value, err := s.Reg(insn.Target)
		if err != nil {
			return 0, err
		}
		//
		cell, err := s.Load(insn.Addr)
		if err != nil {
			return 0, err
		}
		//
		var result int32
		if value != cell {
			result = 1
		}
		//
		if err := s.SetReg(insn.Target, result); err != nil {
			return 0, err
		}
	case isa.Add:
		if err := e.arith(insn.Target, insn.Source, false); err != nil {
			return 0, err
		}
	case isa.Sub:
		if err := e.arith(insn.Target, insn.Source, true); err != nil {
			return 0, err
		}
	case isa.Jmp:
		next = uint64(insn.Target)
	case isa.Jz:
		value, err := s.Reg(insn.Cond)
		if err != nil {
			return 0, err
		}
		//
		if value == 0 {
			next = uint64(insn.Target)
		}
	case isa.In:
		value, ok := s.ReadInput()
		if ok {
			log.Debugf("IN: %s = %d (code %d)", insn.Target, value, insn.Port)
		} else {
			log.Debugf("IN: input exhausted, %s = 0 (code %d)", insn.Target, insn.Port)
		}
		//
		if err := s.SetReg(insn.Target, value); err != nil {
			return 0, err
		}
	case isa.Out:
		value, err := s.Reg(insn.Source)
		if err != nil {
			return 0, err
		}
		//
		s.AppendOutput(value, insn.Port)
		log.Debugf("OUT: %d from %s (code %d)", value, insn.Source, insn.Port)
	default:
		// Unreachable: the decoder only produces the cases above.
		panic("unreachable")
	}
	//
	return next, nil
}

// arith applies a wrapping 32-bit addition or subtraction of the source
// register into the target register.
func (e *Engine) arith(target, source isa.Reg, subtract bool) error {
	lhs, err := e.state.Reg(target)
	if err != nil {
		return err
	}
	//
	rhs, err := e.state.Reg(source)
	if err != nil {
		return err
	}
	// Two's-complement arithmetic wraps on overflow.
	if subtract {
		lhs -= rhs
	} else {
		lhs += rhs
	}
	//
	return e.state.SetReg(target, lhs)
}

// fault packages a violation into a fatal run result.
func (e *Engine) fault(pc uint64, steps uint64, err error) Result {
	return Result{
		Outcome: HaltFault,
		Steps:   steps,
		PC:      pc,
		Err:     &Fault{PC: pc, Err: err},
	}
}
