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
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/consensys/go-uvm/pkg/isa"
)

func Test_AddProgram(t *testing.T) {
	t.Parallel()
	//
	state := NewState(Config{MemorySize: 64})
	result := run(t, state, nil,
		isa.Ldi{Target: 1, Value: 10},
		isa.Ldi{Target: 2, Value: 5},
		isa.Add{Target: 1, Source: 2},
	)
	//
	checkOutcome(t, result, HaltNormal)
	checkReg(t, state, 1, 15)
	//
	if result.PC != 3 {
		t.Errorf("expected pc past program end, got %d", result.PC)
	}
}

func Test_ConditionalJumpTaken(t *testing.T) {
	t.Parallel()
	// R1 is zero, so the branch to the trailing NOP skips the second LDI.
	state := NewState(Config{MemorySize: 64})
	result := run(t, state, nil,
		isa.Ldi{Target: 1, Value: 0},
		isa.Jz{Cond: 1, Target: 3},
		isa.Ldi{Target: 1, Value: 99},
		isa.Nop{},
	)
	//
	checkOutcome(t, result, HaltNormal)
	checkReg(t, state, 1, 0)
}

func Test_ConditionalJumpNotTaken(t *testing.T) {
	t.Parallel()
	//
	state := NewState(Config{MemorySize: 64})
	result := run(t, state, nil,
		isa.Ldi{Target: 1, Value: 7},
		isa.Jz{Cond: 1, Target: 3},
		isa.Ldi{Target: 1, Value: 99},
		isa.Nop{},
	)
	//
	checkOutcome(t, result, HaltNormal)
	checkReg(t, state, 1, 99)
}

func Test_StoreThenLoad(t *testing.T) {
	t.Parallel()
	//
	state := NewState(Config{MemorySize: 64})
	result := run(t, state, nil,
		isa.Ldi{Target: 3, Value: 42},
		isa.Store{Addr: 5, Source: 3},
		isa.Load{Target: 4, Addr: 5},
	)
	//
	checkOutcome(t, result, HaltNormal)
	checkReg(t, state, 4, 42)
	//
	dump := state.Dump(5, 6)
	if len(dump) != 1 || dump[0].Value != 42 {
		t.Errorf("expected cell 5 = 42, got %v", dump)
	}
}

func Test_StepLimit(t *testing.T) {
	t.Parallel()
	// A self-loop never leaves the program; only the step budget stops it.
	state := NewState(Config{MemorySize: 64})
	program := encode(t, isa.Jmp{Target: 0})
	//
	engine := NewEngine(program, state)
	engine.SetMaxSteps(10)
	//
	result := engine.Run()
	//
	checkOutcome(t, result, HaltStepLimit)
	//
	if result.Steps != 10 {
		t.Errorf("expected exactly 10 steps, got %d", result.Steps)
	}
	//
	if result.Err != nil {
		t.Errorf("step limit is not a fault, got %v", result.Err)
	}
}

func Test_MemoryBounds(t *testing.T) {
	t.Parallel()
	// A store at the memory size must fault; one cell below must succeed.
	state := NewState(Config{MemorySize: 16})
	result := run(t, state, nil, isa.Store{Addr: 16, Source: 0})
	//
	checkOutcome(t, result, HaltFault)
	checkMemoryFault(t, result, 16, 16)
	//
	state = NewState(Config{MemorySize: 16})
	result = run(t, state, nil, isa.Store{Addr: 15, Source: 0})
	checkOutcome(t, result, HaltNormal)
	//
	state = NewState(Config{MemorySize: 16})
	result = run(t, state, nil, isa.Load{Target: 1, Addr: 16})
	//
	checkOutcome(t, result, HaltFault)
	checkMemoryFault(t, result, 16, 16)
}

func Test_FaultReportsPC(t *testing.T) {
	t.Parallel()
	//
	state := NewState(Config{MemorySize: 16})
	result := run(t, state, nil,
		isa.Nop{},
		isa.Load{Target: 1, Addr: 999},
	)
	//
	checkOutcome(t, result, HaltFault)
	//
	var fault *Fault
	if !errors.As(result.Err, &fault) {
		t.Fatalf("expected Fault, got %v", result.Err)
	}
	//
	if fault.PC != 1 {
		t.Errorf("expected fault at pc=1, got %d", fault.PC)
	}
}

func Test_DecodeFault(t *testing.T) {
	t.Parallel()
	// An unencodable word (opcode nibble 0xF) planted at index 1.
	program := encode(t, isa.Nop{})
	program = append(program, []byte{0, 0, 0, 0, 0xF}...)
	//
	state := NewState(Config{MemorySize: 16})
	result := NewEngine(program, state).Run()
	//
	checkOutcome(t, result, HaltFault)
	//
	var unknownErr *isa.UnknownOpcodeError
	if !errors.As(result.Err, &unknownErr) {
		t.Fatalf("expected UnknownOpcodeError, got %v", result.Err)
	}
	//
	var fault *Fault
	if !errors.As(result.Err, &fault) || fault.PC != 1 {
		t.Errorf("expected fault at pc=1, got %v", result.Err)
	}
}

func Test_InputEOFSentinel(t *testing.T) {
	t.Parallel()
	// Three reads against a single-value queue: the last two hit the
	// sentinel, which is not a fault.
	state := NewState(Config{MemorySize: 16})
	result := run(t, state, []int32{7},
		isa.In{Target: 1, Port: 1},
		isa.In{Target: 2, Port: 2},
		isa.In{Target: 3, Port: 3},
	)
	//
	checkOutcome(t, result, HaltNormal)
	checkReg(t, state, 1, 7)
	checkReg(t, state, 2, 0)
	checkReg(t, state, 3, 0)
}

func Test_OutputLog(t *testing.T) {
	t.Parallel()
	//
	state := NewState(Config{MemorySize: 16})
	result := run(t, state, []int32{5, 15},
		isa.In{Target: 1, Port: 1},
		isa.In{Target: 2, Port: 2},
		isa.Add{Target: 1, Source: 2},
		isa.Out{Source: 1, Port: 10},
		isa.Out{Source: 2, Port: 11},
	)
	//
	checkOutcome(t, result, HaltNormal)
	//
	expected := []OutputEntry{{Value: 20, Tag: 10}, {Value: 15, Tag: 11}}
	if !reflect.DeepEqual(state.Output(), expected) {
		t.Errorf("expected output %v, got %v", expected, state.Output())
	}
}

func Test_NeqComparison(t *testing.T) {
	t.Parallel()
	// Cell 3 holds 42; R1 also holds 42, R2 holds 7.
	state := NewState(Config{MemorySize: 16})
	result := run(t, state, nil,
		isa.Ldi{Target: 1, Value: 42},
		isa.Store{Addr: 3, Source: 1},
		isa.Ldi{Target: 2, Value: 7},
		isa.Neq{Target: 1, Addr: 3},
		isa.Neq{Target: 2, Addr: 3},
	)
	//
	checkOutcome(t, result, HaltNormal)
	checkReg(t, state, 1, 0)
	checkReg(t, state, 2, 1)
}

func Test_WrappingArithmetic(t *testing.T) {
	t.Parallel()
	//
	state := NewState(Config{MemorySize: 16})
	mustSetReg(t, state, 1, math.MaxInt32)
	mustSetReg(t, state, 2, 1)
	//
	result := run(t, state, nil, isa.Add{Target: 1, Source: 2})
	checkOutcome(t, result, HaltNormal)
	checkReg(t, state, 1, math.MinInt32)
	//
	state = NewState(Config{MemorySize: 16})
	mustSetReg(t, state, 1, math.MinInt32)
	mustSetReg(t, state, 2, 1)
	//
	result = run(t, state, nil, isa.Sub{Target: 1, Source: 2})
	checkOutcome(t, result, HaltNormal)
	checkReg(t, state, 1, math.MaxInt32)
}

func Test_HardwiredZeroRegister(t *testing.T) {
	t.Parallel()
	// With the policy enabled, writes to R0 are discarded uniformly.
	state := NewState(Config{MemorySize: 16, HardwireR0: true})
	result := run(t, state, []int32{9},
		isa.Ldi{Target: 0, Value: 5},
		isa.In{Target: 0, Port: 1},
	)
	//
	checkOutcome(t, result, HaltNormal)
	checkReg(t, state, 0, 0)
	// Default policy permits the write.
	state = NewState(Config{MemorySize: 16})
	result = run(t, state, nil, isa.Ldi{Target: 0, Value: 5})
	//
	checkOutcome(t, result, HaltNormal)
	checkReg(t, state, 0, 5)
}

func Test_Determinism(t *testing.T) {
	t.Parallel()
	//
	program := encodeAll(t,
		isa.In{Target: 1, Port: 1},
		isa.Ldi{Target: 2, Value: 3},
		isa.Add{Target: 1, Source: 2},
		isa.Store{Addr: 0, Source: 1},
		isa.Out{Source: 1, Port: 9},
	)
	//
	results := make([]*State, 2)
	for i := range results {
		state := NewState(Config{MemorySize: 16})
		state.SetInput([]int32{100})
		//
		result := NewEngine(program, state).Run()
		checkOutcome(t, result, HaltNormal)
		//
		results[i] = state
	}
	//
	if results[0].Registers() != results[1].Registers() {
		t.Error("register files diverged between identical runs")
	}
	//
	if !reflect.DeepEqual(results[0].Dump(0, 16), results[1].Dump(0, 16)) {
		t.Error("memories diverged between identical runs")
	}
	//
	if !reflect.DeepEqual(results[0].Output(), results[1].Output()) {
		t.Error("output logs diverged between identical runs")
	}
}

func Test_TrailingFragmentHaltsNormally(t *testing.T) {
	t.Parallel()
	// A fragment shorter than one word terminates the fetch.
	program := encode(t, isa.Nop{})
	program = append(program, 0x00, 0x00)
	//
	state := NewState(Config{MemorySize: 16})
	result := NewEngine(program, state).Run()
	//
	checkOutcome(t, result, HaltNormal)
	//
	if result.Steps != 1 {
		t.Errorf("expected 1 step, got %d", result.Steps)
	}
}

func Test_JumpPastEndHaltsNormally(t *testing.T) {
	t.Parallel()
	//
	state := NewState(Config{MemorySize: 16})
	result := run(t, state, nil, isa.Jmp{Target: 1000})
	//
	checkOutcome(t, result, HaltNormal)
	//
	if result.PC != 1000 {
		t.Errorf("expected pc 1000, got %d", result.PC)
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

// encode a single instruction, failing the test on error.
func encode(t *testing.T, insn isa.Instruction) []byte {
	t.Helper()
	//
	word, err := isa.Encode(insn)
	if err != nil {
		t.Fatalf("encoding %s: %v", insn, err)
	}
	//
	return word[:]
}

// encodeAll packs a whole program, failing the test on error.
func encodeAll(t *testing.T, insns ...isa.Instruction) []byte {
	t.Helper()
	//
	program, err := isa.EncodeAll(insns)
	if err != nil {
		t.Fatal(err)
	}
	//
	return program
}

// run executes a program against the given state with an optional input
// queue, using the default step budget.
func run(t *testing.T, state *State, input []int32, insns ...isa.Instruction) Result {
	t.Helper()
	//
	if input != nil {
		state.SetInput(input)
	}
	//
	return NewEngine(encodeAll(t, insns...), state).Run()
}

func checkOutcome(t *testing.T, result Result, expected Outcome) {
	t.Helper()
	//
	if result.Outcome != expected {
		t.Fatalf("expected outcome %q, got %q (err: %v)", expected, result.Outcome, result.Err)
	}
}

func checkReg(t *testing.T, state *State, index isa.Reg, expected int32) {
	t.Helper()
	//
	value, err := state.Reg(index)
	if err != nil {
		t.Fatal(err)
	}
	//
	if value != expected {
		t.Errorf("expected %s = %d, got %d", index, expected, value)
	}
}

func checkMemoryFault(t *testing.T, result Result, addr, bound uint32) {
	t.Helper()
	//
	var memFault *MemoryFault
	if !errors.As(result.Err, &memFault) {
		t.Fatalf("expected MemoryFault, got %v", result.Err)
	}
	//
	if memFault.Addr != addr || memFault.Bound != bound {
		t.Errorf("expected fault at address %d bound %d, got %v", addr, bound, memFault)
	}
}

func mustSetReg(t *testing.T, state *State, index isa.Reg, value int32) {
	t.Helper()
	//
	if err := state.SetReg(index, value); err != nil {
		t.Fatal(err)
	}
}
