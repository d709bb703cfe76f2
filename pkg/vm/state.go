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

// Package vm provides the UVM machine state and the execution engine which
// drives it through a program image one instruction at a time.
package vm

import (
	"github.com/consensys/go-uvm/pkg/isa"
)

// DefaultMemorySize is the data-memory size, in 32-bit cells, used when
// the configuration leaves it unset.
const DefaultMemorySize = 1 << 20

// Config fixes the machine parameters for one run.  The zero value is a
// usable default configuration.
type Config struct {
	// MemorySize is the data-memory size in cells; zero selects
	// DefaultMemorySize.
	MemorySize uint32
	// HardwireR0 forces register 0 to read as zero, silently discarding
	// writes to it.  The policy applies uniformly to every operation.
	HardwireR0 bool
}

// OutputEntry is one record of the output log: the value written and the
// raw I/O code it was tagged with.
type OutputEntry struct {
	// Value emitted.
	Value int32
	// Tag is the 26-bit I/O code from the emitting instruction.
	Tag uint32
}

// DumpEntry is one (address, value) pair of a memory-dump snapshot.
type DumpEntry struct {
	Address uint32
	Value   int32
}

// State is the complete mutable state of one machine: register file, data
// memory, program counter, input queue and output log.  It is created
// zero-filled for a single run and mutated only by the engine (or directly
// by a test harness presetting values).
type State struct {
	regs       [isa.NumRegisters]int32
	mem        []int32
	pc         uint64
	input      []int32
	inputPos   int
	output     []OutputEntry
	hardwireR0 bool
}

// NewState constructs a fresh machine state: all registers and memory
// cells zero, program counter zero, empty input queue and output log.
func NewState(config Config) *State {
	size := config.MemorySize
	if size == 0 {
		size = DefaultMemorySize
	}
	//
	return &State{
		mem:        make([]int32, size),
		hardwireR0: config.HardwireR0,
	}
}

// Reg reads a register, faulting on an index outside the register file.
func (s *State) Reg(index isa.Reg) (int32, error) {
	if uint(index) >= uint(len(s.regs)) {
		return 0, &RegisterFault{Index: uint(index), Bound: uint(len(s.regs))}
	}
	//
	return s.regs[index], nil
}

// SetReg writes a register, faulting on an index outside the register
// file.  With HardwireR0 enabled, writes to register 0 are discarded.
func (s *State) SetReg(index isa.Reg, value int32) error {
	if uint(index) >= uint(len(s.regs)) {
		return &RegisterFault{Index: uint(index), Bound: uint(len(s.regs))}
	}
	//
	if s.hardwireR0 && index == 0 {
		return nil
	}
	//
	s.regs[index] = value
	//
	return nil
}

// Registers returns a copy of the register file.
func (s *State) Registers() [isa.NumRegisters]int32 {
	return s.regs
}

// Load reads the memory cell at a given address, faulting when the
// address is outside the configured memory.
func (s *State) Load(addr uint32) (int32, error) {
	if uint64(addr) >= uint64(len(s.mem)) {
		return 0, &MemoryFault{Addr: addr, Bound: uint32(len(s.mem))}
	}
	//
	return s.mem[addr], nil
}

// Store writes the memory cell at a given address, faulting when the
// address is outside the configured memory.
func (s *State) Store(addr uint32, value int32) error {
	if uint64(addr) >= uint64(len(s.mem)) {
		return &MemoryFault{Addr: addr, Bound: uint32(len(s.mem)), Write: true}
	}
	//
	s.mem[addr] = value
	//
	return nil
}

// MemorySize returns the data-memory size in cells.
func (s *State) MemorySize() uint32 {
	return uint32(len(s.mem))
}

// PC returns the current program counter, in instruction-index units.
func (s *State) PC() uint64 {
	return s.pc
}

// SetInput replaces the input queue.  Input operations consume the queue
// strictly front-to-back; once exhausted they yield the sentinel 0.
func (s *State) SetInput(values []int32) {
	s.input = values
	s.inputPos = 0
}

// ReadInput pops the next input value.  The second result is false once
// the queue is exhausted, in which case the value is the sentinel 0.
func (s *State) ReadInput() (int32, bool) {
	if s.inputPos >= len(s.input) {
		return 0, false
	}
	//
	value := s.input[s.inputPos]
	s.inputPos++
	//
	return value, true
}

// AppendOutput records one (value, tag) pair in the output log.
func (s *State) AppendOutput(value int32, tag uint32) {
	s.output = append(s.output, OutputEntry{Value: value, Tag: tag})
}

// Output returns the output log accumulated so far, in emission order.
func (s *State) Output() []OutputEntry {
	return s.output
}

// Dump snapshots the half-open address range [start, end) as (address,
// value) pairs.  Ranges reaching past the memory bound are clipped to it;
// an empty or inverted range yields no entries.
func (s *State) Dump(start, end uint32) []DumpEntry {
	if uint64(end) > uint64(len(s.mem)) {
		end = uint32(len(s.mem))
	}
	//
	if start >= end {
		return nil
	}
	//
	entries := make([]DumpEntry, 0, end-start)
	for addr := start; addr < end; addr++ {
		entries = append(entries, DumpEntry{Address: addr, Value: s.mem[addr]})
	}
	//
	return entries
}
