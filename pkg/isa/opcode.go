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

// Package isa defines the instruction set of the UVM: the binary layout of
// its fixed-width instruction words, the instructions themselves, and a
// strict encoder/decoder pair between the two.
package isa

import "fmt"

// WordSize is the size of every instruction word in bytes.  Programs are a
// concatenation of such words, with no header or padding between them.
const WordSize = 5

// NumRegisters is the number of general-purpose registers, fixed by the
// 4-bit width of register fields.
const NumRegisters = 16

// Opcode identifies one machine operation.  Opcodes occupy the low nibble
// (field A) of every instruction word, hence at most sixteen can exist.
type Opcode uint8

const (
	// NOP does nothing.
	NOP Opcode = 0x0
	// NEQ compares a register against a memory cell, storing 1 or 0.
	NEQ Opcode = 0x2
	// ADD adds one register into another, wrapping on overflow.
	ADD Opcode = 0x3
	// SUB subtracts one register from another, wrapping on overflow.
	SUB Opcode = 0x4
	// JMP branches unconditionally to a given instruction index.
	JMP Opcode = 0x5
	// JZ branches to a given instruction index if a register is zero.
	JZ Opcode = 0x6
	// IN pops the next value from the input queue into a register.
	IN Opcode = 0x7
	// OUT appends a register's value to the output log.
	OUT Opcode = 0x8
	// LDI loads an immediate constant into a register.
	LDI Opcode = 0x9
	// STORE writes a register into a memory cell.
	STORE Opcode = 0xA
	// LOAD reads a memory cell into a register.
	LOAD Opcode = 0xC
)

// opcodeNames maps each opcode to its mnemonic.  Entries here and in the
// layout table must agree exactly on which opcodes exist.
var opcodeNames = map[Opcode]string{
	NOP:   "NOP",
	NEQ:   "NEQ",
	ADD:   "ADD",
	SUB:   "SUB",
	JMP:   "JMP",
	JZ:    "JZ",
	IN:    "IN",
	OUT:   "OUT",
	LDI:   "LDI",
	STORE: "STORE",
	LOAD:  "LOAD",
}

// String returns the mnemonic for this opcode, or a hex rendering if the
// opcode is not part of the instruction set.
func (op Opcode) String() string {
	if name, ok := opcodeNames[op]; ok {
		return name
	}
	//
	return fmt.Sprintf("0x%X", uint8(op))
}

// OpcodeOf looks up an opcode by its mnemonic.  The second result is false
// if the mnemonic is not part of the instruction set.
func OpcodeOf(name string) (Opcode, bool) {
	for op, n := range opcodeNames {
		if n == name {
			return op, true
		}
	}
	//
	return 0, false
}
