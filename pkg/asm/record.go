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

// Package asm translates symbolic UVM source programs into binary program
// images.  A source program is a JSON list of records, each naming an
// operation and its symbolic operands; this package normalises the records
// into instructions and defers all range validation to the strict
// instruction encoder.
package asm

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/consensys/go-uvm/pkg/isa"
)

// Record is one symbolic source instruction.  Which keys are required
// depends on the operation; absent numeric keys are nil so that a missing
// operand is distinguishable from a zero one.
type Record struct {
	// Op is the operation mnemonic, e.g. "LDI".
	Op string `json:"op"`
	// TargetReg names the register being written, e.g. "R1".
	TargetReg string `json:"target_reg,omitempty"`
	// SourceReg names the register being read.
	SourceReg string `json:"source_reg,omitempty"`
	// CondReg names the register tested by conditional jumps.
	CondReg string `json:"condition_reg,omitempty"`
	// Addr is a memory address or jump target.
	Addr *uint32 `json:"addr,omitempty"`
	// Value is an immediate constant.
	Value *uint32 `json:"value,omitempty"`
	// ValueCode is the I/O code of IN and OUT.
	ValueCode *uint32 `json:"value_code,omitempty"`
}

// Translate normalises one source record into a typed instruction,
// checking that the operation exists and that exactly its required
// operands are present.  Operand magnitudes are not checked here; the
// encoder rejects out-of-range fields.
func Translate(record Record) (isa.Instruction, error) {
	op, ok := isa.OpcodeOf(record.Op)
	if !ok {
		return nil, fmt.Errorf("unknown operation %q", record.Op)
	}
	//
	switch op {
	case isa.NOP:
		return isa.Nop{}, nil
	case isa.LDI:
		target, err := parseRegister(record.TargetReg)
		if err != nil {
			return nil, err
		}
		//
		value, err := requireKey(record.Value, "value")
		if err != nil {
			return nil, err
		}
		//
		return isa.Ldi{Target: target, Value: value}, nil
	case isa.LOAD:
		target, err := parseRegister(record.TargetReg)
		if err != nil {
			return nil, err
		}
		//
		addr, err := requireKey(record.Addr, "addr")
		if err != nil {
			return nil, err
		}
		//
		return isa.Load{Target: target, Addr: addr}, nil
	case isa.STORE:
		source, err := parseRegister(record.SourceReg)
		if err != nil {
			return nil, err
		}
		//
		addr, err := requireKey(record.Addr, "addr")
		if err != nil {
			return nil, err
		}
		//
		return isa.Store{Addr: addr, Source: source}, nil
	case isa.NEQ:
		target, err := parseRegister(record.TargetReg)
		if err != nil {
			return nil, err
		}
		//
		addr, err := requireKey(record.Addr, "addr")
		if err != nil {
			return nil, err
		}
		//
		return isa.Neq{Target: target, Addr: addr}, nil
	case isa.ADD, isa.SUB:
		target, err := parseRegister(record.TargetReg)
		if err != nil {
			return nil, err
		}
		//
		source, err := parseRegister(record.SourceReg)
		if err != nil {
			return nil, err
		}
		//
		if op == isa.ADD {
			return isa.Add{Target: target, Source: source}, nil
		}
		//
		return isa.Sub{Target: target, Source: source}, nil
	case isa.JMP:
		addr, err := requireKey(record.Addr, "addr")
		if err != nil {
			return nil, err
		}
		//
		return isa.Jmp{Target: addr}, nil
	case isa.JZ:
		cond, err := parseRegister(record.CondReg)
		if err != nil {
			return nil, err
		}
		//
		addr, err := requireKey(record.Addr, "addr")
		if err != nil {
			return nil, err
		}
		//
		return isa.Jz{Cond: cond, Target: addr}, nil
	case isa.IN, isa.OUT:
		target, err := parseRegister(record.TargetReg)
		if err != nil {
			return nil, err
		}
		//
		code, err := requireKey(record.ValueCode, "value_code")
		if err != nil {
			return nil, err
		}
		//
		if op == isa.IN {
			return isa.In{Target: target, Port: code}, nil
		}
		//
		return isa.Out{Source: target, Port: code}, nil
	default:
		// Unreachable: OpcodeOf only yields the cases above.
		panic("unreachable")
	}
}

// parseRegister resolves register syntax "R0" .. "R15".
func parseRegister(text string) (isa.Reg, error) {
	if !strings.HasPrefix(text, "R") {
		return 0, fmt.Errorf("expected register of the form \"R<num>\", got %q", text)
	}
	//
	index, err := strconv.ParseUint(text[1:], 10, 8)
	if err != nil || index >= isa.NumRegisters {
		return 0, fmt.Errorf("register %q outside range R0-R%d", text, isa.NumRegisters-1)
	}
	//
	return isa.Reg(index), nil
}

// requireKey unwraps a numeric operand, reporting which key was missing.
func requireKey(value *uint32, key string) (uint32, error) {
	if value == nil {
		return 0, fmt.Errorf("missing operand %q", key)
	}
	//
	return *value, nil
}
