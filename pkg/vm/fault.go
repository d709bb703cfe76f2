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

import "fmt"

// MemoryFault signals a data-memory access outside the configured bounds.
// It is fatal for the run; addresses are never clamped or retried.
type MemoryFault struct {
	// Addr of the offending access.
	Addr uint32
	// Bound is the configured memory size in cells.
	Bound uint32
	// Write distinguishes stores from loads.
	Write bool
}

func (e *MemoryFault) Error() string {
	kind := "read"
	if e.Write {
		kind = "write"
	}
	//
	return fmt.Sprintf("memory %s at address %d outside bound %d", kind, e.Addr, e.Bound)
}

// RegisterFault signals a register access outside the register file.  A
// well-formed program cannot raise it, since register fields are four bits
// wide; it guards direct uses of the state API.
type RegisterFault struct {
	// Index of the offending register.
	Index uint
	// Bound is the number of registers.
	Bound uint
}

func (e *RegisterFault) Error() string {
	return fmt.Sprintf("register index %d outside bound %d", e.Index, e.Bound)
}

// Fault wraps the underlying violation with the program counter at which
// it occurred.  Engine runs that halt abnormally always report a Fault.
type Fault struct {
	// PC is the instruction index at which the fault occurred.
	PC uint64
	// Err is the underlying violation.
	Err error
}

func (e *Fault) Error() string {
	return fmt.Sprintf("fault at pc=%d: %v", e.PC, e.Err)
}

// Unwrap exposes the underlying violation to errors.As / errors.Is.
func (e *Fault) Unwrap() error {
	return e.Err
}
