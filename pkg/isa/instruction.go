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
package isa

import "fmt"

// Reg is a register index.  Legal indices run from 0 to NumRegisters-1;
// anything wider fails encoding.
type Reg uint8

// String returns the conventional register syntax, e.g. "R3".
func (r Reg) String() string {
	return fmt.Sprintf("R%d", r)
}

// Instruction is one normalized machine instruction: an operation together
// with its typed operands.  It is a closed sum over the instruction set;
// execution dispatches with an exhaustive type switch, and the unexported
// fields method keeps implementations within this package.
type Instruction interface {
	fmt.Stringer
	// Opcode identifies the operation.
	Opcode() Opcode
	// fields returns the raw values of operand fields B and C, prior to
	// any range validation.  Absent fields yield zero.
	fields() (b uint64, c uint64)
}
