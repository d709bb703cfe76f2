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

// Neq compares the target register against the memory cell at a given
// address, writing 1 into the target if they differ and 0 otherwise.
type Neq struct {
	// Target register, both compared and written.
	Target Reg
	// Addr of the memory cell being compared.
	Addr uint32
}

// Opcode identifies the operation.
func (p Neq) Opcode() Opcode {
	return NEQ
}

func (p Neq) fields() (uint64, uint64) {
	return uint64(p.Target), uint64(p.Addr)
}

func (p Neq) String() string {
	return fmt.Sprintf("NEQ %s, [%d]", p.Target, p.Addr)
}
