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

// Load reads the memory cell at a given address into the target register.
// The address must be within the data-memory bounds at execution time.
type Load struct {
	// Target register being written.
	Target Reg
	// Addr of the memory cell being read.
	Addr uint32
}

// Opcode identifies the operation.
func (p Load) Opcode() Opcode {
	return LOAD
}

func (p Load) fields() (uint64, uint64) {
	return uint64(p.Target), uint64(p.Addr)
}

func (p Load) String() string {
	return fmt.Sprintf("LOAD %s, [%d]", p.Target, p.Addr)
}
