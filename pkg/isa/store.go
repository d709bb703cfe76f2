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

// Store writes the source register into the memory cell at a given
// address.  The address must be within the data-memory bounds at execution
// time.
type Store struct {
	// Addr of the memory cell being written.
	Addr uint32
	// Source register being read.
	Source Reg
}

// Opcode identifies the operation.
func (p Store) Opcode() Opcode {
	return STORE
}

func (p Store) fields() (uint64, uint64) {
	return uint64(p.Addr), uint64(p.Source)
}

func (p Store) String() string {
	return fmt.Sprintf("STORE [%d], %s", p.Addr, p.Source)
}
