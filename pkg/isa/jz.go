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

// Jz branches to an absolute instruction index when the condition register
// holds zero, and falls through otherwise.
type Jz struct {
	// Cond is the register tested against zero.
	Cond Reg
	// Target instruction index taken when the condition holds.
	Target uint32
}

// Opcode identifies the operation.
func (p Jz) Opcode() Opcode {
	return JZ
}

func (p Jz) fields() (uint64, uint64) {
	return uint64(p.Cond), uint64(p.Target)
}

func (p Jz) String() string {
	return fmt.Sprintf("JZ %s, %d", p.Cond, p.Target)
}
