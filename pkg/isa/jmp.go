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

// Jmp branches unconditionally.  The target is an absolute instruction
// index; a target at or past the program end halts the machine normally.
type Jmp struct {
	// Target instruction index.
	Target uint32
}

// Opcode identifies the operation.
func (p Jmp) Opcode() Opcode {
	return JMP
}

func (p Jmp) fields() (uint64, uint64) {
	return uint64(p.Target), 0
}

func (p Jmp) String() string {
	return fmt.Sprintf("JMP %d", p.Target)
}
