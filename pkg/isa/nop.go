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

// Nop does nothing; the machine simply advances to the next instruction.
type Nop struct{}

// Opcode identifies the operation.
func (p Nop) Opcode() Opcode {
	return NOP
}

func (p Nop) fields() (uint64, uint64) {
	return 0, 0
}

func (p Nop) String() string {
	return "NOP"
}
