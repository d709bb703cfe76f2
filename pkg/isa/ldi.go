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

// Ldi loads an immediate constant into the target register.  The constant
// occupies field B (26 bits) and is therefore always non-negative.
type Ldi struct {
	// Target register being written.
	Target Reg
	// Value loaded into the target.
	Value uint32
}

// Opcode identifies the operation.
func (p Ldi) Opcode() Opcode {
	return LDI
}

func (p Ldi) fields() (uint64, uint64) {
	return uint64(p.Value), uint64(p.Target)
}

func (p Ldi) String() string {
	return fmt.Sprintf("LDI %s, %d", p.Target, p.Value)
}
