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

// Add adds the source register into the target register.  Arithmetic is
// two's-complement 32-bit; overflow wraps and is never an error.
type Add struct {
	// Target register, both read and written.
	Target Reg
	// Source register being added.
	Source Reg
}

// Opcode identifies the operation.
func (p Add) Opcode() Opcode {
	return ADD
}

func (p Add) fields() (uint64, uint64) {
	return uint64(p.Target), uint64(p.Source)
}

func (p Add) String() string {
	return fmt.Sprintf("ADD %s, %s", p.Target, p.Source)
}
