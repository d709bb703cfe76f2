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

// In pops the next value from the input queue into the target register.
// Once the queue is exhausted the target receives 0; exhaustion is never a
// fault.
type In struct {
	// Target register being written.
	Target Reg
	// Port is a free-form I/O code carried in field B.  The machine does
	// not interpret it.
	Port uint32
}

// Opcode identifies the operation.
func (p In) Opcode() Opcode {
	return IN
}

func (p In) fields() (uint64, uint64) {
	return uint64(p.Port), uint64(p.Target)
}

func (p In) String() string {
	return fmt.Sprintf("IN %s, %d", p.Target, p.Port)
}
