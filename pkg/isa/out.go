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

// Out appends the source register's value, tagged with the I/O code, to
// the output log.
type Out struct {
	// Source register being read.
	Source Reg
	// Port is a free-form I/O code carried in field B.  It is recorded
	// alongside the value but never interpreted.
	Port uint32
}

// Opcode identifies the operation.
func (p Out) Opcode() Opcode {
	return OUT
}

func (p Out) fields() (uint64, uint64) {
	return uint64(p.Port), uint64(p.Source)
}

func (p Out) String() string {
	return fmt.Sprintf("OUT %s, %d", p.Source, p.Port)
}
