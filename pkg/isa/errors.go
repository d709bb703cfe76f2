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

// FieldError signals that an operand does not fit its declared field.  The
// encoder never masks a value into range; it reports exactly which field of
// which operation overflowed, and by how much.
type FieldError struct {
	// Op is the operation whose encoding failed.
	Op Opcode
	// Field names the offending field ("B" or "C").
	Field string
	// Kind of the offending field.
	Kind FieldKind
	// Value is the operand which did not fit.
	Value uint64
	// Max is the largest value the field can hold.
	Max uint64
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: field %s %s %d exceeds maximum %d",
		e.Op, e.Field, e.Kind, e.Value, e.Max)
}

// UnknownOpcodeError signals that the low nibble of an instruction word
// does not name any operation.
type UnknownOpcodeError struct {
	// Nibble is the raw opcode value found in field A.
	Nibble uint8
}

func (e *UnknownOpcodeError) Error() string {
	return fmt.Sprintf("unknown opcode 0x%X", e.Nibble)
}

// WordSizeError signals that a byte slice handed to the decoder is not
// exactly one instruction word long.
type WordSizeError struct {
	// Length of the offending slice.
	Length int
}

func (e *WordSizeError) Error() string {
	return fmt.Sprintf("instruction word is %d bytes, expected %d", e.Length, WordSize)
}
