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

// FieldKind describes what an operand field holds.
type FieldKind uint8

const (
	// FieldNone marks an absent field, whose bits are zero padding.
	FieldNone FieldKind = iota
	// FieldReg is a register index (0-15).
	FieldReg
	// FieldAddr is a data-memory address or instruction index.
	FieldAddr
	// FieldConst is an immediate constant.
	FieldConst
)

// String returns a human-readable name for this field kind.
func (k FieldKind) String() string {
	switch k {
	case FieldReg:
		return "register"
	case FieldAddr:
		return "address"
	case FieldConst:
		return "constant"
	default:
		return "none"
	}
}

// Field describes one operand field within an instruction word: what it
// holds, how wide it is and where it sits.  Bit 0 is the least-significant
// bit of the word; the opcode always occupies bits 0-3.
type Field struct {
	// Kind of value held by this field.
	Kind FieldKind
	// Width of this field in bits.
	Width uint
	// Shift gives the bit offset of this field within the word.
	Shift uint
}

// Max returns the largest value this field can hold.  Absent fields hold
// nothing, hence their maximum is zero.
func (f Field) Max() uint64 {
	if f.Kind == FieldNone {
		return 0
	}
	//
	return (uint64(1) << f.Width) - 1
}

// Extract reads this field's value out of a full instruction word.
func (f Field) Extract(word uint64) uint64 {
	if f.Kind == FieldNone {
		return 0
	}
	//
	return (word >> f.Shift) & f.Max()
}

// Insert places a value (assumed in range) into this field's position.
func (f Field) Insert(value uint64) uint64 {
	return value << f.Shift
}

// Layout gives the operand field shape of one opcode.  Together with the
// opcode nibble the fields must exactly tile the 40-bit word, up to
// explicitly-zero padding; fields never overlap.
type Layout struct {
	B Field
	C Field
}

// layouts is the single source of truth for per-opcode field shapes.  Both
// the encoder and the decoder consult it, so the two cannot drift apart.
var layouts = map[Opcode]Layout{
	NOP:   {},
	LDI:   {B: Field{FieldConst, 26, 4}, C: Field{FieldReg, 4, 30}},
	IN:    {B: Field{FieldConst, 26, 4}, C: Field{FieldReg, 4, 30}},
	OUT:   {B: Field{FieldConst, 26, 4}, C: Field{FieldReg, 4, 30}},
	ADD:   {B: Field{FieldReg, 4, 4}, C: Field{FieldReg, 4, 8}},
	SUB:   {B: Field{FieldReg, 4, 4}, C: Field{FieldReg, 4, 8}},
	JMP:   {B: Field{FieldAddr, 31, 4}},
	JZ:    {B: Field{FieldReg, 4, 4}, C: Field{FieldAddr, 31, 8}},
	LOAD:  {B: Field{FieldReg, 4, 4}, C: Field{FieldAddr, 31, 8}},
	NEQ:   {B: Field{FieldReg, 4, 4}, C: Field{FieldAddr, 31, 8}},
	STORE: {B: Field{FieldAddr, 31, 4}, C: Field{FieldReg, 4, 35}},
}

// LayoutOf returns the field layout for a given opcode.  The second result
// is false if the opcode is not part of the instruction set.
func LayoutOf(op Opcode) (Layout, bool) {
	layout, ok := layouts[op]
	return layout, ok
}

// MaxConst is the largest immediate constant (26-bit field).
const MaxConst = (1 << 26) - 1

// MaxAddr is the largest encodable address (31-bit field).  The data
// memory of a concrete machine may bound addresses further; the narrower
// of the two bounds governs.
const MaxAddr = (1 << 31) - 1
