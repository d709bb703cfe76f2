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

// Encode packs one instruction into a big-endian 5-byte word.  Every
// operand is validated against the field layout for its opcode: a value
// which does not fit yields a FieldError and is never masked into range.
// Encoding is pure; it touches no state.
func Encode(insn Instruction) ([WordSize]byte, error) {
	var (
		word   [WordSize]byte
		op     = insn.Opcode()
		layout = layouts[op]
		b, c   = insn.fields()
	)
	//
	if err := checkField(op, "B", layout.B, b); err != nil {
		return word, err
	}
	//
	if err := checkField(op, "C", layout.C, c); err != nil {
		return word, err
	}
	//
	bits := uint64(op) | layout.B.Insert(b) | layout.C.Insert(c)
	// Big-endian: most significant byte first.
	for i := range word {
		shift := uint(8 * (WordSize - 1 - i))
		word[i] = byte(bits >> shift)
	}
	//
	return word, nil
}

// checkField ensures a single operand fits its field.
func checkField(op Opcode, name string, field Field, value uint64) error {
	if value > field.Max() {
		return &FieldError{Op: op, Field: name, Kind: field.Kind, Value: value, Max: field.Max()}
	}
	//
	return nil
}

// EncodeAll packs a sequence of instructions into a program image: the
// concatenation of their words, in order.
func EncodeAll(insns []Instruction) ([]byte, error) {
	program := make([]byte, 0, len(insns)*WordSize)
	//
	for _, insn := range insns {
		word, err := Encode(insn)
		if err != nil {
			return nil, err
		}
		//
		program = append(program, word[:]...)
	}
	//
	return program, nil
}
