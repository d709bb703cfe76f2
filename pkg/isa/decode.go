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

// Decode unpacks one big-endian 5-byte word into its instruction.  It is
// the exact inverse of Encode for every legally-encodable instruction: for
// all such i, Decode(Encode(i)) == i.  An unrecognised opcode nibble yields
// an UnknownOpcodeError; a slice which is not exactly one word yields a
// WordSizeError.
func Decode(word []byte) (Instruction, error) {
	if len(word) != WordSize {
		return nil, &WordSizeError{Length: len(word)}
	}
	//
	var bits uint64
	// Big-endian: most significant byte first.
	for _, b := range word {
		bits = (bits << 8) | uint64(b)
	}
	//
	op := Opcode(bits & 0xF)
	//
	layout, ok := layouts[op]
	if !ok {
		return nil, &UnknownOpcodeError{Nibble: uint8(op)}
	}
	//
	var (
		b = layout.B.Extract(bits)
		c = layout.C.Extract(bits)
	)
	//
	switch op {
	case NOP:
		return Nop{}, nil
	case LDI:
		return Ldi{Target: Reg(c), Value: uint32(b)}, nil
	case LOAD:
		return Load{Target: Reg(b), Addr: uint32(c)}, nil
	case STORE:
		return Store{Addr: uint32(b), Source: Reg(c)}, nil
	case NEQ:
		return Neq{Target: Reg(b), Addr: uint32(c)}, nil
	case ADD:
		return Add{Target: Reg(b), Source: Reg(c)}, nil
	case SUB:
		return Sub{Target: Reg(b), Source: Reg(c)}, nil
	case JMP:
		return Jmp{Target: uint32(b)}, nil
	case JZ:
		return Jz{Cond: Reg(b), Target: uint32(c)}, nil
	case IN:
		return In{Target: Reg(c), Port: uint32(b)}, nil
	case OUT:
		return Out{Source: Reg(c), Port: uint32(b)}, nil
	default:
		// Unreachable: the layout table and this switch cover the same
		// opcodes.
		panic("unreachable")
	}
}
