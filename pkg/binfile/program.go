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

// Package binfile handles the on-disk artefacts of the toolchain: binary
// program images, CSV memory dumps and input streams.  The instruction
// word layout itself lives in pkg/isa; this package only moves validated
// bytes in and out.
package binfile

import (
	"fmt"
	"io"

	"github.com/consensys/go-uvm/pkg/isa"
)

// ============================================================================
// Program Images
// ============================================================================

// MalformedProgramError signals a program image whose byte count is not an
// exact multiple of the instruction word size.
type MalformedProgramError struct {
	// Length of the offending image in bytes.
	Length int
}

func (e *MalformedProgramError) Error() string {
	return fmt.Sprintf("program length %d is not a multiple of the %d-byte word size",
		e.Length, isa.WordSize)
}

// ValidateProgram checks that a program image is a whole number of
// instruction words.
func ValidateProgram(program []byte) error {
	if len(program)%isa.WordSize != 0 {
		return &MalformedProgramError{Length: len(program)}
	}
	//
	return nil
}

// ReadProgram reads and validates a complete program image.
func ReadProgram(r io.Reader) ([]byte, error) {
	program, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	//
	if err := ValidateProgram(program); err != nil {
		return nil, err
	}
	//
	return program, nil
}

// WriteProgram writes a program image, refusing images which are not a
// whole number of instruction words.
func WriteProgram(w io.Writer, program []byte) error {
	if err := ValidateProgram(program); err != nil {
		return err
	}
	//
	_, err := w.Write(program)
	//
	return err
}
