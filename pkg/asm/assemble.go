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
package asm

import (
	"encoding/json"
	"fmt"

	"github.com/consensys/go-uvm/pkg/isa"
)

// RecordError attributes a translation or encoding failure to the source
// record which caused it.
type RecordError struct {
	// Index of the offending record within the source program.
	Index int
	// Err is the underlying failure.
	Err error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("instruction %d: %v", e.Index, e.Err)
}

// Unwrap exposes the underlying failure to errors.As / errors.Is.
func (e *RecordError) Unwrap() error {
	return e.Err
}

// Parse reads a source program: a JSON list of instruction records.
func Parse(source []byte) ([]Record, error) {
	var records []Record
	//
	if err := json.Unmarshal(source, &records); err != nil {
		return nil, fmt.Errorf("malformed source program: %w", err)
	}
	//
	return records, nil
}

// TranslateAll normalises every record of a source program, accumulating
// one error per malformed record rather than stopping at the first.  The
// instruction list is only meaningful when no errors are returned.
func TranslateAll(records []Record) ([]isa.Instruction, []error) {
	var (
		insns  = make([]isa.Instruction, 0, len(records))
		errors []error
	)
	//
	for i, record := range records {
		insn, err := Translate(record)
		if err != nil {
			errors = append(errors, &RecordError{Index: i, Err: err})
			continue
		}
		//
		insns = append(insns, insn)
	}
	//
	return insns, errors
}

// Assemble translates a whole source program into a binary program image.
// Failures are accumulated per record and abort the translation: if any
// occurred the image is nil and every failure is reported.  Encoding of
// each individual record is always strict.
func Assemble(source []byte) ([]byte, []error) {
	records, err := Parse(source)
	if err != nil {
		return nil, []error{err}
	}
	//
	insns, errors := TranslateAll(records)
	if len(errors) > 0 {
		return nil, errors
	}
	//
	program := make([]byte, 0, len(insns)*isa.WordSize)
	//
	for i, insn := range insns {
		word, err := isa.Encode(insn)
		if err != nil {
			errors = append(errors, &RecordError{Index: i, Err: err})
			continue
		}
		//
		program = append(program, word[:]...)
	}
	//
	if len(errors) > 0 {
		return nil, errors
	}
	//
	return program, nil
}
