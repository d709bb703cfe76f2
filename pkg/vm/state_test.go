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
package vm

import (
	"errors"
	"testing"
)

func Test_FreshStateIsZeroed(t *testing.T) {
	t.Parallel()
	//
	state := NewState(Config{MemorySize: 32})
	//
	if state.PC() != 0 {
		t.Errorf("expected pc 0, got %d", state.PC())
	}
	//
	if regs := state.Registers(); regs != [16]int32{} {
		t.Errorf("expected zeroed registers, got %v", regs)
	}
	//
	for _, entry := range state.Dump(0, 32) {
		if entry.Value != 0 {
			t.Errorf("expected zeroed cell %d, got %d", entry.Address, entry.Value)
		}
	}
	//
	if len(state.Output()) != 0 {
		t.Error("expected empty output log")
	}
}

func Test_DefaultMemorySize(t *testing.T) {
	t.Parallel()
	//
	state := NewState(Config{})
	if state.MemorySize() != DefaultMemorySize {
		t.Errorf("expected %d cells, got %d", DefaultMemorySize, state.MemorySize())
	}
}

func Test_DumpClipsToBound(t *testing.T) {
	t.Parallel()
	//
	state := NewState(Config{MemorySize: 16})
	//
	dump := state.Dump(10, 100)
	if len(dump) != 6 {
		t.Fatalf("expected 6 entries, got %d", len(dump))
	}
	//
	if dump[0].Address != 10 || dump[5].Address != 15 {
		t.Errorf("expected addresses 10-15, got %d-%d", dump[0].Address, dump[5].Address)
	}
}

func Test_DumpRangeIsHalfOpen(t *testing.T) {
	t.Parallel()
	//
	state := NewState(Config{MemorySize: 16})
	//
	if dump := state.Dump(0, 3); len(dump) != 3 {
		t.Errorf("expected addresses 0, 1, 2, got %v", dump)
	}
	//
	if dump := state.Dump(3, 3); dump != nil {
		t.Errorf("expected empty dump, got %v", dump)
	}
	//
	if dump := state.Dump(5, 2); dump != nil {
		t.Errorf("expected empty dump for inverted range, got %v", dump)
	}
}

func Test_RegisterBounds(t *testing.T) {
	t.Parallel()
	//
	state := NewState(Config{MemorySize: 16})
	//
	var regFault *RegisterFault
	//
	if _, err := state.Reg(16); !errors.As(err, &regFault) {
		t.Errorf("expected RegisterFault, got %v", err)
	}
	//
	if err := state.SetReg(200, 1); !errors.As(err, &regFault) {
		t.Errorf("expected RegisterFault, got %v", err)
	} else if regFault.Index != 200 {
		t.Errorf("expected index 200 in fault, got %d", regFault.Index)
	}
}

func Test_InputQueueOrder(t *testing.T) {
	t.Parallel()
	//
	state := NewState(Config{MemorySize: 16})
	state.SetInput([]int32{3, 1, 2})
	//
	for _, expected := range []int32{3, 1, 2} {
		value, ok := state.ReadInput()
		if !ok || value != expected {
			t.Fatalf("expected %d, got %d (ok=%v)", expected, value, ok)
		}
	}
	// Exhaustion yields the sentinel, indefinitely.
	for i := 0; i < 3; i++ {
		if value, ok := state.ReadInput(); ok || value != 0 {
			t.Fatalf("expected sentinel 0, got %d (ok=%v)", value, ok)
		}
	}
}
