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
package binfile

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/consensys/go-uvm/pkg/vm"
)

// WriteDump writes a memory-dump snapshot as CSV, one "address,value" row
// per cell, in address order.
func WriteDump(w io.Writer, entries []vm.DumpEntry) error {
	writer := csv.NewWriter(w)
	//
	for _, entry := range entries {
		row := []string{
			strconv.FormatUint(uint64(entry.Address), 10),
			strconv.FormatInt(int64(entry.Value), 10),
		}
		//
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	//
	writer.Flush()
	//
	return writer.Error()
}
