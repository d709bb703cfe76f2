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
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadInput reads an input stream for the machine: one integer per line,
// blank lines skipped.  The whole stream is loaded up front; input
// operations later consume it front-to-back.
func ReadInput(r io.Reader) ([]int32, error) {
	var (
		values  []int32
		scanner = bufio.NewScanner(r)
		line    = 0
	)
	//
	for scanner.Scan() {
		line++
		//
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		//
		value, err := strconv.ParseInt(text, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("input line %d: %q is not a 32-bit integer", line, text)
		}
		//
		values = append(values, int32(value))
	}
	//
	return values, scanner.Err()
}
