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
package cmd

import (
	"fmt"
	"os"

	"github.com/consensys/go-uvm/pkg/isa"
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
)

var debugCmd = &cobra.Command{
	Use:   "debug [flags] program_file",
	Short: "dump the decoded instruction structures of a program image.",
	Long: `Dump the decoded instruction structures of a binary program image,
	 including field names and concrete operand values.  Intended for
	 inspecting encoder output.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initLogging(cmd)
		//
		program := readProgramFile(args[0])
		//
		insns := make([]isa.Instruction, 0, len(program)/isa.WordSize)
		//
		for i := 0; i < len(program); i += isa.WordSize {
			insn, err := isa.Decode(program[i : i+isa.WordSize])
			if err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
			//
			insns = append(insns, insn)
		}
		//
		spew.Fdump(os.Stdout, insns)
	},
}

func init() {
	rootCmd.AddCommand(debugCmd)
}
