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

	"github.com/consensys/go-uvm/pkg/asm"
	"github.com/consensys/go-uvm/pkg/isa"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var assembleCmd = &cobra.Command{
	Use:   "assemble [flags] source_file target_file",
	Short: "assemble a source program into a binary program image.",
	Long: `Assemble a source program (a JSON list of instruction records) into a
	 binary image of fixed-width instruction words.  Every malformed record is
	 reported; any failure aborts the translation.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		initLogging(cmd)
		//
		source, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		// Test mode prints the normalised listing instead of writing the
		// binary.
		if getFlag(cmd, "test") {
			printListing(source)
			return
		}
		//
		program, errs := asm.Assemble(source)
		if len(errs) > 0 {
			for _, err := range errs {
				log.Errorf("%v", err)
			}
			//
			os.Exit(1)
		}
		//
		if err := os.WriteFile(args[1], program, 0644); err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		log.Infof("assembled %d instructions into %s", len(program)/isa.WordSize, args[1])
	},
}

// printListing reports the normalised instruction listing of a source
// program, one instruction per line.
func printListing(source []byte) {
	records, err := asm.Parse(source)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	//
	insns, errs := asm.TranslateAll(records)
	if len(errs) > 0 {
		for _, err := range errs {
			log.Errorf("%v", err)
		}
		//
		os.Exit(1)
	}
	//
	for i, insn := range insns {
		fmt.Printf("%04d: %s\n", i, insn)
	}
}

func init() {
	rootCmd.AddCommand(assembleCmd)
	assembleCmd.Flags().Bool("test", false, "print the normalised instruction listing instead of writing binary")
}
