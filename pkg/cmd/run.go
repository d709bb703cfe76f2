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

	"github.com/consensys/go-uvm/pkg/binfile"
	"github.com/consensys/go-uvm/pkg/vm"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run [flags] program_file",
	Short: "execute a binary program image.",
	Long: `Execute a binary program image against a fresh machine state, printing
	 the output log and (optionally) writing a CSV memory dump for a given
	 address range.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initLogging(cmd)
		//
		program := readProgramFile(args[0])
		//
		state := vm.NewState(vm.Config{
			MemorySize: getUint32(cmd, "memory"),
			HardwireR0: getFlag(cmd, "hardwire-r0"),
		})
		//
		if inputFile := getString(cmd, "input"); inputFile != "" {
			state.SetInput(readInputFile(inputFile))
		}
		//
		engine := vm.NewEngine(program, state)
		engine.SetMaxSteps(getUint64(cmd, "steps"))
		//
		result := engine.Run()
		//
		switch result.Outcome {
		case vm.HaltNormal:
			log.Infof("halted normally after %d steps at pc=%d", result.Steps, result.PC)
		case vm.HaltStepLimit:
			log.Warnf("step limit reached after %d steps at pc=%d", result.Steps, result.PC)
		case vm.HaltFault:
			log.Errorf("%v", result.Err)
			os.Exit(1)
		}
		//
		printOutput(state)
		//
		if dumpFile := getString(cmd, "dump"); dumpFile != "" {
			writeDumpFile(cmd, state, dumpFile)
		}
	},
}

// printOutput reports the output log accumulated during the run, followed
// by a short register summary.
func printOutput(state *vm.State) {
	for _, entry := range state.Output() {
		fmt.Printf("[%d]: %d\n", entry.Tag, entry.Value)
	}
	//
	regs := state.Registers()
	fmt.Printf("registers R0-R3: %v\n", regs[0:4])
}

// writeDumpFile snapshots the requested memory range into a CSV file.
func writeDumpFile(cmd *cobra.Command, state *vm.State, filename string) {
	start, end, err := parseRange(getString(cmd, "range"))
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	file, err := os.Create(filename)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	defer file.Close()
	//
	if err := binfile.WriteDump(file, state.Dump(start, end)); err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	log.Infof("memory dump [%d:%d) written to %s", start, end, filename)
}

// readInputFile loads the machine input stream.  A missing file is only a
// warning; the machine then runs with an empty input queue.
func readInputFile(filename string) []int32 {
	file, err := os.Open(filename)
	if err != nil {
		log.Warnf("input file %s not found, using an empty input queue", filename)
		return nil
	}
	defer file.Close()
	//
	values, err := binfile.ReadInput(file)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return values
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().String("input", "", "file holding the input stream, one integer per line")
	runCmd.Flags().String("dump", "", "write a CSV memory dump to this file after the run")
	runCmd.Flags().String("range", "0:50", "half-open address range for the memory dump")
	runCmd.Flags().Uint64("steps", vm.DefaultMaxSteps, "step budget before forced termination")
	runCmd.Flags().Uint32("memory", vm.DefaultMemorySize, "data-memory size in cells")
	runCmd.Flags().Bool("hardwire-r0", false, "force register 0 to read as zero, discarding writes")
}
