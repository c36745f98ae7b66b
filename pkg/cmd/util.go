// Copyright Verilite Authors.
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

	"github.com/pelletier/go-toml"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/verilite/go-verilite/pkg/sem/eval"
	"github.com/verilite/go-verilite/pkg/sem/sysfn"
	"github.com/verilite/go-verilite/pkg/util/collection/typed"
)

// GetFlag gets an expected flag, or panics if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string flag, or panics if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint gets an expected uint flag, or panics if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// tomlOptions mirrors the recognised keys of a configuration file.
type tomlOptions struct {
	// Promote warnings to errors.
	Werror bool `toml:"werror"`
	// Cap on folded format-string length.
	MaxFormatLength int64 `toml:"max_format_length"`
	// Constant evaluation step budget.
	EvalSteps int64 `toml:"eval_steps"`
	// Constant evaluation call-depth budget.
	EvalDepth int64 `toml:"eval_depth"`
}

// loadOptions assembles the options bag for a command invocation, loading
// any configuration file named by the --config flag and seeding the keys the
// semantic core consumes.  The second result indicates whether warnings
// should be promoted to errors, from the --werror flag or the file.
func loadOptions(cmd *cobra.Command) (*typed.Bag, bool) {
	var (
		bag      = typed.NewBag()
		werror   = GetFlag(cmd, "werror")
		filename = GetString(cmd, "config")
	)
	// Configure log level
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
	//
	if filename == "" {
		return bag, werror
	}
	//
	bytes, err := os.ReadFile(filename)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	var options tomlOptions
	//
	if err := toml.Unmarshal(bytes, &options); err != nil {
		fmt.Printf("%s: %s\n", filename, err)
		os.Exit(2)
	}
	//
	if options.MaxFormatLength > 0 {
		typed.Set(bag, sysfn.MaxFormatLengthKey, int(options.MaxFormatLength))
	}
	//
	if options.EvalSteps > 0 {
		typed.Set(bag, eval.StepLimitKey, uint64(options.EvalSteps))
	}
	//
	if options.EvalDepth > 0 {
		typed.Set(bag, eval.MaxDepthKey, uint(options.EvalDepth))
	}
	//
	log.Debugf("loaded %d options from %s", bag.Len(), filename)
	//
	return bag, werror || options.Werror
}
