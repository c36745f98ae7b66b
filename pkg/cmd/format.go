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
	"strconv"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/verilite/go-verilite/pkg/logic"
	"github.com/verilite/go-verilite/pkg/sem"
	"github.com/verilite/go-verilite/pkg/sem/eval"
	"github.com/verilite/go-verilite/pkg/sem/sysfn"
	"github.com/verilite/go-verilite/pkg/util/source"
)

var formatCmd = &cobra.Command{
	Use:   "format [flags] format_string [args...]",
	Short: "fold a format string against constant arguments.",
	Long: `Bind a display-style format string against the given constant arguments,
	 validating each directive pairing, and print the folded text.  Arguments
	 which parse as integers become 32-bit signed constants; anything else is
	 bound as a string.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var (
			options, werror = loadOptions(cmd)
			diags           = source.NewDiagnostics(werror)
			ec              = eval.NewContext(diags, options)
			scope           = sem.NewRootScope(GetString(cmd, "scope"))
			literal         = GetFlag(cmd, "literal")
		)
		// Bind each command-line argument as a constant expression.
		exprs := make([]sem.Expr, len(args)-1)
		//
		for i, arg := range args[1:] {
			exprs[i] = bindArgument(arg)
		}
		//
		log.Debugf("binding format string against %d arguments", len(exprs))
		//
		text, ok := sysfn.FormatArgs(args[0], source.Span{}, scope, ec, exprs, literal)
		// Report any diagnostics accumulated during the bind.
		printDiagnostics(diags)
		//
		if !ok {
			os.Exit(1)
		} else if text.IsEmpty() {
			fmt.Println("(not a compile-time constant)")
		} else {
			fmt.Println(text.Unwrap())
		}
	},
}

// bindArgument turns one command-line argument into a constant expression:
// integers become 32-bit signed literals, everything else binds as a string.
func bindArgument(arg string) sem.Expr {
	if value, err := strconv.ParseInt(arg, 0, 64); err == nil {
		return sem.NewIntegerLiteral(source.Span{}, logic.FromInt64(value, 32, true))
	}
	//
	if value, err := strconv.ParseFloat(arg, 64); err == nil {
		return sem.NewRealLiteral(source.Span{}, value)
	}
	//
	return sem.NewStringLiteral(source.Span{}, arg)
}

func init() {
	rootCmd.AddCommand(formatCmd)
	formatCmd.Flags().Bool("literal", false, "apply string-literal escape rules to the format string")
	formatCmd.Flags().String("scope", "top", "hierarchical scope name reported by %m")
}
