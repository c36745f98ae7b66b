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

	"github.com/spf13/cobra"
	"github.com/verilite/go-verilite/pkg/logic"
	"github.com/verilite/go-verilite/pkg/sem"
	"github.com/verilite/go-verilite/pkg/sem/eval"
	"github.com/verilite/go-verilite/pkg/util/source"
)

var evalCmd = &cobra.Command{
	Use:   "eval [flags] lhs op rhs",
	Short: "fold a constant binary expression.",
	Long: `Fold a constant binary expression over two integer operands and print the
	 result in every radix.  Supported operators: + - x / == != < <= > >=.`,
	Args: cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		var (
			options, werror = loadOptions(cmd)
			diags           = source.NewDiagnostics(werror)
			ec              = eval.NewContext(diags, options)
			width           = GetUint(cmd, "width")
		)
		//
		expr := sem.NewBinaryExpr(source.Span{}, parseOperator(args[1]),
			parseOperand(args[0], width), parseOperand(args[2], width))
		//
		value, result := eval.Evaluate(expr, ec)
		//
		printDiagnostics(diags)
		//
		if result != eval.OK {
			fmt.Println("(not a compile-time constant)")
			os.Exit(1)
		}
		//
		fmt.Printf("binary:  %s\n", value.Format(logic.BINARY, 0, false))
		fmt.Printf("octal:   %s\n", value.Format(logic.OCTAL, 0, false))
		fmt.Printf("decimal: %s\n", value.Format(logic.DECIMAL, 0, false))
		fmt.Printf("hex:     %s\n", value.Format(logic.HEX, 0, false))
	},
}

// parseOperand turns a command-line integer into a signed literal of the
// requested width.
func parseOperand(text string, width uint) sem.Expr {
	value, err := strconv.ParseInt(text, 0, 64)
	//
	if err != nil {
		fmt.Printf("invalid operand %q\n", text)
		os.Exit(2)
	}
	//
	return sem.NewIntegerLiteral(source.Span{}, logic.FromInt64(value, width, true))
}

// parseOperator maps a command-line operator onto the expression model.
// Multiplication is spelled "x" to avoid shell globbing.
func parseOperator(text string) sem.BinaryOp {
	switch text {
	case "+":
		return sem.ADD
	case "-":
		return sem.SUB
	case "x", "*":
		return sem.MUL
	case "/":
		return sem.DIV
	case "==":
		return sem.EQ
	case "!=":
		return sem.NEQ
	case "<":
		return sem.LT
	case "<=":
		return sem.LTEQ
	case ">":
		return sem.GT
	case ">=":
		return sem.GTEQ
	}
	//
	fmt.Printf("unknown operator %q\n", text)
	os.Exit(2)
	// unreachable
	return sem.ADD
}

func init() {
	rootCmd.AddCommand(evalCmd)
	evalCmd.Flags().Uint("width", 32, "operand width in bits")
}
