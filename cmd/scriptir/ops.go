package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"scriptir/internal/ast"
)

var opsFormat string

func init() {
	opsCmd.Flags().StringVar(&opsFormat, "format", "pretty", "output format (pretty|json)")
}

var opsCmd = &cobra.Command{
	Use:   "ops",
	Short: "Show the operator table: symbols, external names, precedence and associativity",
	Long: `Lower precedence binds tighter. An operand needs no parentheses under a
parent operator with a higher precedence, or with the same precedence when
the parent is associative.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		rows := operatorRows()
		switch strings.ToLower(opsFormat) {
		case "json":
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(rows)
		case "pretty":
			renderOperatorRows(cmd.OutOrStdout(), rows, sess.useColor)
			return nil
		default:
			return fmt.Errorf("unsupported format %q (must be pretty or json)", opsFormat)
		}
	},
}

type operatorRow struct {
	Arity       string `json:"arity"`
	Symbol      string `json:"symbol"`
	Name        string `json:"name"`
	Precedence  int    `json:"precedence,omitempty"`
	Associative bool   `json:"associative"`
}

func operatorRows() []operatorRow {
	var rows []operatorRow
	for _, op := range ast.BinOps() {
		rows = append(rows, operatorRow{
			Arity:       "binary",
			Symbol:      op.Symbol(),
			Name:        op.String(),
			Precedence:  op.Precedence(),
			Associative: op.Associative(),
		})
	}
	for _, op := range ast.UnOps() {
		rows = append(rows, operatorRow{Arity: "unary", Symbol: op.Symbol(), Name: op.String()})
	}
	return rows
}

func renderOperatorRows(w io.Writer, rows []operatorRow, useColor bool) {
	head := lipgloss.NewStyle()
	if useColor {
		head = head.Bold(true).Underline(true)
	}

	cells := [][]string{{"arity", "symbol", "name", "prec", "assoc"}}
	for _, r := range rows {
		prec, assoc := "", ""
		if r.Arity == "binary" {
			prec = strconv.Itoa(r.Precedence)
			if r.Associative {
				assoc = "yes"
			}
		}
		cells = append(cells, []string{r.Arity, r.Symbol, r.Name, prec, assoc})
	}

	widths := make([]int, len(cells[0]))
	for _, row := range cells {
		for i, c := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(c))
		}
	}

	for n, row := range cells {
		var sb strings.Builder
		for i, c := range row {
			if i > 0 {
				sb.WriteString("  ")
			}
			padded := runewidth.FillRight(c, widths[i])
			if n == 0 {
				padded = head.Render(padded)
			}
			sb.WriteString(padded)
		}
		fmt.Fprintln(w, strings.TrimRight(sb.String(), " "))
	}
}
