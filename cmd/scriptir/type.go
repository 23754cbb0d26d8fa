package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"scriptir/internal/ast"
	"scriptir/internal/diag"
	"scriptir/internal/source"
	"scriptir/internal/trace"
)

var typeFormat string

func init() {
	typeCmd.Flags().StringVar(&typeFormat, "format", "pretty", "output format (pretty|json)")
}

var typeCmd = &cobra.Command{
	Use:   "type <repr>...",
	Short: "Decode constant-pool type names and show their encodings",
	Example: `  scriptir type ref:Entity array:wref:GameObject
  scriptir type --format=json Map:Int32:String`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format := strings.ToLower(typeFormat)
		if format != "pretty" && format != "json" {
			return fmt.Errorf("unsupported format %q (must be pretty or json)", typeFormat)
		}

		span, _ := trace.Start(cmd.Context(), trace.ScopePass, "type.describe")
		defer span.End("")

		reports := make([]typeReport, 0, len(args))
		for _, arg := range args {
			reports = append(reports, describeType(arg))
		}

		if format == "json" {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(reports)
		}
		renderTypeReports(cmd.OutOrStdout(), reports, sess.useColor)

		bag := diag.NewBag(maxDiagnostics(cmd))
		// repeated arguments report once
		reporter := diag.NewDedupReporter(diag.BagReporter{Bag: bag})
		for _, r := range reports {
			if r.code != diag.UnknownCode {
				diag.ReportError(reporter, r.code, source.NoSpan, r.Input+": "+r.message).Emit()
			}
		}
		if bag.HasErrors() {
			if err := diag.Write(cmd.ErrOrStderr(), bag); err != nil {
				return err
			}
			return fmt.Errorf("%d distinct invalid type names", bag.Len())
		}
		return nil
	},
}

type typeReport struct {
	Input     string `json:"input"`
	Kind      string `json:"kind,omitempty"`
	Pretty    string `json:"pretty,omitempty"`
	Mangled   string `json:"mangled,omitempty"`
	Repr      string `json:"repr,omitempty"`
	Unwrapped string `json:"unwrapped,omitempty"`
	// Problem is set when the decoded type is not well formed.
	Problem string `json:"problem,omitempty"`
	Error   string `json:"error,omitempty"`

	code    diag.Code
	message string
}

func describeType(repr string) typeReport {
	r := typeReport{Input: repr}
	t, err := ast.FromRepr(repr)
	if err != nil {
		r.Error = err.Error()
		r.code, r.message = diag.TypMalformedRepr, r.Error
		return r
	}
	r.Kind = t.Kind().String()
	r.Pretty = t.Pretty().String()
	r.Repr = t.Repr().String()
	if code, msg, ok := ast.CheckTypeName(t); !ok {
		r.Problem = msg
		r.code, r.message = code, msg
	}
	if u, err := t.Unwrapped(); err == nil {
		r.Unwrapped = u.Pretty().String()
	} else {
		r.Error = err.Error()
	}
	if m, err := t.Mangled(); err == nil {
		r.Mangled = m.String()
	}
	return r
}

func renderTypeReports(w io.Writer, reports []typeReport, useColor bool) {
	title := lipgloss.NewStyle()
	key := lipgloss.NewStyle().Width(10)
	bad := lipgloss.NewStyle()
	if useColor {
		title = title.Bold(true).Foreground(lipgloss.Color("6"))
		key = key.Foreground(lipgloss.Color("8"))
		bad = bad.Foreground(lipgloss.Color("1"))
	}

	for i, r := range reports {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, title.Render(r.Input))
		if r.Kind == "" {
			fmt.Fprintln(w, key.Render("error")+bad.Render(r.Error))
			continue
		}
		rows := [][2]string{
			{"kind", r.Kind},
			{"pretty", r.Pretty},
			{"mangled", r.Mangled},
			{"repr", r.Repr},
			{"unwrapped", r.Unwrapped},
		}
		for _, row := range rows {
			if row[1] == "" {
				continue
			}
			fmt.Fprintln(w, key.Render(row[0])+row[1])
		}
		if r.Problem != "" {
			fmt.Fprintln(w, key.Render("problem")+bad.Render(r.Problem))
		}
	}
}

// builtin and wrapper names are preloaded as static identifiers
func staticNames() []string {
	return ast.StaticTypeNames()
}
