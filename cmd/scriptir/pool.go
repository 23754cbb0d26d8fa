package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"scriptir/internal/ast"
	"scriptir/internal/constpool"
	"scriptir/internal/diag"
	"scriptir/internal/observ"
	"scriptir/internal/source"
	"scriptir/internal/trace"
)

var poolCmd = &cobra.Command{
	Use:   "pool",
	Short: "Read and write constant-pool files",
}

var poolDumpCmd = &cobra.Command{
	Use:   "dump <file>...",
	Short: "List the entries of one or more pool files",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runPoolDump,
}

var poolMergeCmd = &cobra.Command{
	Use:   "merge <out> <file>...",
	Short: "Merge pool files into one, dropping duplicate entries",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runPoolMerge,
}

var poolAddCmd = &cobra.Command{
	Use:   "add <file>",
	Short: "Create a pool file or add entries to it",
	Example: `  scriptir pool add game.pool --type ref:Entity --name Player --string "hello"
  scriptir pool add game.pool --int 42 --float 0.5`,
	Args: cobra.ExactArgs(1),
	RunE: runPoolAdd,
}

type poolAddOptions struct {
	types    []string
	names    []string
	strings  []string
	cnames   []string
	ints     []string
	floats   []string
	bools    []string
	noVerify bool
}

var poolAddFlags poolAddOptions

func init() {
	f := poolAddCmd.Flags()
	f.StringArrayVar(&poolAddFlags.types, "type", nil, "type name in repr form (ref:Entity)")
	f.StringArrayVar(&poolAddFlags.names, "name", nil, "identifier for the name section")
	f.StringArrayVar(&poolAddFlags.strings, "string", nil, "string constant")
	f.StringArrayVar(&poolAddFlags.cnames, "cname", nil, "name literal constant (n\"...\")")
	f.StringArrayVar(&poolAddFlags.ints, "int", nil, "Int32 constant")
	f.StringArrayVar(&poolAddFlags.floats, "float", nil, "Float constant")
	f.StringArrayVar(&poolAddFlags.bools, "bool", nil, "Bool constant")
	f.BoolVar(&poolAddFlags.noVerify, "no-verify", false, "store malformed type names without complaint")

	poolMergeCmd.Flags().String("progress", "auto", "show loading progress (auto|on|off)")
	poolMergeCmd.Flags().Bool("timings", false, "print step timings to stderr")

	poolCmd.AddCommand(poolDumpCmd)
	poolCmd.AddCommand(poolMergeCmd)
	poolCmd.AddCommand(poolAddCmd)
}

func poolOptions() constpool.Options {
	return constpool.Options{Interner: sess.interner}
}

func runPoolDump(cmd *cobra.Command, args []string) error {
	paths := make([]string, len(args))
	for i, a := range args {
		paths[i] = sess.cfg.PoolPath(a)
	}

	bag := diag.NewBag(maxDiagnostics(cmd))
	reporter := diag.BagReporter{Bag: bag}
	pools, err := constpool.LoadAll(cmd.Context(), paths, poolOptions(), sess.cfg.Pool.Jobs)
	if err != nil {
		constpool.ReportLoadError(reporter, err)
		if werr := diag.Write(cmd.ErrOrStderr(), bag); werr != nil {
			return werr
		}
		return err
	}

	out := cmd.OutOrStdout()
	for i, p := range pools {
		if i > 0 {
			fmt.Fprintln(out)
		}
		dumpPool(out, paths[i], p)
		constpool.Verify(p, paths[i], reporter)
	}

	if bag.Len() > 0 {
		bag.Sort()
		if err := diag.Write(cmd.ErrOrStderr(), bag); err != nil {
			return err
		}
	}
	if bag.HasErrors() {
		return errors.New("pool contains malformed entries")
	}
	return nil
}

func runPoolMerge(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := sess.cfg.PoolPath(args[0])
	paths := make([]string, len(args)-1)
	for i, a := range args[1:] {
		paths[i] = sess.cfg.PoolPath(a)
	}

	showProgress, err := progressEnabled(cmd)
	if err != nil {
		return err
	}

	timings, _ := cmd.Flags().GetBool("timings")
	timer := observ.NewTimer()

	step := timer.Begin("load")
	var pools []*constpool.Pool
	if showProgress {
		pools, err = loadPoolsWithUI(ctx, "loading pools", paths, poolOptions(), sess.cfg.Pool.Jobs)
	} else {
		pools, err = constpool.LoadAll(ctx, paths, poolOptions(), sess.cfg.Pool.Jobs)
	}
	timer.End(step, fmt.Sprintf("%d files", len(paths)))
	if err != nil {
		bag := diag.NewBag(maxDiagnostics(cmd))
		constpool.ReportLoadError(diag.BagReporter{Bag: bag}, err)
		if werr := diag.Write(cmd.ErrOrStderr(), bag); werr != nil {
			return werr
		}
		return err
	}

	step = timer.Begin("merge")
	span, ctx := trace.Start(ctx, trace.ScopePass, "pool.merge")
	merged := constpool.New(poolOptions())
	for i, p := range pools {
		if _, err := merged.Merge(p); err != nil {
			span.End(err.Error())
			return fmt.Errorf("%s: %w", paths[i], err)
		}
	}
	span.End("")
	timer.End(step, "")

	step = timer.Begin("save")
	if err := merged.Save(ctx, out); err != nil {
		return err
	}
	timer.End(step, "")
	if timings {
		fmt.Fprint(cmd.ErrOrStderr(), timer.Summary())
	}
	st := merged.Stats()
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d names, %d types, %d constants from %d files\n",
		out, st.Names, st.Types, st.Consts, len(paths))
	return nil
}

func progressEnabled(cmd *cobra.Command) (bool, error) {
	mode, err := cmd.Flags().GetString("progress")
	if err != nil {
		return false, err
	}
	switch mode {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "auto":
		return isTerminal(os.Stdout), nil
	default:
		return false, fmt.Errorf("invalid --progress value %q (expected auto|on|off)", mode)
	}
}

func dumpPool(w io.Writer, path string, p *constpool.Pool) {
	header := color.New(color.Bold)
	section := color.New(color.FgCyan)
	st := p.Stats()

	header.Fprintf(w, "%s", path)
	fmt.Fprintf(w, " (%d names, %d types, %d constants)\n", st.Names, st.Types, st.Consts)

	if st.Names > 0 {
		section.Fprintln(w, "names:")
		for i, n := range p.Names() {
			fmt.Fprintf(w, "  %4d  %s\n", i, n)
		}
	}
	if st.Types > 0 {
		section.Fprintln(w, "types:")
		for i, t := range p.Types() {
			fmt.Fprintf(w, "  %4d  %-24s %s\n", i, t.Repr(), t.Pretty())
		}
	}
	if st.Consts > 0 {
		section.Fprintln(w, "constants:")
		for i, c := range p.Consts() {
			fmt.Fprintf(w, "  %4d  %-8s %s\n", i, c.Kind, c)
		}
	}
}

func runPoolAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	path := sess.cfg.PoolPath(args[0])

	span, ctx := trace.Start(ctx, trace.ScopePass, "pool.add")
	defer span.End("")

	p, err := constpool.Load(ctx, path, poolOptions())
	switch {
	case errors.Is(err, os.ErrNotExist):
		p = constpool.New(poolOptions())
	case err != nil:
		return err
	}

	before := p.Stats()
	if err := addPoolEntries(p); err != nil {
		return err
	}

	if !poolAddFlags.noVerify {
		bag := diag.NewBag(maxDiagnostics(cmd))
		if !constpool.Verify(p, path, diag.BagReporter{Bag: bag}) {
			if err := diag.Write(cmd.ErrOrStderr(), bag); err != nil {
				return err
			}
			return errors.New("refusing to save malformed type names (use --no-verify)")
		}
	}

	if err := p.Save(ctx, path); err != nil {
		return err
	}
	after := p.Stats()
	fmt.Fprintf(cmd.OutOrStdout(), "%s: +%d names, +%d types, +%d constants\n", path,
		after.Names-before.Names, after.Types-before.Types, after.Consts-before.Consts)
	return nil
}

func addPoolEntries(p *constpool.Pool) error {
	for _, repr := range poolAddFlags.types {
		if _, err := p.AddTypeRepr(repr); err != nil {
			return fmt.Errorf("--type %q: %w", repr, err)
		}
	}
	for _, n := range poolAddFlags.names {
		if _, err := p.AddName(source.NewIdent(n)); err != nil {
			return err
		}
	}

	var consts []ast.Constant
	for _, s := range poolAddFlags.strings {
		consts = append(consts, ast.StringConst(ast.LiteralString, s))
	}
	for _, s := range poolAddFlags.cnames {
		consts = append(consts, ast.StringConst(ast.LiteralName, s))
	}
	for _, s := range poolAddFlags.ints {
		v, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return fmt.Errorf("--int %q: %w", s, err)
		}
		consts = append(consts, ast.I32Const(int32(v)))
	}
	for _, s := range poolAddFlags.floats {
		v, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return fmt.Errorf("--float %q: %w", s, err)
		}
		consts = append(consts, ast.F32Const(float32(v)))
	}
	for _, s := range poolAddFlags.bools {
		v, err := strconv.ParseBool(s)
		if err != nil {
			return fmt.Errorf("--bool %q: %w", s, err)
		}
		consts = append(consts, ast.BoolConst(v))
	}
	for _, c := range consts {
		if _, err := p.AddConst(c); err != nil {
			return err
		}
	}
	return nil
}
