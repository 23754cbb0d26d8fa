package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"scriptir/internal/config"
	"scriptir/internal/source"
	"scriptir/internal/trace"
	"scriptir/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "scriptir",
	Short: "Inspect script type names, operators and constant pools",
	Long: `scriptir works with the intermediate representation shared by the script
compiler and decompiler: encoded type names, the operator table and
constant-pool files.`,
	SilenceUsage:      true,
	PersistentPreRunE: setupSession,
}

// session holds what every subcommand shares. Built in PersistentPreRunE.
type session struct {
	cfg      config.Config
	interner *source.Interner
	ring     *trace.RingTracer
	cleanup  func()
	useColor bool
}

var sess = &session{cfg: config.Default(), cleanup: func() {}}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(typeCmd)
	rootCmd.AddCommand(poolCmd)
	rootCmd.AddCommand(opsCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().String("config", "", "path to scriptir.toml (default: search upwards from the working directory)")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")
	rootCmd.PersistentFlags().String("trace", "", "trace output file (- for stderr)")
	rootCmd.PersistentFlags().String("trace-level", "", "trace level (off|error|phase|detail|debug)")
	rootCmd.PersistentFlags().String("trace-mode", "", "trace storage (stream|ring|both)")
	rootCmd.PersistentFlags().String("trace-format", "", "trace format (auto|text|ndjson)")

	err := rootCmd.Execute()
	if err != nil && sess.ring != nil {
		fmt.Fprintln(os.Stderr, "trace: last events before the failure:")
		_ = sess.ring.Dump(os.Stderr, trace.FormatText)
	}
	sess.cleanup()
	if err != nil {
		os.Exit(1)
	}
}

func setupSession(cmd *cobra.Command, _ []string) error {
	flags := cmd.Root().PersistentFlags()

	cfgPath, err := flags.GetString("config")
	if err != nil {
		return err
	}
	if cfgPath != "" {
		sess.cfg, err = config.Load(cfgPath)
	} else {
		sess.cfg, err = config.Discover(".")
	}
	if err != nil {
		return err
	}

	colorFlag, err := flags.GetString("color")
	if err != nil {
		return err
	}
	switch colorFlag {
	case "on":
		sess.useColor = true
	case "off":
		sess.useColor = false
	case "auto":
		sess.useColor = isTerminal(os.Stdout)
	default:
		return fmt.Errorf("invalid --color value %q (expected auto|on|off)", colorFlag)
	}
	color.NoColor = !sess.useColor

	interner := source.NewInterner(source.InternerOptions{NormalizeNFC: sess.cfg.Source.NormalizeIdents})
	interner.Preload(staticNames()...)
	sess.interner = interner

	cleanup, ring, err := setupTracing(cmd, sess.cfg)
	if err != nil {
		return err
	}
	sess.cleanup = cleanup
	sess.ring = ring
	return nil
}

func maxDiagnostics(cmd *cobra.Command) int {
	n, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil || n <= 0 {
		return 100
	}
	return n
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
