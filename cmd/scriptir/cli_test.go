package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"scriptir/internal/constpool"
	"scriptir/internal/diag"
)

func TestDescribeType(t *testing.T) {
	tests := []struct {
		repr    string
		kind    string
		mangled string
		code    diag.Code
	}{
		{"Int32", "prim", "Int32", diag.UnknownCode},
		{"array:ref:Entity", "array", "array<Entity>", diag.UnknownCode},
		{"wref:Entity", "wref", "Entity", diag.UnknownCode},
		{"ref", "ref", "", diag.TypWrapperArity},
		{"array", "array", "array", diag.TypArrayArity},
		{"a::b", "", "", diag.TypMalformedRepr},
	}
	for _, tt := range tests {
		t.Run(tt.repr, func(t *testing.T) {
			r := describeType(tt.repr)
			if r.Kind != tt.kind || r.Mangled != tt.mangled || r.code != tt.code {
				t.Errorf("describeType(%q) = kind %q mangled %q code %s, want %q %q %s",
					tt.repr, r.Kind, r.Mangled, r.code, tt.kind, tt.mangled, tt.code)
			}
		})
	}
}

func TestRenderTypeReports(t *testing.T) {
	var buf bytes.Buffer
	renderTypeReports(&buf, []typeReport{describeType("array:ref:Entity"), describeType(":")}, false)
	out := buf.String()
	for _, want := range []string{"array:ref:Entity", "array<ref<Entity>>", "array<Entity>", "malformed type repr"} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
}

func TestOperatorTable(t *testing.T) {
	rows := operatorRows()
	if len(rows) != 25 {
		t.Fatalf("len(operatorRows()) = %d, want 25", len(rows))
	}

	var buf bytes.Buffer
	renderOperatorRows(&buf, rows, false)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 26 {
		t.Fatalf("rendered %d lines, want 26", len(lines))
	}
	found := false
	for _, line := range lines {
		if strings.Join(strings.Fields(line), " ") == "binary * OperatorMultiply 1 yes" {
			found = true
		}
	}
	if !found {
		t.Errorf("no row for Multiply:\n%s", buf.String())
	}
}

func TestPoolAddThenDump(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.pool")
	poolAddFlags.types = []string{"ref:Entity", "Int32"}
	poolAddFlags.names = []string{"Player"}
	poolAddFlags.ints = []string{"42"}
	poolAddFlags.cnames = []string{"Player"}
	defer func() { poolAddFlags = poolAddOptions{} }()

	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	if err := runPoolAdd(cmd, []string{path}); err != nil {
		t.Fatalf("runPoolAdd() error: %v\n%s", err, errOut.String())
	}
	if !strings.Contains(out.String(), "+1 names, +2 types, +2 constants") {
		t.Errorf("add output = %q", out.String())
	}

	p, err := constpool.Load(context.Background(), path, constpool.Options{})
	if err != nil {
		t.Fatal(err)
	}
	var dump bytes.Buffer
	dumpPool(&dump, path, p)
	for _, want := range []string{"ref:Entity", "ref<Entity>", `n"Player"`, "I32", "42"} {
		if !strings.Contains(dump.String(), want) {
			t.Errorf("dump lacks %q:\n%s", want, dump.String())
		}
	}
}

func TestPoolAddRejectsMalformedType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.pool")
	poolAddFlags.types = []string{"wref"}
	defer func() { poolAddFlags = poolAddOptions{} }()

	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	var errOut bytes.Buffer
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&errOut)

	if err := runPoolAdd(cmd, []string{path}); err == nil {
		t.Fatal("runPoolAdd() accepted a bare wref")
	}
	if !strings.Contains(errOut.String(), "POOL3003") {
		t.Errorf("diagnostics = %q", errOut.String())
	}
}

func TestPoolMerge(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.pool")
	b := filepath.Join(dir, "b.pool")
	out := filepath.Join(dir, "all.pool")

	first := constpool.New(constpool.Options{})
	first.AddTypeRepr("ref:Entity")
	if err := first.Save(context.Background(), a); err != nil {
		t.Fatal(err)
	}
	second := constpool.New(constpool.Options{})
	second.AddTypeRepr("ref:Entity")
	second.AddTypeRepr("Int32")
	if err := second.Save(context.Background(), b); err != nil {
		t.Fatal(err)
	}

	cmd := &cobra.Command{}
	cmd.Flags().String("progress", "off", "")
	cmd.Flags().Bool("timings", true, "")
	cmd.SetContext(context.Background())
	var stdout, errOut bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&errOut)

	if err := runPoolMerge(cmd, []string{out, a, b}); err != nil {
		t.Fatalf("runPoolMerge() error: %v\n%s", err, errOut.String())
	}
	merged, err := constpool.Load(context.Background(), out, constpool.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if got := merged.Stats().Types; got != 2 {
		t.Errorf("merged pool has %d types, want 2", got)
	}
	if !strings.Contains(stdout.String(), "from 2 files") {
		t.Errorf("merge output = %q", stdout.String())
	}
	if !strings.Contains(errOut.String(), "timings:") {
		t.Errorf("timings missing from stderr: %q", errOut.String())
	}
}

func TestPoolMergeBadProgressFlag(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.Flags().String("progress", "sometimes", "")
	if _, err := progressEnabled(cmd); err == nil {
		t.Error("progressEnabled() accepted an unknown mode")
	}
}
