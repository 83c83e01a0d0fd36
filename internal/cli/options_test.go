// internal/cli/options_test.go
package cli

import (
	"errors"
	"testing"

	"unitigseq/internal/kmerr"
	"unitigseq/internal/kmertable"
	"unitigseq/internal/reconstruct"
)

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	opts, err := Parse("test", args)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	return opts
}

func TestPositionalsOK(t *testing.T) {
	o := mustParse(t, "graph.sequences", "final.sequences")
	if o.Reference != "graph.sequences" || o.Target != "final.sequences" {
		t.Errorf("bad positionals %+v", o)
	}
	if o.WindowMode != reconstruct.Sliding || o.DupPolicy != kmertable.LastWins {
		t.Errorf("bad parsed defaults %+v", o)
	}
	if o.Windowing != "sliding" || o.Duplicates != "last-wins" || o.Threads != 1 || o.Output != "" {
		t.Errorf("bad defaults %+v", o)
	}
}

func TestFlagsOK(t *testing.T) {
	o := mustParse(t,
		"--windowing", "chained", "--duplicates=reject", "-t", "4",
		"-o", "out.sequences", "--progress", "-q",
		"graph.sequences", "final.sequences",
	)
	if o.WindowMode != reconstruct.Chained || o.DupPolicy != kmertable.Reject {
		t.Errorf("parsed modes not stored: %+v", o)
	}
	if o.Windowing != "chained" || o.Duplicates != "reject" || o.Threads != 4 ||
		o.Output != "out.sequences" || !o.Progress || !o.Quiet {
		t.Errorf("bad flag parse %+v", o)
	}
}

func TestUsageErrors(t *testing.T) {
	cases := map[string][]string{
		"no args":          {},
		"one arg":          {"graph.sequences"},
		"three args":       {"a.sequences", "b.sequences", "c.sequences"},
		"bad ref suffix":   {"graph.tsv", "final.sequences"},
		"bad target":       {"graph.sequences", "final.sequences.bak"},
		"bad output":       {"-o", "x.txt", "graph.sequences", "final.sequences"},
		"negative threads": {"-t", "-1", "graph.sequences", "final.sequences"},
		"bad windowing":    {"--windowing", "tiled", "graph.sequences", "final.sequences"},
		"bad duplicates":   {"--duplicates", "first", "graph.sequences", "final.sequences"},
		"unknown flag":     {"--nope", "graph.sequences", "final.sequences"},
	}
	for name, argv := range cases {
		_, err := Parse("test", argv)
		if !errors.Is(err, kmerr.ErrUsage) {
			t.Errorf("%s: err = %v, want usage error", name, err)
		}
	}
}

func TestVersionAndHelpSkipPositionals(t *testing.T) {
	for _, argv := range [][]string{{"--version"}, {"-v"}, {"-h"}} {
		if _, err := Parse("test", argv); err != nil {
			t.Errorf("%v: %v", argv, err)
		}
	}
}
