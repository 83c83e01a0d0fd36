// internal/cli/options.go
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"unitigseq/internal/kmerr"
	"unitigseq/internal/kmertable"
	"unitigseq/internal/reconstruct"
	"unitigseq/internal/version"
)

// TableSuffix marks both input files as sequence tables.
const TableSuffix = ".sequences"

// Options holds all CLI flags and arguments.
type Options struct {
	// Positionals
	Reference string // k-mer reference table (read only)
	Target    string // unitig table, rewritten in place unless Output is set

	// Reconstruction
	Windowing  string
	Duplicates string
	Threads    int

	// Set by Validate from Windowing and Duplicates.
	WindowMode reconstruct.Windowing
	DupPolicy  kmertable.DuplicatePolicy

	// Output
	Output   string
	Progress bool
	Quiet    bool
}

// Register wires flags onto fs.
func Register(fs *pflag.FlagSet, o *Options) {
	fs.StringVar(&o.Windowing, "windowing", "sliding", "k-mer windows over a unitig: sliding (stride 1) | chained (share one minimizer)")
	fs.StringVar(&o.Duplicates, "duplicates", "last-wins", "repeated reference tuple: last-wins | reject")
	fs.IntVarP(&o.Threads, "threads", "t", 1, "rows reconstructed in parallel (0 = all CPUs)")

	fs.StringVarP(&o.Output, "output", "o", "", "write the filled table here instead of rewriting the target")
	fs.BoolVar(&o.Progress, "progress", false, "show a progress bar on stderr")
	fs.BoolVarP(&o.Quiet, "quiet", "q", false, "suppress informational messages and warnings")
}

// Validate applies CLI invariants and fills WindowMode and DupPolicy. All
// failures are usage errors.
func Validate(o *Options) error {
	for _, p := range []string{o.Reference, o.Target} {
		if !strings.HasSuffix(p, TableSuffix) {
			return kmerr.Usagef("%q: expected a %s file", p, TableSuffix)
		}
	}
	if o.Output != "" && !strings.HasSuffix(o.Output, TableSuffix) {
		return kmerr.Usagef("--output %q: expected a %s file", o.Output, TableSuffix)
	}
	if o.Threads < 0 {
		return kmerr.Usagef("--threads must be ≥ 0")
	}
	win, err := reconstruct.ParseWindowing(o.Windowing)
	if err != nil {
		return kmerr.Usagef("--windowing: %v", err)
	}
	dups, err := kmertable.ParseDuplicatePolicy(o.Duplicates)
	if err != nil {
		return kmerr.Usagef("--duplicates: %v", err)
	}
	o.WindowMode, o.DupPolicy = win, dups
	return nil
}

// positionals requires exactly the reference and target tables.
func positionals(_ *cobra.Command, args []string) error {
	if len(args) != 2 {
		return kmerr.Usagef("expected 2 arguments (reference%s target%s), got %d", TableSuffix, TableSuffix, len(args))
	}
	return nil
}

// NewCommand builds the root command. run is called with validated options.
func NewCommand(name string, o *Options, run func(cmd *cobra.Command, o *Options) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:   name + " [flags] <graph" + TableSuffix + "> <final" + TableSuffix + ">",
		Short: "fill unitig sequences from minimizer-indexed k-mers",
		Long: name + `: fill unitig sequences from minimizer-indexed k-mers

Reads the k-mer table <graph.sequences> (with '# k = ' and '# l = ' header
lines) and rewrites the third column of <final.sequences> with each unitig's
sequence, stitched from its k-mers. Nothing is written if any unitig fails.`,
		Version:       version.Version,
		Args:          positionals,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			o.Reference, o.Target = args[0], args[1]
			if err := Validate(o); err != nil {
				return err
			}
			return run(cmd, o)
		},
	}
	cmd.SetVersionTemplate(name + " version {{.Version}}\n")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return kmerr.Usagef("%v", err)
	})
	Register(cmd.Flags(), o)
	return cmd
}

// Parse is a convenience for tests: it runs flag and positional parsing and
// validation without executing anything.
func Parse(name string, argv []string) (Options, error) {
	var opt Options
	cmd := NewCommand(name, &opt, func(*cobra.Command, *Options) error { return nil })
	cmd.SetArgs(append([]string{}, argv...))
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	if err := cmd.Execute(); err != nil {
		return opt, err
	}
	return opt, nil
}

// String is the one-line form used in the startup log.
func (o Options) String() string {
	return fmt.Sprintf("reference=%s target=%s windowing=%s duplicates=%s threads=%d", o.Reference, o.Target, o.Windowing, o.Duplicates, o.Threads)
}
