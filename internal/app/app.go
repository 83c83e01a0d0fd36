// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"unitigseq/internal/cli"
	"unitigseq/internal/cmdutil"
	"unitigseq/internal/kmerr"
	"unitigseq/internal/kmertable"
	"unitigseq/internal/reconstruct"
	"unitigseq/internal/seqtable"
	"unitigseq/internal/writers"
)

const name = "unitigseq"

// RunContext parses argv, fills the target table and returns the exit code:
// 0 on success, 1 on a usage error or any failed run.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	var opts cli.Options
	cmd := cli.NewCommand(name, &opts, func(cmd *cobra.Command, o *cli.Options) error {
		return fill(cmd.Context(), *o, stderr)
	})
	cmd.SetArgs(append([]string{}, argv...))
	cmd.SetOut(outw)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(parent)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		if errors.Is(err, kmerr.ErrUsage) {
			_, _ = fmt.Fprint(outw, cmd.UsageString())
		}
	}
	if ferr := writers.Flush(outw); ferr != nil {
		_, _ = fmt.Fprintln(stderr, ferr)
		return 1
	}
	if err != nil {
		return 1
	}
	return 0
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// fill is the whole batch: load the reference, buffer the target, rebuild
// every row, then commit. The target is only touched by the final commit.
func fill(ctx context.Context, o cli.Options, stderr io.Writer) error {
	cmdutil.Infof(stderr, o.Quiet, "%s", o)
	tab, params, err := kmertable.Load(o.Reference, kmertable.Options{Duplicates: o.DupPolicy})
	if err != nil {
		return fmt.Errorf("load reference: %w", err)
	}
	cmdutil.Infof(stderr, o.Quiet, "loaded %d k-mers from %s (k=%d, l=%d)", tab.Len(), o.Reference, params.K, params.L)
	if n := tab.Duplicates(); n > 0 {
		cmdutil.Warnf(stderr, o.Quiet, "%s", duplicateWarning(n, o.Reference, o.DupPolicy))
	}

	lines, err := seqtable.ReadFile(o.Target)
	if err != nil {
		return fmt.Errorf("read target: %w", err)
	}

	prog := cmdutil.StartProgress(stderr, seqtable.CountData(lines), o.Progress && !o.Quiet)
	rec := reconstruct.New(tab, params, reconstruct.Config{
		Windowing: o.WindowMode,
		Threads:   o.Threads,
		OnRow:     prog.Increment,
	})
	out, st, err := rec.Lines(ctx, lines)
	prog.Finish()
	if err != nil {
		return err
	}

	dst := o.Target
	if o.Output != "" {
		dst = o.Output
	}
	sum, err := writers.CommitLines(dst, out)
	if err != nil {
		return err
	}
	cmdutil.Infof(stderr, o.Quiet, "filled %d unitigs from %d k-mers (%d reverse-complemented); wrote %s blake2b-256=%s",
		st.Rows, st.Windows, st.Reversed, dst, sum)
	return nil
}

func duplicateWarning(n int, path string, p kmertable.DuplicatePolicy) string {
	if p == kmertable.Reject {
		return fmt.Sprintf("%d repeated minimizer tuples in %s carried identical sequences; kept one copy each", n, path)
	}
	return fmt.Sprintf("%d repeated minimizer tuples in %s; later rows replaced earlier ones", n, path)
}
