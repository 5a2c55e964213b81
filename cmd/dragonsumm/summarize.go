package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/localrivet/dragonsumm"
	"github.com/localrivet/dragonsumm/internal/errortypes"
	"github.com/localrivet/dragonsumm/internal/summarizer"
	"github.com/spf13/cobra"
)

type summarizeOptions struct {
	file  string
	level string
	count int
	both  bool
}

func newSummarizeCmd() *cobra.Command {
	opts := &summarizeOptions{}

	cmd := &cobra.Command{
		Use:   "summarize",
		Short: "Summarize a UTF-8 text file",
		Long: `Summarize reads a UTF-8 text file and prints its summary.
The file path and compression level are asked for on stdin when the
flags are not given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummarize(cmd.Context(), opts, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "path to the text file")
	cmd.Flags().StringVarP(&opts.level, "level", "l", "", "compression level: strong or weak")
	cmd.Flags().IntVarP(&opts.count, "count", "n", 0, "number of sentences, overriding the level")
	cmd.Flags().BoolVar(&opts.both, "both", false, "print both the strong and the weak summary")
	return cmd
}

func runSummarize(ctx context.Context, opts *summarizeOptions, in io.Reader, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	reader := bufio.NewReader(in)

	path := opts.file
	if path == "" {
		var err error
		if path, err = prompt(reader, out, "Path to the text file (txt): "); err != nil {
			return err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return errortypes.ExternalError(err, "no such file or it cannot be read").
			WithField("path", path)
	}

	level := opts.level
	if level == "" && !opts.both {
		if level, err = prompt(reader, out, "Compression level (strong/weak): "); err != nil {
			return err
		}
	}
	if !opts.both {
		if _, err := summarizer.ParseLevel(level); err != nil {
			return fmt.Errorf("unknown compression level %q: %w", level, err)
		}
	}

	cfg, appLogger, err := setup()
	if err != nil {
		return err
	}
	sum, err := dragonsumm.CreateComponents(cfg, appLogger)
	if err != nil {
		return err
	}

	if opts.both {
		strong, weak, err := sum.SummarizeBoth(ctx, string(data))
		if err != nil {
			return err
		}
		fmt.Fprintln(out, "Strong:", strong)
		fmt.Fprintln(out, "Weak:", weak)
		return nil
	}

	result, err := sum.SummarizeLevel(ctx, string(data), level, opts.count)
	if err != nil {
		return err
	}
	if !result.Converged {
		appLogger.Warn("Ranking stopped before converging", "iterations", result.Iterations)
	}
	fmt.Fprintln(out, "Result:", result.Summary)
	return nil
}

// prompt writes question to out and reads one trimmed line from reader.
func prompt(reader *bufio.Reader, out io.Writer, question string) (string, error) {
	fmt.Fprint(out, question)
	line, err := reader.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", errortypes.ExternalError(err, "failed to read answer")
	}
	return strings.TrimSpace(line), nil
}
