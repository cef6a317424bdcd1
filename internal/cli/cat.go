package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmgilman/go/streamio/fileobj"
)

func newCatCmd(a *app) *cobra.Command {
	var number bool

	cmd := &cobra.Command{
		Use:   "cat [FILE...] [flags]",
		Short: "Concatenate files to standard output",
		Long: `Concatenate files to standard output. With no FILE, or when FILE is -,
read standard input.

Examples:
  # Print two files
  streamcat cat a.txt b.txt

  # Number the lines of standard input
  streamcat cat -n`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.openStdout()
			if err != nil {
				return err
			}
			err = catFiles(a, out, inputs(args), number)
			return errors.Join(err, out.Flush(), out.Close())
		},
	}

	cmd.Flags().BoolVarP(&number, "number", "n", false, "Number all output lines")
	return cmd
}

func catFiles(a *app, out *fileobj.File, names []string, number bool) error {
	line := 0
	for _, name := range names {
		in, err := a.openInput(name)
		if err != nil {
			return err
		}
		err = catFile(out, in, number, &line)
		if err = errors.Join(err, in.Close()); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

func catFile(out, in *fileobj.File, number bool, line *int) error {
	if !number {
		_, err := copyStream(out, in)
		return err
	}
	for l, err := range in.Lines() {
		if err != nil {
			return err
		}
		*line++
		if _, err := fmt.Fprintf(out, "%6d\t%s", *line, l); err != nil {
			return err
		}
	}
	return nil
}

// copyStream moves src to dst one chunk at a time and returns the number of
// bytes written.
func copyStream(dst, src *fileobj.File) (int64, error) {
	var total int64
	for {
		chunk, err := src.Read1(-1)
		if err != nil {
			return total, err
		}
		if len(chunk) == 0 {
			return total, nil
		}
		n, err := dst.Write(chunk)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
}
