package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmgilman/go/streamio/fileobj"
)

func newHeadCmd(a *app) *cobra.Command {
	var (
		lines int
		bytes int
	)

	cmd := &cobra.Command{
		Use:   "head [FILE] [flags]",
		Short: "Print the first lines of a file",
		Long: `Print the first lines of FILE, or of standard input when FILE is
omitted or -.

Examples:
  # Print the first 10 lines
  streamcat head notes.txt

  # Print the first 64 bytes of standard input
  streamcat head -c 64`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if lines < 0 || bytes < 0 {
				return fmt.Errorf("counts must not be negative")
			}
			in, err := a.openInput(inputs(args)[0])
			if err != nil {
				return err
			}
			out, err := a.openStdout()
			if err != nil {
				return errors.Join(err, in.Close())
			}
			if cmd.Flags().Changed("bytes") {
				err = headBytes(out, in, bytes)
			} else {
				err = headLines(out, in, lines)
			}
			return errors.Join(err, out.Flush(), out.Close(), in.Close())
		},
	}

	cmd.Flags().IntVarP(&lines, "lines", "n", 10, "Number of lines to print")
	cmd.Flags().IntVarP(&bytes, "bytes", "c", 0, "Number of bytes to print instead of lines")
	return cmd
}

func headLines(out, in *fileobj.File, n int) error {
	for range n {
		line, err := in.ReadLine(-1)
		if err != nil {
			return err
		}
		if len(line) == 0 {
			return nil
		}
		if _, err := out.Write(line); err != nil {
			return err
		}
	}
	return nil
}

func headBytes(out, in *fileobj.File, n int) error {
	data, err := in.ReadN(n)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
