package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newCopyCmd(a *app) *cobra.Command {
	var appending bool

	cmd := &cobra.Command{
		Use:   "copy SRC DST [flags]",
		Short: "Copy one stream to another",
		Long: `Copy SRC to DST through the file-object adapter. Either side may be -
for standard input or output.

Examples:
  # Copy a file
  streamcat copy a.txt b.txt

  # Append standard input to a log
  streamcat copy --append - app.log`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := a.openInput(args[0])
			if err != nil {
				return err
			}
			out, err := a.openOutput(args[1], appending)
			if err != nil {
				return errors.Join(err, in.Close())
			}

			n, err := copyStream(out, in)
			err = errors.Join(err, out.Flush(), out.Close(), in.Close())
			if err != nil {
				return fmt.Errorf("copy %s to %s: %w", args[0], args[1], err)
			}
			a.logger.Info("copied", "src", args[0], "dst", args[1], "bytes", n)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&appending, "append", "a", false, "Append to DST instead of truncating it")
	return cmd
}
