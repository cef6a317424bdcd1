package cli

import (
	"errors"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jmgilman/go/streamio/fileobj"
)

// Info is the report printed by the info command.
type Info struct {
	Name        string `yaml:"name"`
	Shape       string `yaml:"shape"`
	Readable    bool   `yaml:"readable"`
	Writable    bool   `yaml:"writable"`
	Seekable    bool   `yaml:"seekable"`
	Truncatable bool   `yaml:"truncatable"`
	FdBased     bool   `yaml:"fd_based"`
	Fileno      *int64 `yaml:"fileno,omitempty"`
	TTY         bool   `yaml:"tty"`
	Position    *int64 `yaml:"position,omitempty"`
	BufferSize  int    `yaml:"buffer_size"`
}

func newInfoCmd(a *app) *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "info [FILE] [flags]",
		Short: "Describe what a stream supports",
		Long: `Describe the capabilities of FILE, or of standard input when FILE is
omitted or -, as YAML.

Examples:
  # Inspect a regular file
  streamcat info notes.txt

  # Inspect a file opened for reading and writing
  streamcat info --mode r+ notes.txt

  # Inspect standard input
  echo hi | streamcat info`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := inputs(args)[0]

			var (
				f   *fileobj.File
				err error
			)
			if name == stdioName {
				f, err = a.openInput(name)
			} else {
				f, err = a.openMode(name, mode)
			}
			if err != nil {
				return err
			}
			info, err := describe(name, f)
			if err = errors.Join(err, f.Close()); err != nil {
				return err
			}

			out, err := a.openStdout()
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(out)
			enc.SetIndent(2)
			err = enc.Encode(info)
			return errors.Join(err, enc.Close(), out.Flush(), out.Close())
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", "r", "Mode to open FILE with (r, w, x, a, optionally with b, t or +)")
	return cmd
}

// describe collects the capability report of an open File.
func describe(name string, f *fileobj.File) (*Info, error) {
	caps := f.Capabilities()
	info := &Info{
		Name:        name,
		Shape:       string(caps.Shape),
		Readable:    caps.Readable,
		Writable:    caps.Writable,
		Seekable:    caps.Seekable,
		Truncatable: caps.Truncatable,
		FdBased:     caps.FdBased,
		BufferSize:  caps.BufferSize,
	}

	if caps.FdBased {
		fd, err := f.Fileno()
		if err != nil {
			return nil, err
		}
		n := int64(fd)
		info.Fileno = &n
	}

	tty, err := f.IsATTY()
	if err != nil {
		return nil, err
	}
	info.TTY = tty

	if caps.Seekable {
		pos, err := f.Tell()
		if err != nil {
			return nil, err
		}
		info.Position = &pos
	}
	return info, nil
}
