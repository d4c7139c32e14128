package cli

import (
	"io"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
)

// newLogger configures an hclog logger from the persistent flags: debug
// output with --verbose, nothing with --quiet, warnings otherwise.
func newLogger(cmd *cobra.Command, opts *rootOptions) hclog.Logger {
	switch {
	case opts.quiet:
		return hclog.New(&hclog.LoggerOptions{
			Name:   "contrastpick",
			Output: io.Discard,
			Level:  hclog.Off,
		})
	case opts.verbose:
		return hclog.New(&hclog.LoggerOptions{
			Name:   "contrastpick",
			Output: cmd.ErrOrStderr(),
			Level:  hclog.Debug,
		})
	default:
		return hclog.New(&hclog.LoggerOptions{
			Name:   "contrastpick",
			Output: cmd.ErrOrStderr(),
			Level:  hclog.Warn,
		})
	}
}
