package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/akave-ai/msgdecode/internal/config"
	"github.com/akave-ai/msgdecode/internal/handler"
	"github.com/akave-ai/msgdecode/internal/infrastructure/inputs"
	"github.com/akave-ai/msgdecode/internal/infrastructure/inputs/fileinput"
	"github.com/akave-ai/msgdecode/internal/logger"
	"github.com/akave-ai/msgdecode/internal/output"
	"github.com/spf13/cobra"
)

func newDecodeCmd(opts *options) *cobra.Command {
	decodeCmd := &cobra.Command{
		Use:   "decode [paths...]",
		Short: "Decode structured log messages",
		Long: `Decode every JSON message in the given files (or stdin) and render the
typed result. A file may hold one object, an array of objects or a stream of
newline-separated objects. Files ending in .gz or .zst are decompressed.

Examples:
  msgdecode decode message.json
  msgdecode decode app.ndjson.zst --output json
  cat message.json | msgdecode decode --output summary`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(cmd, opts, args)
		},
	}
	decodeCmd.Flags().BoolVar(&opts.failFast, "fail-fast", false, "stop at the first record that fails to decode")
	return decodeCmd
}

func runDecode(cmd *cobra.Command, opts *options, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if len(args) == 0 {
		args = []string{fileinput.StdinPath}
	}

	// the log format replays messages on stdout, unfiltered by the diagnostic level
	replay := logger.New(config.LoggingConfig{Level: "trace", Format: opts.cfg.Logging.Format}, cmd.OutOrStdout())
	renderer, err := output.New(opts.cfg.Output.Format, cmd.OutOrStdout(), opts.cfg.Output.Color, replay)
	if err != nil {
		return err
	}

	h := &handler.DecodeHandler{
		Renderer: renderer,
		Filter:   output.ParseLevelFilter(opts.cfg.Output.Levels),
		Log:      opts.log,
		FailFast: opts.cfg.Decode.FailFast,
	}

	specs := make([]inputs.InputSpec, 0, len(args))
	for _, path := range args {
		specs = append(specs, inputs.InputSpec{
			Type: "file",
			Config: inputs.Config{
				"path":  path,
				"stdin": cmd.InOrStdin(),
			},
		})
	}

	opts.log.Debug().Strs("paths", args).Str("output", opts.cfg.Output.Format).Msg("decoding")
	runErr := inputs.GlobalRegistry.Run(ctx, specs, h)

	stats := h.Stats()
	opts.log.Info().
		Int("inputs", stats.Payloads).
		Int("decoded", stats.Decoded).
		Int("rendered", stats.Rendered).
		Int("failed", stats.Failed).
		Msg("decode finished")

	if runErr != nil {
		if ctx.Err() != nil {
			opts.log.Warn().Msg("interrupted")
		}
		return runErr
	}
	if stats.Failed > 0 {
		return fmt.Errorf("%d record(s) failed to decode", stats.Failed)
	}
	return nil
}
