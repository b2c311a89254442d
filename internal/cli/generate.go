package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/iconforge/pkg/icon"
)

// generateOpts holds the command-line flags for the generate command.
// Empty values mean "not set" and defer to the config file or defaults.
type generateOpts struct {
	output   string // output directory
	baseName string // artifact base name
	platform string // GOOS override
	config   string // TOML config file
}

// generateCommand creates the generate command: render the icon and
// package it for the target platform.
//
// Packaging-level degradation and failure are reported as status lines and
// never change the exit code; only startup problems (unreadable config,
// unwritable output directory) are command errors.
func (c *CLI) generateCommand() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render the app icon and package it for the target platform",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts.config)
			if err != nil {
				return err
			}
			opts.merge(&cfg)
			ctx := withLogger(cmd.Context(), c.Logger)
			return c.runGenerate(ctx, cfg)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output directory (default: current directory)")
	cmd.Flags().StringVar(&opts.baseName, "base", "", fmt.Sprintf("artifact base name (default %q)", defaultBaseName))
	cmd.Flags().StringVar(&opts.platform, "platform", "", "target platform as a GOOS value (default: host platform)")
	cmd.Flags().StringVar(&opts.config, "config", "", fmt.Sprintf("TOML config file (default: %s if present)", defaultConfigFile))

	return cmd
}

// merge applies set flags on top of cfg.
func (o *generateOpts) merge(cfg *Config) {
	if o.output != "" {
		cfg.Output = o.output
	}
	if o.baseName != "" {
		cfg.BaseName = o.baseName
	}
	if o.platform != "" {
		cfg.Platform = o.platform
	}
}

// runGenerate selects the strategy for the configured platform, runs the
// one-shot packaging attempt, and prints a status line per artifact.
func (c *CLI) runGenerate(ctx context.Context, cfg Config) error {
	logger := loggerFromContext(ctx)

	if err := os.MkdirAll(cfg.Output, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	strategy := icon.ForPlatform(cfg.Platform)
	outPath := filepath.Join(cfg.Output, cfg.BaseName+".png")

	logger.Infof("Packaging %s icon", strategy.Name())
	prog := newProgress(logger)
	res := strategy.Package(ctx, outPath)

	switch res.Outcome {
	case icon.Success:
		prog.done(fmt.Sprintf("Packaged %s icon", strategy.Name()))
		printSuccess(res.Note)
	case icon.Degraded:
		printWarning(res.Note)
		if res.Err != nil {
			logger.Debugf("degraded: %v", res.Err)
		}
	case icon.Failure:
		printError("packaging failed: %v", res.Err)
	}
	for _, p := range res.Artifacts {
		printFile(p)
	}

	// Packaging failures are fully reported above; the process still exits
	// zero for them.
	return nil
}
