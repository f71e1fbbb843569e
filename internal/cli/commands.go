package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mojochao/j2render/internal/version"
	"github.com/mojochao/j2render/pkg/config"
	"github.com/mojochao/j2render/pkg/datasource"
	"github.com/mojochao/j2render/pkg/errors"
	"github.com/mojochao/j2render/pkg/logging"
	"github.com/mojochao/j2render/pkg/pipeline"
)

type rootFlags struct {
	sources           []string
	variables         []string
	output            string
	outputDir         string
	noTrimBlocks      bool
	noLStripBlocks    bool
	noTrailingNewline bool
	configPath        string
	verbosity         int
}

// NewRootCmd creates and returns the root command. Extra pipeline options
// are applied after the ones derived from flags and configuration.
func NewRootCmd(opts ...pipeline.Option) *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:     MsgRootUse,
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.String(),
		Args:    cobra.ExactArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(flags.verbosity, false)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args[0], flags, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}
	rootCmd.SetVersionTemplate(MsgVersionFormat)

	f := rootCmd.Flags()
	f.StringArrayVarP(&flags.sources, "source", "s", nil, MsgFlagSource)
	f.StringArrayVarP(&flags.variables, "variable", "v", nil, MsgFlagVariable)
	f.StringVarP(&flags.output, "output", "o", "", MsgFlagOutput)
	f.StringVarP(&flags.outputDir, "output-dir", "d", "", MsgFlagOutputDir)
	f.BoolVar(&flags.noTrimBlocks, "no-trim-blocks", false, MsgFlagNoTrim)
	f.BoolVar(&flags.noLStripBlocks, "no-lstrip-blocks", false, MsgFlagNoLStrip)
	f.BoolVar(&flags.noTrailingNewline, "no-trailing-newline", false, MsgFlagNoTrailingNL)
	f.StringVar(&flags.configPath, "config", "", MsgFlagConfig)
	f.CountVar(&flags.verbosity, "verbose", MsgFlagVerbose)

	return rootCmd
}

// Execute runs rootCmd, logging the code and details of any failure
func Execute(rootCmd *cobra.Command) error {
	err := rootCmd.Execute()
	if err != nil {
		log.Debug().
			Str("code", string(errors.GetErrorCode(err))).
			Fields(errors.GetErrorDetails(err)).
			Msg("Command failed")
	}
	return err
}

func runRender(cmd *cobra.Command, template string, flags *rootFlags, extra []pipeline.Option) error {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return err
	}
	if cfg.Logging.File {
		logging.SetupLogger(flags.verbosity, true)
	}

	modules := datasource.NewModules()
	if err := cfg.RegisterModules(modules); err != nil {
		return err
	}

	renderOpts := cfg.RenderOptions()
	if flags.noTrimBlocks {
		renderOpts.TrimBlocks = false
	}
	if flags.noLStripBlocks {
		renderOpts.LStripBlocks = false
	}
	if flags.noTrailingNewline {
		renderOpts.KeepTrailingNewline = false
	}

	pipelineOpts := append([]pipeline.Option{
		pipeline.WithModules(modules),
		pipeline.WithStdout(cmd.OutOrStdout()),
	}, extra...)

	result, err := pipeline.New(pipelineOpts...).Run(pipeline.Options{
		Template:  template,
		Sources:   flags.sources,
		Variables: flags.variables,
		Output:    flags.output,
		OutputDir: flags.outputDir,
		Render:    renderOpts,
	})
	if err != nil {
		return err
	}

	if !result.Stdout {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), MsgRenderedFormat, result.OutputPath)
	}
	return nil
}
