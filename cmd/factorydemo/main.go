package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"

	"github.com/sghaida/creational/config"
	"github.com/sghaida/creational/uifactory"
)

// separator sits between two showcased families.
const separator = "\n\n"

type params struct {
	configPath string
	platforms  []string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	var p params
	cmd := &cobra.Command{
		Use:           "factorydemo",
		Short:         "Render platform-matched widget families",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), cmd.ErrOrStderr(), p)
		},
	}
	cmd.Flags().StringVar(&p.configPath, "config", "", "YAML file providing platforms")
	cmd.Flags().StringArrayVar(&p.platforms, "platform", nil, "platform to showcase (repeatable, auto allowed)")
	cmd.Flags().BoolVar(&p.verbose, "verbose", false, "verbose logging")
	return cmd
}

func run(out, errOut io.Writer, p params) error {
	cfg, err := config.FromEnv(p.configPath)
	if err != nil {
		return err
	}
	// diagnostics go to errOut; out carries only the demo output
	logger.PrintLine = func(_ logger.TLogLevel, line string) {
		_, _ = fmt.Fprintln(errOut, line)
	}
	if p.verbose || cfg.Verbose {
		logger.SetLogLevel(logger.LogLevelVerbose)
	}
	if len(p.platforms) > 0 {
		cfg.Platforms = p.platforms
	}

	platforms, err := cfg.PlatformList()
	if err != nil {
		return err
	}

	registry := uifactory.NewRegistry(out)
	for i, platform := range platforms {
		factory, err := registry.FactoryFor(platform)
		if err != nil {
			return err
		}
		if i > 0 {
			if _, err := fmt.Fprint(out, separator); err != nil {
				return err
			}
		}
		logger.Verbose("showcasing", platform, "widgets")
		uifactory.Showcase(factory)
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}
