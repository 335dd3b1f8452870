package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/sghaida/creational/builder"
	"github.com/sghaida/creational/config"
)

const (
	formatText = "text"
	formatYAML = "yaml"
)

type params struct {
	configPath string
	presets    []string
	format     string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	var p params
	cmd := &cobra.Command{
		Use:           "builderdemo",
		Short:         "Print computers assembled by the builder Director",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), cmd.ErrOrStderr(), p)
		},
	}
	cmd.Flags().StringVar(&p.configPath, "config", "", "YAML preset catalog")
	cmd.Flags().StringArrayVar(&p.presets, "preset", nil, "preset to build (repeatable)")
	cmd.Flags().StringVar(&p.format, "format", formatText, "output format: text or yaml")
	cmd.Flags().BoolVar(&p.verbose, "verbose", false, "verbose logging")
	return cmd
}

func run(out, errOut io.Writer, p params) error {
	if p.format != formatText && p.format != formatYAML {
		return fmt.Errorf("unknown format %q", p.format)
	}

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

	catalog, err := cfg.Catalog()
	if err != nil {
		return err
	}

	logger.Verbose("catalog holds", catalog.Len(), "presets")

	names := p.presets
	if len(names) == 0 {
		names = []string{builder.GamingPresetName, builder.OfficePresetName}
	}

	director := builder.NewDirector(builder.New())
	built := make([]builder.Preset, 0, len(names))
	for _, name := range names {
		c, err := director.BuildPreset(catalog, name)
		if err != nil {
			return err
		}
		logger.Verbose("built preset", name)
		built = append(built, builder.Preset{Name: name, Computer: c})
	}

	if p.format == formatYAML {
		return writeYAML(out, built)
	}
	return writeText(out, built)
}

func writeText(out io.Writer, presets []builder.Preset) error {
	title := cases.Title(language.English)
	for _, p := range presets {
		if _, err := fmt.Fprintf(out, "%s Computer: %s\n", title.String(p.Name), p.Computer); err != nil {
			return err
		}
	}
	return nil
}

func writeYAML(out io.Writer, presets []builder.Preset) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(presets); err != nil {
		return err
	}
	return enc.Close()
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}
