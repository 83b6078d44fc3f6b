// Copyright 2020-2024 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/pipelang/pipecompile"
	"github.com/pipelang/pipecompile/report"
)

// options holds the persistent flags and everything derived from them
// before a subcommand runs.
type options struct {
	configPath string
	verbose    bool
	style      string
	jobs       int

	config *Config
	logger *slog.Logger
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "pipec",
		Short: "Check pipeline language source files",
		Long: `pipec tokenizes and parses pipeline language (.pipe) source files and
reports every lexical and syntax error it finds.

Settings are read from a TOML file, ./pipec.toml unless --config names
another one. Flags take precedence over the file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default: ./pipec.toml if present)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log what the compiler is doing")
	flags.StringVar(&opts.style, "style", "", "diagnostic style: simple, plain or color")
	flags.IntVarP(&opts.jobs, "jobs", "j", 0, "maximum number of files compiled in parallel")

	root.AddCommand(
		newCheckCommand(opts),
		newTokensCommand(opts),
		newLocateCommand(opts),
		newGrammarCommand(),
		newVersionCommand(),
	)
	return root
}

func (o *options) setup(cmd *cobra.Command) error {
	cfg, err := loadConfig(o.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("style") {
		cfg.Style = o.style
	}
	if flags.Changed("jobs") {
		cfg.MaxParallelism = o.jobs
	}
	if o.verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.validate(); err != nil {
		return err
	}

	level, _ := cfg.level()
	o.config = cfg
	o.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	o.logger.Debug("configured",
		slog.String("config", o.configPath),
		slog.String("style", cfg.Style),
		slog.Int("max_parallelism", cfg.MaxParallelism),
		slog.Any("include", cfg.Include),
	)
	return nil
}

func (o *options) reportStyle() report.Style {
	style, _ := report.StyleByName(o.config.Style)
	return style
}

// resolver loads files relative to the working directory, then from each
// include directory.
func (o *options) resolver() pipecompile.Resolver {
	var res pipecompile.Resolver = &pipecompile.SourceResolver{}
	if len(o.config.Include) > 0 {
		res = pipecompile.CompositeResolver{
			res,
			&pipecompile.SourceResolver{ImportPaths: o.config.Include},
		}
	}
	return res
}
