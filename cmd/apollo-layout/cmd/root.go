// Copyright 2025 Cloudbase Solutions SRL
//
//    Licensed under the Apache License, Version 2.0 (the "License"); you may
//    not use this file except in compliance with the License. You may obtain
//    a copy of the License at
//
//         http://www.apache.org/licenses/LICENSE-2.0
//
//    Unless required by applicable law or agreed to in writing, software
//    distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
//    WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
//    License for the specific language governing permissions and limitations
//    under the License.

package cmd

import (
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/apollo-cli/apollo/cmd/apollo-layout/common"
	"github.com/apollo-cli/apollo/config"
	"github.com/apollo-cli/apollo/layout"
	"github.com/apollo-cli/apollo/util"
)

var (
	cfg          *config.Config
	cfgFile      string
	debug        bool
	outputFormat = common.OutputFormatTable
	logger       = slog.Default()

	resolver = layout.NewResolver(nil)
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:           "apollo-layout",
	Short:         "Inspect the apollo home layout",
	Long:          `Print the location of the apollo application home and the folders inside it.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return initConfig()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func initConfig() error {
	var err error
	cfg, err = config.NewConfig(cfgFile)
	if err != nil {
		return errors.Wrap(err, "loading config")
	}
	if debug {
		cfg.Logging.LogLevel = config.LevelDebug
	}

	logWriter, err := util.GetLoggingWriter(cfg.Logging.LogFile)
	if err != nil {
		return errors.Wrap(err, "fetching log writer")
	}
	logger = util.NewLogger(logWriter, cfg.Logging)
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "apollo-layout config file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().Var(&outputFormat, "format", "Output format (table, json)")
}
