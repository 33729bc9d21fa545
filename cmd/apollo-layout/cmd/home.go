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
	"context"
	"fmt"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/apollo-cli/apollo/util"
)

var homeCmd = &cobra.Command{
	Use:   "home",
	Short: "Print the apollo home",
	Long:  `Print the absolute path of the apollo application home (~/.apollo).`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := util.WithSlogContext(context.Background(), slog.String("command", "home"))
		home, err := resolver.ApolloHome()
		if err != nil {
			return errors.Wrap(err, "resolving apollo home")
		}
		logger.DebugContext(ctx, "resolved apollo home", "path", home)
		fmt.Fprintln(cmd.OutOrStdout(), home)
		return nil
	},
}

var binCmd = &cobra.Command{
	Use:   "bin",
	Short: "Print the apollo binary folder",
	Long:  `Print the absolute path of the folder holding the apollo binaries (~/.apollo/bin).`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := util.WithSlogContext(context.Background(), slog.String("command", "bin"))
		bin, err := resolver.ApolloHomeBin()
		if err != nil {
			return errors.Wrap(err, "resolving apollo binary folder")
		}
		logger.DebugContext(ctx, "resolved apollo binary folder", "path", bin)
		fmt.Fprintln(cmd.OutOrStdout(), bin)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(
		homeCmd,
		binCmd,
	)
}
