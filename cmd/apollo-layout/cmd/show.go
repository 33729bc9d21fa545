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
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/apollo-cli/apollo/cmd/apollo-layout/common"
)

type layoutInfo struct {
	ApolloHome string `json:"apollo_home"`
	BinDir     string `json:"bin_dir"`
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the apollo home layout",
	Long:  `Show the apollo application home and its binary folder.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		home, err := resolver.ApolloHome()
		if err != nil {
			return errors.Wrap(err, "resolving apollo home")
		}
		bin, err := resolver.ApolloHomeBin()
		if err != nil {
			return errors.Wrap(err, "resolving apollo binary folder")
		}

		info := layoutInfo{
			ApolloHome: home,
			BinDir:     bin,
		}
		if outputFormat == common.OutputFormatJSON {
			return printAsJSON(cmd.OutOrStdout(), info)
		}
		formatLayout(cmd.OutOrStdout(), info)
		return nil
	},
}

func formatLayout(w io.Writer, info layoutInfo) {
	t := table.NewWriter()
	header := table.Row{"Field", "Value"}
	t.AppendHeader(header)
	t.AppendRow(table.Row{"Apollo home", info.ApolloHome})
	t.AppendRow(table.Row{"Binary folder", info.BinDir})
	fmt.Fprintln(w, t.Render())
}

func printAsJSON(w io.Writer, value interface{}) error {
	asJSON, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshaling json")
	}
	fmt.Fprintln(w, string(asJSON))
	return nil
}

func init() {
	rootCmd.AddCommand(showCmd)
}
