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

package common

import (
	"strings"

	apolloErrors "github.com/apollo-cli/apollo/errors"
)

// OutputFormat selects how commands render their results. It implements
// pflag.Value so it can be bound directly to a flag.
type OutputFormat string

const (
	OutputFormatTable OutputFormat = "table"
	OutputFormatJSON  OutputFormat = "json"
)

var allowedFormats = []OutputFormat{
	OutputFormatTable,
	OutputFormatJSON,
}

func (o *OutputFormat) String() string {
	if o == nil {
		return ""
	}
	return string(*o)
}

func (o *OutputFormat) Set(value string) error {
	for _, format := range allowedFormats {
		if OutputFormat(value) == format {
			*o = format
			return nil
		}
	}

	names := make([]string, 0, len(allowedFormats))
	for _, format := range allowedFormats {
		names = append(names, string(format))
	}
	return apolloErrors.NewBadRequestError("allowed formats are: %s", strings.Join(names, ", "))
}

func (o *OutputFormat) Type() string {
	return "string"
}
