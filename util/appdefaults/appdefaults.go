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

package appdefaults

const (
	// DefaultConfigFileName is the name of the apollo-layout config file.
	// It is only loaded when passed explicitly with --config.
	DefaultConfigFileName = "config.toml"
)

// Version is set at build time with -ldflags.
var Version string

func GetVersion() string {
	if Version == "" {
		Version = "v0.0.0-unknown"
	}
	return Version
}
