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

// Package layout resolves the location of the apollo application home and
// the well known entries inside it:
//
//	~/
//	    .apollo/
//	        bin/
//	            ap
//	            apollo-language-server
//	        atlas/
//	        auth.toml
//
// Paths are computed only. Nothing is created, read or checked for existence.
package layout

import (
	"path/filepath"

	apolloErrors "github.com/apollo-cli/apollo/errors"
)

const (
	// HomeFolder is the name of the application home, relative to the
	// user home directory.
	HomeFolder = ".apollo"
	// BinFolder holds the installed binaries.
	BinFolder = "bin"
	// AtlasFolder and AuthFileName are owned by other components.
	AtlasFolder  = "atlas"
	AuthFileName = "auth.toml"

	BinaryName               = "ap"
	LanguageServerBinaryName = "apollo-language-server"
)

var defaultResolver = NewResolver(nil)

// Resolver computes application paths relative to the home directory
// supplied by its provider. It holds no mutable state and is safe for
// concurrent use.
type Resolver struct {
	provider HomeDirProvider
}

// NewResolver returns a Resolver backed by provider. A nil provider
// selects SystemHomeDir.
func NewResolver(provider HomeDirProvider) *Resolver {
	if provider == nil {
		provider = SystemHomeDir{}
	}
	return &Resolver{
		provider: provider,
	}
}

// ApolloHome returns <home>/.apollo.
func (r *Resolver) ApolloHome() (string, error) {
	home, ok := r.provider.HomeDir()
	if !ok || home == "" {
		return "", apolloErrors.ErrNoHomeEnvironmentVar
	}
	return filepath.Join(home, HomeFolder), nil
}

// ApolloHomeBin returns <home>/.apollo/bin.
func (r *Resolver) ApolloHomeBin() (string, error) {
	home, err := r.ApolloHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, BinFolder), nil
}

// ApolloHome returns the application home of the current user.
func ApolloHome() (string, error) {
	return defaultResolver.ApolloHome()
}

// ApolloHomeBin returns the binary folder inside the application home of
// the current user.
func ApolloHomeBin() (string, error) {
	return defaultResolver.ApolloHomeBin()
}
