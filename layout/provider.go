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

package layout

import (
	"strings"

	"github.com/mitchellh/go-homedir"
)

func init() {
	// Every lookup must observe the current environment.
	homedir.DisableCache = true
}

// HomeDirProvider returns the home directory of the current user. The second
// return value is false when no home directory could be found.
type HomeDirProvider interface {
	HomeDir() (string, bool)
}

// HomeDirFunc adapts an ordinary function to a HomeDirProvider.
type HomeDirFunc func() (string, bool)

func (f HomeDirFunc) HomeDir() (string, bool) {
	return f()
}

// SystemHomeDir looks up the home directory using the platform conventions
// (HOME on unix, USERPROFILE or HOMEDRIVE/HOMEPATH on windows).
type SystemHomeDir struct{}

func (SystemHomeDir) HomeDir() (string, bool) {
	home, err := homedir.Dir()
	if err != nil || strings.TrimSpace(home) == "" {
		return "", false
	}
	return home, true
}
