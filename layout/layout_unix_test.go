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

//go:build !windows && !plan9

package layout

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemHomeDirReadsHOME(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, ok := SystemHomeDir{}.HomeDir()
	require.True(t, ok)
	assert.Equal(t, home, got)

	apolloHome, err := ApolloHome()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".apollo"), apolloHome)

	bin, err := ApolloHomeBin()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".apollo", "bin"), bin)
}

func TestSystemHomeDirIsNotCached(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()

	t.Setenv("HOME", first)
	home, err := ApolloHome()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(first, ".apollo"), home)

	t.Setenv("HOME", second)
	home, err = ApolloHome()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(second, ".apollo"), home)
}
