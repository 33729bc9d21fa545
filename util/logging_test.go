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

package util

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/apollo-cli/apollo/config"
)

func TestGetLoggingWriterDefaultsToStderr(t *testing.T) {
	writer, err := GetLoggingWriter("")
	require.NoError(t, err)
	assert.Equal(t, os.Stderr, writer)
}

func TestGetLoggingWriterRotatesFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "apollo.log")

	writer, err := GetLoggingWriter(logFile)
	require.NoError(t, err)

	rotating, ok := writer.(*lumberjack.Logger)
	require.True(t, ok)
	defer rotating.Close()
	assert.Equal(t, logFile, rotating.Filename)

	_, err = writer.Write([]byte("hello\n"))
	require.NoError(t, err)
	assert.FileExists(t, logFile)
}

func TestNewLoggerJSONWithContextFields(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewLogger(buf, config.Logging{
		LogLevel:  config.LevelDebug,
		LogFormat: config.FormatJSON,
	})

	ctx := WithSlogContext(context.Background(), slog.String("command", "show"))
	logger.DebugContext(ctx, "resolved apollo home", "path", "/home/alice/.apollo")

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "DEBUG", record["level"])
	assert.Equal(t, "resolved apollo home", record["msg"])
	assert.Equal(t, "/home/alice/.apollo", record["path"])
	assert.Equal(t, "show", record["command"])
}

func TestNewLoggerHonorsLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewLogger(buf, config.Logging{
		LogLevel:  config.LevelWarn,
		LogFormat: config.FormatText,
	})

	logger.Info("dropped")
	assert.Empty(t, buf.String())

	logger.Warn("kept")
	assert.Contains(t, buf.String(), "msg=kept")
	assert.Contains(t, buf.String(), "level=WARN")
}
