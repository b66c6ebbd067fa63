package cli

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	var out bytes.Buffer
	o, shouldExit, err := Parse(context.Background(), []string{"--version"}, &out)
	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, o)
	assert.Equal(t, version+"\n", out.String())
}

func TestParseHelp(t *testing.T) {
	var out bytes.Buffer
	_, shouldExit, err := Parse(context.Background(), []string{"--help"}, &out)
	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParseNoInputFiles(t *testing.T) {
	var out bytes.Buffer
	_, _, err := Parse(context.Background(), []string{"--exe"}, &out)
	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.Code)
	assert.Contains(t, exitErr.Message, "No Input Verilog file")
}

func TestParseUnknownOptionExitsTwo(t *testing.T) {
	var out bytes.Buffer
	_, _, err := Parse(context.Background(), []string{"--definitely-not-an-option"}, &out)
	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
	assert.Contains(t, out.String(), "Invalid option")
}

func TestParseAccumulatedErrorsExitOne(t *testing.T) {
	var out bytes.Buffer
	_, _, err := Parse(context.Background(),
		[]string{"--prefix", "9bad", "top.v"}, &out)
	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.Code)
	assert.Equal(t, "Exiting due to errors", exitErr.Message)
	assert.Contains(t, out.String(), "%Error: <command line>: ")
	assert.Contains(t, out.String(), "legal C++ identifier")
}

func TestParseSuccess(t *testing.T) {
	var out bytes.Buffer
	o, shouldExit, err := Parse(context.Background(),
		[]string{"--top-module", "t1", "top.v"}, &out)
	require.NoError(t, err)
	assert.False(t, shouldExit)
	require.NotNil(t, o)
	assert.True(t, o.Available())
	assert.Equal(t, "Vt1", o.Prefix())
	assert.Empty(t, out.String())
}

func TestNewLogger(t *testing.T) {
	testCases := []struct {
		name     string
		level    string
		format   string
		logDebug bool // whether a Debug record should come through
		wantJSON bool
	}{
		{name: "default text info", level: "info", format: "text"},
		{name: "debug enabled", level: "debug", format: "text", logDebug: true},
		{name: "json format", level: "info", format: "json", wantJSON: true},
		{name: "unknown level falls back to info", level: "chatty", format: "text"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			logger := NewLogger(tc.level, tc.format, &out)

			logger.Debug("debug line")
			logger.Info("info line")

			assert.Equal(t, tc.logDebug, strings.Contains(out.String(), "debug line"))
			assert.Contains(t, out.String(), "info line")
			if tc.wantJSON {
				assert.Contains(t, out.String(), `"msg":"info line"`)
			}
			assert.True(t, logger.Enabled(context.Background(), slog.LevelInfo))
		})
	}
}
