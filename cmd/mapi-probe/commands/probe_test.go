package commands_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/outlook-mapi/mapi-go/cmd/mapi-probe/commands"
	"github.com/outlook-mapi/mapi-go/pkg/loader"
	"github.com/outlook-mapi/mapi-go/pkg/loader/mocks"
)

var outlook = loader.Installation{
	Provider: loader.ProviderOutlook,
	Path:     `C:\Office16\OLMAPI32.DLL`,
	Client:   "Microsoft Outlook",
}

func newLoader(t *testing.T, probe loader.Probe, binder loader.Binder) *loader.Loader {
	t.Helper()
	cfg := loader.DefaultConfig()
	cfg.DecorateSymbols = false
	cfg.Probe = probe
	if binder == nil {
		binder = mocks.NewMockBinder(t)
	}
	cfg.Binder = binder
	l, err := loader.New(cfg)
	require.NoError(t, err)
	return l
}

func libraryWithout(t *testing.T, missing ...string) *mocks.MockLibrary {
	lib := mocks.NewMockLibrary(t)
	lib.EXPECT().Lookup(mock.Anything).RunAndReturn(func(symbol string) (uintptr, error) {
		for _, m := range missing {
			if m == symbol {
				return 0, errors.New("procedure not found")
			}
		}
		return 0x1000, nil
	})
	return lib
}

func found() loader.Probe {
	return loader.FuncProbe(func() (loader.Installation, error) { return outlook, nil })
}

func TestRunBound(t *testing.T) {
	binder := mocks.NewMockBinder(t)
	binder.EXPECT().Open(outlook).Return(libraryWithout(t, "WrapCompressedRTFStream"), nil).Once()
	l := newLoader(t, found(), binder)

	var buf bytes.Buffer
	code, err := commands.Run(l, &buf, false)
	require.NoError(t, err)
	assert.Equal(t, commands.ExitBound, code)

	out := buf.String()
	assert.Contains(t, out, "Installed:  yes")
	assert.Contains(t, out, "State:      BOUND")
	assert.Contains(t, out, outlook.Path)
	assert.Contains(t, out, "Client:     Microsoft Outlook")
	assert.Contains(t, out, "Missing optional exports (1):")
	assert.Contains(t, out, "WrapCompressedRTFStream")
	assert.Contains(t, out, loader.FailureNone.Message())
}

func TestRunNotInstalled(t *testing.T) {
	probe := loader.FuncProbe(func() (loader.Installation, error) {
		return loader.Installation{}, fmt.Errorf("%w: no mail client", loader.ErrNotInstalled)
	})
	l := newLoader(t, probe, nil)

	var buf bytes.Buffer
	code, err := commands.Run(l, &buf, false)
	require.NoError(t, err)
	assert.Equal(t, commands.ExitNotInstalled, code)
	assert.Contains(t, buf.String(), "Installed:  no")
	assert.Contains(t, buf.String(), "Failure:    NOT_INSTALLED")
	assert.Contains(t, buf.String(), loader.FailureNotInstalled.Message())
}

func TestRunBindErrorJSON(t *testing.T) {
	binder := mocks.NewMockBinder(t)
	binder.EXPECT().Open(outlook).Return(libraryWithout(t, "MAPILogonEx"), nil).Once()
	l := newLoader(t, found(), binder)

	var buf bytes.Buffer
	code, err := commands.Run(l, &buf, true)
	require.NoError(t, err)
	assert.Equal(t, commands.ExitBindError, code)

	var r commands.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &r))
	assert.True(t, r.Installed)
	assert.Equal(t, "ABSENT", r.State)
	assert.Equal(t, "BIND_ERROR", r.Failure)
	assert.Contains(t, r.Error, "MAPILogonEx")
	assert.Empty(t, r.EntryPoints)
}

func TestProbeReportsEntryPoints(t *testing.T) {
	binder := mocks.NewMockBinder(t)
	binder.EXPECT().Open(outlook).Return(libraryWithout(t), nil).Once()
	l := newLoader(t, found(), binder)

	r := commands.Probe(l)
	assert.Equal(t, commands.ExitBound, r.ExitCode())
	assert.Equal(t, loader.CurrentExportsVersion, r.ExportsVersion)
	require.Len(t, r.EntryPoints, len(l.Exports().Exports))
	for _, ep := range r.EntryPoints {
		assert.Equal(t, "0x1000", ep.Addr)
	}
	assert.Empty(t, r.Missing)
}

func TestReportExitCodeOther(t *testing.T) {
	r := commands.Report{Failure: loader.FailureOther.String()}
	assert.Equal(t, commands.ExitOther, r.ExitCode())
}

func TestListExports(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, commands.ListExports(&buf, "1"))
	assert.Contains(t, buf.String(), "Export manifest v1")
	assert.Contains(t, buf.String(), "MAPILogonEx@20")

	err := commands.ListExports(&buf, "99")
	assert.ErrorIs(t, err, loader.ErrUnknownExportsVersion)
}

func TestParseLogLevel(t *testing.T) {
	level, err := commands.ParseLogLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	level, err = commands.ParseLogLevel(" WARN ")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)

	_, err = commands.ParseLogLevel("loud")
	assert.Error(t, err)
}

func ptr[T any](v T) *T { return &v }

func TestResolvePrecedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mapi.toml")
	content := "library_path = 'C:\\file\\mapi32.dll'\ntrace_file = 'file.mtrace'\nlog_level = 'info'\nprefer_outlook = false\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	t.Setenv("MAPI_LIBRARY_PATH", `C:\env\mapi32.dll`)
	t.Setenv("MAPI_TRACE_FILE", "env.mtrace")

	s, err := commands.Resolve(commands.Options{
		ConfigPath: path,
		TraceFile:  ptr("flag.mtrace"),
		JSON:       ptr(true),
	})
	require.NoError(t, err)
	assert.Equal(t, `C:\env\mapi32.dll`, s.Loader.LibraryPath)
	assert.Equal(t, "flag.mtrace", s.Loader.TraceFile)
	assert.Equal(t, "info", s.LogLevel)
	assert.False(t, s.Loader.PreferOutlook)
	assert.True(t, s.JSON)
}

func TestResolveDefaults(t *testing.T) {
	s, err := commands.Resolve(commands.Options{})
	require.NoError(t, err)
	assert.Equal(t, loader.CurrentExportsVersion, s.Loader.ExportsVersion)
	assert.Equal(t, "warn", s.LogLevel)
}

func TestResolveFlagOverridesBadFileValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mapi.toml")
	require.NoError(t, os.WriteFile(path, []byte("exports_version = '2'\n"), 0o644))

	s, err := commands.Resolve(commands.Options{ConfigPath: path, ExportsVersion: ptr("1")})
	require.NoError(t, err)
	assert.Equal(t, "1", s.Loader.ExportsVersion)

	_, err = commands.Resolve(commands.Options{ConfigPath: path})
	assert.ErrorIs(t, err, loader.ErrInvalidConfig)
}

func TestResolveErrors(t *testing.T) {
	_, err := commands.Resolve(commands.Options{ExportsVersion: ptr("7")})
	assert.ErrorIs(t, err, loader.ErrInvalidConfig)

	_, err = commands.Resolve(commands.Options{LogLevel: ptr("chatty")})
	assert.Error(t, err)

	_, err = commands.Resolve(commands.Options{ConfigPath: filepath.Join(t.TempDir(), "missing.toml")})
	assert.ErrorIs(t, err, os.ErrNotExist)
}
