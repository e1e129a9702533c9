package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/NickyBoy89/ifacereport/config"
	"github.com/NickyBoy89/ifacereport/parsing"
	"github.com/NickyBoy89/ifacereport/report"
	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const vehicleService = `package com.cmartin.learn;

public interface VehicleService {
    /** Finds a vehicle by plate */
    Vehicle find(String plate) throws NotFoundException;

    int count();
}
`

var vehicleServiceReport = "interface name: VehicleService\n" +
	"interface has member count: 2\n" +
	"·method name: find\n" +
	"·method type: Vehicle\n" +
	"··param type: String\n" +
	"··param name: plate\n" +
	"··method exception: NotFoundException\n" +
	"·method comment: /** Finds a vehicle by plate */\n" +
	"·method name: count\n" +
	"·method type: int\n" +
	"·method comment: \n"

func writeJava(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

// execute runs the command with the given arguments, and returns its output
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	if args == nil {
		// cobra falls back to os.Args when given nil
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestReportCommand(t *testing.T) {
	path := writeJava(t, "VehicleService.java", vehicleService)

	out, err := execute(t, path)
	require.NoError(t, err)
	assert.Equal(t, vehicleServiceReport, out)
}

func TestReportCommandIsRepeatable(t *testing.T) {
	path := writeJava(t, "VehicleService.java", vehicleService)

	first, err := execute(t, path)
	require.NoError(t, err)
	second, err := execute(t, path)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestReportCommandInterfaceFlag(t *testing.T) {
	path := writeJava(t, "Services.java", vehicleService)

	out, err := execute(t, "--interface", "VehicleService", path)
	require.NoError(t, err)
	assert.Equal(t, vehicleServiceReport, out)

	// Without the flag, the name comes from the file
	out, err = execute(t, path)
	assert.True(t, errors.Is(err, report.ErrInterfaceNotFound))
	assert.Empty(t, out)
}

func TestReportCommandConfigFile(t *testing.T) {
	path := writeJava(t, "VehicleService.java", vehicleService)
	configPath := filepath.Join(t.TempDir(), "report.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("source: "+path+"\nformat: json\n"), 0o644))

	out, err := execute(t, "--config", configPath)
	require.NoError(t, err)
	assert.Contains(t, out, `"value": "VehicleService"`)

	// Flags take priority over the file
	out, err = execute(t, "--config", configPath, "--format", "text")
	require.NoError(t, err)
	assert.Equal(t, vehicleServiceReport, out)
}

func TestReportCommandMissingFile(t *testing.T) {
	out, err := execute(t, filepath.Join(t.TempDir(), "VehicleService.java"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, parsing.ErrNotFound))
	assert.Contains(t, err.Error(), "loading source")
	assert.Empty(t, out)
}

func TestReportCommandUnparsableFile(t *testing.T) {
	path := writeJava(t, "VehicleService.java", "public interface VehicleService { int count( }")

	out, err := execute(t, path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, parsing.ErrParseFailure))
	assert.Empty(t, out)
}

func TestReportCommandRequiresSource(t *testing.T) {
	_, err := execute(t)
	assert.Error(t, err)

	_, err = execute(t, "--format", "xml", "Foo.java")
	assert.Error(t, err)
}

func TestGenerateReportFailsWithoutPartialOutput(t *testing.T) {
	path := writeJava(t, "Other.java", vehicleService)

	lines, err := GenerateReport(context.Background(), config.Config{Source: path, Interface: "Missing"})
	assert.Nil(t, lines)
	assert.True(t, errors.Is(err, report.ErrInterfaceNotFound))
	assert.False(t, errors.Is(err, parsing.ErrNotFound))
}

func TestChangesSource(t *testing.T) {
	target := filepath.Join(t.TempDir(), "VehicleService.java")

	assert.True(t, changesSource(fsnotify.Event{Name: target, Op: fsnotify.Write}, target))
	assert.True(t, changesSource(fsnotify.Event{Name: target, Op: fsnotify.Create}, target))
	assert.False(t, changesSource(fsnotify.Event{Name: target, Op: fsnotify.Chmod}, target))
	assert.False(t, changesSource(fsnotify.Event{Name: target + ".swp", Op: fsnotify.Write}, target))
}

// syncBuffer is written to by the watcher while the test reads it
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) reports() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return strings.Count(b.buf.String(), "interface name: VehicleService\n")
}

func TestWatchReportRerunsOnChange(t *testing.T) {
	hook := logtest.NewGlobal()
	t.Cleanup(func() {
		log.StandardLogger().ReplaceHooks(make(log.LevelHooks))
	})

	path := writeJava(t, "VehicleService.java", vehicleService)
	conf, err := config.Config{Source: path}.Resolve()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var out syncBuffer
	done := make(chan error, 1)
	go func() {
		done <- watchReport(ctx, conf, &out)
	}()

	require.Eventually(t, func() bool { return out.reports() == 1 }, 5*time.Second, 10*time.Millisecond)

	// A broken source is logged, and the watcher keeps going
	require.NoError(t, os.WriteFile(path, []byte("public interface VehicleService { int count( }"), 0o644))
	require.Eventually(t, func() bool {
		for _, entry := range hook.AllEntries() {
			if entry.Level == log.ErrorLevel && entry.Message == "Report failed" {
				return true
			}
		}
		return false
	}, 5*time.Second, 10*time.Millisecond)
	assert.Equal(t, 1, out.reports())

	require.NoError(t, os.WriteFile(path, []byte(vehicleService), 0o644))
	require.Eventually(t, func() bool { return out.reports() >= 2 }, 5*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop after cancellation")
	}
}
