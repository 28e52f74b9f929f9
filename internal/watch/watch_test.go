package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/mrsuber/ResultInstitudeWeb/internal/live"
	"github.com/mrsuber/ResultInstitudeWeb/internal/site"
	"github.com/mrsuber/ResultInstitudeWeb/pkg/logger"
)

func newTestWatcher(t *testing.T, files []string) (*Watcher, chan []string) {
	t.Helper()
	changes := make(chan []string, 8)
	w, err := New(files, func(paths []string) { changes <- paths }, nil)
	require.NoError(t, err)
	w.debounce = 30 * time.Millisecond
	return w, changes
}

func TestWatcher_ReportsSettledChange(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	file := filepath.Join(dir, "theme.yaml")
	require.NoError(t, os.WriteFile(file, []byte("blur: true\n"), 0o644))

	w, changes := newTestWatcher(t, []string{file})
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(file, []byte("blur: false\n"), 0o644))
	}

	select {
	case paths := <-changes:
		assert.Equal(t, []string{file}, paths)
	case <-time.After(3 * time.Second):
		t.Fatal("no change reported")
	}

	select {
	case paths := <-changes:
		t.Fatalf("burst reported twice: %v", paths)
	case <-time.After(150 * time.Millisecond):
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	file := filepath.Join(dir, "content.yaml")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	w, changes := newTestWatcher(t, []string{file})
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	select {
	case paths := <-changes:
		t.Fatalf("unexpected change: %v", paths)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcher_StopWithoutStart(t *testing.T) {
	defer goleak.VerifyNone(t)

	w, _ := newTestWatcher(t, []string{"", filepath.Join(t.TempDir(), "a.yaml")})
	assert.Len(t, w.Files(), 1)
	w.Stop()
}

func TestWatcher_StartMissingDir(t *testing.T) {
	defer goleak.VerifyNone(t)

	w, _ := newTestWatcher(t, []string{filepath.Join(t.TempDir(), "missing", "theme.yaml")})
	assert.Error(t, w.Start(context.Background()))
	w.Stop()
}

func TestReloader(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "theme.yaml")
	require.NoError(t, os.WriteFile(file, []byte("blur: true\n"), 0o644))

	holder, err := site.NewHolder(site.Sources{Theme: "glass", ThemeFile: file}, nil)
	require.NoError(t, err)
	require.True(t, holder.Current().Theme.Blur)

	hub := live.NewHub(live.Options{}, holder.Layout, nil)
	defer hub.Stop()

	reload := Reloader(holder, hub, logger.Nop())

	require.NoError(t, os.WriteFile(file, []byte("blur: false\n"), 0o644))
	reload([]string{file})
	assert.False(t, holder.Current().Theme.Blur)

	require.NoError(t, os.WriteFile(file, []byte("blur: [\n"), 0o644))
	reload([]string{file})
	assert.False(t, holder.Current().Theme.Blur, "broken file keeps the previous site")

	Reloader(holder, nil, logger.Nop())([]string{file})
}
