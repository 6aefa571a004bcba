package integration

import (
	"os"
	"testing"
	"time"

	"github.com/danieljhkim/timetable/internal/clock"
	"github.com/danieljhkim/timetable/internal/config"
	"github.com/danieljhkim/timetable/internal/engine"
	"github.com/danieljhkim/timetable/internal/random"
	"github.com/danieljhkim/timetable/internal/stores"
)

// testFS is a filesystem implementation that tracks files in memory for testing
type testFS struct {
	files  map[string][]byte
	writes int
}

func newTestFS() *testFS {
	return &testFS{
		files: make(map[string][]byte),
	}
}

func (fs *testFS) Exists(path string) (bool, error) {
	_, hasFile := fs.files[path]
	return hasFile, nil
}

func (fs *testFS) AtomicWrite(path string, data []byte, perm os.FileMode) error {
	fs.files[path] = append([]byte(nil), data...)
	fs.writes++
	return nil
}

func (fs *testFS) ReadFile(path string) ([]byte, error) {
	if content, ok := fs.files[path]; ok {
		return append([]byte(nil), content...), nil
	}
	return nil, os.ErrNotExist
}

var testPaths = config.PathsAt("/test")

const testExportDir = "/test/exports"

// setupTestEngine builds an engine over the real file repo backed by fs.
// Calling it twice with the same fs simulates a restart.
func setupTestEngine(t *testing.T, fs *testFS, picks ...int) *engine.Engine {
	t.Helper()
	repo := stores.NewFileTimetableRepo(fs, testPaths.DataFile)
	clk := clock.NewFakeClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	return engine.New(repo, fs, random.NewFakePicker(picks...), clk, nil, testExportDir)
}
