package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// LargeVideoBytes is comfortably above the default 200 MiB size floor.
const LargeVideoBytes int64 = 201 * 1024 * 1024

// WriteFile creates path with the requested size. Files are extended with
// Truncate so large media stand-ins stay sparse on disk. A size <= 0 writes a
// single byte.
func WriteFile(t testing.TB, path string, size int64) {
	t.Helper()

	if size <= 0 {
		size = 1
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()

	if _, err := f.Write([]byte{0x42}); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	if err := f.Truncate(size); err != nil {
		t.Fatalf("truncate %s: %v", path, err)
	}
}

// MediaDir populates a temp directory with large videos and small subtitles
// and returns its path.
func MediaDir(t testing.TB, videos, subtitles []string) string {
	t.Helper()

	dir := t.TempDir()
	for _, name := range videos {
		WriteFile(t, filepath.Join(dir, name), LargeVideoBytes)
	}
	for _, name := range subtitles {
		WriteFile(t, filepath.Join(dir, name), 128)
	}
	return dir
}

// ListNames returns the sorted entry names of dir.
func ListNames(t testing.TB, dir string) []string {
	t.Helper()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir %s: %v", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names
}
