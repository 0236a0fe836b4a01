package logging

import (
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readArchive(t *testing.T, path string) string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	zr, err := gzip.NewReader(f)
	require.NoError(t, err)
	data, err := io.ReadAll(zr)
	require.NoError(t, err)
	return string(data)
}

func readCurrent(t *testing.T, dir string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, currentLogName))
	require.NoError(t, err)
	return string(data)
}

func openTestLog(t *testing.T) (*SessionLog, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "logs")
	l, err := OpenSessionLog(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = l.Close() })
	return l, dir
}

func TestSessionLog_ArchivesEachSession(t *testing.T) {
	l, dir := openTestLog(t)

	require.NoError(t, l.StartSession("20260201_100000_aaaa"))
	_, err := l.Write([]byte("first visitor\n"))
	require.NoError(t, err)

	require.NoError(t, l.StartSession("20260201_101500_bbbb"))
	_, err = l.Write([]byte("second visitor\n"))
	require.NoError(t, err)

	archives, err := l.Archives()
	require.NoError(t, err)
	assert.Equal(t, []string{"kiosk-20260201_100000_aaaa.log.gz"}, archives)
	assert.Equal(t, "first visitor\n", readArchive(t, filepath.Join(dir, archives[0])))
	assert.Equal(t, "second visitor\n", readCurrent(t, dir))
}

func TestSessionLog_EmptySessionIsNotArchived(t *testing.T) {
	l, _ := openTestLog(t)

	require.NoError(t, l.StartSession("s1"))
	require.NoError(t, l.StartSession("s2"))

	archives, err := l.Archives()
	require.NoError(t, err)
	assert.Empty(t, archives)
}

func TestSessionLog_LeftoverFromEarlierRun(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, currentLogName), []byte("crashed run\n"), 0o600))
	stamp := time.Date(2026, 1, 31, 22, 5, 0, 0, time.Local)
	require.NoError(t, os.Chtimes(filepath.Join(dir, currentLogName), stamp, stamp))

	l, err := OpenSessionLog(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = l.Close() })

	archives, err := l.Archives()
	require.NoError(t, err)
	require.Equal(t, []string{"kiosk-20260131_220500.log.gz"}, archives)
	assert.Equal(t, "crashed run\n", readArchive(t, filepath.Join(dir, archives[0])))
	assert.Empty(t, readCurrent(t, dir))
}

func TestSessionLog_OversizedSessionSplitsIntoParts(t *testing.T) {
	l, dir := openTestLog(t)
	l.maxBytes = 16

	require.NoError(t, l.StartSession("s1"))
	for _, line := range []string{"0123456789\n", "abcdefghij\n", "ABCDEFGHIJ\n"} {
		_, err := l.Write([]byte(line))
		require.NoError(t, err)
	}
	require.NoError(t, l.StartSession("s2"))

	for name, want := range map[string]string{
		"kiosk-s1.1.log.gz": "0123456789\n",
		"kiosk-s1.2.log.gz": "abcdefghij\n",
		"kiosk-s1.3.log.gz": "ABCDEFGHIJ\n",
	} {
		assert.Equal(t, want, readArchive(t, filepath.Join(dir, name)), name)
	}
}

func TestSessionLog_PrunesOldestArchives(t *testing.T) {
	l, dir := openTestLog(t)
	l.maxArchives = 2

	for _, id := range []string{"s1", "s2", "s3", "s4"} {
		require.NoError(t, l.StartSession(id))
		_, err := l.Write([]byte(id + "\n"))
		require.NoError(t, err)
		// Distinct modification times keep the order stable.
		time.Sleep(10 * time.Millisecond)
	}
	require.NoError(t, l.StartSession("s5"))

	archives, err := l.Archives()
	require.NoError(t, err)
	assert.Equal(t, []string{"kiosk-s3.log.gz", "kiosk-s4.log.gz"}, archives)
	assert.NoFileExists(t, filepath.Join(dir, "kiosk-s1.log.gz"))
}

func TestRemoveSessionArchives_KeepsRunningLog(t *testing.T) {
	l, dir := openTestLog(t)

	require.NoError(t, l.StartSession("s1"))
	_, err := l.Write([]byte("ended\n"))
	require.NoError(t, err)
	require.NoError(t, l.StartSession("s2"))
	_, err = l.Write([]byte("running\n"))
	require.NoError(t, err)

	removed, err := RemoveSessionArchives(dir)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	assert.Equal(t, "running\n", readCurrent(t, dir))

	removed, err = RemoveSessionArchives(filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestSessionLog_WriteAfterCloseReopens(t *testing.T) {
	l, dir := openTestLog(t)

	require.NoError(t, l.Close())
	_, err := l.Write([]byte("after close\n"))
	require.NoError(t, err)
	require.NoError(t, l.Close())

	assert.Equal(t, "after close\n", readCurrent(t, dir))
}

func TestNewWithFile_WritesJSONLines(t *testing.T) {
	dir := t.TempDir()
	logger, sink, err := NewWithFile("info", "console", dir)
	require.NoError(t, err)
	require.NotNil(t, sink)

	logger.Info().Str("session", "s1").Msg("session reset")
	logger.Debug().Msg("hidden")
	require.NoError(t, sink.Close())

	data := readCurrent(t, dir)
	assert.Contains(t, data, `"session":"s1"`)
	assert.Contains(t, data, `"message":"session reset"`)
	assert.NotContains(t, data, "hidden")
}

func TestNewWithFile_EmptyDir(t *testing.T) {
	_, sink, err := NewWithFile("info", "json", "")
	require.NoError(t, err)
	assert.Nil(t, sink)
}
