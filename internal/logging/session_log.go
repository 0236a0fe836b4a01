package logging

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

const (
	currentLogName     = "kiosk.log"
	archivePrefix      = "kiosk-"
	archiveSuffix      = ".log.gz"
	defaultMaxLogBytes = 10 << 20
	defaultMaxArchives = 200
	leftoverTimeLayout = "20060102_150405"
)

// SessionLog is the file sink behind logging.dir. The running kiosk session
// writes to kiosk.log. StartSession archives what the previous session
// wrote as kiosk-<session id>.log.gz, so one visitor's log can be deleted
// together with their journal entry.
type SessionLog struct {
	dir         string
	maxBytes    int64
	maxArchives int

	mu      sync.Mutex
	file    *os.File
	size    int64
	session string
	// part numbers the archives of a session that outgrew maxBytes.
	part int
}

// OpenSessionLog opens dir/kiosk.log. A log left behind by an earlier run is
// archived under its modification time first.
func OpenSessionLog(dir string) (*SessionLog, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	l := &SessionLog{
		dir:         dir,
		maxBytes:    defaultMaxLogBytes,
		maxArchives: defaultMaxArchives,
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if info, err := os.Stat(l.currentPath()); err == nil && info.Size() > 0 {
		if err := l.archiveLocked(info.ModTime().Format(leftoverTimeLayout)); err != nil {
			return nil, err
		}
	}
	if l.file == nil {
		if err := l.openLocked(); err != nil {
			return nil, err
		}
	}
	return l, nil
}

func (l *SessionLog) currentPath() string {
	return filepath.Join(l.dir, currentLogName)
}

func (l *SessionLog) openLocked() error {
	file, err := os.OpenFile(l.currentPath(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to stat log file: %w", err)
	}
	l.file = file
	l.size = info.Size()
	return nil
}

// StartSession archives the previous session's log and starts a fresh file
// for id.
func (l *SessionLog) StartSession(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.session != "" && l.size > 0 {
		if err := l.archiveLocked(l.archiveKey()); err != nil {
			return err
		}
	}
	l.session = id
	l.part = 0
	if l.file == nil {
		return l.openLocked()
	}
	return nil
}

// archiveKey names the final archive of the current session. Earlier
// overflow parts took .1 through .part.
func (l *SessionLog) archiveKey() string {
	if l.part == 0 {
		return l.session
	}
	return fmt.Sprintf("%s.%d", l.session, l.part+1)
}

func (l *SessionLog) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		if err := l.openLocked(); err != nil {
			return 0, err
		}
	}
	// A session that outgrows the cap is split into numbered parts.
	if l.size > 0 && l.size+int64(len(p)) > l.maxBytes {
		l.part++
		base := l.session
		if base == "" {
			base = "startup"
		}
		if err := l.archiveLocked(fmt.Sprintf("%s.%d", base, l.part)); err != nil {
			return 0, err
		}
	}

	n, err := l.file.Write(p)
	l.size += int64(n)
	return n, err
}

// archiveLocked compresses kiosk.log into kiosk-<key>.log.gz, empties it and
// reopens it.
func (l *SessionLog) archiveLocked(key string) error {
	if l.file != nil {
		_ = l.file.Close()
		l.file = nil
	}

	dst := filepath.Join(l.dir, archivePrefix+key+archiveSuffix)
	if err := gzipFile(l.currentPath(), dst); err != nil {
		return fmt.Errorf("failed to archive session log %s: %w", key, err)
	}
	if err := os.Truncate(l.currentPath(), 0); err != nil {
		return fmt.Errorf("failed to reset log file: %w", err)
	}
	l.size = 0

	l.pruneLocked()
	if l.file == nil {
		return l.openLocked()
	}
	return nil
}

func gzipFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	zw := gzip.NewWriter(out)
	if _, err := io.Copy(zw, in); err != nil {
		_ = zw.Close()
		_ = out.Close()
		return err
	}
	if err := zw.Close(); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

// pruneLocked keeps the newest maxArchives archives.
func (l *SessionLog) pruneLocked() {
	archives, err := listArchives(l.dir)
	if err != nil || len(archives) <= l.maxArchives {
		return
	}
	for _, a := range archives[:len(archives)-l.maxArchives] {
		_ = os.Remove(filepath.Join(l.dir, a.name))
	}
}

type archiveEntry struct {
	name    string
	modUnix int64
}

// listArchives returns session archives in dir, oldest first.
func listArchives(dir string) ([]archiveEntry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var out []archiveEntry
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, archivePrefix) || !strings.HasSuffix(name, archiveSuffix) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		out = append(out, archiveEntry{name: name, modUnix: info.ModTime().UnixNano()})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].modUnix != out[j].modUnix {
			return out[i].modUnix < out[j].modUnix
		}
		return out[i].name < out[j].name
	})
	return out, nil
}

// Archives lists the archived session logs, oldest first.
func (l *SessionLog) Archives() ([]string, error) {
	archives, err := listArchives(l.dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(archives))
	for i, a := range archives {
		names[i] = a.name
	}
	return names, nil
}

// RemoveSessionArchives deletes every archived session log in dir. The
// running session's kiosk.log is left alone.
func RemoveSessionArchives(dir string) (int, error) {
	archives, err := listArchives(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to list session logs: %w", err)
	}
	removed := 0
	for _, a := range archives {
		if err := os.Remove(filepath.Join(dir, a.name)); err != nil {
			return removed, fmt.Errorf("failed to remove %s: %w", a.name, err)
		}
		removed++
	}
	return removed, nil
}

// Close closes the current file. A later Write reopens it.
func (l *SessionLog) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}
