package fs

import (
	"time"
)

// FileSystem abstracts the file operations needed to load lists, so that
// callers can read local files and files on an SFTP server interchangeably.
type FileSystem interface {
	// ReadFile reads the entire file.
	ReadFile(path string) ([]byte, error)

	// Stat returns file info, following symlinks.
	Stat(path string) (FileInfo, error)

	// Close releases any resources held by the filesystem (e.g. SSH connections).
	Close() error
}

// FileInfo holds the subset of os.FileInfo fields we need.
type FileInfo struct {
	Name      string
	Size      int64
	ModTime   time.Time
	IsRegular bool
}
