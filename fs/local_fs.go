package fs

import (
	"fmt"
	"os"
)

// LocalFS implements FileSystem using standard os.* calls.
type LocalFS struct{}

// NewLocalFS returns a new LocalFS.
func NewLocalFS() *LocalFS {
	return &LocalFS{}
}

func (l *LocalFS) ReadFile(path string) ([]byte, error) {
	info, err := l.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsRegular {
		return nil, fmt.Errorf("%s is not a regular file", path)
	}
	return os.ReadFile(path)
}

func (l *LocalFS) Stat(path string) (FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return FileInfo{}, err
	}
	return FileInfo{
		Name:      info.Name(),
		Size:      info.Size(),
		ModTime:   info.ModTime(),
		IsRegular: info.Mode().IsRegular(),
	}, nil
}

func (l *LocalFS) Close() error {
	return nil
}
