package fs

import (
	"fmt"
	"io"

	"github.com/pkg/sftp"
)

// SFTPFS implements FileSystem over an SFTP connection.
type SFTPFS struct {
	client *sftp.Client
	closer func() error
}

// NewSFTPFS wraps an existing sftp.Client in a FileSystem. onClose, if
// non-nil, runs after the client is closed (e.g. to reap the ssh process).
func NewSFTPFS(client *sftp.Client, onClose func() error) *SFTPFS {
	return &SFTPFS{client: client, closer: onClose}
}

func (s *SFTPFS) ReadFile(p string) ([]byte, error) {
	f, err := s.client.Open(p)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%s is not a regular file", p)
	}
	return io.ReadAll(f)
}

func (s *SFTPFS) Stat(p string) (FileInfo, error) {
	info, err := s.client.Stat(p)
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

func (s *SFTPFS) Close() error {
	err := s.client.Close()
	if s.closer != nil {
		if closeErr := s.closer(); err == nil {
			err = closeErr
		}
	}
	return err
}
