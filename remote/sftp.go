package remote

import (
	"fmt"
	"os"

	rsfs "github.com/m-manu/chainset/fs"
	"github.com/pkg/sftp"
)

// DialSFTP launches ssh with the sftp subsystem and returns a FileSystem
// reading through it. Closing the FileSystem shuts the ssh process down.
func DialSFTP(loc Location, keyPath string) (*rsfs.SFTPFS, error) {
	if !loc.IsRemote {
		return nil, fmt.Errorf("%s is not a remote location", loc)
	}
	cmd := subsystemCommand(loc, keyPath, "sftp")
	cmd.Stderr = os.Stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("SFTP stdin pipe failed: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("SFTP stdout pipe failed: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("SFTP ssh command failed: %w", err)
	}

	client, err := sftp.NewClientPipe(stdout, stdin)
	if err != nil {
		_ = cmd.Process.Kill()
		_ = cmd.Wait()
		return nil, fmt.Errorf("SFTP connection to %s failed: %w", loc.SSHSpec(), err)
	}
	return rsfs.NewSFTPFS(client, func() error {
		_ = stdin.Close()
		return cmd.Wait()
	}), nil
}

// Open returns the FileSystem that serves loc: the local file system, or an
// SFTP session for remote locations
func Open(loc Location, keyPath string) (rsfs.FileSystem, error) {
	if !loc.IsRemote {
		return rsfs.NewLocalFS(), nil
	}
	return DialSFTP(loc, keyPath)
}
