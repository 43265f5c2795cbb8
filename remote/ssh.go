package remote

import (
	"os/exec"
	"strconv"
)

// sshArgs builds the arguments for the system ssh binary, up to and
// excluding the host
func sshArgs(loc Location, keyPath string) []string {
	args := make([]string, 0, 8)
	if loc.User != "" {
		args = append(args, "-l", loc.User)
	}
	if loc.Port != 0 {
		args = append(args, "-p", strconv.Itoa(loc.Port))
	}
	if keyPath != "" {
		args = append(args, "-i", keyPath)
	}
	return args
}

// subsystemCommand creates an exec.Cmd that invokes an SSH subsystem (e.g. sftp).
func subsystemCommand(loc Location, keyPath string, subsystem string) *exec.Cmd {
	args := append(sshArgs(loc, keyPath), "-s", loc.Host, subsystem)
	return exec.Command("ssh", args...)
}
