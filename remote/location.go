package remote

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var errEmptyArgument = errors.New("empty list argument")

// Location says where a list file lives: on this machine, or on a host
// reachable over ssh.
type Location struct {
	IsRemote bool
	User     string // empty = current user
	Host     string
	Port     int // 0 = ssh default
	Path     string
}

// ParseLocation interprets a command line argument as a Location.
//
// Arguments starting with "/", "./" or "../", Windows drive paths and
// arguments without a colon are local. Anything else is read as
// [user@]host:[port:]path.
func ParseLocation(arg string) (Location, error) {
	if arg == "" {
		return Location{}, errEmptyArgument
	}
	host, rest, hasColon := strings.Cut(arg, ":")
	if !hasColon || isExplicitlyLocal(arg) {
		return Location{Path: arg}, nil
	}
	loc := Location{IsRemote: true, Host: host}
	if user, h, hasUser := strings.Cut(host, "@"); hasUser {
		loc.User, loc.Host = user, h
	}
	if loc.Host == "" {
		return Location{}, fmt.Errorf("no host in %q", arg)
	}
	if port, path, ok := strings.Cut(rest, ":"); ok {
		if n, err := strconv.Atoi(port); err == nil && n > 0 && n <= 65535 {
			loc.Port, rest = n, path
		}
	}
	if rest == "" {
		return Location{}, fmt.Errorf("no path in %q", arg)
	}
	loc.Path = rest
	return loc, nil
}

func isExplicitlyLocal(arg string) bool {
	for _, prefix := range []string{"/", "./", "../"} {
		if strings.HasPrefix(arg, prefix) {
			return true
		}
	}
	// C:\lists\a.txt or C:/lists/a.txt
	return len(arg) > 2 && arg[1] == ':' && (arg[2] == '\\' || arg[2] == '/')
}

// SSHSpec returns a string like "user@host" or "host", for display and ssh commands.
func (l Location) SSHSpec() string {
	if l.User != "" {
		return l.User + "@" + l.Host
	}
	return l.Host
}

func (l Location) String() string {
	if !l.IsRemote {
		return l.Path
	}
	if l.Port != 0 {
		return fmt.Sprintf("%s:%d:%s", l.SSHSpec(), l.Port, l.Path)
	}
	return l.SSHSpec() + ":" + l.Path
}
