// Package listfile loads newline-separated lists into hash sets
package listfile

import (
	"fmt"
	"strings"

	rsfs "github.com/m-manu/chainset/fs"
	"github.com/m-manu/chainset/hashset"
)

// List is a loaded list along with figures about its source
type List struct {
	Name       string
	Set        *hashset.HashSet[string]
	Bytes      int64
	Lines      int
	Duplicates int
	FirstFew   []string
}

// Parse converts newline-separated content to a set. Lines are trimmed and
// blank lines are skipped. capacity is the initial capacity of the set; zero
// sizes it from the number of lines.
func Parse(content string, capacity int) *List {
	content = strings.ReplaceAll(content, "\r\n", "\n") // Windows
	lines := strings.Split(content, "\n")
	if capacity <= 0 {
		capacity = 2 * len(lines)
	}
	l := &List{
		Set:      hashset.NewWithCapacity(hashset.Strings(), capacity),
		Bytes:    int64(len(content)),
		FirstFew: make([]string, 0, 3),
	}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		l.Lines++
		if !l.Set.Add(line) {
			l.Duplicates++
		}
		if len(l.FirstFew) < 3 {
			l.FirstFew = append(l.FirstFew, line)
		}
	}
	return l
}

// Load reads the list at path from fsys
func Load(fsys rsfs.FileSystem, path string, capacity int) (*List, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't read list %s: %w", path, err)
	}
	l := Parse(string(data), capacity)
	l.Name = path
	l.Bytes = int64(len(data))
	return l, nil
}
