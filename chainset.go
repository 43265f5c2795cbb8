package main

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/m-manu/chainset/bytesutil"
	"github.com/m-manu/chainset/fmte"
	rsfs "github.com/m-manu/chainset/fs"
	"github.com/m-manu/chainset/hashset"
	"github.com/m-manu/chainset/listfile"
	"github.com/m-manu/chainset/remote"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Operations supported on the command line
const (
	opCount     = "count"
	opUnion     = "union"
	opIntersect = "intersect"
	opSubtract  = "subtract"
	opEqual     = "equal"
	opSubset    = "subset"
	opStats     = "stats"
)

type operationInfo struct {
	arity       int
	isPredicate bool
	description string
}

var operations = map[string]operationInfo{
	opCount:     {1, false, "number of distinct lines in list-a"},
	opUnion:     {2, false, "lines present in either list"},
	opIntersect: {2, false, "lines present in both lists"},
	opSubtract:  {2, false, "lines of list-a that are not in list-b"},
	opEqual:     {2, true, "whether both lists hold the same lines"},
	opSubset:    {2, true, "whether every line of list-a is in list-b"},
	opStats:     {1, false, "bucket occupancy of the hash set built from list-a"},
}

var operationOrder = []string{opCount, opUnion, opIntersect, opSubtract, opEqual, opSubset, opStats}

// loadLists loads every list concurrently. Each goroutine builds and owns
// its own set.
func loadLists(args []string, sshKeyPath string, capacity int) ([]*listfile.List, error) {
	lists := make([]*listfile.List, len(args))
	errs := make([]error, len(args))
	var wg sync.WaitGroup
	wg.Add(len(args))
	for i, arg := range args {
		go func() {
			defer wg.Done()
			lists[i], errs[i] = loadList(arg, sshKeyPath, capacity)
		}()
	}
	wg.Wait()
	if err := fmte.Errors("couldn't load lists", errs); err != nil {
		return nil, err
	}
	return lists, nil
}

func loadList(arg string, sshKeyPath string, capacity int) (*listfile.List, error) {
	loc, err := remote.ParseLocation(arg)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	fsys, err := remote.Open(loc, sshKeyPath)
	if err != nil {
		return nil, err
	}
	defer closeFileSystem(fmte.Default(), fsys, loc.String())
	list, err := listfile.Load(fsys, loc.Path, capacity)
	if err != nil {
		return nil, err
	}
	list.Name = loc.String()
	reportList(fmte.Default(), list, time.Since(start))
	return list, nil
}

// closeFileSystem closes fsys. For SFTP the error carries the exit status of
// the ssh process, so it is reported rather than dropped.
func closeFileSystem(out *fmte.Printer, fsys rsfs.FileSystem, name string) {
	if err := fsys.Close(); err != nil {
		out.PrintfV("Couldn't close connection for %s: %v\n", name, err)
	}
}

func reportList(out *fmte.Printer, list *listfile.List, elapsed time.Duration) {
	out.PrintfV("Loaded %s: %d lines, %d distinct, %d duplicates (%s) in %v\n",
		list.Name, list.Lines, list.Set.Len(), list.Duplicates,
		bytesutil.BinaryFormat(list.Bytes), elapsed.Round(time.Millisecond))
	if len(list.FirstFew) > 0 {
		out.PrintfV("First few lines of %s: %s\n", list.Name, strings.Join(list.FirstFew, ", "))
	}
}

// runOperation applies op to lists and writes the outcome to out. For
// predicates, the returned bool is the predicate's value; otherwise it is
// always true.
func runOperation(out *fmte.Printer, op string, lists []*listfile.List, sorted bool) (bool, error) {
	info, exists := operations[op]
	if !exists {
		return false, fmt.Errorf("unknown operation %q", op)
	}
	if len(lists) != info.arity {
		return false, fmt.Errorf("operation %s needs %d list(s), got %d", op, info.arity, len(lists))
	}
	a := lists[0].Set
	switch op {
	case opCount:
		out.Printf("%d\n", a.Len())
	case opStats:
		printStats(out, a.Stats())
	case opEqual:
		equal := a.Equal(lists[1].Set)
		out.Printf("%t\n", equal)
		return equal, nil
	case opSubset:
		subset := lists[1].Set.ContainsAll(a)
		out.Printf("%t\n", subset)
		return subset, nil
	default:
		printElements(out, combine(op, a, lists[1].Set), sorted)
	}
	return true, nil
}

func combine(op string, a, b *hashset.HashSet[string]) *hashset.HashSet[string] {
	result := a.Clone()
	switch op {
	case opUnion:
		result.AddAll(b)
	case opIntersect:
		result.RetainAll(b)
	case opSubtract:
		// RemoveAll only acts when b is a subset of a, so remove one by one
		for e := range b.All() {
			result.Remove(e)
		}
	}
	return result
}

func printElements(out *fmte.Printer, s *hashset.HashSet[string], sorted bool) {
	elements := s.ToSlice()
	if sorted {
		collate.New(language.English).SortStrings(elements)
	}
	for _, e := range elements {
		out.Printf("%s\n", e)
	}
}

func printStats(out *fmte.Printer, st hashset.Stats) {
	out.Printf("elements:       %d\n", st.Size)
	out.Printf("capacity:       %d\n", st.Capacity)
	out.Printf("threshold:      %d\n", st.Threshold)
	out.Printf("used buckets:   %d\n", st.UsedBuckets)
	out.Printf("longest chain:  %d\n", st.LongestChain)
	out.Printf("average chain:  %.2f\n", st.AverageChain())
	out.Printf("modifications:  %d\n", st.Modifications)
}
