package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	"github.com/m-manu/chainset/fmte"
	flag "github.com/spf13/pflag"
)

// Constants indicating return codes of this tool, when run from command line
const (
	exitCodeSuccess = iota
	exitCodeFalse
	exitCodeInvalidNumArgs
	exitCodeUnknownOperation
	exitCodeInvalidCapacity
	exitCodeListLoadError
	exitCodeOperationError
)

var flags struct {
	isHelp      func() bool
	isVerbose   func() bool
	isQuiet     func() bool
	isSorted    func() bool
	getSSHKey   func() string
	getCapacity func() int
}

func handlePanic() {
	err := recover()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Program exited unexpectedly. "+
			"Please report the below error to the author:\n"+
			"%+v\n", err)
		_, _ = fmt.Fprintln(os.Stderr, string(debug.Stack()))
	}
}

func setupUsage() {
	flag.Usage = func() {
		fmte.PrintfErr("Run \"chainset --help\" for usage\n")
	}
}

func showHelpAndExit() {
	flag.CommandLine.SetOutput(os.Stdout)
	var ops strings.Builder
	for _, op := range operationOrder {
		info := operations[op]
		args := "list-a"
		if info.arity == 2 {
			args = "list-a list-b"
		}
		description := info.description
		if info.isPredicate {
			description += " (predicate)"
		}
		fmt.Fprintf(&ops, "\t%-10s %-14s %s\n", op, args, description)
	}
	fmt.Printf(`chainset is a tool to run set operations on newline-separated lists.

Usage:
	 chainset <flags> [operation] [list-a] [list-b]

where a list is a local file path or [user@]host:[port:]path (read over SFTP),
and operation is one of:
%s
Predicates exit with code %d when false.

flags: (all optional)
`, ops.String(), exitCodeFalse)
	flag.PrintDefaults()
	os.Exit(exitCodeSuccess)
}

func setupHelpOpt() {
	helpPtr := flag.BoolP("help", "h", false, "display help")
	flags.isHelp = func() bool {
		return *helpPtr
	}
}

func setupVerboseOpt() {
	verbosePtr := flag.BoolP("verbose", "v", false, "print loading details to standard error")
	flags.isVerbose = func() bool {
		return *verbosePtr
	}
}

func setupQuietOpt() {
	quietPtr := flag.BoolP("quiet", "q", false, "print nothing; only the exit code tells the result")
	flags.isQuiet = func() bool {
		return *quietPtr
	}
}

func setupSortedOpt() {
	sortedPtr := flag.BoolP("sorted", "s", false, "sort output lines (English collation)")
	flags.isSorted = func() bool {
		return *sortedPtr
	}
}

func setupSSHKeyOpt() {
	sshKeyPtr := flag.StringP("ssh-key", "i", "", "identity file for remote lists")
	flags.getSSHKey = func() string {
		return *sshKeyPtr
	}
}

func setupCapacityOpt() {
	capacityPtr := flag.IntP("capacity", "c", 0,
		"initial capacity of each hash set\n(0 sizes it from the number of lines in the list)")
	flags.getCapacity = func() int {
		capacity := *capacityPtr
		if capacity < 0 {
			fmte.PrintfErr("error: capacity can't be negative: %d\n", capacity)
			flag.Usage()
			os.Exit(exitCodeInvalidCapacity)
		}
		return capacity
	}
}

func setupFlags() {
	setupHelpOpt()
	setupVerboseOpt()
	setupQuietOpt()
	setupSortedOpt()
	setupSSHKeyOpt()
	setupCapacityOpt()
	setupUsage()
}

func main() {
	defer handlePanic()
	setupFlags()
	flag.Parse()
	if flags.isHelp() {
		showHelpAndExit()
	}
	if flag.NArg() == 0 {
		fmte.PrintfErr("error: no operation passed\n")
		flag.Usage()
		os.Exit(exitCodeInvalidNumArgs)
	}
	op := flag.Arg(0)
	info, exists := operations[op]
	if !exists {
		fmte.PrintfErr("error: unknown operation \"%s\"\n", op)
		flag.Usage()
		os.Exit(exitCodeUnknownOperation)
	}
	if flag.NArg()-1 != info.arity {
		fmte.PrintfErr("error: operation %s expects %d list argument(s)\n", op, info.arity)
		flag.Usage()
		os.Exit(exitCodeInvalidNumArgs)
	}
	capacity := flags.getCapacity()

	fmte.Default().SetOutput(os.Stderr)
	if flags.isVerbose() {
		fmte.VerboseOn()
	}
	out := fmte.NewPrinter(os.Stdout, os.Stderr)
	if flags.isQuiet() {
		fmte.Off()
		out.Off()
	}

	lists, loadErr := loadLists(flag.Args()[1:], flags.getSSHKey(), capacity)
	if loadErr != nil {
		fmte.PrintfErr("error: %+v\n", loadErr)
		os.Exit(exitCodeListLoadError)
	}
	holds, opErr := runOperation(out, op, lists, flags.isSorted())
	if opErr != nil {
		fmte.PrintfErr("error while running %s: %+v\n", op, opErr)
		os.Exit(exitCodeOperationError)
	}
	if !holds {
		os.Exit(exitCodeFalse)
	}
}
