// Command rexgrep prints the lines of its input that contain a match of a
// rex pattern.
//
// Usage:
//
//	rexgrep [-o] [-n] [-c] -E pattern [file ...]
//	rexgrep [-o] [-n] [-c] pattern [file ...]
//
// With no files, standard input is read. The exit status is 0 if any line
// matched, 1 if none did, and 2 if the pattern was invalid or a file could
// not be read.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/coregx/rex"
)

const (
	exitMatch   = 0
	exitNoMatch = 1
	exitError   = 2
)

// maxLineLen bounds the length of a single input line.
const maxLineLen = 64 << 20

type options struct {
	offsets  bool
	numbers  bool
	count    bool
	withName bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("rexgrep", flag.ContinueOnError)
	fs.SetOutput(stderr)
	pattern := fs.String("E", "", "pattern to search for")
	var opts options
	fs.BoolVar(&opts.offsets, "o", false, "print line:offset of the first match instead of the line")
	fs.BoolVar(&opts.numbers, "n", false, "prefix each line with its line number")
	fs.BoolVar(&opts.count, "c", false, "print only a count of matching lines")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: rexgrep [-o] [-n] [-c] -E pattern [file ...]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitMatch
		}
		return exitError
	}

	files := fs.Args()
	if *pattern == "" {
		if len(files) == 0 {
			fs.Usage()
			return exitError
		}
		*pattern, files = files[0], files[1:]
	}

	re, err := rex.Compile(*pattern)
	if err != nil {
		fmt.Fprintf(stderr, "rexgrep: %v\n", err)
		return exitError
	}

	out := bufio.NewWriter(stdout)
	defer out.Flush()

	if len(files) == 0 {
		matched, err := grep(re, stdin, "", out, opts)
		if err != nil {
			fmt.Fprintf(stderr, "rexgrep: (standard input): %v\n", err)
			return exitError
		}
		return status(matched, false)
	}

	opts.withName = len(files) > 1
	anyMatched, failed := false, false
	for _, name := range files {
		matched, err := grepFile(re, name, out, opts)
		if err != nil {
			fmt.Fprintf(stderr, "rexgrep: %v\n", err)
			failed = true
		}
		anyMatched = anyMatched || matched
	}
	return status(anyMatched, failed)
}

func status(matched, failed bool) int {
	switch {
	case failed:
		return exitError
	case matched:
		return exitMatch
	default:
		return exitNoMatch
	}
}

func grepFile(re *rex.Regex, name string, out *bufio.Writer, opts options) (bool, error) {
	f, err := os.Open(name)
	if err != nil {
		return false, err
	}
	defer f.Close()

	matched, err := grep(re, f, name, out, opts)
	if err != nil {
		return matched, fmt.Errorf("%s: %w", name, err)
	}
	return matched, nil
}

// grep writes the matching lines of r to out and reports whether any matched.
func grep(re *rex.Regex, r io.Reader, name string, out *bufio.Writer, opts options) (bool, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineLen)

	count := 0
	for lineno := 1; sc.Scan(); lineno++ {
		line := sc.Bytes()
		pos, ok := re.Search(line)
		if !ok {
			continue
		}
		count++
		if opts.count {
			continue
		}

		if opts.withName {
			fmt.Fprintf(out, "%s:", name)
		}
		switch {
		case opts.offsets:
			fmt.Fprintf(out, "%d:%d\n", lineno, pos)
		case opts.numbers:
			fmt.Fprintf(out, "%d:%s\n", lineno, line)
		default:
			fmt.Fprintf(out, "%s\n", line)
		}
	}
	if err := sc.Err(); err != nil {
		return count > 0, err
	}

	if opts.count {
		if opts.withName {
			fmt.Fprintf(out, "%s:", name)
		}
		fmt.Fprintf(out, "%d\n", count)
	}
	return count > 0, nil
}
