package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/mattn/ternary"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func isTerminal(v interface{}) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type reporter struct {
	w      io.Writer
	prefix *color.Color
}

func newReporter(w io.Writer) *reporter {
	prefix := color.New(color.FgRed, color.Bold)
	if isTerminal(w) {
		prefix.EnableColor()
	} else {
		prefix.DisableColor()
	}
	return &reporter{w: w, prefix: prefix}
}

func (r *reporter) report(err error) {
	r.prefix.Fprint(r.w, "error:")
	fmt.Fprintf(r.w, " %v\n", err)
}

// readLine returns the first line of r without its line terminator. Input
// without any newline is taken as a single line.
func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func repl(in io.Reader, out io.Writer, rep *reporter) {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			break
		}
		if strings.TrimSpace(scanner.Text()) == "" {
			continue
		}
		s, err := ternary.Calc(scanner.Text())
		if err != nil {
			rep.report(err)
			continue
		}
		fmt.Fprintln(out, s)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("ternary", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintln(stderr, "usage: ternary [file]")
		fmt.Fprintln(stderr, "Evaluates one base-3 expression such as (12+21)*2 and prints the result in base 3.")
	}
	if err := flags.Parse(args); err != nil {
		return exitUsage
	}
	if flags.NArg() > 1 {
		flags.Usage()
		return exitUsage
	}

	rep := newReporter(stderr)

	in := stdin
	if flags.NArg() == 0 {
		if isTerminal(stdin) {
			repl(stdin, stdout, rep)
			return exitOK
		}
	} else {
		f, err := os.Open(flags.Arg(0))
		if err != nil {
			rep.report(err)
			return exitError
		}
		defer f.Close()
		in = f
	}

	line, err := readLine(in)
	if err != nil {
		rep.report(err)
		return exitError
	}
	s, err := ternary.Calc(line)
	if err != nil {
		rep.report(err)
		return exitError
	}
	fmt.Fprintln(stdout, s)
	return exitOK
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
