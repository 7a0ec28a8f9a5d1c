// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

// Command rkfind searches a keyword in text files using the Rabin-Karp
// algorithm and prints the rune index of the first occurrence.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
)

const usageStr = `Usage: rkfind [OPTION]... KEYWORD [FILE]...
Search KEYWORD in each FILE and print the rune index of the first occurrence
or -1.

  -f, --fake     use the sum of code points as hash
  -w, --wide     use the 64-bit Rabin-Karp hash
  -s, --stats    print search statistics
  -v, --verbose  trace hash collisions on standard error
  -h, --help     give this help

With no FILE, or when FILE is -, read standard input.

Exit status is 0 if the keyword has been found, 1 if not and 2 if an error
occurred.
`

// Exit codes
const (
	exitFound    = 0
	exitNotFound = 1
	exitError    = 2
)

func usage(w io.Writer) {
	fmt.Fprint(w, usageStr)
}

func main() {
	cmdName := filepath.Base(os.Args[0])
	os.Exit(run(cmdName, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command with the arguments args and returns the exit
// code.
func run(cmdName string, args []string, stdin io.Reader,
	stdout, stderr io.Writer) int {

	logger := log.New(stderr, cmdName+": ", 0)

	flags := pflag.NewFlagSet(cmdName, pflag.ContinueOnError)
	flags.SetInterspersed(true)
	flags.SetOutput(io.Discard)
	var opts options
	flags.BoolVarP(&opts.fake, "fake", "f", false, "")
	flags.BoolVarP(&opts.wide, "wide", "w", false, "")
	flags.BoolVarP(&opts.stats, "stats", "s", false, "")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "")
	help := flags.BoolP("help", "h", false, "")

	if err := flags.Parse(args); err != nil {
		logger.Printf("%s; for help, type %s -h", err, cmdName)
		return exitError
	}
	if *help {
		usage(stdout)
		return exitFound
	}
	if flags.NArg() == 0 {
		logger.Printf("keyword missing; for help, type %s -h", cmdName)
		return exitError
	}
	if err := opts.check(); err != nil {
		logger.Print(err)
		return exitError
	}
	if opts.verbose {
		opts.debug = stderr
	}

	keyword := flags.Arg(0)
	files := flags.Args()[1:]
	if len(files) == 0 {
		files = []string{"-"}
	}

	code := exitNotFound
	for _, name := range files {
		r, err := searchFile(name, stdin, keyword, &opts)
		if err != nil {
			logger.Print(err)
			code = exitError
			continue
		}
		if err = r.print(stdout, opts.stats); err != nil {
			logger.Print(err)
			return exitError
		}
		if r.index >= 0 && code == exitNotFound {
			code = exitFound
		}
	}
	return code
}
