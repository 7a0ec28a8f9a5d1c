// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/kr/pretty"
	"github.com/ulikunitz/rabinkarp"
	"github.com/ulikunitz/rabinkarp/internal/xlog"
)

// options stores the flags of the command.
type options struct {
	fake    bool
	wide    bool
	stats   bool
	verbose bool
	debug   io.Writer
}

var errHashes = errors.New("options --fake and --wide exclude each other")

func (o *options) check() error {
	if o.fake && o.wide {
		return errHashes
	}
	return nil
}

// matcher returns the matcher selected by the options.
func (o *options) matcher(name string) *rabinkarp.Matcher {
	var m rabinkarp.Matcher
	switch {
	case o.fake:
		m = *rabinkarp.Additive
	case o.wide:
		m = *rabinkarp.Wide
	default:
		m = *rabinkarp.Polynomial
	}
	m.Logger = xlog.New(o.debug, name+": ")
	return &m
}

// result describes the search in a single file.
type result struct {
	name  string
	index int
	stats rabinkarp.Stats
}

func (r *result) print(w io.Writer, stats bool) error {
	if _, err := fmt.Fprintf(w, "%s:%d\n", r.name, r.index); err != nil {
		return err
	}
	if stats {
		_, err := fmt.Fprintf(w, "%# v\n", pretty.Formatter(r.stats))
		return err
	}
	return nil
}

// searchFile reads the whole file and searches the keyword. The name "-"
// stands for standard input.
func searchFile(name string, stdin io.Reader, keyword string, opts *options,
) (r *result, err error) {
	var data []byte
	if name == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	r = &result{name: name}
	r.index, r.stats = opts.matcher(name).IndexStats(string(data), keyword)
	return r, nil
}
