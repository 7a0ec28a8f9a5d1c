// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

/*
Package xlog provides the debug logging used by the search functions.

A nil Logger disables the output. The arguments are only formatted if a
logger is present, so tracing inside the scan loop costs nothing when it is
switched off. The type *log.Logger of the standard library supports the
interface.
*/
package xlog

import (
	"fmt"
	"io"
	"log"
)

// Logger is the interface a debug logger must support.
type Logger interface {
	Output(calldepth int, s string) error
}

// New returns a logger writing to w without prefix or flags. If w is nil the
// returned logger is nil.
func New(w io.Writer, prefix string) Logger {
	if w == nil {
		return nil
	}
	return log.New(w, prefix, 0)
}

// Printf formats the arguments and writes them to the logger. If the logger
// is nil nothing is formatted or written.
func Printf(l Logger, format string, v ...interface{}) {
	if l != nil {
		l.Output(2, fmt.Sprintf(format, v...))
	}
}

// Println is like Printf but formats its arguments like fmt.Sprintln.
func Println(l Logger, v ...interface{}) {
	if l != nil {
		l.Output(2, fmt.Sprintln(v...))
	}
}
