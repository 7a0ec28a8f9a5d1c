// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

// Package corpus loads text corpora for tests and benchmarks of the search.
package corpus

import (
	"io/fs"
	"strings"
	"unicode/utf8"
)

// File is a corpus file converted to valid UTF-8.
type File struct {
	Name string
	Text string
}

// Files reads all regular files of the corpus. Texts are cut at limit bytes
// if limit is positive. Invalid UTF-8 sequences are replaced by U+FFFD, so
// that byte and rune searches see the same text.
func Files(corpus fs.FS, limit int) (files []File, err error) {
	err = fs.WalkDir(corpus, ".",
		func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if entry.IsDir() {
				return nil
			}
			data, err := fs.ReadFile(corpus, path)
			if err != nil {
				return err
			}
			if limit > 0 && len(data) > limit {
				data = data[:limit]
			}
			files = append(files, File{Name: path, Text: text(data)})
			return nil
		})
	return files, err
}

func text(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	return strings.ToValidUTF8(string(data), string(utf8.RuneError))
}

// Size returns the total number of bytes of all files.
func Size(files []File) int64 {
	n := int64(0)
	for _, f := range files {
		n += int64(len(f.Text))
	}
	return n
}
