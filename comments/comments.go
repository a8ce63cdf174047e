// Copyright 2026 Mathew Robinson <chasinglogic@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package comments turns plain text into language appropriate comment
// blocks. There are exactly two kinds of commenters: line commenters which
// prefix every line with a marker (//, #, ;;;) and block commenters which
// wrap the whole text in start and end delimiters (/* */, <!-- -->),
// optionally line commenting the body as well.
package comments

import (
	"strings"

	"github.com/mitchellh/go-wordwrap"
)

// Commenter renders text as a comment block for some family of file types.
type Commenter interface {
	Comment(text string) string
}

// LineCommenter prefixes every line of the text with a marker string.
type LineCommenter struct {
	marker        string
	columns       int
	trailingLines int
}

// NewLineCommenter returns a line commenter using marker. When columns is
// greater than zero the text is re-wrapped before commenting so that the
// commented lines fit within columns.
func NewLineCommenter(marker string, columns int) *LineCommenter {
	return &LineCommenter{marker: marker, columns: columns}
}

// WithTrailingLines sets the number of blank lines appended after the
// comment block.
func (c *LineCommenter) WithTrailingLines(n int) *LineCommenter {
	c.trailingLines = n
	return c
}

// commentWidth is the number of characters the marker and its separating
// space consume on every line.
func (c *LineCommenter) commentWidth() int {
	return len(c.marker) + 1
}

// Comment implements Commenter.
func (c *LineCommenter) Comment(text string) string {
	if c.columns > 0 {
		width := c.columns
		if width > c.commentWidth() {
			// Leave room for the marker and space we add below.
			width -= c.commentWidth()
		}
		text = wordwrap.WrapString(text, uint(width))
	}

	var b strings.Builder
	for _, line := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		if line == "" {
			b.WriteString(c.marker)
		} else {
			b.WriteString(c.marker)
			b.WriteString(" ")
			b.WriteString(line)
		}
		b.WriteString("\n")
	}

	for i := 0; i < c.trailingLines; i++ {
		b.WriteString("\n")
	}

	return b.String()
}

// BlockCommenter wraps the whole text between a start and end delimiter.
type BlockCommenter struct {
	start         string
	end           string
	perLine       *LineCommenter
	columns       int
	trailingLines int
}

// NewBlockCommenter returns a block commenter using the given delimiters
// verbatim. The start delimiter usually carries its own trailing newline,
// e.g. "/*\n".
func NewBlockCommenter(start, end string, columns int) *BlockCommenter {
	return &BlockCommenter{start: start, end: end, columns: columns}
}

// WithPerLine additionally line comments every line inside the block with
// marker, the common C style of "/*" followed by "*"-prefixed lines.
func (c *BlockCommenter) WithPerLine(marker string) *BlockCommenter {
	c.perLine = NewLineCommenter(marker, c.columns)
	return c
}

// WithTrailingLines sets the number of blank lines appended after the
// comment block.
func (c *BlockCommenter) WithTrailingLines(n int) *BlockCommenter {
	c.trailingLines = n
	return c
}

// Comment implements Commenter.
func (c *BlockCommenter) Comment(text string) string {
	var b strings.Builder
	b.WriteString(c.start)

	switch {
	case c.perLine != nil:
		b.WriteString(c.perLine.Comment(text))
	case c.columns > 0:
		b.WriteString(wordwrap.WrapString(text, uint(c.columns)))
	default:
		b.WriteString(text)
	}

	b.WriteString(c.end)

	for i := 0; i < c.trailingLines; i++ {
		b.WriteString("\n")
	}

	return b.String()
}
