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

// Package license renders license header templates and derives the
// year-varying patterns used to recognize previously rendered headers.
package license

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/chasinglogic/licensure/comments"
)

// CopyrightHolder is a single author or organization holding copyright.
type CopyrightHolder struct {
	Name  string `yaml:"name" json:"name"`
	Email string `yaml:"email" json:"email"`
}

func (c CopyrightHolder) String() string {
	if c.Email != "" {
		return fmt.Sprintf("%s <%s>", c.Name, c.Email)
	}
	return c.Name
}

// Authors is an ordered list of copyright holders, rendered joined with
// ", ".
type Authors []CopyrightHolder

func (a Authors) String() string {
	rendered := make([]string, len(a))
	for i, author := range a {
		rendered[i] = author.String()
	}
	return strings.Join(rendered, ", ")
}

// Context holds the values substituted into a template's placeholders.
type Context struct {
	Ident      string
	Authors    Authors
	EndYear    string
	StartYear  string
	UnwrapText bool
}

// year returns the copyright year field: the end year (current year when
// unset), or "start, end" when a distinct start year is configured.
func (c Context) year() string {
	endYear := c.EndYear
	if endYear == "" {
		endYear = strconv.Itoa(time.Now().Year())
	}

	if c.StartYear != "" && c.StartYear != endYear {
		return fmt.Sprintf("%s, %s", c.StartYear, endYear)
	}
	return endYear
}

// intermediateYearToken temporarily stands in for the year field when
// building the year-varying pattern. It must be exactly 4 characters long so
// the rendered text wraps to the same column widths a real year would, and
// unusual enough to never collide with actual license text.
const intermediateYearToken = "@YR@"

// yearPattern matches any 4-digit year or "YYYY, YYYY" range.
const yearPattern = "[0-9]{4}(, [0-9]{4})?"

// Template is a license text body with substitutable placeholders for the
// copyright year, the authors, and the license identifier.
type Template struct {
	content      string
	context      Context
	spdxTemplate bool
}

// New returns a template over content rendering with the given context.
func New(content string, context Context) *Template {
	return &Template{content: content, context: context}
}

// SetSPDXTemplate selects the SPDX placeholder token set instead of the
// default [year]/[name of author]/[ident] tokens. Used for templates fetched
// from the SPDX license list.
func (t *Template) SetSPDXTemplate(yesOrNo bool) *Template {
	t.spdxTemplate = yesOrNo
	return t
}

// Render substitutes the template's placeholders from its context.
func (t *Template) Render() string {
	return t.interpolate(t.context)
}

func (t *Template) interpolate(context Context) string {
	yearToken, authorToken, identToken := t.replacementTokens()

	content := t.content
	if t.context.UnwrapText {
		// Some license headers come pre-wrapped to a column width.
		// Undo that wrapping so the text re-wraps cleanly to the
		// commenter's configured columns.
		content = removeColumnWrapping(content)
	}

	content = strings.ReplaceAll(content, yearToken, context.year())
	content = strings.ReplaceAll(content, authorToken, context.Authors.String())
	return strings.ReplaceAll(content, identToken, context.Ident)
}

// OutdatedLicensePattern returns a regex matching this template rendered and
// commented exactly as Render would produce it, except with any 4-digit year
// or year range in the year position.
func (t *Template) OutdatedLicensePattern(commenter comments.Commenter) *regexp.Regexp {
	return t.buildYearVaryingRegex(commenter, false)
}

// OutdatedLicenseTrimmedPattern is OutdatedLicensePattern with trailing
// whitespace stripped from the match text, tolerating headers that lost
// their trailing blank lines.
func (t *Template) OutdatedLicenseTrimmedPattern(commenter comments.Commenter) *regexp.Regexp {
	return t.buildYearVaryingRegex(commenter, true)
}

func (t *Template) buildYearVaryingRegex(commenter comments.Commenter, trimTrailing bool) *regexp.Regexp {
	context := t.context
	// Render with the intermediate token in the year position. The year
	// pattern already accounts for ranges so the start year is cleared.
	context.EndYear = intermediateYearToken
	context.StartYear = ""

	rendered := commenter.Comment(t.interpolate(context))
	if trimTrailing {
		rendered = strings.TrimRight(rendered, " \t\n")
	}

	// Split out the token, escape the literal fragments around it, and
	// rejoin with the year pattern. The result matches the exact header
	// text with any year where the token was.
	fragments := strings.Split(rendered, intermediateYearToken)
	for i, fragment := range fragments {
		fragments[i] = regexp.QuoteMeta(fragment)
	}

	return regexp.MustCompile(strings.Join(fragments, yearPattern))
}

func (t *Template) replacementTokens() (yearToken, authorToken, identToken string) {
	if !t.spdxTemplate {
		return "[year]", "[name of author]", "[ident]"
	}

	// The Apache license text has its own special placeholder format.
	if strings.Contains(t.content, "[name of copyright owner]") {
		return "[yyyy]", "[name of copyright owner]", "[ident]"
	}

	authorToken = "<name of author>"
	if strings.Contains(t.content, "<copyright holders>") {
		authorToken = "<copyright holders>"
	} else if strings.Contains(t.content, "<owner>") {
		authorToken = "<owner>"
	}

	return "<year>", authorToken, "<ident>"
}
