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

// Package licensure implements the licensing decision engine: per file it
// renders the configured header, classifies the file as already licensed,
// licensed with an outdated year, licensed with legacy wording, or not
// licensed, and applies the minimal edit.
package licensure

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/chasinglogic/licensure/config"
)

var shebangPattern = regexp.MustCompile(`^#!.*\n`)

type licenseStatus int

const (
	alreadyLicensed licenseStatus = iota
	needsUpdate
	noConfigMatched
	noCommenterMatched
)

// Stats accumulates the soft outcomes of one batch run.
type Stats struct {
	FilesNotLicensed          []string
	FilesNeedingLicenseUpdate []string
	FilesNeedingCommenter     []string

	diffs *checkDiffs
}

// DiffReport renders the diffs collected during a check-mode run, the empty
// string when nothing would change.
func (s *Stats) DiffReport() string {
	if s.diffs == nil {
		return ""
	}
	return s.diffs.report()
}

// Licensure applies a resolved config to batches of files.
type Licensure struct {
	config    *config.Config
	stats     *Stats
	checkMode bool
	out       io.Writer
}

// New returns an engine over the given config.
func New(cfg *config.Config) *Licensure {
	return &Licensure{config: cfg, out: os.Stdout}
}

// WithCheckMode makes LicenseFiles report what would change without
// modifying any file.
func (l *Licensure) WithCheckMode(checkMode bool) *Licensure {
	l.checkMode = checkMode
	return l
}

// WithOutput redirects the content printed for updated files when in-place
// editing is off. Defaults to standard output.
func (l *Licensure) WithOutput(out io.Writer) *Licensure {
	l.out = out
	return l
}

// LicenseFiles classifies every file and applies the configured action:
// overwrite in place, print the updated content, or (in check mode) only
// record what would change. The first I/O error aborts the batch.
func (l *Licensure) LicenseFiles(files []string) (*Stats, error) {
	l.stats = &Stats{}
	if l.checkMode {
		l.stats.diffs = newCheckDiffs()
	}

	log := zap.L().Sugar()

	for _, file := range files {
		if l.config.Excludes.IsMatch(file) {
			log.Infof("skipping %s because it is excluded", file)
			continue
		}

		log.Debugf("working on file: %s", file)

		data, err := os.ReadFile(file)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read file %s", file)
		}
		content := string(data)

		status, update, err := l.classify(file, content)
		if err != nil {
			return nil, err
		}

		switch status {
		case needsUpdate:
			l.stats.FilesNeedingLicenseUpdate = append(l.stats.FilesNeedingLicenseUpdate, file)
			if err := l.handleUpdate(file, content, update); err != nil {
				return nil, err
			}
		case noConfigMatched:
			l.stats.FilesNotLicensed = append(l.stats.FilesNotLicensed, file)
		case noCommenterMatched:
			l.stats.FilesNotLicensed = append(l.stats.FilesNotLicensed, file)
			l.stats.FilesNeedingCommenter = append(l.stats.FilesNeedingCommenter, file)
		case alreadyLicensed:
		}
	}

	return l.stats, nil
}

// classify decides what, if anything, has to change about a file's header.
// The checks run in order: exact match, year-varying match, legacy header
// match, then plain insertion.
func (l *Licensure) classify(file, content string) (licenseStatus, string, error) {
	log := zap.L().Sugar()

	template, err := l.config.Licenses.GetTemplate(file)
	if err != nil {
		return 0, "", err
	}
	if template == nil {
		log.Infof("skipping %s because no license config matched", file)
		return noConfigMatched, "", nil
	}

	commenter, ok := l.config.Comments.GetCommenter(file)
	if !ok {
		return noCommenterMatched, "", nil
	}

	header := commenter.Comment(template.Render())
	if strings.Contains(content, header) || strings.Contains(content, strings.TrimRight(header, " \t\n")) {
		log.Infof("%s already licensed", file)
		return alreadyLicensed, "", nil
	}

	outdated := template.OutdatedLicensePattern(commenter)
	if loc := outdated.FindStringIndex(content); loc != nil {
		log.Infof("%s licensed, but year is outdated", file)
		return needsUpdate, replaceSpan(content, loc, header), nil
	}

	// Account for possible whitespace changes. The matched span has no
	// trailing whitespace so the replacement header gets none either.
	trimmed := template.OutdatedLicenseTrimmedPattern(commenter)
	if loc := trimmed.FindStringIndex(content); loc != nil {
		log.Infof("%s licensed, but year is outdated", file)
		return needsUpdate, replaceSpan(content, loc, strings.TrimRight(header, " \t\n")), nil
	}

	for _, old := range l.config.Licenses.GetReplaces(file) {
		if loc := old.FindStringIndex(content); loc != nil {
			log.Infof("%s licensed, but license is outdated", file)
			return needsUpdate, replaceSpan(content, loc, header), nil
		}
	}

	return needsUpdate, addHeader(header, content), nil
}

// replaceSpan swaps the matched span for the header, leaving the rest of the
// content byte for byte identical.
func replaceSpan(content string, loc []int, header string) string {
	return content[:loc[0]] + header + content[loc[1]:]
}

// addHeader prepends the header to content, keeping a leading shebang line
// ahead of it.
func addHeader(header, content string) string {
	if shebang := shebangPattern.FindString(content); shebang != "" {
		return shebang + header + content[len(shebang):]
	}

	return header + content
}

func (l *Licensure) handleUpdate(file, content, update string) error {
	if l.checkMode {
		l.stats.diffs.record(file, content, update)
		return nil
	}

	if l.config.ChangeInPlace {
		if err := os.WriteFile(file, []byte(update), 0o644); err != nil {
			return errors.Wrapf(err, "failed to write to file %s", file)
		}
		return nil
	}

	_, err := fmt.Fprintln(l.out, update)
	return err
}
