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

package config

import (
	"encoding/json"
	"regexp"

	"github.com/cockroachdb/errors"

	"github.com/chasinglogic/licensure/license"
)

// FileMatcher determines which files a license config applies to. It
// deserializes from the string "any", a single regex, or a list of regexes.
type FileMatcher struct {
	any      bool
	patterns RegexList
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *FileMatcher) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if single == "any" {
			m.any = true
			return nil
		}

		compiled, err := regexp.Compile(single)
		if err != nil {
			return errors.Wrapf(err, "failed to compile pattern %q", single)
		}
		m.patterns = RegexList{patterns: []*regexp.Regexp{compiled}}
		return nil
	}

	return m.patterns.UnmarshalJSON(data)
}

// IsMatch reports whether the matcher applies to path.
func (m *FileMatcher) IsMatch(path string) bool {
	return m.any || m.patterns.IsMatch(path)
}

// LicenseConfig declares which license applies to a set of files and the
// values used to render its header.
type LicenseConfig struct {
	Files FileMatcher `yaml:"files" json:"files"`

	Ident   string          `yaml:"ident" json:"ident"`
	Authors license.Authors `yaml:"authors" json:"authors"`

	// Year is an alias for EndYear kept for config compatibility.
	Year                 string `yaml:"year" json:"year"`
	EndYear              string `yaml:"end_year" json:"end_year"`
	StartYear            string `yaml:"start_year" json:"start_year"`
	UseDynamicYearRanges bool   `yaml:"use_dynamic_year_ranges" json:"use_dynamic_year_ranges"`

	Template     string `yaml:"template" json:"template"`
	AutoTemplate bool   `yaml:"auto_template" json:"auto_template"`

	Replaces RegexList `yaml:"replaces" json:"replaces"`

	UnwrapText *bool `yaml:"unwrap_text" json:"unwrap_text"`
}

func (c *LicenseConfig) initializeAndValidate() error {
	var errs []error

	if c.Ident == "" {
		errs = append(errs, errors.New("must specify an ident for every license"))
	}

	if len(c.Authors) == 0 {
		errs = append(errs, errors.New("must specify at least one author for every license"))
	}

	if c.Template == "" && !c.AutoTemplate {
		errs = append(errs, errors.Newf("auto_template not enabled and no template provided for license %s", c.Ident))
	}

	return errors.Join(errs...)
}

func (c *LicenseConfig) endYear() string {
	if c.EndYear != "" {
		return c.EndYear
	}
	return c.Year
}

func (c *LicenseConfig) unwrapText() bool {
	if c.UnwrapText == nil {
		return true
	}
	return *c.UnwrapText
}

// GetTemplate builds the header template for path. Fetches the SPDX
// template on first use when auto_template is enabled, and consults git
// history for the year range when use_dynamic_year_ranges is enabled.
func (c *LicenseConfig) GetTemplate(path string) (*license.Template, error) {
	if c.Template == "" {
		fetched, err := fetchSPDXTemplate(c.Ident)
		if err != nil {
			return nil, err
		}
		c.Template = fetched
	}

	endYear, startYear := c.endYear(), c.StartYear
	if c.UseDynamicYearRanges && (endYear == "" || startYear == "") {
		gitStart, gitEnd, err := gitYearsForFile(path)
		if err != nil {
			return nil, err
		}

		if endYear == "" {
			endYear = gitEnd
		}
		if startYear == "" && gitStart != gitEnd {
			startYear = gitStart
		}
	}

	template := license.New(c.Template, license.Context{
		Ident:      c.Ident,
		Authors:    c.Authors,
		EndYear:    endYear,
		StartYear:  startYear,
		UnwrapText: c.unwrapText(),
	})

	return template.SetSPDXTemplate(c.AutoTemplate), nil
}

// LicenseConfigList resolves files against license configs in declared
// order, first match wins.
type LicenseConfigList []*LicenseConfig

// GetTemplate returns the header template for path, or nil when no license
// config matches it.
func (l LicenseConfigList) GetTemplate(path string) (*license.Template, error) {
	for _, cfg := range l {
		if cfg.Files.IsMatch(path) {
			return cfg.GetTemplate(path)
		}
	}

	return nil, nil
}

// GetReplaces returns the legacy-header patterns configured for path, or nil
// when no license config matches it.
func (l LicenseConfigList) GetReplaces(path string) []*regexp.Regexp {
	for _, cfg := range l {
		if cfg.Files.IsMatch(path) {
			return cfg.Replaces.Patterns()
		}
	}

	return nil
}
