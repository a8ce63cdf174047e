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

// Package config loads and resolves the .licensure.yml configuration: which
// files are excluded, which license applies to which files, and which
// comment syntax applies to which file extensions.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"

	"github.com/cockroachdb/errors"
	"sigs.k8s.io/yaml"
)

// ErrNoConfigFile is returned by Load when no config file could be found in
// the current directory, any of its parents, or the user config directory.
var ErrNoConfigFile = errors.New("config file not found")

// Config is the fully resolved licensure configuration.
type Config struct {
	ChangeInPlace bool `yaml:"change_in_place" json:"change_in_place"`

	Excludes RegexList         `yaml:"excludes" json:"excludes"`
	Licenses LicenseConfigList `yaml:"licenses" json:"licenses"`
	Comments CommentConfigList `yaml:"comments" json:"comments"`
}

// AddExclude prepends an exclude pattern, typically from the --exclude flag.
func (c *Config) AddExclude(pattern string) error {
	return c.Excludes.Add(pattern)
}

func (c *Config) initializeAndValidate() error {
	var errs []error

	for _, license := range c.Licenses {
		if err := license.initializeAndValidate(); err != nil {
			errs = append(errs, err)
		}
	}

	for _, comment := range c.Comments {
		if err := comment.initializeAndValidate(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// Parse unmarshals and validates a YAML config document.
func Parse(data []byte) (*Config, error) {
	c := &Config{}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, err
	}

	if err := c.initializeAndValidate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Load finds and parses the config file: the first .licensure.yml walking up
// from the current working directory, falling back to
// <user config dir>/licensure/config.yml.
func Load() (*Config, error) {
	path, err := findConfigFile()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", path)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid config file %s", path)
	}

	return c, nil
}

func findConfigFile() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for dir := cwd; ; dir = filepath.Dir(dir) {
		candidate := filepath.Join(dir, ".licensure.yml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		if dir == filepath.Dir(dir) {
			break
		}
	}

	if configDir, err := os.UserConfigDir(); err == nil {
		global := filepath.Join(configDir, "licensure", "config.yml")
		if _, err := os.Stat(global); err == nil {
			return global, nil
		}
	}

	return "", ErrNoConfigFile
}

// RegexList is an ordered list of regular expressions deserialized from a
// YAML list of pattern strings.
type RegexList struct {
	patterns []*regexp.Regexp
}

// UnmarshalJSON implements json.Unmarshaler. sigs.k8s.io/yaml routes YAML
// through JSON so this covers YAML deserialization too.
func (l *RegexList) UnmarshalJSON(data []byte) error {
	var raw []string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	patterns := make([]*regexp.Regexp, 0, len(raw))
	for _, pattern := range raw {
		compiled, err := regexp.Compile(pattern)
		if err != nil {
			return errors.Wrapf(err, "failed to compile pattern %q", pattern)
		}
		patterns = append(patterns, compiled)
	}

	l.patterns = patterns
	return nil
}

// IsMatch reports whether any pattern in the list matches s.
func (l *RegexList) IsMatch(s string) bool {
	for _, pattern := range l.patterns {
		if pattern.MatchString(s) {
			return true
		}
	}
	return false
}

// Add prepends a pattern to the list.
func (l *RegexList) Add(pattern string) error {
	compiled, err := regexp.Compile(pattern)
	if err != nil {
		return errors.Wrapf(err, "failed to compile pattern %q", pattern)
	}

	l.patterns = append([]*regexp.Regexp{compiled}, l.patterns...)
	return nil
}

// Patterns returns the compiled patterns in declared order.
func (l *RegexList) Patterns() []*regexp.Regexp {
	return l.patterns
}
