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
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/chasinglogic/licensure/comments"
)

// getFiletype returns the extension of filename without the leading dot, the
// empty string when it has none.
func getFiletype(filename string) string {
	parts := strings.Split(filename, ".")
	return parts[len(parts)-1]
}

// ExtensionList deserializes from either a single extension string or a list
// of extension strings. The extension "any" matches every file.
type ExtensionList []string

// UnmarshalJSON implements json.Unmarshaler.
func (l *ExtensionList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*l = ExtensionList{single}
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}

	*l = ExtensionList(list)
	return nil
}

func (l ExtensionList) matches(fileType string) bool {
	for _, extension := range l {
		if extension == "any" || extension == fileType {
			return true
		}
	}
	return false
}

// CommenterConfig describes how to build a commenter. Type selects between
// the two commenter kinds: "line" uses CommentChar, "block" uses
// StartBlockChar/EndBlockChar and optionally PerLineChar.
type CommenterConfig struct {
	Type           string `yaml:"type" json:"type"`
	CommentChar    string `yaml:"comment_char" json:"comment_char"`
	StartBlockChar string `yaml:"start_block_char" json:"start_block_char"`
	EndBlockChar   string `yaml:"end_block_char" json:"end_block_char"`
	PerLineChar    string `yaml:"per_line_char" json:"per_line_char"`
	TrailingLines  int    `yaml:"trailing_lines" json:"trailing_lines"`
}

// CommentConfig maps file extensions to a commenter and column width.
// Extension and Extensions are aliases for config compatibility.
type CommentConfig struct {
	Extension  ExtensionList `yaml:"extension" json:"extension"`
	Extensions ExtensionList `yaml:"extensions" json:"extensions"`

	Columns   int             `yaml:"columns" json:"columns"`
	Commenter CommenterConfig `yaml:"commenter" json:"commenter"`
}

func (c *CommentConfig) initializeAndValidate() error {
	var errs []error

	if len(c.Extension) == 0 && len(c.Extensions) == 0 {
		errs = append(errs, errors.New("must specify an extension or extensions for every comment config"))
	}

	switch c.Commenter.Type {
	case "line":
		if c.Commenter.CommentChar == "" {
			errs = append(errs, errors.New("line commenters must specify comment_char"))
		}
	case "block":
		if c.Commenter.StartBlockChar == "" || c.Commenter.EndBlockChar == "" {
			errs = append(errs, errors.New("block commenters must specify start_block_char and end_block_char"))
		}
	default:
		errs = append(errs, errors.Newf("invalid commenter type: %q", c.Commenter.Type))
	}

	return errors.Join(errs...)
}

func (c *CommentConfig) matches(fileType string) bool {
	return c.Extension.matches(fileType) || c.Extensions.matches(fileType)
}

// Build constructs the configured commenter.
func (c *CommentConfig) Build() comments.Commenter {
	if c.Commenter.Type == "line" {
		return comments.NewLineCommenter(c.Commenter.CommentChar, c.Columns).
			WithTrailingLines(c.Commenter.TrailingLines)
	}

	block := comments.NewBlockCommenter(c.Commenter.StartBlockChar, c.Commenter.EndBlockChar, c.Columns).
		WithTrailingLines(c.Commenter.TrailingLines)
	if c.Commenter.PerLineChar != "" {
		block = block.WithPerLine(c.Commenter.PerLineChar)
	}

	return block
}

// CommentConfigList resolves files against comment configs in declared
// order, first match wins.
type CommentConfigList []*CommentConfig

// GetCommenter returns the commenter for path. The second return value is
// false when no comment config matches the file's extension; configs that
// want a catch-all use an "any" extension entry.
func (l CommentConfigList) GetCommenter(path string) (comments.Commenter, bool) {
	fileType := getFiletype(path)

	for _, cfg := range l {
		if cfg.matches(fileType) {
			return cfg.Build(), true
		}
	}

	return nil, false
}
