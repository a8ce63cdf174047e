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
	"testing"

	"github.com/stretchr/testify/require"
)

func licenseYAML(files string) string {
	return `
licenses:
  - files: ` + files + `
    ident: MIT
    authors:
      - name: Author1
        email: a@example.com
    template: "some license"
`
}

func TestFileMatcherForms(t *testing.T) {
	for _, test := range []struct {
		Name    string
		Files   string
		Match   []string
		NoMatch []string
	}{
		{
			Name:  "any",
			Files: "any",
			Match: []string{"anything.py", "src/lib.rs"},
		},
		{
			Name:    "single regex",
			Files:   `.*foo`,
			Match:   []string{"src/foo", "barfoo"},
			NoMatch: []string{"bar.py"},
		},
		{
			Name: "regex list",
			Files: `
      - a.*
      - b.*`,
			Match:   []string{"alpha.py", "beta.py"},
			NoMatch: []string{"gamma.py"},
		},
	} {
		t.Run(test.Name, func(t *testing.T) {
			cfg, err := Parse([]byte(licenseYAML(test.Files)))
			require.NoError(t, err)
			require.Len(t, cfg.Licenses, 1)

			for _, path := range test.Match {
				require.True(t, cfg.Licenses[0].Files.IsMatch(path), path)
			}
			for _, path := range test.NoMatch {
				require.False(t, cfg.Licenses[0].Files.IsMatch(path), path)
			}
		})
	}
}

func TestParseValidation(t *testing.T) {
	for _, test := range []struct {
		Name string
		YAML string
		Err  string
	}{
		{
			Name: "license without template",
			YAML: `
licenses:
  - files: any
    ident: MIT
    authors:
      - name: Author1
`,
			Err: "auto_template not enabled and no template provided",
		},
		{
			Name: "license without authors",
			YAML: `
licenses:
  - files: any
    ident: MIT
    template: "some license"
`,
			Err: "must specify at least one author",
		},
		{
			Name: "license without ident",
			YAML: `
licenses:
  - files: any
    authors:
      - name: Author1
    template: "some license"
`,
			Err: "must specify an ident",
		},
		{
			Name: "invalid commenter type",
			YAML: `
comments:
  - extension: any
    commenter:
      type: banana
`,
			Err: "invalid commenter type",
		},
		{
			Name: "line commenter without comment_char",
			YAML: `
comments:
  - extension: any
    commenter:
      type: line
`,
			Err: "must specify comment_char",
		},
		{
			Name: "block commenter without delimiters",
			YAML: `
comments:
  - extension: any
    commenter:
      type: block
`,
			Err: "must specify start_block_char and end_block_char",
		},
		{
			Name: "invalid exclude pattern",
			YAML: `
excludes:
  - "["
`,
			Err: "failed to compile pattern",
		},
	} {
		t.Run(test.Name, func(t *testing.T) {
			_, err := Parse([]byte(test.YAML))
			require.Error(t, err)
			require.Contains(t, err.Error(), test.Err)
		})
	}
}

func TestDefaultConfigParses(t *testing.T) {
	cfg, err := Parse([]byte(DefaultConfig))
	require.NoError(t, err)

	require.True(t, cfg.Excludes.IsMatch("some.lock"))
	require.True(t, cfg.Excludes.IsMatch("README.md"))
	require.False(t, cfg.Excludes.IsMatch("main.go"))

	// The default comment configs end with an "any" fallback.
	commenter, ok := cfg.Comments.GetCommenter("script.xyz")
	require.True(t, ok)
	require.Equal(t, "# text\n", commenter.Comment("text"))

	commenter, ok = cfg.Comments.GetCommenter("main.go")
	require.True(t, ok)
	require.Equal(t, "// text\n", commenter.Comment("text"))

	commenter, ok = cfg.Comments.GetCommenter("style.css")
	require.True(t, ok)
	require.Equal(t, "/*\n* text\n*/", commenter.Comment("text"))

	commenter, ok = cfg.Comments.GetCommenter("index.html")
	require.True(t, ok)
	require.Equal(t, "<!--\ntext-->", commenter.Comment("text"))
}

func TestGetCommenterFirstMatchWins(t *testing.T) {
	cfg, err := Parse([]byte(`
comments:
  - extension: py
    commenter:
      type: line
      comment_char: "#"
  - extension: any
    commenter:
      type: line
      comment_char: ";;;"
`))
	require.NoError(t, err)

	commenter, ok := cfg.Comments.GetCommenter("main.py")
	require.True(t, ok)
	require.Equal(t, "# text\n", commenter.Comment("text"))

	commenter, ok = cfg.Comments.GetCommenter("main.el")
	require.True(t, ok)
	require.Equal(t, ";;; text\n", commenter.Comment("text"))
}

func TestGetCommenterNoMatch(t *testing.T) {
	cfg, err := Parse([]byte(`
comments:
  - extension: py
    commenter:
      type: line
      comment_char: "#"
`))
	require.NoError(t, err)

	_, ok := cfg.Comments.GetCommenter("program.c")
	require.False(t, ok)
}

func TestGetTemplate(t *testing.T) {
	cfg, err := Parse([]byte(`
licenses:
  - files: .*\.py
    ident: MIT
    authors:
      - name: Author1
    template: "Copyright [year] [name of author] under [ident]"
    year: "2024"
`))
	require.NoError(t, err)

	template, err := cfg.Licenses.GetTemplate("main.py")
	require.NoError(t, err)
	require.NotNil(t, template)
	require.Equal(t, "Copyright 2024 Author1 under MIT", template.Render())

	template, err = cfg.Licenses.GetTemplate("main.go")
	require.NoError(t, err)
	require.Nil(t, template)
}

func TestGetReplaces(t *testing.T) {
	cfg, err := Parse([]byte(`
licenses:
  - files: any
    ident: MIT
    authors:
      - name: Author1
    template: "some license"
    replaces:
      - "old header"
`))
	require.NoError(t, err)

	replaces := cfg.Licenses.GetReplaces("main.py")
	require.Len(t, replaces, 1)
	require.True(t, replaces[0].MatchString("an old header here"))
}

func TestAddExcludePrepends(t *testing.T) {
	cfg, err := Parse([]byte(`
excludes:
  - \.gitignore
`))
	require.NoError(t, err)

	require.NoError(t, cfg.AddExclude(`vendor/.*`))
	require.True(t, cfg.Excludes.IsMatch("vendor/lib.go"))
	require.True(t, cfg.Excludes.IsMatch(".gitignore"))

	require.Error(t, cfg.AddExclude("["))
}

func TestGetFiletype(t *testing.T) {
	require.Equal(t, "py", getFiletype("test.py"))
	require.Equal(t, "go", getFiletype("dir/main.go"))
	require.Equal(t, "Makefile", getFiletype("Makefile"))
}

func TestExtensionListForms(t *testing.T) {
	cfg, err := Parse([]byte(`
comments:
  - extensions:
      - js
      - rs
    commenter:
      type: line
      comment_char: "//"
`))
	require.NoError(t, err)

	commenter, ok := cfg.Comments.GetCommenter("lib.rs")
	require.True(t, ok)
	require.Equal(t, "// text\n", commenter.Comment("text"))

	_, ok = cfg.Comments.GetCommenter("lib.py")
	require.False(t, ok)
}
