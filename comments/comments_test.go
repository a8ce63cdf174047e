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

package comments

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const exampleText = `There once was a man
with a very nice cat
the cat wore a top hat
it looked super dapper
`

func TestCommenters(t *testing.T) {
	for _, test := range []struct {
		Name      string
		Commenter Commenter
		Text      string
		Expected  string
	}{
		{
			Name:      "line hash",
			Commenter: NewLineCommenter("#", 0),
			Text:      exampleText,
			Expected: `# There once was a man
# with a very nice cat
# the cat wore a top hat
# it looked super dapper
`,
		},
		{
			Name:      "line hash with trailing lines",
			Commenter: NewLineCommenter("#", 0).WithTrailingLines(2),
			Text:      exampleText,
			Expected: `# There once was a man
# with a very nice cat
# the cat wore a top hat
# it looked super dapper


`,
		},
		{
			Name:      "block with per line marker",
			Commenter: NewBlockCommenter("/*\n", "*/", 0).WithPerLine("*"),
			Text:      exampleText,
			Expected: `/*
* There once was a man
* with a very nice cat
* the cat wore a top hat
* it looked super dapper
*/`,
		},
		{
			Name:      "block with per line marker and trailing lines",
			Commenter: NewBlockCommenter("/*\n", "*/", 0).WithPerLine("*").WithTrailingLines(2),
			Text:      exampleText,
			Expected: `/*
* There once was a man
* with a very nice cat
* the cat wore a top hat
* it looked super dapper
*/

`,
		},
		{
			Name:      "block without per line marker",
			Commenter: NewBlockCommenter("<!--\n", "-->", 0),
			Text:      exampleText,
			Expected: `<!--
There once was a man
with a very nice cat
the cat wore a top hat
it looked super dapper
-->`,
		},
		{
			Name:      "empty text still produces the marker",
			Commenter: NewLineCommenter("#", 0),
			Text:      "",
			Expected:  "#\n",
		},
		{
			Name:      "line wrapping accounts for the marker width",
			Commenter: NewLineCommenter("//", 20),
			Text:      "this line is much longer than seventeen characters",
			Expected: `// this line is much
// longer than
// seventeen
// characters
`,
		},
		{
			Name:      "columns narrower than the marker fall back to columns",
			Commenter: NewLineCommenter("#", 2),
			Text:      "ab cd",
			Expected:  "# ab\n# cd\n",
		},
	} {
		t.Run(test.Name, func(t *testing.T) {
			require.Equal(t, test.Expected, test.Commenter.Comment(test.Text))
		})
	}
}
