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

package license

import (
	"regexp"
	"strings"
)

var wrappedLinePattern = regexp.MustCompile(`(.)\n`)

// removeColumnWrapping collapses column-width line wrapping into spaces
// while preserving blank lines, so each blank-line delimited block becomes
// one logical paragraph.
func removeColumnWrapping(text string) string {
	unwrapped := wrappedLinePattern.ReplaceAllString(text, "$1 ")
	return strings.ReplaceAll(unwrapped, " \n", "\n\n")
}
