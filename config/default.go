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

// DefaultConfig is the YAML config written by --generate-config.
const DefaultConfig = `# Regexes which if matched by a file path will always be excluded from
# getting a license header
excludes:
  - \.gitignore
  - .*lock
  - \.git/.*
  - \.licensure\.yml
  - README.*
  - LICENSE.*
  - .*\.(md|rst|txt)
# Definition of the licenses used on this project and to what files
# they should apply.
#
# No default license configuration is provided. This section must be
# configured by the user.
licenses:
  # Either a regex or the string "any" to determine to what files this
  # license should apply. It is common for projects to have files
  # under multiple licenses or with multiple copyright holders.
  #
  # If "any" is provided all files will match this license.
  # - files: any
  #
  #   The license identifier, a list of common identifiers can be
  #   found at: https://spdx.org/licenses/ but existence of the ident
  #   in this list is not enforced unless auto_template is set to
  #   true.
  #   ident: MIT
  #
  #   A list of authors who hold copyright over these files
  #   authors:
  #       Provide either your full name or company name for copyright purposes
  #     - name: Your Name Here
  #       Optionally provide email for copyright purposes
  #       email: you@yourdomain.com
  #
  #   The template that will be rendered to generate the header before
  #   comment characters are applied. Available variables are:
  #    - [year]: substituted with the current year.
  #    - [name of author]: substituted with the name of the author and
  #      email if provided. If email is provided the output appears as
  #      Full Name <email@example.com>. If multiple authors are provided
  #      the list is concatenated together with commas.
  #    - [ident]: substituted with the license identifier.
  #   template: |
  #     Copyright [year] [name of author]. All rights reserved. Use of
  #     this source code is governed by the [ident] license that can be
  #     found in the LICENSE file.
  #
  #   If auto_template is true then template is ignored and the SPDX
  #   API will be queried with the ident value to automatically
  #   determine the license header template. auto_template works best
  #   with licenses that have a standardLicenseHeader field defined in
  #   their license info JSON. Common licenses that work well with the
  #   auto_template feature are GPL variants, and the Apache 2.0
  #   license.
  #
  #   Important Note: this means the ident must be a valid SPDX identifier
  #   auto_template: true
  #
  #   Detect the text wrapping of the template and unwrap it so the
  #   header re-wraps to the commenter's column width
  #   unwrap_text: true

# Define the type of comment characters to apply based on file extensions.
comments:
  # The extensions (or singular extension) field defines which file
  # extensions to apply the commenter to.
  - extensions:
      - js
      - rs
      - go
    # The commenter field defines the kind of commenter to
    # generate. There are two types of commenters: line and block.
    #
    # A line commenter applies the comment_char to the beginning of
    # each line in the license header. It then appends a number of
    # empty newlines to the end of the header equal to trailing_lines.
    #
    # If trailing_lines is omitted it is assumed to be 0.
    commenter:
      type: line
      comment_char: "//"
      trailing_lines: 0
  - extensions:
      - css
      - cpp
      - c
    # A block commenter adds start_block_char as the first character in
    # the license header and end_block_char as the last character. If
    # per_line_char is provided each line of the header between the
    # block start and end characters will be line commented with it.
    #
    # trailing_lines works the same for both commenter types.
    commenter:
      type: block
      start_block_char: "/*\n"
      end_block_char: "*/"
      per_line_char: "*"
      trailing_lines: 0
  # In this case extension is singular and a single string extension is
  # provided.
  - extension: html
    commenter:
      type: block
      start_block_char: "<!--\n"
      end_block_char: "-->"
  - extensions:
      - el
      - lisp
    commenter:
      type: line
      comment_char: ";;;"
      trailing_lines: 0
  # The extension string "any" is special and will match any file
  # extension. Commenter configurations are always checked in the order
  # they are defined, so if any is used it should be the last commenter
  # configuration or else it will override all others.
  #
  # With this entry files whose extension matches nothing else fall
  # back to the popular "#" line comment used in most scripting
  # languages.
  - extension: any
    commenter:
      type: line
      comment_char: "#"
      trailing_lines: 0
`
