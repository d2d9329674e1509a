package formula

import (
	"bytes"
	"regexp"
	"strings"
	"text/template"
	"unicode"
	"unicode/utf8"

	"github.com/rotisserie/eris"

	"github.com/solo-io/homebrew-releaser/releaser/releaser_types"
)

// Generated formulas aim to pass `brew audit --strict --online`: proper
// class name, desc within the 80 character budget that does not start with
// an article, homepage present, url pointing at the release tarball, and a
// sha256 matching it.
const maxDescFieldLength = 80

var (
	ErrMissingInstall = eris.New("formula: install block must not be empty")

	classNameSeparators = regexp.MustCompile(`[-_. ]+`)
	descPunctuation     = regexp.MustCompile(`[.!]+`)
)

var formulaTemplate = template.Must(template.New("formula").Parse(`# typed: false
# frozen_string_literal: true

# This file was generated by Homebrew Releaser. DO NOT EDIT.
class {{ .ClassName }} < Formula
  desc "{{ .Desc }}"
  homepage "{{ .Homepage }}"
  url "{{ .Url }}"
  sha256 "{{ .Sha256 }}"
{{- if .License }}
  license "{{ .License }}"
{{- end }}
  bottle :unneeded

  def install
    {{ .Install }}
  end
{{- if .Test }}

  test do
    {{ .Test }}
  end
{{- end }}
end
`))

// Formula is the typed template behind the rendered Ruby file. Build one
// with NewFormula so the derived fields follow the audit rules.
type Formula struct {
	ClassName string
	Desc      string
	Homepage  string
	Url       string
	Sha256    string
	License   string
	Install   string

	// Test is the body of the optional test block. When empty the block is
	// omitted entirely, never emitted empty.
	Test string
}

// NewFormula derives a Formula from fetched release metadata, the tarball
// checksum, and the user supplied install/test lines.
func NewFormula(release *releaser_types.ReleaseInfo, sha256 string, install string, test string) Formula {
	return Formula{
		ClassName: ClassName(release.Repo),
		Desc:      normalizeDesc(release.Description, release.Repo),
		Homepage:  release.Homepage,
		Url:       release.TarballUrl,
		Sha256:    sha256,
		License:   release.License,
		Install:   strings.TrimSpace(install),
		Test:      strings.TrimSpace(test),
	}
}

// Render produces the formula file text. Pure: no I/O, deterministic given
// the receiver.
func (f Formula) Render() (string, error) {
	if f.Install == "" {
		return "", ErrMissingInstall
	}

	var buf bytes.Buffer
	if err := formulaTemplate.Execute(&buf, f); err != nil {
		return "", eris.Wrap(err, "formula: rendering failed")
	}
	return buf.String(), nil
}

// ClassName converts a repo name into the formula's Ruby class name:
// "my-tool" becomes "MyTool".
func ClassName(repoName string) string {
	titled := titleCase(repoName)
	return classNameSeparators.ReplaceAllString(titled, "")
}

// titleCase uppercases the first letter of every alphabetic run, lowercasing
// the rest, so separators and digits restart capitalization.
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevIsLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) && !prevIsLetter {
			b.WriteRune(unicode.ToUpper(r))
		} else {
			b.WriteRune(unicode.ToLower(r))
		}
		prevIsLetter = unicode.IsLetter(r)
	}
	return b.String()
}

// normalizeDesc trims the repository description into brew audit's desc
// budget: truncated so name plus desc fit in 80 characters, sentence
// punctuation stripped, capitalized, and a leading article dropped.
func normalizeDesc(description string, repoName string) string {
	budget := maxDescFieldLength - utf8.RuneCountInString(repoName) + 2 // space buffer

	desc := description
	// Truncate on runes so a multi-byte character is never split.
	if runes := []rune(desc); budget > 0 && len(runes) > budget {
		desc = string(runes[:budget])
	}
	desc = descPunctuation.ReplaceAllString(desc, "")
	desc = capitalize(strings.TrimSpace(desc))

	words := strings.SplitN(desc, " ", 2)
	if len(words) == 2 {
		switch strings.ToLower(words[0]) {
		case "a", "the":
			desc = capitalize(strings.TrimSpace(words[1]))
		}
	}

	return desc
}

// capitalize uppercases the first rune and lowercases the remainder.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
