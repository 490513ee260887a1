// Package markdown renders untrusted markdown content fields as HTML.
//
// Rendering happens in three passes: base64 data URLs are stripped from the
// source, goldmark converts the remainder with raw HTML omitted, and a
// bluemonday UGC policy scrubs the generated HTML. The data URL pass is a
// denylist; bluemonday is the allowlist that backs it up.
package markdown

import (
	"bytes"
	"encoding/json"
	"html/template"
	"regexp"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// dataURLReplacement is substituted for every stripped data URL.
const dataURLReplacement = "#"

var (
	// dataURLRegex matches "data:" + non-space run + ";base64" + optional
	// non-space tail. RE2's \S is ASCII only, so the class also stops at
	// vertical tab, Unicode separators (NBSP, U+2028, ...) and U+FEFF.
	dataURLRegex = regexp.MustCompile(`data:[^\s\x{000B}\p{Z}\x{FEFF}]+;base64[^\s\x{000B}\p{Z}\x{FEFF}]*`)

	// md omits raw HTML because html.WithUnsafe is not set.
	md = goldmark.New(
		goldmark.WithExtensions(extension.Table, extension.Strikethrough),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
	)

	policy = bluemonday.UGCPolicy()
)

// StripDataURLs replaces every base64 data URL in content with "#".
func StripDataURLs(content string) string {
	return dataURLRegex.ReplaceAllLiteralString(content, dataURLReplacement)
}

// Render converts markdown source to sanitized HTML. An empty source renders
// to an empty string.
func Render(content string) template.HTML {
	source := StripDataURLs(content)

	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		// Fallback to plain text if markdown rendering fails
		//nolint:gosec // escaped source
		return template.HTML(template.HTMLEscapeString(source))
	}

	//nolint:gosec // sanitized by bluemonday
	return template.HTML(policy.SanitizeBytes(buf.Bytes()))
}

// Dump returns an indented JSON representation of v for debugging templates.
func Dump(v any) string {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(out)
}
