// Package prompt assembles the instruction text sent to the generative
// service. Selection is a lookup table keyed by (language, style, content
// kind) rather than nested conditionals; every template embeds the source
// text verbatim and pins the output language.
package prompt

import (
	"bytes"
	"text/template"

	"github.com/pkg/errors"
)

// Kind says what the source text is: a real transcript, scraped page
// metadata, or nothing at all (minimal-info fallback).
type Kind int

const (
	KindTranscript Kind = iota
	KindMetadata
	KindMinimal
)

// Styles recognized for transcript summaries. Anything else falls back to
// StyleStandard. Metadata and minimal prompts ignore style entirely.
const (
	StyleStandard = "standard"
	StyleTeacher  = "teacher"
	StyleArticle  = "article"
)

// Request carries everything needed to choose and fill a template.
type Request struct {
	// Text is the transcript or metadata block; empty means minimal-info.
	Text string
	// VideoID is embedded in the minimal-info prompt instead of text.
	VideoID string
	// Language is the requested output language; any value other than "ar"
	// selects the English templates.
	Language string
	// Style is one of the Style constants; unrecognized values mean standard.
	Style string
	// IsTranscript distinguishes transcript text from metadata text.
	IsTranscript bool
}

type key struct {
	lang  string
	style string
	kind  Kind
}

type templateData struct {
	Text    string
	VideoID string
}

var promptTemplates = map[key]*template.Template{
	{"en", StyleStandard, KindTranscript}: mustParse("en-standard", enStandard),
	{"en", StyleTeacher, KindTranscript}:  mustParse("en-teacher", enTeacher),
	{"en", StyleArticle, KindTranscript}:  mustParse("en-article", enArticle),
	{"en", StyleStandard, KindMetadata}:   mustParse("en-metadata", enMetadata),
	{"en", StyleStandard, KindMinimal}:    mustParse("en-minimal", enMinimal),
	{"ar", StyleStandard, KindTranscript}: mustParse("ar-standard", arStandard),
	{"ar", StyleTeacher, KindTranscript}:  mustParse("ar-teacher", arTeacher),
	{"ar", StyleArticle, KindTranscript}:  mustParse("ar-article", arArticle),
	{"ar", StyleStandard, KindMetadata}:   mustParse("ar-metadata", arMetadata),
	{"ar", StyleStandard, KindMinimal}:    mustParse("ar-minimal", arMinimal),
}

func mustParse(name, text string) *template.Template {
	return template.Must(template.New(name).Parse(text))
}

// Build renders the instruction string for the generative service. Pure and
// deterministic: identical requests always produce identical prompts.
func Build(req Request) (string, error) {
	k := key{
		lang:  normalizeLanguage(req.Language),
		style: normalizeStyle(req.Style),
		kind:  kindOf(req),
	}

	// Metadata and minimal prompts come in a single register per language.
	if k.kind != KindTranscript {
		k.style = StyleStandard
	}

	tmpl, ok := promptTemplates[k]
	if !ok {
		return "", errors.Errorf("no prompt template for language=%s style=%s kind=%d", k.lang, k.style, k.kind)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, templateData{Text: req.Text, VideoID: req.VideoID}); err != nil {
		return "", errors.Wrap(err, "executing prompt template")
	}
	return buf.String(), nil
}

func normalizeLanguage(lang string) string {
	if lang == "ar" {
		return "ar"
	}
	return "en"
}

func normalizeStyle(style string) string {
	switch style {
	case StyleTeacher, StyleArticle:
		return style
	default:
		return StyleStandard
	}
}

func kindOf(req Request) Kind {
	if req.Text == "" {
		return KindMinimal
	}
	if req.IsTranscript {
		return KindTranscript
	}
	return KindMetadata
}
