package prompt

import (
	"strings"
	"testing"
)

func TestBuildDeterministic(t *testing.T) {
	req := Request{
		Text:         "some transcript text",
		VideoID:      "dQw4w9WgXcQ",
		Language:     "en",
		Style:        StyleStandard,
		IsTranscript: true,
	}

	first, err := Build(req)
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}
	second, err := Build(req)
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}
	if first != second {
		t.Error("Build() produced different prompts for identical requests")
	}
	if !strings.Contains(first, "some transcript text") {
		t.Error("Build() did not embed the source text")
	}
}

func TestBuildStylesDiffer(t *testing.T) {
	base := Request{
		Text:         "transcript",
		VideoID:      "dQw4w9WgXcQ",
		Language:     "en",
		IsTranscript: true,
	}

	prompts := map[string]string{}
	for _, style := range []string{StyleStandard, StyleTeacher, StyleArticle} {
		req := base
		req.Style = style
		p, err := Build(req)
		if err != nil {
			t.Fatalf("Build(style=%s) unexpected error: %v", style, err)
		}
		prompts[style] = p
	}

	if prompts[StyleStandard] == prompts[StyleTeacher] {
		t.Error("standard and teacher prompts are identical")
	}
	if prompts[StyleStandard] == prompts[StyleArticle] {
		t.Error("standard and article prompts are identical")
	}
	if prompts[StyleTeacher] == prompts[StyleArticle] {
		t.Error("teacher and article prompts are identical")
	}
}

func TestBuildUnknownStyleFallsBack(t *testing.T) {
	base := Request{
		Text:         "transcript",
		VideoID:      "dQw4w9WgXcQ",
		Language:     "en",
		IsTranscript: true,
	}

	req := base
	req.Style = "poem"
	unknown, err := Build(req)
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}

	req.Style = StyleStandard
	standard, err := Build(req)
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}

	if unknown != standard {
		t.Error("unknown style should produce the standard prompt")
	}
}

func TestBuildUnknownLanguageFallsBackToEnglish(t *testing.T) {
	req := Request{
		Text:         "transcript",
		VideoID:      "dQw4w9WgXcQ",
		Language:     "fr",
		Style:        StyleStandard,
		IsTranscript: true,
	}

	french, err := Build(req)
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}

	req.Language = "en"
	english, err := Build(req)
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}

	if french != english {
		t.Error("unsupported language should produce the English prompt")
	}
}

func TestBuildMetadataIgnoresStyle(t *testing.T) {
	base := Request{
		Text:         "Video Title: T\n\nVideo Description: D",
		VideoID:      "dQw4w9WgXcQ",
		Language:     "en",
		IsTranscript: false,
	}

	req := base
	req.Style = StyleTeacher
	teacher, err := Build(req)
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}

	req.Style = StyleStandard
	standard, err := Build(req)
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}

	if teacher != standard {
		t.Error("metadata prompts should not vary by style")
	}
}

func TestBuildMinimal(t *testing.T) {
	for _, lang := range []string{"en", "ar"} {
		req := Request{
			VideoID:  "dQw4w9WgXcQ",
			Language: lang,
			Style:    StyleArticle,
		}
		p, err := Build(req)
		if err != nil {
			t.Fatalf("Build(lang=%s) unexpected error: %v", lang, err)
		}
		if !strings.Contains(p, "dQw4w9WgXcQ") {
			t.Errorf("minimal prompt for %s does not mention the video ID", lang)
		}
	}
}
