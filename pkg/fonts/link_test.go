package fonts

import (
	"strings"
	"testing"

	ferrors "github.com/matzehuels/fontlink/pkg/errors"
)

func TestLinkTag(t *testing.T) {
	got := LinkTag("https://fonts.googleapis.com/css2?family=A&family=B&display=swap")
	want := `<link rel="stylesheet" href="https://fonts.googleapis.com/css2?family=A&amp;family=B&amp;display=swap">`
	if got != want {
		t.Errorf("LinkTag() = %q, want %q", got, want)
	}
}

func TestLinkTagEscapesQuotes(t *testing.T) {
	got := LinkTag(`https://x/"><script>`)
	if strings.Contains(got, `"><script>`) {
		t.Errorf("LinkTag() did not escape attribute: %q", got)
	}
}

func TestStylesheet(t *testing.T) {
	got, err := Stylesheet([]Family{NewFamily("Open Sans", WithWeights(400))})
	if err != nil {
		t.Fatalf("Stylesheet() error = %v", err)
	}
	want := `<link rel="stylesheet" href="https://fonts.googleapis.com/css2?family=Open+Sans:wght@400&amp;display=swap">`
	if got != want {
		t.Errorf("Stylesheet() = %q, want %q", got, want)
	}

	if _, err := Stylesheet(nil); !ferrors.Is(err, ferrors.ErrCodeEmptyInput) {
		t.Errorf("Stylesheet(nil) error = %v, want EMPTY_INPUT", err)
	}
}

func TestPreconnectTags(t *testing.T) {
	got := PreconnectTags()
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("PreconnectTags() returned %d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[0], APIOrigin) {
		t.Errorf("first hint = %q, want %s", lines[0], APIOrigin)
	}
	if !strings.Contains(lines[1], StaticOrigin) || !strings.HasSuffix(lines[1], "crossorigin>") {
		t.Errorf("second hint = %q, want crossorigin %s", lines[1], StaticOrigin)
	}
}
