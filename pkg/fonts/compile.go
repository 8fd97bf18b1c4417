package fonts

import (
	"strings"

	ferrors "github.com/matzehuels/fontlink/pkg/errors"
)

const (
	// BaseURL is the Google Fonts CSS2 endpoint.
	BaseURL = "https://fonts.googleapis.com/css2"

	// DisplaySwap is appended exactly once to every compiled URL.
	DisplaySwap = "display=swap"
)

// Compile renders families as a Google Fonts CSS2 URL.
//
// The whole request fails on the first invalid family; no partial URL is
// ever returned.
func Compile(families []Family) (string, error) {
	if len(families) == 0 {
		return "", ferrors.New(ferrors.ErrCodeEmptyInput, "at least one font family is required")
	}

	fragments := make([]string, len(families))
	for i, f := range families {
		frag, err := fragment(i, f)
		if err != nil {
			return "", err
		}
		fragments[i] = frag
	}

	var b strings.Builder
	b.WriteString(BaseURL)
	b.WriteByte('?')
	b.WriteString(strings.Join(fragments, "&"))
	b.WriteByte('&')
	b.WriteString(DisplaySwap)
	return b.String(), nil
}

// Fragment renders a single family as its "family=..." query segment.
func Fragment(f Family) (string, error) {
	return fragment(0, f)
}

// Style returns the style fragment for f: "ital,wght@..." when italic pairs
// are present, "wght@..." when only weights are, and "" otherwise.
// Style does not validate f.
func Style(f Family) string {
	switch {
	case len(f.Italics) > 0:
		pairs := make([]string, len(f.Italics))
		for i, p := range f.Italics {
			pairs[i] = p.String()
		}
		return "ital,wght@" + strings.Join(pairs, ";")
	case len(f.Weights) > 0:
		ws := make([]string, len(f.Weights))
		for i, w := range f.Weights {
			ws[i] = string(w)
		}
		return "wght@" + strings.Join(ws, ";")
	default:
		return ""
	}
}

// EncodeName replaces spaces with '+'. No other characters are touched.
func EncodeName(name string) string {
	return strings.ReplaceAll(name, " ", "+")
}

func fragment(idx int, f Family) (string, error) {
	if err := validate(idx, f); err != nil {
		return "", err
	}
	name := EncodeName(f.Name)
	if style := Style(f); style != "" {
		return "family=" + name + ":" + style, nil
	}
	return "family=" + name, nil
}

func validate(idx int, f Family) error {
	if f.Name == "" {
		return ferrors.New(ferrors.ErrCodeInvalidName, "family %d: name is required", idx)
	}
	if len(f.Italics) > 0 {
		for j, p := range f.Italics {
			if p.Ital != 0 && p.Ital != 1 {
				return ferrors.New(ferrors.ErrCodeInvalidItalicPair,
					"family %q: italic pair %d: ital must be 0 or 1, got %d", f.Name, j, p.Ital)
			}
			if p.Weight < 0 {
				return ferrors.New(ferrors.ErrCodeInvalidItalicPair,
					"family %q: italic pair %d: negative weight %d", f.Name, j, p.Weight)
			}
		}
		// weights are ignored in this branch
		return nil
	}
	for j, w := range f.Weights {
		if w == "" {
			return ferrors.New(ferrors.ErrCodeInvalidWeight, "family %q: weight %d is empty", f.Name, j)
		}
	}
	return nil
}
