package fonts

import (
	"strconv"
	"strings"

	ferrors "github.com/matzehuels/fontlink/pkg/errors"
)

// ParseFamily parses a family in CSS2 syntax:
//
//	Inter
//	Open+Sans:wght@400;700
//	Roboto:ital,wght@0,400;1,700
//
// A leading "family=" is tolerated and '+' in the name is read as a space,
// so Compile(ParseFamily(x)) reproduces x.
func ParseFamily(s string) (Family, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "family="))

	rawName, style, hasStyle := strings.Cut(s, ":")
	name := strings.TrimSpace(strings.ReplaceAll(rawName, "+", " "))
	if name == "" {
		return Family{}, ferrors.New(ferrors.ErrCodeInvalidName, "family %q: name is required", s)
	}
	f := Family{Name: name}
	if !hasStyle {
		return f, nil
	}

	axes, values, ok := strings.Cut(style, "@")
	if !ok {
		return Family{}, ferrors.New(ferrors.ErrCodeInvalidInput, "family %q: expected <axes>@<values>, got %q", name, style)
	}

	switch axes {
	case AttrWght:
		for i, tok := range strings.Split(values, ";") {
			tok = strings.TrimSpace(tok)
			if tok == "" {
				return Family{}, ferrors.New(ferrors.ErrCodeInvalidWeight, "family %q: weight %d is empty", name, i)
			}
			f.Weights = append(f.Weights, Weight(tok))
		}
	case AttrItal + "," + AttrWght:
		for i, tok := range strings.Split(values, ";") {
			p, err := parsePair(tok)
			if err != nil {
				return Family{}, ferrors.New(ferrors.ErrCodeInvalidItalicPair,
					"family %q: italic %d: %v", name, i, err)
			}
			f.Italics = append(f.Italics, p)
		}
	default:
		return Family{}, ferrors.UnknownAttribute(axes)
	}
	return f, nil
}

// ParseFamilies parses each entry with ParseFamily, stopping at the first
// error.
func ParseFamilies(ss []string) ([]Family, error) {
	if len(ss) == 0 {
		return nil, ferrors.New(ferrors.ErrCodeEmptyInput, "at least one font family is required")
	}
	out := make([]Family, 0, len(ss))
	for _, s := range ss {
		f, err := ParseFamily(s)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

func parsePair(tok string) (ItalicPair, error) {
	a, b, ok := strings.Cut(strings.TrimSpace(tok), ",")
	if !ok {
		return ItalicPair{}, strconv.ErrSyntax
	}
	ital, err := strconv.Atoi(a)
	if err != nil {
		return ItalicPair{}, err
	}
	wght, err := strconv.Atoi(b)
	if err != nil {
		return ItalicPair{}, err
	}
	if (ital != 0 && ital != 1) || wght < 0 {
		return ItalicPair{}, strconv.ErrRange
	}
	return ItalicPair{Ital: ital, Weight: wght}, nil
}
