// Package fonts compiles font family requests into Google Fonts CSS2 URLs.
//
// A request is an ordered list of [Family] values. Each family names a font
// and optionally selects weights (the wght axis) or italic+weight pairs (the
// ital,wght axes). [Compile] renders the list as a single stylesheet URL:
//
//	url, err := fonts.Compile([]fonts.Family{
//	    fonts.NewFamily("Open Sans", fonts.WithWeights(400, 700)),
//	    fonts.NewFamily("Roboto", fonts.WithItalics(fonts.Upright(400), fonts.Italic(700))),
//	})
//	// https://fonts.googleapis.com/css2?family=Open+Sans:wght@400;700&family=Roboto:ital,wght@0,400;1,700&display=swap
//
// # Rendering Rules
//
// Spaces in family names become '+'. Nothing else is escaped or validated
// against the fonts the service actually hosts. When a family has italic
// pairs its plain weights are ignored. Families appear in input order and
// the URL always ends with a single "&display=swap".
//
// # Untyped Input
//
// [Decode] accepts the generic structures produced by JSON, YAML and TOML
// decoders and reports shape violations as coded errors from
// [github.com/matzehuels/fontlink/pkg/errors]. [ParseFamily] accepts the
// CSS2 family syntax itself ("Roboto:ital,wght@0,400;1,700").
//
// # Embedding
//
// [LinkTag] and [Stylesheet] wrap a URL in a <link rel="stylesheet"> element
// for direct inclusion in HTML.
//
// All functions are pure and safe for concurrent use.
package fonts
