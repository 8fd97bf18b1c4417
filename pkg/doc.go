// Package pkg provides the libraries behind fontlink.
//
// # Overview
//
// fontlink compiles an ordered list of font family requests into a single
// Google Fonts CSS2 stylesheet URL. The pkg directory is organized as:
//
//  1. [fonts] - Domain logic (family model, Compile, Decode, ParseFamily, link tags)
//  2. [manifest] - fonts.toml / fonts.yaml / fonts.json loading
//  3. [server] - HTTP front end
//  4. [errors] - Coded errors shared by every layer
//  5. [observability] - Hooks for compile and HTTP events
//  6. [buildinfo] - Version information set at build time
//
// # Architecture
//
//	manifest file / CSS2 arguments / HTTP request
//	         ↓
//	    [manifest] or [fonts.ParseFamily] (untyped input → []fonts.Family)
//	         ↓
//	    [fonts.Compile] (families → URL)
//	         ↓
//	    URL or <link> tag
//
// # Quick Start
//
//	url, err := fonts.Compile([]fonts.Family{
//	    fonts.NewFamily("Open Sans", fonts.WithWeights(400, 700)),
//	    fonts.NewFamily("Roboto", fonts.WithItalics(fonts.Upright(400), fonts.Italic(700))),
//	})
//	// https://fonts.googleapis.com/css2?family=Open+Sans:wght@400;700&family=Roboto:ital,wght@0,400;1,700&display=swap
//
// [fonts]: github.com/matzehuels/fontlink/pkg/fonts
// [fonts.ParseFamily]: github.com/matzehuels/fontlink/pkg/fonts
// [fonts.Compile]: github.com/matzehuels/fontlink/pkg/fonts
// [manifest]: github.com/matzehuels/fontlink/pkg/manifest
// [server]: github.com/matzehuels/fontlink/pkg/server
// [errors]: github.com/matzehuels/fontlink/pkg/errors
// [observability]: github.com/matzehuels/fontlink/pkg/observability
// [buildinfo]: github.com/matzehuels/fontlink/pkg/buildinfo
package pkg
