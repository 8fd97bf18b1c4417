package fonts

import (
	"bytes"
	"encoding/xml"
	"fmt"
)

const (
	// APIOrigin serves the CSS; StaticOrigin serves the font files it references.
	APIOrigin    = "https://fonts.googleapis.com"
	StaticOrigin = "https://fonts.gstatic.com"
)

// LinkTag wraps url in a stylesheet <link> element. The URL is escaped for
// use inside a double-quoted attribute.
func LinkTag(url string) string {
	return fmt.Sprintf(`<link rel="stylesheet" href="%s">`, escapeAttr(url))
}

// Stylesheet compiles families and returns the <link> element for them.
func Stylesheet(families []Family) (string, error) {
	url, err := Compile(families)
	if err != nil {
		return "", err
	}
	return LinkTag(url), nil
}

// PreconnectTags returns the preconnect hints for both font origins, one per
// line. They belong before the stylesheet link.
func PreconnectTags() string {
	return fmt.Sprintf("<link rel=\"preconnect\" href=\"%s\">\n<link rel=\"preconnect\" href=\"%s\" crossorigin>",
		APIOrigin, StaticOrigin)
}

func escapeAttr(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
