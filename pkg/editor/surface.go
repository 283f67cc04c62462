package editor

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/editkit/editkit/internal/logger"
)

// ExtractSurface returns the editable markup inside raw. Hosts
// sometimes hand the editor a full document (a saved page, a paste
// from another application); the content to edit is the body. Bare
// fragments come back unchanged, since the parser places them in an
// implicit body.
func ExtractSurface(raw string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		logger.Warn("surface extraction failed, using raw markup", "error", err)
		return raw
	}
	inner, err := doc.Find("body").Html()
	if err != nil {
		logger.Warn("surface extraction failed, using raw markup", "error", err)
		return raw
	}
	return inner
}
