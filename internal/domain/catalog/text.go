package catalog

import (
	"path"
	"regexp"
	"strings"
)

var bracketed = regexp.MustCompile(`\([^)]*\)`)

var repeatedSpace = regexp.MustCompile(`\s{2,}`)

// HideBrackets removes every parenthesised fragment from a product title,
// e.g. "Шолом FAST (олива) L" becomes "Шолом FAST L".
func HideBrackets(s string) string {
	out := bracketed.ReplaceAllString(s, "")
	out = repeatedSpace.ReplaceAllString(out, " ")
	return strings.TrimSpace(out)
}

// UploadPath builds the object key for an uploaded media file:
// "<kind>_<slug of owner name>/<file name>".
func UploadPath(kind, ownerName, filename string) string {
	base := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	if base == "." || base == "/" {
		base = ""
	}
	return strings.ToLower(kind) + "_" + Slugify(ownerName) + "/" + base
}
