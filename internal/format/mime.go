package format

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// UnknownType is returned for MIME strings without a subtype.
const UnknownType = "Unknown type"

var builtinMimeTypes = map[string]string{
	// images
	"image/jpeg":    "JPEG image",
	"image/jpg":     "JPEG image",
	"image/png":     "PNG image",
	"image/bmp":     "Bitmap image",
	"image/gif":     "GIF image",
	"image/svg+xml": "SVG image",
	"image/tiff":    "TIFF image",
	// music
	"audio/mpeg":      "MP3 music file",
	"application/ogg": "OGG music file",
	// folders
	"inode/directory": "Folder",
}

// MimeTable maps MIME types to human-readable labels. The zero value has no
// entries and only applies the fallback rule. A MimeTable is never modified
// after construction and is safe for concurrent use.
type MimeTable struct {
	labels map[string]string
}

// DefaultMimeTable holds the built-in labels.
var DefaultMimeTable = NewMimeTable(nil)

// NewMimeTable returns a table with the built-in labels plus extra.
// Entries in extra override built-in ones.
func NewMimeTable(extra map[string]string) MimeTable {
	labels := make(map[string]string, len(builtinMimeTypes)+len(extra))
	for k, v := range builtinMimeTypes {
		labels[k] = v
	}
	for k, v := range extra {
		labels[k] = v
	}
	return MimeTable{labels: labels}
}

// Len returns the number of labelled MIME types.
func (t MimeTable) Len() int {
	return len(t.labels)
}

// Label returns the stored label for mime, if any.
func (t MimeTable) Label(mime string) (string, bool) {
	label, ok := t.labels[mime]
	return label, ok
}

// Prettify converts MIME types like "image/webp" to labels like "WEBP file".
func (t MimeTable) Prettify(mime string) string {
	if label, ok := t.labels[mime]; ok {
		return label
	}
	if parts := splitFields(mime, "/"); len(parts) >= 2 {
		return cases.Upper(language.Und).String(parts[1]) + " file"
	}
	return UnknownType
}

// PrettyMIME prettifies mime using DefaultMimeTable.
func PrettyMIME(mime string) string {
	return DefaultMimeTable.Prettify(mime)
}

// splitFields splits s around sep and drops trailing empty fields, so
// "image/" yields one field and "/" yields none.
func splitFields(s, sep string) []string {
	parts := strings.Split(s, sep)
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}
