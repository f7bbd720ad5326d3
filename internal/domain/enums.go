package domain

import (
	"fmt"
	"strings"
)

// DocumentClass identifies one of the supported document types.
type DocumentClass string

const (
	ClassCNIC     DocumentClass = "cnic"
	ClassDomicile DocumentClass = "domicile"
	ClassPHC      DocumentClass = "phc"
	ClassPMDC     DocumentClass = "pmdc"
)

// DocumentClasses lists every supported class in registry order.
// Detection ties are broken by this order.
var DocumentClasses = []DocumentClass{ClassCNIC, ClassDomicile, ClassPHC, ClassPMDC}

// ParseDocumentClass resolves a case-insensitive class name.
func ParseDocumentClass(s string) (DocumentClass, error) {
	c := DocumentClass(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range DocumentClasses {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDocumentClass, s)
}

// RecordSource tells which extraction path produced a record.
type RecordSource string

const (
	SourcePrimary  RecordSource = "primary"
	SourceFallback RecordSource = "fallback"
)

// AllowedImageTypes maps accepted upload MIME types, as sniffed from the
// leading bytes, to a file extension.
var AllowedImageTypes = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/gif":  "gif",
	"image/webp": "webp",
	"image/bmp":  "bmp",
}
