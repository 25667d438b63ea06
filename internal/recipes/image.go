package recipes

import (
	pkgerrors "github.com/angelmondragon/nutritrack-backend/pkg/errors"
	"github.com/gabriel-vasile/mimetype"
)

var allowedImageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/gif":  {},
	"image/webp": {},
}

// sniffImage detects the content type from the file bytes themselves and
// returns the canonical extension for it. The client-declared content type
// is never trusted.
func sniffImage(data []byte) (ext string, err error) {
	if len(data) == 0 {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "invalid image payload").
			WithDetails(map[string]string{"image": "no file was submitted"})
	}
	mtype := mimetype.Detect(data)
	if _, ok := allowedImageTypes[mtype.String()]; !ok {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "invalid image payload").
			WithDetails(map[string]string{"image": "upload a valid image; the file is not an image or is unsupported"})
	}
	return mtype.Extension(), nil
}
