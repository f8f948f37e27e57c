package dish

import (
	"errors"
	"path/filepath"
	"strings"
)

var allowedPhotoExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

func ValidatePhotoExtension(filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))

	if ext == "" {
		return errors.New("file extension missing")
	}

	if !allowedPhotoExt[ext] {
		return errors.New("file type not allowed")
	}

	return nil
}
