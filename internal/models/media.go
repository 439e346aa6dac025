package models

import (
	"path/filepath"
	"strings"
	"time"
)

// MediaFile is the caption metadata row for an uploaded file. The uploads
// directory, not this table, is the source of truth for existence.
type MediaFile struct {
	Filename  string    `db:"filename"`
	Caption   string    `db:"caption"`
	CreatedAt time.Time `db:"created_at"`
}

// MediaTypeImage and MediaTypeVideo classify listings for the slider.
const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

var allowedMediaExtensions = map[string]string{
	".png":  MediaTypeImage,
	".jpg":  MediaTypeImage,
	".jpeg": MediaTypeImage,
	".gif":  MediaTypeImage,
	".mp4":  MediaTypeVideo,
	".avi":  MediaTypeVideo,
	".mov":  MediaTypeVideo,
}

// MediaTypeFor returns the listing type for a filename and whether its
// extension is allowed at all. Matching is case-insensitive.
func MediaTypeFor(filename string) (string, bool) {
	ext := strings.ToLower(filepath.Ext(filename))
	kind, ok := allowedMediaExtensions[ext]
	return kind, ok
}
