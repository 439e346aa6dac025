package dto

// MediaItem is one entry of the public media listing.
type MediaItem struct {
	Name    string `json:"name"`
	URL     string `json:"url"`
	Caption string `json:"caption"`
	Type    string `json:"type"`
}

// UpdateCaptionRequest upserts the caption of an uploaded file.
type UpdateCaptionRequest struct {
	Filename string `json:"filename" validate:"required"`
	Caption  string `json:"caption"`
}

// DeleteFileRequest names the file to remove.
type DeleteFileRequest struct {
	Filename string `json:"filename" validate:"required"`
}

// MediaEvent is the realtime payload for mediaChanged broadcasts.
type MediaEvent struct {
	Action   string `json:"action"`
	Filename string `json:"filename"`
}
