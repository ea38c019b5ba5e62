package dto

// PreviewResponse describes an image as it would be stored after upload.
type PreviewResponse struct {
	Filename     string `json:"filename"`
	MimeType     string `json:"mime_type"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	Size         int64  `json:"size"`
	ReadableSize string `json:"readable_size"`
	OriginalSize int64  `json:"original_size"`
	Normalized   bool   `json:"normalized"`
	Quality      int    `json:"quality,omitempty"`
	Attempts     int    `json:"attempts,omitempty"`
	// Data is the prepared image as base64, ready for a data URL.
	Data string `json:"data"`
}
