package dto

// CreateNewsRequest is bound from a multipart form; the cover image is the
// optional "image" file part.
type CreateNewsRequest struct {
	Title    string `form:"title" json:"title" binding:"required"`
	Category string `form:"category" json:"category" binding:"required"`
	Content  string `form:"content" json:"content" binding:"required"`
	Status   string `form:"status" json:"status"`
}

// UpdateNewsRequest only changes the fields that are present.
type UpdateNewsRequest struct {
	Title    *string `form:"title" json:"title"`
	Category *string `form:"category" json:"category"`
	Content  *string `form:"content" json:"content"`
	Status   *string `form:"status" json:"status"`
}

type ListNewsRequest struct {
	Category string `form:"category"`
}
