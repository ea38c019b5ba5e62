package dto

// CreateGalleryRequest is bound from a multipart form; the "image" file part is required.
type CreateGalleryRequest struct {
	Title    string `form:"title" json:"title" binding:"required"`
	Category string `form:"category" json:"category" binding:"required"`
}

type UpdateGalleryRequest struct {
	Title    *string `form:"title" json:"title"`
	Category *string `form:"category" json:"category"`
}

type ListGalleryRequest struct {
	Category string `form:"category"`
}
