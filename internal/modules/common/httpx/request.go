package httpx

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
)

// OptionalFormFile returns the named file part, or nil when the request has
// none. Any other multipart error is returned.
func OptionalFormFile(c *gin.Context, field string) (*multipart.FileHeader, error) {
	file, err := c.FormFile(field)
	if err == nil {
		return file, nil
	}
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nil
	}
	return nil, err
}

// WriteResult writes data with the warnings of an asset operation, if any.
func WriteResult(c *gin.Context, status int, message string, data any, warnings []string) {
	body := gin.H{"message": message, "data": data}
	if len(warnings) > 0 {
		body["warnings"] = warnings
	}
	c.JSON(status, body)
}
