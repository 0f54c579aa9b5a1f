package dto

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type GoogleLoginInput struct {
	TokenID string `json:"tokenId" binding:"required"`
}

// UploadResponse is returned by the media endpoints
type UploadResponse struct {
	URL  string   `json:"url,omitempty"`
	URLs []string `json:"urls,omitempty"`
}
