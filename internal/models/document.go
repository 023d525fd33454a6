package models

// UploadResponse is returned by the document upload endpoint.
type UploadResponse struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
}
