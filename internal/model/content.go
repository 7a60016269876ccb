package model

// UploadResult identifies stored content
type UploadResult struct {
	CID string `json:"cid"`
	URL string `json:"url"`
}

// FileDescriptor describes one uploaded file inside content metadata
type FileDescriptor struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Size int64  `json:"size"`
	CID  string `json:"cid"`
	URL  string `json:"url"`
}

// ContentMetadata is the JSON document whose CID is stored in the marketplace
type ContentMetadata struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	CreatedAt   string           `json:"createdAt"`
	Creator     string           `json:"creator"`
	Files       []FileDescriptor `json:"files"`
}

// PublishResponse represents response for POST /creators/{id}/content
type PublishResponse struct {
	MetadataCID string           `json:"metadataCid"`
	MetadataURL string           `json:"metadataUrl"`
	TxHash      string           `json:"txHash"`
	Files       []FileDescriptor `json:"files"`
}

// ContentResponse represents response for GET /creators/{id}/content
type ContentResponse struct {
	CID      string           `json:"cid,omitempty"`
	Metadata *ContentMetadata `json:"metadata,omitempty"`
}
