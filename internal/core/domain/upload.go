package domain

// Upload represents opaque bytes received from the user before extraction.
type Upload struct {
	// Name is the original file name.
	Name string

	// MIMEType is the content type (e.g., "application/pdf").
	MIMEType string

	// Content is the raw bytes.
	Content []byte
}
