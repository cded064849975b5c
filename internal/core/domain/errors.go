package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidParameter indicates a misconfigured parameter such as a
	// non-positive chunk size, an overlap at or above the chunk size, or a
	// negative character budget. Callers must not retry with the same
	// parameters.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates no extractor handles the file type.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrDocumentLimit indicates the library is at its document cap.
	ErrDocumentLimit = errors.New("document limit reached")

	// ErrDocumentTooLarge indicates the extracted text exceeds the
	// estimated page limit.
	ErrDocumentTooLarge = errors.New("document too large")

	// ErrEmptyDocument indicates extraction produced no text.
	ErrEmptyDocument = errors.New("no text content extracted")

	// ErrLLMUnavailable indicates no language model service is configured.
	// Questions still return extractive context without generated answers.
	ErrLLMUnavailable = errors.New("LLM service unavailable")

	// ErrQuotaExceeded indicates the language model provider rejected the
	// request because the account quota or rate limit is exhausted.
	ErrQuotaExceeded = errors.New("quota exceeded")
)
