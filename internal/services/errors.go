package services

import "errors"

// One sentinel per failure kind. Every error leaving a service wraps exactly
// one of these so the handler can match with errors.Is.
var (
	// ErrInvalidInput covers inputs rejected before the pipeline runs
	// (missing or too-short resume/job description text).
	ErrInvalidInput = errors.New("invalid input")

	// ErrExtraction covers unreadable, encrypted, or text-free PDFs.
	ErrExtraction = errors.New("could not extract text from document")

	// ErrAuth means the inference endpoint rejected the configured credential.
	ErrAuth = errors.New("inference endpoint rejected credentials")

	// ErrTransport covers network failures, timeouts, and any endpoint
	// failure that is not an auth or throttling signal.
	ErrTransport = errors.New("inference endpoint unreachable")

	// ErrRateLimit means the inference endpoint signalled throttling.
	ErrRateLimit = errors.New("inference endpoint throttled the request")

	// ErrMalformedResponse means no parseable JSON object was found in the
	// model completion.
	ErrMalformedResponse = errors.New("no parseable JSON object in model response")

	// ErrSchemaViolation means a JSON object was found but a mandatory field
	// was missing or mistyped.
	ErrSchemaViolation = errors.New("model response violates the result schema")
)
