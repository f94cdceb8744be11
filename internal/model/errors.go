package model

import "errors"

var (
	// ErrMalformedTimestamp marks a header line whose date or time components
	// could not be interpreted. The line is consumed and surfaced as a
	// warning; the parser never aborts mid-transcript.
	ErrMalformedTimestamp = errors.New("malformed timestamp")

	// ErrChatFileNotFound aborts a batch run before any side effects.
	ErrChatFileNotFound = errors.New("chat file not found")

	// ErrMediaNotFound means the local file behind a media marker is missing.
	// Non-fatal: the record gets a failure placeholder and the run continues.
	ErrMediaNotFound = errors.New("media file not found")

	// ErrMediaUploadFailed means the blob store rejected the object.
	// Non-fatal, same placeholder handling as ErrMediaNotFound.
	ErrMediaUploadFailed = errors.New("media upload failed")

	// ErrBulkInsertFailed is fatal for the run; no partial commit is attempted.
	ErrBulkInsertFailed = errors.New("bulk insert failed")
)
