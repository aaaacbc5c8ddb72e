package archive

import "errors"

var (
	// ErrInvalidHeader is returned when a blob is too short to hold a header
	// or its magic number doesn't match.
	ErrInvalidHeader = errors.New("archive: invalid header")

	// ErrUnsupportedVersion is returned when a header's version field isn't
	// one this package knows how to read.
	ErrUnsupportedVersion = errors.New("archive: unsupported version")

	// ErrEmptyName is returned by Put for an empty entry name.
	ErrEmptyName = errors.New("archive: entry name must not be empty")

	// ErrDuplicateName is returned by Put when the same name is written
	// twice to one Writer.
	ErrDuplicateName = errors.New("archive: duplicate entry name")

	// ErrTruncatedIndex is returned when the index or name section runs
	// past the end of the blob.
	ErrTruncatedIndex = errors.New("archive: truncated index")
)
