package errs

import "fmt"

// DecodeError carries structured context around one of the sentinel errors:
// which kind of failure occurred, the offending Type Tag if one was read,
// and the byte offset at which the failure was detected.
type DecodeError struct {
	Kind    error
	Tag     byte
	HasTag  bool
	Offset  int
	Message string
}

func (e *DecodeError) Error() string {
	if e.HasTag {
		return fmt.Sprintf("%s: tag=0x%02x offset=%d: %s", e.Kind, e.Tag, e.Offset, e.Message)
	}

	return fmt.Sprintf("%s: offset=%d: %s", e.Kind, e.Offset, e.Message)
}

func (e *DecodeError) Unwrap() error {
	return e.Kind
}

// Truncated builds a DecodeError wrapping ErrTruncated at the given offset.
func Truncated(offset int, message string) error {
	return &DecodeError{Kind: ErrTruncated, Offset: offset, Message: message}
}

// IncompatibleBinary builds a DecodeError wrapping ErrIncompatibleBinary,
// recording the offending tag.
func IncompatibleBinary(tag byte, offset int, message string) error {
	return &DecodeError{Kind: ErrIncompatibleBinary, Tag: tag, HasTag: true, Offset: offset, Message: message}
}

// InvalidType builds a DecodeError wrapping ErrInvalidType.
func InvalidType(message string) error {
	return &DecodeError{Kind: ErrInvalidType, Message: message}
}

// MissingRequiredField builds a DecodeError wrapping ErrMissingRequiredField
// for the named field.
func MissingRequiredField(field string) error {
	return &DecodeError{Kind: ErrMissingRequiredField, Message: fmt.Sprintf("field %q", field)}
}

// InvalidConfiguration builds a DecodeError wrapping ErrInvalidConfiguration.
func InvalidConfiguration(message string) error {
	return &DecodeError{Kind: ErrInvalidConfiguration, Message: message}
}
