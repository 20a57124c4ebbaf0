package karyajson

import (
	"errors"
	"fmt"
)

// Read-path issue codes (exported consts for IDE completion and type
// safety by convention).
const (
	CodeInvalidJSON = "invalid_json"
	CodeMaxDepth    = "max_depth"
	// Reserved for a typed deserialization layer; Parse never produces
	// these (nor CodeInvalidValue below, which belongs to both
	// taxonomies).
	CodeMissingField = "missing_field"
	CodeTypeMismatch = "type_mismatch"
)

// Write-path issue codes. Marshal is total and never produces them; they
// surface from validating constructors such as FromAny and are otherwise
// reserved for a future validating writer. CodeInvalidValue is shared:
// it is also a reserved read-path kind.
const (
	CodeInvalidType      = "invalid_type"
	CodeInvalidValue     = "invalid_value"
	CodeInvalidStructure = "invalid_structure"
)

// ParseError reports a lexical or structural failure while reading JSON.
type ParseError struct {
	Code    string // One of the read-path codes above.
	Message string
	Offset  int // Rune offset into the input (-1 when unknown).
}

func (e *ParseError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("%s: %s (at %d)", e.Code, e.Message, e.Offset)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// AsParseError extracts a *ParseError from an error using errors.As
// internally.
func AsParseError(err error) (*ParseError, bool) {
	if err == nil {
		return nil, false
	}
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// SerializeError reports a failure on the write side. The structural
// printer has no error path; these surface from validating entry points
// like FromAny.
type SerializeError struct {
	Code    string // One of the write-path codes above.
	Message string
}

func (e *SerializeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// AsSerializeError extracts a *SerializeError from an error using
// errors.As internally.
func AsSerializeError(err error) (*SerializeError, bool) {
	if err == nil {
		return nil, false
	}
	var se *SerializeError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}
