// Package gojson decodes JSON into karyajson value trees using
// goccy/go-json as the scanning backend. It trades the root parser's
// character-level diagnostics for a byte-cursor fast path; the resulting
// trees are identical.
package gojson

import (
	"bytes"
	"errors"
	"io"

	j "github.com/goccy/go-json"

	karyajson "github.com/karya-io/karyajson"
)

// Parse reads one complete JSON value from data. Like karyajson.Parse it
// consumes the whole input; trailing non-whitespace input is an error.
func Parse(data []byte) (karyajson.Value, error) {
	return ParseReader(bytes.NewReader(data))
}

// ParseReader reads one complete JSON value from r.
func ParseReader(r io.Reader) (karyajson.Value, error) {
	dec := j.NewDecoder(r)
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &karyajson.ParseError{Code: karyajson.CodeInvalidJSON, Message: "unexpected end of input", Offset: -1}
		}
		return nil, &karyajson.ParseError{Code: karyajson.CodeInvalidJSON, Message: err.Error(), Offset: -1}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, &karyajson.ParseError{Code: karyajson.CodeInvalidJSON, Message: "unexpected trailing characters", Offset: -1}
	}
	return karyajson.FromAny(raw)
}
