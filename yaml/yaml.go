// Package yaml ingests YAML documents into karyajson value trees, giving
// YAML sources the same generic representation as parsed JSON.
package yaml

import (
	"bytes"
	"errors"
	"io"

	yamlv3 "gopkg.in/yaml.v3"

	karyajson "github.com/karya-io/karyajson"
)

// Parse decodes the first YAML document in data into a value tree.
func Parse(data []byte) (karyajson.Value, error) {
	dec := yamlv3.NewDecoder(bytes.NewReader(data))
	var node any
	if err := dec.Decode(&node); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &karyajson.ParseError{Code: karyajson.CodeInvalidJSON, Message: "unexpected end of input", Offset: -1}
		}
		return nil, &karyajson.ParseError{Code: karyajson.CodeInvalidJSON, Message: err.Error(), Offset: -1}
	}
	return karyajson.FromAny(node)
}

// ParseAll decodes every document in a multi-document YAML stream.
func ParseAll(data []byte) ([]karyajson.Value, error) {
	dec := yamlv3.NewDecoder(bytes.NewReader(data))
	var out []karyajson.Value
	for {
		var node any
		if err := dec.Decode(&node); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, &karyajson.ParseError{Code: karyajson.CodeInvalidJSON, Message: err.Error(), Offset: -1}
		}
		v, err := karyajson.FromAny(node)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
