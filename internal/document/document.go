// Package document reads the YAML description of a summary that the CLI turns
// into builder calls.
//
//	elements:
//	  - heading: Test Results
//	  - code: {code: 'console.log("hi")', language: js}
//	  - table:
//	      - [File, Status]
//	      - [foo.js, {text: Pass, style: bold}]
//	  - link: {label: Report, url: "https://x/y"}
//	  - divider: {}
package document

import (
	"bytes"
	"errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	foundation "git.home.luguber.info/inful/ghsummary/internal/foundation/errors"
	"git.home.luguber.info/inful/ghsummary/pkg/summary"
)

// Document is an ordered list of summary elements.
type Document struct {
	Elements []summary.Element
}

type rawDocument struct {
	Elements []item `yaml:"elements"`
}

// Load reads a document from a file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, foundation.FileSystemError("failed to read document").
			WithCause(err).
			WithContext("path", path).
			Build()
	}
	doc, err := Parse(data)
	if err != nil {
		if classified, ok := foundation.AsClassified(err); ok {
			return nil, classified.WithContext("path", path)
		}
		return nil, err
	}
	return doc, nil
}

// Read reads a document from r, e.g. standard input.
func Read(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, foundation.FileSystemError("failed to read document").
			WithCause(err).
			Build()
	}
	return Parse(data)
}

// Parse decodes YAML. Unknown top-level keys are rejected.
func Parse(data []byte) (*Document, error) {
	var raw rawDocument
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		if foundation.IsClassified(err) {
			return nil, err
		}
		return nil, foundation.WrapError(err, foundation.CategoryValidation, "invalid document").Build()
	}

	doc := &Document{Elements: make([]summary.Element, 0, len(raw.Elements))}
	for _, it := range raw.Elements {
		doc.Elements = append(doc.Elements, it.el)
	}
	return doc, nil
}

// Apply appends every element to s and returns s.
func (d *Document) Apply(s *summary.Summary) *summary.Summary {
	for _, el := range d.Elements {
		s.Append(el)
	}
	return s
}

// Summary returns a new Summary holding the document's elements.
func (d *Document) Summary() *summary.Summary {
	return d.Apply(summary.New())
}
