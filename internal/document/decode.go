package document

import (
	"slices"

	"gopkg.in/yaml.v3"

	foundation "git.home.luguber.info/inful/ghsummary/internal/foundation/errors"
	"git.home.luguber.info/inful/ghsummary/pkg/summary"
)

// item is one entry of the elements list: a mapping with a single key naming the element kind.
type item struct {
	el summary.Element
}

func (it *item) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode || len(node.Content) != 2 {
		return invalid(node, "element must be a mapping with exactly one key").Build()
	}
	kind, value := node.Content[0].Value, node.Content[1]

	var err error
	switch kind {
	case "heading":
		it.el, err = decodeHeading(value)
	case "text":
		it.el, err = decodeText(value)
	case "code":
		it.el, err = decodeCode(value)
	case "table":
		it.el, err = decodeTable(value)
	case "link":
		var l summary.Link
		if l, err = decodeLink(value); err == nil {
			it.el = summary.LinkLine{Link: l}
		}
	case "divider":
		it.el = summary.Divider{}
	case "blank":
		it.el = summary.BlankLine{}
	default:
		return invalid(node.Content[0], "unknown element kind").WithContext("element", kind).Build()
	}
	if classified, ok := foundation.AsClassified(err); ok {
		return classified.WithContext("element", kind)
	}
	return err
}

func decodeHeading(node *yaml.Node) (summary.Element, error) {
	if node.Kind == yaml.ScalarNode {
		return summary.Heading{Kind: summary.H1, Text: node.Value}, nil
	}
	var raw struct {
		Text string `yaml:"text"`
		Kind string `yaml:"kind"`
		ID   string `yaml:"id"`
	}
	if err := decodeMapping(node, &raw, "text", "kind", "id"); err != nil {
		return nil, err
	}
	kind, err := summary.ParseHeadingKind(raw.Kind)
	if err != nil {
		return nil, at(node, err)
	}
	return summary.Heading{Kind: kind, Text: raw.Text, ID: raw.ID}, nil
}

func decodeText(node *yaml.Node) (summary.Element, error) {
	t, err := decodeStyledText(node, "content")
	if err != nil {
		return nil, err
	}
	return summary.Paragraph{Content: t}, nil
}

// decodeStyledText accepts a scalar or a mapping whose text lives under contentKey.
func decodeStyledText(node *yaml.Node, contentKey string) (summary.Text, error) {
	if node.Kind == yaml.ScalarNode {
		return summary.Text{Content: node.Value}, nil
	}
	fields := map[string]string{}
	if err := decodeMapping(node, &fields, contentKey, "style", "id"); err != nil {
		return summary.Text{}, err
	}
	style, err := summary.ParseTextStyle(fields["style"])
	if err != nil {
		return summary.Text{}, at(node, err)
	}
	return summary.Text{Content: fields[contentKey], Style: style, ID: fields["id"]}, nil
}

func decodeCode(node *yaml.Node) (summary.Element, error) {
	if node.Kind == yaml.ScalarNode {
		return summary.CodeBlock{Code: node.Value}, nil
	}
	var raw struct {
		Code     string `yaml:"code"`
		Language string `yaml:"language"`
	}
	if err := decodeMapping(node, &raw, "code", "language"); err != nil {
		return nil, err
	}
	return summary.CodeBlock{Code: raw.Code, Language: raw.Language}, nil
}

func decodeTable(node *yaml.Node) (summary.Element, error) {
	if node.Kind != yaml.SequenceNode {
		return nil, invalid(node, "table must be a list of rows").Build()
	}
	rows := make([][]summary.Cell, 0, len(node.Content))
	for _, rowNode := range node.Content {
		if rowNode.Kind != yaml.SequenceNode {
			return nil, invalid(rowNode, "table row must be a list of cells").Build()
		}
		row := make([]summary.Cell, 0, len(rowNode.Content))
		for _, cellNode := range rowNode.Content {
			cell, err := decodeCell(cellNode)
			if err != nil {
				return nil, err
			}
			row = append(row, cell)
		}
		rows = append(rows, row)
	}
	return summary.Table{Rows: rows}, nil
}

// decodeCell maps scalars to Plain, {label, url} to Link and {text, style} to Text.
func decodeCell(node *yaml.Node) (summary.Cell, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			return summary.Plain(""), nil
		}
		return summary.Plain(node.Value), nil
	case yaml.MappingNode:
		if hasKey(node, "url") {
			return decodeLink(node)
		}
		return decodeStyledText(node, "text")
	}
	return nil, invalid(node, "table cell must be a scalar or a mapping").Build()
}

func decodeLink(node *yaml.Node) (summary.Link, error) {
	var raw struct {
		Label string `yaml:"label"`
		URL   string `yaml:"url"`
		Title string `yaml:"title"`
		Style string `yaml:"style"`
	}
	if err := decodeMapping(node, &raw, "label", "url", "title", "style"); err != nil {
		return summary.Link{}, err
	}
	style, err := summary.ParseTextStyle(raw.Style)
	if err != nil {
		return summary.Link{}, at(node, err)
	}
	return summary.Link{Label: raw.Label, URL: raw.URL, Title: raw.Title, Style: style}, nil
}

// decodeMapping rejects keys outside allowed before decoding node into out.
func decodeMapping(node *yaml.Node, out any, allowed ...string) error {
	if node.Kind != yaml.MappingNode {
		return invalid(node, "expected a mapping").Build()
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i]
		if !slices.Contains(allowed, key.Value) {
			return invalid(key, "unknown field").WithContext("field", key.Value).Build()
		}
	}
	if err := node.Decode(out); err != nil {
		return at(node, foundation.WrapError(err, foundation.CategoryValidation, "invalid field value").Build())
	}
	return nil
}

func hasKey(node *yaml.Node, key string) bool {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return true
		}
	}
	return false
}

func invalid(node *yaml.Node, message string) *foundation.ErrorBuilder {
	return foundation.ValidationError(message).
		WithContext("line", node.Line).
		WithContext("column", node.Column)
}

// at attaches the node position to a classified error.
func at(node *yaml.Node, err error) error {
	if classified, ok := foundation.AsClassified(err); ok {
		return classified.WithContext("line", node.Line).WithContext("column", node.Column)
	}
	return err
}
