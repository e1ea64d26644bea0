package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"go.yaml.in/yaml/v4"
)

// Marshal serializes the document in the given format. SourceFormatUnknown
// falls back to the document's own source format, so callers that want
// "same format out as in" can pass it directly.
func (d *Document) Marshal(format SourceFormat) ([]byte, error) {
	if format == SourceFormatUnknown {
		format = d.SourceFormat
	}
	switch format {
	case SourceFormatJSON:
		return d.MarshalJSONIndent()
	case SourceFormatYAML:
		return d.MarshalYAML()
	default:
		return nil, fmt.Errorf("document: cannot marshal to format %q", format)
	}
}

// MarshalYAML serializes the document as YAML with two-space indentation,
// keeping keys in tree order.
func (d *Document) MarshalYAML() ([]byte, error) {
	if d.Root == nil {
		return nil, fmt.Errorf("document: nil root node")
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(d.Root); err != nil {
		return nil, fmt.Errorf("document: encoding YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("document: encoding YAML: %w", err)
	}
	return buf.Bytes(), nil
}

// MarshalJSONIndent serializes the document as two-space indented JSON,
// keeping keys in tree order. Standard library JSON marshaling sorts map
// keys alphabetically, so the tree is written directly instead.
func (d *Document) MarshalJSONIndent() ([]byte, error) {
	if d.Root == nil {
		return nil, fmt.Errorf("document: nil root node")
	}

	var buf bytes.Buffer
	if err := writeNodeJSON(&buf, d.Root); err != nil {
		return nil, fmt.Errorf("document: encoding JSON: %w", err)
	}

	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", "  "); err != nil {
		return nil, fmt.Errorf("document: encoding JSON: %w", err)
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

// writeNodeJSON writes a node tree to buf as compact JSON, preserving key
// order. Mapping keys are always emitted as strings regardless of their
// YAML tag, matching how JSON represents integer-looking keys such as
// response status codes.
func writeNodeJSON(buf *bytes.Buffer, n *yaml.Node) error {
	n = Resolve(n)
	if n == nil {
		buf.WriteString("null")
		return nil
	}

	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			buf.WriteString("null")
			return nil
		}
		return writeNodeJSON(buf, n.Content[0])

	case yaml.MappingNode:
		buf.WriteByte('{')
		for i := 0; i+1 < len(n.Content); i += 2 {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(n.Content[i].Value)
			if err != nil {
				return err
			}
			buf.Write(key)
			buf.WriteByte(':')
			if err := writeNodeJSON(buf, n.Content[i+1]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil

	case yaml.SequenceNode:
		buf.WriteByte('[')
		for i, item := range n.Content {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeNodeJSON(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil

	case yaml.ScalarNode:
		return writeScalarJSON(buf, n)

	default:
		return fmt.Errorf("unsupported node kind %d", n.Kind)
	}
}

// writeScalarJSON writes a scalar node using its resolved tag. Values that
// have no JSON representation, such as YAML infinity, are written as
// strings rather than failing the whole document.
func writeScalarJSON(buf *bytes.Buffer, n *yaml.Node) error {
	quote := func(s string) error {
		data, err := json.Marshal(s)
		if err != nil {
			return err
		}
		buf.Write(data)
		return nil
	}

	switch n.Tag {
	case tagNull:
		buf.WriteString("null")
		return nil

	case tagBool:
		v, err := strconv.ParseBool(n.Value)
		if err != nil {
			return quote(n.Value)
		}
		buf.WriteString(strconv.FormatBool(v))
		return nil

	case tagInt:
		// Base 0 accepts the hex and octal forms the YAML resolver tags
		// as integers.
		if v, err := strconv.ParseInt(n.Value, 0, 64); err == nil {
			buf.WriteString(strconv.FormatInt(v, 10))
			return nil
		}
		if v, err := strconv.ParseUint(n.Value, 0, 64); err == nil {
			buf.WriteString(strconv.FormatUint(v, 10))
			return nil
		}
		return quote(n.Value)

	case tagFloat:
		v, err := strconv.ParseFloat(n.Value, 64)
		if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
			return quote(n.Value)
		}
		buf.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		return nil

	default:
		return quote(n.Value)
	}
}
