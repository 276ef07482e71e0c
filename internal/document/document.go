package document

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/htmlbuilder/internal/errors"
	"github.com/vango-dev/htmlbuilder/pkg/vdom"
)

// Format identifies a description encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatOf returns the format implied by the file extension of path.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", errors.New(errors.CodeDocumentFormat).
		WithDetailf("%q has no recognised extension", path).
		WithSuggestion("Use .json, .yaml or .yml")
}

// Load reads and decodes the description at path.
func Load(path string) (*vdom.Element, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New(errors.CodeDocumentRead).WithDetail(path).Wrap(err)
	}
	return Decode(data, format, path)
}

// Decode decodes a description. JSON is decoded as the YAML subset it is,
// so both formats report line and column positions. file is used only for
// error locations and may be empty.
func Decode(data []byte, format Format, file string) (*vdom.Element, error) {
	if format != FormatJSON && format != FormatYAML {
		return nil, errors.New(errors.CodeDocumentFormat).WithDetailf("unsupported format %q", format)
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, errors.New(errors.CodeDocumentMalformed).WithDetail(err.Error()).Wrap(err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, errors.New(errors.CodeDocumentMalformed).WithDetail("document is empty")
	}

	d := &decoder{file: file}
	node := root.Content[0]
	if node.Kind != yaml.MappingNode {
		return nil, d.malformed(node, "the root must be an element mapping")
	}
	return d.element(node)
}

type decoder struct {
	file string
}

func (d *decoder) locate(e *errors.BuildError, n *yaml.Node) *errors.BuildError {
	return e.WithLocation(d.file, n.Line, n.Column)
}

func (d *decoder) malformed(n *yaml.Node, format string, args ...any) error {
	return d.locate(errors.New(errors.CodeDocumentMalformed).WithDetailf(format, args...), n)
}

// element decodes a mapping node into an element.
func (d *decoder) element(n *yaml.Node) (*vdom.Element, error) {
	var (
		tag         string
		selfClosing bool
		attrs       []vdom.Attribute
		content     []any
	)

	for i := 0; i+1 < len(n.Content); i += 2 {
		key, value := n.Content[i], n.Content[i+1]
		var err error
		switch key.Value {
		case "tag":
			if value.Kind != yaml.ScalarNode || strings.TrimSpace(value.Value) == "" {
				return nil, d.malformed(value, "tag must be a non-empty string")
			}
			tag = value.Value
		case "selfClosing":
			if err := value.Decode(&selfClosing); err != nil {
				return nil, d.malformed(value, "selfClosing must be a boolean")
			}
		case "attrs":
			attrs, err = d.attributes(value, attrs)
		case "style":
			attrs, err = d.style(value, attrs)
		case "class":
			attrs, err = d.class(value, attrs)
		case "data":
			attrs, err = d.data(value, attrs)
		case "children":
			content, err = d.children(value)
		default:
			return nil, d.malformed(key, "unknown key %q", key.Value)
		}
		if err != nil {
			return nil, err
		}
	}

	if tag == "" {
		return nil, d.malformed(n, "element has no tag")
	}

	var (
		e   *vdom.Element
		err error
	)
	if kind, ok := vdom.KindByName(tag); ok {
		e, err = vdom.New(kind, attrs, content...)
	} else {
		e, err = vdom.NewCustom(tag, selfClosing, attrs, content...)
	}
	if err != nil {
		var be *errors.BuildError
		if stderrors.As(err, &be) {
			return nil, d.locate(be, n)
		}
		return nil, err
	}
	return e, nil
}

func (d *decoder) children(n *yaml.Node) ([]any, error) {
	if n.Kind != yaml.SequenceNode {
		return nil, d.malformed(n, "children must be a list")
	}
	out := make([]any, 0, len(n.Content))
	for _, c := range n.Content {
		item, err := d.child(c)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func (d *decoder) child(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		if n.ShortTag() == "!!null" {
			// Passed through so vdom reports it as an invalid child.
			return nil, nil
		}
		return n.Value, nil
	case yaml.MappingNode:
		return d.element(n)
	case yaml.SequenceNode:
		return d.children(n)
	case yaml.AliasNode:
		return d.child(n.Alias)
	}
	return nil, d.malformed(n, "unsupported child")
}

// attributes accepts a mapping of name to value or a list of {name, value}.
func (d *decoder) attributes(n *yaml.Node, attrs []vdom.Attribute) ([]vdom.Attribute, error) {
	switch n.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(n.Content); i += 2 {
			a, err := d.attribute(n.Content[i], n.Content[i].Value, n.Content[i+1])
			if err != nil {
				return nil, err
			}
			attrs = append(attrs, a)
		}
		return attrs, nil
	case yaml.SequenceNode:
		for _, item := range n.Content {
			if item.Kind != yaml.MappingNode {
				return nil, d.malformed(item, "attribute entries must be {name, value} mappings")
			}
			var name, value *yaml.Node
			for i := 0; i+1 < len(item.Content); i += 2 {
				switch item.Content[i].Value {
				case "name":
					name = item.Content[i+1]
				case "value":
					value = item.Content[i+1]
				default:
					return nil, d.malformed(item.Content[i], "unknown attribute key %q", item.Content[i].Value)
				}
			}
			if name == nil || value == nil {
				return nil, d.malformed(item, "attribute entries need both name and value")
			}
			a, err := d.attribute(name, name.Value, value)
			if err != nil {
				return nil, err
			}
			attrs = append(attrs, a)
		}
		return attrs, nil
	}
	return nil, d.malformed(n, "attrs must be a mapping or a list")
}

func (d *decoder) attribute(at *yaml.Node, name string, value *yaml.Node) (vdom.Attribute, error) {
	if value.Kind != yaml.ScalarNode {
		return nil, d.malformed(value, "attribute %q must have a scalar value", name)
	}
	if kind, ok := vdom.AttrKindByName(name); ok {
		return vdom.NewAttr(kind, value.Value), nil
	}
	if suffix, ok := strings.CutPrefix(strings.ToLower(name), "data-"); ok && suffix != "" {
		return vdom.NewData(suffix, value.Value), nil
	}
	return nil, d.locate(errors.New(errors.CodeUnknownAttribute).
		WithDetailf("%q is not a known attribute", name).
		WithSuggestion("Run 'htmlbuilder tags --attributes' to list attribute names"), at)
}

// style accepts a CSS string or an ordered mapping of properties.
func (d *decoder) style(n *yaml.Node, attrs []vdom.Attribute) ([]vdom.Attribute, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		return append(attrs, vdom.NewStyle(n.Value)), nil
	case yaml.MappingNode:
		kv, err := d.pairs(n)
		if err != nil {
			return nil, err
		}
		return append(attrs, vdom.NewStyleProps(vdom.Props(kv...))), nil
	}
	return nil, d.malformed(n, "style must be a string or a mapping")
}

// class accepts a space separated string or a list of tokens.
func (d *decoder) class(n *yaml.Node, attrs []vdom.Attribute) ([]vdom.Attribute, error) {
	var tokens []string
	switch n.Kind {
	case yaml.ScalarNode:
		tokens = strings.Fields(n.Value)
	case yaml.SequenceNode:
		if err := n.Decode(&tokens); err != nil {
			return nil, d.malformed(n, "class entries must be strings")
		}
	default:
		return nil, d.malformed(n, "class must be a string or a list")
	}
	return append(attrs, vdom.NewClassList(tokens...)), nil
}

func (d *decoder) data(n *yaml.Node, attrs []vdom.Attribute) ([]vdom.Attribute, error) {
	if n.Kind != yaml.MappingNode {
		return nil, d.malformed(n, "data must be a mapping")
	}
	kv, err := d.pairs(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < len(kv); i += 2 {
		attrs = append(attrs, vdom.NewData(kv[i], kv[i+1]))
	}
	return attrs, nil
}

// pairs flattens a mapping of scalars into key, value, key, value...
func (d *decoder) pairs(n *yaml.Node) ([]string, error) {
	kv := make([]string, 0, len(n.Content))
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if v.Kind != yaml.ScalarNode {
			return nil, d.malformed(v, "%q must have a scalar value", k.Value)
		}
		kv = append(kv, k.Value, v.Value)
	}
	return kv, nil
}
