package panel

import (
	"golang.org/x/net/html"

	"github.com/goliatone/go-cmsfields/pkg/dom"
	"github.com/goliatone/go-cmsfields/pkg/fieldset"
)

const (
	InputTypeText   = "text"
	InputTypeNumber = "number"
)

// GeneratedField references the nodes appended for one FieldSet entry.
type GeneratedField struct {
	Name    string
	Value   fieldset.Value
	Wrapper *html.Node
	Label   *html.Node
	Input   *html.Node
}

// InputType returns "number" for numeric values and "text" otherwise.
func (f GeneratedField) InputType() string {
	return inputType(f.Value)
}

// Generate appends, for every field in order, two line breaks, a div wrapping
// a label for the field, and an input bound to the field name. Nothing is
// appended for an empty set.
func Generate(set fieldset.FieldSet, container *html.Node, options ...Option) []GeneratedField {
	if container == nil {
		return nil
	}
	cfg := newConfig(options...)

	generated := make([]GeneratedField, 0, set.Len())
	set.Each(func(field fieldset.Field) bool {
		generated = append(generated, appendField(container, field, cfg.bindingAttribute))
		return true
	})
	return generated
}

func appendField(container *html.Node, field fieldset.Field, binding string) GeneratedField {
	name := field.Name

	label := dom.Element("label", html.Attribute{Key: "for", Val: name})
	label.AppendChild(dom.Text(name))
	wrapper := dom.Element("div")
	wrapper.AppendChild(label)

	attribute := binding
	if field.Value.IsNumber() {
		attribute += numberModifier
	}
	input := dom.Element("input",
		html.Attribute{Key: "type", Val: inputType(field.Value)},
		html.Attribute{Key: "id", Val: name},
		html.Attribute{Key: "name", Val: name},
		html.Attribute{Key: "placeholder", Val: name},
		html.Attribute{Key: attribute, Val: name},
	)

	container.AppendChild(dom.Element("br"))
	container.AppendChild(dom.Element("br"))
	container.AppendChild(wrapper)
	container.AppendChild(input)

	return GeneratedField{
		Name:    name,
		Value:   field.Value,
		Wrapper: wrapper,
		Label:   label,
		Input:   input,
	}
}

func inputType(value fieldset.Value) string {
	if value.IsNumber() {
		return InputTypeNumber
	}
	return InputTypeText
}
