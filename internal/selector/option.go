package selector

import "golang.org/x/net/html"

// Option is one selectable element. Identity (index, value) and the
// disabled flag are fixed at build time; selection lives in the Widget.
type Option struct {
	index    int
	value    string
	label    string
	disabled bool
	tabIndex int
	node     *html.Node
}

// Index returns the position of the option in document order.
func (o *Option) Index() int { return o.index }

// Value returns the option attribute value.
func (o *Option) Value() string { return o.value }

// Label returns the option text, or the value when the text is empty.
func (o *Option) Label() string { return o.label }

// Disabled reports whether the option carried the disabled attribute at build.
func (o *Option) Disabled() bool { return o.disabled }

// TabIndex returns the tabindex last written by the widget.
func (o *Option) TabIndex() int { return o.tabIndex }

// Node returns the option element.
func (o *Option) Node() *html.Node { return o.node }

// OptionState is a read-only snapshot of an option, used by renderers.
type OptionState struct {
	Index    int    `json:"index"`
	Value    string `json:"value"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
	Disabled bool   `json:"disabled"`
	TabIndex int    `json:"tabindex"`
	Focused  bool   `json:"focused"`
}
