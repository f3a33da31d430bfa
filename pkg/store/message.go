package store

// InboundKind distinguishes the two event shapes the transport delivers.
type InboundKind string

const (
	InboundSelect InboundKind = "select"
	InboundText   InboundKind = "text"
)

// Inbound is one operator event: a menu selection or free text.
type Inbound struct {
	Kind  InboundKind `json:"kind"`
	Value string      `json:"value"`
}

func Select(value string) Inbound {
	return Inbound{Kind: InboundSelect, Value: value}
}

func Text(value string) Inbound {
	return Inbound{Kind: InboundText, Value: value}
}

// Option is one selectable menu entry. Value is the opaque token the
// transport echoes back; Label is what the operator sees. For fixed
// menus the two are identical.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Opt builds an option whose token equals its label.
func Opt(s string) Option {
	return Option{Value: s, Label: s}
}

// Opts builds a fixed menu from plain labels.
func Opts(labels ...string) []Option {
	options := make([]Option, len(labels))
	for i, l := range labels {
		options[i] = Opt(l)
	}
	return options
}

// ImagePayload is a generated binary image with its caption.
type ImagePayload struct {
	Data    []byte `json:"data"`
	Caption string `json:"caption"`
}

// Outbound is everything the transport should render after one event:
// ordered text messages, an optional menu, an optional image.
type Outbound struct {
	Messages []string      `json:"messages"`
	Options  []Option      `json:"options,omitempty"`
	Image    *ImagePayload `json:"image,omitempty"`
}

func (o *Outbound) Say(messages ...string) {
	o.Messages = append(o.Messages, messages...)
}
