package pmodidl

import "fmt"

// MissingAttributeError reports a schema-mandatory XML attribute absent
// while parsing or serializing. Never retried: the input has to be
// fixed at the producer.
type MissingAttributeError struct {
	Tag  string
	Attr string
}

func (e *MissingAttributeError) Error() string {
	return fmt.Sprintf("element <%s>: required attribute %q not present", e.Tag, e.Attr)
}

// MissingFieldError reports a schema-mandatory child element that is
// absent or empty.
type MissingFieldError struct {
	Tag   string
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("element <%s>: required field %q not present", e.Tag, e.Field)
}

// UnknownClassError is returned when a upnp:class string matches no
// known class even after the fallback chain is exhausted.
type UnknownClassError struct {
	Class string
}

func (e *UnknownClassError) Error() string {
	return fmt.Sprintf("no class known for upnp:class %q", e.Class)
}
