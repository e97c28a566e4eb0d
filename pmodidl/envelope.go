package pmodidl

import (
	"fmt"

	"github.com/beevik/etree"
)

// DIDLLite is a whole DIDL-Lite document: an ordered list of items and
// containers ready to be exchanged with a media server or renderer.
type DIDLLite struct {
	objects []Object
}

// NewDIDLLite builds an empty document.
func NewDIDLLite() *DIDLLite {
	return &DIDLLite{}
}

// AddItem appends a ready-made object to the document.
func (d *DIDLLite) AddItem(obj Object) {
	d.objects = append(d.objects, obj)
}

// AddContainer builds a plain container from its identity fields and
// appends it.
func (d *DIDLLite) AddContainer(objectID, parentID, title string, restricted bool) *Container {
	c := NewContainer()
	c.ObjectID = objectID
	c.ParentID = parentID
	c.Title = title
	c.Restricted = restricted
	d.objects = append(d.objects, c)
	return c
}

// NumItems returns the number of top-level objects.
func (d *DIDLLite) NumItems() int { return len(d.objects) }

// Items returns the top-level objects in document order.
func (d *DIDLLite) Items() []Object { return d.objects }

// ToString serializes the document with its namespace declarations.
func (d *DIDLLite) ToString() (string, error) {
	RegisterNamespaces()
	doc := etree.NewDocument()
	root := doc.CreateElement("DIDL-Lite")
	declareNamespaces(root)
	for _, obj := range d.objects {
		elt, err := obj.ToElement()
		if err != nil {
			return "", err
		}
		root.AddChild(elt)
	}
	return doc.WriteToString()
}

// FromString parses a DIDL-Lite document into typed objects. Every
// child must name a resolvable upnp:class and parse cleanly; metadata
// corruption here is a hard failure, unlike in event payloads.
func FromString(data string) (*DIDLLite, error) {
	RegisterNamespaces()
	root, err := parseXML(data)
	if err != nil {
		return nil, err
	}
	d := &DIDLLite{}
	for _, child := range root.ChildElements() {
		class := findChild(child, NSUpnp, "class")
		if class == nil || class.Text() == "" {
			return nil, &MissingFieldError{Tag: child.Tag, Field: "upnp:class"}
		}
		obj, err := ResolveClass(class.Text())
		if err != nil {
			return nil, err
		}
		if err := obj.FromElement(child); err != nil {
			return nil, fmt.Errorf("parsing <%s> %q: %w", child.Tag, child.SelectAttrValue("id", ""), err)
		}
		d.objects = append(d.objects, obj)
	}
	return d, nil
}

// ObjectFromString parses one standalone item or container fragment.
func ObjectFromString(data string) (Object, error) {
	RegisterNamespaces()
	elt, err := parseXML(data)
	if err != nil {
		return nil, err
	}
	class := findChild(elt, NSUpnp, "class")
	if class == nil || class.Text() == "" {
		return nil, &MissingFieldError{Tag: elt.Tag, Field: "upnp:class"}
	}
	obj, err := ResolveClass(class.Text())
	if err != nil {
		return nil, err
	}
	if err := obj.FromElement(elt); err != nil {
		return nil, err
	}
	return obj, nil
}

// ObjectToString serializes one object as a standalone fragment with
// namespace declarations, reparsable on its own.
func ObjectToString(obj Object) (string, error) {
	RegisterNamespaces()
	elt, err := obj.ToElement()
	if err != nil {
		return "", err
	}
	declareNamespaces(elt)
	doc := etree.NewDocument()
	doc.SetRoot(elt)
	return doc.WriteToString()
}
