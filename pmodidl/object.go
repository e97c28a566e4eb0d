package pmodidl

import (
	"slices"

	"github.com/beevik/etree"
)

// upnp:writeStatus values.
const (
	WriteStatusNotWritable = "NOT_WRITABLE"
	WriteStatusWritable    = "WRITABLE"
	WriteStatusProtected   = "PROTECTED"
	WriteStatusUnknown     = "UNKNOWN"
	WriteStatusMixed       = "MIXED"
)

// upnp:class identity strings, built by chaining so each stays
// consistent with its parent.
const (
	ClassObject            = "object"
	ClassItem              = ClassObject + ".item"
	ClassAudioItem         = ClassItem + ".audioItem"
	ClassMusicTrack        = ClassAudioItem + ".musicTrack"
	ClassAudioBroadcast    = ClassAudioItem + ".audioBroadcast"
	ClassAudioBook         = ClassAudioItem + ".audioBook"
	ClassImageItem         = ClassItem + ".imageItem"
	ClassPlaylistItem      = ClassItem + ".playlistItem"
	ClassContainer         = ClassObject + ".container"
	ClassAlbum             = ClassContainer + ".album"
	ClassMusicAlbum        = ClassAlbum + ".musicAlbum"
	ClassGenre             = ClassContainer + ".genre"
	ClassMusicGenre        = ClassGenre + ".musicGenre"
	ClassPlaylistContainer = ClassContainer + ".playlistContainer"
	ClassPerson            = ClassContainer + ".person"
	ClassMusicArtist       = ClassPerson + ".musicArtist"
	ClassStorageSystem     = ClassContainer + ".storageSystem"
	ClassStorageVolume     = ClassContainer + ".storageVolume"
	ClassStorageFolder     = ClassContainer + ".storageFolder"
)

// Object is implemented by every entity of the content directory
// hierarchy. Concrete classes extend the base behaviour by calling the
// embedded implementation first, then handling their own fields.
type Object interface {
	FromElement(elt *etree.Element) error
	ToElement() (*etree.Element, error)
	Class() string
	base() *ObjectBase
}

// Markers used for capability-gated container adds.
type (
	itemClass      interface{ isItem() }
	audioItemClass interface{ isAudioItem() }
	albumClass     interface{ isAlbum() }
)

// ObjectBase carries the fields shared by every entity and the parse
// and serialize steps for them.
type ObjectBase struct {
	ObjectID    string
	ParentID    string
	Title       string
	Creator     string
	Restricted  bool
	WriteStatus string
	UpnpClass   string
	Resources   []*Resource

	tag string // element name on the wire: "item" or "container"
}

func (b *ObjectBase) init(tag, class string) {
	b.tag = tag
	b.UpnpClass = class
	b.WriteStatus = WriteStatusNotWritable
}

func (b *ObjectBase) base() *ObjectBase { return b }

// Class returns the object's dotted upnp:class string.
func (b *ObjectBase) Class() string { return b.UpnpClass }

// ID returns the object's unique identifier.
func (b *ObjectBase) ID() string { return b.ObjectID }

// AddResource attaches res unless it is already attached.
func (b *ObjectBase) AddResource(res *Resource) {
	if !slices.Contains(b.Resources, res) {
		b.Resources = append(b.Resources, res)
	}
}

// fromElement populates the base fields. The id, parentID and
// restricted attributes and non-empty upnp:class and dc:title children
// are mandatory; their absence is a hard failure. Child <res> elements
// are run through the resource quirks before validation, so known
// vendor omissions are corrected rather than rejected.
func (b *ObjectBase) fromElement(elt *etree.Element) error {
	for _, attr := range []string{"id", "parentID", "restricted"} {
		if elt.SelectAttr(attr) == nil {
			return &MissingAttributeError{Tag: elt.Tag, Attr: attr}
		}
	}
	class := findChild(elt, NSUpnp, "class")
	if class == nil || class.Text() == "" {
		return &MissingFieldError{Tag: elt.Tag, Field: "upnp:class"}
	}
	title := findChild(elt, NSDc, "title")
	if title == nil || title.Text() == "" {
		return &MissingFieldError{Tag: elt.Tag, Field: "dc:title"}
	}

	b.tag = elt.Tag
	b.ObjectID = elt.SelectAttrValue("id", "")
	b.ParentID = elt.SelectAttrValue("parentID", "")
	b.Restricted = parseBool(elt.SelectAttrValue("restricted", ""))
	b.UpnpClass = class.Text()
	b.Title = title.Text()

	if ws := findChild(elt, NSUpnp, "writeStatus"); ws != nil {
		b.WriteStatus = ws.Text()
	}
	if creator := findChild(elt, NSDc, "creator"); creator != nil {
		b.Creator = creator.Text()
	}

	b.Resources = nil
	for _, child := range findChildren(elt, NSDidl, "res") {
		res := &Resource{}
		if err := res.FromElement(ApplyResourceQuirks(child)); err != nil {
			return err
		}
		b.Resources = append(b.Resources, res)
	}
	return nil
}

// toElement renders the base fields. Concrete classes append their own
// children afterwards; the emission order is fixed because some devices
// compare metadata textually.
func (b *ObjectBase) toElement() (*etree.Element, error) {
	elt := etree.NewElement(b.tag)
	elt.CreateAttr("id", b.ObjectID)
	elt.CreateAttr("parentID", b.ParentID)
	subText(elt, "dc:title", b.Title)
	subText(elt, "upnp:class", b.UpnpClass)
	elt.CreateAttr("restricted", boolString(b.Restricted))

	if b.Creator != "" {
		subText(elt, "dc:creator", b.Creator)
	}
	if b.WriteStatus != "" {
		subText(elt, "upnp:writeStatus", b.WriteStatus)
	}
	for _, res := range b.Resources {
		child, err := res.ToElement()
		if err != nil {
			return nil, err
		}
		elt.AddChild(child)
	}
	return elt, nil
}
