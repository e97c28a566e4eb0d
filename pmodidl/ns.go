package pmodidl

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/beevik/etree"
)

// Namespace URIs found in DIDL-Lite documents and in the vendor
// metadata that rides along with them.
const (
	NSDidl   = "urn:schemas-upnp-org:metadata-1-0/DIDL-Lite/"
	NSDc     = "http://purl.org/dc/elements/1.1/"
	NSUpnp   = "urn:schemas-upnp-org:metadata-1-0/upnp/"
	NSDlna   = "urn:schemas-dlna-org:metadata-1-0"
	NSRincon = "urn:schemas-rinconnetworks-com:metadata-1-0/"
	NSMs     = "http://www.sonos.com/Services/1.1"
)

var (
	registerOnce sync.Once
	nsByPrefix   map[string]string
	prefixByNS   map[string]string
)

// RegisterNamespaces fills the prefix registry used when reading and
// writing namespaced tags. Safe to call any number of times from any
// goroutine; only the first call does work. The serialization entry
// points call it themselves, so callers normally never need to.
func RegisterNamespaces() {
	registerOnce.Do(func() {
		nsByPrefix = map[string]string{
			"":     NSDidl,
			"dc":   NSDc,
			"upnp": NSUpnp,
			"dlna": NSDlna,
			"r":    NSRincon,
			"ms":   NSMs,
		}
		prefixByNS = make(map[string]string, len(nsByPrefix))
		for prefix, uri := range nsByPrefix {
			prefixByNS[uri] = prefix
		}
	})
}

// declareNamespaces attaches the xmlns declarations a serialized
// DIDL-Lite fragment needs to reparse cleanly on its own.
func declareNamespaces(elt *etree.Element) {
	elt.CreateAttr("xmlns", NSDidl)
	elt.CreateAttr("xmlns:dc", NSDc)
	elt.CreateAttr("xmlns:upnp", NSUpnp)
	elt.CreateAttr("xmlns:dlna", NSDlna)
	elt.CreateAttr("xmlns:r", NSRincon)
}

// matchNS reports whether elt is the (nsURI, local) element. When the
// document declares the element's prefix the resolved URI decides;
// undeclared prefixes fall back to the registered preferred prefix, so
// fragments without xmlns declarations still parse.
func matchNS(elt *etree.Element, nsURI, local string) bool {
	if elt.Tag != local {
		return false
	}
	if uri := elt.NamespaceURI(); uri != "" {
		return uri == nsURI
	}
	RegisterNamespaces()
	return elt.Space == prefixByNS[nsURI]
}

func findChild(elt *etree.Element, nsURI, local string) *etree.Element {
	for _, child := range elt.ChildElements() {
		if matchNS(child, nsURI, local) {
			return child
		}
	}
	return nil
}

func findChildren(elt *etree.Element, nsURI, local string) []*etree.Element {
	var children []*etree.Element
	for _, child := range elt.ChildElements() {
		if matchNS(child, nsURI, local) {
			children = append(children, child)
		}
	}
	return children
}

// collectText gathers the text of every matching child, in document
// order. Returns nil when there are none.
func collectText(elt *etree.Element, nsURI, local string) []string {
	var texts []string
	for _, child := range findChildren(elt, nsURI, local) {
		texts = append(texts, child.Text())
	}
	return texts
}

// childText returns the text of the first matching child, or "".
func childText(elt *etree.Element, nsURI, local string) string {
	if child := findChild(elt, nsURI, local); child != nil {
		return child.Text()
	}
	return ""
}

// subText appends a child element with filtered text. The tag may carry
// a namespace prefix ("dc:title").
func subText(parent *etree.Element, tag, text string) *etree.Element {
	child := parent.CreateElement(tag)
	child.SetText(FilterIllegalChars(text))
	return child
}

// FilterIllegalChars drops the code points XML 1.0 forbids (control
// characters and surrogates). Some devices emit them in titles; a
// document we produce must stay well formed anyway.
func FilterIllegalChars(s string) string {
	if strings.IndexFunc(s, isIllegalRune) < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if !isIllegalRune(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isIllegalRune(r rune) bool {
	switch {
	case r == 0x9 || r == 0xA || r == 0xD:
		return false
	case r >= 0x20 && r <= 0xD7FF:
		return false
	case r >= 0xE000 && r <= 0xFFFD:
		return false
	case r >= 0x10000 && r <= 0x10FFFF:
		return false
	}
	return true
}

// parseXML parses a document and returns its root element.
func parseXML(data string) (*etree.Element, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(data); err != nil {
		return nil, fmt.Errorf("parsing XML: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("parsing XML: document has no root element")
	}
	return root, nil
}

func parseBool(s string) bool {
	return s == "true" || s == "True" || s == "1"
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// atoiOrZero converts a numeric attribute, tolerating garbage: some
// servers put "unknown" or nothing at all in childCount.
func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
