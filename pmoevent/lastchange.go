// Package pmoevent decodes the LastChange state variable carried by
// AVTransport event notifications. Event payloads come from devices in
// the wild and are frequently truncated or mangled, so decoding is
// deliberately tolerant: a payload that cannot be understood yields no
// event rather than an error the subscriber would have to ignore.
package pmoevent

import (
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/beevik/etree"

	"gargoton.petite-maison-orange.fr/eric/pmocontrol/pmodidl"
)

const nsAVT = "urn:schemas-upnp-org:metadata-1-0/AVT/"

// LastChangeEvent is the flattened view of one LastChange payload:
// transport state, track positions, and the metadata of the current,
// next and enqueued tracks, keyed by stable names.
type LastChangeEvent struct {
	content map[string]string
}

// FromXML decodes a LastChange payload. Returns nil when the payload
// is not decodable as a whole: malformed outer XML, no InstanceID, or
// malformed embedded metadata. Individual missing fields are fine and
// simply absent from the event.
func FromXML(data string) *LastChangeEvent {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(data); err != nil {
		log.Debugf("🐞 LastChange event dropped, bad XML: %v", err)
		return nil
	}
	root := doc.Root()
	if root == nil {
		log.Debug("🐞 LastChange event dropped, empty document")
		return nil
	}
	instance := findChild(root, nsAVT, "InstanceID")
	if instance == nil {
		log.Debug("🐞 LastChange event dropped, no InstanceID")
		return nil
	}

	event := &LastChangeEvent{content: map[string]string{}}

	avtFields := map[string]string{
		"TransportState":       "transportState",
		"CurrentPlayMode":      "currentPlayMode",
		"CurrentCrossfadeMode": "currentCrossfadeMode",
		"NumberOfTracks":       "numberOfTracks",
		"CurrentTrack":         "currentTrack",
		"CurrentSection":       "currentSection",
		"CurrentTrackURI":      "currentTrackURI",
		"CurrentTrackDuration": "currentTrackDuration",
		"CurrentTrackMetaData": "currentTrackMetaData",
	}
	for local, key := range avtFields {
		event.setVal(instance, nsAVT, local, key)
	}
	rinconFields := map[string]string{
		"NextTrackURI":                 "nextTrackURI",
		"NextTrackMetaData":            "nextTrackMetaData",
		"EnqueuedTransportURIMetaData": "enqueuedTransportURIMetaData",
	}
	for local, key := range rinconFields {
		event.setVal(instance, pmodidl.NSRincon, local, key)
	}

	currentKeys := map[string]string{
		"title":               "title",
		"creator":             "creator",
		"album":               "album",
		"originalTrackNumber": "originalTrackNumber",
		"albumArtist":         "albumArtist",
		"albumArtURI":         "albumArtURI",
		"radioShowMd":         "radioShowMd",
	}
	if !event.decodeTrackMetadata("currentTrackMetaData", currentKeys) {
		return nil
	}
	nextKeys := map[string]string{
		"title":               "nextTitle",
		"creator":             "nextCreator",
		"album":               "nextAlbum",
		"originalTrackNumber": "nextOriginalTrackNumber",
		"albumArtist":         "nextAlbumArtist",
		"albumArtURI":         "nextAlbumArtURI",
	}
	if !event.decodeTrackMetadata("nextTrackMetaData", nextKeys) {
		return nil
	}
	enqueuedKeys := map[string]string{
		"title": "transportTitle",
	}
	if !event.decodeTrackMetadata("enqueuedTransportURIMetaData", enqueuedKeys) {
		return nil
	}

	return event
}

// setVal copies the val attribute of a state variable element into the
// event, when the element is present.
func (e *LastChangeEvent) setVal(instance *etree.Element, nsURI, local, key string) {
	if elt := findChild(instance, nsURI, local); elt != nil {
		e.content[key] = elt.SelectAttrValue("val", "")
	}
}

// decodeTrackMetadata parses the embedded DIDL-Lite fragment stored
// under srcKey and lifts the listed children into the event. An empty
// or absent fragment is fine; a present but malformed one poisons the
// whole event.
func (e *LastChangeEvent) decodeTrackMetadata(srcKey string, keys map[string]string) bool {
	fragment := e.content[srcKey]
	if fragment == "" || fragment == "NOT_IMPLEMENTED" {
		return true
	}
	doc := etree.NewDocument()
	if err := doc.ReadFromString(fragment); err != nil {
		log.Debugf("🐞 LastChange event dropped, bad %s: %v", srcKey, err)
		return false
	}
	root := doc.Root()
	if root == nil {
		return true
	}
	item := findChild(root, pmodidl.NSDidl, "item")
	if item == nil {
		return true
	}
	nsByLocal := map[string]string{
		"title":               pmodidl.NSDc,
		"creator":             pmodidl.NSDc,
		"album":               pmodidl.NSUpnp,
		"originalTrackNumber": pmodidl.NSUpnp,
		"albumArtist":         pmodidl.NSRincon,
		"albumArtURI":         pmodidl.NSUpnp,
		"radioShowMd":         pmodidl.NSRincon,
	}
	for local, key := range keys {
		if elt := findChild(item, nsByLocal[local], local); elt != nil {
			e.content[key] = elt.Text()
		}
	}
	return true
}

// findChild matches children leniently: by resolved namespace when the
// fragment declares it, by bare local name otherwise. Event fragments
// are routinely re-escaped and lose their declarations on the way.
func findChild(elt *etree.Element, nsURI, local string) *etree.Element {
	for _, child := range elt.ChildElements() {
		if child.Tag != local {
			continue
		}
		if uri := child.NamespaceURI(); uri != "" && uri != nsURI {
			continue
		}
		return child
	}
	return nil
}

// Value returns the raw string for key and whether it was present.
func (e *LastChangeEvent) Value(key string) (string, bool) {
	v, ok := e.content[key]
	return v, ok
}

// TransportState returns the transport state, e.g. "PLAYING".
func (e *LastChangeEvent) TransportState() string { return e.content["transportState"] }

// CurrentPlayMode returns the play mode, e.g. "NORMAL".
func (e *LastChangeEvent) CurrentPlayMode() string { return e.content["currentPlayMode"] }

// CurrentCrossfadeMode returns the raw crossfade flag.
func (e *LastChangeEvent) CurrentCrossfadeMode() string { return e.content["currentCrossfadeMode"] }

// CurrentSection returns the current section index, raw.
func (e *LastChangeEvent) CurrentSection() string { return e.content["currentSection"] }

// CurrentTrackURI returns the URI of the playing track.
func (e *LastChangeEvent) CurrentTrackURI() string { return e.content["currentTrackURI"] }

// CurrentTrackDuration returns the duration as sent, "H:MM:SS".
func (e *LastChangeEvent) CurrentTrackDuration() string { return e.content["currentTrackDuration"] }

// NextTrackURI returns the URI of the upcoming track.
func (e *LastChangeEvent) NextTrackURI() string { return e.content["nextTrackURI"] }

// Title returns the current track title.
func (e *LastChangeEvent) Title() string { return e.content["title"] }

// Creator returns the current track artist.
func (e *LastChangeEvent) Creator() string { return e.content["creator"] }

// Album returns the current track album.
func (e *LastChangeEvent) Album() string { return e.content["album"] }

// AlbumArtist returns the current track album artist.
func (e *LastChangeEvent) AlbumArtist() string { return e.content["albumArtist"] }

// AlbumArtURI returns the current track cover URI.
func (e *LastChangeEvent) AlbumArtURI() string { return e.content["albumArtURI"] }

// RadioShowMd returns the radio show metadata blob, when tuned to one.
func (e *LastChangeEvent) RadioShowMd() string { return e.content["radioShowMd"] }

// NextTitle returns the upcoming track title.
func (e *LastChangeEvent) NextTitle() string { return e.content["nextTitle"] }

// NextCreator returns the upcoming track artist.
func (e *LastChangeEvent) NextCreator() string { return e.content["nextCreator"] }

// NextAlbum returns the upcoming track album.
func (e *LastChangeEvent) NextAlbum() string { return e.content["nextAlbum"] }

// NextAlbumArtist returns the upcoming track album artist.
func (e *LastChangeEvent) NextAlbumArtist() string { return e.content["nextAlbumArtist"] }

// NextAlbumArtURI returns the upcoming track cover URI.
func (e *LastChangeEvent) NextAlbumArtURI() string { return e.content["nextAlbumArtURI"] }

// TransportTitle returns the title of the enqueued transport URI.
func (e *LastChangeEvent) TransportTitle() string { return e.content["transportTitle"] }

// NumberOfTracks returns the queue length, when present and numeric.
func (e *LastChangeEvent) NumberOfTracks() (int, bool) { return e.intValue("numberOfTracks") }

// CurrentTrack returns the 1-based queue position, when present and
// numeric.
func (e *LastChangeEvent) CurrentTrack() (int, bool) { return e.intValue("currentTrack") }

// OriginalTrackNumber returns the current track's album position.
func (e *LastChangeEvent) OriginalTrackNumber() (int, bool) {
	return e.intValue("originalTrackNumber")
}

// NextOriginalTrackNumber returns the upcoming track's album position.
func (e *LastChangeEvent) NextOriginalTrackNumber() (int, bool) {
	return e.intValue("nextOriginalTrackNumber")
}

func (e *LastChangeEvent) intValue(key string) (int, bool) {
	raw, ok := e.content[key]
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}
