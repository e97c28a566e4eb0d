package pmodidl

import (
	"errors"
	"strings"
	"testing"

	"github.com/beevik/etree"
)

const trackXML = `<item id="Q:0/1" parentID="Q:0" restricted="true">
  <dc:title>Helplessly Hoping</dc:title>
  <dc:creator>Crosby, Stills &amp; Nash</dc:creator>
  <upnp:class>object.item.audioItem.musicTrack</upnp:class>
  <upnp:album>Crosby, Stills &amp; Nash</upnp:album>
  <upnp:originalTrackNumber>4</upnp:originalTrackNumber>
  <res protocolInfo="http-get:*:audio/flac:*" duration="0:02:41">http://192.168.1.10:8200/track.flac</res>
</item>`

func parseFragment(t *testing.T, data string) *etree.Element {
	t.Helper()
	elt, err := parseXML(data)
	if err != nil {
		t.Fatalf("failed to parse fragment: %v", err)
	}
	return elt
}

func TestMusicTrackFromElement(t *testing.T) {
	track := NewMusicTrack()
	if err := track.FromElement(parseFragment(t, trackXML)); err != nil {
		t.Fatalf("failed to parse track: %v", err)
	}

	if track.ObjectID != "Q:0/1" {
		t.Errorf("wrong id: %q", track.ObjectID)
	}
	if track.ParentID != "Q:0" {
		t.Errorf("wrong parentID: %q", track.ParentID)
	}
	if !track.Restricted {
		t.Error("restricted not parsed")
	}
	if track.Title != "Helplessly Hoping" {
		t.Errorf("wrong title: %q", track.Title)
	}
	if track.Creator != "Crosby, Stills & Nash" {
		t.Errorf("wrong creator: %q", track.Creator)
	}
	if len(track.Albums) != 1 || track.Albums[0] != "Crosby, Stills & Nash" {
		t.Errorf("wrong albums: %v", track.Albums)
	}
	if track.OriginalTrackNumber != "4" {
		t.Errorf("wrong track number: %q", track.OriginalTrackNumber)
	}
	if len(track.Resources) != 1 {
		t.Fatalf("expected 1 resource, got %d", len(track.Resources))
	}
	if track.URI() != "http://192.168.1.10:8200/track.flac" {
		t.Errorf("wrong URI: %q", track.URI())
	}
}

func TestObjectMissingMandatoryAttr(t *testing.T) {
	data := `<item id="1" restricted="true">
  <dc:title>t</dc:title>
  <upnp:class>object.item</upnp:class>
</item>`
	item := NewItem()
	err := item.FromElement(parseFragment(t, data))
	var missing *MissingAttributeError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingAttributeError, got %v", err)
	}
	if missing.Attr != "parentID" {
		t.Errorf("wrong attribute reported: %q", missing.Attr)
	}
}

func TestObjectEmptyTitleRejected(t *testing.T) {
	data := `<item id="1" parentID="0" restricted="true">
  <dc:title></dc:title>
  <upnp:class>object.item</upnp:class>
</item>`
	item := NewItem()
	err := item.FromElement(parseFragment(t, data))
	var missing *MissingFieldError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingFieldError, got %v", err)
	}
	if missing.Field != "dc:title" {
		t.Errorf("wrong field reported: %q", missing.Field)
	}
}

// Serialization order is part of the contract: devices that compare
// metadata textually break when it drifts.
func TestMusicTrackElementOrder(t *testing.T) {
	track := NewMusicTrack()
	track.ObjectID = "Q:0/1"
	track.ParentID = "Q:0"
	track.Title = "Song"
	track.Creator = "Artist"
	track.Artists = []string{"Artist"}
	track.Albums = []string{"Album"}
	track.OriginalTrackNumber = "4"
	res := &Resource{Value: "http://x/a.flac", ProtocolInfo: "http-get:*:audio/flac:*"}
	track.AddResource(res)

	elt, err := track.ToElement()
	if err != nil {
		t.Fatalf("failed to serialize: %v", err)
	}

	var tags []string
	for _, child := range elt.ChildElements() {
		tags = append(tags, child.FullTag())
	}
	want := []string{
		"dc:title", "upnp:class", "dc:creator", "upnp:writeStatus", "res",
		"upnp:artist", "upnp:album", "upnp:originalTrackNumber",
	}
	if strings.Join(tags, ",") != strings.Join(want, ",") {
		t.Errorf("wrong child order:\n got %v\nwant %v", tags, want)
	}

	artist := findChild(elt, NSUpnp, "artist")
	if artist == nil || artist.SelectAttrValue("role", "") != "AlbumArtist" {
		t.Error("artist element missing role=AlbumArtist")
	}
}

func TestAddResourceDeduplicates(t *testing.T) {
	item := NewItem()
	res := &Resource{Value: "http://x/a", ProtocolInfo: "http-get:*:*:*"}
	item.AddResource(res)
	item.AddResource(res)
	if len(item.Resources) != 1 {
		t.Errorf("expected 1 resource, got %d", len(item.Resources))
	}
}

func TestAudioBroadcastRoundTrip(t *testing.T) {
	b := NewAudioBroadcast()
	b.ObjectID = "R:0/0/0"
	b.ParentID = "R:0/0"
	b.Title = "FIP"
	b.RadioCallSign = "FIP"
	b.RadioStationID = "s15200"
	b.RadioBand = "FM"

	out, err := ObjectToString(b)
	if err != nil {
		t.Fatalf("failed to serialize: %v", err)
	}
	if !strings.Contains(out, "<upnp:radioStationId>s15200</upnp:radioStationId>") {
		t.Errorf("radioStationId not serialized (note the lowercase d): %s", out)
	}

	back, err := ObjectFromString(out)
	if err != nil {
		t.Fatalf("failed to reparse: %v", err)
	}
	station, ok := back.(*AudioBroadcast)
	if !ok {
		t.Fatalf("expected *AudioBroadcast, got %T", back)
	}
	if station.RadioStationID != "s15200" {
		t.Errorf("radioStationId lost in round trip: %q", station.RadioStationID)
	}
}

func TestItemRefID(t *testing.T) {
	data := `<item id="1" parentID="0" restricted="true" refID="S:7">
  <dc:title>ref</dc:title>
  <upnp:class>object.item</upnp:class>
</item>`
	item := NewItem()
	if err := item.FromElement(parseFragment(t, data)); err != nil {
		t.Fatalf("failed to parse: %v", err)
	}
	if item.RefID != "S:7" {
		t.Errorf("wrong refID: %q", item.RefID)
	}

	elt, err := item.ToElement()
	if err != nil {
		t.Fatalf("failed to serialize: %v", err)
	}
	if elt.SelectAttrValue("refID", "") != "S:7" {
		t.Error("refID not serialized")
	}

	item.RefID = ""
	elt, err = item.ToElement()
	if err != nil {
		t.Fatalf("failed to serialize: %v", err)
	}
	if elt.SelectAttr("refID") != nil {
		t.Error("empty refID should not be serialized")
	}
}
