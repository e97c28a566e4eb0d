package pmodidl

import (
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/beevik/etree"
)

// Placeholder protocol descriptors injected by the resource quirks.
const (
	quirkDummyProtocolInfo   = "DUMMY_ADDED_BY_QUIRK"
	quirkSpotifyProtocolInfo = "sonos.com-spotify:*:audio/x-spotify.*"
)

// ApplyResourceQuirks corrects known vendor deviations on a <res>
// element before it is validated. Today that means supplying the
// protocolInfo attribute some services omit; Spotify resources get a
// descriptor matching their URI scheme, anything else a recognizable
// placeholder. The element is patched in place and returned.
func ApplyResourceQuirks(res *etree.Element) *etree.Element {
	if res.SelectAttr("protocolInfo") == nil {
		protocolInfo := quirkDummyProtocolInfo
		if strings.HasPrefix(res.Text(), "x-sonos-spotify") {
			protocolInfo = quirkSpotifyProtocolInfo
		}
		log.Debugf("🐞 Resource quirk applied: missing protocolInfo set to %q", protocolInfo)
		res.CreateAttr("protocolInfo", protocolInfo)
	}
	return res
}
