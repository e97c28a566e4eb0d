package pmodidl

import (
	"strings"

	log "github.com/sirupsen/logrus"
)

// classRegistry maps the capitalized last segment of a upnp:class
// string to a constructor. The abstract root "object" has no entry on
// purpose: a class that resolves to nothing concrete is an error, not
// a silently degraded Object.
var classRegistry = map[string]func() Object{
	"Item":              func() Object { return NewItem() },
	"AudioItem":         func() Object { return NewAudioItem() },
	"MusicTrack":        func() Object { return NewMusicTrack() },
	"AudioBroadcast":    func() Object { return NewAudioBroadcast() },
	"AudioBook":         func() Object { return NewAudioBook() },
	"ImageItem":         func() Object { return NewImageItem() },
	"PlaylistItem":      func() Object { return NewPlaylistItem() },
	"Container":         func() Object { return NewContainer() },
	"Album":             func() Object { return NewAlbum() },
	"MusicAlbum":        func() Object { return NewMusicAlbum() },
	"Genre":             func() Object { return NewGenre() },
	"MusicGenre":        func() Object { return NewMusicGenre() },
	"PlaylistContainer": func() Object { return NewPlaylistContainer() },
	"Person":            func() Object { return NewPerson() },
	"MusicArtist":       func() Object { return NewMusicArtist() },
	"StorageSystem":     func() Object { return NewStorageSystem() },
	"StorageVolume":     func() Object { return NewStorageVolume() },
	"StorageFolder":     func() Object { return NewStorageFolder() },
}

// ResolveClass returns a fresh instance of the concrete class for a
// dotted upnp:class string. Vendor extension segments introduced by '#'
// are stripped first; an unknown tail then falls back segment by
// segment toward the root, so "object.item.audioItem.podcast" still
// yields an AudioItem. The fully resolved instance keeps the class
// string it was asked for, not the fallback's. Single-segment strings
// without the "object." root ("item") are never looked up and resolve
// to UnknownClassError.
func ResolveClass(class string) (Object, error) {
	base := class
	if hash := strings.Index(base, "#"); hash >= 0 {
		base = base[:hash]
	}
	segments := strings.Split(base, ".")

	for end := len(segments); end > 1; end-- {
		name := capitalize(segments[end-1])
		if newObject, ok := classRegistry[name]; ok {
			if end != len(segments) {
				log.Debugf("🐞 upnp:class %q unknown, falling back to %s", class, strings.Join(segments[:end], "."))
			}
			obj := newObject()
			obj.base().UpnpClass = class
			return obj, nil
		}
	}
	return nil, &UnknownClassError{Class: class}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
