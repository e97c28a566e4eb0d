package pmodidl

import (
	"fmt"
	"strings"
)

// ToMarkdown renders the document as a readable tree, handy for
// dumping what a browse call actually returned.
func (d *DIDLLite) ToMarkdown() string {
	var buf strings.Builder
	buf.WriteString("# DIDL-Lite Document\n\n")

	for _, obj := range d.objects {
		objectMarkdown(&buf, obj, 0)
	}

	return buf.String()
}

func objectMarkdown(buf *strings.Builder, obj Object, depth int) {
	indent := strings.Repeat("  ", depth)
	base := obj.base()

	kind := "Item"
	container, isContainer := obj.(interface{ childObjects() []Object })
	if isContainer {
		kind = "Container"
	}

	buf.WriteString(fmt.Sprintf("%s- **%s**: %s\n", indent, kind, base.Title))
	buf.WriteString(fmt.Sprintf("%s  - ID: `%s`\n", indent, base.ObjectID))
	buf.WriteString(fmt.Sprintf("%s  - ParentID: `%s`\n", indent, base.ParentID))
	buf.WriteString(fmt.Sprintf("%s  - Class: `%s`\n", indent, base.UpnpClass))

	if base.Creator != "" {
		buf.WriteString(fmt.Sprintf("%s  - Creator: %s\n", indent, base.Creator))
	}

	switch o := obj.(type) {
	case *MusicTrack:
		if len(o.Artists) > 0 {
			buf.WriteString(fmt.Sprintf("%s  - Artist: %s\n", indent, strings.Join(o.Artists, ", ")))
		}
		if len(o.Albums) > 0 {
			buf.WriteString(fmt.Sprintf("%s  - Album: %s\n", indent, strings.Join(o.Albums, ", ")))
		}
		if o.OriginalTrackNumber != "" {
			buf.WriteString(fmt.Sprintf("%s  - Track: %s\n", indent, o.OriginalTrackNumber))
		}
		if o.Date != "" {
			buf.WriteString(fmt.Sprintf("%s  - Date: %s\n", indent, o.Date))
		}
	case *AudioBroadcast:
		if o.RadioCallSign != "" {
			buf.WriteString(fmt.Sprintf("%s  - Call sign: %s\n", indent, o.RadioCallSign))
		}
		if o.RadioBand != "" {
			buf.WriteString(fmt.Sprintf("%s  - Band: %s\n", indent, o.RadioBand))
		}
	case *MusicAlbum:
		if len(o.Artists) > 0 {
			buf.WriteString(fmt.Sprintf("%s  - Artist: %s\n", indent, strings.Join(o.Artists, ", ")))
		}
		if len(o.Genres) > 0 {
			buf.WriteString(fmt.Sprintf("%s  - Genre: %s\n", indent, strings.Join(o.Genres, ", ")))
		}
		if o.AlbumArtURI != "" {
			buf.WriteString(fmt.Sprintf("%s  - Album Art: ![Cover](%s)\n", indent, o.AlbumArtURI))
		}
	}

	resourcesMarkdown(buf, base.Resources, indent)

	if isContainer {
		children := container.childObjects()
		if len(children) > 0 {
			buf.WriteString(fmt.Sprintf("%s  - Children:\n", indent))
			for _, child := range children {
				objectMarkdown(buf, child, depth+2)
			}
		}
	}

	buf.WriteString("\n")
}

func resourcesMarkdown(buf *strings.Builder, resources []*Resource, indent string) {
	if len(resources) == 0 {
		return
	}
	buf.WriteString(fmt.Sprintf("%s  - Resources:\n", indent))
	for _, res := range resources {
		buf.WriteString(fmt.Sprintf("%s    - URL: %s\n", indent, res.Value))
		buf.WriteString(fmt.Sprintf("%s      - Protocol: `%s`\n", indent, res.ProtocolInfo))
		if res.Duration != "" {
			buf.WriteString(fmt.Sprintf("%s      - Duration: `%s`\n", indent, res.Duration))
		}
		if res.BitsPerSample != "" {
			buf.WriteString(fmt.Sprintf("%s      - BitsPerSample: `%s`\n", indent, res.BitsPerSample))
		}
		if res.SampleFrequency != "" {
			buf.WriteString(fmt.Sprintf("%s      - SampleFrequency: `%s`\n", indent, res.SampleFrequency))
		}
		if res.NrAudioChannels != "" {
			buf.WriteString(fmt.Sprintf("%s      - Channels: `%s`\n", indent, res.NrAudioChannels))
		}
	}
}
