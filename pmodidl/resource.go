package pmodidl

import "github.com/beevik/etree"

// Resource describes one concrete playable representation of an object:
// a URI plus the protocol descriptor and technical metadata needed to
// render it. Technical attributes keep the exact strings found on the
// wire; devices compare them textually, so no numeric normalization is
// applied.
type Resource struct {
	Value           string
	ProtocolInfo    string
	ImportURI       string
	Size            string
	Duration        string
	Bitrate         string
	SampleFrequency string
	BitsPerSample   string
	NrAudioChannels string
	Resolution      string
	ColorDepth      string
	Protection      string
}

// FromElement fills the resource from a <res> element. protocolInfo is
// mandatory; every other attribute defaults to empty.
func (r *Resource) FromElement(elt *etree.Element) error {
	protocolInfo := elt.SelectAttr("protocolInfo")
	if protocolInfo == nil {
		return &MissingAttributeError{Tag: elt.Tag, Attr: "protocolInfo"}
	}

	r.ProtocolInfo = protocolInfo.Value
	r.ImportURI = elt.SelectAttrValue("importUri", "")
	r.Size = elt.SelectAttrValue("size", "")
	r.Duration = elt.SelectAttrValue("duration", "")
	r.Bitrate = elt.SelectAttrValue("bitrate", "")
	r.SampleFrequency = elt.SelectAttrValue("sampleFrequency", "")
	r.BitsPerSample = elt.SelectAttrValue("bitsPerSample", "")
	r.NrAudioChannels = elt.SelectAttrValue("nrAudioChannels", "")
	r.Resolution = elt.SelectAttrValue("resolution", "")
	r.ColorDepth = elt.SelectAttrValue("colorDepth", "")
	r.Protection = elt.SelectAttrValue("protection", "")
	r.Value = elt.Text()
	return nil
}

// ResourceFromString parses a standalone <res> document.
func ResourceFromString(data string) (*Resource, error) {
	elt, err := parseXML(data)
	if err != nil {
		return nil, err
	}
	r := &Resource{}
	if err := r.FromElement(elt); err != nil {
		return nil, err
	}
	return r, nil
}

// ToElement renders the resource as a <res> element. A resource without
// protocolInfo cannot be serialized.
func (r *Resource) ToElement() (*etree.Element, error) {
	if r.ProtocolInfo == "" {
		return nil, &MissingAttributeError{Tag: "res", Attr: "protocolInfo"}
	}

	elt := etree.NewElement("res")
	elt.CreateAttr("protocolInfo", r.ProtocolInfo)
	optAttr(elt, "importUri", r.ImportURI)
	optAttr(elt, "size", r.Size)
	optAttr(elt, "duration", r.Duration)
	optAttr(elt, "bitrate", r.Bitrate)
	optAttr(elt, "sampleFrequency", r.SampleFrequency)
	optAttr(elt, "bitsPerSample", r.BitsPerSample)
	optAttr(elt, "nrAudioChannels", r.NrAudioChannels)
	optAttr(elt, "resolution", r.Resolution)
	optAttr(elt, "colorDepth", r.ColorDepth)
	optAttr(elt, "protection", r.Protection)
	elt.SetText(FilterIllegalChars(r.Value))
	return elt, nil
}

func optAttr(elt *etree.Element, key, value string) {
	if value != "" {
		elt.CreateAttr(key, value)
	}
}
