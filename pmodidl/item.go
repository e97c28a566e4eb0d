package pmodidl

import "github.com/beevik/etree"

// Item is a playable leaf entity. RefID, when set, points at the item
// this one is a reference to.
type Item struct {
	ObjectBase
	RefID string
}

// NewItem builds an empty object.item.
func NewItem() *Item {
	i := &Item{}
	i.init("item", ClassItem)
	return i
}

func (i *Item) isItem() {}

// URI returns the value of the first attached resource, or "".
func (i *Item) URI() string {
	if len(i.Resources) == 0 {
		return ""
	}
	return i.Resources[0].Value
}

func (i *Item) FromElement(elt *etree.Element) error {
	if err := i.ObjectBase.fromElement(elt); err != nil {
		return err
	}
	i.RefID = elt.SelectAttrValue("refID", "")
	return nil
}

func (i *Item) ToElement() (*etree.Element, error) {
	elt, err := i.ObjectBase.toElement()
	if err != nil {
		return nil, err
	}
	if i.RefID != "" {
		elt.CreateAttr("refID", i.RefID)
	}
	return elt, nil
}

// AudioItem is the common base of the audio leaf classes.
type AudioItem struct {
	Item
	Genres          []string
	Publishers      []string
	Relations       []string
	Rights          []string
	LongDescription string
	Description     string
	Language        string
}

// NewAudioItem builds an empty object.item.audioItem.
func NewAudioItem() *AudioItem {
	a := &AudioItem{}
	a.init("item", ClassAudioItem)
	return a
}

func (a *AudioItem) isAudioItem() {}

func (a *AudioItem) FromElement(elt *etree.Element) error {
	if err := a.Item.FromElement(elt); err != nil {
		return err
	}
	a.Genres = collectText(elt, NSUpnp, "genre")
	a.Publishers = collectText(elt, NSDc, "publisher")
	a.Relations = collectText(elt, NSDc, "relation")
	a.Rights = collectText(elt, NSDc, "rights")
	a.LongDescription = childText(elt, NSUpnp, "longDescription")
	a.Description = childText(elt, NSDc, "description")
	a.Language = childText(elt, NSDc, "language")
	return nil
}

func (a *AudioItem) ToElement() (*etree.Element, error) {
	elt, err := a.Item.ToElement()
	if err != nil {
		return nil, err
	}
	for _, genre := range a.Genres {
		subText(elt, "upnp:genre", genre)
	}
	for _, relation := range a.Relations {
		subText(elt, "dc:relation", relation)
	}
	for _, rights := range a.Rights {
		subText(elt, "dc:rights", rights)
	}
	for _, publisher := range a.Publishers {
		subText(elt, "dc:publisher", publisher)
	}
	if a.LongDescription != "" {
		subText(elt, "upnp:longDescription", a.LongDescription)
	}
	if a.Description != "" {
		subText(elt, "dc:description", a.Description)
	}
	if a.Language != "" {
		subText(elt, "dc:language", a.Language)
	}
	return elt, nil
}

// MusicTrack is a single piece of music.
type MusicTrack struct {
	AudioItem
	Artists             []string
	Albums              []string
	Playlists           []string
	Contributors        []string
	OriginalTrackNumber string
	StorageMedium       string
	Date                string
}

// NewMusicTrack builds an empty object.item.audioItem.musicTrack.
func NewMusicTrack() *MusicTrack {
	t := &MusicTrack{}
	t.init("item", ClassMusicTrack)
	return t
}

func (t *MusicTrack) FromElement(elt *etree.Element) error {
	if err := t.AudioItem.FromElement(elt); err != nil {
		return err
	}
	t.Artists = collectText(elt, NSUpnp, "artist")
	t.Albums = collectText(elt, NSUpnp, "album")
	t.Playlists = collectText(elt, NSUpnp, "playlist")
	t.Contributors = collectText(elt, NSDc, "contributor")
	t.OriginalTrackNumber = childText(elt, NSUpnp, "originalTrackNumber")
	t.StorageMedium = childText(elt, NSUpnp, "storageMedium")
	t.Date = childText(elt, NSDc, "date")
	return nil
}

func (t *MusicTrack) ToElement() (*etree.Element, error) {
	elt, err := t.AudioItem.ToElement()
	if err != nil {
		return nil, err
	}
	for _, artist := range t.Artists {
		subText(elt, "upnp:artist", artist).CreateAttr("role", "AlbumArtist")
	}
	for _, album := range t.Albums {
		subText(elt, "upnp:album", album)
	}
	for _, playlist := range t.Playlists {
		subText(elt, "upnp:playlist", playlist)
	}
	for _, contributor := range t.Contributors {
		subText(elt, "dc:contributor", contributor)
	}
	if t.OriginalTrackNumber != "" {
		subText(elt, "upnp:originalTrackNumber", t.OriginalTrackNumber)
	}
	if t.StorageMedium != "" {
		subText(elt, "upnp:storageMedium", t.StorageMedium)
	}
	if t.Date != "" {
		subText(elt, "dc:date", t.Date)
	}
	return elt, nil
}

// AudioBroadcast is a radio station or other continuous stream.
type AudioBroadcast struct {
	AudioItem
	Region         string
	RadioCallSign  string
	RadioStationID string
	RadioBand      string
	ChannelNr      string
}

// NewAudioBroadcast builds an empty object.item.audioItem.audioBroadcast.
func NewAudioBroadcast() *AudioBroadcast {
	b := &AudioBroadcast{}
	b.init("item", ClassAudioBroadcast)
	return b
}

func (b *AudioBroadcast) FromElement(elt *etree.Element) error {
	if err := b.AudioItem.FromElement(elt); err != nil {
		return err
	}
	b.Region = childText(elt, NSUpnp, "region")
	b.RadioCallSign = childText(elt, NSUpnp, "radioCallSign")
	// "radioStationId" really does end with a lowercase d on the wire.
	b.RadioStationID = childText(elt, NSUpnp, "radioStationId")
	b.RadioBand = childText(elt, NSUpnp, "radioBand")
	b.ChannelNr = childText(elt, NSUpnp, "channelNr")
	return nil
}

func (b *AudioBroadcast) ToElement() (*etree.Element, error) {
	elt, err := b.AudioItem.ToElement()
	if err != nil {
		return nil, err
	}
	if b.Region != "" {
		subText(elt, "upnp:region", b.Region)
	}
	if b.RadioCallSign != "" {
		subText(elt, "upnp:radioCallSign", b.RadioCallSign)
	}
	if b.RadioStationID != "" {
		subText(elt, "upnp:radioStationId", b.RadioStationID)
	}
	if b.RadioBand != "" {
		subText(elt, "upnp:radioBand", b.RadioBand)
	}
	if b.ChannelNr != "" {
		subText(elt, "upnp:channelNr", b.ChannelNr)
	}
	return elt, nil
}

// AudioBook is narrated spoken content.
type AudioBook struct {
	AudioItem
	Producers     []string
	Contributors  []string
	Date          string
	StorageMedium string
}

// NewAudioBook builds an empty object.item.audioItem.audioBook.
func NewAudioBook() *AudioBook {
	b := &AudioBook{}
	b.init("item", ClassAudioBook)
	return b
}

func (b *AudioBook) FromElement(elt *etree.Element) error {
	if err := b.AudioItem.FromElement(elt); err != nil {
		return err
	}
	b.Producers = collectText(elt, NSUpnp, "producer")
	b.Contributors = collectText(elt, NSDc, "contributor")
	b.Date = childText(elt, NSDc, "date")
	b.StorageMedium = childText(elt, NSUpnp, "storageMedium")
	return nil
}

func (b *AudioBook) ToElement() (*etree.Element, error) {
	elt, err := b.AudioItem.ToElement()
	if err != nil {
		return nil, err
	}
	for _, producer := range b.Producers {
		subText(elt, "upnp:producer", producer)
	}
	for _, contributor := range b.Contributors {
		subText(elt, "dc:contributor", contributor)
	}
	if b.Date != "" {
		subText(elt, "dc:date", b.Date)
	}
	if b.StorageMedium != "" {
		subText(elt, "upnp:storageMedium", b.StorageMedium)
	}
	return elt, nil
}

// ImageItem is a still image, typically cover art exposed as content.
type ImageItem struct {
	Item
	LongDescription string
	StorageMedium   string
	Rating          string
	Description     string
	Publishers      []string
	Date            string
	Rights          []string
}

// NewImageItem builds an empty object.item.imageItem.
func NewImageItem() *ImageItem {
	i := &ImageItem{}
	i.init("item", ClassImageItem)
	return i
}

func (i *ImageItem) FromElement(elt *etree.Element) error {
	if err := i.Item.FromElement(elt); err != nil {
		return err
	}
	i.LongDescription = childText(elt, NSUpnp, "longDescription")
	i.StorageMedium = childText(elt, NSUpnp, "storageMedium")
	i.Rating = childText(elt, NSUpnp, "rating")
	i.Description = childText(elt, NSDc, "description")
	i.Publishers = collectText(elt, NSDc, "publisher")
	i.Date = childText(elt, NSDc, "date")
	i.Rights = collectText(elt, NSDc, "rights")
	return nil
}

func (i *ImageItem) ToElement() (*etree.Element, error) {
	elt, err := i.Item.ToElement()
	if err != nil {
		return nil, err
	}
	if i.LongDescription != "" {
		subText(elt, "upnp:longDescription", i.LongDescription)
	}
	if i.StorageMedium != "" {
		subText(elt, "upnp:storageMedium", i.StorageMedium)
	}
	if i.Rating != "" {
		subText(elt, "upnp:rating", i.Rating)
	}
	if i.Description != "" {
		subText(elt, "dc:description", i.Description)
	}
	for _, publisher := range i.Publishers {
		subText(elt, "dc:publisher", publisher)
	}
	if i.Date != "" {
		subText(elt, "dc:date", i.Date)
	}
	for _, rights := range i.Rights {
		subText(elt, "dc:rights", rights)
	}
	return elt, nil
}

// PlaylistItem is a playable playlist file, as opposed to a
// PlaylistContainer which holds its entries as children.
type PlaylistItem struct {
	Item
	Protection      string
	StorageMedium   string
	LongDescription string
	Rating          string
	Description     string
	Date            string
	Authors         []string
	Publishers      []string
	Contributors    []string
	Relations       []string
	Languages       []string
	Rights          []string
}

// NewPlaylistItem builds an empty object.item.playlistItem.
func NewPlaylistItem() *PlaylistItem {
	p := &PlaylistItem{}
	p.init("item", ClassPlaylistItem)
	return p
}

func (p *PlaylistItem) FromElement(elt *etree.Element) error {
	if err := p.Item.FromElement(elt); err != nil {
		return err
	}
	p.Protection = childText(elt, NSUpnp, "protection")
	p.StorageMedium = childText(elt, NSUpnp, "storageMedium")
	p.LongDescription = childText(elt, NSUpnp, "longDescription")
	p.Rating = childText(elt, NSUpnp, "rating")
	p.Description = childText(elt, NSDc, "description")
	p.Date = childText(elt, NSDc, "date")
	p.Authors = collectText(elt, NSDc, "author")
	p.Publishers = collectText(elt, NSDc, "publisher")
	p.Contributors = collectText(elt, NSDc, "contributor")
	p.Relations = collectText(elt, NSDc, "relation")
	p.Languages = collectText(elt, NSDc, "language")
	p.Rights = collectText(elt, NSDc, "rights")
	return nil
}

func (p *PlaylistItem) ToElement() (*etree.Element, error) {
	elt, err := p.Item.ToElement()
	if err != nil {
		return nil, err
	}
	if p.Protection != "" {
		subText(elt, "upnp:protection", p.Protection)
	}
	if p.StorageMedium != "" {
		subText(elt, "upnp:storageMedium", p.StorageMedium)
	}
	if p.LongDescription != "" {
		subText(elt, "upnp:longDescription", p.LongDescription)
	}
	if p.Rating != "" {
		subText(elt, "upnp:rating", p.Rating)
	}
	if p.Description != "" {
		subText(elt, "dc:description", p.Description)
	}
	if p.Date != "" {
		subText(elt, "dc:date", p.Date)
	}
	for _, author := range p.Authors {
		subText(elt, "dc:author", author)
	}
	for _, publisher := range p.Publishers {
		subText(elt, "dc:publisher", publisher)
	}
	for _, contributor := range p.Contributors {
		subText(elt, "dc:contributor", contributor)
	}
	for _, relation := range p.Relations {
		subText(elt, "dc:relation", relation)
	}
	for _, language := range p.Languages {
		subText(elt, "dc:language", language)
	}
	for _, rights := range p.Rights {
		subText(elt, "dc:rights", rights)
	}
	return elt, nil
}
