package pmodidl

import (
	"slices"

	"github.com/beevik/etree"
)

// SearchClass mirrors a upnp:searchClass or upnp:createClass child: a
// class name a container accepts plus whether derived classes count.
type SearchClass struct {
	ClassName      string
	FriendlyName   string
	IncludeDerived bool
}

func (s *SearchClass) fromElement(elt *etree.Element) error {
	derived := elt.SelectAttr("includeDerived")
	if derived == nil {
		return &MissingAttributeError{Tag: elt.Tag, Attr: "includeDerived"}
	}
	s.ClassName = elt.Text()
	s.FriendlyName = elt.SelectAttrValue("name", "")
	s.IncludeDerived = parseBool(derived.Value)
	return nil
}

func (s *SearchClass) toElement(tag string) *etree.Element {
	elt := etree.NewElement(tag)
	elt.CreateAttr("includeDerived", boolString(s.IncludeDerived))
	if s.FriendlyName != "" {
		elt.CreateAttr("name", s.FriendlyName)
	}
	elt.SetText(FilterIllegalChars(s.ClassName))
	return elt
}

// Container is an entity that holds other entities. Containers and
// items are kept in separate ordered lists; the reported child count
// follows the in-memory children once any exist, and otherwise the
// count announced by the remote directory.
type Container struct {
	ObjectBase
	Searchable    bool
	SearchClasses []SearchClass
	CreateClasses []SearchClass
	Containers    []Object
	Items         []Object

	count int
}

// NewContainer builds an empty object.container.
func NewContainer() *Container {
	c := &Container{}
	c.init("container", ClassContainer)
	return c
}

// ChildCount returns the number of children, preferring the in-memory
// lists over the count parsed from the childCount attribute.
func (c *Container) ChildCount() int {
	if n := len(c.Containers) + len(c.Items); n > 0 {
		return n
	}
	return c.count
}

// SetChildCount overrides the announced child count. Useful when a
// directory is paged and only a slice of children is materialized.
func (c *Container) SetChildCount(n int) { c.count = n }

// AddItem appends item unless already attached, and reparents it to
// this container. The base container accepts any object; subclasses
// narrow what they take and report a refusal by returning false.
func (c *Container) AddItem(item Object) bool {
	if !slices.Contains(c.Items, item) {
		c.Items = append(c.Items, item)
	}
	item.base().ParentID = c.ObjectID
	return true
}

// AddContainer appends child unless already attached, and reparents it
// to this container.
func (c *Container) AddContainer(child Object) bool {
	if !slices.Contains(c.Containers, child) {
		c.Containers = append(c.Containers, child)
	}
	child.base().ParentID = c.ObjectID
	return true
}

// childObjects returns containers then items, in insertion order.
func (c *Container) childObjects() []Object {
	children := make([]Object, 0, len(c.Containers)+len(c.Items))
	children = append(children, c.Containers...)
	children = append(children, c.Items...)
	return children
}

func (c *Container) FromElement(elt *etree.Element) error {
	if err := c.ObjectBase.fromElement(elt); err != nil {
		return err
	}
	c.count = atoiOrZero(elt.SelectAttrValue("childCount", ""))
	c.Searchable = parseBool(elt.SelectAttrValue("searchable", ""))

	c.SearchClasses = nil
	for _, child := range findChildren(elt, NSUpnp, "searchClass") {
		var sc SearchClass
		if err := sc.fromElement(child); err != nil {
			return err
		}
		c.SearchClasses = append(c.SearchClasses, sc)
	}
	c.CreateClasses = nil
	for _, child := range findChildren(elt, NSUpnp, "createClass") {
		var sc SearchClass
		if err := sc.fromElement(child); err != nil {
			return err
		}
		c.CreateClasses = append(c.CreateClasses, sc)
	}
	return nil
}

func (c *Container) ToElement() (*etree.Element, error) {
	elt, err := c.ObjectBase.toElement()
	if err != nil {
		return nil, err
	}
	elt.CreateAttr("childCount", itoa(c.ChildCount()))
	for _, sc := range c.SearchClasses {
		elt.AddChild(sc.toElement("upnp:searchClass"))
	}
	for _, sc := range c.CreateClasses {
		elt.AddChild(sc.toElement("upnp:createClass"))
	}
	elt.CreateAttr("searchable", boolString(c.Searchable))
	return elt, nil
}

// Album is the base of the album container classes.
type Album struct {
	Container
	StorageMedium   string
	LongDescription string
	Description     string
	Date            string
	Publishers      []string
	Contributors    []string
	Relations       []string
	Rights          []string
}

// NewAlbum builds an empty object.container.album.
func NewAlbum() *Album {
	a := &Album{}
	a.init("container", ClassAlbum)
	return a
}

func (a *Album) isAlbum() {}

func (a *Album) FromElement(elt *etree.Element) error {
	if err := a.Container.FromElement(elt); err != nil {
		return err
	}
	a.StorageMedium = childText(elt, NSUpnp, "storageMedium")
	a.LongDescription = childText(elt, NSUpnp, "longDescription")
	a.Description = childText(elt, NSDc, "description")
	a.Date = childText(elt, NSDc, "date")
	a.Publishers = collectText(elt, NSDc, "publisher")
	a.Contributors = collectText(elt, NSDc, "contributor")
	a.Relations = collectText(elt, NSDc, "relation")
	a.Rights = collectText(elt, NSDc, "rights")
	return nil
}

func (a *Album) ToElement() (*etree.Element, error) {
	elt, err := a.Container.ToElement()
	if err != nil {
		return nil, err
	}
	if a.StorageMedium != "" {
		subText(elt, "upnp:storageMedium", a.StorageMedium)
	}
	if a.LongDescription != "" {
		subText(elt, "upnp:longDescription", a.LongDescription)
	}
	if a.Description != "" {
		subText(elt, "dc:description", a.Description)
	}
	if a.Date != "" {
		subText(elt, "dc:date", a.Date)
	}
	for _, publisher := range a.Publishers {
		subText(elt, "dc:publisher", publisher)
	}
	for _, contributor := range a.Contributors {
		subText(elt, "dc:contributor", contributor)
	}
	for _, relation := range a.Relations {
		subText(elt, "dc:relation", relation)
	}
	for _, rights := range a.Rights {
		subText(elt, "dc:rights", rights)
	}
	return elt, nil
}

// MusicAlbum is an album of music tracks.
type MusicAlbum struct {
	Album
	Artists     []string
	Genres      []string
	Producers   []string
	AlbumArtURI string
	Toc         string
}

// NewMusicAlbum builds an empty object.container.album.musicAlbum.
func NewMusicAlbum() *MusicAlbum {
	a := &MusicAlbum{}
	a.init("container", ClassMusicAlbum)
	return a
}

func (a *MusicAlbum) FromElement(elt *etree.Element) error {
	if err := a.Album.FromElement(elt); err != nil {
		return err
	}
	a.Artists = collectText(elt, NSUpnp, "artist")
	a.Genres = collectText(elt, NSUpnp, "genre")
	a.Producers = collectText(elt, NSUpnp, "producer")
	a.AlbumArtURI = childText(elt, NSUpnp, "albumArtURI")
	a.Toc = childText(elt, NSUpnp, "toc")
	return nil
}

func (a *MusicAlbum) ToElement() (*etree.Element, error) {
	elt, err := a.Album.ToElement()
	if err != nil {
		return nil, err
	}
	for _, artist := range a.Artists {
		subText(elt, "upnp:artist", artist)
	}
	for _, genre := range a.Genres {
		subText(elt, "upnp:genre", genre)
	}
	for _, producer := range a.Producers {
		subText(elt, "upnp:producer", producer)
	}
	if a.AlbumArtURI != "" {
		subText(elt, "upnp:albumArtURI", a.AlbumArtURI)
	}
	if a.Toc != "" {
		subText(elt, "upnp:toc", a.Toc)
	}
	return elt, nil
}

// Genre groups entities sharing a genre.
type Genre struct {
	Container
	LongDescription string
	Description     string
}

// NewGenre builds an empty object.container.genre.
func NewGenre() *Genre {
	g := &Genre{}
	g.init("container", ClassGenre)
	return g
}

func (g *Genre) FromElement(elt *etree.Element) error {
	if err := g.Container.FromElement(elt); err != nil {
		return err
	}
	g.LongDescription = childText(elt, NSUpnp, "longDescription")
	g.Description = childText(elt, NSDc, "description")
	return nil
}

func (g *Genre) ToElement() (*etree.Element, error) {
	elt, err := g.Container.ToElement()
	if err != nil {
		return nil, err
	}
	if g.LongDescription != "" {
		subText(elt, "upnp:longDescription", g.LongDescription)
	}
	if g.Description != "" {
		subText(elt, "dc:description", g.Description)
	}
	return elt, nil
}

// MusicGenre is a genre restricted to musical content: it only takes
// music containers as sub-containers and audio items as items.
type MusicGenre struct {
	Genre
}

// NewMusicGenre builds an empty object.container.genre.musicGenre.
func NewMusicGenre() *MusicGenre {
	g := &MusicGenre{}
	g.init("container", ClassMusicGenre)
	return g
}

func (g *MusicGenre) AddContainer(child Object) bool {
	switch child.(type) {
	case *MusicArtist, *MusicAlbum, *MusicGenre:
		return g.Genre.AddContainer(child)
	}
	return false
}

func (g *MusicGenre) AddItem(item Object) bool {
	if _, ok := item.(audioItemClass); !ok {
		return false
	}
	return g.Genre.AddItem(item)
}

// PlaylistContainer holds a playlist's entries as children.
type PlaylistContainer struct {
	Container
	Artists         []string
	Genres          []string
	Producers       []string
	Contributors    []string
	Languages       []string
	Rights          []string
	LongDescription string
	StorageMedium   string
	Description     string
	Date            string
}

// NewPlaylistContainer builds an empty object.container.playlistContainer.
func NewPlaylistContainer() *PlaylistContainer {
	p := &PlaylistContainer{}
	p.init("container", ClassPlaylistContainer)
	return p
}

func (p *PlaylistContainer) FromElement(elt *etree.Element) error {
	if err := p.Container.FromElement(elt); err != nil {
		return err
	}
	p.Artists = collectText(elt, NSUpnp, "artist")
	p.Genres = collectText(elt, NSUpnp, "genre")
	p.Producers = collectText(elt, NSUpnp, "producer")
	p.Contributors = collectText(elt, NSDc, "contributor")
	p.Languages = collectText(elt, NSDc, "language")
	p.Rights = collectText(elt, NSDc, "rights")
	p.LongDescription = childText(elt, NSUpnp, "longDescription")
	p.StorageMedium = childText(elt, NSUpnp, "storageMedium")
	p.Description = childText(elt, NSDc, "description")
	p.Date = childText(elt, NSDc, "date")
	return nil
}

func (p *PlaylistContainer) ToElement() (*etree.Element, error) {
	elt, err := p.Container.ToElement()
	if err != nil {
		return nil, err
	}
	for _, artist := range p.Artists {
		subText(elt, "upnp:artist", artist)
	}
	for _, genre := range p.Genres {
		subText(elt, "upnp:genre", genre)
	}
	for _, producer := range p.Producers {
		subText(elt, "upnp:producer", producer)
	}
	for _, contributor := range p.Contributors {
		subText(elt, "dc:contributor", contributor)
	}
	for _, language := range p.Languages {
		subText(elt, "dc:language", language)
	}
	for _, rights := range p.Rights {
		subText(elt, "dc:rights", rights)
	}
	if p.LongDescription != "" {
		subText(elt, "upnp:longDescription", p.LongDescription)
	}
	if p.StorageMedium != "" {
		subText(elt, "upnp:storageMedium", p.StorageMedium)
	}
	if p.Description != "" {
		subText(elt, "dc:description", p.Description)
	}
	if p.Date != "" {
		subText(elt, "dc:date", p.Date)
	}
	return elt, nil
}

// Person groups entities related to one person. It only takes albums
// and playlist containers as sub-containers and items as items.
type Person struct {
	Container
	Languages []string
}

// NewPerson builds an empty object.container.person.
func NewPerson() *Person {
	p := &Person{}
	p.init("container", ClassPerson)
	return p
}

func (p *Person) AddContainer(child Object) bool {
	switch child.(type) {
	case albumClass, *PlaylistContainer:
		return p.Container.AddContainer(child)
	}
	return false
}

func (p *Person) AddItem(item Object) bool {
	if _, ok := item.(itemClass); !ok {
		return false
	}
	return p.Container.AddItem(item)
}

func (p *Person) FromElement(elt *etree.Element) error {
	if err := p.Container.FromElement(elt); err != nil {
		return err
	}
	p.Languages = collectText(elt, NSDc, "language")
	return nil
}

func (p *Person) ToElement() (*etree.Element, error) {
	elt, err := p.Container.ToElement()
	if err != nil {
		return nil, err
	}
	for _, language := range p.Languages {
		subText(elt, "dc:language", language)
	}
	return elt, nil
}

// MusicArtist is a person whose content is musical.
type MusicArtist struct {
	Person
	Genres               []string
	ArtistDiscographyURI string
}

// NewMusicArtist builds an empty object.container.person.musicArtist.
func NewMusicArtist() *MusicArtist {
	a := &MusicArtist{}
	a.init("container", ClassMusicArtist)
	return a
}

func (a *MusicArtist) FromElement(elt *etree.Element) error {
	if err := a.Person.FromElement(elt); err != nil {
		return err
	}
	a.Genres = collectText(elt, NSUpnp, "genre")
	a.ArtistDiscographyURI = childText(elt, NSUpnp, "artistDiscographyURI")
	return nil
}

func (a *MusicArtist) ToElement() (*etree.Element, error) {
	elt, err := a.Person.ToElement()
	if err != nil {
		return nil, err
	}
	for _, genre := range a.Genres {
		subText(elt, "upnp:genre", genre)
	}
	if a.ArtistDiscographyURI != "" {
		subText(elt, "upnp:artistDiscographyURI", a.ArtistDiscographyURI)
	}
	return elt, nil
}

// StorageSystem describes a whole storage unit. All five storage fields
// are mandatory in both directions.
type StorageSystem struct {
	Container
	StorageTotal        string
	StorageUsed         string
	StorageFree         string
	StorageMaxPartition string
	StorageMedium       string
}

// NewStorageSystem builds an empty object.container.storageSystem.
func NewStorageSystem() *StorageSystem {
	s := &StorageSystem{}
	s.init("container", ClassStorageSystem)
	return s
}

func (s *StorageSystem) FromElement(elt *etree.Element) error {
	if err := s.Container.FromElement(elt); err != nil {
		return err
	}
	fields := []struct {
		local string
		dst   *string
	}{
		{"storageTotal", &s.StorageTotal},
		{"storageUsed", &s.StorageUsed},
		{"storageFree", &s.StorageFree},
		{"storageMaxPartition", &s.StorageMaxPartition},
		{"storageMedium", &s.StorageMedium},
	}
	for _, f := range fields {
		child := findChild(elt, NSUpnp, f.local)
		if child == nil {
			return &MissingFieldError{Tag: elt.Tag, Field: "upnp:" + f.local}
		}
		*f.dst = child.Text()
	}
	return nil
}

func (s *StorageSystem) ToElement() (*etree.Element, error) {
	fields := []struct {
		local string
		value string
	}{
		{"storageTotal", s.StorageTotal},
		{"storageUsed", s.StorageUsed},
		{"storageFree", s.StorageFree},
		{"storageMaxPartition", s.StorageMaxPartition},
		{"storageMedium", s.StorageMedium},
	}
	for _, f := range fields {
		if f.value == "" {
			return nil, &MissingFieldError{Tag: s.tag, Field: "upnp:" + f.local}
		}
	}
	elt, err := s.Container.ToElement()
	if err != nil {
		return nil, err
	}
	for _, f := range fields {
		subText(elt, "upnp:"+f.local, f.value)
	}
	return elt, nil
}

// StorageVolume describes one partition of a storage unit.
type StorageVolume struct {
	Container
	StorageTotal  string
	StorageUsed   string
	StorageFree   string
	StorageMedium string
}

// NewStorageVolume builds an empty object.container.storageVolume.
func NewStorageVolume() *StorageVolume {
	s := &StorageVolume{}
	s.init("container", ClassStorageVolume)
	return s
}

func (s *StorageVolume) FromElement(elt *etree.Element) error {
	if err := s.Container.FromElement(elt); err != nil {
		return err
	}
	fields := []struct {
		local string
		dst   *string
	}{
		{"storageTotal", &s.StorageTotal},
		{"storageUsed", &s.StorageUsed},
		{"storageFree", &s.StorageFree},
		{"storageMedium", &s.StorageMedium},
	}
	for _, f := range fields {
		child := findChild(elt, NSUpnp, f.local)
		if child == nil {
			return &MissingFieldError{Tag: elt.Tag, Field: "upnp:" + f.local}
		}
		*f.dst = child.Text()
	}
	return nil
}

func (s *StorageVolume) ToElement() (*etree.Element, error) {
	fields := []struct {
		local string
		value string
	}{
		{"storageTotal", s.StorageTotal},
		{"storageUsed", s.StorageUsed},
		{"storageFree", s.StorageFree},
		{"storageMedium", s.StorageMedium},
	}
	for _, f := range fields {
		if f.value == "" {
			return nil, &MissingFieldError{Tag: s.tag, Field: "upnp:" + f.local}
		}
	}
	elt, err := s.Container.ToElement()
	if err != nil {
		return nil, err
	}
	for _, f := range fields {
		subText(elt, "upnp:"+f.local, f.value)
	}
	return elt, nil
}

// StorageFolder is a folder on a storage volume. Only the used size is
// mandatory.
type StorageFolder struct {
	Container
	StorageUsed string
}

// NewStorageFolder builds an empty object.container.storageFolder.
func NewStorageFolder() *StorageFolder {
	s := &StorageFolder{}
	s.init("container", ClassStorageFolder)
	return s
}

func (s *StorageFolder) FromElement(elt *etree.Element) error {
	if err := s.Container.FromElement(elt); err != nil {
		return err
	}
	child := findChild(elt, NSUpnp, "storageUsed")
	if child == nil {
		return &MissingFieldError{Tag: elt.Tag, Field: "upnp:storageUsed"}
	}
	s.StorageUsed = child.Text()
	return nil
}

func (s *StorageFolder) ToElement() (*etree.Element, error) {
	if s.StorageUsed == "" {
		return nil, &MissingFieldError{Tag: s.tag, Field: "upnp:storageUsed"}
	}
	elt, err := s.Container.ToElement()
	if err != nil {
		return nil, err
	}
	subText(elt, "upnp:storageUsed", s.StorageUsed)
	return elt, nil
}
