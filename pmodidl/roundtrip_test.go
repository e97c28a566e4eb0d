package pmodidl

import (
	"fmt"
	"testing"
)

// fillBase populates the fields every class shares, plus a resource.
func fillBase(obj Object, id string) {
	b := obj.base()
	b.ObjectID = id
	b.ParentID = "0"
	b.Title = "Title " + id
	b.Creator = "Creator"
	b.Restricted = true
	b.AddResource(&Resource{
		Value:        "http://192.168.1.10:8200/" + id,
		ProtocolInfo: "http-get:*:audio/flac:*",
		Duration:     "0:03:00",
	})
}

// Every concrete class must reparse to the same type and reserialize
// to the same bytes, with all of its fields populated. A field parsed
// but not emitted, emitted but not parsed, or emitted out of order
// shows up here as a diff.
func TestConcreteClassRoundTrips(t *testing.T) {
	item := NewItem()
	item.RefID = "S:7"

	audioItem := NewAudioItem()
	audioItem.Genres = []string{"Folk", "Rock"}
	audioItem.Publishers = []string{"Reprise"}
	audioItem.Relations = []string{"http://x/rel"}
	audioItem.Rights = []string{"All rights reserved"}
	audioItem.LongDescription = "long description"
	audioItem.Description = "description"
	audioItem.Language = "en-US"

	track := NewMusicTrack()
	track.Genres = []string{"Folk"}
	track.Artists = []string{"Neil Young"}
	track.Albums = []string{"Harvest"}
	track.Playlists = []string{"Favourites"}
	track.Contributors = []string{"Jack Nitzsche"}
	track.OriginalTrackNumber = "5"
	track.StorageMedium = "HDD"
	track.Date = "1972-02-01"

	broadcast := NewAudioBroadcast()
	broadcast.Region = "FR"
	broadcast.RadioCallSign = "FIP"
	broadcast.RadioStationID = "s15200"
	broadcast.RadioBand = "FM"
	broadcast.ChannelNr = "105"

	book := NewAudioBook()
	book.Producers = []string{"Producer"}
	book.Contributors = []string{"Narrator"}
	book.Date = "2001-01-01"
	book.StorageMedium = "CD"

	image := NewImageItem()
	image.LongDescription = "long description"
	image.StorageMedium = "SD"
	image.Rating = "PG"
	image.Description = "description"
	image.Publishers = []string{"Publisher"}
	image.Date = "2020-05-05"
	image.Rights = []string{"CC-BY"}

	playlistItem := NewPlaylistItem()
	playlistItem.Protection = "none"
	playlistItem.StorageMedium = "HDD"
	playlistItem.LongDescription = "long description"
	playlistItem.Rating = "PG"
	playlistItem.Description = "description"
	playlistItem.Date = "2020-05-05"
	playlistItem.Authors = []string{"Author"}
	playlistItem.Publishers = []string{"Publisher"}
	playlistItem.Contributors = []string{"Contributor"}
	playlistItem.Relations = []string{"http://x/rel"}
	playlistItem.Languages = []string{"fr-FR"}
	playlistItem.Rights = []string{"CC-BY"}

	container := NewContainer()
	container.Searchable = true
	container.SetChildCount(7)
	container.SearchClasses = []SearchClass{{ClassName: ClassAudioItem, FriendlyName: "audio", IncludeDerived: true}}
	container.CreateClasses = []SearchClass{{ClassName: ClassMusicTrack, IncludeDerived: false}}

	album := NewAlbum()
	album.StorageMedium = "CD"
	album.LongDescription = "long description"
	album.Description = "description"
	album.Date = "1972-02-01"
	album.Publishers = []string{"Reprise"}
	album.Contributors = []string{"Contributor"}
	album.Relations = []string{"http://x/rel"}
	album.Rights = []string{"All rights reserved"}

	musicAlbum := NewMusicAlbum()
	musicAlbum.Artists = []string{"Neil Young"}
	musicAlbum.Genres = []string{"Folk"}
	musicAlbum.Producers = []string{"Producer"}
	musicAlbum.AlbumArtURI = "http://192.168.1.10:8200/art.jpg"
	musicAlbum.Toc = "toc"

	genre := NewGenre()
	genre.LongDescription = "long description"
	genre.Description = "description"

	musicGenre := NewMusicGenre()
	musicGenre.LongDescription = "long description"
	musicGenre.Description = "description"

	playlistContainer := NewPlaylistContainer()
	playlistContainer.Artists = []string{"Various"}
	playlistContainer.Genres = []string{"Mixed"}
	playlistContainer.Producers = []string{"Producer"}
	playlistContainer.Contributors = []string{"Contributor"}
	playlistContainer.Languages = []string{"en-GB"}
	playlistContainer.Rights = []string{"CC-BY"}
	playlistContainer.LongDescription = "long description"
	playlistContainer.StorageMedium = "HDD"
	playlistContainer.Description = "description"
	playlistContainer.Date = "2020-05-05"

	person := NewPerson()
	person.Languages = []string{"en-CA"}

	artist := NewMusicArtist()
	artist.Languages = []string{"en-CA"}
	artist.Genres = []string{"Folk"}
	artist.ArtistDiscographyURI = "http://x/discography"

	storageSystem := NewStorageSystem()
	storageSystem.StorageTotal = "1000000"
	storageSystem.StorageUsed = "400000"
	storageSystem.StorageFree = "600000"
	storageSystem.StorageMaxPartition = "500000"
	storageSystem.StorageMedium = "HDD"

	storageVolume := NewStorageVolume()
	storageVolume.StorageTotal = "1000000"
	storageVolume.StorageUsed = "400000"
	storageVolume.StorageFree = "600000"
	storageVolume.StorageMedium = "HDD"

	storageFolder := NewStorageFolder()
	storageFolder.StorageUsed = "123456"

	cases := []struct {
		name string
		obj  Object
	}{
		{"item", item},
		{"audioItem", audioItem},
		{"musicTrack", track},
		{"audioBroadcast", broadcast},
		{"audioBook", book},
		{"imageItem", image},
		{"playlistItem", playlistItem},
		{"container", container},
		{"album", album},
		{"musicAlbum", musicAlbum},
		{"genre", genre},
		{"musicGenre", musicGenre},
		{"playlistContainer", playlistContainer},
		{"person", person},
		{"musicArtist", artist},
		{"storageSystem", storageSystem},
		{"storageVolume", storageVolume},
		{"storageFolder", storageFolder},
	}

	for i, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			fillBase(c.obj, fmt.Sprintf("ID:%d", i))

			first, err := ObjectToString(c.obj)
			if err != nil {
				t.Fatalf("failed to serialize: %v", err)
			}
			back, err := ObjectFromString(first)
			if err != nil {
				t.Fatalf("failed to reparse: %v", err)
			}
			if got, want := fmt.Sprintf("%T", back), fmt.Sprintf("%T", c.obj); got != want {
				t.Fatalf("reparsed to %s, want %s", got, want)
			}
			second, err := ObjectToString(back)
			if err != nil {
				t.Fatalf("failed to reserialize: %v", err)
			}
			if first != second {
				t.Errorf("round trip drifted:\nfirst  %s\nsecond %s", first, second)
			}
		})
	}
}
