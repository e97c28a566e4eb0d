package pmodidl

import (
	"errors"
	"fmt"
	"testing"
)

func TestResolveClassExact(t *testing.T) {
	cases := []struct {
		class string
		want  string
	}{
		{ClassMusicTrack, "*pmodidl.MusicTrack"},
		{ClassAudioBroadcast, "*pmodidl.AudioBroadcast"},
		{ClassMusicAlbum, "*pmodidl.MusicAlbum"},
		{ClassStorageFolder, "*pmodidl.StorageFolder"},
		{ClassItem, "*pmodidl.Item"},
		{ClassContainer, "*pmodidl.Container"},
	}
	for _, c := range cases {
		obj, err := ResolveClass(c.class)
		if err != nil {
			t.Fatalf("failed to resolve %q: %v", c.class, err)
		}
		if got := fmt.Sprintf("%T", obj); got != c.want {
			t.Errorf("%q resolved to %s, want %s", c.class, got, c.want)
		}
	}
}

func TestResolveClassFallback(t *testing.T) {
	obj, err := ResolveClass("object.item.audioItem.podcast")
	if err != nil {
		t.Fatalf("fallback failed: %v", err)
	}
	if _, ok := obj.(*AudioItem); !ok {
		t.Fatalf("expected *AudioItem, got %T", obj)
	}
	// The instance keeps the class it was asked for, not the fallback's.
	if obj.Class() != "object.item.audioItem.podcast" {
		t.Errorf("class string not preserved: %q", obj.Class())
	}
}

func TestResolveClassVendorExtension(t *testing.T) {
	obj, err := ResolveClass("object.item.audioItem.musicTrack#vendor.thing")
	if err != nil {
		t.Fatalf("failed to resolve vendor extension: %v", err)
	}
	if _, ok := obj.(*MusicTrack); !ok {
		t.Fatalf("expected *MusicTrack, got %T", obj)
	}
	if obj.Class() != "object.item.audioItem.musicTrack#vendor.thing" {
		t.Errorf("class string not preserved: %q", obj.Class())
	}
}

func TestResolveClassUnknown(t *testing.T) {
	_, err := ResolveClass("object.nonsense")
	var unknown *UnknownClassError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownClassError, got %v", err)
	}
	if unknown.Class != "object.nonsense" {
		t.Errorf("wrong class reported: %q", unknown.Class)
	}
}

func TestResolveClassBareSegment(t *testing.T) {
	// Only "object."-rooted dotted strings resolve; a bare segment is
	// not looked up even when it names a registered class.
	for _, class := range []string{"item", "container", "musicTrack"} {
		var unknown *UnknownClassError
		if _, err := ResolveClass(class); !errors.As(err, &unknown) {
			t.Errorf("ResolveClass(%q): expected UnknownClassError, got %v", class, err)
		}
	}
}

func TestResolveClassFreshInstances(t *testing.T) {
	a, err := ResolveClass(ClassMusicTrack)
	if err != nil {
		t.Fatal(err)
	}
	b, err := ResolveClass(ClassMusicTrack)
	if err != nil {
		t.Fatal(err)
	}
	a.base().Title = "one"
	if b.base().Title != "" {
		t.Error("resolver returned a shared instance")
	}
}
