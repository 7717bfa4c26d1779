package main

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

type fakeMetadataSource struct {
	title string
	err   error
}

func (s *fakeMetadataSource) NowPlaying() (string, error) {
	return s.title, s.err
}

func TestPollerPublishesTitle(t *testing.T) {
	src := &fakeMetadataSource{title: "Sissi Laz - Girly Groove"}
	p := NewNowPlayingPoller(src, time.Second)

	p.poll()
	if got := p.Title(); got != "Sissi Laz - Girly Groove" {
		t.Errorf("title = %q", got)
	}
}

func TestPollerKeepsPriorValue(t *testing.T) {
	src := &fakeMetadataSource{title: "Kirollus - Boogie Nights"}
	p := NewNowPlayingPoller(src, time.Second)
	p.poll()

	tests := []struct {
		name  string
		title string
		err   error
	}{
		{"placeholder ignored", nowPlayingPlaceholder, nil},
		{"empty ignored", "", nil},
		{"fetch error ignored", "whatever", errors.New("timeout")},
	}
	for _, tt := range tests {
		src.title, src.err = tt.title, tt.err
		p.poll()
		if got := p.Title(); got != "Kirollus - Boogie Nights" {
			t.Errorf("%s: title changed to %q", tt.name, got)
		}
	}
}

func TestPollerInitialTitle(t *testing.T) {
	p := NewNowPlayingPoller(&fakeMetadataSource{err: errors.New("down")}, time.Second)
	p.poll()
	if got := p.Title(); got != "Chargement..." {
		t.Errorf("initial title = %q", got)
	}
}

func TestExtractSongTitle(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    string
		wantErr bool
	}{
		{
			"centova wrapper",
			`cc_streaminfo({"song":"Marc G. - Iron Cathedral","listeners":12});`,
			"Marc G. - Iron Cathedral",
			false,
		},
		{
			"track object",
			`callback({"track":{"title":"Midnight Special"}})`,
			"Midnight Special",
			false,
		},
		{
			"bare title",
			`{"title":"Deep Underground"}`,
			"Deep Underground",
			false,
		},
		{"no payload", `document.write("hello");`, "", true},
		{"no song field", `{"listeners":3}`, "", true},
		{"broken json", `x{"song":`, "", true},
	}

	for _, tt := range tests {
		got, err := extractSongTitle(tt.body)
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: err = %v, wantErr %v", tt.name, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("%s: title = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestShoutcastSource(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`cc_streaminfo({"song":"Léa D. - Micro Climat"});`))
	}))
	defer ts.Close()

	src := NewShoutcastSource(ts.URL)
	got, err := src.NowPlaying()
	if err != nil {
		t.Fatalf("NowPlaying failed: %v", err)
	}
	if got != "Léa D. - Micro Climat" {
		t.Errorf("title = %q", got)
	}
}
