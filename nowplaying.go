// this file bridges the station's public streaminfo feed to a
// now-playing title
package main

import (
	"encoding/json"
	"errors"
	"io/ioutil"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"
)

const nowPlayingPlaceholder = "Loading ..."

// MetadataSource yields the current track title. The concrete mechanism
// (HTTP scrape, push feed, anything) stays swappable behind this.
type MetadataSource interface {
	NowPlaying() (string, error)
}

// ShoutcastSource reads the Centova streaminfo.js document published by
// the stream host. The document is javascript wrapping a JSON payload;
// this is a best-effort extraction, not a parsed protocol.
type ShoutcastSource struct {
	url    string
	client *http.Client
}

func NewShoutcastSource(statusURL string) *ShoutcastSource {
	return &ShoutcastSource{
		url:    statusURL,
		client: &http.Client{Timeout: 4 * time.Second},
	}
}

func (s *ShoutcastSource) NowPlaying() (string, error) {
	resp, err := s.client.Get(s.url)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respText, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return extractSongTitle(string(respText))
}

func extractSongTitle(body string) (string, error) {
	start := strings.Index(body, "{")
	end := strings.LastIndex(body, "}")
	if start < 0 || end <= start {
		return "", errors.New("no streaminfo payload found")
	}

	payload := struct {
		Song  string `json:"song"`
		Title string `json:"title"`
		Track struct {
			Title string `json:"title"`
		} `json:"track"`
	}{}
	if err := json.Unmarshal([]byte(body[start:end+1]), &payload); err != nil {
		return "", err
	}

	switch {
	case payload.Song != "":
		return payload.Song, nil
	case payload.Track.Title != "":
		return payload.Track.Title, nil
	case payload.Title != "":
		return payload.Title, nil
	}
	return "", errors.New("streaminfo payload has no song")
}

// NowPlayingPoller republishes the source's title every interval. A
// fetch error or the host's placeholder keeps the previous value.
type NowPlayingPoller struct {
	source   MetadataSource
	interval time.Duration
	ticker   *time.Ticker
	done     chan struct{}

	mu    sync.Mutex
	title string
}

func NewNowPlayingPoller(source MetadataSource, interval time.Duration) *NowPlayingPoller {
	return &NowPlayingPoller{
		source:   source,
		interval: interval,
		done:     make(chan struct{}),
		title:    "Chargement...",
	}
}

func (p *NowPlayingPoller) Start() {
	p.ticker = time.NewTicker(p.interval)
	go func() {
		for {
			select {
			case <-p.ticker.C:
				p.poll()
			case <-p.done:
				return
			}
		}
	}()
}

func (p *NowPlayingPoller) poll() {
	title, err := p.source.NowPlaying()
	if err != nil {
		log.Println("now-playing fetch failed:", err)
		return
	}
	if title == "" || title == nowPlayingPlaceholder {
		return
	}
	p.mu.Lock()
	p.title = title
	p.mu.Unlock()
}

func (p *NowPlayingPoller) Title() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.title
}

func (p *NowPlayingPoller) Stop() {
	if p.ticker != nil {
		p.ticker.Stop()
	}
	close(p.done)
}
