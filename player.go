// this file deals with the live player state
package main

import (
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"net/http"
	"sync"
)

// Output is the platform audio sink behind the player. The controller
// never talks to anything else for playback.
type Output interface {
	SetSource(url string)
	Play() error
	Stop()
	SetVolume(v float64)
	SetMuted(m bool)
}

type PlayerState struct {
	Playing bool    `json:"playing"`
	Muted   bool    `json:"muted"`
	Volume  float64 `json:"volume"`
}

// StreamController toggles the station stream on and off. The playing
// flag flips only after the output reports a successful start, so a
// rejected or failed start leaves the player visibly stopped.
type StreamController struct {
	mu        sync.Mutex
	out       Output
	streamURL string
	playing   bool
	muted     bool
	volume    float64
}

func NewStreamController(out Output, streamURL string) *StreamController {
	c := &StreamController{
		out:       out,
		streamURL: streamURL,
		volume:    0.8,
	}
	out.SetVolume(c.volume)
	return c
}

func (c *StreamController) Toggle() (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.playing {
		c.out.Stop()
		c.out.SetSource("")
		c.playing = false
		return false, nil
	}

	c.out.SetSource(c.streamURL)
	if err := c.out.Play(); err != nil {
		log.Println("playback failed:", err)
		c.out.SetSource("")
		return false, err
	}
	c.playing = true
	return true, nil
}

func (c *StreamController) SetVolume(v float64) float64 {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	c.mu.Lock()
	c.volume = v
	c.out.SetVolume(v)
	c.mu.Unlock()
	return v
}

func (c *StreamController) ToggleMute() bool {
	c.mu.Lock()
	c.muted = !c.muted
	c.out.SetMuted(c.muted)
	muted := c.muted
	c.mu.Unlock()
	return muted
}

func (c *StreamController) State() PlayerState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return PlayerState{Playing: c.playing, Muted: c.muted, Volume: c.volume}
}

// HTTPOutput is the server-side stand-in for an audio element: Play opens
// the stream and a goroutine drains it until Stop closes the body. Volume
// and mute are bookkeeping only, there is no local audio path.
type HTTPOutput struct {
	client *http.Client
	mu     sync.Mutex
	source string
	body   io.ReadCloser
}

func NewHTTPOutput() *HTTPOutput {
	return &HTTPOutput{client: &http.Client{}}
}

func (o *HTTPOutput) SetSource(url string) {
	o.mu.Lock()
	o.source = url
	o.mu.Unlock()
}

func (o *HTTPOutput) Play() error {
	o.mu.Lock()
	source := o.source
	o.mu.Unlock()
	if source == "" {
		return errors.New("no source set")
	}

	resp, err := o.client.Get(source)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return fmt.Errorf("stream returned status %d", resp.StatusCode)
	}

	o.mu.Lock()
	o.body = resp.Body
	o.mu.Unlock()

	go func() {
		io.Copy(ioutil.Discard, resp.Body)
	}()
	return nil
}

func (o *HTTPOutput) Stop() {
	o.mu.Lock()
	if o.body != nil {
		o.body.Close()
		o.body = nil
	}
	o.mu.Unlock()
}

func (o *HTTPOutput) SetVolume(v float64) {}

func (o *HTTPOutput) SetMuted(m bool) {}
