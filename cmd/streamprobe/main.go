package main

// streamprobe watches the station's streaminfo feed from the command
// line and prints the track title every time it changes. Handy for
// checking the stream host without running the server.

import (
	"encoding/json"
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"net/http"
	"strings"
	"time"
)

func fetchTitle(client *http.Client, url string) (string, error) {
	resp, err := client.Get(url)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	text := string(body)
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return "", fmt.Errorf("no payload in streaminfo response")
	}

	payload := struct {
		Song  string `json:"song"`
		Title string `json:"title"`
	}{}
	if err := json.Unmarshal([]byte(text[start:end+1]), &payload); err != nil {
		return "", err
	}
	if payload.Song != "" {
		return payload.Song, nil
	}
	return payload.Title, nil
}

func main() {
	var statusUrl string
	var intervalSec int
	flag.StringVar(&statusUrl, "url", "https://philae.shoutca.st/system/streaminfo.js", "streaminfo endpoint")
	flag.IntVar(&intervalSec, "interval", 5, "poll interval in seconds")
	flag.Parse()

	client := &http.Client{Timeout: time.Second * 4}
	var lastTitle string

	ticker := time.NewTicker(time.Duration(intervalSec) * time.Second)
	for t := range ticker.C {
		title, err := fetchTitle(client, statusUrl)
		if err != nil {
			log.Println("fetch failed:", err)
			continue
		}
		if title == "" || title == "Loading ..." || title == lastTitle {
			continue
		}
		lastTitle = title
		fmt.Println(t.Format("15:04:05"), title)
	}
}
