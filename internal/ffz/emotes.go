package ffz

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"resty.dev/v3"

	"emotecache/internal/emote"
	"emotecache/internal/fetcher"
)

// RawEmote is a single emoticon record as reported by the FrankerFaceZ API
type RawEmote struct {
	ID     int               `json:"id"`
	Name   string            `json:"name"`
	Width  int               `json:"width"`
	Height int               `json:"height"`
	URLs   map[string]string `json:"urls"`
}

// Emote converts the raw record into the common entity model. FFZ reports
// image URLs per density already, so they pass through as-is.
func (r RawEmote) Emote() *emote.Emote {
	images := make(map[string]string, len(r.URLs))
	for size, url := range r.URLs {
		images[size+"x"] = url
	}
	return &emote.Emote{
		ID:       strconv.Itoa(r.ID),
		Code:     r.Name,
		Provider: emote.ProviderFFZ,
		Images:   images,
	}
}

// EmoteSet is one of a room's emote sets
type EmoteSet struct {
	ID        int        `json:"id"`
	Title     string     `json:"title"`
	Emoticons []RawEmote `json:"emoticons"`
}

// RoomPayload represents the FrankerFaceZ API response for a room. Sets is
// keyed by arbitrary set IDs; all sets belong to the room.
type RoomPayload struct {
	Sets map[string]EmoteSet `json:"sets"`
}

// Emoticons flattens the emoticons of all sets into one list.
func (p *RoomPayload) Emoticons() []RawEmote {
	var emotes []RawEmote
	for _, set := range p.Sets {
		emotes = append(emotes, set.Emoticons...)
	}
	return emotes
}

// Client fetches FrankerFaceZ emotes
type Client struct {
	client *resty.Client
}

// NewClient creates a new FrankerFaceZ client
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		client: fetcher.NewHTTPClient(baseURL, timeout),
	}
}

// RoomEmotes retrieves a room's raw emote payload. An all-digit target is
// treated as a Twitch user ID and routed to the ID endpoint; anything else
// is looked up by name.
func (c *Client) RoomEmotes(ctx context.Context, target string) (*RoomPayload, error) {
	path := "/room/" + target
	if _, err := strconv.Atoi(target); err == nil {
		path = "/room/id/" + target
	}

	var payload RoomPayload

	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&payload).
		Get(path)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch ffz emotes for %s: %w", target, err)
	}

	if !resp.IsSuccess() {
		return nil, &fetcher.StatusError{Provider: "ffz", StatusCode: resp.StatusCode()}
	}

	return &payload, nil
}
