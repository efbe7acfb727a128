package twitch

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"resty.dev/v3"

	"emotecache/internal/emote"
	"emotecache/internal/fetcher"
)

// globalChannelID is the pseudo-channel the twitchemotes API uses for the
// global emote set
const globalChannelID = 0

// cdnURL is the Twitch emoticon CDN template: emote ID, then density
const cdnURL = "https://static-cdn.jtvnw.net/emoticons/v1/%s/%s"

// ChannelPayload represents the twitchemotes API response for a channel.
// ChannelName is null for the global set, which is how global emotes end
// up in the shared global scope: cache identity follows this field, not
// the ID the caller asked for.
type ChannelPayload struct {
	ChannelName     string     `json:"channel_name"`
	DisplayName     string     `json:"display_name"`
	ChannelID       string     `json:"channel_id"`
	BroadcasterType string     `json:"broadcaster_type"`
	Emotes          []RawEmote `json:"emotes"`
}

// RawEmote is a single emote record as reported by twitchemotes
type RawEmote struct {
	ID   int    `json:"id"`
	Code string `json:"code"`
}

// Emote converts the raw record into the common entity model. The channel
// back-reference is left unset; the cache fills it in on insert.
func (r RawEmote) Emote() *emote.Emote {
	id := strconv.Itoa(r.ID)
	return &emote.Emote{
		ID:       id,
		Code:     r.Code,
		Provider: emote.ProviderTwitch,
		Images: map[string]string{
			"1x": fmt.Sprintf(cdnURL, id, "1.0"),
			"2x": fmt.Sprintf(cdnURL, id, "2.0"),
			"3x": fmt.Sprintf(cdnURL, id, "3.0"),
		},
	}
}

// Client fetches native Twitch emotes from the twitchemotes API
type Client struct {
	client *resty.Client
}

// NewClient creates a new twitchemotes client
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		client: fetcher.NewHTTPClient(baseURL, timeout),
	}
}

// ChannelEmotes retrieves the raw emote payload for a channel.
// A non-positive id targets the global emote set.
func (c *Client) ChannelEmotes(ctx context.Context, id int) (*ChannelPayload, error) {
	if id <= 0 {
		id = globalChannelID
	}

	var payload ChannelPayload

	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&payload).
		Get(fmt.Sprintf("/channels/%d", id))

	if err != nil {
		return nil, fmt.Errorf("failed to fetch twitch emotes for channel %d: %w", id, err)
	}

	if !resp.IsSuccess() {
		return nil, &fetcher.StatusError{Provider: "twitch", StatusCode: resp.StatusCode()}
	}

	return &payload, nil
}
