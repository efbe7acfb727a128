package bttv

import (
	"context"
	"fmt"
	"time"

	"resty.dev/v3"

	"emotecache/internal/emote"
	"emotecache/internal/fetcher"
)

// cdnURL is the BetterTTV emote CDN template: emote ID, then size
const cdnURL = "https://cdn.betterttv.net/emote/%s/%s"

// RawEmote is a single emote record as reported by the BetterTTV API
type RawEmote struct {
	ID        string `json:"id"`
	Code      string `json:"code"`
	ImageType string `json:"imageType"`
	Animated  bool   `json:"animated"`
	UserID    string `json:"userId"`
}

// Emote converts the raw record into the common entity model. Older API
// responses only flag animation through the gif image type.
func (r RawEmote) Emote() *emote.Emote {
	return &emote.Emote{
		ID:       r.ID,
		Code:     r.Code,
		Provider: emote.ProviderBTTV,
		Animated: r.Animated || r.ImageType == "gif",
		Images: map[string]string{
			"1x": fmt.Sprintf(cdnURL, r.ID, "1x"),
			"2x": fmt.Sprintf(cdnURL, r.ID, "2x"),
			"3x": fmt.Sprintf(cdnURL, r.ID, "3x"),
		},
	}
}

// UserPayload represents the BetterTTV API response for a channel: the
// channel's own emotes plus emotes shared into it. Both lists belong to
// the channel and are cached together.
type UserPayload struct {
	ID            string     `json:"id"`
	ChannelEmotes []RawEmote `json:"channelEmotes"`
	SharedEmotes  []RawEmote `json:"sharedEmotes"`
}

// Emotes concatenates the channel and shared lists into one.
func (p *UserPayload) Emotes() []RawEmote {
	emotes := make([]RawEmote, 0, len(p.ChannelEmotes)+len(p.SharedEmotes))
	emotes = append(emotes, p.ChannelEmotes...)
	emotes = append(emotes, p.SharedEmotes...)
	return emotes
}

// Client fetches BetterTTV emotes
type Client struct {
	client *resty.Client
}

// NewClient creates a new BetterTTV client
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		client: fetcher.NewHTTPClient(baseURL, timeout),
	}
}

// GlobalEmotes retrieves the global emote set, which the API reports as a
// flat list.
func (c *Client) GlobalEmotes(ctx context.Context) ([]RawEmote, error) {
	var emotes []RawEmote

	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&emotes).
		Get("/cached/emotes/global")

	if err != nil {
		return nil, fmt.Errorf("failed to fetch bttv global emotes: %w", err)
	}

	if !resp.IsSuccess() {
		return nil, &fetcher.StatusError{Provider: "bttv", StatusCode: resp.StatusCode()}
	}

	return emotes, nil
}

// ChannelEmotes retrieves a channel's emotes by Twitch user ID and returns
// the channel and shared lists concatenated.
func (c *Client) ChannelEmotes(ctx context.Context, id int) ([]RawEmote, error) {
	var payload UserPayload

	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&payload).
		Get(fmt.Sprintf("/cached/users/twitch/%d", id))

	if err != nil {
		return nil, fmt.Errorf("failed to fetch bttv emotes for channel %d: %w", id, err)
	}

	if !resp.IsSuccess() {
		return nil, &fetcher.StatusError{Provider: "bttv", StatusCode: resp.StatusCode()}
	}

	return payload.Emotes(), nil
}
