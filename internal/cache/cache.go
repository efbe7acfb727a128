package cache

import (
	"context"
	"strconv"
	"sync"

	"emotecache/internal/bttv"
	"emotecache/internal/emote"
	"emotecache/internal/ffz"
	"emotecache/internal/twitch"
)

// Cache aggregates emotes from Twitch, BetterTTV and FrankerFaceZ into a
// single code-keyed cache with two indexes: a global flat map merged
// across all channels and providers, and a per-channel map. Both are
// last-write-wins under the same code, so after a cross-channel collision
// the global entry may be newer than a channel's local entry.
//
// Channels are created lazily on first fetch and never removed. The empty
// channel name is the shared global scope populated by Twitch and BTTV
// global fetches.
type Cache struct {
	mu       sync.RWMutex
	emotes   map[string]*emote.Emote
	channels map[string]*emote.Channel

	twitch *twitch.Client
	bttv   *bttv.Client
	ffz    *ffz.Client
}

// New creates a Cache backed by the given provider clients.
func New(twitchClient *twitch.Client, bttvClient *bttv.Client, ffzClient *ffz.Client) *Cache {
	return &Cache{
		emotes:   make(map[string]*emote.Emote),
		channels: make(map[string]*emote.Channel),
		twitch:   twitchClient,
		bttv:     bttvClient,
		ffz:      ffzClient,
	}
}

// channelLocked returns the channel for name, creating it if unseen.
// Callers must hold mu.
func (c *Cache) channelLocked(name string) *emote.Channel {
	ch, ok := c.channels[name]
	if !ok {
		ch = emote.NewChannel(name)
		c.channels[name] = ch
	}
	return ch
}

// cacheLocked inserts e into the channel's map and the global map under
// its code, replacing any previous holder of that code. Callers must
// hold mu.
func (c *Cache) cacheLocked(ch *emote.Channel, e *emote.Emote) {
	e.Channel = ch
	ch.Emotes[e.Code] = e
	c.emotes[e.Code] = e
}

// FetchTwitchEmotes fetches native Twitch emotes and returns the target
// channel's view filtered to Twitch emotes only. An id of 0 targets the
// global emote set. The cached channel is keyed by the channel name the
// API reports, not by the caller's id; the global set reports no name and
// lands in the global scope.
func (c *Cache) FetchTwitchEmotes(ctx context.Context, id int) (map[string]*emote.Emote, error) {
	payload, err := c.twitch.ChannelEmotes(ctx, id)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	ch := c.channelLocked(payload.ChannelName)
	for _, raw := range payload.Emotes {
		c.cacheLocked(ch, raw.Emote())
	}

	return ch.ByProvider(emote.ProviderTwitch), nil
}

// FetchBTTVEmotes fetches BetterTTV emotes and returns the target
// channel's view filtered to BTTV emotes only. An id of 0 targets the
// global emote set; otherwise the channel is keyed by the decimal id.
func (c *Cache) FetchBTTVEmotes(ctx context.Context, id int) (map[string]*emote.Emote, error) {
	var (
		raws []bttv.RawEmote
		err  error
		name string
	)
	if id <= 0 {
		raws, err = c.bttv.GlobalEmotes(ctx)
	} else {
		name = strconv.Itoa(id)
		raws, err = c.bttv.ChannelEmotes(ctx, id)
	}
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	ch := c.channelLocked(name)
	for _, raw := range raws {
		c.cacheLocked(ch, raw.Emote())
	}

	return ch.ByProvider(emote.ProviderBTTV), nil
}

// FetchFFZEmotes fetches FrankerFaceZ emotes for the given room and
// returns that channel's view filtered to FFZ emotes only. FFZ has no
// global set; the target is required and keys the channel as given, even
// when it is an all-digit Twitch user ID.
func (c *Cache) FetchFFZEmotes(ctx context.Context, name string) (map[string]*emote.Emote, error) {
	payload, err := c.ffz.RoomEmotes(ctx, name)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	ch := c.channelLocked(name)
	for _, raw := range payload.Emoticons() {
		c.cacheLocked(ch, raw.Emote())
	}

	return ch.ByProvider(emote.ProviderFFZ), nil
}

// GlobalChannel returns the shared global channel. The second return is
// false until a global fetch has populated it.
func (c *Cache) GlobalChannel() (*emote.Channel, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ch, ok := c.channels[""]
	return ch, ok
}

// Channel returns the channel cached under name, if any.
func (c *Cache) Channel(name string) (*emote.Channel, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ch, ok := c.channels[name]
	return ch, ok
}

// Emote looks up an emote by code in the global flat index.
func (c *Cache) Emote(code string) (*emote.Emote, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.emotes[code]
	return e, ok
}

// Emotes returns a snapshot of the global code-keyed index.
func (c *Cache) Emotes() map[string]*emote.Emote {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make(map[string]*emote.Emote, len(c.emotes))
	for code, e := range c.emotes {
		out[code] = e
	}
	return out
}

// Channels returns a snapshot of the channel index.
func (c *Cache) Channels() map[string]*emote.Channel {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make(map[string]*emote.Channel, len(c.channels))
	for name, ch := range c.channels {
		out[name] = ch
	}
	return out
}
