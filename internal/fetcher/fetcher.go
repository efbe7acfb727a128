package fetcher

import (
	"context"

	"emotecache/internal/emote"
)

// Fetcher is one unit of prefetch work: a single provider/channel fetch.
// Each implementation drives one cache fetch operation and provides a
// hierarchical key for reporting.
type Fetcher interface {
	// Fetch runs the fetch and returns the provider-filtered emote view
	// for the target channel. Returns an error if the fetch fails.
	Fetch(ctx context.Context) (map[string]*emote.Emote, error)

	// Key returns a hierarchical key identifying this fetch.
	// Format: emotes:{provider}:{target}
	// Examples:
	//   - emotes:twitch:global
	//   - emotes:bttv:11148817
	//   - emotes:ffz:sodapoppin
	Key() string
}
