package fetcher

import "emotecache/internal/emote"

// Result represents the outcome of a fetch operation.
// It's designed to be sent through channels from worker goroutines
// to a coordinator that reports the results.
type Result struct {
	// Key is the hierarchical key for this fetch
	Key string

	// Emotes is the provider-filtered view returned by the fetch,
	// keyed by emote code.
	Emotes map[string]*emote.Emote

	// Error contains any error that occurred during the fetch operation.
	// If Error is not nil, Emotes should be considered invalid.
	Error error
}
