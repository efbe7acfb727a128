package emote

// Provider identifies which upstream source an emote came from
type Provider string

const (
	// ProviderTwitch represents native Twitch emotes (twitchemotes API)
	ProviderTwitch Provider = "twitch"
	// ProviderBTTV represents BetterTTV emotes
	ProviderBTTV Provider = "bttv"
	// ProviderFFZ represents FrankerFaceZ emotes
	ProviderFFZ Provider = "ffz"
)

// Emote is a single code-keyed emote as cached from one provider.
// Emotes are immutable after normalization; a re-fetch replaces the
// entry wholesale rather than mutating it.
type Emote struct {
	// ID is the provider-assigned identifier. Numeric IDs are stringified
	// so all providers share one representation.
	ID string

	// Code is the display string and the cache key, both in the owning
	// channel's map and in the global map.
	Code string

	// Provider tags which upstream source this emote came from.
	Provider Provider

	// Channel is a back-reference to the owning channel. Set when the
	// emote is inserted into the cache.
	Channel *Channel

	// Animated reports whether the emote is an animated image.
	Animated bool

	// Images maps provider-specific size labels to image URLs. The
	// contents are passed through for renderers and not interpreted here.
	Images map[string]string
}

// Channel is a named scope holding emotes from any number of providers.
// The empty name is the distinguished global scope shared by Twitch and
// BTTV global emotes.
type Channel struct {
	Name string

	// Emotes maps code to emote across all providers fetched so far.
	// Last write wins on code collisions, even across providers.
	Emotes map[string]*Emote
}

// NewChannel creates an empty channel with the given name.
func NewChannel(name string) *Channel {
	return &Channel{
		Name:   name,
		Emotes: make(map[string]*Emote),
	}
}

// IsGlobal reports whether this is the shared global scope.
func (c *Channel) IsGlobal() bool {
	return c.Name == ""
}

// ByProvider returns the subset of the channel's emotes belonging to the
// given provider. The result is a fresh map and safe for the caller to hold.
func (c *Channel) ByProvider(p Provider) map[string]*Emote {
	out := make(map[string]*Emote)
	for code, e := range c.Emotes {
		if e.Provider == p {
			out[code] = e
		}
	}
	return out
}
