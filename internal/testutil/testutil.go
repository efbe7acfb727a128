package testutil

import (
	"context"

	"emotecache/internal/emote"
	"emotecache/internal/fetcher"
)

// MockFetcher is a mock implementation of the Fetcher interface for testing
type MockFetcher struct {
	FetchFunc func(ctx context.Context) (map[string]*emote.Emote, error)
	KeyFunc   func() string
}

// Fetch implements the Fetcher interface
func (m *MockFetcher) Fetch(ctx context.Context) (map[string]*emote.Emote, error) {
	if m.FetchFunc != nil {
		return m.FetchFunc(ctx)
	}
	return map[string]*emote.Emote{}, nil
}

// Key implements the Fetcher interface
func (m *MockFetcher) Key() string {
	if m.KeyFunc != nil {
		return m.KeyFunc()
	}
	return "mock:key"
}

// NewMockFetcher creates a simple mock fetcher with predefined values
func NewMockFetcher(key string, emotes map[string]*emote.Emote, err error) fetcher.Fetcher {
	return &MockFetcher{
		FetchFunc: func(ctx context.Context) (map[string]*emote.Emote, error) {
			return emotes, err
		},
		KeyFunc: func() string {
			return key
		},
	}
}
