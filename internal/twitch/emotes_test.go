package twitch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"emotecache/internal/emote"
	"emotecache/internal/fetcher"
)

func TestNewClient(t *testing.T) {
	client := NewClient("https://api.twitchemotes.com/api/v4", 0)

	if client == nil {
		t.Fatal("NewClient() returned nil")
	}

	if client.client == nil {
		t.Error("client is nil")
	}
}

func TestRawEmote_Emote(t *testing.T) {
	raw := RawEmote{ID: 25, Code: "Kappa"}

	e := raw.Emote()

	if e.ID != "25" {
		t.Errorf("ID = %q, want %q", e.ID, "25")
	}
	if e.Code != "Kappa" {
		t.Errorf("Code = %q, want %q", e.Code, "Kappa")
	}
	if e.Provider != emote.ProviderTwitch {
		t.Errorf("Provider = %q, want %q", e.Provider, emote.ProviderTwitch)
	}
	if e.Channel != nil {
		t.Error("Channel should be unset before caching")
	}

	want := "https://static-cdn.jtvnw.net/emoticons/v1/25/2.0"
	if e.Images["2x"] != want {
		t.Errorf("Images[2x] = %q, want %q", e.Images["2x"], want)
	}
}

func TestClient_ChannelEmotes_Global(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/channels/0" {
			t.Errorf("path = %q, want /channels/0", r.URL.Path)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"channel_name": null,
			"channel_id": "0",
			"emotes": [
				{"id": 25, "code": "Kappa"},
				{"id": 88, "code": "PogChamp"}
			]
		}`))
	})

	server := httptest.NewServer(handler)
	defer server.Close()

	client := NewClient(server.URL, 0)

	payload, err := client.ChannelEmotes(context.Background(), 0)
	if err != nil {
		t.Fatalf("ChannelEmotes() returned unexpected error: %v", err)
	}

	if payload.ChannelName != "" {
		t.Errorf("ChannelName = %q, want empty for the global set", payload.ChannelName)
	}

	if len(payload.Emotes) != 2 {
		t.Fatalf("got %d emotes, want 2", len(payload.Emotes))
	}

	if payload.Emotes[0].Code != "Kappa" || payload.Emotes[0].ID != 25 {
		t.Errorf("first emote = %+v, want id 25 code Kappa", payload.Emotes[0])
	}
}

func TestClient_ChannelEmotes_Channel(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/channels/19571641" {
			t.Errorf("path = %q, want /channels/19571641", r.URL.Path)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"channel_name": "ninja",
			"display_name": "Ninja",
			"channel_id": "19571641",
			"broadcaster_type": "partner",
			"emotes": [
				{"id": 113531, "code": "ninjaW"}
			]
		}`))
	})

	server := httptest.NewServer(handler)
	defer server.Close()

	client := NewClient(server.URL, 0)

	payload, err := client.ChannelEmotes(context.Background(), 19571641)
	if err != nil {
		t.Fatalf("ChannelEmotes() returned unexpected error: %v", err)
	}

	if payload.ChannelName != "ninja" {
		t.Errorf("ChannelName = %q, want %q", payload.ChannelName, "ninja")
	}

	if len(payload.Emotes) != 1 || payload.Emotes[0].Code != "ninjaW" {
		t.Errorf("emotes = %+v, want one ninjaW record", payload.Emotes)
	}
}

func TestClient_ChannelEmotes_NegativeIDTargetsGlobal(t *testing.T) {
	var gotPath string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"channel_name": null, "emotes": []}`))
	})

	server := httptest.NewServer(handler)
	defer server.Close()

	client := NewClient(server.URL, 0)

	if _, err := client.ChannelEmotes(context.Background(), -5); err != nil {
		t.Fatalf("ChannelEmotes() returned unexpected error: %v", err)
	}

	if gotPath != "/channels/0" {
		t.Errorf("path = %q, want /channels/0", gotPath)
	}
}

func TestClient_ChannelEmotes_HTTPError(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	server := httptest.NewServer(handler)
	defer server.Close()

	client := NewClient(server.URL, 0)

	_, err := client.ChannelEmotes(context.Background(), 12345)
	if err == nil {
		t.Fatal("ChannelEmotes() expected error, got nil")
	}

	var statusErr *fetcher.StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("error = %v, want a *fetcher.StatusError", err)
	}

	if statusErr.Provider != "twitch" {
		t.Errorf("Provider = %q, want %q", statusErr.Provider, "twitch")
	}
	if statusErr.StatusCode != http.StatusNotFound {
		t.Errorf("StatusCode = %d, want %d", statusErr.StatusCode, http.StatusNotFound)
	}
	if !fetcher.IsNotFound(err) {
		t.Error("IsNotFound() = false, want true")
	}
}

func TestClient_ChannelEmotes_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // closed on purpose

	client := NewClient(server.URL, 0)

	_, err := client.ChannelEmotes(context.Background(), 0)
	if err == nil {
		t.Fatal("ChannelEmotes() expected error for unreachable server, got nil")
	}
}
