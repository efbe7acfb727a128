package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"syscall"
	"time"

	"emotecache/internal/bttv"
	"emotecache/internal/cache"
	"emotecache/internal/config"
	"emotecache/internal/emote"
	"emotecache/internal/fetcher"
	"emotecache/internal/ffz"
	"emotecache/internal/prefetch"
	"emotecache/internal/twitch"
)

// fetchJob adapts one cache fetch operation to the fetcher interface
type fetchJob struct {
	key string
	run func(ctx context.Context) (map[string]*emote.Emote, error)
}

func (j fetchJob) Fetch(ctx context.Context) (map[string]*emote.Emote, error) {
	return j.run(ctx)
}

func (j fetchJob) Key() string {
	return j.key
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Create context with cancellation for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nReceived interrupt signal, shutting down...")
		cancel()
	}()

	// Create the cache over the three provider clients
	emoteCache := cache.New(
		twitch.NewClient(cfg.TwitchBaseURL, cfg.HTTPTimeout),
		bttv.NewClient(cfg.BTTVBaseURL, cfg.HTTPTimeout),
		ffz.NewClient(cfg.FFZBaseURL, cfg.HTTPTimeout),
	)

	// Build prefetch jobs from configuration
	var jobs []fetcher.Fetcher

	if cfg.FetchGlobal {
		jobs = append(jobs,
			fetchJob{
				key: "emotes:twitch:global",
				run: func(ctx context.Context) (map[string]*emote.Emote, error) {
					return emoteCache.FetchTwitchEmotes(ctx, 0)
				},
			},
			fetchJob{
				key: "emotes:bttv:global",
				run: func(ctx context.Context) (map[string]*emote.Emote, error) {
					return emoteCache.FetchBTTVEmotes(ctx, 0)
				},
			},
		)
	}

	for _, id := range cfg.TwitchChannels {
		jobs = append(jobs, fetchJob{
			key: "emotes:twitch:" + strconv.Itoa(id),
			run: func(ctx context.Context) (map[string]*emote.Emote, error) {
				return emoteCache.FetchTwitchEmotes(ctx, id)
			},
		})
	}

	for _, id := range cfg.BTTVChannels {
		jobs = append(jobs, fetchJob{
			key: "emotes:bttv:" + strconv.Itoa(id),
			run: func(ctx context.Context) (map[string]*emote.Emote, error) {
				return emoteCache.FetchBTTVEmotes(ctx, id)
			},
		})
	}

	for _, name := range cfg.FFZChannels {
		jobs = append(jobs, fetchJob{
			key: "emotes:ffz:" + name,
			run: func(ctx context.Context) (map[string]*emote.Emote, error) {
				return emoteCache.FetchFFZEmotes(ctx, name)
			},
		})
	}

	// Create coordinator
	coord := prefetch.New(jobs)

	// Add timeout to prevent hanging indefinitely
	fetchCtx, fetchCancel := context.WithTimeout(ctx, 30*time.Second)
	defer fetchCancel()

	// Run all fetchers concurrently
	fmt.Println("Fetching emotes from Twitch, BTTV and FFZ...")
	fmt.Println("============================================")
	results, err := coord.Run(fetchCtx)
	if err != nil {
		log.Fatalf("Prefetch failed: %v", err)
	}

	for _, result := range results {
		if result.Error != nil {
			fmt.Printf("%s: ERROR - %v\n", result.Key, result.Error)
			continue
		}

		codes := make([]string, 0, len(result.Emotes))
		for code := range result.Emotes {
			codes = append(codes, code)
		}
		sort.Strings(codes)

		fmt.Printf("%s: %d emotes\n", result.Key, len(codes))
		for _, code := range codes {
			fmt.Printf("  %s (id %s)\n", code, result.Emotes[code].ID)
		}
	}

	fmt.Println("============================================")
	fmt.Printf("Cached %d emotes across %d channels\n", len(emoteCache.Emotes()), len(emoteCache.Channels()))
}
