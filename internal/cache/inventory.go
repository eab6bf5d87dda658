package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	PhotoKeyPrefix = "photo:%d"
	FeedKeyName    = "feed:all"
)

const (
	PhotoTTL = 30 * time.Minute
	FeedTTL  = 2 * time.Minute
)

func PhotoKey(photoID uint) string {
	return fmt.Sprintf(PhotoKeyPrefix, photoID)
}

// FeedKey is the cache key for the anonymous (viewer-less) feed.
func FeedKey() string {
	return FeedKeyName
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidatePhoto(ctx context.Context, photoID uint) {
	Invalidate(ctx, PhotoKey(photoID))
}

func InvalidateFeed(ctx context.Context) {
	Invalidate(ctx, FeedKey())
}
