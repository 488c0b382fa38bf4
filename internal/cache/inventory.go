package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix      = "user:%d"
	TallyKeyPrefix     = "tally:%d"
	ActiveTagsKey      = "tags:active"
	UnreadCountPrefix  = "notif:unread:%d"
	RefreshTokenPrefix = "auth:refresh:%s"
)

const (
	UserTTL       = 5 * time.Minute
	TallyTTL      = 1 * time.Minute
	ActiveTagsTTL = 10 * time.Minute
	UnreadTTL     = 30 * time.Second
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func TallyKey(postID uint) string {
	return fmt.Sprintf(TallyKeyPrefix, postID)
}

func UnreadCountKey(userID uint) string {
	return fmt.Sprintf(UnreadCountPrefix, userID)
}

func RefreshTokenKey(jti string) string {
	return fmt.Sprintf(RefreshTokenPrefix, jti)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

func InvalidateTally(ctx context.Context, postID uint) {
	Invalidate(ctx, TallyKey(postID))
}

func InvalidateActiveTags(ctx context.Context) {
	Invalidate(ctx, ActiveTagsKey)
}

func InvalidateUnreadCount(ctx context.Context, userID uint) {
	Invalidate(ctx, UnreadCountKey(userID))
}
