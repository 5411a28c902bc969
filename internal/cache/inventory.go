package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix      = "user:%d"
	DashboardKeyPrefix = "dashboard:%d"
)

const (
	UserTTL      = 5 * time.Minute
	DashboardTTL = 2 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func DashboardKey(userID uint) string {
	return fmt.Sprintf(DashboardKeyPrefix, userID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

// InvalidateDashboard drops the cached dashboard aggregates for a user.
// Called on every entry mutation so counts never go stale past a write.
func InvalidateDashboard(ctx context.Context, userID uint) {
	Invalidate(ctx, DashboardKey(userID))
}
