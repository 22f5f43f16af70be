package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"carwash-backend/internal/config"

	"github.com/redis/go-redis/v9"
)

// PaidServicesKey is a set of service record ids that already have a payment.
// It is the store-side index behind the unpaid-services derivation, so the
// eligible set does not require rescanning both full lists on every request.
const PaidServicesKey = "payments:paid_services"

var client *redis.Client

// Init initializes the Redis connection. Redis is optional: when it is not
// reachable the client stays nil and every helper degrades to a no-op, with
// callers falling back to SQL.
func Init(cfg *config.Config) error {
	client = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		client = nil
		return err
	}
	return nil
}

// GetClient returns the Redis client (nil when unavailable)
func GetClient() *redis.Client {
	return client
}

// hashCredentials creates a hash of email+password for cache key
func hashCredentials(email, password string) string {
	h := sha256.New()
	h.Write([]byte(email + ":" + password))
	return "auth:" + hex.EncodeToString(h.Sum(nil))[:32]
}

// GetCachedAuth checks if credentials are cached and valid
func GetCachedAuth(ctx context.Context, email, password string) (int, bool) {
	if client == nil {
		return 0, false
	}
	key := hashCredentials(email, password)
	userID, err := client.Get(ctx, key).Int()
	if err != nil {
		return 0, false
	}
	return userID, true
}

// CacheAuth caches valid credentials for 15 minutes
func CacheAuth(ctx context.Context, email, password string, userID int) {
	if client == nil {
		return
	}
	key := hashCredentials(email, password)
	client.Set(ctx, key, userID, 15*time.Minute)
}

// ============================================
// Paid-Services Index
// ============================================

// MarkServicePaid adds a service record id to the paid-services set.
// Called when: CreatePayment succeeds.
func MarkServicePaid(ctx context.Context, serviceRecordID int) {
	if client == nil {
		return
	}
	client.SAdd(ctx, PaidServicesKey, serviceRecordID)
}

// PaidServiceIDs returns the paid-services set, if the index is available.
// A false second return means the caller must derive the set from the store.
func PaidServiceIDs(ctx context.Context) (map[int]bool, bool) {
	if client == nil {
		return nil, false
	}
	members, err := client.SMembers(ctx, PaidServicesKey).Result()
	if err != nil {
		return nil, false
	}
	ids := make(map[int]bool, len(members))
	for _, m := range members {
		id, err := strconv.Atoi(m)
		if err != nil {
			return nil, false
		}
		ids[id] = true
	}
	return ids, true
}

// RebuildPaidServices replaces the index with the given ids. Called on
// startup so the set reflects payments recorded while Redis was down.
func RebuildPaidServices(ctx context.Context, serviceRecordIDs []int) {
	if client == nil {
		return
	}
	pipe := client.TxPipeline()
	pipe.Del(ctx, PaidServicesKey)
	for _, id := range serviceRecordIDs {
		pipe.SAdd(ctx, PaidServicesKey, id)
	}
	pipe.Exec(ctx)
}

// DropPaidServices clears the index, forcing SQL derivation until rebuilt
func DropPaidServices(ctx context.Context) {
	if client == nil {
		return
	}
	client.Del(ctx, PaidServicesKey)
}

// IsHealthy returns true if the Redis connection is working
func IsHealthy() bool {
	if client == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return client.Ping(ctx).Err() == nil
}
