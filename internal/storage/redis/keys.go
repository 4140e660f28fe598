package redis

import "fmt"

// Key prefix for all site data
const keyPrefix = "wanttogo"

// userKey returns the Redis key for a User document
func userKey(username string) string {
	return fmt.Sprintf("%s:user:%s", keyPrefix, username)
}

// wantListKey returns the Redis key for a user's want-to-go list
func wantListKey(username string) string {
	return fmt.Sprintf("%s:wantlist:%s", keyPrefix, username)
}
