package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

const GlobalKeyPrefix = "craftify"

// GenerateCacheKey builds "craftify:<service>:<object>:<id>", with any
// params joined by "_" as a trailing segment.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return baseKey + ":" + strings.Join(paramsKey, "_")
	}
	return baseKey
}

// TopicIdentifier hashes free-text request fields into a key-safe segment.
// Case and surrounding whitespace do not change the result.
func TopicIdentifier(parts ...string) string {
	normalized := make([]string, len(parts))
	for i, p := range parts {
		normalized[i] = strings.ToLower(strings.TrimSpace(p))
	}
	sum := sha256.Sum256([]byte(strings.Join(normalized, "\x00")))
	return hex.EncodeToString(sum[:16])
}
