package keys

import (
	"strings"
)

const (
	// PfxListing is used for prefixing listing cache keys
	PfxListing = "listing"
	// PfxHealthCheck is used for prefixing health check redis keys
	PfxHealthCheck = "healthcheck"
	// PfxSettings is used for prefixing market settings cache keys
	PfxSettings = "marketSettings"
)

// CustomKey joins key components with the specified delimiter
func CustomKey(delimiter string, components ...string) string {
	return strings.Join(components, delimiter)
}

// RedisKey joins redis key components
func RedisKey(components ...string) string {
	return CustomKey(":", components...)
}

// GetPrefix extracts the metric prefix from a redis key
func GetPrefix(key string) string {
	s := strings.Split(key, ":")
	if len(s) > 2 {
		return strings.Join([]string{s[0], s[1]}, ":")
	} else if len(s) > 1 {
		return s[0]
	}
	return ""
}
