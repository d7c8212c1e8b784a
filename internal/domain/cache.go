package domain

import "time"

// Cache is a small key-value store with per-entry expiry, used to shave load
// off read-heavy lookups (event, hotels). Values are stored as raw bytes;
// callers handle serialization.
type Cache interface {
	Get(key string) ([]byte, bool)
	SetEx(key string, value []byte, ttl time.Duration)
}
