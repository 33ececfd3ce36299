package optimize

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"sync"
	"time"
)

// ResultCache memoizes MILP solves keyed by request hash. Re-solving the
// same plant/scenario/load combination is pure overhead; solves for a
// 288-step representative year are not free even for the internal simplex
// fallback.
type ResultCache struct {
	mu    sync.RWMutex
	store map[string]cacheEntry
	ttl   time.Duration
}

type cacheEntry struct {
	response  Response
	expiresAt time.Time
}

var globalCache *ResultCache
var cacheOnce sync.Once

// GetCache returns the process-wide result cache, creating it on first use.
// TTL defaults to 10 minutes and is overridable via OPTIMIZE_CACHE_TTL
// (a duration string, e.g. "30s" or "5m"). Set OPTIMIZE_CACHE_DISABLE=true
// to bypass caching entirely.
func GetCache() *ResultCache {
	if os.Getenv("OPTIMIZE_CACHE_DISABLE") == "true" {
		return nil
	}

	cacheOnce.Do(func() {
		ttl := 10 * time.Minute
		if raw := os.Getenv("OPTIMIZE_CACHE_TTL"); raw != "" {
			if parsed, err := time.ParseDuration(raw); err == nil {
				ttl = parsed
			}
		}
		globalCache = &ResultCache{
			store: make(map[string]cacheEntry),
			ttl:   ttl,
		}
		go globalCache.cleanup()
	})

	return globalCache
}

func (c *ResultCache) Get(key string) (Response, bool) {
	if c == nil {
		return Response{}, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.store[key]
	if !ok || time.Now().After(entry.expiresAt) {
		return Response{}, false
	}
	return entry.response, true
}

func (c *ResultCache) Set(key string, resp Response) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store[key] = cacheEntry{response: resp, expiresAt: time.Now().Add(c.ttl)}
}

func (c *ResultCache) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		c.mu.Lock()
		now := time.Now()
		for k, e := range c.store {
			if now.After(e.expiresAt) {
				delete(c.store, k)
			}
		}
		c.mu.Unlock()
	}
}

// RequestKey builds a deterministic cache key from a request.
func RequestKey(req Request) string {
	deref := func(p *float64) string {
		if p == nil {
			return "nil"
		}
		return fmt.Sprintf("%g", *p)
	}
	raw := fmt.Sprintf("%s:%.4f:%.4f:%d:%s:%s:%s:%v:%s:%s:%s:%s",
		req.PlantID,
		req.TargetLoadMW,
		req.MaxGasBackupPct,
		req.CommissioningYear,
		req.CostScenario,
		deref(req.Latitude),
		deref(req.ConflictPct),
		req.SolarProfile,
		deref(req.GasHeatRateBTUPerKWh),
		deref(req.GasCapacityFactor),
		deref(req.SolarCFHint),
		deref(req.MaxSolarMW),
	)
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
