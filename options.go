package wheelist

import (
	"fmt"
	"io"

	"github.com/djdv/go-wheelist/internal/indexcache"
	"github.com/sirupsen/logrus"
)

type (
	// Metrics receives index cache activity.
	// A [NoopMetrics] implementation is used by default.
	Metrics interface {
		// Hit is called when a lookup is served from the cache.
		Hit()
		// Miss is called when a lookup has to walk the list.
		Miss()
		// Invalidate is called when a structural change
		// purges a non-empty cache.
		Invalidate()
		// Size reports the number of memoized lookups.
		Size(entries int)
	}

	// NoopMetrics is a drop-in [Metrics] implementation that does nothing.
	NoopMetrics struct{}

	// CachePolicy selects how a bounded index cache evicts entries.
	CachePolicy uint8

	// Options configures a list. The zero value is ready to use:
	//   - CacheCapacity <= 0 => unbounded cache (CachePolicy is ignored)
	//   - nil Metrics        => NoopMetrics
	//   - nil Logger         => discard
	Options struct {
		// Metrics receives index cache activity.
		Metrics Metrics
		// Logger receives debug events for cache purges,
		// cursor repairs, and ignored moves.
		Logger logrus.FieldLogger
		// CacheCapacity bounds the number of memoized lookups.
		CacheCapacity int
		// CachePolicy picks the eviction policy for a bounded cache.
		CachePolicy CachePolicy
	}
)

const (
	// CacheLRU evicts the least recently used lookup.
	CacheLRU CachePolicy = iota
	// CacheARC balances recency and frequency of lookups.
	CacheARC
)

func (NoopMetrics) Hit()        {}
func (NoopMetrics) Miss()       {}
func (NoopMetrics) Invalidate() {}
func (NoopMetrics) Size(int)    {}

var _ Metrics = NoopMetrics{}

func (p CachePolicy) String() string {
	switch p {
	case CacheLRU:
		return "lru"
	case CacheARC:
		return "arc"
	default:
		return "unknown"
	}
}

func (opt Options) withDefaults() Options {
	if opt.Metrics == nil {
		opt.Metrics = NoopMetrics{}
	}
	if opt.Logger == nil {
		logger := logrus.New()
		logger.SetOutput(io.Discard)
		opt.Logger = logger
	}
	return opt
}

func (opt Options) storePolicy() (indexcache.Policy, error) {
	if opt.CacheCapacity <= 0 {
		return indexcache.Unbounded, nil
	}
	switch opt.CachePolicy {
	case CacheLRU:
		return indexcache.LRU, nil
	case CacheARC:
		return indexcache.ARC, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownPolicy, opt.CachePolicy)
	}
}
