package query

import (
	"context"
	"math/big"
	"time"

	"github.com/charmbracelet/log"
	"github.com/goccy/go-json"

	"github.com/matzehuels/cosmos/pkg/cache"
	"github.com/matzehuels/cosmos/pkg/catalog"
	"github.com/matzehuels/cosmos/pkg/dyck"
	"github.com/matzehuels/cosmos/pkg/errors"
	"github.com/matzehuels/cosmos/pkg/observability"
	"github.com/matzehuels/cosmos/pkg/primes"
	"github.com/matzehuels/cosmos/pkg/tree"
)

// Runner executes queries with caching.
// Both CLI and API use it to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can safely share one Runner.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
	TTL    time.Duration

	// MaxPartitions caps n for Partitions; 0 means no cap.
	MaxPartitions int
	// MaxMatula caps n for Tree; 0 means no cap. Decoding a large prime
	// scans every prime below it.
	MaxMatula int
	// Refresh skips cache reads but still writes fresh results.
	Refresh bool
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
		TTL:    cache.DefaultTTL,
	}
}

// Analyze returns the snapshot of a structural level.
func (r *Runner) Analyze(ctx context.Context, level int) (catalog.Snapshot, bool, error) {
	return run(ctx, r, KindSnapshot, r.Keyer.SnapshotKey(level), func() (catalog.Snapshot, error) {
		return catalog.Analyze(level)
	})
}

// Partitions returns the Dyck words with n pairs, at most limit of them
// when limit > 0.
func (r *Runner) Partitions(ctx context.Context, n, limit int) (*Partitions, bool, error) {
	if err := errors.RequireNonNegative("n", n); err != nil {
		return nil, false, err
	}
	if r.MaxPartitions > 0 {
		if err := errors.RequireAtMost("n", n, r.MaxPartitions); err != nil {
			return nil, false, err
		}
	}
	if limit < 0 {
		limit = 0
	}
	p, hit, err := run(ctx, r, KindPartitions, r.Keyer.PartitionsKey(n, limit), func() (Partitions, error) {
		words := dyck.First(n, limit)
		catalan := dyck.Catalan(n)
		return Partitions{
			N:         n,
			Limit:     limit,
			Words:     words,
			Catalan:   catalan,
			Truncated: big.NewInt(int64(len(words))).Cmp(catalan) < 0,
		}, nil
	})
	if err != nil {
		return nil, false, err
	}
	return &p, hit, nil
}

// Tree decodes Matula number n.
func (r *Runner) Tree(ctx context.Context, n int) (*Tree, bool, error) {
	if r.MaxMatula > 0 {
		if err := errors.RequireAtMost("n", n, r.MaxMatula); err != nil {
			return nil, false, err
		}
	}
	t, hit, err := run(ctx, r, KindTree, r.Keyer.TreeKey(n), func() (Tree, error) {
		return decode(n)
	})
	if err != nil {
		return nil, false, err
	}
	return &t, hit, nil
}

func decode(n int) (Tree, error) {
	t, err := tree.Decode(n)
	if err != nil {
		return Tree{}, err
	}
	children := []int{}
	if n > 2 {
		factors, err := primes.Factorize(n)
		if err != nil {
			return Tree{}, err
		}
		for _, f := range factors {
			idx, err := primes.Index(f.Prime)
			if err != nil {
				return Tree{}, err
			}
			for range f.Multiplicity {
				children = append(children, idx)
			}
		}
	}
	return Tree{
		Matula:    n,
		Brackets:  tree.ToBrackets(t),
		Structure: t.String(),
		Size:      tree.Size(t),
		Depth:     tree.Depth(t),
		Children:  children,
	}, nil
}

// run serves key from the cache or computes, stores and returns it.
// Cache failures are logged and never fail the query.
func run[T any](ctx context.Context, r *Runner, kind, key string, compute func() (T, error)) (T, bool, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, false, err
	}
	start := time.Now()
	hooks := observability.Query()
	hooks.OnQueryStart(ctx, kind)

	if !r.Refresh {
		if v, ok := r.load(ctx, kind, key); ok {
			var out T
			if err := json.Unmarshal(v, &out); err == nil {
				hooks.OnQueryComplete(ctx, kind, true, time.Since(start), nil)
				r.Logger.Debug("cache hit", "kind", kind)
				return out, true, nil
			}
			r.Logger.Warn("discarding undecodable cache entry", "kind", kind)
		}
	}

	out, err := compute()
	if err != nil {
		hooks.OnQueryComplete(ctx, kind, false, time.Since(start), err)
		return zero, false, err
	}
	r.store(ctx, kind, key, out)

	elapsed := time.Since(start)
	hooks.OnQueryComplete(ctx, kind, false, elapsed, nil)
	r.Logger.Debug("computed", "kind", kind, "duration", elapsed)
	return out, false, nil
}

func (r *Runner) load(ctx context.Context, kind, key string) ([]byte, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "kind", kind, "err", err)
		return nil, false
	}
	if !hit {
		observability.Cache().OnCacheMiss(ctx, kind)
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, kind)
	return data, true
}

func (r *Runner) store(ctx context.Context, kind, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		r.Logger.Warn("encode result", "kind", kind, "err", err)
		return
	}
	if err := r.Cache.Set(ctx, key, data, r.TTL); err != nil {
		r.Logger.Warn("cache write failed", "kind", kind, "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, kind, len(data))
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
