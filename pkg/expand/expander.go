// Package expand is the core, generating query variants from seed keywords
// and grouping the fetched suggestions into deduplicated buckets.
package expand

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/seokit/keyfan/internal/utils"
	"github.com/seokit/keyfan/pkg/suggest"
)

// MaxSeeds caps how many seeds a single run processes.
const MaxSeeds = 5

// DefaultWorkers bounds concurrent suggest queries per seed.
const DefaultWorkers = 8

var (
	// ErrNoSeeds is returned when no non-empty seed survives trimming.
	ErrNoSeeds = errors.New("expand: no seed keywords provided")
	// ErrBadRegion is returned for a region code outside the supported set.
	ErrBadRegion = errors.New("expand: unsupported region code")
)

// Buckets holds the expanded suggestions for one seed, grouped by the
// modifier class that produced them. Within a bucket suggestions are unique
// under case-insensitive comparison and ordered by first occurrence in
// variant-generation order. The same string may appear in more than one
// bucket; only within-bucket duplicates are removed.
type Buckets struct {
	Questions    []string
	Prepositions []string
	Comparisons  []string
}

// Get returns the suggestions for a named bucket.
func (b Buckets) Get(name Bucket) []string {
	switch name {
	case BucketQuestions:
		return b.Questions
	case BucketPrepositions:
		return b.Prepositions
	case BucketComparisons:
		return b.Comparisons
	}
	return nil
}

// Total counts suggestions across all three buckets.
func (b Buckets) Total() int {
	return len(b.Questions) + len(b.Prepositions) + len(b.Comparisons)
}

// Expander fans seed keywords out into query variants and collects the
// upstream suggestions into buckets. Stateless per call; safe for
// concurrent use as long as the Fetcher is.
type Expander struct {
	fetcher suggest.Fetcher
	workers int
}

// NewExpander creates an expander on top of fetcher. workers bounds the
// concurrent queries per seed; values below 1 fall back to DefaultWorkers.
func NewExpander(fetcher suggest.Fetcher, workers int) *Expander {
	if workers < 1 {
		workers = DefaultWorkers
	}
	return &Expander{
		fetcher: fetcher,
		workers: workers,
	}
}

// Expand runs every query variant for one seed and returns the three
// buckets. Queries run concurrently but results are reassembled in
// canonical variant order before dedup, so output is identical to a
// sequential pass. Individual query failures contribute nothing to their
// bucket; Expand itself cannot fail, worst case all buckets are empty.
func (e *Expander) Expand(ctx context.Context, seed, region string) Buckets {
	variants := Variants(seed)
	results := make([][]string, len(variants))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(e.workers)

	for _, v := range variants {
		v := v
		eg.Go(func() error {
			results[v.Index] = e.fetcher.Fetch(ctx, v.Query, region)
			return nil
		})
	}
	// Workers never return errors; Wait is only a join point.
	_ = eg.Wait()

	// Concatenate raw results per bucket in canonical variant order, then
	// dedup each bucket independently.
	var raw Buckets
	for _, v := range variants {
		switch v.Bucket {
		case BucketQuestions:
			raw.Questions = append(raw.Questions, results[v.Index]...)
		case BucketPrepositions:
			raw.Prepositions = append(raw.Prepositions, results[v.Index]...)
		case BucketComparisons:
			raw.Comparisons = append(raw.Comparisons, results[v.Index]...)
		}
	}

	buckets := Buckets{
		Questions:    utils.Dedup(raw.Questions),
		Prepositions: utils.Dedup(raw.Prepositions),
		Comparisons:  utils.Dedup(raw.Comparisons),
	}

	log.Debugf("Expanded %q (%s): %d questions, %d prepositions, %d comparisons",
		seed, region, len(buckets.Questions), len(buckets.Prepositions), len(buckets.Comparisons))
	return buckets
}

// Run expands every seed in order and collects the per-seed buckets.
// Seeds are trimmed, blank lines dropped and the list capped at MaxSeeds.
// An empty effective seed list or an unknown region fails before any query
// is issued.
func (e *Expander) Run(ctx context.Context, seeds []string, region string) (*Result, error) {
	cleaned := CleanSeeds(seeds)
	if len(cleaned) == 0 {
		return nil, ErrNoSeeds
	}
	if !suggest.ValidRegion(region) {
		return nil, ErrBadRegion
	}

	result := &Result{
		Region:  region,
		Seeds:   cleaned,
		buckets: make(map[string]Buckets, len(cleaned)),
	}
	for _, seed := range cleaned {
		result.buckets[seed] = e.Expand(ctx, seed, region)
	}
	return result, nil
}

// CleanSeeds trims seeds, drops empty entries and caps the list at MaxSeeds,
// preserving order.
func CleanSeeds(seeds []string) []string {
	cleaned := make([]string, 0, len(seeds))
	for _, s := range seeds {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		cleaned = append(cleaned, s)
		if len(cleaned) == MaxSeeds {
			break
		}
	}
	return cleaned
}
