package expand

import "fmt"

// Bucket names a modifier class. A suggestion lands in the bucket of the
// vocabulary that generated its query, never by content.
type Bucket string

const (
	BucketQuestions    Bucket = "Questions"
	BucketPrepositions Bucket = "Prepositions"
	BucketComparisons  Bucket = "Comparisons"
)

// BucketNames is the canonical bucket order used everywhere results are
// assembled or displayed.
var BucketNames = []Bucket{BucketQuestions, BucketPrepositions, BucketComparisons}

// The modifier vocabularies are fixed at process start and never mutated.
// Order matters: it determines variant generation order and therefore which
// duplicate survives dedup.
var (
	QuestionWords = []string{"what", "why", "how", "where", "when", "who", "which", "can", "will", "are"}
	Prepositions  = []string{"for", "with", "without", "to", "near", "in", "on", "about", "versus", "vs"}
	Comparisons   = []string{"vs", "versus", "alternative", "alternatives", "compare", "comparison", "like"}
)

// Variant is one derived query for a seed: the query string, the bucket its
// results belong to, and its ordinal in canonical generation order. The
// ordinal lets concurrent fetches reassemble in vocabulary order.
type Variant struct {
	Index  int
	Bucket Bucket
	Query  string
}

// Variants builds the full candidate query set for a seed in canonical
// order: question words prefix the seed; prepositions and comparison terms
// are tried in both orders, seed-then-modifier first.
func Variants(seed string) []Variant {
	variants := make([]Variant, 0, len(QuestionWords)+2*len(Prepositions)+2*len(Comparisons))

	add := func(bucket Bucket, query string) {
		variants = append(variants, Variant{
			Index:  len(variants),
			Bucket: bucket,
			Query:  query,
		})
	}

	for _, q := range QuestionWords {
		add(BucketQuestions, fmt.Sprintf("%s %s", q, seed))
	}
	for _, p := range Prepositions {
		add(BucketPrepositions, fmt.Sprintf("%s %s", seed, p))
		add(BucketPrepositions, fmt.Sprintf("%s %s", p, seed))
	}
	for _, c := range Comparisons {
		add(BucketComparisons, fmt.Sprintf("%s %s", seed, c))
		add(BucketComparisons, fmt.Sprintf("%s %s", c, seed))
	}
	return variants
}
