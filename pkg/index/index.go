// Package index builds a prefix-searchable view over expansion results,
// mainly for interactive filtering in the CLI.
package index

import (
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/seokit/keyfan/pkg/expand"
)

// Entry locates one suggestion inside a result.
type Entry struct {
	Seed       string
	Bucket     expand.Bucket
	Suggestion string
}

// Index is a patricia trie keyed by lower-cased suggestion text. Build once
// per result; lookups are read-only after that.
type Index struct {
	trie *patricia.Trie
	size int
}

// Build indexes every (seed, bucket, suggestion) triple of result.
// Suggestions that fold to the same lowercase key share a trie node and
// accumulate their entries.
func Build(result *expand.Result) *Index {
	idx := &Index{trie: patricia.NewTrie()}

	for _, row := range result.Rows() {
		key := patricia.Prefix(strings.ToLower(row.Suggestion))
		entry := Entry{Seed: row.Seed, Bucket: row.Bucket, Suggestion: row.Suggestion}

		if item := idx.trie.Get(key); item != nil {
			idx.trie.Set(key, append(item.([]Entry), entry))
		} else {
			idx.trie.Insert(key, []Entry{entry})
		}
		idx.size++
	}

	log.Debugf("Indexed %d suggestions", idx.size)
	return idx
}

// Lookup returns every indexed entry whose suggestion starts with prefix,
// case-insensitively. An empty prefix returns all entries.
func (idx *Index) Lookup(prefix string) []Entry {
	var entries []Entry

	err := idx.trie.VisitSubtree(patricia.Prefix(strings.ToLower(prefix)), func(p patricia.Prefix, item patricia.Item) error {
		entries = append(entries, item.([]Entry)...)
		return nil
	})
	if err != nil {
		log.Errorf("Error searching suggestion index: %v", err)
	}
	return entries
}

// Size reports how many entries the index holds.
func (idx *Index) Size() int {
	return idx.size
}
