// Package cli handles cmd line input and expansion output for testing and quick one-off runs
package cli

import (
	"bufio"
	"context"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/seokit/keyfan/pkg/expand"
	"github.com/seokit/keyfan/pkg/index"
)

// InputHandler processes user input from stdin, expanding each entered seed
// and printing the resulting buckets. It accepts flags to control behavior
// such as region, per-bucket display limits and timing output.
type InputHandler struct {
	expander     *expand.Expander
	region       string
	displayLimit int
	showTiming   bool

	lastIndex *index.Index
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(expander *expand.Expander, region string, displayLimit int, showTiming bool) *InputHandler {
	return &InputHandler{
		expander:     expander,
		region:       region,
		displayLimit: displayLimit,
		showTiming:   showTiming,
	}
}

// Start begins the interface loop.
// It continuously prompts for input, reads a line from stdin,
// and passes the trimmed input to handleInput() for processing.
// Loop terminates if an error occurs while reading from stdin
func (h *InputHandler) Start(ctx context.Context) error {
	log.Print("keyfan CLI")
	reader := bufio.NewReader(os.Stdin)
	log.Printf("type a seed keyword and press Enter to expand it (region: %s, Ctrl+C to exit)", h.region)
	log.Print("use  /f <prefix>  to filter the last expansion by suggestion prefix")

	for {
		log.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		h.handleInput(ctx, line)
	}
}

// handleInput processes a single seed or a filter command.
func (h *InputHandler) handleInput(ctx context.Context, line string) {
	if prefix, ok := strings.CutPrefix(line, "/f "); ok {
		h.handleFilter(strings.TrimSpace(prefix))
		return
	}

	seeds := expand.CleanSeeds([]string{line})
	if len(seeds) == 0 {
		log.Errorf("Empty seed: %q", line)
		return
	}
	seed := seeds[0]

	start := time.Now()
	buckets := h.expander.Expand(ctx, seed, h.region)
	elapsed := time.Since(start)

	for _, name := range expand.BucketNames {
		suggestions := buckets.Get(name)
		log.Printf("%s (%d):", name, len(suggestions))
		shown := suggestions
		if h.displayLimit > 0 && len(shown) > h.displayLimit {
			shown = shown[:h.displayLimit]
		}
		for _, s := range shown {
			log.Printf("  %s", s)
		}
		if len(shown) < len(suggestions) {
			log.Printf("  ... and %d more", len(suggestions)-len(shown))
		}
	}

	if h.showTiming {
		log.Printf("%d suggestions in %dms", buckets.Total(), elapsed.Milliseconds())
	}

	h.lastIndex = buildIndex(seed, h.region, buckets)
}

// buildIndex wraps one seed's buckets into a Result so the prefix index can
// consume it.
func buildIndex(seed, region string, buckets expand.Buckets) *index.Index {
	result := expand.NewResult(region, map[string]expand.Buckets{seed: buckets}, []string{seed})
	return index.Build(result)
}

// handleFilter prints the last expansion's suggestions matching prefix.
func (h *InputHandler) handleFilter(prefix string) {
	if h.lastIndex == nil {
		log.Error("Nothing to filter yet, expand a seed first")
		return
	}
	entries := h.lastIndex.Lookup(prefix)
	log.Printf("%d suggestions match %q:", len(entries), prefix)
	for _, e := range entries {
		log.Printf("  [%s] %s", e.Bucket, e.Suggestion)
	}
}
