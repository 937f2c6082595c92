package expand

// Row is one (seed, bucket, suggestion) triple, the unit downstream
// exporters serialize.
type Row struct {
	Seed       string
	Bucket     Bucket
	Suggestion string
}

// Result holds the expansion output for one run: every seed mapped to its
// three buckets. Built during Run, read-only afterwards.
type Result struct {
	Region  string
	Seeds   []string
	buckets map[string]Buckets
}

// NewResult assembles a Result from already-expanded buckets. Run builds
// results itself; this is for callers that expand seeds one at a time.
func NewResult(region string, buckets map[string]Buckets, seeds []string) *Result {
	return &Result{
		Region:  region,
		Seeds:   seeds,
		buckets: buckets,
	}
}

// For returns the buckets expanded for seed. The zero value is returned for
// unknown seeds.
func (r *Result) For(seed string) Buckets {
	return r.buckets[seed]
}

// Len counts suggestions across all seeds and buckets.
func (r *Result) Len() int {
	total := 0
	for _, b := range r.buckets {
		total += b.Total()
	}
	return total
}

// Rows flattens the result into triples, seeds in run order and buckets in
// canonical order within each seed.
func (r *Result) Rows() []Row {
	rows := make([]Row, 0, r.Len())
	for _, seed := range r.Seeds {
		buckets := r.buckets[seed]
		for _, name := range BucketNames {
			for _, s := range buckets.Get(name) {
				rows = append(rows, Row{Seed: seed, Bucket: name, Suggestion: s})
			}
		}
	}
	return rows
}
