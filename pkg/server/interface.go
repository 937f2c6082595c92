/*
Package server implements msgpack IPC for keyword expansion services.

The server package provides a minimal interface for seed keyword expansion
using msgpack serialization over stdin/stdout.

The protocol uses binary msgpack encoding and supports expansion requests and
health checks. Messages are processed synchronously with timing info included
in responses.

# IPC

The server operates on a request response model where clients send structured
messages via stdin and receive responses through stdout. Each message
contains an ID field and other fields based on the operation type.

Expansion requests use mainly this structure (shown as JSON for readability):

	{"id": "req_001", "s": ["electric cars"], "gl": "IN"}

The server responds with per-seed buckets of deduplicated suggestions:

	{"id": "req_001", "r": [{"k": "electric cars", "q": [...], "p": [...], "c": [...]}], "n": 412, "t": 1843}

Health checks carry only an ID:

	{"id": "hc_001", "health": true}

Validation failures and unknown messages produce an error payload with a
status code:

	{"id": "req_002", "e": "no seed keywords provided", "c": 400}

Upstream suggest failures are never surfaced here: a variant whose fetch
failed simply contributes nothing to its bucket, so a fully degraded upstream
yields empty buckets with a 200-shaped response rather than an error.
*/
package server

// ExpandRequest - seed expansion request
type ExpandRequest struct {
	ID     string   `msgpack:"id"`
	Seeds  []string `msgpack:"s,omitempty"`
	Region string   `msgpack:"gl,omitempty"`
	Health bool     `msgpack:"health,omitempty"`
}

// SeedBuckets - expansion output for one seed
type SeedBuckets struct {
	Seed         string   `msgpack:"k"`
	Questions    []string `msgpack:"q"`
	Prepositions []string `msgpack:"p"`
	Comparisons  []string `msgpack:"c"`
}

// ExpandResponse - expansion response
type ExpandResponse struct {
	ID        string        `msgpack:"id"`
	Results   []SeedBuckets `msgpack:"r"`
	Count     int           `msgpack:"n"`
	TimeTaken int64         `msgpack:"t"`
}

// HealthResponse - health check response
type HealthResponse struct {
	ID     string `msgpack:"id"`
	Status string `msgpack:"status"`
}

// ExpandError holds basic error information for expansion requests
type ExpandError struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
