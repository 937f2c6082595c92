package server

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/seokit/keyfan/internal/logger"
	"github.com/seokit/keyfan/pkg/expand"
	"github.com/seokit/keyfan/pkg/suggest"
)

// Server handles the IPC for keyword expansion
type Server struct {
	expander *expand.Expander
	decoder  *msgpack.Decoder
	encoder  *msgpack.Encoder
	log      *log.Logger
}

// NewServer creates a new expansion server using stdin/stdout for IPC
func NewServer(expander *expand.Expander) *Server {
	return NewServerWithStreams(expander, os.Stdin, os.Stdout)
}

// NewServerWithStreams creates a server on explicit streams, used by tests
func NewServerWithStreams(expander *expand.Expander, r io.Reader, w io.Writer) *Server {
	return &Server{
		expander: expander,
		decoder:  msgpack.NewDecoder(r),
		encoder:  msgpack.NewEncoder(w),
		log:      logger.Default("ipc"),
	}
}

// Start begins listening for IPC requests. It returns nil when the client
// disconnects (EOF) and the read error otherwise.
func (s *Server) Start(ctx context.Context) error {
	s.log.Debug("Starting server.")

	s.sendResponse(HealthResponse{Status: "ready"})

	for {
		var request ExpandRequest
		if err := s.decoder.Decode(&request); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			s.log.Errorf("Decoding request: %v", err)
			return err
		}
		s.handleRequest(ctx, request)
	}
}

// handleRequest dispatches one decoded request
func (s *Server) handleRequest(ctx context.Context, request ExpandRequest) {
	switch {
	case request.Health:
		s.sendResponse(HealthResponse{ID: request.ID, Status: "ok"})
	case len(request.Seeds) > 0 || request.Region != "":
		s.handleExpand(ctx, request)
	default:
		s.sendError(request.ID, "Missing 'seeds' parameter", 400)
	}
}

// handleExpand validates the request, runs the expansion and sends the
// per-seed buckets back with timing info.
func (s *Server) handleExpand(ctx context.Context, request ExpandRequest) {
	region := request.Region
	if region == "" {
		s.sendError(request.ID, "Missing 'region' parameter", 400)
		s.log.Debug("Region is empty in request")
		return
	}
	if !suggest.ValidRegion(region) {
		s.sendError(request.ID, "Unsupported region code: "+region, 400)
		s.log.Debugf("Unsupported region %q in request", region)
		return
	}

	start := time.Now()
	result, err := s.expander.Run(ctx, request.Seeds, region)
	if err != nil {
		s.sendError(request.ID, err.Error(), 400)
		s.log.Debugf("Expansion rejected: %v", err)
		return
	}
	elapsed := time.Since(start)

	results := make([]SeedBuckets, 0, len(result.Seeds))
	for _, seed := range result.Seeds {
		buckets := result.For(seed)
		results = append(results, SeedBuckets{
			Seed:         seed,
			Questions:    buckets.Questions,
			Prepositions: buckets.Prepositions,
			Comparisons:  buckets.Comparisons,
		})
	}

	s.sendResponse(ExpandResponse{
		ID:        request.ID,
		Results:   results,
		Count:     result.Len(),
		TimeTaken: elapsed.Milliseconds(),
	})
}

// sendResponse encodes the given response as msgpack and writes it to the
// client stream.
func (s *Server) sendResponse(response interface{}) {
	if err := s.encoder.Encode(response); err != nil {
		s.log.Errorf("Encoding response: %v", err)
	}
}

// sendError sends an error response
func (s *Server) sendError(id, message string, code int) {
	s.sendResponse(ExpandError{
		ID:    id,
		Error: message,
		Code:  code,
	})
}
