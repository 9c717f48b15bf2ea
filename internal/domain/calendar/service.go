// Package calendar implements the normalization and defaulting pipeline run
// on every create/update of a calendar entity (event, venue, organizer,
// ticket) before it is dispatched to the remote content backend.
package calendar

import (
	"context"
	"fmt"
	"net/url"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// Gateway is the remote content backend the pipeline reads and writes
// through. It owns HTTP, authentication, and TLS concerns; implementations
// must be safe for concurrent use.
type Gateway interface {
	GetPost(ctx context.Context, kind Kind, id int64) (map[string]any, error)
	CreatePost(ctx context.Context, kind Kind, payload map[string]any) (map[string]any, error)
	UpdatePost(ctx context.Context, kind Kind, id int64, payload map[string]any) (map[string]any, error)
	DeletePost(ctx context.Context, kind Kind, id int64, force bool) (map[string]any, error)
	ListPosts(ctx context.Context, kind Kind, query url.Values) (map[string]any, error)
}

// SaveRequest is the outer request shape for a create or update. An absent
// (zero) ID means creation.
type SaveRequest struct {
	Kind Kind           `json:"kind" validate:"required,oneof=event venue organizer ticket"`
	ID   int64          `json:"id,omitempty" validate:"omitempty,gt=0"`
	Data map[string]any `json:"data" validate:"required"`
}

// SaveResult is returned on success: a human-readable summary plus the full
// entity as the backend serialized it.
type SaveResult struct {
	Summary string         `json:"summary"`
	Entity  map[string]any `json:"entity"`
}

// Service sequences the pipeline: validate input shape, transform, resolve
// defaults, validate schema, dispatch, compensate. One Service is shared
// across requests; it holds no per-request state.
type Service struct {
	gateway  Gateway
	parser   NaturalParser
	logger   zerolog.Logger
	validate *validator.Validate
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger the Service and its compensation step use.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithNaturalParser replaces the natural-language date parser. Tests use
// this to pin the reference time.
func WithNaturalParser(parser NaturalParser) Option {
	return func(s *Service) {
		s.parser = parser
	}
}

// NewService creates the pipeline service around a gateway.
func NewService(gateway Gateway, opts ...Option) *Service {
	s := &Service{
		gateway:  gateway,
		parser:   NewNaturalParser(),
		logger:   zerolog.Nop(),
		validate: validator.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Save creates (no ID) or updates (ID present) an entity. The raw data map
// is never mutated; all work happens on a derived copy.
//
// Date-format and missing-required-field failures are detected locally and
// short-circuit before any network call. A failure while resolving ticket
// defaults fails the whole operation; a failure in post-create compensation
// never does.
func (s *Service) Save(ctx context.Context, req SaveRequest) (*SaveResult, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}
	creating := req.ID == 0

	st := transformEntity(req.Kind, req.Data, creating, s.parser)
	if len(st.invalidDates) > 0 {
		return nil, &DateFormatError{Fields: st.invalidDates}
	}

	if req.Kind == KindTicket && creating {
		if err := s.resolveTicketDefaults(ctx, st); err != nil {
			return nil, err
		}
	}

	if err := validateSchema(req.Kind, st.payload, creating); err != nil {
		return nil, err
	}

	var (
		entity map[string]any
		err    error
	)
	if creating {
		entity, err = s.gateway.CreatePost(ctx, req.Kind, st.payload)
	} else {
		entity, err = s.gateway.UpdatePost(ctx, req.Kind, req.ID, st.payload)
	}
	if err != nil {
		return nil, fmt.Errorf("save %s: %w", req.Kind, err)
	}

	if req.Kind == KindTicket && creating {
		entity = s.capTicketEndDate(ctx, entity, st.explicitEndDate)
	}

	summary := s.summarize(req.Kind, entity, creating)
	s.logger.Info().
		Str("kind", req.Kind.String()).
		Bool("created", creating).
		Msg(summary)

	return &SaveResult{Summary: summary, Entity: entity}, nil
}

func (s *Service) summarize(kind Kind, entity map[string]any, created bool) string {
	verb := "Updated"
	if created {
		verb = "Created"
	}
	title, _ := stringValue(entity["title"])
	if title == "" {
		// Some endpoints return title as a rendered object.
		if obj, ok := entity["title"].(map[string]any); ok {
			title, _ = stringValue(obj["rendered"])
		}
	}
	if id, ok := entityID(entity); ok {
		if title != "" {
			return fmt.Sprintf("%s %s %q (ID %d)", verb, kind, title, id)
		}
		return fmt.Sprintf("%s %s (ID %d)", verb, kind, id)
	}
	return fmt.Sprintf("%s %s", verb, kind)
}
