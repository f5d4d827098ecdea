package social

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"socialgraph/src/domain"
	"socialgraph/src/domain/entities"
)

// EventPublisher recebe as transições já aplicadas ao grafo.
type EventPublisher interface {
	Publish(ctx context.Context, events ...domain.SocialEvent) error
}

// RankingStore guarda o último ranking calculado.
type RankingStore interface {
	SaveRanking(ctx context.Context, ranking domain.Ranking) error
	LoadRanking(ctx context.Context) (domain.Ranking, bool, error)
}

// SocialService is the registry of every SocialProfile, keyed by email, plus the
// single active session. One RWMutex guards the map, the session and every
// profile reachable from it.
type SocialService struct {
	mu            sync.RWMutex
	logger        *slog.Logger
	profiles      map[string]*entities.SocialProfile
	activeSession string
	policy        entities.Policy
	publisher     EventPublisher
	rankingStore  RankingStore
	now           func() time.Time
}

// NewSocialService accepts nil publisher and store; both are optional sinks.
func NewSocialService(
	logger *slog.Logger,
	policy entities.Policy,
	publisher EventPublisher,
	rankingStore RankingStore,
) *SocialService {
	if policy == nil {
		policy = entities.DefaultPolicy()
	}
	if publisher == nil {
		publisher = noopPublisher{}
	}

	return &SocialService{
		logger:       logger,
		profiles:     make(map[string]*entities.SocialProfile),
		policy:       policy,
		publisher:    publisher,
		rankingStore: rankingStore,
		now:          time.Now,
	}
}

// Policy returns the delta table in use.
func (s *SocialService) Policy() entities.Policy {
	return s.policy
}

// Profile resolves a registered profile by email.
func (s *SocialService) Profile(email string) (*entities.SocialProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.resolve(email)
}

func (s *SocialService) resolve(email string) (*entities.SocialProfile, error) {
	profile, ok := s.profiles[email]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownIdentity, email)
	}
	return profile, nil
}

// sessionProfile resolves the profile of the active session.
func (s *SocialService) sessionProfile() (*entities.SocialProfile, error) {
	if s.activeSession == "" {
		return nil, domain.ErrNoActiveSession
	}
	return s.resolve(s.activeSession)
}

func (s *SocialService) event(eventType domain.EventType, actor, target string) domain.SocialEvent {
	return domain.NewSocialEvent(eventType, actor, target, s.now())
}

// publish never fails the operation: the graph state is already authoritative.
func (s *SocialService) publish(ctx context.Context, events ...domain.SocialEvent) {
	if err := s.publisher.Publish(ctx, events...); err != nil {
		s.logger.Warn("Failed to publish social events", "error", err, "count", len(events))
	}
}

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, ...domain.SocialEvent) error {
	return nil
}
