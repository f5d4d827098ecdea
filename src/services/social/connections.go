package social

import (
	"context"
	"fmt"

	"socialgraph/src/domain"
	"socialgraph/src/domain/entities"
)

// RequestConnection sends a request from the active profile to target. Repeating a
// request is a no-op.
func (s *SocialService) RequestConnection(ctx context.Context, target string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	requester, targetProfile, err := s.sessionAnd(target)
	if err != nil {
		return fmt.Errorf("SocialService.RequestConnection - %w", err)
	}

	if !entities.RequestConnection(requester, targetProfile) {
		s.logger.Debug("Connection request ignored", "requester", requester.Email(), "target", target)
		return nil
	}

	targetProfile.Enqueue(fmt.Sprintf("%s quer sua amizade.", requester.Name()))
	s.publish(ctx, s.event(domain.EventConnectionRequested, requester.Email(), target))

	return nil
}

// AcceptConnection confirms the pending request requester sent to the active profile.
func (s *SocialService) AcceptConnection(ctx context.Context, requester string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	target, requesterProfile, err := s.sessionAnd(requester)
	if err != nil {
		return fmt.Errorf("SocialService.AcceptConnection - %w", err)
	}
	if err := entities.AcceptConnection(target, requesterProfile); err != nil {
		return fmt.Errorf("SocialService.AcceptConnection - %w", err)
	}

	requesterProfile.Enqueue(fmt.Sprintf("%s aceitou sua amizade.", target.Name()))
	s.publish(ctx, s.event(domain.EventConnectionAccepted, target.Email(), requester))

	return nil
}

// RejectConnection drops the pending request requester sent to the active profile.
func (s *SocialService) RejectConnection(ctx context.Context, requester string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	target, requesterProfile, err := s.sessionAnd(requester)
	if err != nil {
		return fmt.Errorf("SocialService.RejectConnection - %w", err)
	}
	if err := entities.RejectConnection(target, requesterProfile); err != nil {
		return fmt.Errorf("SocialService.RejectConnection - %w", err)
	}

	requesterProfile.Enqueue(fmt.Sprintf("%s rejeitou sua amizade.", target.Name()))
	s.publish(ctx, s.event(domain.EventConnectionRejected, target.Email(), requester))

	return nil
}

// RemoveConnection ends the connection between the active profile and other.
func (s *SocialService) RemoveConnection(ctx context.Context, other string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	owner, otherProfile, err := s.sessionAnd(other)
	if err != nil {
		return fmt.Errorf("SocialService.RemoveConnection - %w", err)
	}
	if err := entities.RemoveConnection(owner, otherProfile); err != nil {
		return fmt.Errorf("SocialService.RemoveConnection - %w", err)
	}

	otherProfile.Enqueue(fmt.Sprintf("%s removeu a sua amizade.", owner.Name()))
	s.publish(ctx, s.event(domain.EventConnectionRemoved, owner.Email(), other))

	return nil
}

// AssertConnected fails with ErrNotConnected when other is not in owner's confirmed set.
func (s *SocialService) AssertConnected(owner, other string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ownerProfile, err := s.resolve(owner)
	if err != nil {
		return fmt.Errorf("SocialService.AssertConnected - %w", err)
	}
	return ownerProfile.AssertConnected(other)
}

func (s *SocialService) ConnectionCount() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profile, err := s.sessionProfile()
	if err != nil {
		return 0, fmt.Errorf("SocialService.ConnectionCount - %w", err)
	}
	return profile.ConnectionCount(), nil
}

func (s *SocialService) Connections(email string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profile, err := s.resolve(email)
	if err != nil {
		return nil, fmt.Errorf("SocialService.Connections - %w", err)
	}
	return profile.Connections(), nil
}

func (s *SocialService) PendingRequests(email string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profile, err := s.resolve(email)
	if err != nil {
		return nil, fmt.Errorf("SocialService.PendingRequests - %w", err)
	}
	return profile.PendingRequests(), nil
}

// sessionAnd resolves the active profile and a counterpart.
func (s *SocialService) sessionAnd(email string) (*entities.SocialProfile, *entities.SocialProfile, error) {
	actor, err := s.sessionProfile()
	if err != nil {
		return nil, nil, err
	}
	other, err := s.resolve(email)
	if err != nil {
		return nil, nil, err
	}
	return actor, other, nil
}
