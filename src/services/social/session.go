package social

import (
	"context"
	"fmt"

	"socialgraph/src/domain"
)

// Login opens the session for email.
func (s *SocialService) Login(ctx context.Context, email, credential string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	profile, err := s.resolve(email)
	if err != nil {
		return fmt.Errorf("SocialService.Login - %w", err)
	}
	if s.activeSession != "" {
		return fmt.Errorf("SocialService.Login - %w: %s", domain.ErrAlreadyAuthenticated, s.activeSession)
	}
	if err := profile.CheckCredential(credential); err != nil {
		return fmt.Errorf("SocialService.Login - %w", err)
	}

	s.activeSession = email
	s.logger.Info("Session started", "email", email)
	s.publish(ctx, s.event(domain.EventSessionStarted, email, ""))

	return nil
}

func (s *SocialService) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.activeSession == "" {
		return fmt.Errorf("SocialService.Logout - %w", domain.ErrNoActiveSession)
	}

	email := s.activeSession
	s.activeSession = ""
	s.logger.Info("Session ended", "email", email)
	s.publish(ctx, s.event(domain.EventSessionEnded, email, ""))

	return nil
}

// ActiveSession returns the email of the active session, if any.
func (s *SocialService) ActiveSession() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.activeSession, s.activeSession != ""
}

// Remove deletes a profile and every reference other profiles hold to it. Removing
// the active profile also ends its session.
func (s *SocialService) Remove(ctx context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.resolve(email); err != nil {
		return fmt.Errorf("SocialService.Remove - %w", err)
	}

	delete(s.profiles, email)
	for _, other := range s.profiles {
		other.ForgetCounterpart(email)
	}
	if s.activeSession == email {
		s.activeSession = ""
	}

	s.logger.Info("Profile removed", "email", email)
	s.publish(ctx, s.event(domain.EventProfileRemoved, email, ""))

	return nil
}

// Shutdown only checks that nobody is still logged in.
func (s *SocialService) Shutdown(ctx context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.activeSession != "" {
		return fmt.Errorf("SocialService.Shutdown - %w: %s", domain.ErrSessionStillActive, s.activeSession)
	}

	s.logger.Info("Social graph shut down", "profiles", len(s.profiles))
	return nil
}
