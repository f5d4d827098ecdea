package social

import "fmt"

// NextNotification pops the oldest notification of the active profile.
func (s *SocialService) NextNotification() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	profile, err := s.sessionProfile()
	if err != nil {
		return "", fmt.Errorf("SocialService.NextNotification - %w", err)
	}
	return profile.DequeueNext()
}

func (s *SocialService) NotificationCount() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profile, err := s.sessionProfile()
	if err != nil {
		return 0, fmt.Errorf("SocialService.NotificationCount - %w", err)
	}
	return profile.NotificationCount(), nil
}
