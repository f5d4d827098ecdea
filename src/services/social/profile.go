package social

import (
	"context"
	"fmt"
	"strings"

	"socialgraph/src/domain"
	"socialgraph/src/helper/validation"
)

// Attribute reads a symbolic attribute of any registered profile.
func (s *SocialService) Attribute(attribute, email string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profile, err := s.resolve(email)
	if err != nil {
		return "", fmt.Errorf("SocialService.Attribute - %w", err)
	}
	return profile.Attribute(attribute)
}

// SessionAttribute reads a symbolic attribute of the active profile.
func (s *SocialService) SessionAttribute(attribute string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profile, err := s.sessionProfile()
	if err != nil {
		return "", fmt.Errorf("SocialService.SessionAttribute - %w", err)
	}
	return profile.Attribute(attribute)
}

// UpdateProfile changes one attribute of the active profile. Changing the email
// re-keys the registry and every counterpart reference.
func (s *SocialService) UpdateProfile(ctx context.Context, attribute, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	profile, err := s.sessionProfile()
	if err != nil {
		return fmt.Errorf("SocialService.UpdateProfile - %w", err)
	}

	switch domain.NormalizeName(attribute) {
	case domain.AttributeName:
		if err := profile.SetName(value); err != nil {
			return fmt.Errorf("SocialService.UpdateProfile - %w", err)
		}

	case domain.AttributeEmail:
		if err := s.changeEmail(profile.Email(), value); err != nil {
			return fmt.Errorf("SocialService.UpdateProfile - %w", err)
		}

	case domain.AttributeBirthDate:
		birthDate, err := validation.ValidateDate(value)
		if err != nil {
			return fmt.Errorf("SocialService.UpdateProfile - %w", err)
		}
		profile.SetBirthDate(birthDate)

	case domain.AttributePhoto:
		profile.SetPhoto(value)

	case domain.AttributeCredential:
		return fmt.Errorf("SocialService.UpdateProfile - use ChangeCredential: %w", domain.ErrProtectedAttribute)

	default:
		return fmt.Errorf("SocialService.UpdateProfile - %w: %q", domain.ErrInvalidFieldRequest, attribute)
	}

	s.logger.Debug("Profile updated", "email", profile.Email(), "attribute", attribute)
	s.publish(ctx, s.event(domain.EventProfileUpdated, profile.Email(), "").With("attribute", domain.NormalizeName(attribute)))

	return nil
}

func (s *SocialService) changeEmail(oldEmail, newEmail string) error {
	newEmail = strings.TrimSpace(newEmail)
	if err := validation.ValidateEmail(newEmail); err != nil {
		return err
	}
	if oldEmail == newEmail {
		return nil
	}
	if _, exists := s.profiles[newEmail]; exists {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateIdentity, newEmail)
	}

	profile := s.profiles[oldEmail]
	delete(s.profiles, oldEmail)
	profile.ChangeEmail(newEmail)
	s.profiles[newEmail] = profile

	for _, other := range s.profiles {
		other.RenameCounterpart(oldEmail, newEmail)
	}
	if s.activeSession == oldEmail {
		s.activeSession = newEmail
	}
	return nil
}

// ChangeCredential replaces the active profile's credential after checking the old one.
func (s *SocialService) ChangeCredential(ctx context.Context, newCredential, oldCredential string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	profile, err := s.sessionProfile()
	if err != nil {
		return fmt.Errorf("SocialService.ChangeCredential - %w", err)
	}
	if err := profile.CheckCredential(oldCredential); err != nil {
		return fmt.Errorf("SocialService.ChangeCredential - %w", err)
	}

	profile.SetCredential(newCredential)
	s.publish(ctx, s.event(domain.EventProfileUpdated, profile.Email(), "").With("attribute", domain.AttributeCredential))

	return nil
}
