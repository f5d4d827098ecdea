package social

import (
	"context"
	"fmt"
	"strings"

	"socialgraph/src/domain"
	"socialgraph/src/domain/entities"
	"socialgraph/src/helper/validation"
)

// RegisterRequest carrega os campos brutos do cadastro.
type RegisterRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Credential string `json:"credential"`
	BirthDate  string `json:"birth_date"`
	Photo      string `json:"photo"`
}

// Register validates the fields and adds a new profile, returning its email.
func (s *SocialService) Register(ctx context.Context, request RegisterRequest) (string, error) {
	if strings.TrimSpace(request.Name) == "" {
		return "", fmt.Errorf("SocialService.Register - %w", domain.ErrInvalidName)
	}
	request.Email = strings.TrimSpace(request.Email)
	if err := validation.ValidateEmail(request.Email); err != nil {
		return "", fmt.Errorf("SocialService.Register - %w", err)
	}
	birthDate, err := validation.ValidateDate(request.BirthDate)
	if err != nil {
		return "", fmt.Errorf("SocialService.Register - %w", err)
	}

	profile, err := entities.NewProfile(request.Name, request.Email, request.Credential, birthDate, request.Photo)
	if err != nil {
		return "", fmt.Errorf("SocialService.Register - %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.profiles[request.Email]; exists {
		return "", fmt.Errorf("SocialService.Register - %w: %s", domain.ErrDuplicateIdentity, request.Email)
	}

	s.profiles[request.Email] = entities.NewSocialProfile(profile)
	s.logger.Info("Profile registered", "email", request.Email)
	s.publish(ctx, s.event(domain.EventProfileRegistered, request.Email, ""))

	return request.Email, nil
}
