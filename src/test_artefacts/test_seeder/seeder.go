package test_seeder

import (
	"context"
	"fmt"

	"socialgraph/src/services/social"
	"socialgraph/src/test_artefacts/stubs"
)

// TestSeeder monta cenários no SocialService através da API pública.
type TestSeeder struct {
	service *social.SocialService
}

func New(service *social.SocialService) TestSeeder {
	return TestSeeder{service: service}
}

func (ts TestSeeder) RegisterProfiles(ctx context.Context, count int) []social.RegisterRequest {
	requests := make([]social.RegisterRequest, 0, count)
	for range count {
		request := stubs.NewProfileStub().Get()
		if _, err := ts.service.Register(ctx, request); err != nil {
			panic(fmt.Sprintf("Failed to register %s: %v", request.Email, err))
		}
		requests = append(requests, request)
	}
	return requests
}

// LoginAs ends whatever session is active and opens one for the profile.
func (ts TestSeeder) LoginAs(ctx context.Context, profile social.RegisterRequest) {
	if _, active := ts.service.ActiveSession(); active {
		ts.Logout(ctx)
	}
	if err := ts.service.Login(ctx, profile.Email, profile.Credential); err != nil {
		panic(fmt.Sprintf("Failed to login %s: %v", profile.Email, err))
	}
}

func (ts TestSeeder) Logout(ctx context.Context) {
	if err := ts.service.Logout(ctx); err != nil {
		panic(fmt.Sprintf("Failed to logout: %v", err))
	}
}

// Connect runs the whole request/accept workflow and leaves no session open.
// Both profiles end with their notifications drained.
func (ts TestSeeder) Connect(ctx context.Context, requester, target social.RegisterRequest) {
	ts.LoginAs(ctx, requester)
	if err := ts.service.RequestConnection(ctx, target.Email); err != nil {
		panic(fmt.Sprintf("Failed to request connection: %v", err))
	}

	ts.LoginAs(ctx, target)
	if err := ts.service.AcceptConnection(ctx, requester.Email); err != nil {
		panic(fmt.Sprintf("Failed to accept connection: %v", err))
	}
	ts.drain()

	ts.LoginAs(ctx, requester)
	ts.drain()
	ts.Logout(ctx)
}

func (ts TestSeeder) drain() {
	for {
		count, err := ts.service.NotificationCount()
		if err != nil || count == 0 {
			return
		}
		if _, err := ts.service.NextNotification(); err != nil {
			panic(fmt.Sprintf("Failed to drain notifications: %v", err))
		}
	}
}
