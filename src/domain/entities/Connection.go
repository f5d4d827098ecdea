package entities

import (
	"fmt"

	"socialgraph/src/domain"
)

// Máquina de estados por par requester→target: none → pending → confirmed.

// RequestConnection records requester in target's inbound set. It is an idempotent
// insert; it reports false when nothing changed (self request, already pending or
// already connected).
func RequestConnection(requester, target *SocialProfile) bool {
	email := requester.Email()
	if email == target.Email() || target.IsConnected(email) || target.HasPendingRequest(email) {
		return false
	}
	target.requests[email] = struct{}{}
	return true
}

// AcceptConnection confirms a pending request on both sides at once.
func AcceptConnection(target, requester *SocialProfile) error {
	email := requester.Email()
	if !target.HasPendingRequest(email) {
		return fmt.Errorf("%w: %s has no request from %s", domain.ErrNoSuchRequest, target.Email(), email)
	}
	delete(target.requests, email)
	target.connections[email] = struct{}{}
	requester.connections[target.Email()] = struct{}{}
	return nil
}

// RejectConnection drops a pending request without touching confirmed sets.
func RejectConnection(target, requester *SocialProfile) error {
	email := requester.Email()
	if !target.HasPendingRequest(email) {
		return fmt.Errorf("%w: %s has no request from %s", domain.ErrNoSuchRequest, target.Email(), email)
	}
	delete(target.requests, email)
	return nil
}

// RemoveConnection undoes a confirmed connection on both sides.
func RemoveConnection(owner, other *SocialProfile) error {
	if err := owner.AssertConnected(other.Email()); err != nil {
		return err
	}
	delete(owner.connections, other.Email())
	delete(other.connections, owner.Email())
	return nil
}
