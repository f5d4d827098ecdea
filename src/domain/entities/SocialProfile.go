package entities

import (
	"fmt"
	"slices"

	"github.com/samber/lo"

	"socialgraph/src/domain"
)

// SocialProfile agrega o Profile com timeline, notificações, conexões e reputação.
// Conexões e pedidos guardam apenas o email da contraparte.
type SocialProfile struct {
	*Profile

	timeline      []*Post
	notifications []string
	connections   map[string]struct{}
	requests      map[string]struct{}
	score         int
}

func NewSocialProfile(profile *Profile) *SocialProfile {
	return &SocialProfile{
		Profile:     profile,
		connections: make(map[string]struct{}),
		requests:    make(map[string]struct{}),
	}
}

// ############################################################
// ######################## TIMELINE ##########################
// ############################################################

func (sp *SocialProfile) AppendPost(post *Post) {
	sp.timeline = append(sp.timeline, post)
}

func (sp *SocialProfile) PostCount() int {
	return len(sp.timeline)
}

// Timeline returns the posts in insertion order. The posts are shared, the slice is not.
func (sp *SocialProfile) Timeline() []*Post {
	return slices.Clone(sp.timeline)
}

// Post returns the shared post at a positional index.
func (sp *SocialProfile) Post(index int) (*Post, error) {
	if index < 0 {
		return nil, domain.ErrNegativeIndex
	}
	if index >= len(sp.timeline) {
		return nil, fmt.Errorf("%w: index %d, timeline has %d posts", domain.ErrPostIndexOutOfRange, index, len(sp.timeline))
	}
	return sp.timeline[index], nil
}

func (sp *SocialProfile) PostField(field string, index int) (string, error) {
	post, err := sp.Post(index)
	if err != nil {
		return "", err
	}
	return post.Field(field)
}

func (sp *SocialProfile) ContentLine(lineIndex, postIndex int) (string, error) {
	post, err := sp.Post(postIndex)
	if err != nil {
		return "", err
	}
	return post.ContentLine(lineIndex)
}

// ############################################################
// ###################### NOTIFICAÇÕES ########################
// ############################################################

func (sp *SocialProfile) Enqueue(message string) {
	sp.notifications = append(sp.notifications, message)
}

// DequeueNext removes and returns the oldest notification.
func (sp *SocialProfile) DequeueNext() (string, error) {
	if len(sp.notifications) == 0 {
		return "", domain.ErrNoNotifications
	}
	next := sp.notifications[0]
	sp.notifications[0] = ""
	sp.notifications = sp.notifications[1:]
	return next, nil
}

func (sp *SocialProfile) NotificationCount() int {
	return len(sp.notifications)
}

// ############################################################
// ####################### REPUTAÇÃO ##########################
// ############################################################

func (sp *SocialProfile) Score() int {
	return sp.score
}

func (sp *SocialProfile) Tier() Tier {
	return TierFor(sp.score)
}

// AdjustScore adds delta (possibly negative) and returns the re-derived tier.
func (sp *SocialProfile) AdjustScore(delta int) Tier {
	sp.score += delta
	return sp.Tier()
}

// ############################################################
// ######################## CONEXÕES ##########################
// ############################################################

func (sp *SocialProfile) IsConnected(email string) bool {
	_, ok := sp.connections[email]
	return ok
}

func (sp *SocialProfile) AssertConnected(email string) error {
	if !sp.IsConnected(email) {
		return fmt.Errorf("%w: %s is not connected to %s", domain.ErrNotConnected, email, sp.Email())
	}
	return nil
}

func (sp *SocialProfile) HasPendingRequest(email string) bool {
	_, ok := sp.requests[email]
	return ok
}

func (sp *SocialProfile) ConnectionCount() int {
	return len(sp.connections)
}

// Connections lists the confirmed counterparts sorted by email.
func (sp *SocialProfile) Connections() []string {
	return sortedKeys(sp.connections)
}

// PendingRequests lists the inbound requesters sorted by email.
func (sp *SocialProfile) PendingRequests() []string {
	return sortedKeys(sp.requests)
}

// RenameCounterpart rewrites references to a counterpart whose email changed.
func (sp *SocialProfile) RenameCounterpart(oldEmail, newEmail string) {
	if _, ok := sp.connections[oldEmail]; ok {
		delete(sp.connections, oldEmail)
		sp.connections[newEmail] = struct{}{}
	}
	if _, ok := sp.requests[oldEmail]; ok {
		delete(sp.requests, oldEmail)
		sp.requests[newEmail] = struct{}{}
	}
}

// ForgetCounterpart drops every reference to a removed profile.
func (sp *SocialProfile) ForgetCounterpart(email string) {
	delete(sp.connections, email)
	delete(sp.requests, email)
}

func sortedKeys(set map[string]struct{}) []string {
	keys := lo.Keys(set)
	slices.Sort(keys)
	return keys
}
