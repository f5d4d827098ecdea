package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Atributos consultáveis/atualizáveis de um perfil.
const (
	AttributeName       = "name"
	AttributeEmail      = "email"
	AttributeBirthDate  = "birth date"
	AttributePhoto      = "photo"
	AttributeCredential = "credential"
)

// Campos simbólicos de um post.
const (
	PostFieldContent   = "content"
	PostFieldTimestamp = "timestamp"
	PostFieldTags      = "tags"
)

// NormalizeName folds a symbolic attribute/field name for case-insensitive lookup.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ############################################################
// ################ EVENTOS DA REDE SOCIAL ###################
// ############################################################

type EventType string

const (
	EventProfileRegistered   EventType = "profile.registered"
	EventProfileUpdated      EventType = "profile.updated"
	EventProfileRemoved      EventType = "profile.removed"
	EventSessionStarted      EventType = "session.started"
	EventSessionEnded        EventType = "session.ended"
	EventConnectionRequested EventType = "connection.requested"
	EventConnectionAccepted  EventType = "connection.accepted"
	EventConnectionRejected  EventType = "connection.rejected"
	EventConnectionRemoved   EventType = "connection.removed"
	EventPostCreated         EventType = "post.created"
	EventPostLiked           EventType = "post.liked"
	EventPostRejected        EventType = "post.rejected"
	EventPostTagged          EventType = "post.tagged"
	EventScoreAdjusted       EventType = "score.adjusted"
)

// SocialEvent descreve uma transição já aplicada ao grafo social.
type SocialEvent struct {
	EventID    string            `json:"event_id"`
	EventType  EventType         `json:"event_type"`
	Actor      string            `json:"actor"`
	Target     string            `json:"target,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
	OccurredAt time.Time         `json:"occurred_at"`
}

func NewSocialEvent(eventType EventType, actor, target string, occurredAt time.Time) SocialEvent {
	return SocialEvent{
		EventID:    uuid.NewString(),
		EventType:  eventType,
		Actor:      actor,
		Target:     target,
		OccurredAt: occurredAt.UTC(),
	}
}

// With returns a copy of the event carrying an extra attribute.
func (e SocialEvent) With(key, value string) SocialEvent {
	attributes := make(map[string]string, len(e.Attributes)+1)
	for k, v := range e.Attributes {
		attributes[k] = v
	}
	attributes[key] = value
	e.Attributes = attributes
	return e
}
