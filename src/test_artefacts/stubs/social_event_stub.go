package stubs

import (
	"time"

	"socialgraph/src/domain"

	"github.com/brianvoe/gofakeit/v6"
)

type SocialEventStub struct {
	event domain.SocialEvent
}

func NewSocialEventStub() SocialEventStub {
	event := domain.NewSocialEvent(
		domain.EventConnectionRequested,
		gofakeit.Email(),
		gofakeit.Email(),
		time.Now(),
	)
	return SocialEventStub{event: event}
}

func (ss SocialEventStub) WithType(eventType domain.EventType) SocialEventStub {
	ss.event.EventType = eventType
	return ss
}

func (ss SocialEventStub) WithActor(actor string) SocialEventStub {
	ss.event.Actor = actor
	return ss
}

func (ss SocialEventStub) WithAttribute(key, value string) SocialEventStub {
	ss.event = ss.event.With(key, value)
	return ss
}

func (ss SocialEventStub) Get() domain.SocialEvent {
	return ss.event
}
