package stubs

import (
	"time"

	"socialgraph/src/helper/validation"
	"socialgraph/src/services/social"

	"github.com/brianvoe/gofakeit/v6"
)

type ProfileStub struct {
	request social.RegisterRequest
}

func NewProfileStub() ProfileStub {
	birthDate := gofakeit.DateRange(
		time.Date(1950, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2005, 12, 31, 0, 0, 0, 0, time.UTC),
	)

	request := social.RegisterRequest{
		Name:       gofakeit.Name(),
		Email:      gofakeit.Email(),
		Credential: gofakeit.Password(true, true, true, false, false, 12),
		BirthDate:  birthDate.Format(validation.DateLayout),
	}

	return ProfileStub{request: request}
}

func (ps ProfileStub) WithName(name string) ProfileStub {
	ps.request.Name = name
	return ps
}

func (ps ProfileStub) WithEmail(email string) ProfileStub {
	ps.request.Email = email
	return ps
}

func (ps ProfileStub) WithCredential(credential string) ProfileStub {
	ps.request.Credential = credential
	return ps
}

func (ps ProfileStub) WithBirthDate(birthDate string) ProfileStub {
	ps.request.BirthDate = birthDate
	return ps
}

func (ps ProfileStub) WithPhoto(photo string) ProfileStub {
	ps.request.Photo = photo
	return ps
}

func (ps ProfileStub) Get() social.RegisterRequest {
	return ps.request
}
