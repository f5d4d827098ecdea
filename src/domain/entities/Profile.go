package entities

import (
	"strings"
	"time"

	"socialgraph/src/domain"
)

// DefaultPhoto é o avatar usado quando o cadastro não informa imagem.
const DefaultPhoto = "resources/default.jpg"

const birthDateLayout = "2006-01-02"

// Profile is the identity record of one person. The credential never leaves the
// struct except through CheckCredential.
type Profile struct {
	name       string
	email      string
	credential string
	birthDate  time.Time
	photo      string
}

// NewProfile builds a profile from already validated email and birth date.
func NewProfile(name, email, credential string, birthDate time.Time, photo string) (*Profile, error) {
	p := &Profile{
		email:      email,
		credential: credential,
		birthDate:  birthDate,
	}
	if err := p.SetName(name); err != nil {
		return nil, err
	}
	p.SetPhoto(photo)
	return p, nil
}

func (p *Profile) Name() string         { return p.name }
func (p *Profile) Email() string        { return p.email }
func (p *Profile) BirthDate() time.Time { return p.birthDate }
func (p *Profile) Photo() string        { return p.photo }

func (p *Profile) SetName(name string) error {
	if isBlank(name) {
		return domain.ErrInvalidName
	}
	p.name = name
	return nil
}

func (p *Profile) SetBirthDate(birthDate time.Time) {
	p.birthDate = birthDate
}

// SetPhoto keeps the current photo (or the default one) when photo is blank.
func (p *Profile) SetPhoto(photo string) {
	if isBlank(photo) {
		if isBlank(p.photo) {
			p.photo = DefaultPhoto
		}
		return
	}
	p.photo = photo
}

// ChangeEmail only swaps the field; uniqueness is the registry's concern.
func (p *Profile) ChangeEmail(email string) {
	p.email = email
}

func (p *Profile) SetCredential(credential string) {
	p.credential = credential
}

func (p *Profile) CheckCredential(credential string) error {
	if p.credential != credential {
		return domain.ErrInvalidCredential
	}
	return nil
}

// Attribute resolves a symbolic attribute name (case-insensitive).
func (p *Profile) Attribute(attribute string) (string, error) {
	switch domain.NormalizeName(attribute) {
	case domain.AttributeName:
		return p.name, nil
	case domain.AttributeEmail:
		return p.email, nil
	case domain.AttributeBirthDate:
		return p.birthDate.Format(birthDateLayout), nil
	case domain.AttributePhoto:
		return p.photo, nil
	case domain.AttributeCredential:
		return "", domain.ErrProtectedAttribute
	default:
		return "", domain.ErrInvalidFieldRequest
	}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
