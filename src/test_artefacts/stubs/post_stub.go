package stubs

import (
	"time"

	"socialgraph/src/domain/entities"

	"github.com/go-faker/faker/v4"
)

type PostStub struct {
	lines     []string
	tags      []string
	createdAt time.Time
}

func NewPostStub() PostStub {
	return PostStub{
		lines:     []string{faker.Sentence()},
		tags:      []string{"#" + faker.Word()},
		createdAt: time.Now().Truncate(time.Second),
	}
}

func (ps PostStub) WithLines(lines ...string) PostStub {
	ps.lines = lines
	return ps
}

func (ps PostStub) WithTags(tags ...string) PostStub {
	ps.tags = tags
	return ps
}

func (ps PostStub) WithCreatedAt(createdAt time.Time) PostStub {
	ps.createdAt = createdAt
	return ps
}

func (ps PostStub) Lines() []string      { return ps.lines }
func (ps PostStub) Tags() []string       { return ps.tags }
func (ps PostStub) CreatedAt() time.Time { return ps.createdAt }

// Get builds the post; panics on an invalid stub.
func (ps PostStub) Get() *entities.Post {
	post, err := entities.NewPost(ps.lines, ps.tags, ps.createdAt)
	if err != nil {
		panic(err)
	}
	return post
}
