package social

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"socialgraph/src/domain"
	"socialgraph/src/domain/entities"
)

// CreatePost appends a post to the active timeline and returns its index.
func (s *SocialService) CreatePost(ctx context.Context, lines, tags []string, createdAt time.Time) (int, error) {
	post, err := entities.NewPost(lines, tags, createdAt)
	if err != nil {
		return 0, fmt.Errorf("SocialService.CreatePost - %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	profile, err := s.sessionProfile()
	if err != nil {
		return 0, fmt.Errorf("SocialService.CreatePost - %w", err)
	}

	profile.AppendPost(post)
	index := profile.PostCount() - 1
	s.publish(ctx, s.event(domain.EventPostCreated, profile.Email(), "").With("post", strconv.Itoa(index)))

	return index, nil
}

// PostText renders the post at index in the active timeline.
func (s *SocialService) PostText(index int) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	post, err := s.sessionPost(index)
	if err != nil {
		return "", fmt.Errorf("SocialService.PostText - %w", err)
	}
	return post.String(), nil
}

// PostScore, PostLikes e PostRejections leem os contadores sob o lock, já que
// o post é compartilhado com quem interage com ele.
func (s *SocialService) PostScore(index int) (int, error) {
	return s.postCounter("PostScore", index, (*entities.Post).Score)
}

func (s *SocialService) PostLikes(index int) (int, error) {
	return s.postCounter("PostLikes", index, (*entities.Post).Likes)
}

func (s *SocialService) PostRejections(index int) (int, error) {
	return s.postCounter("PostRejections", index, (*entities.Post).Rejections)
}

func (s *SocialService) postCounter(operation string, index int, read func(*entities.Post) int) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	post, err := s.sessionPost(index)
	if err != nil {
		return 0, fmt.Errorf("SocialService.%s - %w", operation, err)
	}
	return read(post), nil
}

// AddPostTag appends a hashtag to a post that already exists in the active timeline.
func (s *SocialService) AddPostTag(ctx context.Context, index int, tag string) error {
	tag = strings.TrimSpace(tag)
	if !strings.HasPrefix(tag, "#") || strings.ContainsAny(tag, " \t\n") {
		return fmt.Errorf("SocialService.AddPostTag - %w: '%s'", domain.ErrInvalidHashtag, tag)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	post, err := s.sessionPost(index)
	if err != nil {
		return fmt.Errorf("SocialService.AddPostTag - %w", err)
	}

	post.AddTag(tag)
	s.publish(ctx, s.event(domain.EventPostTagged, s.activeSession, "").
		With("post", strconv.Itoa(index)).
		With("tag", tag))

	return nil
}

// sessionPost exige o lock do chamador.
func (s *SocialService) sessionPost(index int) (*entities.Post, error) {
	profile, err := s.sessionProfile()
	if err != nil {
		return nil, err
	}
	return profile.Post(index)
}

func (s *SocialService) PostField(field string, index int) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profile, err := s.sessionProfile()
	if err != nil {
		return "", fmt.Errorf("SocialService.PostField - %w", err)
	}
	return profile.PostField(field, index)
}

func (s *SocialService) ContentLine(lineIndex, postIndex int) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profile, err := s.sessionProfile()
	if err != nil {
		return "", fmt.Errorf("SocialService.ContentLine - %w", err)
	}
	return profile.ContentLine(lineIndex, postIndex)
}

// LikePost applies the active profile's tier policy to a friend's post.
func (s *SocialService) LikePost(ctx context.Context, friend string, index int) error {
	return s.interact(ctx, friend, index, entities.ActionLike)
}

// RejectPost applies the active profile's tier policy to a friend's post.
func (s *SocialService) RejectPost(ctx context.Context, friend string, index int) error {
	return s.interact(ctx, friend, index, entities.ActionReject)
}

// interact mutates the shared post in place and moves the owner's score by the
// same delta the post received.
func (s *SocialService) interact(ctx context.Context, friend string, index int, action entities.Action) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	actor, owner, err := s.sessionAnd(friend)
	if err != nil {
		return fmt.Errorf("SocialService.interact - %w", err)
	}
	if err := actor.AssertConnected(owner.Email()); err != nil {
		return fmt.Errorf("SocialService.interact - %w", err)
	}
	post, err := owner.Post(index)
	if err != nil {
		return fmt.Errorf("SocialService.interact - %w", err)
	}

	tier := actor.Tier()
	var (
		delta     int
		message   string
		eventType domain.EventType
	)
	switch action {
	case entities.ActionLike:
		delta = s.policy.ApplyLike(tier, post)
		message = fmt.Sprintf("%s curtiu seu post de %s.", actor.Name(), post.Timestamp())
		eventType = domain.EventPostLiked
	default:
		delta = s.policy.ApplyReject(tier, post)
		message = fmt.Sprintf("%s rejeitou seu post de %s.", actor.Name(), post.Timestamp())
		eventType = domain.EventPostRejected
	}

	owner.AdjustScore(delta)
	owner.Enqueue(message)

	s.logger.Debug("Post interaction applied",
		"actor", actor.Email(),
		"owner", owner.Email(),
		"post", index,
		"action", action,
		"tier", tier,
		"delta", delta)
	s.publish(ctx, s.event(eventType, actor.Email(), owner.Email()).
		With("post", strconv.Itoa(index)).
		With("delta", strconv.Itoa(delta)))

	return nil
}
