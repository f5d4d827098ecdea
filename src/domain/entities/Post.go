package entities

import (
	"fmt"
	"strings"
	"time"

	"socialgraph/src/domain"
)

// TimestampLayout é o formato "yyyy-MM-dd HH:mm:ss" exibido para posts.
const TimestampLayout = "2006-01-02 15:04:05"

const (
	ImagePlaceholder = "$arquivo_imagem:"
	AudioPlaceholder = "$arquivo_audio:"

	imageOpen  = "<imagem>"
	imageClose = "</imagem>"
	audioOpen  = "<audio>"
	audioClose = "</audio>"
)

// Post é uma entrada da timeline. Os contadores só mudam via Policy.
type Post struct {
	content    []string
	tags       []string
	createdAt  time.Time
	likes      int
	rejections int
	score      int
}

func NewPost(content []string, tags []string, createdAt time.Time) (*Post, error) {
	if len(content) == 0 {
		return nil, domain.ErrEmptyPost
	}

	return &Post{
		content:   append([]string(nil), content...),
		tags:      append([]string(nil), tags...),
		createdAt: createdAt,
	}, nil
}

func (p *Post) CreatedAt() time.Time { return p.createdAt }
func (p *Post) Likes() int           { return p.likes }
func (p *Post) Rejections() int      { return p.rejections }

// Score is the signed contribution of the post; it has no floor or ceiling.
func (p *Post) Score() int { return p.score }

func (p *Post) Lines() []string {
	return append([]string(nil), p.content...)
}

func (p *Post) Tags() []string {
	return append([]string(nil), p.tags...)
}

// AddTag appends a hashtag after creation; the caller validates it.
func (p *Post) AddTag(tag string) {
	p.tags = append(p.tags, tag)
}

// Timestamp renders the creation time as "yyyy-MM-dd HH:mm:ss".
func (p *Post) Timestamp() string {
	return p.createdAt.Format(TimestampLayout)
}

// TagList joins the tags with commas, in insertion order.
func (p *Post) TagList() string {
	return strings.Join(p.tags, ",")
}

// Content joins the raw content lines with a single space.
func (p *Post) Content() string {
	lines := make([]string, 0, len(p.content))
	for _, line := range p.content {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return strings.Join(lines, " ")
}

// ContentLine returns one line with media markers replaced by placeholders.
func (p *Post) ContentLine(index int) (string, error) {
	if index < 0 {
		return "", domain.ErrNegativeIndex
	}
	if index >= len(p.content) {
		return "", fmt.Errorf("%w: index %d, post has %d lines", domain.ErrContentIndexOutOfRange, index, len(p.content))
	}
	return renderMedia(p.content[index]), nil
}

// Field dispatches over the closed set {content, timestamp, tags}.
func (p *Post) Field(field string) (string, error) {
	switch domain.NormalizeName(field) {
	case domain.PostFieldContent:
		return p.Content(), nil
	case domain.PostFieldTimestamp:
		return p.Timestamp(), nil
	case domain.PostFieldTags:
		return p.TagList(), nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidFieldRequest, field)
	}
}

// IsRecent reports whether the post was created on the same calendar day as now.
func (p *Post) IsRecent(now time.Time) bool {
	y1, m1, d1 := p.createdAt.Date()
	y2, m2, d2 := now.In(p.createdAt.Location()).Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// String renders "<content> <tag> <tag> (<timestamp>)".
func (p *Post) String() string {
	parts := make([]string, 0, len(p.tags)+2)
	if content := p.Content(); content != "" {
		parts = append(parts, content)
	}
	parts = append(parts, p.tags...)
	parts = append(parts, "("+p.Timestamp()+")")
	return strings.Join(parts, " ")
}

func (p *Post) registerLike(delta int) {
	p.likes++
	p.score += delta
}

func (p *Post) registerRejection(delta int) {
	p.rejections++
	p.score += delta
}

func renderMedia(line string) string {
	line = strings.TrimSpace(line)
	if inner, ok := unwrap(line, imageOpen, imageClose); ok {
		return ImagePlaceholder + inner
	}
	if inner, ok := unwrap(line, audioOpen, audioClose); ok {
		return AudioPlaceholder + inner
	}
	return line
}

func unwrap(line, open, close string) (string, bool) {
	rest, ok := strings.CutPrefix(line, open)
	if !ok {
		return "", false
	}
	return strings.CutSuffix(rest, close)
}
