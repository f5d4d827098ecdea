package postparser

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"socialgraph/src/domain"
)

// MaxTextLength é o limite de caracteres do texto livre de um post.
const MaxTextLength = 200

// TimestampLayout é o formato de data/hora aceito na criação de posts.
const TimestampLayout = "02/01/2006 15:04:05"

var (
	mediaPattern     = regexp.MustCompile(`<(imagem|audio)>.*?</(imagem|audio)>`)
	timestampPattern = regexp.MustCompile(`^\d{2}/\d{2}/\d{4} \d{2}:\d{2}:\d{2}$`)
)

// Message is the parsed form of a raw post message.
type Message struct {
	Lines []string
	Tags  []string
}

// Parse splits "text <imagem>a</imagem> <audio>b</audio> #tag1 #tag2" into ordered
// content lines (text first, then each media block) and hashtags. Media blocks are
// taken out before looking for tags, so a '#' inside a block is not a tag.
func Parse(raw string) (Message, error) {
	blocks := mediaPattern.FindAllStringIndex(raw, -1)

	head, tail := raw, ""
	media := make([]string, 0, len(blocks))
	if len(blocks) > 0 {
		head = raw[:blocks[0][0]]
		tail = raw[blocks[len(blocks)-1][1]:]
		for _, block := range blocks {
			media = append(media, raw[block[0]:block[1]])
		}
	}

	text, tagSection, hasTags := strings.Cut(head, "#")
	if hasTags {
		tagSection = "#" + tagSection
	}
	tagSection += " " + tail

	var tags []string
	for _, tag := range strings.Fields(tagSection) {
		if !strings.HasPrefix(tag, "#") {
			return Message{}, fmt.Errorf("%w: '%s'", domain.ErrInvalidHashtag, tag)
		}
		tags = append(tags, tag)
	}

	text = strings.TrimSpace(text)
	if utf8.RuneCountInString(text) > MaxTextLength {
		return Message{}, fmt.Errorf("%w: limit is %d characters", domain.ErrMessageTooLong, MaxTextLength)
	}

	var lines []string
	if text != "" {
		lines = append(lines, text)
	}
	lines = append(lines, media...)
	if len(lines) == 0 {
		return Message{}, domain.ErrEmptyPost
	}

	return Message{Lines: lines, Tags: tags}, nil
}

// ParseTimestamp parses "dd/MM/yyyy HH:mm:ss".
func ParseTimestamp(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if !timestampPattern.MatchString(raw) {
		return time.Time{}, domain.ErrBadDateFormat
	}
	ts, err := time.Parse(TimestampLayout, raw)
	if err != nil {
		return time.Time{}, domain.ErrDateDoesNotExist
	}
	return ts, nil
}
