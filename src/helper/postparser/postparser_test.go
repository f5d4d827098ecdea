package postparser_test

import (
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"socialgraph/src/domain"
	"socialgraph/src/helper/postparser"
)

var _ = Describe("PostParser", func() {
	Context("Parse", func() {
		It("splits text, media blocks and hashtags", func() {
			// ACT
			message, err := postparser.Parse("Olha que lindo <imagem>praia.jpg</imagem> <audio>ondas.mp3</audio> #praia #verao")

			// ASSERT
			Expect(err).NotTo(HaveOccurred())
			Expect(message).To(Equal(postparser.Message{
				Lines: []string{"Olha que lindo", "<imagem>praia.jpg</imagem>", "<audio>ondas.mp3</audio>"},
				Tags:  []string{"#praia", "#verao"},
			}))
		})

		It("accepts a message with only media", func() {
			message, err := postparser.Parse("<imagem>foto.png</imagem>")

			Expect(err).NotTo(HaveOccurred())
			Expect(message.Lines).To(Equal([]string{"<imagem>foto.png</imagem>"}))
			Expect(message.Tags).To(BeEmpty())
		})

		It("rejects a trailing word without #", func() {
			_, err := postparser.Parse("Bom dia #sol praia")

			Expect(err).To(MatchError(domain.ErrInvalidHashtag))
		})

		It("rejects text longer than the limit", func() {
			_, err := postparser.Parse(strings.Repeat("a", postparser.MaxTextLength+1))

			Expect(err).To(MatchError(domain.ErrMessageTooLong))
		})

		It("accepts text exactly at the limit", func() {
			_, err := postparser.Parse(strings.Repeat("á", postparser.MaxTextLength))

			Expect(err).NotTo(HaveOccurred())
		})

		It("keeps a literal < in the text", func() {
			message, err := postparser.Parse("a < b e verdade #math")

			Expect(err).NotTo(HaveOccurred())
			Expect(message).To(Equal(postparser.Message{
				Lines: []string{"a < b e verdade"},
				Tags:  []string{"#math"},
			}))
		})

		It("does not read a # inside a media block as a tag", func() {
			message, err := postparser.Parse("Oi <imagem>fotos/#1.png</imagem> #tag")

			Expect(err).NotTo(HaveOccurred())
			Expect(message).To(Equal(postparser.Message{
				Lines: []string{"Oi", "<imagem>fotos/#1.png</imagem>"},
				Tags:  []string{"#tag"},
			}))
		})

		It("rejects a word after the media blocks without #", func() {
			_, err := postparser.Parse("Oi <audio>a.mp3</audio> solto")

			Expect(err).To(MatchError(domain.ErrInvalidHashtag))
		})

		It("rejects a message with only hashtags", func() {
			_, err := postparser.Parse("#vazio")

			Expect(err).To(MatchError(domain.ErrEmptyPost))
		})
	})

	Context("ParseTimestamp", func() {
		It("parses dd/MM/yyyy HH:mm:ss", func() {
			Expect(postparser.ParseTimestamp("05/03/2024 14:30:00")).
				To(Equal(time.Date(2024, time.March, 5, 14, 30, 0, 0, time.UTC)))
		})

		It("rejects another layout", func() {
			_, err := postparser.ParseTimestamp("2024-03-05 14:30:00")
			Expect(err).To(MatchError(domain.ErrBadDateFormat))
		})

		It("rejects an impossible instant", func() {
			_, err := postparser.ParseTimestamp("30/02/2024 25:00:00")
			Expect(err).To(MatchError(domain.ErrDateDoesNotExist))
		})
	})
})
