package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	"socialgraph/src/adapters/console"
	"socialgraph/src/helper/postparser"
	"socialgraph/src/helper/validation"
	"socialgraph/src/services/social"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/go-faker/faker/v4"
)

// datagen escreve um roteiro JSON-lines para o popshell: cadastra perfis,
// cria posts, conecta amigos e gera curtidas/rejeições aleatórias.
func main() {
	numProfiles := flag.Int("profiles", 10, "Número de perfis a serem criados")
	postsPerProfile := flag.Int("posts", 3, "Posts por perfil")
	friendship := flag.Float64("friendship", 0.3, "Probabilidade de dois perfis serem amigos")
	interactions := flag.Int("interactions", 20, "Número de curtidas/rejeições")
	seed := flag.Int64("seed", time.Now().UnixNano(), "Seed do gerador")
	flag.Parse()

	if *numProfiles < 2 {
		log.Fatal("The 'profiles' flag must be at least 2")
	}

	gofakeit.Seed(*seed)
	rng := rand.New(rand.NewSource(*seed))

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	script := &script{encoder: json.NewEncoder(out)}

	profiles := make([]social.RegisterRequest, *numProfiles)
	for i := range profiles {
		profiles[i] = randomProfile()
		script.add("register", profiles[i])
	}

	// posts
	for _, profile := range profiles {
		script.add("login", map[string]string{"email": profile.Email, "credential": profile.Credential})
		for range *postsPerProfile {
			script.add("createPost", map[string]string{
				"message": randomMessage(rng),
				"date":    gofakeit.PastDate().Format(postparser.TimestampLayout),
			})
		}
		script.add("logout", nil)
	}

	// amizades
	friends := make(map[string][]string)
	for i, requester := range profiles {
		for _, target := range profiles[i+1:] {
			if rng.Float64() >= *friendship {
				continue
			}
			script.add("login", map[string]string{"email": requester.Email, "credential": requester.Credential})
			script.add("requestConnection", map[string]string{"email": target.Email})
			script.add("logout", nil)
			script.add("login", map[string]string{"email": target.Email, "credential": target.Credential})
			script.add("acceptConnection", map[string]string{"email": requester.Email})
			script.add("logout", nil)

			friends[requester.Email] = append(friends[requester.Email], target.Email)
			friends[target.Email] = append(friends[target.Email], requester.Email)
		}
	}

	// interações
	for range *interactions {
		actor := profiles[rng.Intn(len(profiles))]
		if len(friends[actor.Email]) == 0 || *postsPerProfile == 0 {
			continue
		}
		friend := friends[actor.Email][rng.Intn(len(friends[actor.Email]))]
		command := "likePost"
		if rng.Float32() < 0.3 {
			command = "rejectPost"
		}

		script.add("login", map[string]string{"email": actor.Email, "credential": actor.Credential})
		script.add(command, map[string]any{"email": friend, "index": rng.Intn(*postsPerProfile)})
		script.add("logout", nil)
	}

	script.add("ranking", nil)
	script.add("trendingTopics", nil)
	script.add("shutdown", nil)

	if script.err != nil {
		log.Fatalf("Failed to write script: %v", script.err)
	}
	log.Printf("Generated %d commands for %d profiles", script.count, len(profiles))
}

type script struct {
	encoder *json.Encoder
	count   int
	err     error
}

func (s *script) add(command string, args any) {
	if s.err != nil {
		return
	}

	request := console.Request{Command: command}
	if args != nil {
		raw, err := json.Marshal(args)
		if err != nil {
			s.err = fmt.Errorf("failed to marshal %s args: %w", command, err)
			return
		}
		request.Args = raw
	}

	if err := s.encoder.Encode(request); err != nil {
		s.err = err
		return
	}
	s.count++
}

func randomProfile() social.RegisterRequest {
	return social.RegisterRequest{
		Name:       gofakeit.Name(),
		Email:      gofakeit.Email(),
		Credential: gofakeit.Password(true, true, true, false, false, 10),
		BirthDate:  gofakeit.DateRange(time.Now().AddDate(-80, 0, 0), time.Now().AddDate(-16, 0, 0)).Format(validation.DateLayout),
		Photo:      gofakeit.ImageURL(200, 200),
	}
}

var mediaKinds = []string{"imagem", "audio"}

func randomMessage(rng *rand.Rand) string {
	parts := []string{truncate(faker.Sentence(), postparser.MaxTextLength)}

	if rng.Float32() < 0.4 {
		kind := mediaKinds[rng.Intn(len(mediaKinds))]
		parts = append(parts, fmt.Sprintf("<%s>%s</%s>", kind, gofakeit.URL(), kind))
	}

	for range rng.Intn(3) + 1 {
		parts = append(parts, "#"+strings.ToLower(strings.ReplaceAll(gofakeit.Hobby(), " ", "")))
	}

	return strings.Join(parts, " ")
}

func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
