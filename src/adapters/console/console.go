package console

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"socialgraph/src/domain"
	"socialgraph/src/helper/postparser"
	"socialgraph/src/services/social"
)

type handlerFunc func(ctx context.Context, args json.RawMessage) (any, error)

var errBadRequest = errors.New("bad request")

// Console é a fachada de comandos: uma requisição JSON por linha, uma resposta por linha.
type Console struct {
	logger   *slog.Logger
	service  *social.SocialService
	handlers map[string]handlerFunc
}

func NewConsole(logger *slog.Logger, service *social.SocialService) *Console {
	c := &Console{
		logger:  logger,
		service: service,
	}

	c.handlers = map[string]handlerFunc{
		// cadastro e sessão
		"register":         c.register,
		"login":            c.login,
		"logout":           c.logout,
		"remove":           c.remove,
		"shutdown":         c.shutdown,
		"updateProfile":    c.updateProfile,
		"changeCredential": c.changeCredential,
		"attribute":        c.attribute,

		// timeline
		"createPost":     c.createPost,
		"post":           c.post,
		"postField":      c.postField,
		"contentLine":    c.contentLine,
		"addTag":         c.addTag,
		"postScore":      c.postCounter(c.service.PostScore),
		"postLikes":      c.postCounter(c.service.PostLikes),
		"postRejections": c.postCounter(c.service.PostRejections),

		// conexões
		"requestConnection": c.withEmail(c.service.RequestConnection),
		"acceptConnection":  c.withEmail(c.service.AcceptConnection),
		"rejectConnection":  c.withEmail(c.service.RejectConnection),
		"removeConnection":  c.withEmail(c.service.RemoveConnection),
		"assertConnected":   c.assertConnected,
		"friendCount":       c.friendCount,

		// notificações
		"notificationCount": c.notificationCount,
		"nextNotification":  c.nextNotification,

		// reputação
		"likePost":       c.likePost,
		"rejectPost":     c.rejectPost,
		"adjustScore":    c.adjustScore,
		"score":          c.score,
		"tier":           c.tier,
		"ranking":        c.ranking,
		"trendingTopics": c.trendingTopics,
	}

	return c
}

// Run processes requests until EOF or a successful shutdown command.
func (c *Console) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	encoder := json.NewEncoder(out)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var request Request
		var response Response
		if err := json.Unmarshal([]byte(line), &request); err != nil {
			response = failure(fmt.Errorf("%w: %v", errBadRequest, err))
		} else {
			response = c.Execute(ctx, request)
		}

		if err := encoder.Encode(response); err != nil {
			return fmt.Errorf("Console.Run - failed to write response: %w", err)
		}

		if request.Command == "shutdown" && response.OK {
			return nil
		}
	}

	return scanner.Err()
}

// Execute dispatches one request.
func (c *Console) Execute(ctx context.Context, request Request) Response {
	handler, ok := c.handlers[request.Command]
	if !ok {
		return Response{OK: false, Kind: KindUnknownCommand, Error: fmt.Sprintf("unknown command %q", request.Command)}
	}

	result, err := handler(ctx, request.Args)
	if err != nil {
		c.logger.Debug("Command failed", "command", request.Command, "error", err)
		return failure(err)
	}
	return Response{OK: true, Result: result}
}

func failure(err error) Response {
	kind := string(domain.KindOf(err))
	if errors.Is(err, errBadRequest) {
		kind = KindBadRequest
	}
	return Response{OK: false, Kind: kind, Error: err.Error()}
}

func decode[T any](raw json.RawMessage) (T, error) {
	var args T
	if len(raw) == 0 {
		return args, nil
	}
	if err := json.Unmarshal(raw, &args); err != nil {
		return args, fmt.Errorf("%w: %v", errBadRequest, err)
	}
	return args, nil
}

// ############################################################
// ##################### CADASTRO/SESSÃO ######################
// ############################################################

func (c *Console) register(ctx context.Context, raw json.RawMessage) (any, error) {
	args, err := decode[social.RegisterRequest](raw)
	if err != nil {
		return nil, err
	}
	return c.service.Register(ctx, args)
}

func (c *Console) login(ctx context.Context, raw json.RawMessage) (any, error) {
	args, err := decode[loginArgs](raw)
	if err != nil {
		return nil, err
	}
	return nil, c.service.Login(ctx, args.Email, args.Credential)
}

func (c *Console) logout(ctx context.Context, _ json.RawMessage) (any, error) {
	return nil, c.service.Logout(ctx)
}

func (c *Console) remove(ctx context.Context, raw json.RawMessage) (any, error) {
	args, err := decode[emailArgs](raw)
	if err != nil {
		return nil, err
	}
	return nil, c.service.Remove(ctx, args.Email)
}

func (c *Console) shutdown(ctx context.Context, _ json.RawMessage) (any, error) {
	return nil, c.service.Shutdown(ctx)
}

func (c *Console) updateProfile(ctx context.Context, raw json.RawMessage) (any, error) {
	args, err := decode[updateProfileArgs](raw)
	if err != nil {
		return nil, err
	}
	return nil, c.service.UpdateProfile(ctx, args.Attribute, args.Value)
}

func (c *Console) changeCredential(ctx context.Context, raw json.RawMessage) (any, error) {
	args, err := decode[changeCredentialArgs](raw)
	if err != nil {
		return nil, err
	}
	return nil, c.service.ChangeCredential(ctx, args.NewCredential, args.OldCredential)
}

func (c *Console) attribute(_ context.Context, raw json.RawMessage) (any, error) {
	args, err := decode[attributeArgs](raw)
	if err != nil {
		return nil, err
	}
	if args.Email == "" {
		return c.service.SessionAttribute(args.Attribute)
	}
	return c.service.Attribute(args.Attribute, args.Email)
}

// ############################################################
// ######################### TIMELINE #########################
// ############################################################

func (c *Console) createPost(ctx context.Context, raw json.RawMessage) (any, error) {
	args, err := decode[createPostArgs](raw)
	if err != nil {
		return nil, err
	}

	message, err := postparser.Parse(args.Message)
	if err != nil {
		return nil, err
	}
	createdAt, err := postparser.ParseTimestamp(args.Date)
	if err != nil {
		return nil, err
	}

	return c.service.CreatePost(ctx, message.Lines, message.Tags, createdAt)
}

func (c *Console) post(_ context.Context, raw json.RawMessage) (any, error) {
	args, err := decode[postArgs](raw)
	if err != nil {
		return nil, err
	}
	return c.service.PostText(args.Index)
}

func (c *Console) addTag(ctx context.Context, raw json.RawMessage) (any, error) {
	args, err := decode[addTagArgs](raw)
	if err != nil {
		return nil, err
	}
	return nil, c.service.AddPostTag(ctx, args.Index, args.Tag)
}

func (c *Console) postField(_ context.Context, raw json.RawMessage) (any, error) {
	args, err := decode[postFieldArgs](raw)
	if err != nil {
		return nil, err
	}
	return c.service.PostField(args.Field, args.Index)
}

func (c *Console) contentLine(_ context.Context, raw json.RawMessage) (any, error) {
	args, err := decode[contentLineArgs](raw)
	if err != nil {
		return nil, err
	}
	return c.service.ContentLine(args.Line, args.Index)
}

func (c *Console) postCounter(read func(index int) (int, error)) handlerFunc {
	return func(_ context.Context, raw json.RawMessage) (any, error) {
		args, err := decode[postArgs](raw)
		if err != nil {
			return nil, err
		}
		return read(args.Index)
	}
}

// ############################################################
// ######################### CONEXÕES #########################
// ############################################################

func (c *Console) withEmail(operation func(ctx context.Context, email string) error) handlerFunc {
	return func(ctx context.Context, raw json.RawMessage) (any, error) {
		args, err := decode[emailArgs](raw)
		if err != nil {
			return nil, err
		}
		return nil, operation(ctx, args.Email)
	}
}

func (c *Console) assertConnected(_ context.Context, raw json.RawMessage) (any, error) {
	args, err := decode[assertConnectedArgs](raw)
	if err != nil {
		return nil, err
	}
	return nil, c.service.AssertConnected(args.Owner, args.Other)
}

func (c *Console) friendCount(context.Context, json.RawMessage) (any, error) {
	return c.service.ConnectionCount()
}

func (c *Console) notificationCount(context.Context, json.RawMessage) (any, error) {
	return c.service.NotificationCount()
}

func (c *Console) nextNotification(context.Context, json.RawMessage) (any, error) {
	return c.service.NextNotification()
}

// ############################################################
// ######################## REPUTAÇÃO #########################
// ############################################################

func (c *Console) likePost(ctx context.Context, raw json.RawMessage) (any, error) {
	args, err := decode[interactionArgs](raw)
	if err != nil {
		return nil, err
	}
	return nil, c.service.LikePost(ctx, args.Email, args.Index)
}

func (c *Console) rejectPost(ctx context.Context, raw json.RawMessage) (any, error) {
	args, err := decode[interactionArgs](raw)
	if err != nil {
		return nil, err
	}
	return nil, c.service.RejectPost(ctx, args.Email, args.Index)
}

func (c *Console) adjustScore(ctx context.Context, raw json.RawMessage) (any, error) {
	args, err := decode[adjustScoreArgs](raw)
	if err != nil {
		return nil, err
	}
	return c.service.AdjustScore(ctx, args.Delta)
}

func (c *Console) score(_ context.Context, raw json.RawMessage) (any, error) {
	args, err := decode[emailArgs](raw)
	if err != nil {
		return nil, err
	}
	if args.Email == "" {
		return c.service.Score()
	}
	return c.service.ScoreOf(args.Email)
}

func (c *Console) tier(context.Context, json.RawMessage) (any, error) {
	return c.service.Tier()
}

func (c *Console) ranking(ctx context.Context, _ json.RawMessage) (any, error) {
	return FormatRanking(c.service.Ranking(ctx)), nil
}

func (c *Console) trendingTopics(context.Context, json.RawMessage) (any, error) {
	return FormatTrendingTopics(c.service.TrendingTopics()), nil
}
