package user

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"darak/internal/app/api/http/middleware/auth"
	"darak/internal/domain/session"
	"darak/internal/domain/user"
)

type Handler struct {
	service    user.Servicer
	session    session.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
	authMW     huma.Middlewares
}

func NewHandler(service user.Servicer, session session.Servicer, log *slog.Logger, middleware, authMW huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		session:    session,
		log:        log,
		middleware: middleware,
		authMW:     authMW,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.registerOp(), h.register)
	huma.Register(api, h.loginOp(), h.login)
	huma.Register(api, h.addFriendOp(), h.addFriend)
	huma.Register(api, h.listFriendsOp(), h.listFriends)
}

func (h *Handler) register(ctx context.Context, input *credentialsInput) (*registerOutput, error) {
	u, err := h.service.Register(ctx, input.Body.ID, input.Body.Password)
	if err != nil {
		return &registerOutput{
			Body: RegisterResponse{Status: "Error", Error: err.Error()},
		}, nil
	}

	// A fresh account is logged in right away.
	token, err := h.session.Create(ctx, u.ID)
	if err != nil {
		h.log.Error("failed to create session after registration", "user_id", u.ID, "error", err)
		return &registerOutput{
			Body: RegisterResponse{ID: u.ID, Status: "Ok"},
		}, nil
	}

	return &registerOutput{
		Body: RegisterResponse{ID: u.ID, Token: token, Status: "Ok"},
	}, nil
}

func (h *Handler) login(ctx context.Context, input *credentialsInput) (*loginOutput, error) {
	u, err := h.service.Authenticate(ctx, input.Body.ID, input.Body.Password)
	if err != nil {
		return &loginOutput{
			Body: LoginResponse{Status: "Error", Error: "Invalid credentials"},
		}, nil
	}

	token, err := h.session.Create(ctx, u.ID)
	if err != nil {
		return &loginOutput{
			Body: LoginResponse{Status: "Error", Error: err.Error()},
		}, nil
	}

	return &loginOutput{
		Body: LoginResponse{Token: token, Status: "Ok"},
	}, nil
}

func (h *Handler) addFriend(ctx context.Context, input *addFriendInput) (*friendsOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return &friendsOutput{
			Body: FriendsResponse{Status: "Error", Error: "Unauthorized"},
		}, nil
	}

	u, err := h.service.AddFriend(ctx, userID, input.Body.FriendID)
	if err != nil {
		return &friendsOutput{
			Body: FriendsResponse{Status: "Error", Error: err.Error()},
		}, nil
	}

	return &friendsOutput{
		Body: FriendsResponse{Friends: u.Friends, Status: "Ok"},
	}, nil
}

func (h *Handler) listFriends(ctx context.Context, _ *struct{}) (*friendsOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return &friendsOutput{
			Body: FriendsResponse{Status: "Error", Error: "Unauthorized"},
		}, nil
	}

	friends, err := h.service.Friends(ctx, userID)
	if err != nil {
		return &friendsOutput{
			Body: FriendsResponse{Status: "Error", Error: err.Error()},
		}, nil
	}

	return &friendsOutput{
		Body: FriendsResponse{Friends: friends, Status: "Ok"},
	}, nil
}
