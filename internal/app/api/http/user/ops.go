package user

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) registerOp() huma.Operation {
	return huma.Operation{
		OperationID: "user-register",
		Method:      http.MethodPost,
		Path:        "/user/register",
		Summary:     "Register a new account",
		Tags:        []string{"users"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) loginOp() huma.Operation {
	return huma.Operation{
		OperationID: "user-login",
		Method:      http.MethodPost,
		Path:        "/user/login",
		Summary:     "Log in with id and credential",
		Tags:        []string{"users"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) addFriendOp() huma.Operation {
	return huma.Operation{
		OperationID: "user-add-friend",
		Method:      http.MethodPost,
		Path:        "/api/v1/friends",
		Summary:     "Follow another account",
		Description: "Adds the target to the caller's friend list. The edge is one-way.",
		Tags:        []string{"users"},
		Middlewares: h.authMW,
	}
}

func (h *Handler) listFriendsOp() huma.Operation {
	return huma.Operation{
		OperationID: "user-list-friends",
		Method:      http.MethodGet,
		Path:        "/api/v1/friends",
		Summary:     "List the caller's friends",
		Tags:        []string{"users"},
		Middlewares: h.authMW,
	}
}
