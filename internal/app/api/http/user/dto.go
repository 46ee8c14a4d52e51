package user

type credentialsInput struct {
	Body CredentialsRequest
}

type CredentialsRequest struct {
	ID       string `json:"id" doc:"Account identifier"`
	Password string `json:"password" doc:"Account credential"`
}

type registerOutput struct {
	Body RegisterResponse
}

type RegisterResponse struct {
	ID     string `json:"user_id"`
	Token  string `json:"token,omitempty"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type loginOutput struct {
	Body LoginResponse
}

type LoginResponse struct {
	Token  string `json:"token"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type addFriendInput struct {
	Body AddFriendRequest
}

type AddFriendRequest struct {
	FriendID string `json:"friend_id" doc:"Account to follow"`
}

type friendsOutput struct {
	Body FriendsResponse
}

type FriendsResponse struct {
	Friends []string `json:"friends"`
	Status  string   `json:"status"`
	Error   string   `json:"error,omitempty"`
}
