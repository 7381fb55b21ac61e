package response

type SignUpResponse struct {
	Username      string `json:"username"`
	UserConfirmed bool   `json:"user_confirmed"`
}

type SignInResponse struct {
	Username  string `json:"username"`
	ExpiresIn int32  `json:"expires_in"`
}
