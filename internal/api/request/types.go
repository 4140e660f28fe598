package request

// RegisterRequest is the request body for POST /api/v1/users/register
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest is the request body for POST /api/v1/users/login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AddWantToGoRequest is the request body for POST /api/v1/wantlist
type AddWantToGoRequest struct {
	Place string `json:"place"`
}
