package users

type GetOrCreateResponse struct {
	UserID  string `json:"user_id"`
	Created bool   `json:"created"`
}
