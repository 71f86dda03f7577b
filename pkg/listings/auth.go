package listings

import "context"

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	JWT   string `json:"jwt"`
	Token string `json:"token"`
}

// Login exchanges credentials for a bearer token. The backend returns the
// token under either "jwt" or "token"; both are accepted. Storing the
// token is the caller's job.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	var resp loginResponse
	if err := c.post(ctx, "/auth/login", loginRequest{Username: username, Password: password}, &resp); err != nil {
		return "", err
	}
	token := resp.JWT
	if token == "" {
		token = resp.Token
	}
	if token == "" {
		return "", ErrNoToken
	}
	return token, nil
}
