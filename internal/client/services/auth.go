package services

import (
	"context"
	"fmt"

	"github.com/xshsama/learntrack/internal/client/models"
)

// SessionWriter is the part of the session controller the auth service
// needs: establishing a session after a successful login.
type SessionWriter interface {
	Login(ctx context.Context, token string, user *models.UserProfile) error
}

// AuthService authenticates against the backend and hands the resulting
// credentials to the session controller.
type AuthService interface {
	Login(ctx context.Context, username string, password []byte) error
	Register(ctx context.Context, username string, password []byte) error
}

type authService struct {
	caller  Caller
	session SessionWriter
}

func NewAuthService(caller Caller, session SessionWriter) AuthService {
	return &authService{caller: caller, session: session}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token    string             `json:"token"`
	UserInfo models.UserProfile `json:"userInfo"`
}

// Login exchanges credentials for a token and user snapshot, then persists
// both through the session controller. The password is copied into the
// request body; the caller remains responsible for wiping its slice.
func (a *authService) Login(ctx context.Context, username string, password []byte) error {
	var resp loginResponse
	req := credentialsRequest{Username: username, Password: string(password)}
	if err := a.caller.Post(ctx, "/auth/login", req, &resp); err != nil {
		return fmt.Errorf("login error: %w", err)
	}
	if resp.Token == "" {
		return fmt.Errorf("login response carried no token")
	}
	return a.session.Login(ctx, resp.Token, &resp.UserInfo)
}

// Register creates a new account. The user still has to log in afterwards.
func (a *authService) Register(ctx context.Context, username string, password []byte) error {
	req := credentialsRequest{Username: username, Password: string(password)}
	if err := a.caller.Post(ctx, "/auth/register", req, nil); err != nil {
		return fmt.Errorf("register error: %w", err)
	}
	return nil
}
