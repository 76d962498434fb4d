package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/mmynk/showerplanner/internal/auth"
	"github.com/mmynk/showerplanner/internal/middleware"
	"github.com/mmynk/showerplanner/internal/storage"
	"github.com/mmynk/showerplanner/pkg/api"
)

// Ensure AuthService implements api.AuthServiceHandler
var _ api.AuthServiceHandler = (*AuthService)(nil)

// AuthService implements the AuthService RPC interface.
type AuthService struct {
	authenticator auth.Authenticator
	jwtManager    *auth.JWTManager
	store         storage.Store
	logger        *slog.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(authenticator auth.Authenticator, jwtManager *auth.JWTManager, store storage.Store, logger *slog.Logger) *AuthService {
	return &AuthService{
		authenticator: authenticator,
		jwtManager:    jwtManager,
		store:         store,
		logger:        logger,
	}
}

// Register creates a new user account.
func (s *AuthService) Register(ctx context.Context, req *connect.Request[api.RegisterRequest]) (*connect.Response[api.SessionResponse], error) {
	msg := req.Msg
	s.logger.Info("Register request", "username", msg.Username)

	// Validate input
	if strings.TrimSpace(msg.Username) == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, auth.ErrMissingUsername)
	}
	if strings.TrimSpace(msg.Email) == "" || strings.TrimSpace(msg.DisplayName) == "" {
		return nil, invalidArgument("email and display name are required")
	}
	if msg.Password != msg.ConfirmPassword {
		return nil, connect.NewError(connect.CodeInvalidArgument, errPasswordsMismatch)
	}

	// Register user
	user, err := s.authenticator.Register(ctx, msg.Username, msg.Email, msg.DisplayName, msg.Password)
	if err != nil {
		s.logger.Error("Registration failed", "username", msg.Username, "error", err)
		switch {
		case errors.Is(err, auth.ErrUsernameTaken):
			return nil, connect.NewError(connect.CodeAlreadyExists, err)
		case errors.Is(err, auth.ErrWeakPassword), errors.Is(err, auth.ErrMissingUsername):
			return nil, connect.NewError(connect.CodeInvalidArgument, err)
		}
		return nil, storeError("register", err)
	}

	// Generate JWT token
	token, err := s.jwtManager.Generate(user)
	if err != nil {
		s.logger.Error("Failed to generate token", "username", user.Username, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	s.logger.Info("User registered successfully", "username", user.Username)
	return connect.NewResponse(&api.SessionResponse{
		User:  toAPIUser(user),
		Token: token,
	}), nil
}

// Login authenticates a user and returns a JWT token.
func (s *AuthService) Login(ctx context.Context, req *connect.Request[api.LoginRequest]) (*connect.Response[api.SessionResponse], error) {
	s.logger.Info("Login request", "username", req.Msg.Username)

	// Validate input
	if req.Msg.Username == "" || req.Msg.Password == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, auth.ErrInvalidCredentials)
	}

	// Authenticate user
	user, err := s.authenticator.Authenticate(ctx, req.Msg.Username, req.Msg.Password)
	if err != nil {
		s.logger.Warn("Login failed", "username", req.Msg.Username, "error", err)
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidCredentials)
		}
		return nil, storeError("log in", err)
	}

	// Generate JWT token
	token, err := s.jwtManager.Generate(user)
	if err != nil {
		s.logger.Error("Failed to generate token", "username", user.Username, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	s.logger.Info("User logged in successfully", "username", user.Username)
	return connect.NewResponse(&api.SessionResponse{
		User:  toAPIUser(user),
		Token: token,
	}), nil
}

// Me returns the currently authenticated user's information.
func (s *AuthService) Me(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[api.MeResponse], error) {
	// Get username from context (set by auth middleware)
	username := middleware.GetUsername(ctx)
	if username == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}

	user, err := s.store.GetUser(ctx, username)
	if err != nil {
		s.logger.Error("Me failed", "username", username, "error", err)
		return nil, storeError("load account", err)
	}
	if user == nil {
		return nil, connect.NewError(connect.CodeUnauthenticated, errAccountGone)
	}

	return connect.NewResponse(&api.MeResponse{User: toAPIUser(user)}), nil
}
