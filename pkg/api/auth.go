package api

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/emptypb"
)

// AuthServiceName is the fully-qualified name of the AuthService service.
const AuthServiceName = "showerplanner.v1.AuthService"

// AuthService procedure paths.
const (
	AuthServiceRegisterProcedure = "/showerplanner.v1.AuthService/Register"
	AuthServiceLoginProcedure    = "/showerplanner.v1.AuthService/Login"
	AuthServiceMeProcedure       = "/showerplanner.v1.AuthService/Me"
)

// User is the public view of an account. The password hash never leaves the server.
type User struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
}

type RegisterRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	DisplayName     string `json:"displayName"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SessionResponse is returned by Register and Login.
type SessionResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

type MeResponse struct {
	User *User `json:"user"`
}

// AuthServiceHandler is implemented by the auth service.
type AuthServiceHandler interface {
	Register(context.Context, *connect.Request[RegisterRequest]) (*connect.Response[SessionResponse], error)
	Login(context.Context, *connect.Request[LoginRequest]) (*connect.Response[SessionResponse], error)
	Me(context.Context, *connect.Request[emptypb.Empty]) (*connect.Response[MeResponse], error)
}

// NewAuthServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewAuthServiceHandler(svc AuthServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return serviceHandler(AuthServiceName, map[string]http.Handler{
		AuthServiceRegisterProcedure: connect.NewUnaryHandler(AuthServiceRegisterProcedure, svc.Register, opts...),
		AuthServiceLoginProcedure:    connect.NewUnaryHandler(AuthServiceLoginProcedure, svc.Login, opts...),
		AuthServiceMeProcedure:       connect.NewUnaryHandler(AuthServiceMeProcedure, svc.Me, opts...),
	})
}

// AuthServiceClient is a client for the AuthService service.
type AuthServiceClient interface {
	Register(context.Context, *connect.Request[RegisterRequest]) (*connect.Response[SessionResponse], error)
	Login(context.Context, *connect.Request[LoginRequest]) (*connect.Response[SessionResponse], error)
	Me(context.Context, *connect.Request[emptypb.Empty]) (*connect.Response[MeResponse], error)
}

// NewAuthServiceClient constructs a client for the AuthService service.
// baseURL is the server root, e.g. http://localhost:8080.
func NewAuthServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) AuthServiceClient {
	opts = clientOptions(opts)
	return &authServiceClient{
		register: connect.NewClient[RegisterRequest, SessionResponse](httpClient, baseURL+AuthServiceRegisterProcedure, opts...),
		login:    connect.NewClient[LoginRequest, SessionResponse](httpClient, baseURL+AuthServiceLoginProcedure, opts...),
		me:       connect.NewClient[emptypb.Empty, MeResponse](httpClient, baseURL+AuthServiceMeProcedure, opts...),
	}
}

type authServiceClient struct {
	register *connect.Client[RegisterRequest, SessionResponse]
	login    *connect.Client[LoginRequest, SessionResponse]
	me       *connect.Client[emptypb.Empty, MeResponse]
}

func (c *authServiceClient) Register(ctx context.Context, req *connect.Request[RegisterRequest]) (*connect.Response[SessionResponse], error) {
	return c.register.CallUnary(ctx, req)
}

func (c *authServiceClient) Login(ctx context.Context, req *connect.Request[LoginRequest]) (*connect.Response[SessionResponse], error) {
	return c.login.CallUnary(ctx, req)
}

func (c *authServiceClient) Me(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[MeResponse], error) {
	return c.me.CallUnary(ctx, req)
}

// serviceHandler routes requests under /<service>/ to their procedure handler.
func serviceHandler(service string, procedures map[string]http.Handler) (string, http.Handler) {
	return "/" + service + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h, ok := procedures[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		h.ServeHTTP(w, r)
	})
}
