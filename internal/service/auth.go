package service

import (
	"github.com/clerk/clerk-sdk-go/v2"

	"github.com/deppfellow/northwind/internal/server"
)

// AuthService installs the Clerk secret used by middleware.RequireAuth to
// verify session tokens on write routes.
type AuthService struct {
	server *server.Server
}

func NewAuthService(s *server.Server) *AuthService {
	clerk.SetKey(s.Config.Auth.SecretKey)
	return &AuthService{
		server: s,
	}
}
