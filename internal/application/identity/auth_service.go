package identity

import (
	"context"
	"errors"

	"github.com/shoppy/backend/internal/domain/identity"
	"github.com/shoppy/backend/internal/domain/shared"
	"github.com/shoppy/backend/internal/infrastructure/auth"
	"go.uber.org/zap"
)

// AuthService handles registration, login and token lifecycle
type AuthService struct {
	users      identity.UserRepository
	jwtService *auth.JWTService
	blacklist  auth.TokenBlacklist
	logger     *zap.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	users identity.UserRepository,
	jwtService *auth.JWTService,
	blacklist auth.TokenBlacklist,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		users:      users,
		jwtService: jwtService,
		blacklist:  blacklist,
		logger:     logger,
	}
}

// Register creates a new user account and issues a token pair
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	taken, err := s.users.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Username already taken")
	}

	user, err := identity.NewUser(req.Username, req.Password, req.Email, req.GivenName, req.FamilyName)
	if err != nil {
		return nil, err
	}

	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username),
	)

	return s.issueTokens(user)
}

// Login authenticates a user by username and password.
// Unknown usernames and wrong passwords produce the same error so the
// response does not reveal which accounts exist.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	user, err := s.users.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("UNAUTHORIZED", "Incorrect username or password")
		}
		return nil, err
	}

	if !user.CanLogin() || !user.VerifyPassword(req.Password) {
		return nil, shared.NewDomainError("UNAUTHORIZED", "Incorrect username or password")
	}

	s.logger.Info("user logged in", zap.String("user_id", user.ID.String()))

	return s.issueTokens(user)
}

// Refresh exchanges a valid refresh token for a new token pair.
// The presented refresh token is revoked so it cannot be replayed.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*AuthResponse, error) {
	claims, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, shared.NewDomainError("BAD_REQUEST", "Refresh token is not valid, try to log-in again")
	}

	revoked, err := s.blacklist.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, shared.NewDomainError("BAD_REQUEST", "Refresh token is not valid, try to log-in again")
	}

	userID, err := claims.GetUserUUID()
	if err != nil {
		return nil, shared.NewDomainError("BAD_REQUEST", "Refresh token is not valid, try to log-in again")
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("BAD_REQUEST", "Refresh token is not valid, try to log-in again")
		}
		return nil, err
	}
	if !user.CanLogin() {
		return nil, shared.NewDomainError("BAD_REQUEST", "Refresh token is not valid, try to log-in again")
	}

	if err := s.blacklist.Revoke(ctx, claims.ID, claims.GetRemainingTTL()); err != nil {
		return nil, err
	}

	return s.issueTokens(user)
}

// Logout revokes the presented access token. If a refresh token is
// supplied it is revoked as well.
func (s *AuthService) Logout(ctx context.Context, accessClaims *auth.Claims, refreshToken string) error {
	if err := s.blacklist.Revoke(ctx, accessClaims.ID, accessClaims.GetRemainingTTL()); err != nil {
		return err
	}

	if refreshToken != "" {
		refreshClaims, err := s.jwtService.ValidateRefreshToken(refreshToken)
		if err == nil {
			if err := s.blacklist.Revoke(ctx, refreshClaims.ID, refreshClaims.GetRemainingTTL()); err != nil {
				return err
			}
		}
	}

	s.logger.Info("user logged out", zap.String("user_id", accessClaims.UserID))

	return nil
}

func (s *AuthService) issueTokens(user *identity.User) (*AuthResponse, error) {
	tokens, err := s.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		UserID:     user.ID,
		Username:   user.Username,
		Email:      user.Email,
		GivenName:  user.GivenName,
		FamilyName: user.FamilyName,
		Roles:      user.Roles,
	})
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		User:   ToUserResponse(user),
		Tokens: tokens,
	}, nil
}
