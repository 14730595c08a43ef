package user

import (
	"context"
	"fmt"
	"time"

	"localserve/models"
	"localserve/utils"

	"go.uber.org/zap"
)

// tokenTTL is how long an issued token stays valid.
const tokenTTL = 72 * time.Hour

// issueToken signs a JWT for the user, stores its hash on the account, and
// primes the auth cache so the middleware can validate without a DB hit.
func (s *DefaultUserService) issueToken(usr *models.UserProfile) (*AuthResponse, error) {
	token, err := utils.GenerateToken(usr.ID, usr.Email, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	tokenHash := utils.HashToken(token)

	if err := s.Repo.SetTokenHash(usr.ID, tokenHash); err != nil {
		utils.GetLogger().Error("issueToken: failed to persist token hash", zap.Error(err))
		return nil, fmt.Errorf("sign-in failed, please try again")
	}

	cacheKey := utils.AuthCachePrefix + usr.ID
	authCache := utils.GetAuthCacheClient()
	if err := authCache.Set(context.Background(), cacheKey, tokenHash, utils.AuthCacheTTL).Err(); err != nil {
		// Cache priming is best effort; the middleware falls back to the DB.
		utils.GetLogger().Warn("issueToken: failed to prime auth cache", zap.Error(err))
	}

	usr.PasswordHash = ""
	usr.TokenHash = ""
	return &AuthResponse{Token: token, User: *usr}, nil
}

// GetUserByID retrieves the profile behind the session header and router.
func (s *DefaultUserService) GetUserByID(id string) (*models.UserProfile, error) {
	usr, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}
	usr.PasswordHash = ""
	usr.TokenHash = ""
	return usr, nil
}

// SignOut revokes the user's current token.
func (s *DefaultUserService) SignOut(userID string) error {
	cacheKey := utils.AuthCachePrefix + userID
	if err := utils.GetAuthCacheClient().Del(context.Background(), cacheKey).Err(); err != nil {
		utils.GetLogger().Warn("SignOut: failed to clear auth cache", zap.Error(err))
	}
	if err := s.Repo.SetTokenHash(userID, ""); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}
