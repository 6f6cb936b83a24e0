package services

import (
	"context"
	"fmt"
	"time"

	"github.com/scentara/perfume-api/auth"
	"github.com/scentara/perfume-api/models"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

const googleProvider = "google"

// GoogleOAuth is the slice of the Google client the auth service uses.
type GoogleOAuth interface {
	AuthCodeURL(state string) (url, verifier string)
	Exchange(ctx context.Context, code, verifier string) (*oauth2.Token, error)
	FetchProfile(ctx context.Context, token *oauth2.Token) (*auth.GoogleProfile, error)
	ValidateIDToken(ctx context.Context, rawIDToken string) (*auth.GoogleProfile, error)
}

type AuthService struct {
	users   UserRepository
	socials SocialAccountRepository
	tokens  *auth.TokenManager
	hasher  *auth.BcryptHasher
	google  GoogleOAuth
	states  *auth.StateStore
	log     *zap.Logger
}

func NewAuthService(
	users UserRepository,
	socials SocialAccountRepository,
	tokens *auth.TokenManager,
	hasher *auth.BcryptHasher,
	google GoogleOAuth,
	states *auth.StateStore,
	log *zap.Logger,
) *AuthService {
	return &AuthService{
		users:   users,
		socials: socials,
		tokens:  tokens,
		hasher:  hasher,
		google:  google,
		states:  states,
		log:     log,
	}
}

// AuthResult bundles the user with freshly issued tokens.
type AuthResult struct {
	User   *models.User   `json:"user"`
	Tokens auth.TokenPair `json:"tokens"`
}

// CreateAnonymous provisions a guest user and a non-expiring guest token.
// The placeholder email keeps the unique constraint satisfied and the
// throwaway hash keeps password login impossible until conversion.
func (s *AuthService) CreateAnonymous(ctx context.Context) (*models.User, string, error) {
	id := models.NewID()
	hash, err := s.hasher.Hash(models.NewID())
	if err != nil {
		return nil, "", fmt.Errorf("hash placeholder: %w", err)
	}

	u := &models.User{
		ID:           id,
		Email:        fmt.Sprintf("anonymous-%s@guest.invalid", id),
		PasswordHash: hash,
		UserType:     models.UserTypeAnonymous,
		Role:         models.RoleUser,
		IsActive:     true,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.IssueAnonymous(u.ID)
	if err != nil {
		return nil, "", err
	}

	s.log.Info("anonymous user created", zap.String("user_id", u.ID))
	return u, token, nil
}

// ConvertToRegistered upgrades an anonymous user to an EMAIL user in
// place. The user id, cart, wishlist and addresses all survive untouched.
func (s *AuthService) ConvertToRegistered(ctx context.Context, userID, email, password string) (*AuthResult, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrNotFound
	}
	if !u.IsAnonymous() {
		return nil, ErrNotAnonymous
	}

	taken, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u.Email = email
	u.PasswordHash = hash
	u.UserType = models.UserTypeEmail
	u.EmailVerified = false
	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}

	pair, err := s.tokens.IssuePair(u)
	if err != nil {
		return nil, err
	}

	s.log.Info("anonymous user converted to registered",
		zap.String("user_id", u.ID))
	return &AuthResult{User: u, Tokens: pair}, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}
	if !u.IsActive {
		return nil, ErrAccountInactive
	}
	if !u.CanLoginWithPassword() || u.IsAnonymous() {
		return nil, ErrPasswordLoginUnset
	}
	if !s.hasher.Compare(u.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	if err := s.users.TouchLastLogin(ctx, u.ID, now); err != nil {
		return nil, err
	}
	u.LastLogin = &now

	pair, err := s.tokens.IssuePair(u)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: u, Tokens: pair}, nil
}

// Refresh trades a valid refresh token for a fresh pair.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*AuthResult, error) {
	claims, err := s.tokens.Verify(refreshToken, auth.TokenTypeRefresh)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	u, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if u == nil || !u.IsActive {
		return nil, ErrInvalidCredentials
	}

	pair, err := s.tokens.IssuePair(u)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: u, Tokens: pair}, nil
}

func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*models.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrNotFound
	}
	return u, nil
}

// BeginGoogleLogin starts the PKCE flow. The anonymous user id, when
// present, rides along in the state entry so the callback can convert
// that user instead of minting a new one.
func (s *AuthService) BeginGoogleLogin(redirectURI, anonymousUserID string) string {
	state := models.NewID()
	url, verifier := s.google.AuthCodeURL(state)
	s.states.Put(auth.OAuthState{
		State:           state,
		Verifier:        verifier,
		RedirectURI:     redirectURI,
		AnonymousUserID: anonymousUserID,
	})
	return url
}

// CompleteGoogleLogin finishes the PKCE flow after the provider redirect.
func (s *AuthService) CompleteGoogleLogin(ctx context.Context, state, code string) (*AuthResult, string, error) {
	entry, ok := s.states.Pop(state)
	if !ok {
		return nil, "", ErrOAuthStateInvalid
	}

	token, err := s.google.Exchange(ctx, code, entry.Verifier)
	if err != nil {
		return nil, "", fmt.Errorf("google exchange: %w", err)
	}

	profile, err := s.google.FetchProfile(ctx, token)
	if err != nil {
		return nil, "", err
	}

	result, err := s.socialSignIn(ctx, profile, entry.AnonymousUserID, token.AccessToken, token.RefreshToken)
	if err != nil {
		return nil, "", err
	}
	return result, entry.RedirectURI, nil
}

// GoogleOneTap signs in with a One Tap ID token, skipping the redirect
// flow entirely.
func (s *AuthService) GoogleOneTap(ctx context.Context, rawIDToken, anonymousUserID string) (*AuthResult, error) {
	profile, err := s.google.ValidateIDToken(ctx, rawIDToken)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	return s.socialSignIn(ctx, profile, anonymousUserID, "", "")
}

// socialSignIn resolves a Google profile to a local user, in order of
// preference: existing linked account, existing user by email, in-place
// conversion of the caller's anonymous user, brand-new SOCIAL user.
func (s *AuthService) socialSignIn(ctx context.Context, profile *auth.GoogleProfile, anonymousUserID, accessToken, refreshToken string) (*AuthResult, error) {
	linked, err := s.socials.GetByProviderAccount(ctx, googleProvider, profile.Sub)
	if err != nil {
		return nil, err
	}

	var u *models.User
	switch {
	case linked != nil:
		u, err = s.users.GetByID(ctx, linked.UserID)
		if err != nil {
			return nil, err
		}
		if u == nil {
			return nil, ErrNotFound
		}
		if accessToken != "" {
			if err := s.socials.UpdateTokens(ctx, linked.ID, accessToken, refreshToken); err != nil {
				return nil, err
			}
		}

	default:
		u, err = s.users.GetByEmail(ctx, profile.Email)
		if err != nil {
			return nil, err
		}

		if u == nil && anonymousUserID != "" {
			anon, err := s.users.GetByID(ctx, anonymousUserID)
			if err != nil {
				return nil, err
			}
			if anon != nil && anon.IsAnonymous() {
				anon.Email = profile.Email
				anon.UserType = models.UserTypeSocial
				// Provider-asserted identity counts as verification.
				anon.EmailVerified = true
				if anon.DisplayPicture == "" {
					anon.DisplayPicture = profile.Picture
				}
				if err := s.users.Update(ctx, anon); err != nil {
					return nil, err
				}
				u = anon
				s.log.Info("anonymous user converted to social",
					zap.String("user_id", u.ID))
			}
		}

		if u == nil {
			u = &models.User{
				ID:             models.NewID(),
				Email:          profile.Email,
				DisplayPicture: profile.Picture,
				UserType:       models.UserTypeSocial,
				Role:           models.RoleUser,
				IsActive:       true,
				EmailVerified:  profile.EmailVerified,
			}
			if err := s.users.Create(ctx, u); err != nil {
				return nil, err
			}
		}

		if err := s.socials.Create(ctx, &models.SocialAccount{
			ID:                models.NewID(),
			UserID:            u.ID,
			Provider:          googleProvider,
			ProviderAccountID: profile.Sub,
			AccessToken:       accessToken,
			RefreshToken:      refreshToken,
		}); err != nil {
			return nil, err
		}
	}

	if !u.IsActive {
		return nil, ErrAccountInactive
	}

	now := time.Now()
	if err := s.users.TouchLastLogin(ctx, u.ID, now); err != nil {
		return nil, err
	}
	u.LastLogin = &now

	pair, err := s.tokens.IssuePair(u)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: u, Tokens: pair}, nil
}
