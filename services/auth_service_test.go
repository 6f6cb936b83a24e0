package services

import (
	"context"
	"testing"
	"time"

	"github.com/scentara/perfume-api/auth"
	"github.com/scentara/perfume-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

func newAuthService(users *fakeUserRepo, socials *fakeSocialRepo, google *fakeGoogle) *AuthService {
	return NewAuthService(
		users,
		socials,
		auth.NewTokenManager("test-secret", 30*time.Minute, 7*24*time.Hour),
		auth.NewBcryptHasher(4),
		google,
		auth.NewStateStore(10*time.Minute),
		zap.NewNop(),
	)
}

func TestCreateAnonymous(t *testing.T) {
	var created *models.User
	users := &fakeUserRepo{
		CreateFn: func(ctx context.Context, u *models.User) error {
			created = u
			return nil
		},
	}
	svc := newAuthService(users, &fakeSocialRepo{}, &fakeGoogle{})

	u, token, err := svc.CreateAnonymous(context.Background())
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, models.UserTypeAnonymous, u.UserType)
	assert.Contains(t, u.Email, u.ID)
	assert.NotEmpty(t, u.PasswordHash)
	assert.NotEmpty(t, token)
}

func TestConvertToRegistered(t *testing.T) {
	anon := &models.User{
		ID:       "u1",
		Email:    "anonymous-u1@guest.invalid",
		UserType: models.UserTypeAnonymous,
		IsActive: true,
	}

	var saved *models.User
	users := &fakeUserRepo{
		GetByIDFn: func(ctx context.Context, id string) (*models.User, error) {
			if id == anon.ID {
				copy := *anon
				return &copy, nil
			}
			return nil, nil
		},
		ExistsByEmailFn: func(ctx context.Context, email string) (bool, error) {
			return email == "taken@example.com", nil
		},
		UpdateFn: func(ctx context.Context, u *models.User) error {
			saved = u
			return nil
		},
	}
	svc := newAuthService(users, &fakeSocialRepo{}, &fakeGoogle{})

	result, err := svc.ConvertToRegistered(context.Background(), "u1", "new@example.com", "password123")
	require.NoError(t, err)
	require.NotNil(t, saved)

	// Same row, upgraded in place.
	assert.Equal(t, "u1", saved.ID)
	assert.Equal(t, "new@example.com", saved.Email)
	assert.Equal(t, models.UserTypeEmail, saved.UserType)
	assert.False(t, saved.EmailVerified)
	assert.NotEmpty(t, result.Tokens.AccessToken)
	assert.NotEmpty(t, result.Tokens.RefreshToken)
}

func TestConvertToRegisteredEmailTaken(t *testing.T) {
	users := &fakeUserRepo{
		GetByIDFn: func(ctx context.Context, id string) (*models.User, error) {
			return &models.User{ID: id, UserType: models.UserTypeAnonymous, IsActive: true}, nil
		},
		ExistsByEmailFn: func(ctx context.Context, email string) (bool, error) { return true, nil },
	}
	svc := newAuthService(users, &fakeSocialRepo{}, &fakeGoogle{})

	_, err := svc.ConvertToRegistered(context.Background(), "u1", "taken@example.com", "password123")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestConvertToRegisteredNotAnonymous(t *testing.T) {
	users := &fakeUserRepo{
		GetByIDFn: func(ctx context.Context, id string) (*models.User, error) {
			return &models.User{ID: id, UserType: models.UserTypeEmail, IsActive: true}, nil
		},
	}
	svc := newAuthService(users, &fakeSocialRepo{}, &fakeGoogle{})

	_, err := svc.ConvertToRegistered(context.Background(), "u1", "x@example.com", "password123")
	assert.ErrorIs(t, err, ErrNotAnonymous)
}

func TestLogin(t *testing.T) {
	hasher := auth.NewBcryptHasher(4)
	hash, err := hasher.Hash("correct-horse")
	require.NoError(t, err)

	registered := &models.User{
		ID:           "u1",
		Email:        "user@example.com",
		PasswordHash: hash,
		UserType:     models.UserTypeEmail,
		IsActive:     true,
	}
	users := &fakeUserRepo{
		GetByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
			if email == registered.Email {
				copy := *registered
				return &copy, nil
			}
			return nil, nil
		},
	}
	svc := newAuthService(users, &fakeSocialRepo{}, &fakeGoogle{})

	result, err := svc.Login(context.Background(), "user@example.com", "correct-horse")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Tokens.AccessToken)
	assert.NotNil(t, result.User.LastLogin)

	_, err = svc.Login(context.Background(), "user@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "nobody@example.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginInactiveAccount(t *testing.T) {
	users := &fakeUserRepo{
		GetByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
			return &models.User{ID: "u1", Email: email, PasswordHash: "x", IsActive: false}, nil
		},
	}
	svc := newAuthService(users, &fakeSocialRepo{}, &fakeGoogle{})

	_, err := svc.Login(context.Background(), "user@example.com", "pw")
	assert.ErrorIs(t, err, ErrAccountInactive)
}

func TestRefresh(t *testing.T) {
	user := &models.User{ID: "u1", Email: "user@example.com", UserType: models.UserTypeEmail, IsActive: true}
	users := &fakeUserRepo{
		GetByIDFn: func(ctx context.Context, id string) (*models.User, error) {
			if id == user.ID {
				return user, nil
			}
			return nil, nil
		},
	}
	svc := newAuthService(users, &fakeSocialRepo{}, &fakeGoogle{})

	pair, err := svc.tokens.IssuePair(user)
	require.NoError(t, err)

	result, err := svc.Refresh(context.Background(), pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "u1", result.User.ID)

	// An access token must not pass as a refresh token.
	_, err = svc.Refresh(context.Background(), pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func googleFake(profile *auth.GoogleProfile) *fakeGoogle {
	return &fakeGoogle{
		AuthCodeURLFn: func(state string) (string, string) {
			return "https://accounts.google.com/authorize?state=" + state, "verifier-1"
		},
		ExchangeFn: func(ctx context.Context, code, verifier string) (*oauth2.Token, error) {
			return &oauth2.Token{AccessToken: "ga"}, nil
		},
		FetchProfileFn: func(ctx context.Context, token *oauth2.Token) (*auth.GoogleProfile, error) {
			return profile, nil
		},
		ValidateIDTokenFn: func(ctx context.Context, rawIDToken string) (*auth.GoogleProfile, error) {
			return profile, nil
		},
	}
}

func TestGoogleOneTapConvertsAnonymous(t *testing.T) {
	anon := &models.User{ID: "anon1", Email: "anonymous-anon1@guest.invalid", UserType: models.UserTypeAnonymous, IsActive: true}

	var savedUser *models.User
	var linked *models.SocialAccount
	users := &fakeUserRepo{
		GetByIDFn: func(ctx context.Context, id string) (*models.User, error) {
			if id == anon.ID {
				copy := *anon
				return &copy, nil
			}
			return nil, nil
		},
		GetByEmailFn: func(ctx context.Context, email string) (*models.User, error) { return nil, nil },
		UpdateFn: func(ctx context.Context, u *models.User) error {
			savedUser = u
			return nil
		},
	}
	socials := &fakeSocialRepo{
		GetByProviderAccountFn: func(ctx context.Context, provider, sub string) (*models.SocialAccount, error) {
			return nil, nil
		},
		CreateFn: func(ctx context.Context, a *models.SocialAccount) error {
			linked = a
			return nil
		},
	}
	profile := &auth.GoogleProfile{Sub: "g-sub", Email: "social@example.com", EmailVerified: true, Picture: "pic"}
	svc := newAuthService(users, socials, googleFake(profile))

	result, err := svc.GoogleOneTap(context.Background(), "idtoken", "anon1")
	require.NoError(t, err)

	// Converted in place, same id, linked to the Google account.
	require.NotNil(t, savedUser)
	assert.Equal(t, "anon1", savedUser.ID)
	assert.Equal(t, models.UserTypeSocial, savedUser.UserType)
	assert.Equal(t, "social@example.com", savedUser.Email)
	assert.True(t, savedUser.EmailVerified)

	require.NotNil(t, linked)
	assert.Equal(t, "anon1", linked.UserID)
	assert.Equal(t, "g-sub", linked.ProviderAccountID)

	assert.Equal(t, "anon1", result.User.ID)
	assert.NotEmpty(t, result.Tokens.AccessToken)
}

func TestGoogleOneTapExistingLinkedAccount(t *testing.T) {
	user := &models.User{ID: "u9", Email: "social@example.com", UserType: models.UserTypeSocial, IsActive: true}
	users := &fakeUserRepo{
		GetByIDFn: func(ctx context.Context, id string) (*models.User, error) {
			if id == user.ID {
				return user, nil
			}
			return nil, nil
		},
	}
	socials := &fakeSocialRepo{
		GetByProviderAccountFn: func(ctx context.Context, provider, sub string) (*models.SocialAccount, error) {
			return &models.SocialAccount{ID: "sa1", UserID: "u9", Provider: provider, ProviderAccountID: sub}, nil
		},
	}
	profile := &auth.GoogleProfile{Sub: "g-sub", Email: "social@example.com"}
	svc := newAuthService(users, socials, googleFake(profile))

	result, err := svc.GoogleOneTap(context.Background(), "idtoken", "")
	require.NoError(t, err)
	assert.Equal(t, "u9", result.User.ID)
}

func TestCompleteGoogleLoginStatePopOnce(t *testing.T) {
	user := &models.User{ID: "u2", Email: "s@example.com", UserType: models.UserTypeSocial, IsActive: true}
	users := &fakeUserRepo{
		GetByIDFn: func(ctx context.Context, id string) (*models.User, error) { return user, nil },
		GetByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
			return user, nil
		},
	}
	socials := &fakeSocialRepo{
		GetByProviderAccountFn: func(ctx context.Context, provider, sub string) (*models.SocialAccount, error) {
			return nil, nil
		},
		CreateFn: func(ctx context.Context, a *models.SocialAccount) error { return nil },
	}
	profile := &auth.GoogleProfile{Sub: "g-sub", Email: "s@example.com"}
	svc := newAuthService(users, socials, googleFake(profile))

	url := svc.BeginGoogleLogin("https://app.example.com/done", "")
	require.Contains(t, url, "state=")
	state := url[len(url)-36:]

	_, redirect, err := svc.CompleteGoogleLogin(context.Background(), state, "code-1")
	require.NoError(t, err)
	assert.Equal(t, "https://app.example.com/done", redirect)

	// Replaying the state must fail.
	_, _, err = svc.CompleteGoogleLogin(context.Background(), state, "code-1")
	assert.ErrorIs(t, err, ErrOAuthStateInvalid)
}
