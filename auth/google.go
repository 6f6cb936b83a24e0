package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

const googleUserinfoURL = "https://www.googleapis.com/oauth2/v3/userinfo"

// GoogleProfile is the subset of the Google userinfo response the backend
// keeps.
type GoogleProfile struct {
	Sub           string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// GoogleClient drives the authorization-code-with-PKCE flow against
// Google and validates One Tap ID tokens.
type GoogleClient struct {
	config   *oauth2.Config
	clientID string
}

func NewGoogleClient(clientID, clientSecret, redirectURL string) *GoogleClient {
	return &GoogleClient{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
		clientID: clientID,
	}
}

// AuthCodeURL builds the consent-screen URL and returns the PKCE verifier
// that must be stored until the callback.
func (g *GoogleClient) AuthCodeURL(state string) (url, verifier string) {
	verifier = oauth2.GenerateVerifier()
	url = g.config.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.S256ChallengeOption(verifier),
	)
	return url, verifier
}

// Exchange trades the authorization code for tokens using the stored
// verifier.
func (g *GoogleClient) Exchange(ctx context.Context, code, verifier string) (*oauth2.Token, error) {
	return g.config.Exchange(ctx, code, oauth2.VerifierOption(verifier))
}

// FetchProfile calls the userinfo endpoint with the exchanged token.
func (g *GoogleClient) FetchProfile(ctx context.Context, token *oauth2.Token) (*GoogleProfile, error) {
	client := g.config.Client(ctx, token)
	resp, err := client.Get(googleUserinfoURL)
	if err != nil {
		return nil, fmt.Errorf("google userinfo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("google userinfo: status %d", resp.StatusCode)
	}

	var profile GoogleProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("google userinfo: decode: %w", err)
	}
	return &profile, nil
}

// ValidateIDToken verifies a One Tap credential against this client ID and
// extracts the profile from its claims.
func (g *GoogleClient) ValidateIDToken(ctx context.Context, rawIDToken string) (*GoogleProfile, error) {
	payload, err := idtoken.Validate(ctx, rawIDToken, g.clientID)
	if err != nil {
		return nil, fmt.Errorf("google id token: %w", err)
	}

	profile := &GoogleProfile{Sub: payload.Subject}
	profile.Email, _ = payload.Claims["email"].(string)
	profile.EmailVerified, _ = payload.Claims["email_verified"].(bool)
	profile.Name, _ = payload.Claims["name"].(string)
	profile.Picture, _ = payload.Claims["picture"].(string)
	return profile, nil
}
