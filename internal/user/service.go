package user

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/vmfarias/readrush/internal/auth"
	"github.com/vmfarias/readrush/internal/config"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const tokenDuration = time.Hour * 24 * 7

var ErrInvalidAuthCode = errors.New("google auth code exchange failed")

type googleProfile struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

type UserService interface {
	GoogleLogin(ctx context.Context, code string) (*User, string, error)
	RefreshToken(ctx context.Context, tokenStr string) (string, error)
	GetByID(ctx context.Context, id string) (*User, error)
}

type userService struct {
	repo        UserRepository
	oauthConfig *oauth2.Config
}

func NewService(repo UserRepository) UserService {
	return &userService{
		repo: repo,
		oauthConfig: &oauth2.Config{
			ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
			ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
			RedirectURL:  os.Getenv("GOOGLE_REDIRECT_URL"),
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		},
	}
}

// GoogleLogin exchanges the OAuth code, upserts the user row and issues
// our own JWT. The identity provider is the only source of user ids.
func (s *userService) GoogleLogin(ctx context.Context, code string) (*User, string, error) {
	log := config.WithContext(ctx)

	token, err := s.oauthConfig.Exchange(ctx, code)
	if err != nil {
		log.WithError(err).Error("Failed to exchange Google auth code")
		return nil, "", ErrInvalidAuthCode
	}

	profile, err := s.fetchProfile(ctx, token)
	if err != nil {
		log.WithError(err).Error("Failed to fetch Google profile")
		return nil, "", err
	}

	u, err := s.repo.GetByGoogleID(profile.ID)
	if err != nil {
		return nil, "", err
	}

	if u == nil {
		u = &User{
			ID:        uuid.New(),
			GoogleID:  profile.ID,
			Email:     profile.Email,
			Name:      profile.Name,
			AvatarURL: profile.Picture,
		}
		if err := s.storeRefreshToken(u, token); err != nil {
			return nil, "", err
		}
		if err := s.repo.Create(u); err != nil {
			return nil, "", err
		}
		log.Info("Created new user from Google login")
	} else {
		u.Email = profile.Email
		u.Name = profile.Name
		u.AvatarURL = profile.Picture
		if err := s.storeRefreshToken(u, token); err != nil {
			return nil, "", err
		}
		if err := s.repo.Update(u); err != nil {
			return nil, "", err
		}
	}

	jwtStr, err := auth.GenerateJWT(u.ID.String(), "user", tokenDuration)
	if err != nil {
		return nil, "", err
	}

	return u, jwtStr, nil
}

func (s *userService) RefreshToken(ctx context.Context, tokenStr string) (string, error) {
	claims, err := auth.ValidateJWT(tokenStr)
	if err != nil {
		return "", err
	}
	return auth.GenerateJWT(claims.UserID, claims.Role, tokenDuration)
}

func (s *userService) GetByID(ctx context.Context, id string) (*User, error) {
	return s.repo.GetByID(id)
}

func (s *userService) fetchProfile(ctx context.Context, token *oauth2.Token) (*googleProfile, error) {
	client := s.oauthConfig.Client(ctx, token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return nil, errors.New("google userinfo request failed")
	}

	var profile googleProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (s *userService) storeRefreshToken(u *User, token *oauth2.Token) error {
	if token.RefreshToken == "" {
		return nil
	}
	encrypted, err := config.Encrypt(token.RefreshToken)
	if err != nil {
		return err
	}
	u.EncryptedGoogleRefreshToken = encrypted
	return nil
}
