package client

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/hostelhut/hostelhut/pkg/domain"
)

// RegisterRequest is the payload for creating an account.
type RegisterRequest struct {
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Email            string `json:"email"`
	PhoneNumber      string `json:"phoneNumber"`
	Password         string `json:"password"`
	RegistrationType string `json:"registrationType"`
}

// LoginRequest is the payload for authenticating.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates an account and returns the new session payload.
// On success the token pair and user are stored in the session.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*domain.AuthPayload, error) {
	payload, err := c.authCall(ctx, "/api/auth/register", req, "Registration failed")
	if err != nil {
		return nil, fmt.Errorf("client.Register: %w", err)
	}
	return payload, nil
}

// Login authenticates with email and password and returns the session
// payload. On success the token pair and user are stored in the session.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*domain.AuthPayload, error) {
	payload, err := c.authCall(ctx, "/api/auth/login", req, "Login failed")
	if err != nil {
		return nil, fmt.Errorf("client.Login: %w", err)
	}
	return payload, nil
}

// authCall posts credentials, decodes the session payload and drives the
// session store.
func (c *Client) authCall(ctx context.Context, path string, req any, fallback string) (*domain.AuthPayload, error) {
	body, err := jsonBody(req)
	if err != nil {
		return nil, err
	}

	var payload domain.AuthPayload
	err = c.do(ctx, http.MethodPost, path, reqOpts{
		body:        body,
		contentType: "application/json",
		fallback:    fallback,
	}, &payload)
	if err != nil {
		return nil, err
	}

	user := payload.User
	if err := c.session.SetSession(payload.AccessToken, payload.RefreshToken, &user); err != nil {
		return nil, err
	}
	return &payload, nil
}

// Logout invalidates the server session, authenticating with the
// refresh token rather than the access token. Server-side logout is
// best-effort: callers clear the local session regardless of the
// returned error.
func (c *Client) Logout(ctx context.Context, refreshToken string) error {
	err := c.do(ctx, http.MethodGet, "/api/auth/logout", reqOpts{
		authToken: refreshToken,
		fallback:  "Logout failed",
	}, nil)
	if err != nil {
		return fmt.Errorf("client.Logout: %w", err)
	}
	return nil
}

// Refresh forces a token refresh outside the 401 path, e.g. to validate
// a stored refresh token at startup.
func (c *Client) Refresh(ctx context.Context) error {
	if _, err := c.refreshSession(ctx); err != nil {
		return fmt.Errorf("client.Refresh: %w", err)
	}
	return nil
}

// Me returns the authenticated user's account summary.
func (c *Client) Me(ctx context.Context) (*domain.User, error) {
	var user domain.User
	err := c.do(ctx, http.MethodGet, "/api/auth/me", reqOpts{
		fallback: "Failed to fetch current user",
	}, &user)
	if err != nil {
		return nil, fmt.Errorf("client.Me: %w", err)
	}
	return &user, nil
}

// UserProfile returns the extended profile for the authenticated user.
func (c *Client) UserProfile(ctx context.Context) (*domain.Profile, error) {
	var profile domain.Profile
	err := c.do(ctx, http.MethodGet, "/api/auth/user", reqOpts{
		fallback: "Failed to fetch profile",
	}, &profile)
	if err != nil {
		return nil, fmt.Errorf("client.UserProfile: %w", err)
	}
	return &profile, nil
}

// UploadProfilePicture uploads an image as a multipart form under the
// profilePicture field. Callers validate the file with
// domain.CheckImage first and refetch the profile after success.
func (c *Client) UploadProfilePicture(ctx context.Context, filename string, data []byte) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("profilePicture", filename)
	if err != nil {
		return fmt.Errorf("client.UploadProfilePicture: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return fmt.Errorf("client.UploadProfilePicture: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("client.UploadProfilePicture: %w", err)
	}

	err = c.do(ctx, http.MethodPost, "/api/auth/upload-profile-picture", reqOpts{
		body:        buf.Bytes(),
		contentType: w.FormDataContentType(),
		fallback:    "Profile picture upload failed",
	}, nil)
	if err != nil {
		return fmt.Errorf("client.UploadProfilePicture: %w", err)
	}
	return nil
}
