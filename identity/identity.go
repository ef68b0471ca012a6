// Package identity is the identity-provider boundary: email+password
// credentials in, a user id or a classified failure out. It talks to the
// Firebase Auth (Identity Toolkit) REST API; sessions and token refresh are
// out of scope, only the credential exchange is implemented.
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

const apiKeyEnv = "FIREBASE_API_KEY"

var apiKeyFlag = flag.String("firebase-api-key", "", "Firebase Web API key used for sign-in and sign-up.\n If missing it will read the environment variable \""+apiKeyEnv+"\".")

func apiKey() string {
	// If the flag is not set, we try to read it from the environment variable.
	if *apiKeyFlag == "" {
		*apiKeyFlag = os.Getenv(apiKeyEnv)
	}
	return *apiKeyFlag
}

// Failure classes the UI knows how to localize. Anything else from the
// provider is wrapped and passed through.
var (
	ErrInvalidCredential = errors.New("invalid email or password")
	ErrEmailInUse        = errors.New("email is already registered")
	ErrWeakPassword      = errors.New("password is too weak")
)

// User is an authenticated identity.
type User struct {
	UID   string
	Email string
}

const defaultBaseURL = "https://identitytoolkit.googleapis.com"

// Client calls the identity provider. The zero value is usable: it picks up
// the API key from the flag or environment and uses the default endpoint.
type Client struct {
	BaseURL    string       // endpoint override, for tests
	Key        string       // API key override
	HTTPClient *http.Client // client override
}

func (c *Client) base() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return defaultBaseURL
}

func (c *Client) key() string {
	if c.Key != "" {
		return c.Key
	}
	return apiKey()
}

func (c *Client) http() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

// SignIn exchanges credentials for the user's identity.
func (c *Client) SignIn(ctx context.Context, email, password string) (User, error) {
	return c.call(ctx, "signInWithPassword", email, password)
}

// SignUp registers a new user and returns its identity.
func (c *Client) SignUp(ctx context.Context, email, password string) (User, error) {
	return c.call(ctx, "signUp", email, password)
}

func (c *Client) call(ctx context.Context, verb, email, password string) (User, error) {
	payload, err := json.Marshal(map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	})
	if err != nil {
		return User{}, err
	}

	addr := fmt.Sprintf("%s/v1/accounts:%s?key=%s", c.base(), verb, c.key())
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, addr, bytes.NewReader(payload))
	if err != nil {
		return User{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http().Do(req)
	if err != nil {
		return User{}, fmt.Errorf("identity provider unreachable: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return User{}, err
	}

	if resp.StatusCode != http.StatusOK {
		return User{}, classify(errorMessage(raw), resp.Status)
	}

	var body struct {
		LocalID string `json:"localId"`
		Email   string `json:"email"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return User{}, fmt.Errorf("unexpected identity response: %w", err)
	}
	if body.LocalID == "" {
		return User{}, errors.New("identity response carries no user id")
	}
	return User{UID: body.LocalID, Email: body.Email}, nil
}

// errorMessage digs the provider's error code out of the failure payload,
// e.g. {"error":{"code":400,"message":"EMAIL_EXISTS",...}}.
func errorMessage(raw []byte) string {
	var jobj any
	if err := json.Unmarshal(raw, &jobj); err != nil {
		return ""
	}
	jval, err := jsonpath.Get("$.error.message", jobj)
	if err != nil {
		return ""
	}
	msg, _ := jval.(string)
	return msg
}

// classify maps provider error codes onto the failure classes the callers
// localize. WEAK_PASSWORD arrives with a suffix (": Password should be at
// least 6 characters"), hence the prefix match.
func classify(message, status string) error {
	switch {
	case message == "EMAIL_EXISTS":
		return ErrEmailInUse
	case strings.HasPrefix(message, "WEAK_PASSWORD"),
		message == "MISSING_PASSWORD":
		return ErrWeakPassword
	case message == "INVALID_LOGIN_CREDENTIALS",
		message == "INVALID_PASSWORD",
		message == "EMAIL_NOT_FOUND",
		message == "INVALID_EMAIL",
		message == "USER_DISABLED":
		return ErrInvalidCredential
	case message == "":
		return fmt.Errorf("identity provider error: %s", status)
	default:
		return fmt.Errorf("identity provider error: %s", message)
	}
}
