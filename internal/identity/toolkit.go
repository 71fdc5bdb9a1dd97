package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const DefaultToolkitURL = "https://identitytoolkit.googleapis.com/v1"

// Toolkit calls the client-side Identity Toolkit REST API. The admin SDK can
// create users but cannot check a password, so sign-in goes through here.
type Toolkit struct {
	baseURL    string
	apiKey     string
	requestURI string
	httpClient *http.Client
}

func NewToolkit(baseURL, apiKey, requestURI string) *Toolkit {
	if baseURL == "" {
		baseURL = DefaultToolkitURL
	}
	return &Toolkit{
		baseURL:    baseURL,
		apiKey:     apiKey,
		requestURI: requestURI,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type signInResponse struct {
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    string `json:"expiresIn"`
	LocalID      string `json:"localId"`
}

// ToolkitError is the error envelope of the REST API. Message holds codes
// such as EMAIL_NOT_FOUND or INVALID_LOGIN_CREDENTIALS.
type ToolkitError struct {
	Status  int
	Message string
}

func (e *ToolkitError) Error() string {
	return e.Message
}

func (t *Toolkit) SignInWithPassword(ctx context.Context, email, password string) (string, error) {
	resp, err := t.call(ctx, "signInWithPassword", map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	})
	if err != nil {
		return "", err
	}
	return resp.LocalID, nil
}

// SignInWithIdp signs in with a credential from a federated provider such as
// google.com. Unknown users are created by the service.
func (t *Toolkit) SignInWithIdp(ctx context.Context, providerID, idToken string) (string, error) {
	postBody := url.Values{}
	postBody.Set("id_token", idToken)
	postBody.Set("providerId", providerID)

	resp, err := t.call(ctx, "signInWithIdp", map[string]any{
		"postBody":            postBody.Encode(),
		"requestUri":          t.requestURI,
		"returnSecureToken":   true,
		"returnIdpCredential": true,
	})
	if err != nil {
		return "", err
	}
	return resp.LocalID, nil
}

func (t *Toolkit) call(ctx context.Context, method string, payload map[string]any) (signInResponse, error) {
	var out signInResponse

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return out, err
	}
	endpoint := fmt.Sprintf("%s/accounts:%s?key=%s", t.baseURL, method, url.QueryEscape(t.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payloadBytes))
	if err != nil {
		return out, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return out, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return out, err
	}

	if resp.StatusCode != http.StatusOK {
		var envelope struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		msg := string(body)
		if json.Unmarshal(body, &envelope) == nil && envelope.Error.Message != "" {
			msg = envelope.Error.Message
		}
		return out, &ToolkitError{Status: resp.StatusCode, Message: msg}
	}

	if err := json.Unmarshal(body, &out); err != nil {
		return out, fmt.Errorf("decode %s response: %w", method, err)
	}
	return out, nil
}
