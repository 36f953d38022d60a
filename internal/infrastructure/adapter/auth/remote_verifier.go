package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	domainErr "github.com/ecotrail/ecopoints/internal/domain/error"
	"github.com/ecotrail/ecopoints/internal/domain/port/core"
	"github.com/ecotrail/ecopoints/internal/domain/port/identity"
)

// RemoteVerifier validates tokens by asking the identity provider who the
// bearer is. Used when the provider does not share its signing key.
type RemoteVerifier struct {
	baseURL      string
	client       *http.Client
	timeout      time.Duration
	timeProvider core.TimeProvider
	logger       core.Logger
}

// remoteUserResponse is the provider's user payload. Only the fields the
// application needs are decoded.
type remoteUserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// NewRemoteVerifier creates a verifier backed by the provider's user endpoint
func NewRemoteVerifier(baseURL string, timeout time.Duration, timeProvider core.TimeProvider, logger core.Logger) *RemoteVerifier {
	return &RemoteVerifier{
		baseURL:      strings.TrimRight(baseURL, "/"),
		client:       &http.Client{Timeout: timeout},
		timeout:      timeout,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Verify resolves the token to an identity via the provider.
//
// Possible errors:
//   - ErrUnauthenticated: if the provider rejects the token
//   - wrapped transport error: if the provider cannot be reached
func (v *RemoteVerifier) Verify(ctx context.Context, token string) (*identity.Identity, error) {
	reqCtx, cancel := v.timeProvider.WithTimeout(ctx, v.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, v.baseURL+"/auth/v1/user", nil)
	if err != nil {
		return nil, fmt.Errorf("building identity request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	started := v.timeProvider.Now()
	resp, err := v.client.Do(req)
	if err != nil {
		v.logger.Error("Identity provider unreachable", map[string]any{
			"error":    err.Error(),
			"base_url": v.baseURL,
		})
		return nil, fmt.Errorf("calling identity provider: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		v.logger.Debug("Identity provider rejected token", map[string]any{
			"status":      resp.StatusCode,
			"duration_ms": v.timeProvider.Since(started).Milliseconds(),
		})
		return nil, domainErr.ErrUnauthenticated
	}

	var user remoteUserResponse
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("decoding identity response: %w", err)
	}
	if user.ID == "" {
		return nil, domainErr.ErrUnauthenticated
	}

	return &identity.Identity{
		Subject: user.ID,
		Email:   user.Email,
	}, nil
}
