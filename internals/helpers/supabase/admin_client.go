// internals/helpers/supabase/admin_client.go
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// AdminClient talks to the GoTrue admin API with the service-role key.
// Only the two operations the backend needs are wrapped.
type AdminClient struct {
	BaseURL    string
	ServiceKey string
	HTTP       *http.Client
}

func NewAdminClient(baseURL, serviceKey string) *AdminClient {
	return &AdminClient{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		ServiceKey: serviceKey,
		HTTP:       &http.Client{Timeout: 15 * time.Second},
	}
}

type createUserPayload struct {
	Email        string            `json:"email"`
	Password     string            `json:"password"`
	EmailConfirm bool              `json:"email_confirm"`
	UserMetadata map[string]string `json:"user_metadata"`
	AppMetadata  map[string]string `json:"app_metadata"`
}

type createUserResponse struct {
	ID string `json:"id"`
}

// CreateUser provisions a confirmed login with the given role metadata and
// returns the provider's subject id.
func (a *AdminClient) CreateUser(ctx context.Context, email, password, role string) (uuid.UUID, error) {
	payload := createUserPayload{
		Email:        email,
		Password:     password,
		EmailConfirm: true,
		UserMetadata: map[string]string{"role": role},
		AppMetadata:  map[string]string{"role": role},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return uuid.Nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.BaseURL+"/auth/v1/admin/users", bytes.NewReader(body))
	if err != nil {
		return uuid.Nil, err
	}
	a.setAuthHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.HTTP.Do(req)
	if err != nil {
		return uuid.Nil, fmt.Errorf("auth admin create: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return uuid.Nil, fmt.Errorf("auth admin create: status %d: %s", resp.StatusCode, string(detail))
	}

	var out createUserResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return uuid.Nil, fmt.Errorf("auth admin create: decode: %w", err)
	}
	id, err := uuid.Parse(out.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("auth admin create: bad user id %q", out.ID)
	}
	return id, nil
}

// DeleteUser removes the provider login. Callers treat failures as
// best-effort.
func (a *AdminClient) DeleteUser(ctx context.Context, id uuid.UUID) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, a.BaseURL+"/auth/v1/admin/users/"+id.String(), nil)
	if err != nil {
		return err
	}
	a.setAuthHeaders(req)

	resp, err := a.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("auth admin delete: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 && resp.StatusCode != http.StatusNotFound {
		return fmt.Errorf("auth admin delete: status %d", resp.StatusCode)
	}
	return nil
}

func (a *AdminClient) setAuthHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+a.ServiceKey)
	req.Header.Set("apikey", a.ServiceKey)
}
