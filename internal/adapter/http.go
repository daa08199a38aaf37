package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-ident-keeper/internal/config"
	"github.com/MKhiriev/go-ident-keeper/internal/logger"
	"github.com/MKhiriev/go-ident-keeper/internal/utils"
	"github.com/MKhiriev/go-ident-keeper/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	ids    *utils.UUIDGenerator

	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, ids: utils.NewUUIDGenerator(), logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	return h.token
}

// ListClients implements [ServerAdapter]. It GETs /api/clients and decodes
// the response into the client slice. userID is unused in the HTTP
// implementation (the server infers the user from the bearer token).
func (h *httpServerAdapter) ListClients(ctx context.Context, userID string) ([]models.Client, error) {
	resp, err := h.authedRequest(ctx).Get("/api/clients")
	if err != nil {
		return nil, fmt.Errorf("list clients request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var clients []models.Client
	if err = json.Unmarshal(resp.Body(), &clients); err != nil {
		return nil, fmt.Errorf("decode clients response: %w", err)
	}

	return clients, nil
}

// RegisterClient implements [ServerAdapter]. It POSTs the public key bundle
// to POST /api/clients. Registration rejections are mapped by label:
// [ErrMissingAuth] and [ErrTooManyClients]; the supervisor turns those into
// registration states, not failures.
func (h *httpServerAdapter) RegisterClient(ctx context.Context, req models.RegisterClientRequest) (models.Client, error) {
	var client models.Client

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&client).
		Post("/api/clients")
	if err != nil {
		return models.Client{}, fmt.Errorf("register client request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Client{}, err
	}

	return client, nil
}

// DeleteClient implements [ServerAdapter]. It sends
// DELETE /api/clients/{id} with the re-authentication password in the body.
func (h *httpServerAdapter) DeleteClient(ctx context.Context, clientID, password string) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"password": password}).
		Delete("/api/clients/" + url.PathEscape(clientID))
	if err != nil {
		return fmt.Errorf("delete client request: %w", err)
	}

	return mapHTTPError(resp)
}

// UpdateEmail implements [ServerAdapter]. It PUTs the new address to
// PUT /api/self/email. The address stays pending until activated.
func (h *httpServerAdapter) UpdateEmail(ctx context.Context, email string) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"email": email}).
		Put("/api/self/email")
	if err != nil {
		return fmt.Errorf("update email request: %w", err)
	}

	return mapHTTPError(resp)
}

// UpdatePassword implements [ServerAdapter]. It PUTs the new password to
// PUT /api/self/password.
func (h *httpServerAdapter) UpdatePassword(ctx context.Context, password string) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"new_password": password}).
		Put("/api/self/password")
	if err != nil {
		return fmt.Errorf("update password request: %w", err)
	}

	return mapHTTPError(resp)
}

// GetSelf implements [ServerAdapter]. It GETs /api/self and returns the
// account's own profile record.
func (h *httpServerAdapter) GetSelf(ctx context.Context) (models.User, error) {
	var self models.User

	resp, err := h.authedRequest(ctx).
		SetResult(&self).
		Get("/api/self")
	if err != nil {
		return models.User{}, fmt.Errorf("get self request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return self, nil
}

// InviteTeamMember implements [ServerAdapter]. It POSTs the invitation to
// POST /api/teams/{team}/invitations and returns the server confirmation.
func (h *httpServerAdapter) InviteTeamMember(ctx context.Context, inv models.TeamInvitation) (models.TeamInvitationConfirmation, error) {
	var confirmation models.TeamInvitationConfirmation

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(inv).
		SetResult(&confirmation).
		Post("/api/teams/" + url.PathEscape(inv.TeamID) + "/invitations")
	if err != nil {
		return models.TeamInvitationConfirmation{}, fmt.Errorf("invite team member request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TeamInvitationConfirmation{}, err
	}

	return confirmation, nil
}

// authedRequest prepares a request carrying the bearer token and a unique
// X-Request-Id the server can correlate logs by.
func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("X-Request-Id", h.ids.Generate())
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
