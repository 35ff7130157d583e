package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"notekeep/internal/domain/entity"
)

// TokenSource yields the bearer token attached to every request. The auth
// provider implements it; tests use a static token.
type TokenSource interface {
	Token() (string, error)
}

// StaticToken is a TokenSource returning a fixed value.
type StaticToken string

func (t StaticToken) Token() (string, error) { return string(t), nil }

// HTTPGateway talks to the document store's REST surface.
type HTTPGateway struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
}

func NewHTTP(baseURL string, tokens TokenSource) *HTTPGateway {
	return &HTTPGateway{
		baseURL:    baseURL,
		httpClient: &http.Client{},
		tokens:     tokens,
	}
}

func (g *HTTPGateway) Create(ctx context.Context, draft *entity.NoteRecord) (*entity.NoteRecord, error) {
	var created entity.NoteRecord
	err := g.do(ctx, http.MethodPost, "/api/notes", draft, &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (g *HTTPGateway) Update(ctx context.Context, id string, rec *entity.NoteRecord) error {
	return g.do(ctx, http.MethodPatch, "/api/notes/"+url.PathEscape(id), rec, nil)
}

func (g *HTTPGateway) Delete(ctx context.Context, id string) error {
	return g.do(ctx, http.MethodDelete, "/api/notes/"+url.PathEscape(id), nil, nil)
}

func (g *HTTPGateway) List(ctx context.Context, userID string) ([]*entity.NoteRecord, error) {
	var out struct {
		Notes []*entity.NoteRecord `json:"notes"`
	}
	path := "/api/notes?user=" + url.QueryEscape(userID)
	if err := g.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Notes, nil
}

func (g *HTTPGateway) do(ctx context.Context, method, path string, body, out any) error {
	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return &GatewayError{Kind: KindInvalid, Message: err.Error()}
		}
		payload = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, payload)
	if err != nil {
		return &GatewayError{Kind: KindNetwork, Message: err.Error()}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if g.tokens != nil {
		token, err := g.tokens.Token()
		if err != nil {
			return &GatewayError{Kind: KindPermission, Message: err.Error()}
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return &GatewayError{Kind: KindNetwork, Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return statusError(resp)
	}

	if out != nil {
		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return &GatewayError{Kind: KindNetwork, Message: err.Error()}
		}
		if err := json.Unmarshal(raw, out); err != nil {
			return &GatewayError{Kind: KindInvalid, Message: err.Error()}
		}
	}
	return nil
}

func statusError(resp *http.Response) *GatewayError {
	kind := KindNetwork
	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		kind = KindPermission
	case http.StatusNotFound:
		kind = KindNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		kind = KindInvalid
	}

	message := fmt.Sprintf("request failed with status code: %d", resp.StatusCode)
	var body struct {
		Message string `json:"message"`
	}
	raw, err := io.ReadAll(resp.Body)
	if err == nil && json.Unmarshal(raw, &body) == nil && body.Message != "" {
		message = body.Message
	}

	return &GatewayError{Kind: kind, Status: resp.StatusCode, Message: message}
}
