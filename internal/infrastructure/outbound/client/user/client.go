package user_client

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"pinstack-tag-service/internal/custom_errors"
	model "pinstack-tag-service/internal/domain/models"
	ports "pinstack-tag-service/internal/domain/ports/output"
)

const defaultTimeout = 30 * time.Second

// Client talks to the user directory service over HTTP. Handle resolution
// uses the public route; lookups by id use the internal surface.
type Client struct {
	baseURL string
	http    *http.Client
	log     ports.Logger
}

func NewUserClient(address string, port int, log ports.Logger) *Client {
	return &Client{
		baseURL: fmt.Sprintf("http://%s:%d", address, port),
		http:    &http.Client{Timeout: defaultTimeout},
		log:     log,
	}
}

func (c *Client) GetUserByHandle(ctx context.Context, handle string) (*model.InternalUser, error) {
	return c.getUser(ctx, c.baseURL+"/v1/fetch_user/"+url.PathEscape(handle), slog.String("handle", handle))
}

func (c *Client) GetUserByID(ctx context.Context, id int64) (*model.InternalUser, error) {
	return c.getUser(ctx, fmt.Sprintf("%s/i1/user/%d", c.baseURL, id), slog.Int64("user_id", id))
}

func (c *Client) getUser(ctx context.Context, endpoint string, attr slog.Attr) (*model.InternalUser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		c.log.Error("Failed to build user service request", attr, slog.String("error", err.Error()))
		return nil, custom_errors.ErrExternalServiceError
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error("User service request failed", attr, slog.String("error", err.Error()))
		return nil, custom_errors.ErrExternalServiceError
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.log.Warn("Failed to close user service response body", slog.String("error", err.Error()))
		}
	}()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		c.log.Debug("User not found", attr)
		return nil, custom_errors.ErrUserNotFound
	default:
		c.log.Error("User service returned unexpected status", attr, slog.Int("status", resp.StatusCode))
		return nil, custom_errors.ErrExternalServiceError
	}

	var user model.InternalUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		c.log.Error("Failed to decode user service response", attr, slog.String("error", err.Error()))
		return nil, custom_errors.ErrExternalServiceError
	}
	return &user, nil
}
