package post_client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"pinstack-tag-service/internal/custom_errors"
	model "pinstack-tag-service/internal/domain/models"
	ports "pinstack-tag-service/internal/domain/ports/output"
)

const defaultTimeout = 30 * time.Second

// userPostsRequest is the page of recent posts the frequently-used
// aggregation runs over.
type userPostsRequest struct {
	UserID int64  `json:"user_id"`
	Sort   string `json:"sort"`
	Count  int    `json:"count"`
	Page   int    `json:"page"`
}

// Client talks to the post directory service's internal surface.
type Client struct {
	baseURL string
	http    *http.Client
	log     ports.Logger
}

func NewPostClient(address string, port int, log ports.Logger) *Client {
	return &Client{
		baseURL: fmt.Sprintf("http://%s:%d", address, port),
		http:    &http.Client{Timeout: defaultTimeout},
		log:     log,
	}
}

func (c *Client) GetPost(ctx context.Context, postID model.PostID) (*model.InternalPost, error) {
	endpoint := c.baseURL + "/i1/post/" + postID.String()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		c.log.Error("Failed to build post service request", slog.String("post_id", postID.String()), slog.String("error", err.Error()))
		return nil, custom_errors.ErrExternalServiceError
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error("Post service request failed", slog.String("post_id", postID.String()), slog.String("error", err.Error()))
		return nil, custom_errors.ErrExternalServiceError
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.log.Warn("Failed to close post service response body", slog.String("error", err.Error()))
		}
	}()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		c.log.Debug("Post not found", slog.String("post_id", postID.String()))
		return nil, custom_errors.ErrPostNotFound
	default:
		c.log.Error("Post service returned unexpected status", slog.String("post_id", postID.String()), slog.Int("status", resp.StatusCode))
		return nil, custom_errors.ErrExternalServiceError
	}

	var post model.InternalPost
	if err := json.NewDecoder(resp.Body).Decode(&post); err != nil {
		c.log.Error("Failed to decode post service response", slog.String("post_id", postID.String()), slog.String("error", err.Error()))
		return nil, custom_errors.ErrExternalServiceError
	}
	return &post, nil
}

func (c *Client) GetUserPosts(ctx context.Context, userID int64) ([]*model.InternalPost, error) {
	body, err := json.Marshal(userPostsRequest{
		UserID: userID,
		Sort:   "new",
		Count:  64,
		Page:   1,
	})
	if err != nil {
		c.log.Error("Failed to encode user posts request", slog.Int64("user_id", userID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrExternalServiceError
	}

	endpoint := c.baseURL + "/i1/user_posts"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		c.log.Error("Failed to build user posts request", slog.Int64("user_id", userID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrExternalServiceError
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error("User posts request failed", slog.Int64("user_id", userID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrExternalServiceError
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.log.Warn("Failed to close post service response body", slog.String("error", err.Error()))
		}
	}()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		c.log.Debug("User has no posts", slog.Int64("user_id", userID))
		return nil, custom_errors.ErrUserNotFound
	default:
		c.log.Error("Post service returned unexpected status", slog.Int64("user_id", userID), slog.Int("status", resp.StatusCode))
		return nil, custom_errors.ErrExternalServiceError
	}

	var posts []*model.InternalPost
	if err := json.NewDecoder(resp.Body).Decode(&posts); err != nil {
		c.log.Error("Failed to decode user posts response", slog.Int64("user_id", userID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrExternalServiceError
	}
	return posts, nil
}
