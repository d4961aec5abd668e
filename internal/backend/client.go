package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	autherrors "go-apparel-api/internal/auth/errors"
	"go-apparel-api/internal/pkg/apperror"
)

// Client talks to the storefront backend that owns the durable cart, the
// promo registry and order history. It is the only network boundary besides
// cloudinary and the payment gateway.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewClient(baseURL string, logger ...*zap.Logger) *Client {
	l := zap.L().Named("backend.client")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("backend.client")
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		logger: l,
	}
}

var ErrBackendUnavailable = apperror.New(
	apperror.CodeBadGateway,
	"Something went wrong, please try again",
	http.StatusBadGateway,
)

type serverError struct {
	Message string `json:"message"`
}

func (c *Client) GetJSON(ctx context.Context, path, token string, out any) error {
	return c.do(ctx, http.MethodGet, path, token, "", nil, out)
}

func (c *Client) PostJSON(ctx context.Context, path, token string, body, out any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, token, "application/json", bytes.NewReader(raw), out)
}

// MultipartForm collects plain fields plus at most one binary file part.
type MultipartForm struct {
	Fields   map[string]string
	FileName string
	FileKey  string
	FileData []byte
}

func (c *Client) PostMultipart(ctx context.Context, path, token string, form MultipartForm, out any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for key, value := range form.Fields {
		if err := writer.WriteField(key, value); err != nil {
			return err
		}
	}
	if form.FileKey != "" && len(form.FileData) > 0 {
		part, err := writer.CreateFormFile(form.FileKey, form.FileName)
		if err != nil {
			return err
		}
		if _, err := part.Write(form.FileData); err != nil {
			return err
		}
	}
	if err := writer.Close(); err != nil {
		return err
	}

	return c.do(ctx, http.MethodPost, path, token, writer.FormDataContentType(), &buf, out)
}

func (c *Client) do(ctx context.Context, method, path, token, contentType string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("backend request failed", zap.String("path", path), zap.Error(err))
		return ErrBackendUnavailable
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return ErrBackendUnavailable
	}

	if resp.StatusCode == http.StatusUnauthorized {
		// Session expired upstream; response.FromError clears the stored
		// token when this surfaces.
		return autherrors.ErrSessionExpired
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var srvErr serverError
		if err := json.Unmarshal(raw, &srvErr); err == nil && srvErr.Message != "" {
			return ErrBackendUnavailable.WithMessage(srvErr.Message)
		}
		c.logger.Warn("backend non-success status",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
		)
		return ErrBackendUnavailable
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode backend response: %w", err)
	}
	return nil
}
