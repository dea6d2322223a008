package directory

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/cartology/tripquote/internal/config"
	domain "github.com/cartology/tripquote/internal/domain/directory"
	ierr "github.com/cartology/tripquote/internal/errors"
	"github.com/cartology/tripquote/internal/httpclient"
	"github.com/cartology/tripquote/internal/logger"
)

// client implements directory.Repository against the external directory API.
type client struct {
	cfg    config.DirectoryConfig
	http   httpclient.Client
	logger *logger.Logger
}

// NewClient creates the HTTP directory repository.
func NewClient(cfg *config.Configuration, httpClient httpclient.Client, logger *logger.Logger) domain.Repository {
	return &client{
		cfg:    cfg.Directory,
		http:   httpClient,
		logger: logger,
	}
}

func (c *client) ListClients(ctx context.Context) ([]domain.Client, error) {
	var clients []domain.Client
	if err := c.get(ctx, "/clients", &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

func (c *client) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	var suppliers []domain.Supplier
	if err := c.get(ctx, "/suppliers", &suppliers); err != nil {
		return nil, err
	}
	return suppliers, nil
}

func (c *client) get(ctx context.Context, path string, out any) error {
	req := &httpclient.Request{
		Method: http.MethodGet,
		URL:    c.cfg.BaseURL + path,
	}
	if c.cfg.AuthHeader != "" {
		req.Headers = map[string]string{"Authorization": c.cfg.AuthHeader}
	}

	resp, err := c.http.Send(ctx, req)
	if err != nil {
		c.logger.Errorw("directory fetch failed", "path", path, "error", err)
		return err
	}

	if err := json.Unmarshal(resp.Body, out); err != nil {
		return ierr.WithError(err).
			WithHint("Directory returned a malformed response").
			WithReportableDetails(map[string]any{
				"path": path,
			}).
			Mark(ierr.ErrDirectoryLoad)
	}
	return nil
}
