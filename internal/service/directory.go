package service

import (
	"context"

	"github.com/cartology/tripquote/internal/domain/directory"
	ierr "github.com/cartology/tripquote/internal/errors"
	"github.com/sourcegraph/conc/pool"
)

// DirectoryService loads the external client/supplier directory. The load is
// all-or-nothing: both lists must arrive within the configured timeout or the
// whole load fails, so the caller never proceeds with a partial directory.
type DirectoryService interface {
	Load(ctx context.Context) (*directory.Directory, error)
}

type directoryService struct {
	ServiceParams
}

func NewDirectoryService(params ServiceParams) DirectoryService {
	return &directoryService{ServiceParams: params}
}

func (s *directoryService) Load(ctx context.Context) (*directory.Directory, error) {
	ctx, cancel := context.WithTimeout(ctx, s.Config.Directory.Timeout)
	defer cancel()

	var (
		clients   []directory.Client
		suppliers []directory.Supplier
	)

	p := pool.New().WithErrors().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		var err error
		clients, err = s.DirectoryRepo.ListClients(ctx)
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		suppliers, err = s.DirectoryRepo.ListSuppliers(ctx)
		return err
	})

	if err := p.Wait(); err != nil {
		s.Logger.Errorw("directory load failed", "error", err)
		return nil, ierr.WithError(err).
			WithHint("Could not load the client and supplier directory").
			Mark(ierr.ErrDirectoryLoad)
	}

	return directory.NewDirectory(clients, suppliers), nil
}
