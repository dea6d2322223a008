package service

import (
	"context"
	"testing"

	"github.com/cartology/tripquote/internal/domain/directory"
	ierr "github.com/cartology/tripquote/internal/errors"
	"github.com/cartology/tripquote/internal/testutil"
	"github.com/stretchr/testify/suite"
)

type DirectoryServiceSuite struct {
	suite.Suite
	ctx     context.Context
	repo    *testutil.InMemoryDirectoryRepository
	service DirectoryService
}

func TestDirectoryService(t *testing.T) {
	suite.Run(t, new(DirectoryServiceSuite))
}

func (s *DirectoryServiceSuite) SetupTest() {
	s.ctx = testutil.SetupContext()
	deps := testutil.NewServiceDeps()
	s.repo = deps.DirectoryRepo
	params := NewServiceParams(deps.Logger, deps.Config, deps.DirectoryRepo, nil)
	s.service = NewDirectoryService(params)
}

func (s *DirectoryServiceSuite) TestLoadBuildsSnapshot() {
	s.repo.SetClients([]directory.Client{
		{ID: "cl_1", FirstName: "Ada", LastName: "Lovelace"},
	})
	s.repo.SetSuppliers([]directory.Supplier{
		{ID: "sup_1", Name: "Belmond Hotels"},
	})

	dir, err := s.service.Load(s.ctx)
	s.NoError(err)
	s.Require().NotNil(dir)

	client, ok := dir.ClientByID("cl_1")
	s.True(ok)
	s.Equal("Ada Lovelace", client.FullName())
	s.Equal("Belmond Hotels", dir.SupplierName("sup_1"))
	s.Empty(dir.SupplierName("sup_missing"))
}

func (s *DirectoryServiceSuite) TestLoadIsAllOrNothing() {
	s.repo.SetClients([]directory.Client{{ID: "cl_1"}})
	s.repo.SuppliersErr = ierr.NewError("upstream down").Mark(ierr.ErrHTTPClient)

	dir, err := s.service.Load(s.ctx)
	s.Error(err)
	s.Nil(dir)
	s.True(ierr.IsDirectoryLoad(err))
}

func (s *DirectoryServiceSuite) TestLoadEmptyDirectory() {
	dir, err := s.service.Load(s.ctx)
	s.NoError(err)
	s.Require().NotNil(dir)
	s.Empty(dir.Clients)
	s.Empty(dir.Suppliers)
}
