package directory

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cartology/tripquote/internal/config"
	ierr "github.com/cartology/tripquote/internal/errors"
	"github.com/cartology/tripquote/internal/httpclient"
	"github.com/cartology/tripquote/internal/logger"
	"github.com/cartology/tripquote/internal/testutil"
	"github.com/stretchr/testify/suite"
)

type DirectoryClientSuite struct {
	suite.Suite
	server *httptest.Server

	clientsBody   string
	suppliersBody string
	status        int
	gotAuth       string
}

func TestDirectoryClient(t *testing.T) {
	suite.Run(t, new(DirectoryClientSuite))
}

func (s *DirectoryClientSuite) SetupTest() {
	s.clientsBody = `[{"id":"cl_1","first_name":"Ada","last_name":"Lovelace","email":"ada@example.com"}]`
	s.suppliersBody = `[{"id":"sup_1","name":"Belmond Hotels"}]`
	s.status = http.StatusOK

	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.gotAuth = r.Header.Get("Authorization")
		if s.status != http.StatusOK {
			w.WriteHeader(s.status)
			return
		}
		switch r.URL.Path {
		case "/clients":
			w.Write([]byte(s.clientsBody))
		case "/suppliers":
			w.Write([]byte(s.suppliersBody))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func (s *DirectoryClientSuite) TearDownTest() {
	s.server.Close()
}

func (s *DirectoryClientSuite) newRepo(authHeader string) *client {
	cfg := config.GetDefaultConfig()
	cfg.Directory.BaseURL = s.server.URL
	cfg.Directory.AuthHeader = authHeader
	httpClient := httpclient.NewRetryableClient(5*time.Second, 0)
	return NewClient(cfg, httpClient, logger.L).(*client)
}

func (s *DirectoryClientSuite) TestListClients() {
	repo := s.newRepo("")

	clients, err := repo.ListClients(testutil.SetupContext())
	s.NoError(err)
	s.Require().Len(clients, 1)
	s.Equal("cl_1", clients[0].ID)
	s.Equal("Ada Lovelace", clients[0].FullName())
}

func (s *DirectoryClientSuite) TestListSuppliers() {
	repo := s.newRepo("")

	suppliers, err := repo.ListSuppliers(testutil.SetupContext())
	s.NoError(err)
	s.Require().Len(suppliers, 1)
	s.Equal("Belmond Hotels", suppliers[0].Name)
}

func (s *DirectoryClientSuite) TestAuthHeaderForwarded() {
	repo := s.newRepo("Bearer token-123")

	_, err := repo.ListClients(testutil.SetupContext())
	s.NoError(err)
	s.Equal("Bearer token-123", s.gotAuth)
}

func (s *DirectoryClientSuite) TestMalformedResponse() {
	s.clientsBody = `{"unexpected":"shape"`
	repo := s.newRepo("")

	clients, err := repo.ListClients(testutil.SetupContext())
	s.Error(err)
	s.Nil(clients)
	s.True(ierr.IsDirectoryLoad(err))
}

func (s *DirectoryClientSuite) TestUpstreamErrorStatus() {
	s.status = http.StatusInternalServerError
	repo := s.newRepo("")

	clients, err := repo.ListClients(testutil.SetupContext())
	s.Error(err)
	s.Nil(clients)
	s.True(ierr.IsHTTPClient(err))
}
