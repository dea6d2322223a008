package testutil

import (
	"context"
	"sync"

	"github.com/cartology/tripquote/internal/domain/directory"
)

// InMemoryDirectoryRepository is an in-memory implementation of the
// directory.Repository interface for tests. It can be primed with fixed
// lists and toggled to fail either call.
type InMemoryDirectoryRepository struct {
	mu        sync.Mutex
	clients   []directory.Client
	suppliers []directory.Supplier

	ClientsErr   error
	SuppliersErr error
}

// NewInMemoryDirectoryRepository creates a new empty repository.
func NewInMemoryDirectoryRepository() *InMemoryDirectoryRepository {
	return &InMemoryDirectoryRepository{}
}

// SetClients replaces the stored client list.
func (r *InMemoryDirectoryRepository) SetClients(clients []directory.Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clients = clients
}

// SetSuppliers replaces the stored supplier list.
func (r *InMemoryDirectoryRepository) SetSuppliers(suppliers []directory.Supplier) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.suppliers = suppliers
}

func (r *InMemoryDirectoryRepository) ListClients(ctx context.Context) ([]directory.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.ClientsErr != nil {
		return nil, r.ClientsErr
	}
	out := make([]directory.Client, len(r.clients))
	copy(out, r.clients)
	return out, nil
}

func (r *InMemoryDirectoryRepository) ListSuppliers(ctx context.Context) ([]directory.Supplier, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.SuppliersErr != nil {
		return nil, r.SuppliersErr
	}
	out := make([]directory.Supplier, len(r.suppliers))
	copy(out, r.suppliers)
	return out, nil
}
