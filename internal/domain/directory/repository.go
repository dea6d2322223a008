package directory

import "context"

// Repository fetches the external client/supplier directory. Implementations
// must respect context deadlines; the caller treats any failure as terminal
// for the load as a whole.
type Repository interface {
	ListClients(ctx context.Context) ([]Client, error)
	ListSuppliers(ctx context.Context) ([]Supplier, error)
}
