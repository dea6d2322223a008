package dto

import (
	"github.com/cartology/tripquote/internal/domain/directory"
)

// ClientResponse is one bookable client from the external directory.
type ClientResponse struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Company  string `json:"company,omitempty"`
	Email    string `json:"email,omitempty"`
}

// SupplierResponse is one supplier from the external directory.
type SupplierResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DirectoryResponse is the combined client/supplier snapshot returned by the
// directory endpoint. Both lists come from one all-or-nothing load.
type DirectoryResponse struct {
	Clients   []ClientResponse   `json:"clients"`
	Suppliers []SupplierResponse `json:"suppliers"`
}

func ToDirectoryResponse(dir *directory.Directory) *DirectoryResponse {
	resp := &DirectoryResponse{
		Clients:   make([]ClientResponse, 0, len(dir.Clients)),
		Suppliers: make([]SupplierResponse, 0, len(dir.Suppliers)),
	}
	for _, c := range dir.Clients {
		resp.Clients = append(resp.Clients, ClientResponse{
			ID:       c.ID,
			FullName: c.FullName(),
			Company:  c.Company,
			Email:    c.Email,
		})
	}
	for _, s := range dir.Suppliers {
		resp.Suppliers = append(resp.Suppliers, SupplierResponse{
			ID:   s.ID,
			Name: s.Name,
		})
	}
	return resp
}
