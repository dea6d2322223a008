package directory

import "strings"

// Client is one entry of the external client directory. The core only ever
// reads clients as a lookup table keyed by ID.
type Client struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Company   string `json:"company,omitempty"`
	Email     string `json:"email,omitempty"`
}

// FullName joins the name parts, tolerating either being empty.
func (c Client) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// Supplier is one entry of the external supplier directory.
type Supplier struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Directory is an immutable snapshot of both directory lists with lookup
// maps built once. A snapshot is only ever constructed from a complete,
// successful load of both sources.
type Directory struct {
	Clients   []Client   `json:"clients"`
	Suppliers []Supplier `json:"suppliers"`

	clientsByID   map[string]Client
	suppliersByID map[string]Supplier
}

// NewDirectory builds a snapshot with its lookup maps.
func NewDirectory(clients []Client, suppliers []Supplier) *Directory {
	d := &Directory{
		Clients:       clients,
		Suppliers:     suppliers,
		clientsByID:   make(map[string]Client, len(clients)),
		suppliersByID: make(map[string]Supplier, len(suppliers)),
	}
	for _, c := range clients {
		d.clientsByID[c.ID] = c
	}
	for _, s := range suppliers {
		d.suppliersByID[s.ID] = s
	}
	return d
}

// ClientByID looks up a client; the second return reports presence.
func (d *Directory) ClientByID(id string) (Client, bool) {
	c, ok := d.clientsByID[id]
	return c, ok
}

// SupplierName resolves a supplier ref to its display name. An unknown or
// empty ref yields an empty name, never an error.
func (d *Directory) SupplierName(id string) string {
	if id == "" {
		return ""
	}
	return d.suppliersByID[id].Name
}
