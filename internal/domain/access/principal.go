// Package access models who is calling and which rows they may touch.
package access

// Kind distinguishes the two caller roles.
type Kind string

const (
	KindStore Kind = "store"
	KindAdmin Kind = "admin"
)

// Principal is the authenticated identity of a request: one specific store,
// or the undifferentiated admin role.
type Principal struct {
	kind    Kind
	storeID string
}

// StorePrincipal returns the principal of a store session.
func StorePrincipal(storeID string) Principal {
	return Principal{kind: KindStore, storeID: storeID}
}

// AdminPrincipal returns the admin principal.
func AdminPrincipal() Principal {
	return Principal{kind: KindAdmin}
}

func (p Principal) Kind() Kind {
	return p.kind
}

// StoreID is empty for the admin principal.
func (p Principal) StoreID() string {
	return p.storeID
}

func (p Principal) IsAdmin() bool {
	return p.kind == KindAdmin
}

func (p Principal) IsStore() bool {
	return p.kind == KindStore && p.storeID != ""
}

// Scope returns the ownership filter for every data operation this
// principal performs.
func (p Principal) Scope() Scope {
	if p.IsAdmin() {
		return Scope{unrestricted: true}
	}
	return Scope{storeID: p.storeID}
}
