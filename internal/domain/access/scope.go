package access

// Scope is the ownership predicate applied to store-owned rows. The zero
// Scope matches nothing.
type Scope struct {
	storeID      string
	unrestricted bool
}

// Unrestricted is the admin scope.
func Unrestricted() Scope {
	return Scope{unrestricted: true}
}

// OwnedBy scopes to a single store.
func OwnedBy(storeID string) Scope {
	return Scope{storeID: storeID}
}

func (s Scope) IsUnrestricted() bool {
	return s.unrestricted
}

// StoreID is the owning store, empty for the unrestricted scope.
func (s Scope) StoreID() string {
	return s.storeID
}

// Allows reports whether a row owned by storeID is visible in this scope.
func (s Scope) Allows(storeID string) bool {
	if s.unrestricted {
		return true
	}
	return s.storeID != "" && s.storeID == storeID
}
