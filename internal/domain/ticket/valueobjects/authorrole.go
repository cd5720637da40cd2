package valueobjects

type AuthorRole string

const (
	AuthorRoleAdmin AuthorRole = "ADMIN"
	AuthorRoleStore AuthorRole = "STORE"
)

func (r AuthorRole) String() string {
	return string(r)
}

func (r AuthorRole) IsValid() bool {
	return r == AuthorRoleAdmin || r == AuthorRoleStore
}
