package permission

// defaultModel is a plain RBAC model: a role may perform an action on a resource.
const defaultModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

// Roles match access.Kind values.
const (
	RoleStore = "store"
	RoleAdmin = "admin"
)

const (
	ResourceTicket  = "ticket"
	ResourceComment = "comment"
	ResourceDevice  = "device"
	ResourceStore   = "store"
	ResourceAudit   = "audit"
	ResourceReport  = "report"
)

const (
	ActionCreate = "create"
	ActionRead   = "read"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// DefaultPolicies returns the built-in role permissions.
func DefaultPolicies() [][]string {
	return [][]string{
		// Stores file tickets and follow up on their own rows
		{RoleStore, ResourceTicket, ActionCreate},
		{RoleStore, ResourceTicket, ActionRead},
		{RoleStore, ResourceComment, ActionCreate},
		{RoleStore, ResourceComment, ActionRead},
		{RoleStore, ResourceDevice, ActionRead},
		{RoleStore, ResourceAudit, ActionCreate},

		{RoleAdmin, ResourceTicket, ActionRead},
		{RoleAdmin, ResourceTicket, ActionUpdate},
		{RoleAdmin, ResourceComment, ActionCreate},
		{RoleAdmin, ResourceComment, ActionRead},
		{RoleAdmin, ResourceDevice, ActionCreate},
		{RoleAdmin, ResourceDevice, ActionRead},
		{RoleAdmin, ResourceDevice, ActionUpdate},
		{RoleAdmin, ResourceDevice, ActionDelete},
		{RoleAdmin, ResourceStore, ActionCreate},
		{RoleAdmin, ResourceStore, ActionRead},
		{RoleAdmin, ResourceStore, ActionUpdate},
		{RoleAdmin, ResourceAudit, ActionRead},
		{RoleAdmin, ResourceReport, ActionRead},
	}
}
