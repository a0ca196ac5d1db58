package authz

// Resource kinds. Every record subject to authorization carries exactly one of
// these tags.
const (
	KindEmployee     = "employee"
	KindLeaveRequest = "leaverequest"
)

const (
	ActionRead   = "read"
	ActionList   = "list"
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

const (
	RoleHR       = "hr"
	RoleEmployee = "employee"
)

// Caller is the authenticated identity resolved by the auth middleware.
type Caller struct {
	Email string
	IsHR  bool
}

func (c Caller) Role() string {
	if c.IsHR {
		return RoleHR
	}
	return RoleEmployee
}

// Resource is implemented by records that have an owning account. Ownership is
// evaluated once per request, after the role policy has passed.
type Resource interface {
	ResourceKind() string
	OwnerEmail() string
}

//go:generate mockgen -source=authz.go -destination=mock/authz_mock.go -package=mock
type Authorizer interface {
	// Allow answers the role-level question: may this role perform this
	// action on this resource kind at all?
	Allow(caller Caller, resource, action string) (bool, error)

	// CanActOn answers the object-level question: HR may act on any record,
	// everyone else only on records they own.
	CanActOn(caller Caller, res Resource) bool
}
