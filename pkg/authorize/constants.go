package authorize

import (
	"fmt"
	"regexp"
)

type Action string
type Resource string
type Role string
type Domain string

// ----------------------------
// Actions
// ----------------------------

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionList   Action = "list"

	// Power actions
	ActionManage Action = "manage" // CRUD + list

	// Appointment lifecycle actions
	ActionBook       Action = "book"
	ActionCancel     Action = "cancel"
	ActionReschedule Action = "reschedule"
	ActionComplete   Action = "complete"

	// Administrative actions
	ActionApprove Action = "approve"
	ActionBlock   Action = "block"

	// RBAC-specific actions
	ActionGrant  Action = "grant"
	ActionRevoke Action = "revoke"
)

const (
	WildcardAction Action = "*"
)

var KnownActions = map[Action]struct{}{
	ActionCreate: {}, ActionRead: {}, ActionUpdate: {}, ActionDelete: {}, ActionList: {},
	ActionManage: {},
	ActionBook:   {}, ActionCancel: {}, ActionReschedule: {}, ActionComplete: {},
	ActionApprove: {}, ActionBlock: {},
	ActionGrant: {}, ActionRevoke: {},
}

// ----------------------------
// Resources
// ----------------------------

const (
	WildcardResource Resource = "*"

	// Identity / auth
	ResourceUser        Resource = "user"
	ResourceAuthSession Resource = "auth_session"

	// Hospital directory
	ResourceDepartment Resource = "department"
	ResourceDoctor     Resource = "doctor"
	ResourcePatient    Resource = "patient"

	// Scheduling
	ResourceAvailability Resource = "availability"
	ResourceAppointment  Resource = "appointment"

	// Clinical records
	ResourceTreatment Resource = "treatment"

	// Communication
	ResourceNotification Resource = "notification"

	// System / platform admin
	ResourceSystem Resource = "system"
	ResourceAudit  Resource = "audit"
	ResourceRBAC   Resource = "rbac"
)

var KnownResources = map[Resource]struct{}{
	ResourceUser: {}, ResourceAuthSession: {},
	ResourceDepartment: {}, ResourceDoctor: {}, ResourcePatient: {},
	ResourceAvailability: {}, ResourceAppointment: {},
	ResourceTreatment:    {},
	ResourceNotification: {},
	ResourceSystem:       {}, ResourceAudit: {}, ResourceRBAC: {},
}

// ----------------------------
// Roles
// ----------------------------
//
// These are the "policy subjects" we assign to users via grouping policies.

const (
	WildcardRole Role = "*"

	// Platform role (domain = sys)
	RoleSysSuperAdmin Role = "role:sys:superadmin"

	// Hospital roles (domain = hospital)
	RoleHospitalAdmin   Role = "role:hospital:admin"
	RoleHospitalDoctor  Role = "role:hospital:doctor"
	RoleHospitalPatient Role = "role:hospital:patient"

	// Private user scope (domain = user:<uuid>)
	RoleUserSelf Role = "role:user:self"
)

var KnownRoles = map[Role]struct{}{
	RoleSysSuperAdmin:   {},
	RoleHospitalAdmin:   {},
	RoleHospitalDoctor:  {},
	RoleHospitalPatient: {},
	RoleUserSelf:        {},
}

// User role strings (stored in the users.role column and carried in token claims)
const (
	UserRoleAdmin   = "admin"
	UserRoleDoctor  = "doctor"
	UserRolePatient = "patient"
)

// UserRoleToRBACRole maps DB role values to Casbin roles
var UserRoleToRBACRole = map[string]Role{
	UserRoleAdmin:   RoleHospitalAdmin,
	UserRoleDoctor:  RoleHospitalDoctor,
	UserRolePatient: RoleHospitalPatient,
}

// ----------------------------
// Domains
// ----------------------------

const (
	DomainSys Domain = "sys"

	// DomainHospital is the single shared domain for hospital resources.
	DomainHospital Domain = "hospital"
)

// Domain prefixes (for exact domains we generate per entity)
const (
	DomainPrefixUser Domain = "user:"
)

const (
	WildcardDomain Domain = "*"
)

var (
	reUUID = regexp.MustCompile(`^[0-9a-fA-F-]{36}$`)
)

// UserDomain builds a user's private domain (typed, safe).
func UserDomain(userID string) Domain {
	return Domain(fmt.Sprintf("%s%s", DomainPrefixUser, userID))
}

// IsValidDomain checks whether d is a recognised domain string.
func IsValidDomain(d Domain) bool {
	if d == DomainSys || d == DomainHospital || d == WildcardDomain {
		return true
	}

	s := string(d)
	if len(s) > len(DomainPrefixUser) && s[:len(DomainPrefixUser)] == string(DomainPrefixUser) {
		return reUUID.MatchString(s[len(DomainPrefixUser):])
	}
	return false
}

// ----------------------------
// Casbin tuple helpers
// ----------------------------

type PolicyEffect string

const (
	EffectAllow PolicyEffect = "allow"
	EffectDeny  PolicyEffect = "deny"
)

// PolicySubject is the p.sub in Casbin: either a role (preferred) or a user/service id.
type PolicySubject string

// GroupSubject is the g.sub in Casbin: a concrete principal id (user_id or service_id).
type GroupSubject string

// Grouping rows: g, user_id, role, domain
type GroupingPolicy struct {
	Subject GroupSubject
	Role    Role
	Domain  Domain
}

// Permission rows: p, role, domain, resource, action, eft
type PermissionPolicy struct {
	Subject Role
	Domain  Domain
	Object  Resource
	Action  Action
	Effect  PolicyEffect
}
