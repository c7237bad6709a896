package authorize

import (
	"context"
	"log/slog"
)

// SeedDefaultPolicies sets up the baseline RBAC policies for the system.
func SeedDefaultPolicies(ctx context.Context, auth IAuthorization) error {
	logger := slog.Default()

	// System-level policies (domain: sys)
	sysPolicies := []PermissionPolicy{
		// SuperAdmin: god mode
		{RoleSysSuperAdmin, DomainSys, WildcardResource, WildcardAction, EffectAllow},
	}

	// Hospital policies (domain: hospital)
	hospitalPolicies := []PermissionPolicy{
		// Admin: runs the hospital directory and oversees scheduling
		{RoleHospitalAdmin, DomainHospital, ResourceUser, ActionManage, EffectAllow},
		{RoleHospitalAdmin, DomainHospital, ResourceDoctor, ActionManage, EffectAllow},
		{RoleHospitalAdmin, DomainHospital, ResourceDoctor, ActionApprove, EffectAllow},
		{RoleHospitalAdmin, DomainHospital, ResourceDoctor, ActionBlock, EffectAllow},
		{RoleHospitalAdmin, DomainHospital, ResourcePatient, ActionRead, EffectAllow},
		{RoleHospitalAdmin, DomainHospital, ResourcePatient, ActionList, EffectAllow},
		{RoleHospitalAdmin, DomainHospital, ResourceDepartment, ActionManage, EffectAllow},
		{RoleHospitalAdmin, DomainHospital, ResourceAppointment, ActionRead, EffectAllow},
		{RoleHospitalAdmin, DomainHospital, ResourceAppointment, ActionList, EffectAllow},
		{RoleHospitalAdmin, DomainHospital, ResourceAppointment, ActionCancel, EffectAllow},
		{RoleHospitalAdmin, DomainHospital, ResourceAppointment, ActionReschedule, EffectAllow},
		{RoleHospitalAdmin, DomainHospital, ResourceAudit, ActionRead, EffectAllow},
		{RoleHospitalAdmin, DomainHospital, ResourceRBAC, ActionGrant, EffectAllow},
		{RoleHospitalAdmin, DomainHospital, ResourceRBAC, ActionRevoke, EffectAllow},

		// Doctor: owns a calendar, works appointments, records treatments
		{RoleHospitalDoctor, DomainHospital, ResourceAvailability, ActionManage, EffectAllow},
		{RoleHospitalDoctor, DomainHospital, ResourceAppointment, ActionRead, EffectAllow},
		{RoleHospitalDoctor, DomainHospital, ResourceAppointment, ActionList, EffectAllow},
		{RoleHospitalDoctor, DomainHospital, ResourceAppointment, ActionCancel, EffectAllow},
		{RoleHospitalDoctor, DomainHospital, ResourceAppointment, ActionReschedule, EffectAllow},
		{RoleHospitalDoctor, DomainHospital, ResourceAppointment, ActionComplete, EffectAllow},
		{RoleHospitalDoctor, DomainHospital, ResourceTreatment, ActionCreate, EffectAllow},
		{RoleHospitalDoctor, DomainHospital, ResourceTreatment, ActionRead, EffectAllow},
		{RoleHospitalDoctor, DomainHospital, ResourceTreatment, ActionList, EffectAllow},
		{RoleHospitalDoctor, DomainHospital, ResourcePatient, ActionRead, EffectAllow},
		{RoleHospitalDoctor, DomainHospital, ResourcePatient, ActionList, EffectAllow},
		{RoleHospitalDoctor, DomainHospital, ResourceNotification, ActionManage, EffectAllow},

		// Patient: books and follows their own care
		{RoleHospitalPatient, DomainHospital, ResourceDoctor, ActionRead, EffectAllow},
		{RoleHospitalPatient, DomainHospital, ResourceDoctor, ActionList, EffectAllow},
		{RoleHospitalPatient, DomainHospital, ResourceDepartment, ActionRead, EffectAllow},
		{RoleHospitalPatient, DomainHospital, ResourceDepartment, ActionList, EffectAllow},
		{RoleHospitalPatient, DomainHospital, ResourceAvailability, ActionRead, EffectAllow},
		{RoleHospitalPatient, DomainHospital, ResourceAppointment, ActionBook, EffectAllow},
		{RoleHospitalPatient, DomainHospital, ResourceAppointment, ActionCancel, EffectAllow},
		{RoleHospitalPatient, DomainHospital, ResourceAppointment, ActionReschedule, EffectAllow},
		{RoleHospitalPatient, DomainHospital, ResourceAppointment, ActionRead, EffectAllow},
		{RoleHospitalPatient, DomainHospital, ResourceAppointment, ActionList, EffectAllow},
		{RoleHospitalPatient, DomainHospital, ResourceTreatment, ActionRead, EffectAllow},
		{RoleHospitalPatient, DomainHospital, ResourceTreatment, ActionList, EffectAllow},
		{RoleHospitalPatient, DomainHospital, ResourceNotification, ActionManage, EffectAllow},
	}

	// User-level policies (domain: user:*)
	userPolicies := []PermissionPolicy{
		// UserSelf: full control over own account resources
		{RoleUserSelf, WildcardDomain, ResourceAuthSession, ActionManage, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceUser, ActionRead, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceUser, ActionUpdate, EffectAllow},
	}

	allPolicies := append(append(sysPolicies, hospitalPolicies...), userPolicies...)

	for _, p := range allPolicies {
		added, err := auth.AddPermission(ctx, p.Subject, p.Domain, p.Object, p.Action, p.Effect)
		if err != nil {
			logger.Error("failed to add policy", "policy", p, "error", err)
			return err
		}
		if added {
			logger.Debug("added policy", "role", p.Subject, "domain", p.Domain, "resource", p.Object, "action", p.Action)
		}
	}

	logger.Info("seeded default RBAC policies", "count", len(allPolicies))
	return nil
}

// AssignUserSelfRole assigns the user:self role in the user's private domain.
// Call this when creating a new user.
func AssignUserSelfRole(ctx context.Context, auth IAuthorization, userID string) error {
	domain := UserDomain(userID)
	subject := GroupSubject(userID)

	_, err := auth.AddRoleForUserInDomain(ctx, subject, RoleUserSelf, domain)
	return err
}

// AssignHospitalRole assigns a hospital role to a user from its stored role
// string. Call this when creating a user or changing their role.
func AssignHospitalRole(ctx context.Context, auth IAuthorization, userID, userRole string) error {
	role, ok := UserRoleToRBACRole[userRole]
	if !ok {
		return ErrInvalidArgs
	}

	subject := GroupSubject(userID)
	_, err := auth.AddRoleForUserInDomain(ctx, subject, role, DomainHospital)
	return err
}

// RemoveHospitalRole removes a hospital role from a user.
func RemoveHospitalRole(ctx context.Context, auth IAuthorization, userID, userRole string) error {
	role, ok := UserRoleToRBACRole[userRole]
	if !ok {
		return ErrInvalidArgs
	}

	subject := GroupSubject(userID)
	_, err := auth.RemoveRoleForUserInDomain(ctx, subject, role, DomainHospital)
	return err
}

// GetHospitalRoles returns all hospital roles a user has.
func GetHospitalRoles(ctx context.Context, auth IAuthorization, userID string) ([]Role, error) {
	subject := GroupSubject(userID)
	return auth.GetRolesForUserInDomain(ctx, subject, DomainHospital)
}

// AssignSuperAdminRole grants the platform superadmin role.
// Note: assign this manually and carefully.
func AssignSuperAdminRole(ctx context.Context, auth IAuthorization, userID string) error {
	subject := GroupSubject(userID)
	_, err := auth.AddRoleForUserInDomain(ctx, subject, RoleSysSuperAdmin, DomainSys)
	return err
}
