package domain

// CapabilitySet is the set of abstract capabilities held by a role.
type CapabilitySet map[Capability]struct{}

// Has reports whether the set contains the capability.
func (s CapabilitySet) Has(capability Capability) bool {
	_, ok := s[capability]
	return ok
}

// roleCapabilities is the static, total mapping from global role to capability
// set. Every Role value must appear here; RoleMember holds an empty set on
// purpose (access comes from ownership, grants, or public sensitivity).
var roleCapabilities = map[Role]CapabilitySet{
	RoleTopAdmin: {
		ViewAnyInCompanyCapability:  {},
		EditAnyInCompanyCapability:  {},
		AdminAnyInCompanyCapability: {},
		ManageUsersCapability:       {},
		ViewAuditCapability:         {},
	},
	RoleAdmin: {
		ViewAnyInCompanyCapability:  {},
		EditAnyInCompanyCapability:  {},
		AdminAnyInCompanyCapability: {},
		ManageUsersCapability:       {},
	},
	RoleSupervisor: {
		ViewAnyInCompanyCapability: {},
	},
	RoleMember: {},
	RoleAuditor: {
		ViewAuditCapability: {},
	},
}

// AllRoles lists every role in the closed enumeration.
var AllRoles = []Role{RoleTopAdmin, RoleAdmin, RoleSupervisor, RoleMember, RoleAuditor}

// RoleCapabilities returns the capability set for a role. Returns
// ErrUnknownRole for a role outside the closed enumeration; callers must treat
// that as a configuration error, not a denial.
func RoleCapabilities(role Role) (CapabilitySet, error) {
	caps, ok := roleCapabilities[role]
	if !ok {
		return nil, ErrUnknownRole
	}
	return caps, nil
}

// ValidateRoleTable verifies the capability table is total over AllRoles.
// Called at startup; a failure here is fatal.
func ValidateRoleTable() error {
	for _, role := range AllRoles {
		if _, err := RoleCapabilities(role); err != nil {
			return err
		}
	}
	return nil
}

// Subsumes reports whether the capability set contains an abstract permission
// covering the requested action on any company resource.
func (s CapabilitySet) Subsumes(action Action) bool {
	switch action {
	case ActionView:
		return s.Has(ViewAnyInCompanyCapability) ||
			s.Has(EditAnyInCompanyCapability) ||
			s.Has(AdminAnyInCompanyCapability)
	case ActionEdit:
		return s.Has(EditAnyInCompanyCapability) || s.Has(AdminAnyInCompanyCapability)
	case ActionAdmin:
		return s.Has(AdminAnyInCompanyCapability)
	default:
		return false
	}
}
