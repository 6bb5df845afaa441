// Package domain defines the authorization domain model: global roles, abstract
// capabilities, sharing grants, resource sensitivity tiers, and access decisions.
package domain

// Role is the closed set of global roles a subject can hold.
// The set is exhaustive; an unknown role is a configuration error, never a
// runtime fallback.
type Role string

const (
	// RoleTopAdmin has unrestricted access across all companies.
	RoleTopAdmin Role = "top-admin"

	// RoleAdmin has full access to company resources and user management.
	RoleAdmin Role = "admin"

	// RoleSupervisor can view any resource in a company.
	RoleSupervisor Role = "supervisor"

	// RoleMember has no role-level resource access; access comes from
	// ownership, grants, or public sensitivity.
	RoleMember Role = "member"

	// RoleAuditor can read audit trails but not resource content.
	RoleAuditor Role = "auditor"
)

// Capability is an abstract permission held by a role.
type Capability string

const (
	// ViewAnyInCompanyCapability allows viewing any resource of any company.
	ViewAnyInCompanyCapability Capability = "view-any-in-company"

	// EditAnyInCompanyCapability allows editing any resource of any company.
	EditAnyInCompanyCapability Capability = "edit-any-in-company"

	// AdminAnyInCompanyCapability allows administering access to any resource.
	AdminAnyInCompanyCapability Capability = "admin-any-in-company"

	// ManageUsersCapability allows managing user accounts.
	ManageUsersCapability Capability = "manage-users"

	// ViewAuditCapability allows reading audit logs.
	ViewAuditCapability Capability = "view-audit"
)

// Action is the operation a subject requests on a resource.
type Action string

const (
	// ActionView reads resource content or metadata.
	ActionView Action = "view"

	// ActionEdit modifies resource content.
	ActionEdit Action = "edit"

	// ActionAdmin manages other subjects' access to the resource.
	ActionAdmin Action = "admin"
)

// PermissionLevel is the ordinal permission carried by a grant: view < edit < admin.
type PermissionLevel string

const (
	LevelView  PermissionLevel = "view"
	LevelEdit  PermissionLevel = "edit"
	LevelAdmin PermissionLevel = "admin"
)

// levelOrder maps permission levels to their ordinal rank.
var levelOrder = map[PermissionLevel]int{
	LevelView:  1,
	LevelEdit:  2,
	LevelAdmin: 3,
}

// Covers reports whether l is ordinally greater than or equal to required.
// Unknown levels never cover anything.
func (l PermissionLevel) Covers(required PermissionLevel) bool {
	lr, ok := levelOrder[l]
	if !ok {
		return false
	}
	rr, ok := levelOrder[required]
	if !ok {
		return false
	}
	return lr >= rr
}

// RequiredLevel returns the minimum grant level that satisfies an action.
func RequiredLevel(action Action) PermissionLevel {
	switch action {
	case ActionEdit:
		return LevelEdit
	case ActionAdmin:
		return LevelAdmin
	default:
		return LevelView
	}
}

// Sensitivity classifies a resource from least to most sensitive.
type Sensitivity string

const (
	SensitivityPublic       Sensitivity = "public"
	SensitivityInternal     Sensitivity = "internal"
	SensitivityConfidential Sensitivity = "confidential"
	SensitivityRestricted   Sensitivity = "restricted"
)

// RequiresAdminGrant reports whether the sensitivity tier raises the grant
// floor to admin level. The highest tiers also disable public widening.
func (s Sensitivity) RequiresAdminGrant() bool {
	return s == SensitivityConfidential || s == SensitivityRestricted
}

// Source identifies which authority produced an allowed decision. Recorded for
// audit purposes; sources are evaluated in precedence order, first success wins.
type Source string

const (
	SourceRole              Source = "role"
	SourceOwnership         Source = "ownership"
	SourceGrant             Source = "grant"
	SourcePublicSensitivity Source = "public-sensitivity"
)
