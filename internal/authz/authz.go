// Package authz implements the tenant authorization policy. It is pure:
// callers load whatever rows they need and hand the facts in, this package
// only answers yes/no questions about them.
package authz

import "errors"

var (
	ErrorUnauthenticated = errors.New("unauthenticated")
	ErrorForbidden       = errors.New("forbidden")
)

// Caller identifies an authenticated administrator. A nil *Caller means the
// request is anonymous.
type Caller struct {
	AdminId      int64
	OrgId        int64
	IsSuperAdmin bool
}

// Operation classifies what a request wants to do with a resource.
type Operation int

const (
	// OperationReadPublic is a read that anonymous visitors may perform.
	OperationReadPublic Operation = iota
	// OperationReadTenant is a read restricted to the owning organization.
	OperationReadTenant
	// OperationWriteTenant is a mutation restricted to the owning organization.
	OperationWriteTenant
	// OperationSuperAdminOnly is reserved for platform administrators.
	OperationSuperAdminOnly
)

// Authorize decides whether the caller may perform op on a resource owned by
// ownerOrgId. Resource existence is the caller's concern and must be checked
// before this: a missing resource is a not-found, never a forbidden.
func Authorize(caller *Caller, op Operation, ownerOrgId int64) error {
	switch op {
	case OperationReadPublic:
		return nil
	case OperationReadTenant, OperationWriteTenant:
		if caller == nil {
			return ErrorUnauthenticated
		}
		if caller.IsSuperAdmin {
			return nil
		}
		if caller.OrgId != ownerOrgId {
			return ErrorForbidden
		}
		return nil
	case OperationSuperAdminOnly:
		if caller == nil {
			return ErrorUnauthenticated
		}
		if !caller.IsSuperAdmin {
			return ErrorForbidden
		}
		return nil
	}
	return ErrorForbidden
}

// CanSeeAllStatuses reports whether the caller sees every animal of the
// organization regardless of status. Anonymous visitors and administrators
// from other organizations only see the publicly visible statuses.
func CanSeeAllStatuses(caller *Caller, ownerOrgId int64) bool {
	if caller == nil {
		return false
	}
	if caller.IsSuperAdmin {
		return true
	}
	return caller.OrgId == ownerOrgId
}
