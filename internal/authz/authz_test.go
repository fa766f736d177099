package authz

import (
	"errors"
	"testing"
)

func TestAuthorize(t *testing.T) {
	tenantAdmin := &Caller{AdminId: 1, OrgId: 10}
	otherAdmin := &Caller{AdminId: 2, OrgId: 20}
	superAdmin := &Caller{AdminId: 3, OrgId: 30, IsSuperAdmin: true}

	tests := []struct {
		name       string
		caller     *Caller
		op         Operation
		ownerOrgId int64
		expected   error
	}{
		{"anonymous can read public", nil, OperationReadPublic, 10, nil},
		{"anonymous cannot read tenant", nil, OperationReadTenant, 10, ErrorUnauthenticated},
		{"anonymous cannot write tenant", nil, OperationWriteTenant, 10, ErrorUnauthenticated},
		{"anonymous cannot use super admin ops", nil, OperationSuperAdminOnly, 0, ErrorUnauthenticated},
		{"owner can read own tenant", tenantAdmin, OperationReadTenant, 10, nil},
		{"owner can write own tenant", tenantAdmin, OperationWriteTenant, 10, nil},
		{"other org cannot read tenant", otherAdmin, OperationReadTenant, 10, ErrorForbidden},
		{"other org cannot write tenant", otherAdmin, OperationWriteTenant, 10, ErrorForbidden},
		{"regular admin cannot use super admin ops", tenantAdmin, OperationSuperAdminOnly, 0, ErrorForbidden},
		{"super admin can read any tenant", superAdmin, OperationReadTenant, 10, nil},
		{"super admin can write any tenant", superAdmin, OperationWriteTenant, 10, nil},
		{"super admin can use super admin ops", superAdmin, OperationSuperAdminOnly, 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.caller, tt.op, tt.ownerOrgId)
			if !errors.Is(err, tt.expected) {
				t.Errorf("expected error[%v] but got error[%v]", tt.expected, err)
			}
		})
	}
}

func TestCanSeeAllStatuses(t *testing.T) {
	tests := []struct {
		name       string
		caller     *Caller
		ownerOrgId int64
		expected   bool
	}{
		{"anonymous sees public statuses only", nil, 10, false},
		{"owner sees every status", &Caller{AdminId: 1, OrgId: 10}, 10, true},
		{"other org sees public statuses only", &Caller{AdminId: 2, OrgId: 20}, 10, false},
		{"super admin sees every status", &Caller{AdminId: 3, OrgId: 30, IsSuperAdmin: true}, 10, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanSeeAllStatuses(tt.caller, tt.ownerOrgId); got != tt.expected {
				t.Errorf("expected[%v] but got[%v]", tt.expected, got)
			}
		})
	}
}
