package models

import "fmt"

type PrincipalKind uint8

const (
	PrincipalAnonymous PrincipalKind = iota
	PrincipalVendor
	PrincipalAdmin
)

// Principal: кто стоит за сессией. Ровно один вариант:
// Anonymous, Vendor(id) или Admin. VendorID имеет смысл только для PrincipalVendor.
type Principal struct {
	Kind     PrincipalKind `json:"kind"`
	VendorID int           `json:"vendor_id,omitempty"`
}

func Anonymous() Principal { return Principal{Kind: PrincipalAnonymous} }

func VendorPrincipal(id int) Principal { return Principal{Kind: PrincipalVendor, VendorID: id} }

func AdminPrincipal() Principal { return Principal{Kind: PrincipalAdmin} }

func (p Principal) IsAnonymous() bool { return p.Kind == PrincipalAnonymous }

func (p Principal) IsAdmin() bool { return p.Kind == PrincipalAdmin }

// Vendor возвращает id продавца, если сессия принадлежит продавцу.
func (p Principal) Vendor() (int, bool) {
	if p.Kind != PrincipalVendor || p.VendorID <= 0 {
		return 0, false
	}
	return p.VendorID, true
}

func (p Principal) String() string {
	switch p.Kind {
	case PrincipalVendor:
		return fmt.Sprintf("vendor:%d", p.VendorID)
	case PrincipalAdmin:
		return "admin"
	default:
		return "anonymous"
	}
}
