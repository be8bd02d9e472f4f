// internal/core/domain/staff.go
package domain

import (
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
)

// StaffRole is a staff member's role within a canteen
type StaffRole string

// Staff role constants
const (
	RoleOwner   StaffRole = "owner"
	RoleManager StaffRole = "manager"
	RoleChef    StaffRole = "chef"
	RoleCashier StaffRole = "cashier"
)

// StaffRoles lists every role in display order
var StaffRoles = []StaffRole{RoleOwner, RoleManager, RoleChef, RoleCashier}

var rolePermissions = map[StaffRole][]string{
	RoleOwner:   {"All Permissions", "Manage Users", "Manage Settings", "View Reports"},
	RoleManager: {"Manage Menu", "Manage Orders", "View Reports", "Manage Inventory"},
	RoleChef:    {"View Orders", "Update Order Status", "Manage Menu Items"},
	RoleCashier: {"Process Orders", "Handle Payments", "View Menu"},
}

// Valid reports whether r is a known role
func (r StaffRole) Valid() bool {
	_, ok := rolePermissions[r]
	return ok
}

// Permissions returns the capabilities shown for the role
func (r StaffRole) Permissions() []string {
	return append([]string(nil), rolePermissions[r]...)
}

// StaffProfile is a member of a canteen's staff
type StaffProfile struct {
	ID          uuid.UUID `json:"id"`
	CanteenID   uuid.UUID `json:"canteen_id"`
	Email       string    `json:"email"`
	FullName    string    `json:"full_name,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Role        StaffRole `json:"role"`
	Permissions []string  `json:"permissions"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Validate performs domain validation on the profile
func (p *StaffProfile) Validate() error {
	if p.CanteenID == uuid.Nil {
		return invalid("canteen_id is required")
	}
	p.Email = strings.TrimSpace(p.Email)
	if p.Email == "" {
		return invalid("email is required")
	}
	if _, err := mail.ParseAddress(p.Email); err != nil {
		return invalid("email %q is not valid", p.Email)
	}
	if !p.Role.Valid() {
		return invalid("unknown role %q", p.Role)
	}
	return nil
}

// IsActiveOwner reports whether the profile currently holds an active owner seat
func (p *StaffProfile) IsActiveOwner() bool {
	return p.IsActive && p.Role == RoleOwner
}

// StaffUpdate is a partial update; nil fields are left unchanged
type StaffUpdate struct {
	FullName *string
	Phone    *string
	Role     *StaffRole
	IsActive *bool
}

// Empty reports whether the update changes nothing
func (u StaffUpdate) Empty() bool {
	return u.FullName == nil && u.Phone == nil && u.Role == nil && u.IsActive == nil
}

// Apply copies the set fields onto p and stamps updated_at
func (p *StaffProfile) Apply(u StaffUpdate, now time.Time) {
	if u.FullName != nil {
		p.FullName = strings.TrimSpace(*u.FullName)
	}
	if u.Phone != nil {
		p.Phone = strings.TrimSpace(*u.Phone)
	}
	if u.Role != nil {
		p.Role = *u.Role
	}
	if u.IsActive != nil {
		p.IsActive = *u.IsActive
	}
	p.UpdatedAt = now
}
