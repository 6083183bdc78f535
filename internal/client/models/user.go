// Package models defines client-side data models used by the homefinder CLI.
package models

// UserType is the role a user signed up with. It is fixed at creation and
// decides which screen group the client mounts.
type UserType string

const (
	UserTypeRenter UserType = "renter"
	UserTypeOwner  UserType = "owner"
)

// Valid reports whether t is one of the known roles.
func (t UserType) Valid() bool {
	return t == UserTypeRenter || t == UserTypeOwner
}

// Ptr returns a pointer to a copy of t.
func (t UserType) Ptr() *UserType {
	return &t
}

// User is the profile of the logged-in account.
type User struct {
	ID       string   `json:"id"`
	Email    string   `json:"email"`
	Name     string   `json:"name"`
	Avatar   string   `json:"avatar,omitempty"`
	UserType UserType `json:"userType"`
	Phone    string   `json:"phone,omitempty"`
}

// Clone returns a copy of u. A nil receiver yields nil.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}

// UserPatch carries a partial profile update. Nil fields keep their current
// value. ID and UserType are not patchable.
type UserPatch struct {
	Name   *string
	Email  *string
	Avatar *string
	Phone  *string
}

// IsEmpty reports whether the patch changes nothing.
func (p UserPatch) IsEmpty() bool {
	return p.Name == nil && p.Email == nil && p.Avatar == nil && p.Phone == nil
}

// Apply returns a copy of u with the patch merged in.
func (p UserPatch) Apply(u User) User {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Avatar != nil {
		u.Avatar = *p.Avatar
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	return u
}
