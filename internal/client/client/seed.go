package client

import "github.com/dmitrijs2005/homefinder/internal/client/models"

const (
	OwnerAvatar  = "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?auto=format&fit=crop&w=2340&q=80"
	RenterAvatar = "https://images.unsplash.com/photo-1535713875002-d1d0cf377fde?auto=format&fit=crop&w=2340&q=80"
)

// seedUser returns the demo account for a role. Only the email comes from
// the caller.
func seedUser(email string, userType models.UserType) models.User {
	if userType == models.UserTypeOwner {
		return models.User{
			ID:       "o1",
			Email:    email,
			Name:     "Property Owner",
			Avatar:   OwnerAvatar,
			UserType: models.UserTypeOwner,
			Phone:    "+1 (555) 123-4567",
		}
	}
	return models.User{
		ID:       "r1",
		Email:    email,
		Name:     "Alex Johnson",
		Avatar:   RenterAvatar,
		UserType: models.UserTypeRenter,
		Phone:    "+1 (555) 987-6543",
	}
}

// AvatarFor returns the default avatar assigned to new accounts of a role.
func AvatarFor(userType models.UserType) string {
	if userType == models.UserTypeOwner {
		return OwnerAvatar
	}
	return RenterAvatar
}
