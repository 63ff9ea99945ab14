package dto

// UpdateUserRequest covers the self-edit path. Role, credits and password
// are deliberately absent; they have dedicated admin paths.
type UpdateUserRequest struct {
	Name             *string `json:"name"`
	Email            *string `json:"email"`
	Bio              *string `json:"bio"`
	ProfileImage     *string `json:"profileImage"`
	ProfileCompleted *bool   `json:"profileCompleted"`
}

// UpdateCreditsRequest sets the balance directly. The pointer keeps
// "credits missing" distinguishable from zero, and decoding rejects
// non-integer values.
type UpdateCreditsRequest struct {
	Credits *int `json:"credits"`
}

// AdminUpdateUserRequest is the privileged edit path. A credits value
// adjusts the balance by delta and records an admin_adjustment transaction.
type AdminUpdateUserRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Role    *string `json:"role"`
	Credits *int    `json:"credits"`
}
