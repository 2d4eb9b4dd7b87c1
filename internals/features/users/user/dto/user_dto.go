// file: internals/features/users/user/dto/user_dto.go
package dto

/* =========================================================
   REQUEST
   ========================================================= */

// UpdateUserRequest patches the mutable profile fields. Email and status
// are managed by the auth flows, not here.
type UpdateUserRequest struct {
	FirstName          *string `json:"first_name" validate:"omitempty,min=1"`
	LastName           *string `json:"last_name"`
	Phone              *string `json:"phone_number"`
	LanguagePreference *string `json:"language_preference" validate:"omitempty,len=2"`
}

// Changes returns the column set to patch, empty when nothing was sent.
func (r *UpdateUserRequest) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if r.FirstName != nil {
		changes["first_name"] = *r.FirstName
	}
	if r.LastName != nil {
		changes["last_name"] = *r.LastName
	}
	if r.Phone != nil {
		changes["phone_number"] = *r.Phone
	}
	if r.LanguagePreference != nil {
		changes["language_preference"] = *r.LanguagePreference
	}
	return changes
}
