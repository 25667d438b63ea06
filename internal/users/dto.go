package users

import "github.com/angelmondragon/nutritrack-backend/pkg/db/models"

// UserDTO is the transport shape that omits credentials.
type UserDTO struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	FullName string `json:"fullname"`
}

// SignupRequest is the payload for account creation. The password is
// write-only and never appears in any response shape.
type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=5"`
	Name     string `json:"name" validate:"required"`
}

// UpdateMeRequest merges only the supplied fields into the caller's record.
type UpdateMeRequest struct {
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=5"`
	Name     *string `json:"name"`
	FullName *string `json:"fullname"`
}

// ReplaceMeRequest is the full-update payload; every writable field must be
// present.
type ReplaceMeRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=5"`
	Name     string `json:"name" validate:"required"`
	FullName *string `json:"fullname"`
}

// ToPartial converts a full update into the merge shape used by the service.
func (r ReplaceMeRequest) ToPartial() UpdateMeRequest {
	return UpdateMeRequest{
		Email:    &r.Email,
		Password: &r.Password,
		Name:     &r.Name,
		FullName: r.FullName,
	}
}

func FromModel(u *models.User) *UserDTO {
	if u == nil {
		return nil
	}
	return &UserDTO{
		Email:    u.Email,
		Name:     u.Name,
		FullName: u.FullName,
	}
}
