package request

import (
	"rugboost-api/internal/domain/profile"

	"github.com/jinzhu/copier"
)

type UpdateProfileRequest struct {
	FullName        string `json:"fullName"`
	BusinessName    string `json:"businessName"`
	BusinessAddress string `json:"businessAddress"`
	BusinessPhone   string `json:"businessPhone"`
	BusinessEmail   string `json:"businessEmail"`
}

func (r *UpdateProfileRequest) ToDomain() (profile.Edit, error) {
	var edit profile.Edit
	if err := copier.Copy(&edit, r); err != nil {
		return profile.Edit{}, err
	}
	return edit, nil
}
