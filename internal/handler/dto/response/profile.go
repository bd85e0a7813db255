package response

import (
	"rugboost-api/internal/domain/profile"

	"github.com/jinzhu/copier"
)

type ProfileResponse struct {
	UserID          string  `json:"userId" copier:"-"`
	FullName        *string `json:"fullName"`
	BusinessName    *string `json:"businessName"`
	BusinessAddress *string `json:"businessAddress"`
	BusinessPhone   *string `json:"businessPhone"`
	BusinessEmail   *string `json:"businessEmail"`
	LogoURL         *string `json:"logoUrl"`
}

func FromProfile(p *profile.Profile) (*ProfileResponse, error) {
	res := &ProfileResponse{}
	if err := copier.CopyWithOption(res, p, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	res.UserID = p.UserID.String()
	return res, nil
}
