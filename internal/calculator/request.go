package calculator

import (
	"github.com/go-playground/validator/v10"
)

// Request is the raw query of a calculator call.
type Request struct {
	Devices         string `query:"devices"         form:"devices"         validate:"max=16"`
	Hours           string `query:"hours"           form:"hours"           validate:"max=16"`
	Referrals       string `query:"referrals"       form:"referrals"       validate:"max=16"`
	ReferralDevices string `query:"referralDevices" form:"referralDevices" validate:"max=16"`
	App             string `query:"app"             form:"app"             validate:"omitempty,max=64,excludesall=/.?#"`
}

var validate = validator.New()

// Validate rejects oversized fields. Field contents are not checked since
// unparsable values fall back to defaults.
func (r Request) Validate() error {
	return validate.Struct(r)
}

// Input parses the request with def as fallback values.
func (r Request) Input(def Input) Input {
	return ParseInput(r.Devices, r.Hours, r.Referrals, r.ReferralDevices, def)
}
