package model

type OtpRequestInput struct {
	Code string `json:"code" validate:"required"`
	Type string `json:"type" validate:"required,oneof=TABLE EVENT"`
}

type OtpVerifyInput struct {
	Code string `json:"code" validate:"required"`
	Type string `json:"type" validate:"required,oneof=TABLE EVENT"`
	Otp  string `json:"otp" validate:"required,len=6"`
}
