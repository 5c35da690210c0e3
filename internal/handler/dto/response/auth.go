package response

type RequestOTPResponse struct {
	Success bool `json:"success"`
}

type VerifyOTPResponse struct {
	Token string `json:"token"`
}
