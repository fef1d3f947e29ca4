package request

type RegisterDeviceRequest struct {
	Token    string `json:"token" binding:"required,max=4096"`
	Platform string `json:"platform" binding:"max=20"`
}
