package dto

// StatusResponse is returned by the health endpoint
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}
