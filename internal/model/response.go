package model

type ErrorResponse struct {
	Error string `json:"error"`
}

type PingResponse struct {
	Message string `json:"message"`
}

type TestEventResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type AlertStatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

type AlertStatusUpdateResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	AlertID int64  `json:"alert_id"`
}
