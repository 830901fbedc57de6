package handlers

// Response status values.
const (
	StatusSuccess  = "success"
	StatusUp       = "UP"
	StatusServerUp = "Server UP"
)

// StatusResponse defines model for StatusResponse.
type StatusResponse struct {
	Status string `json:"status"`
}

// MessageResponse defines model for MessageResponse.
type MessageResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// CreateInstanceResponse defines model for CreateInstanceResponse.
type CreateInstanceResponse struct {
	Status     string `json:"status"`
	Message    string `json:"message"`
	InstanceId string `json:"instanceId"`
	QrCode     string `json:"qrCode,omitempty"`
}

// SendMessageRequest defines model for SendMessageRequest.
type SendMessageRequest struct {
	InstanceId string `json:"instanceId"`
	Number     string `json:"number"`
	Message    string `json:"message"`
}

// DeliveryInfo defines model for the smsRes field of SendMessageResponse.
type DeliveryInfo struct {
	MessageId string `json:"messageId,omitempty"`
	ChatId    string `json:"chatId"`
}

// SendMessageResponse defines model for SendMessageResponse.
type SendMessageResponse struct {
	Status  string       `json:"status"`
	Message string       `json:"message"`
	SmsRes  DeliveryInfo `json:"smsRes"`
}

// DetailsResponse defines model for DetailsResponse.
type DetailsResponse struct {
	Status     string `json:"status"`
	Message    string `json:"message,omitempty"`
	InstanceId string `json:"instanceId"`
	Profile    string `json:"profile,omitempty"`
	State      string `json:"state"`
}

// InstanceSummary defines model for InstanceSummary.
type InstanceSummary struct {
	InstanceId string `json:"instanceId"`
	Profile    string `json:"profile"`
	State      string `json:"state"`
}

// InstancesResponse defines model for InstancesResponse.
type InstancesResponse struct {
	Status    string            `json:"status"`
	Instances []InstanceSummary `json:"instances"`
}

// InstanceStatus defines one element of StatusesResponse.
type InstanceStatus struct {
	InstanceId string `json:"instanceId"`
	State      string `json:"state"`
	Profile    string `json:"profile,omitempty"`
	UpdatedAt  string `json:"updatedAt"`
}

// StatusesResponse defines model for StatusesResponse.
type StatusesResponse struct {
	Status    string           `json:"status"`
	Instances []InstanceStatus `json:"instances"`
}

// EngineEvent defines model for EngineEvent.
type EngineEvent struct {
	Type    string `json:"type"`
	Qr      string `json:"qr,omitempty"`
	Profile string `json:"profile,omitempty"`
	Reason  string `json:"reason,omitempty"`
}
