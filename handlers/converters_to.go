package handlers

import (
	"fmt"
	"time"

	"mysessions/domain"
	"mysessions/service"
)

func toCreateInstanceResponse(info domain.InstanceInfo) CreateInstanceResponse {
	return CreateInstanceResponse{
		Status:     StatusSuccess,
		Message:    "Instance created successfully.",
		InstanceId: info.InstanceID,
		QrCode:     info.PairingArtifact,
	}
}

func toSendMessageResponse(in sendMessageInput, res domain.DeliveryResult) SendMessageResponse {
	return SendMessageResponse{
		Status:  StatusSuccess,
		Message: fmt.Sprintf("Message sent successfully to %s from instance %s.", in.Target, in.InstanceID),
		SmsRes:  DeliveryInfo{MessageId: res.MessageID, ChatId: res.ChatID},
	}
}

func toDetailsResponse(info domain.InstanceInfo) DetailsResponse {
	resp := DetailsResponse{
		Status:     StatusSuccess,
		InstanceId: info.InstanceID,
		Profile:    info.Profile,
		State:      string(info.State),
	}
	if info.Profile == "" {
		resp.Message = service.ProfileNotYetAvailable
	}
	return resp
}

func toInstancesResponse(infos []domain.InstanceInfo) InstancesResponse {
	out := make([]InstanceSummary, 0, len(infos))
	for _, info := range infos {
		profile := info.Profile
		if profile == "" {
			profile = service.ProfileNotLoggedIn
		}
		out = append(out, InstanceSummary{
			InstanceId: info.InstanceID,
			Profile:    profile,
			State:      string(info.State),
		})
	}
	return InstancesResponse{Status: StatusSuccess, Instances: out}
}

func toStatusesResponse(infos []domain.InstanceInfo) StatusesResponse {
	out := make([]InstanceStatus, 0, len(infos))
	for _, info := range infos {
		out = append(out, InstanceStatus{
			InstanceId: info.InstanceID,
			State:      string(info.State),
			Profile:    info.Profile,
			UpdatedAt:  info.UpdatedAt.UTC().Format(time.RFC3339),
		})
	}
	return StatusesResponse{Status: StatusSuccess, Instances: out}
}

func toMessageResponse(format string, args ...any) MessageResponse {
	return MessageResponse{Status: StatusSuccess, Message: fmt.Sprintf(format, args...)}
}
