package handlers

import (
	"strings"

	"mysessions/domain"
	"mysessions/service"
)

// sendMessageInput is a validated send-message request.
type sendMessageInput struct {
	InstanceID string
	Target     string
	Body       string
}

// fromSendMessageRequest validates SendMessageRequest.
// Returns service.BadParameterError on validation failure.
func fromSendMessageRequest(req SendMessageRequest) (sendMessageInput, error) {
	if strings.TrimSpace(req.InstanceId) == "" {
		return sendMessageInput{}, service.NewBadParameterError("instanceId is required", nil)
	}
	if strings.TrimSpace(req.Number) == "" {
		return sendMessageInput{}, service.NewBadParameterError("number is required", nil)
	}
	return sendMessageInput{
		InstanceID: req.InstanceId,
		Target:     strings.TrimSpace(req.Number),
		Body:       req.Message,
	}, nil
}

// fromEngineEvent converts EngineEvent to domain.Event.
// Returns service.BadParameterError for an unknown event type or a challenge without payload.
func fromEngineEvent(ev EngineEvent) (domain.Event, error) {
	kind := domain.EventKind(ev.Type)
	switch kind {
	case domain.EventPairingChallenge:
		if ev.Qr == "" {
			return domain.Event{}, service.NewBadParameterError("qr is required for a qr event", nil)
		}
	case domain.EventAuthenticated, domain.EventReady, domain.EventSessionPersisted, domain.EventDisconnected, domain.EventAuthFailure:
	default:
		return domain.Event{}, service.NewBadParameterError("unknown event type "+ev.Type, nil)
	}
	return domain.Event{
		Kind:      kind,
		Challenge: ev.Qr,
		Profile:   ev.Profile,
		Reason:    ev.Reason,
	}, nil
}
