package scenario

import (
	"context"
	"fmt"
	"time"

	"mysessions/domain"
	"mysessions/handlers"
	"mysessions/service"
)

const scenarioPairingWorkflow = "pairing_workflow"

func init() {
	Register(scenarioPairingWorkflow, runPairingWorkflow)
}

func runPairingWorkflow(ctx context.Context, cfg *Config) error {
	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	client := NewClient(cfg)

	// 1. Create and pair
	id, err := createReady(ctx, client, testProfile)
	if err != nil {
		return err
	}
	defer client.TerminateInstance(context.Background(), id)

	// 2. The credential archive was persisted during pairing
	exists, err := client.SessionExists(ctx, id)
	if err != nil || !exists {
		return fmt.Errorf("session after pairing: exists=%v err=%v", exists, err)
	}

	// 3. Send a message and check the engine received it
	body := "hello from " + id
	sent, err := client.SendMessage(ctx, id, testNumber, body)
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	wantChat := service.ChatID(testNumber)
	if sent.Status != handlers.StatusSuccess || sent.SmsRes.ChatId != wantChat || sent.SmsRes.MessageId == "" {
		return fmt.Errorf("send message: unexpected response %+v", sent)
	}
	msgs, err := client.EngineMessages(ctx, id)
	if err != nil {
		return fmt.Errorf("engine messages: %w", err)
	}
	if len(msgs) != 1 || msgs[0].Body != body || msgs[0].ChatID != wantChat {
		return fmt.Errorf("engine messages: got %+v", msgs)
	}

	// 4. A dropped connection is recovered through the reconnect policy
	if err := client.Disconnect(ctx, id); err != nil {
		return fmt.Errorf("disconnect: %w", err)
	}
	if _, err := waitForState(ctx, client, id, domain.StateReady); err != nil {
		return fmt.Errorf("reconnect: %w", err)
	}

	// 5. Manual restart keeps the id and comes back ready from the stored session
	if err := client.RestartInstance(ctx, id); err != nil {
		return fmt.Errorf("restart: %w", err)
	}
	if _, err := waitForState(ctx, client, id, domain.StateReady); err != nil {
		return fmt.Errorf("restart: %w", err)
	}

	return client.TerminateInstance(ctx, id)
}
