package scenario

import (
	"bytes"
	"context"
	"fmt"
	"time"
)

const scenarioSessionBlobRoundtrip = "session_blob_roundtrip"

func init() {
	Register(scenarioSessionBlobRoundtrip, runSessionBlobRoundtrip)
}

func runSessionBlobRoundtrip(ctx context.Context, cfg *Config) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	client := NewClient(cfg)
	id := "blob" + time.Now().Format("150405")
	blob := append([]byte("PK\x03\x04"), bytes.Repeat([]byte{0x00, 0xff, 0x10}, 4096)...)

	exists, err := client.SessionExists(ctx, id)
	if err != nil {
		return fmt.Errorf("exists before save: %w", err)
	}
	if exists {
		return fmt.Errorf("exists before save: session %s already stored", id)
	}

	if err := client.SaveSession(ctx, id, blob); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	exists, err = client.SessionExists(ctx, id)
	if err != nil || !exists {
		return fmt.Errorf("exists after save: exists=%v err=%v", exists, err)
	}

	got, err := client.LoadSession(ctx, id)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	if !bytes.Equal(got, blob) {
		return fmt.Errorf("load: got %d bytes, want the %d bytes saved", len(got), len(blob))
	}

	if err := client.DeleteSession(ctx, id); err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	exists, err = client.SessionExists(ctx, id)
	if err != nil {
		return fmt.Errorf("exists after delete: %w", err)
	}
	if exists {
		return fmt.Errorf("exists after delete: session %s still stored", id)
	}
	return nil
}
