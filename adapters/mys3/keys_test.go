package mys3

import (
	"testing"

	"mysessions/service"

	"github.com/stretchr/testify/assert"
)

func TestStorageKey(t *testing.T) {
	assert.Equal(t, "whatsapp-sessions/a1b2c3d4/RemoteAuth-a1b2c3d4.zip", StorageKey("", "a1b2c3d4"))
	assert.Equal(t, "prod/whatsapp-sessions/a1b2c3d4/RemoteAuth-a1b2c3d4.zip", StorageKey("prod", "a1b2c3d4"))
	assert.Equal(t, "prod/eu/whatsapp-sessions/x/RemoteAuth-x.zip", StorageKey("/prod/eu/", "x"))
	assert.Equal(t, "whatsapp-sessions/", ListPrefix(""))
}

func TestExtractInstanceID(t *testing.T) {
	tests := []struct {
		name   string
		root   string
		key    string
		wantID string
		wantOK bool
	}{
		{"session key", "", "whatsapp-sessions/a1b2c3d4/RemoteAuth-a1b2c3d4.zip", "a1b2c3d4", true},
		{"with root", "prod", "prod/whatsapp-sessions/e5f6a7b8/RemoteAuth-e5f6a7b8.zip", "e5f6a7b8", true},
		{"id containing the marker", "", "whatsapp-sessions/RemoteAuth-x/RemoteAuth-RemoteAuth-x.zip", "RemoteAuth-x", true},
		{"id ending in .zip", "", "whatsapp-sessions/a.zip/RemoteAuth-a.zip.zip", "a.zip", true},
		{"other root", "prod", "whatsapp-sessions/a1b2c3d4/RemoteAuth-a1b2c3d4.zip", "", false},
		{"directory marker", "", "whatsapp-sessions/a1b2c3d4/", "", false},
		{"mismatching ids", "", "whatsapp-sessions/a1b2c3d4/RemoteAuth-ffffffff.zip", "", false},
		{"foreign file", "", "whatsapp-sessions/a1b2c3d4/notes.txt", "", false},
		{"missing suffix", "", "whatsapp-sessions/a1b2c3d4/RemoteAuth-a1b2c3d4", "", false},
		{"nested", "", "whatsapp-sessions/a1b2c3d4/x/RemoteAuth-a1b2c3d4.zip", "", false},
		{"flat file", "", "whatsapp-sessions/RemoteAuth-a1b2c3d4.zip", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := ExtractInstanceID(tt.root, tt.key)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestExtractInstanceID_RoundTrip(t *testing.T) {
	ids := []string{"a1b2c3d4", "00000000", "ffffffff", "x", "RemoteAuth-", "zip", "a-b_c", "instance.zip"}
	for i := 0; i < 50; i++ {
		id, err := service.NewInstanceID()
		if err != nil {
			t.Fatal(err)
		}
		ids = append(ids, id)
	}
	for _, root := range []string{"", "prod", "a/b"} {
		for _, id := range ids {
			got, ok := ExtractInstanceID(root, StorageKey(root, id))
			assert.True(t, ok, "root=%q id=%q", root, id)
			assert.Equal(t, id, got, "root=%q", root)
		}
	}
}
