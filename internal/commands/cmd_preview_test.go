package commands

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/chime/internal/core/notify"
)

func TestNotificationInput_toNotification(t *testing.T) {
	tests := []struct {
		name    string
		input   notificationInput
		want    notify.Notification
		wantErr string
	}{
		{
			name:  "full input",
			input: notificationInput{Kind: "error", Title: "Deploy", Message: "rollout failed", DurationMS: 9000},
			want: notify.Notification{
				Kind:     notify.KindError,
				Title:    "Deploy",
				Message:  "rollout failed",
				Duration: 9 * time.Second,
			},
		},
		{
			name:  "kind defaults to info",
			input: notificationInput{Message: "hello"},
			want:  notify.Notification{Kind: notify.KindInfo, Message: "hello"},
		},
		{
			name:    "unknown kind",
			input:   notificationInput{Kind: "shout", Message: "hello"},
			wantErr: "unknown kind",
		},
		{
			name:    "missing message",
			input:   notificationInput{Kind: "info"},
			wantErr: "message is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.input.toNotification()

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
