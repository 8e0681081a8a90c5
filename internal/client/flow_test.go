//go:build unit

package client_test

import (
	"context"
	"testing"

	"stash-backend/internal/client"
	"stash-backend/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadFlow(t *testing.T) {
	goodInput := commands.UploadInput{
		FileName:    "dinner.jpg",
		ContentType: "image/jpeg",
		Size:        512 * 1024,
	}

	t.Run("happy path walks every phase in order", func(t *testing.T) {
		session := client.NewSession("user_42", newServices(t))

		var seen []client.FlowState
		flow := client.NewUploadFlow(session, func(state client.FlowState) {
			seen = append(seen, state)
		})

		result := flow.Run(context.Background(), goodInput)
		require.True(t, result.Success)
		require.NotNil(t, result.Data.Receipt)
		require.NotNil(t, result.Data.Anomaly)

		assert.Equal(t, []client.FlowState{
			client.FlowIdle,
			client.FlowUploading,
			client.FlowProcessing,
			client.FlowAnalyzing,
			client.FlowComplete,
		}, seen)
		assert.Equal(t, client.FlowComplete, flow.State())
	})

	t.Run("a rejected file lands in the error state", func(t *testing.T) {
		session := client.NewSession("user_42", newServices(t))
		flow := client.NewUploadFlow(session, nil)

		result := flow.Run(context.Background(), commands.UploadInput{
			FileName:    "doc.pdf",
			ContentType: "application/pdf",
			Size:        1024,
		})

		assert.False(t, result.Success)
		assert.Equal(t, "INVALID_FILE_TYPE", result.Error.Code)
		assert.Equal(t, client.FlowError, flow.State())
	})

	t.Run("missing identity fails before uploading", func(t *testing.T) {
		session := client.NewSession("", newServices(t))

		var seen []client.FlowState
		flow := client.NewUploadFlow(session, func(state client.FlowState) {
			seen = append(seen, state)
		})

		result := flow.Run(context.Background(), goodInput)
		assert.False(t, result.Success)
		assert.Equal(t, "NOT_AUTHENTICATED", result.Error.Code)
		assert.Equal(t, []client.FlowState{client.FlowIdle, client.FlowError}, seen)
	})

	t.Run("running again resets a terminal flow", func(t *testing.T) {
		session := client.NewSession("user_42", newServices(t))
		flow := client.NewUploadFlow(session, nil)

		first := flow.Run(context.Background(), goodInput)
		require.True(t, first.Success)
		assert.Equal(t, client.FlowComplete, flow.State())

		second := flow.Run(context.Background(), goodInput)
		require.True(t, second.Success)
		assert.Equal(t, client.FlowComplete, flow.State())
	})
}
