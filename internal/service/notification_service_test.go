package service

import (
	"context"
	"testing"

	"github.com/Tiri0n/abkhazia-tax-service/internal/model"
	"github.com/Tiri0n/abkhazia-tax-service/internal/repository"

	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	pushes []int64
}

func (n *recordingNotifier) Push(userID int64, payload interface{}) {
	n.pushes = append(n.pushes, userID)
}

func TestNotificationService_CreatePushes(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := repository.NewMemoryStore()
	notifier := &recordingNotifier{}
	svc := NewNotificationService(store.Notifications(), notifier)

	notification, err := svc.Create(ctx, 7, CreateNotificationRequest{
		Title:   "Payment received",
		Message: "Your payment was recorded.",
		Type:    model.NotificationPayment,
	})
	require.NoError(t, err)
	require.Equal(t, int64(7), notification.UserID)
	require.Equal(t, []int64{7}, notifier.pushes)
}

func TestNotificationService_NilNotifier(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := repository.NewMemoryStore()
	svc := NewNotificationService(store.Notifications(), nil)

	_, err := svc.Create(ctx, 1, CreateNotificationRequest{Title: "t", Message: "m", Type: model.NotificationDeadline})
	require.NoError(t, err)
}

func TestNotificationService_MarkReadOwnership(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := repository.NewMemoryStore()
	svc := NewNotificationService(store.Notifications(), nil)

	notification, err := svc.Create(ctx, 1, CreateNotificationRequest{Title: "t", Message: "m", Type: model.NotificationDeadline})
	require.NoError(t, err)

	// another user's notification reads as not found
	_, err = svc.MarkRead(ctx, 2, notification.ID)
	require.ErrorIs(t, err, repository.ErrNotFound)

	read, err := svc.MarkRead(ctx, 1, notification.ID)
	require.NoError(t, err)
	require.True(t, read.Read)

	again, err := svc.MarkRead(ctx, 1, notification.ID)
	require.NoError(t, err)
	require.True(t, again.Read)
}
