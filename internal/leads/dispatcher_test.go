package leads

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malamapl09/plexo-marketing/pkg/logger"
)

func TestDispatcher_DeliversQueuedBeforeStart(t *testing.T) {
	notifier := &fakeNotifier{}
	d := NewDispatcher(notifier, logger.Discard())

	assert.True(t, d.Enqueue(Notification{Template: "roi_lead"}))
	assert.True(t, d.Enqueue(Notification{Template: "demo_request"}))

	d.Start()
	d.Start()
	require.NoError(t, d.Stop(context.Background()))
	require.NoError(t, d.Stop(context.Background()))

	sent := notifier.notifications()
	require.Len(t, sent, 2)
	assert.Equal(t, "roi_lead", sent[0].Template)
	assert.Equal(t, "demo_request", sent[1].Template)
}

func TestDispatcher_DropsWhenFull(t *testing.T) {
	d := NewDispatcher(&fakeNotifier{}, logger.Discard())
	dropped := LeadNotifications.WithLabelValues(NotificationDropped)
	before := testutil.ToFloat64(dropped)

	for i := 0; i < dispatchQueueSize; i++ {
		require.True(t, d.Enqueue(Notification{Template: "roi_lead"}))
	}

	assert.False(t, d.Enqueue(Notification{Template: "roi_lead"}))
	assert.Equal(t, before+1, testutil.ToFloat64(dropped))
}

func TestDispatcher_CountsFailures(t *testing.T) {
	d := NewDispatcher(&fakeNotifier{err: errors.New("mailgun down")}, logger.Discard())
	failed := LeadNotifications.WithLabelValues(NotificationFailed)
	before := testutil.ToFloat64(failed)

	d.Start()
	d.Enqueue(Notification{Template: "demo_request"})
	require.NoError(t, d.Stop(context.Background()))

	assert.Equal(t, before+1, testutil.ToFloat64(failed))
}

func TestDispatcher_StopHonorsContext(t *testing.T) {
	notifier := &fakeNotifier{block: make(chan struct{})}
	d := NewDispatcher(notifier, logger.Discard())
	d.Start()
	d.Enqueue(Notification{Template: "roi_lead"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, d.Stop(ctx))

	close(notifier.block)
}
