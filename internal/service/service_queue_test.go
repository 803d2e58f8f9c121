package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-waitroom/internal/logger"
	"github.com/MKhiriev/go-waitroom/internal/metrics"
	"github.com/MKhiriev/go-waitroom/internal/mock"
	"github.com/MKhiriev/go-waitroom/internal/store"
	"github.com/MKhiriev/go-waitroom/models"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func demoActivity() models.Activity {
	return models.Activity{
		ID:             "demo",
		Name:           "Demo",
		Status:         models.ActivityActive,
		ReleaseRate:    2,
		PollIntervalMs: 5000,
	}
}

type queueHarness struct {
	activities *mock.MockActivityRepository
	entries    *mock.MockQueueEntryRepository
	seq        *sequencer
	metrics    *metrics.Metrics
	svc        *queueService
}

func newQueueHarness(t *testing.T, seed int64) *queueHarness {
	ctrl := gomock.NewController(t)
	h := &queueHarness{
		activities: mock.NewMockActivityRepository(ctrl),
		entries:    mock.NewMockQueueEntryRepository(ctrl),
		metrics:    metrics.New(),
	}
	h.seq = newSequencer(func(context.Context, string) (int64, error) { return seed, nil })
	h.svc = NewQueueService(h.activities, h.entries, h.seq, h.metrics, logger.Nop()).(*queueService)
	h.svc.now = func() time.Time { return fixedNow }
	return h
}

// ─────────────────────────────────────────────
// Enter
// ─────────────────────────────────────────────

func TestQueueService_Enter_NewSession(t *testing.T) {
	h := newQueueHarness(t, 4)
	ctx := context.Background()
	sessionID := SessionID("alice", "demo")

	h.activities.EXPECT().GetActivity(ctx, "demo").Return(demoActivity(), nil)
	h.entries.EXPECT().FindEntryBySession(ctx, "demo", sessionID).Return(models.QueueEntry{}, store.ErrEntryNotFound)
	h.entries.EXPECT().SaveEntry(ctx, models.QueueEntry{
		ActivityID:       "demo",
		SessionID:        sessionID,
		UserIdentifier:   "alice",
		DeviceIdentifier: "laptop",
		SequenceNumber:   5,
		CreatedAt:        fixedNow,
	}).Return(nil)

	session, err := h.svc.Enter(ctx, models.EnterRequest{ActivityID: "demo", UserIdentifier: "alice", DeviceIdentifier: "laptop"})
	require.NoError(t, err)

	assert.Equal(t, int64(5), session.SequenceNumber)
	assert.Equal(t, sessionID, session.SessionID)
	require.NotNil(t, session.Position)
	assert.Equal(t, int64(5), *session.Position)
	assert.False(t, session.CanEnter)
	require.NotNil(t, session.QueueLength)
	assert.Equal(t, int64(5), *session.QueueLength)
	wait, ok := session.ETA.EstimatedWait()
	require.True(t, ok)
	assert.Equal(t, 3*time.Second, wait)
}

func TestQueueService_Enter_ReturnsExistingSession(t *testing.T) {
	h := newQueueHarness(t, 9)
	ctx := context.Background()
	sessionID := SessionID("alice", "demo")

	h.activities.EXPECT().GetActivity(ctx, "demo").Return(demoActivity(), nil)
	h.entries.EXPECT().FindEntryBySession(ctx, "demo", sessionID).
		Return(models.QueueEntry{ActivityID: "demo", SessionID: sessionID, SequenceNumber: 3}, nil)

	session, err := h.svc.Enter(ctx, models.EnterRequest{ActivityID: "demo", UserIdentifier: "alice"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), session.SequenceNumber)

	issued, _, err := h.seq.snapshot(ctx, "demo")
	require.NoError(t, err)
	assert.Equal(t, int64(9), issued, "dedup must not consume a sequence number")
}

func TestQueueService_Enter_ConcurrentDuplicate(t *testing.T) {
	h := newQueueHarness(t, 0)
	ctx := context.Background()
	sessionID := SessionID("alice", "demo")

	h.activities.EXPECT().GetActivity(ctx, "demo").Return(demoActivity(), nil)
	gomock.InOrder(
		h.entries.EXPECT().FindEntryBySession(ctx, "demo", sessionID).Return(models.QueueEntry{}, store.ErrEntryNotFound),
		h.entries.EXPECT().SaveEntry(ctx, gomock.Any()).Return(store.ErrEntryAlreadyExists),
		h.entries.EXPECT().FindEntryBySession(ctx, "demo", sessionID).
			Return(models.QueueEntry{ActivityID: "demo", SessionID: sessionID, SequenceNumber: 1}, nil),
	)

	session, err := h.svc.Enter(ctx, models.EnterRequest{ActivityID: "demo", UserIdentifier: "alice"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), session.SequenceNumber)
}

func TestQueueService_Enter_Errors(t *testing.T) {
	ended := demoActivity()
	ended.Status = models.ActivityEnded
	notStarted := demoActivity()
	notStarted.StartAt = fixedNow.Add(time.Hour)
	dbErr := errors.New("db down")

	tests := []struct {
		name    string
		setup   func(h *queueHarness)
		wantErr error
	}{
		{
			name: "unknown activity",
			setup: func(h *queueHarness) {
				h.activities.EXPECT().GetActivity(gomock.Any(), "demo").Return(models.Activity{}, store.ErrActivityNotFound)
			},
			wantErr: ErrActivityNotFound,
		},
		{
			name: "activity lookup fails",
			setup: func(h *queueHarness) {
				h.activities.EXPECT().GetActivity(gomock.Any(), "demo").Return(models.Activity{}, dbErr)
			},
			wantErr: dbErr,
		},
		{
			name: "ended activity",
			setup: func(h *queueHarness) {
				h.activities.EXPECT().GetActivity(gomock.Any(), "demo").Return(ended, nil)
			},
			wantErr: ErrActivityNotActive,
		},
		{
			name: "activity not started",
			setup: func(h *queueHarness) {
				h.activities.EXPECT().GetActivity(gomock.Any(), "demo").Return(notStarted, nil)
			},
			wantErr: ErrActivityNotActive,
		},
		{
			name: "entry lookup fails",
			setup: func(h *queueHarness) {
				h.activities.EXPECT().GetActivity(gomock.Any(), "demo").Return(demoActivity(), nil)
				h.entries.EXPECT().FindEntryBySession(gomock.Any(), "demo", gomock.Any()).Return(models.QueueEntry{}, dbErr)
			},
			wantErr: dbErr,
		},
		{
			name: "save fails",
			setup: func(h *queueHarness) {
				h.activities.EXPECT().GetActivity(gomock.Any(), "demo").Return(demoActivity(), nil)
				h.entries.EXPECT().FindEntryBySession(gomock.Any(), "demo", gomock.Any()).Return(models.QueueEntry{}, store.ErrEntryNotFound)
				h.entries.EXPECT().SaveEntry(gomock.Any(), gomock.Any()).Return(dbErr)
			},
			wantErr: dbErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newQueueHarness(t, 0)
			tt.setup(h)

			_, err := h.svc.Enter(context.Background(), models.EnterRequest{ActivityID: "demo", UserIdentifier: "alice"})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestQueueService_Enter_FailedSaveLeavesNoGap(t *testing.T) {
	h := newQueueHarness(t, 0)
	ctx := context.Background()
	dbErr := errors.New("db down")

	h.activities.EXPECT().GetActivity(ctx, "demo").Return(demoActivity(), nil).Times(2)
	h.entries.EXPECT().FindEntryBySession(ctx, "demo", gomock.Any()).Return(models.QueueEntry{}, store.ErrEntryNotFound).Times(2)
	gomock.InOrder(
		h.entries.EXPECT().SaveEntry(ctx, gomock.Any()).Return(dbErr),
		h.entries.EXPECT().SaveEntry(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e models.QueueEntry) error {
			assert.Equal(t, int64(1), e.SequenceNumber)
			return nil
		}),
	)

	_, err := h.svc.Enter(ctx, models.EnterRequest{ActivityID: "demo", UserIdentifier: "alice"})
	require.ErrorIs(t, err, dbErr)

	session, err := h.svc.Enter(ctx, models.EnterRequest{ActivityID: "demo", UserIdentifier: "bob"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), session.SequenceNumber)
	assert.Equal(t, int64(1), *session.Position)
	assert.Equal(t, int64(1), *session.QueueLength)
}

func TestQueueService_Enter_RecordsOutcome(t *testing.T) {
	h := newQueueHarness(t, 0)
	ctx := context.Background()
	aliceID := SessionID("alice", "demo")

	h.activities.EXPECT().GetActivity(ctx, "demo").Return(demoActivity(), nil).Times(2)
	h.activities.EXPECT().GetActivity(ctx, "nope").Return(models.Activity{}, store.ErrActivityNotFound)
	gomock.InOrder(
		h.entries.EXPECT().FindEntryBySession(ctx, "demo", aliceID).Return(models.QueueEntry{}, store.ErrEntryNotFound),
		h.entries.EXPECT().SaveEntry(ctx, gomock.Any()).Return(nil),
		h.entries.EXPECT().FindEntryBySession(ctx, "demo", aliceID).
			Return(models.QueueEntry{ActivityID: "demo", SessionID: aliceID, SequenceNumber: 1}, nil),
	)

	_, err := h.svc.Enter(ctx, models.EnterRequest{ActivityID: "demo", UserIdentifier: "alice"})
	require.NoError(t, err)
	_, err = h.svc.Enter(ctx, models.EnterRequest{ActivityID: "demo", UserIdentifier: "alice"})
	require.NoError(t, err)
	_, err = h.svc.Enter(ctx, models.EnterRequest{ActivityID: "nope", UserIdentifier: "alice"})
	require.ErrorIs(t, err, ErrActivityNotFound)

	expected := `
# HELP waitroom_queue_enter_total Enter requests by activity and outcome.
# TYPE waitroom_queue_enter_total counter
waitroom_queue_enter_total{activity_id="demo",result="existing"} 1
waitroom_queue_enter_total{activity_id="demo",result="new"} 1
waitroom_queue_enter_total{activity_id="unknown",result="failed"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(h.metrics.Gatherer(), strings.NewReader(expected), "waitroom_queue_enter_total"))
}

// ─────────────────────────────────────────────
// Status
// ─────────────────────────────────────────────

func TestQueueService_Status_AfterRelease(t *testing.T) {
	h := newQueueHarness(t, 10)
	ctx := context.Background()

	_, err := h.seq.advance(ctx, "demo", 7)
	require.NoError(t, err)

	h.activities.EXPECT().GetActivity(ctx, "demo").Return(demoActivity(), nil).Times(2)
	h.entries.EXPECT().FindEntryBySession(ctx, "demo", "s-9").
		Return(models.QueueEntry{ActivityID: "demo", SessionID: "s-9", SequenceNumber: 9}, nil)
	h.entries.EXPECT().FindEntryBySession(ctx, "demo", "s-5").
		Return(models.QueueEntry{ActivityID: "demo", SessionID: "s-5", SequenceNumber: 5}, nil)

	waiting, err := h.svc.Status(ctx, models.StatusRequest{ActivityID: "demo", SequenceNumber: 9, SessionID: "s-9"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), *waiting.Position)
	assert.False(t, *waiting.CanEnter)
	assert.Equal(t, int64(3), *waiting.QueueLength)
	assert.Equal(t, int64(1000), *waiting.ETA.NextPollIntervalMs)

	eligible, err := h.svc.Status(ctx, models.StatusRequest{ActivityID: "demo", SequenceNumber: 5, SessionID: "s-5"})
	require.NoError(t, err)
	assert.Equal(t, int64(0), *eligible.Position)
	assert.True(t, *eligible.CanEnter)
	assert.Equal(t, "s-5", eligible.SessionID)
}

func TestQueueService_Status_Errors(t *testing.T) {
	dbErr := errors.New("db down")

	tests := []struct {
		name    string
		setup   func(h *queueHarness)
		wantErr error
	}{
		{
			name: "unknown activity",
			setup: func(h *queueHarness) {
				h.activities.EXPECT().GetActivity(gomock.Any(), "demo").Return(models.Activity{}, store.ErrActivityNotFound)
			},
			wantErr: ErrActivityNotFound,
		},
		{
			name: "unknown session",
			setup: func(h *queueHarness) {
				h.activities.EXPECT().GetActivity(gomock.Any(), "demo").Return(demoActivity(), nil)
				h.entries.EXPECT().FindEntryBySession(gomock.Any(), "demo", "abc").Return(models.QueueEntry{}, store.ErrEntryNotFound)
			},
			wantErr: ErrInvalidSequence,
		},
		{
			name: "sequence mismatch",
			setup: func(h *queueHarness) {
				h.activities.EXPECT().GetActivity(gomock.Any(), "demo").Return(demoActivity(), nil)
				h.entries.EXPECT().FindEntryBySession(gomock.Any(), "demo", "abc").
					Return(models.QueueEntry{SessionID: "abc", SequenceNumber: 2}, nil)
			},
			wantErr: ErrInvalidSequence,
		},
		{
			name: "lookup fails",
			setup: func(h *queueHarness) {
				h.activities.EXPECT().GetActivity(gomock.Any(), "demo").Return(demoActivity(), nil)
				h.entries.EXPECT().FindEntryBySession(gomock.Any(), "demo", "abc").Return(models.QueueEntry{}, dbErr)
			},
			wantErr: dbErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newQueueHarness(t, 0)
			tt.setup(h)

			_, err := h.svc.Status(context.Background(), models.StatusRequest{ActivityID: "demo", SequenceNumber: 1, SessionID: "abc"})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ─────────────────────────────────────────────
// Validation wrapper
// ─────────────────────────────────────────────

type stubQueueService struct {
	enterCalls, statusCalls int
}

func (s *stubQueueService) Enter(context.Context, models.EnterRequest) (models.Session, error) {
	s.enterCalls++
	return models.Session{SessionID: "abc", SequenceNumber: 1}, nil
}

func (s *stubQueueService) Status(context.Context, models.StatusRequest) (models.QueueStatus, error) {
	s.statusCalls++
	return models.QueueStatus{SessionID: "abc"}, nil
}

func TestQueueValidationService(t *testing.T) {
	inner := &stubQueueService{}
	svc := NewQueueValidationService().Wrap(inner)
	ctx := context.Background()

	_, err := svc.Enter(ctx, models.EnterRequest{ActivityID: "demo"})
	assert.ErrorIs(t, err, ErrInvalidRequest)
	assert.Zero(t, inner.enterCalls)

	session, err := svc.Enter(ctx, models.EnterRequest{ActivityID: "demo", UserIdentifier: "alice"})
	require.NoError(t, err)
	assert.Equal(t, "abc", session.SessionID)
	assert.Equal(t, 1, inner.enterCalls)

	_, err = svc.Status(ctx, models.StatusRequest{ActivityID: "demo", SessionID: "abc"})
	assert.ErrorIs(t, err, ErrInvalidRequest)
	assert.Zero(t, inner.statusCalls)

	_, err = svc.Status(ctx, models.StatusRequest{ActivityID: "demo", SequenceNumber: 1, SessionID: "abc"})
	require.NoError(t, err)
	assert.Equal(t, 1, inner.statusCalls)
}
