package validators

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-waitroom/models"
)

func ptr[T any](v T) *T { return &v }

func TestValidate_CreateActivityRequest(t *testing.T) {
	start := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	valid := models.CreateActivityRequest{ID: "summer-sale_2026", Name: "Summer sale"}

	tests := []struct {
		name    string
		req     models.CreateActivityRequest
		wantErr error
	}{
		{name: "minimal", req: valid},
		{name: "full", req: models.CreateActivityRequest{
			ID: "concert", Name: "Concert", Status: models.ActivityActive,
			ReleaseRate: 5, PollIntervalMs: 1000, StartAt: &start, EndAt: ptr(start.Add(time.Hour)),
		}},
		{name: "missing id", req: models.CreateActivityRequest{Name: "x"}, wantErr: ErrEmptyActivityID},
		{name: "id with slash", req: models.CreateActivityRequest{ID: "a/b", Name: "x"}, wantErr: ErrInvalidActivityID},
		{name: "id with space", req: models.CreateActivityRequest{ID: "a b", Name: "x"}, wantErr: ErrInvalidActivityID},
		{name: "id too long", req: models.CreateActivityRequest{ID: strings.Repeat("a", MaxActivityIDLength+1), Name: "x"}, wantErr: ErrFieldTooLong},
		{name: "missing name", req: models.CreateActivityRequest{ID: "a"}, wantErr: ErrEmptyActivityName},
		{name: "unknown status", req: models.CreateActivityRequest{ID: "a", Name: "x", Status: "open"}, wantErr: ErrInvalidActivityStatus},
		{name: "negative rate", req: models.CreateActivityRequest{ID: "a", Name: "x", ReleaseRate: -1}, wantErr: ErrInvalidReleaseRate},
		{name: "negative interval", req: models.CreateActivityRequest{ID: "a", Name: "x", PollIntervalMs: -1}, wantErr: ErrInvalidPollInterval},
		{name: "ends before start", req: models.CreateActivityRequest{ID: "a", Name: "x", StartAt: &start, EndAt: ptr(start.Add(-time.Minute))}, wantErr: ErrInvalidTimeRange},
		{name: "ends at start", req: models.CreateActivityRequest{ID: "a", Name: "x", StartAt: &start, EndAt: &start}, wantErr: ErrInvalidTimeRange},
	}

	v := NewActivityRequestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), &tt.req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_UpdateActivityRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     models.UpdateActivityRequest
		wantErr error
	}{
		{name: "status only", req: models.UpdateActivityRequest{Status: ptr(models.ActivityPaused)}},
		{name: "rate only", req: models.UpdateActivityRequest{ReleaseRate: ptr(int64(50))}},
		{name: "empty", req: models.UpdateActivityRequest{}, wantErr: ErrNoFieldsToUpdate},
		{name: "blank name", req: models.UpdateActivityRequest{Name: ptr("")}, wantErr: ErrEmptyActivityName},
		{name: "unknown status", req: models.UpdateActivityRequest{Status: ptr(models.ActivityStatus("closed"))}, wantErr: ErrInvalidActivityStatus},
		{name: "zero rate", req: models.UpdateActivityRequest{ReleaseRate: ptr(int64(0))}, wantErr: ErrInvalidReleaseRate},
		{name: "zero interval", req: models.UpdateActivityRequest{PollIntervalMs: ptr(int64(0))}, wantErr: ErrInvalidPollInterval},
	}

	v := NewActivityRequestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestActivityRequestValidator_Rejects(t *testing.T) {
	v := NewActivityRequestValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), models.EnterRequest{}), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), models.UpdateActivityRequest{}, FieldActivityID), ErrUnknownField)
}

func TestValidTimeRange_OpenBounds(t *testing.T) {
	now := time.Now()

	assert.NoError(t, ValidTimeRange(time.Time{}, now))
	assert.NoError(t, ValidTimeRange(now, time.Time{}))
	assert.ErrorIs(t, ValidTimeRange(now, now.Add(-time.Second)), ErrInvalidTimeRange)
}
