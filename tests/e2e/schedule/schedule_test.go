//go:build e2e

package schedule_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	reqdto "recipe-scheduler/internal/handler/dto/request"
	resdto "recipe-scheduler/internal/handler/dto/response"
	"recipe-scheduler/tests/common/builder"
	"recipe-scheduler/tests/common/dbtest"
	"recipe-scheduler/tests/common/httptest"
	"recipe-scheduler/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	schedulesURL = "/api/schedules"
	devicesURL   = "/api/devices"
)

var tokyo = mustLoad("Asia/Tokyo")

func mustLoad(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

type ScheduleSuite struct {
	e2e.SharedSuite
}

func (s *ScheduleSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	s.Sender.Reset()
	// 2030-01-01 08:00 in the reminder time zone, an hour before reminders fire
	s.Clock.Set(time.Date(2030, time.January, 1, 8, 0, 0, 0, tokyo))
}

func TestScheduleSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ScheduleSuite))
}

func day(d int) string {
	return time.Date(2030, time.January, d, 0, 0, 0, 0, time.UTC).Format(reqdto.DateLayout)
}

func (s *ScheduleSuite) createSchedule(t *testing.T, token, date string) resdto.ScheduleResponse {
	t.Helper()
	reqBody := builder.NewScheduleBuilder().BuildCreateRequestDTO()
	reqBody.ScheduledDate = date

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, schedulesURL, reqBody, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created resdto.ScheduleResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
	return created
}

func (s *ScheduleSuite) getSchedule(t *testing.T, token, id string) (int, resdto.ScheduleResponse) {
	t.Helper()
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, schedulesURL+"/"+id, nil, token)
	var got resdto.ScheduleResponse
	if w.Code == http.StatusOK {
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &got))
	}
	return w.Code, got
}

func offsets(reminders []resdto.ReminderResponse) []int {
	out := make([]int, len(reminders))
	for i, r := range reminders {
		out[i] = r.OffsetDays
	}
	return out
}

// =============================================================================
// TestCreate
// =============================================================================

func (s *ScheduleSuite) TestCreate() {
	s.Run("Normal case: schedule ten days out gets all five reminders", func() {
		t := s.T()
		token := s.JWT.GenerateToken(t, uuid.New())

		created := s.createSchedule(t, token, day(11))

		require.Equal(t, day(11), created.ScheduledDate)
		require.True(t, created.ScheduledAt.Equal(time.Date(2030, time.January, 11, 9, 0, 0, 0, tokyo)))
		require.NotNil(t, created.RemindersScheduled)
		require.True(t, *created.RemindersScheduled)
		require.Equal(t, []int{7, 3, 2, 1, 0}, offsets(created.PendingReminders))

		id := uuid.MustParse(created.ID)
		require.Equal(t, 5, dbtest.CountReminderJobs(t, s.DB, id, "queued"))

		wantFirst := resdto.ReminderResponse{
			OffsetDays: 7,
			FiresAt:    time.Date(2030, time.January, 4, 9, 0, 0, 0, tokyo),
			Title:      "Chicken Curry",
			Body:       "Chicken Curry is planned in 1 week",
			Status:     "queued",
		}
		if diff := cmp.Diff(wantFirst, created.PendingReminders[0], cmpopts.EquateApproxTime(time.Second)); diff != "" {
			t.Errorf("first reminder mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Normal case: tomorrow only keeps the reminders still ahead", func() {
		t := s.T()
		token := s.JWT.GenerateToken(t, uuid.New())

		created := s.createSchedule(t, token, day(2))

		require.Equal(t, []int{1, 0}, offsets(created.PendingReminders))
	})

	s.Run("Abnormal case: past date is rejected", func() {
		t := s.T()
		token := s.JWT.GenerateToken(t, uuid.New())
		reqBody := builder.NewScheduleBuilder().BuildCreateRequestDTO()
		reqBody.ScheduledDate = "2029-12-31"

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, schedulesURL, reqBody, token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Please choose a future date")
	})

	s.Run("Abnormal case: expired token is rejected", func() {
		t := s.T()
		token := s.JWT.CreateExpiredToken(t, uuid.New())
		reqBody := builder.NewScheduleBuilder().BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, schedulesURL, reqBody, token)
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid or expired token")
	})
}

// =============================================================================
// TestReschedule
// =============================================================================

func (s *ScheduleSuite) TestReschedule() {
	s.Run("Normal case: moving closer replaces the pending reminders", func() {
		t := s.T()
		token := s.JWT.GenerateToken(t, uuid.New())
		created := s.createSchedule(t, token, day(11))

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, schedulesURL+"/"+created.ID,
			reqdto.RescheduleRequest{ScheduledDate: day(3)}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var moved resdto.ScheduleResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &moved))
		require.Equal(t, day(3), moved.ScheduledDate)
		require.Equal(t, []int{2, 1, 0}, offsets(moved.PendingReminders))

		id := uuid.MustParse(created.ID)
		require.Equal(t, 3, dbtest.CountReminderJobs(t, s.DB, id, "queued"))
		require.Equal(t, 5, dbtest.CountReminderJobs(t, s.DB, id, "canceled"))
	})

	s.Run("Abnormal case: another user's schedule looks missing", func() {
		t := s.T()
		owner := s.JWT.GenerateToken(t, uuid.New())
		stranger := s.JWT.GenerateToken(t, uuid.New())
		created := s.createSchedule(t, owner, day(11))

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, schedulesURL+"/"+created.ID,
			reqdto.RescheduleRequest{ScheduledDate: day(5)}, stranger)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Schedule no longer exists")

		_, got := s.getSchedule(t, owner, created.ID)
		require.Equal(t, day(11), got.ScheduledDate)
	})
}

// =============================================================================
// TestComplete
// =============================================================================

func (s *ScheduleSuite) TestComplete() {
	s.Run("Normal case: completing cancels every pending reminder", func() {
		t := s.T()
		token := s.JWT.GenerateToken(t, uuid.New())
		created := s.createSchedule(t, token, day(5))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, schedulesURL+"/"+created.ID+"/complete", nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		code, got := s.getSchedule(t, token, created.ID)
		require.Equal(t, http.StatusOK, code)
		require.True(t, got.IsCompleted)
		require.NotNil(t, got.CompletedAt)
		require.Empty(t, got.PendingReminders)

		id := uuid.MustParse(created.ID)
		require.Zero(t, dbtest.CountReminderJobs(t, s.DB, id, "queued"))
	})

	s.Run("Abnormal case: completing twice conflicts", func() {
		t := s.T()
		token := s.JWT.GenerateToken(t, uuid.New())
		created := s.createSchedule(t, token, day(5))
		url := schedulesURL + "/" + created.ID + "/complete"

		require.Equal(t, http.StatusOK, httptest.PerformRequest(t, s.Router, http.MethodPost, url, nil, token).Code)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url, nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "already completed")
	})
}

// =============================================================================
// TestDelete
// =============================================================================

func (s *ScheduleSuite) TestDelete() {
	s.Run("Normal case: delete removes the schedule and its reminders", func() {
		t := s.T()
		token := s.JWT.GenerateToken(t, uuid.New())
		created := s.createSchedule(t, token, day(11))
		id := uuid.MustParse(created.ID)

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, schedulesURL+"/"+created.ID, nil, token)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		require.False(t, dbtest.ScheduleExists(t, s.DB, id))
		require.Zero(t, dbtest.CountReminderJobs(t, s.DB, id, ""))

		code, _ := s.getSchedule(t, token, created.ID)
		require.Equal(t, http.StatusNotFound, code)

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, schedulesURL+"/"+created.ID, nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Schedule no longer exists")
	})
}

// =============================================================================
// TestList
// =============================================================================

func (s *ScheduleSuite) TestList() {
	s.Run("Normal case: own schedules in date order with status", func() {
		t := s.T()
		userID := uuid.New()
		token := s.JWT.GenerateToken(t, userID)
		s.createSchedule(t, token, day(6))
		s.createSchedule(t, token, day(1))
		s.createSchedule(t, s.JWT.GenerateToken(t, uuid.New()), day(2))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, schedulesURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var list resdto.ScheduleListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &list))
		require.Len(t, list.Schedules, 2)
		require.Equal(t, day(1), list.Schedules[0].ScheduledDate)
		require.Equal(t, "TODAY", list.Schedules[0].Status)
		require.Equal(t, day(6), list.Schedules[1].ScheduledDate)
		require.Equal(t, "UPCOMING", list.Schedules[1].Status)
		require.Empty(t, list.NextCursor)
	})

	s.Run("Normal case: cursor pages through the rest", func() {
		t := s.T()
		token := s.JWT.GenerateToken(t, uuid.New())
		for d := 2; d <= 4; d++ {
			s.createSchedule(t, token, day(d))
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, schedulesURL+"?limit=2", nil, token)
		var first resdto.ScheduleListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &first))
		require.Len(t, first.Schedules, 2)
		require.NotEmpty(t, first.NextCursor)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, schedulesURL+"?limit=2&after="+first.NextCursor, nil, token)
		var second resdto.ScheduleListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &second))
		require.Len(t, second.Schedules, 1)
		require.Equal(t, day(4), second.Schedules[0].ScheduledDate)
	})
}

// =============================================================================
// TestReminderDelivery
// =============================================================================

func (s *ScheduleSuite) TestReminderDelivery() {
	s.Run("Normal case: each reminder reaches the device once", func() {
		t := s.T()
		ctx := context.Background()
		token := s.JWT.GenerateToken(t, uuid.New())

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, devicesURL,
			reqdto.RegisterDeviceRequest{Token: "device-token-1", Platform: "ios"}, token)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		created := s.createSchedule(t, token, day(3))

		s.Clock.Set(time.Date(2030, time.January, 1, 9, 30, 0, 0, tokyo))
		res, err := s.Sweeper.RunOnce(ctx)
		require.NoError(t, err)
		require.Equal(t, 1, res.Sent)

		// a second sweep in the same window sends nothing new
		res, err = s.Sweeper.RunOnce(ctx)
		require.NoError(t, err)
		require.Zero(t, res.Claimed)

		for _, d := range []int{2, 3} {
			s.Clock.Set(time.Date(2030, time.January, d, 9, 30, 0, 0, tokyo))
			res, err = s.Sweeper.RunOnce(ctx)
			require.NoError(t, err)
			require.Equal(t, 1, res.Sent)
		}

		sent := s.Sender.Sent()
		require.Len(t, sent, 3)
		bodies := []string{sent[0].Notification.Body, sent[1].Notification.Body, sent[2].Notification.Body}
		require.Equal(t, []string{
			"Chicken Curry is planned in 2 days",
			"Chicken Curry is planned for tomorrow",
			"Today is the day to cook Chicken Curry",
		}, bodies)
		require.Equal(t, created.ID, sent[0].Notification.Data["schedule_id"])
		require.Equal(t, []string{"device-token-1"}, sent[0].Tokens)

		require.Equal(t, 3, dbtest.CountReminderJobs(t, s.DB, uuid.MustParse(created.ID), "sent"))
	})

	s.Run("Normal case: after a sweeper outage only the freshest reminder goes out", func() {
		t := s.T()
		userID := uuid.New()
		token := s.JWT.GenerateToken(t, userID)
		dbtest.CreateDeviceToken(t, s.DB, userID, "device-token-3")
		created := s.createSchedule(t, token, day(3))

		s.Clock.Set(time.Date(2030, time.January, 3, 10, 0, 0, 0, tokyo))
		res, err := s.Sweeper.RunOnce(context.Background())
		require.NoError(t, err)
		require.Equal(t, 3, res.Claimed)
		require.Equal(t, 1, res.Sent)
		require.Equal(t, 2, res.Canceled)

		sent := s.Sender.Sent()
		require.Len(t, sent, 1)
		require.Equal(t, "Today is the day to cook Chicken Curry", sent[0].Notification.Body)

		id := uuid.MustParse(created.ID)
		require.Equal(t, 1, dbtest.CountReminderJobs(t, s.DB, id, "sent"))
		require.Equal(t, 2, dbtest.CountReminderJobs(t, s.DB, id, "canceled"))
	})

	s.Run("Normal case: completed schedule sends nothing", func() {
		t := s.T()
		userID := uuid.New()
		token := s.JWT.GenerateToken(t, userID)
		dbtest.CreateDeviceToken(t, s.DB, userID, "device-token-2")

		created := s.createSchedule(t, token, day(4))
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, schedulesURL+"/"+created.ID+"/complete", nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		s.Clock.Set(time.Date(2030, time.January, 6, 0, 0, 0, 0, tokyo))
		_, err := s.Sweeper.RunOnce(context.Background())
		require.NoError(t, err)
		require.Empty(t, s.Sender.Sent())
	})
}
