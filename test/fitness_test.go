package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/bfit-app/bfit-backend/internal/fitness"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }

func strengthSession(name string, date time.Time, exercise string, weight float64, reps int) fitness.WorkoutSession {
	return fitness.WorkoutSession{
		Name:            name,
		Date:            date,
		DurationMinutes: 60,
		Exercises: []fitness.ExerciseLog{
			{
				ID:          "ex1",
				Name:        exercise,
				MuscleGroup: "Chest",
				Sets: []fitness.Set{
					{
						ID:        "ex1-set1",
						Reps:      intPtr(reps),
						Weight:    floatPtr(weight),
						Completed: true,
					},
				},
			},
		},
	}
}

func (s *IntegrationTestSuite) deleteAllSessions(ctx context.Context) {
	_, err := s.dbPool.Exec(ctx, "DELETE FROM workout_session")
	require.NoError(s.T(), err)
}

func (s *IntegrationTestSuite) newSessionRequest(
	ctx context.Context,
	session fitness.WorkoutSession,
) fitness.AddSessionResponse {
	sessionJson, err := json.Marshal(session)
	require.NoError(s.T(), err)

	req, err := http.NewRequestWithContext(
		ctx,
		"POST", fmt.Sprintf("%s/fitness/sessions", serverEndpoint),
		bytes.NewReader(sessionJson),
	)
	require.NoError(s.T(), err)
	setMobileAppHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	require.NoError(s.T(), err)
	require.Equal(s.T(), http.StatusCreated, resp.StatusCode)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(s.T(), err)

	var addedSession fitness.AddSessionResponse
	require.NoError(s.T(), json.Unmarshal(respBytes, &addedSession))

	return addedSession
}

func (s *IntegrationTestSuite) getSessionRequest(ctx context.Context, id int) fitness.WorkoutSession {
	req, err := http.NewRequestWithContext(
		ctx,
		"GET", fmt.Sprintf("%s/fitness/sessions/%d", serverEndpoint, id),
		nil,
	)
	require.NoError(s.T(), err)
	setMobileAppHeaders(req)

	resp, err := s.httpClient.Do(req)
	require.NoError(s.T(), err)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(s.T(), err)

	var session fitness.WorkoutSession
	require.NoError(s.T(), json.Unmarshal(respBytes, &session))
	return session
}

func (s *IntegrationTestSuite) updateSessionRequest(
	ctx context.Context,
	session fitness.WorkoutSession,
) fitness.UpdateSessionResponse {
	sessionJson, err := json.Marshal(session)
	require.NoError(s.T(), err)

	req, err := http.NewRequestWithContext(
		ctx,
		"PUT", fmt.Sprintf("%s/fitness/sessions/%d", serverEndpoint, session.ID),
		bytes.NewReader(sessionJson),
	)
	require.NoError(s.T(), err)
	setMobileAppHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	require.NoError(s.T(), err)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(s.T(), err)

	var updateResp fitness.UpdateSessionResponse
	require.NoError(s.T(), json.Unmarshal(respBytes, &updateResp))
	return updateResp
}

func (s *IntegrationTestSuite) deleteSessionRequest(ctx context.Context, id int) fitness.DeleteSessionResponse {
	req, err := http.NewRequestWithContext(
		ctx,
		"DELETE", fmt.Sprintf("%s/fitness/sessions/%d", serverEndpoint, id),
		nil,
	)
	require.NoError(s.T(), err)
	setMobileAppHeaders(req)

	resp, err := s.httpClient.Do(req)
	require.NoError(s.T(), err)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(s.T(), err)

	var deleteResp fitness.DeleteSessionResponse
	require.NoError(s.T(), json.Unmarshal(respBytes, &deleteResp))

	return deleteResp
}

func (s *IntegrationTestSuite) listSessionsRequest(ctx context.Context, page, size int) fitness.ListResponse {
	req, err := http.NewRequestWithContext(
		ctx,
		"GET",
		fmt.Sprintf("%s/fitness/sessions/page/%d/size/%d", serverEndpoint, page, size),
		nil,
	)
	require.NoError(s.T(), err)
	setMobileAppHeaders(req)

	resp, err := s.httpClient.Do(req)
	require.NoError(s.T(), err)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(s.T(), err)

	var listResp fitness.ListResponse
	require.NoError(s.T(), json.Unmarshal(respBytes, &listResp))

	return listResp
}

func (s *IntegrationTestSuite) TestWorkoutSessions() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	now := time.Now().UTC()

	s.T().Run("authorization missing", func(t *testing.T) {
		sessionJson, err := json.Marshal(strengthSession("Push Day", now, "Barbell Bench Press", 100, 10))
		require.NoError(t, err)
		req, err := http.NewRequestWithContext(
			ctx,
			"POST", fmt.Sprintf("%s/fitness/sessions", serverEndpoint),
			bytes.NewReader(sessionJson),
		)
		require.NoError(t, err)
		req.Header.Set("User-Agent", "test-agent")

		resp, err := s.httpClient.Do(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		resp.Body.Close()

		req, err = http.NewRequestWithContext(ctx, "GET", fmt.Sprintf("%s/fitness/sessions/page/1/size/10", serverEndpoint), nil)
		require.NoError(t, err)
		req.Header.Set("User-Agent", "test-agent")

		resp, err = s.httpClient.Do(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		resp.Body.Close()
	})

	s.T().Run("authorization present, but invalid", func(t *testing.T) {
		req, err := http.NewRequestWithContext(ctx, "GET", fmt.Sprintf("%s/fitness/sessions/page/1/size/10", serverEndpoint), nil)
		require.NoError(t, err)
		req.Header.Set("User-Agent", "BFit/1.0 (iPhone; integration tests)")
		req.Header.Set("Authorization", "invalid-secret")

		resp, err := s.httpClient.Do(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		resp.Body.Close()
	})

	s.T().Run("session lifecycle", func(t *testing.T) {
		s.deleteAllSessions(ctx)
		require.Equal(t, 0, s.listSessionsRequest(ctx, 1, 10).Total)

		pushDay := strengthSession("Push Day", now.AddDate(0, 0, -1), "Barbell Bench Press", 100, 10)
		added1 := s.newSessionRequest(ctx, pushDay)
		require.True(t, added1.ID > 0)
		assert.Equal(t, "Push Day", added1.Name)
		// first ever bench entry counts as a PR right away
		assert.Contains(t, added1.Celebrations, "New PR on Barbell Bench Press: est 133 lbs 1RM!")

		added2 := s.newSessionRequest(ctx, strengthSession("Push Day II", now, "Barbell Bench Press", 105, 10))
		require.True(t, added2.ID > added1.ID)
		assert.Contains(t, added2.Celebrations, "New PR on Barbell Bench Press: est 140 lbs 1RM!")

		fetched := s.getSessionRequest(ctx, added2.ID)
		assert.Equal(t, "Push Day II", fetched.Name)
		assert.Equal(t, 60, fetched.DurationMinutes)
		require.Len(t, fetched.Exercises, 1)
		require.Len(t, fetched.Exercises[0].Sets, 1)
		assert.Equal(t, 105.0, fetched.Exercises[0].Sets[0].WeightOrZero())
		assert.Equal(t, 10, fetched.Exercises[0].Sets[0].RepsOrZero())
		assert.Equal(t,
			now.Truncate(time.Second),
			fetched.Date.In(time.UTC).Truncate(time.Second),
		)

		// sorted by date, most recent first
		listResp := s.listSessionsRequest(ctx, 1, 10)
		require.Len(t, listResp.Sessions, 2)
		assert.Equal(t, 2, listResp.Total)
		assert.Equal(t, added2.ID, listResp.Sessions[0].ID)
		assert.Equal(t, added1.ID, listResp.Sessions[1].ID)

		// rename and shorten the second session
		fetched.Name = "Push Day (deload)"
		fetched.DurationMinutes = 45
		updateResp := s.updateSessionRequest(ctx, fetched)
		assert.Equal(t, added2.ID, updateResp.UpdatedID)

		updated := s.getSessionRequest(ctx, added2.ID)
		assert.Equal(t, "Push Day (deload)", updated.Name)
		assert.Equal(t, 45, updated.DurationMinutes)

		// now delete the first one
		deleteResp := s.deleteSessionRequest(ctx, added1.ID)
		require.Equal(t, added1.ID, deleteResp.DeletedID)

		listResp = s.listSessionsRequest(ctx, 1, 10)
		require.Len(t, listResp.Sessions, 1)
		assert.Equal(t, 1, listResp.Total)

		// deleted session is gone
		req, err := http.NewRequestWithContext(ctx, "GET", fmt.Sprintf("%s/fitness/sessions/%d", serverEndpoint, added1.ID), nil)
		require.NoError(t, err)
		setMobileAppHeaders(req)
		resp, err := s.httpClient.Do(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		resp.Body.Close()
	})

	s.T().Run("sessions page", func(t *testing.T) {
		s.deleteAllSessions(ctx)
		require.Equal(t, 0, s.listSessionsRequest(ctx, 1, 10).Total)

		total := 15
		ids := make([]int, total)
		for i := 0; i < total; i++ {
			added := s.newSessionRequest(ctx, strengthSession(
				gofakeit.AppName(),
				now.Add(-time.Hour*time.Duration(i)),
				gofakeit.Animal(),
				float64(20+gofakeit.Number(0, 80)),
				gofakeit.Number(1, 12),
			))
			ids[i] = added.ID
		}

		sessionsPage := s.listSessionsRequest(ctx, 1, 10)
		require.Len(t, sessionsPage.Sessions, 10)
		assert.Equal(t, total, sessionsPage.Total)
		for i := 0; i < 10; i++ {
			assert.Equal(t, ids[i], sessionsPage.Sessions[i].ID)
		}

		// the last page gets padded back to a full page
		sessionsPage = s.listSessionsRequest(ctx, 2, 10)
		require.Len(t, sessionsPage.Sessions, 10)
		assert.Equal(t, total, sessionsPage.Total)
		for i := 0; i < 10; i++ {
			assert.Equal(t, ids[i+5], sessionsPage.Sessions[i].ID)
		}

		sessionsPage = s.listSessionsRequest(ctx, 2, 3)
		require.Len(t, sessionsPage.Sessions, 3)
		assert.Equal(t, total, sessionsPage.Total)
		for i := 0; i < 3; i++ {
			assert.Equal(t, ids[i+3], sessionsPage.Sessions[i].ID)
		}
	})
}
