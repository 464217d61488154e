package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/bfit-app/bfit-backend/internal/notifications"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) getReminderRequest(ctx context.Context) notifications.ReminderSettingsResponse {
	req, err := http.NewRequestWithContext(ctx, "GET", fmt.Sprintf("%s/settings/reminder", serverEndpoint), nil)
	require.NoError(s.T(), err)
	setMobileAppHeaders(req)

	resp, err := s.httpClient.Do(req)
	require.NoError(s.T(), err)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(s.T(), err)

	var settingsResp notifications.ReminderSettingsResponse
	require.NoError(s.T(), json.Unmarshal(respBytes, &settingsResp))
	return settingsResp
}

func (s *IntegrationTestSuite) setReminderRequest(ctx context.Context, reminderTime string) *http.Response {
	setReqJson, err := json.Marshal(notifications.ReminderSettingsResponse{ReminderTime: reminderTime})
	require.NoError(s.T(), err)

	req, err := http.NewRequestWithContext(
		ctx,
		"PUT", fmt.Sprintf("%s/settings/reminder", serverEndpoint),
		bytes.NewReader(setReqJson),
	)
	require.NoError(s.T(), err)
	setMobileAppHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	require.NoError(s.T(), err)
	return resp
}

func (s *IntegrationTestSuite) TestReminderSettings() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s.T().Run("authorization missing", func(t *testing.T) {
		req, err := http.NewRequestWithContext(ctx, "GET", fmt.Sprintf("%s/settings/reminder", serverEndpoint), nil)
		require.NoError(t, err)
		req.Header.Set("User-Agent", "test-agent")

		resp, err := s.httpClient.Do(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		resp.Body.Close()
	})

	s.T().Run("default reminder time", func(t *testing.T) {
		require.NoError(t, s.redisDataCleanup(ctx))
		settingsResp := s.getReminderRequest(ctx)
		assert.Equal(t, notifications.DefaultReminderTime, settingsResp.ReminderTime)
	})

	s.T().Run("set and read back", func(t *testing.T) {
		resp := s.setReminderRequest(ctx, "20:15")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()

		settingsResp := s.getReminderRequest(ctx)
		assert.Equal(t, "20:15", settingsResp.ReminderTime)
	})

	s.T().Run("invalid reminder time", func(t *testing.T) {
		resp := s.setReminderRequest(ctx, "25:99")
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)

		respBytes, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, "error, invalid reminder time", strings.TrimSpace(string(respBytes)))

		// the stored preference is untouched
		settingsResp := s.getReminderRequest(ctx)
		assert.Equal(t, "20:15", settingsResp.ReminderTime)
	})
}
