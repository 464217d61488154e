package test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/bfit-app/bfit-backend/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// the catalog is public: no session token and no app secret here
func (s *IntegrationTestSuite) catalogRequest(ctx context.Context, path string, expectedStatus int) []byte {
	req, err := http.NewRequestWithContext(ctx, "GET", fmt.Sprintf("%s%s", serverEndpoint, path), nil)
	require.NoError(s.T(), err)
	req.Header.Set("User-Agent", "test-agent")

	resp, err := s.httpClient.Do(req)
	require.NoError(s.T(), err)
	require.Equal(s.T(), expectedStatus, resp.StatusCode)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(s.T(), err)
	return respBytes
}

func (s *IntegrationTestSuite) TestCatalog() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s.T().Run("muscle groups", func(t *testing.T) {
		var groupsResp catalog.GroupsResponse
		require.NoError(t, json.Unmarshal(s.catalogRequest(ctx, "/catalog/groups", http.StatusOK), &groupsResp))
		assert.NotEmpty(t, groupsResp.Groups)
		assert.Contains(t, groupsResp.Groups, "Chest")
	})

	s.T().Run("exercises", func(t *testing.T) {
		var exercisesResp catalog.ExercisesResponse
		require.NoError(t, json.Unmarshal(s.catalogRequest(ctx, "/catalog/exercises", http.StatusOK), &exercisesResp))
		assert.NotEmpty(t, exercisesResp.Exercises)

		var chestResp catalog.ExercisesResponse
		require.NoError(t, json.Unmarshal(s.catalogRequest(ctx, "/catalog/exercises?group=Chest", http.StatusOK), &chestResp))
		require.NotEmpty(t, chestResp.Exercises)
		for _, exercise := range chestResp.Exercises {
			assert.Equal(t, "Chest", exercise.MuscleGroup)
		}
	})

	s.T().Run("programs", func(t *testing.T) {
		var programsResp catalog.ProgramsResponse
		require.NoError(t, json.Unmarshal(s.catalogRequest(ctx, "/catalog/programs", http.StatusOK), &programsResp))
		require.NotEmpty(t, programsResp.Programs)

		var program catalog.Program
		require.NoError(t, json.Unmarshal(s.catalogRequest(ctx, "/catalog/programs/ppl-classic", http.StatusOK), &program))
		assert.Equal(t, "ppl-classic", program.ID)
		assert.NotEmpty(t, program.Days)

		s.catalogRequest(ctx, "/catalog/programs/no-such-program", http.StatusNotFound)
	})

	s.T().Run("day preset", func(t *testing.T) {
		var presetResp catalog.PresetResponse
		require.NoError(t, json.Unmarshal(
			s.catalogRequest(ctx, "/catalog/programs/ppl-classic/days/ppl-push/preset", http.StatusOK),
			&presetResp,
		))
		require.NotEmpty(t, presetResp.Exercises)
		for _, exercise := range presetResp.Exercises {
			require.Len(t, exercise.Sets, 1)
			assert.False(t, exercise.Sets[0].Completed)
		}

		s.catalogRequest(ctx, "/catalog/programs/ppl-classic/days/no-such-day/preset", http.StatusNotFound)
	})
}
