package sprintgen

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var genNow = time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

func TestGenerateTenDaySDESprint(t *testing.T) {
	interview := genNow.AddDate(0, 0, 10)
	s := Generate("app-1", interview, RoleSDE, genNow)

	assert.Equal(t, 10, s.TotalDays)
	require.Len(t, s.DailyPlans, 10)
	assert.Equal(t, StatusActive, s.Status)
	assert.Equal(t, "app-1", s.ApplicationID)
	assert.NotEmpty(t, s.ID)

	// The first seven days follow the long SDE curriculum.
	assert.Equal(t, FocusDSA, s.DailyPlans[0].Focus)
	assert.Equal(t, "Solve 2 problems on Arrays", s.DailyPlans[0].Blocks[0].Tasks[0].Description)
	assert.Equal(t, "Arrays", s.DailyPlans[0].Blocks[0].Tasks[0].Category)
	assert.Equal(t, FocusReview, s.DailyPlans[6].Focus)

	// Days past the curriculum are synthesized review days.
	for i := 7; i < 10; i++ {
		assert.Equal(t, FocusReview, s.DailyPlans[i].Focus)
		assert.Equal(t, "General Review", s.DailyPlans[i].Blocks[0].Tasks[0].Category)
	}
}

func TestGenerateSameDayInterviewYieldsOneReviewDay(t *testing.T) {
	s := Generate("app-2", genNow, RoleSDE, genNow)

	assert.Equal(t, 1, s.TotalDays)
	require.Len(t, s.DailyPlans, 1)
	assert.Equal(t, FocusReview, s.DailyPlans[0].Focus)
}

func TestGeneratePastInterviewStillYieldsOneDay(t *testing.T) {
	s := Generate("app-3", genNow.AddDate(0, 0, -5), RoleSDE, genNow)
	assert.Equal(t, 1, s.TotalDays)
}

func TestGenerateCondensedTier(t *testing.T) {
	s := Generate("app-4", genNow.AddDate(0, 0, 5), RoleSDE, genNow)

	assert.Equal(t, 5, s.TotalDays)
	require.Len(t, s.DailyPlans, 5)
	assert.Equal(t, FocusDSA, s.DailyPlans[0].Focus)
	assert.Equal(t, FocusSystemDesign, s.DailyPlans[1].Focus)
	assert.Equal(t, FocusReview, s.DailyPlans[2].Focus)
	// Condensed curriculum is three days, the rest are filler.
	assert.Equal(t, FocusReview, s.DailyPlans[3].Focus)
	assert.Equal(t, FocusReview, s.DailyPlans[4].Focus)
}

func TestGenerateUnknownRoleFallsBackToReview(t *testing.T) {
	s := Generate("app-5", genNow.AddDate(0, 0, 4), RoleType("Designer"), genNow)

	assert.Equal(t, 4, s.TotalDays)
	for _, p := range s.DailyPlans {
		assert.Equal(t, FocusReview, p.Focus)
	}
}

func TestGenerateBlockAndTaskShape(t *testing.T) {
	s := Generate("app-6", genNow.AddDate(0, 0, 9), RoleSDET, genNow)

	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	for i, p := range s.DailyPlans {
		require.Len(t, p.Blocks, 2, "day %d", p.Day)
		assert.Equal(t, BlockMorning, p.Blocks[0].Type)
		assert.Equal(t, BlockEvening, p.Blocks[1].Type)
		assert.Len(t, p.Blocks[0].Tasks, 2)
		assert.Len(t, p.Blocks[1].Tasks, 2)
		assert.Equal(t, i+1, p.Day)
		assert.True(t, p.Date.Equal(start.AddDate(0, 0, i)))
		assert.False(t, p.Completed)
	}
}

func TestGenerateUsesUniqueIDs(t *testing.T) {
	s := Generate("app-7", genNow.AddDate(0, 0, 3), RoleData, genNow)

	seen := map[string]bool{}
	for _, p := range s.DailyPlans {
		for _, b := range p.Blocks {
			require.False(t, seen[b.ID])
			seen[b.ID] = true
			for _, task := range b.Tasks {
				require.False(t, seen[task.ID])
				seen[task.ID] = true
			}
		}
	}
}

func TestToggleTaskRecomputesBottomUp(t *testing.T) {
	s := Generate("app-8", genNow, RoleSDE, genNow)
	require.Len(t, s.DailyPlans, 1)

	var ids []string
	for _, b := range s.DailyPlans[0].Blocks {
		for _, task := range b.Tasks {
			ids = append(ids, task.ID)
		}
	}
	require.Len(t, ids, 4)

	for _, id := range ids[:3] {
		require.True(t, ToggleTask(&s, id))
	}
	assert.True(t, s.DailyPlans[0].Blocks[0].Completed)
	assert.False(t, s.DailyPlans[0].Blocks[1].Completed)
	assert.False(t, s.DailyPlans[0].Completed)
	assert.Equal(t, StatusActive, s.Status)

	require.True(t, ToggleTask(&s, ids[3]))
	assert.True(t, s.DailyPlans[0].Completed)
	assert.Equal(t, StatusCompleted, s.Status)

	// Untoggling reopens the sprint.
	require.True(t, ToggleTask(&s, ids[0]))
	assert.Equal(t, StatusActive, s.Status)
	assert.False(t, s.DailyPlans[0].Blocks[0].Completed)

	assert.False(t, ToggleTask(&s, "missing-id"))
}

func TestParseRoleType(t *testing.T) {
	tests := []struct {
		role string
		want RoleType
	}{
		{"SDE2", RoleSDE},
		{"Backend Engineer", RoleSDE},
		{"SDET", RoleSDET},
		{"QA Engineer", RoleSDET},
		{"Data Scientist", RoleData},
		{"ML Engineer", RoleData},
		{"Product Manager", RolePM},
		{"Frontend Developer", RoleFrontend},
		{"DevOps Engineer", RoleDevOps},
		{"Chef", RoleType("")},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, ParseRoleType(tc.role), tc.role)
	}
}
