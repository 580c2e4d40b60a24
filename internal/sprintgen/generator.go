package sprintgen

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	morningDuration = "2-3 hours"
	eveningDuration = "1-2 hours"
)

// Generate builds a sprint for one application. The plan always spans
// exactly max(1, whole days between now and the interview) days: the
// curriculum covers the front, synthesized review days pad the back when
// the interview is further out than the hand-authored table. An interview
// today or in the past still yields a single-day plan.
func Generate(applicationID string, interviewDate time.Time, roleType RoleType, now time.Time) Sprint {
	start := startOfDay(now)
	days := daysBetween(start, startOfDay(interviewDate))
	if days < 1 {
		days = 1
	}

	curriculum := lookupCurriculum(roleType, days)

	plans := make([]DailyPlan, 0, days)
	for i := 0; i < days; i++ {
		day := reviewDay
		if i < len(curriculum) {
			day = curriculum[i]
		}
		plans = append(plans, buildDay(i, day, start))
	}

	return Sprint{
		ID:            uuid.NewString(),
		ApplicationID: applicationID,
		InterviewDate: startOfDay(interviewDate),
		RoleType:      roleType,
		TotalDays:     days,
		Status:        StatusActive,
		CreatedAt:     now,
		DailyPlans:    plans,
	}
}

// buildDay expands one day template into a dated plan with morning and
// evening blocks. The morning block takes the first ceil(n/2) tasks.
func buildDay(index int, tmpl dayTemplate, start time.Time) DailyPlan {
	templates, ok := focusTaskTemplates[tmpl.focus]
	if !ok {
		templates = focusTaskTemplates[FocusReview]
	}

	category := "General"
	if len(tmpl.topics) > 0 {
		category = tmpl.topics[0]
	}

	tasks := make([]Task, 0, len(templates))
	for _, t := range templates {
		tasks = append(tasks, Task{
			ID:          uuid.NewString(),
			Description: renderTask(t, tmpl.topics),
			Category:    category,
		})
	}

	split := (len(tasks) + 1) / 2
	blocks := []Block{
		{ID: uuid.NewString(), Type: BlockMorning, Duration: morningDuration, Tasks: tasks[:split]},
		{ID: uuid.NewString(), Type: BlockEvening, Duration: eveningDuration, Tasks: tasks[split:]},
	}

	return DailyPlan{
		Day:    index + 1,
		Date:   start.AddDate(0, 0, index),
		Focus:  tmpl.focus,
		Blocks: blocks,
	}
}

// renderTask fills the {topic}/{topics} placeholders of a task template.
func renderTask(tmpl string, topics []string) string {
	topic := "General"
	if len(topics) > 0 {
		topic = topics[0]
	}
	out := strings.ReplaceAll(tmpl, "{topics}", strings.Join(orGeneral(topics), ", "))
	return strings.ReplaceAll(out, "{topic}", topic)
}

func orGeneral(topics []string) []string {
	if len(topics) == 0 {
		return []string{"General"}
	}
	return topics
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// daysBetween counts whole days from a to b, rounding so that daylight
// saving shifts cannot skew the count.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours()/24 + 0.5)
}
