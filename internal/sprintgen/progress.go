package sprintgen

// ToggleTask flips one task's completion state and recomputes completion
// bottom-up. Returns false when no task carries the given ID.
func ToggleTask(s *Sprint, taskID string) bool {
	found := false
	for di := range s.DailyPlans {
		for bi := range s.DailyPlans[di].Blocks {
			tasks := s.DailyPlans[di].Blocks[bi].Tasks
			for ti := range tasks {
				if tasks[ti].ID == taskID {
					tasks[ti].Completed = !tasks[ti].Completed
					found = true
				}
			}
		}
	}
	if found {
		Recompute(s)
	}
	return found
}

// Recompute rederives block, day and sprint completion from task state:
// a block completes when all its tasks do, a day when all its blocks do,
// and the sprint moves between active and completed accordingly. Expired
// sprints stay expired.
func Recompute(s *Sprint) {
	allDays := true
	for di := range s.DailyPlans {
		day := &s.DailyPlans[di]
		dayDone := true
		for bi := range day.Blocks {
			block := &day.Blocks[bi]
			blockDone := len(block.Tasks) > 0
			for _, t := range block.Tasks {
				if !t.Completed {
					blockDone = false
					break
				}
			}
			block.Completed = blockDone
			if !blockDone {
				dayDone = false
			}
		}
		day.Completed = dayDone
		if !dayDone {
			allDays = false
		}
	}

	if s.Status == StatusExpired {
		return
	}
	if allDays {
		s.Status = StatusCompleted
	} else {
		s.Status = StatusActive
	}
}
