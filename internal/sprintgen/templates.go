package sprintgen

// dayTemplate is one hand-authored day of a curriculum.
type dayTemplate struct {
	focus  Focus
	topics []string
}

// tier pairs a minimum days-remaining threshold with a curriculum. Tiers
// are ordered longest first; lookup takes the first tier whose threshold
// the remaining days meet.
type tier struct {
	minDays int
	days    []dayTemplate
}

var reviewDay = dayTemplate{focus: FocusReview, topics: []string{"General Review"}}

var roleTiers = map[RoleType][]tier{
	RoleSDE: {
		{minDays: 7, days: []dayTemplate{
			{FocusDSA, []string{"Arrays", "Strings"}},
			{FocusDSA, []string{"Linked Lists", "Stacks & Queues"}},
			{FocusDSA, []string{"Trees", "Graphs"}},
			{FocusDSA, []string{"Dynamic Programming"}},
			{FocusSystemDesign, []string{"Scalability Basics", "Caching"}},
			{FocusBehavioral, []string{"Leadership Stories", "Conflict Resolution"}},
			{FocusReview, []string{"Weak Areas"}},
		}},
		{minDays: 3, days: []dayTemplate{
			{FocusDSA, []string{"Top Patterns"}},
			{FocusSystemDesign, []string{"Core Concepts"}},
			{FocusReview, []string{"Weak Areas"}},
		}},
		{minDays: 0, days: []dayTemplate{reviewDay}},
	},
	RoleSDET: {
		{minDays: 7, days: []dayTemplate{
			{FocusDSA, []string{"Arrays", "Strings"}},
			{FocusDSA, []string{"Hash Maps", "Two Pointers"}},
			{FocusSystemDesign, []string{"Automation Framework Design"}},
			{FocusDSA, []string{"Recursion", "Sorting"}},
			{FocusSystemDesign, []string{"CI/CD Pipelines", "Test Environments"}},
			{FocusBehavioral, []string{"Quality Advocacy", "Bug Triage Stories"}},
			{FocusReview, []string{"Weak Areas"}},
		}},
		{minDays: 3, days: []dayTemplate{
			{FocusDSA, []string{"Top Patterns"}},
			{FocusSystemDesign, []string{"Automation Framework Design"}},
			{FocusReview, []string{"Weak Areas"}},
		}},
		{minDays: 0, days: []dayTemplate{reviewDay}},
	},
	RoleData: {
		{minDays: 7, days: []dayTemplate{
			{FocusDSA, []string{"SQL", "Arrays"}},
			{FocusDSA, []string{"Strings", "Hash Maps"}},
			{FocusSystemDesign, []string{"Data Pipelines", "ETL"}},
			{FocusSystemDesign, []string{"Data Warehousing", "Modeling"}},
			{FocusBehavioral, []string{"Project Deep Dives"}},
			{FocusMock, []string{"Case Study"}},
			{FocusReview, []string{"Weak Areas"}},
		}},
		{minDays: 3, days: []dayTemplate{
			{FocusDSA, []string{"SQL"}},
			{FocusSystemDesign, []string{"Data Pipelines"}},
			{FocusReview, []string{"Weak Areas"}},
		}},
		{minDays: 0, days: []dayTemplate{reviewDay}},
	},
	RolePM: {
		{minDays: 7, days: []dayTemplate{
			{FocusBehavioral, []string{"Product Stories"}},
			{FocusSystemDesign, []string{"Product Design", "Trade-offs"}},
			{FocusBehavioral, []string{"Stakeholder Management"}},
			{FocusSystemDesign, []string{"Metrics", "Experimentation"}},
			{FocusMock, []string{"Product Case"}},
			{FocusBehavioral, []string{"Leadership Stories"}},
			{FocusReview, []string{"Weak Areas"}},
		}},
		{minDays: 3, days: []dayTemplate{
			{FocusBehavioral, []string{"Product Stories"}},
			{FocusSystemDesign, []string{"Product Design"}},
			{FocusReview, []string{"Weak Areas"}},
		}},
		{minDays: 0, days: []dayTemplate{reviewDay}},
	},
	RoleFrontend: {
		{minDays: 7, days: []dayTemplate{
			{FocusDSA, []string{"Arrays", "Strings"}},
			{FocusDSA, []string{"DOM", "Events"}},
			{FocusSystemDesign, []string{"Component Architecture", "State Management"}},
			{FocusDSA, []string{"Async Patterns", "Promises"}},
			{FocusSystemDesign, []string{"Performance", "Rendering"}},
			{FocusBehavioral, []string{"Collaboration Stories"}},
			{FocusReview, []string{"Weak Areas"}},
		}},
		{minDays: 3, days: []dayTemplate{
			{FocusDSA, []string{"Top Patterns"}},
			{FocusSystemDesign, []string{"Component Architecture"}},
			{FocusReview, []string{"Weak Areas"}},
		}},
		{minDays: 0, days: []dayTemplate{reviewDay}},
	},
	RoleDevOps: {
		{minDays: 7, days: []dayTemplate{
			{FocusDSA, []string{"Scripting", "Arrays"}},
			{FocusSystemDesign, []string{"Networking", "DNS"}},
			{FocusSystemDesign, []string{"Containers", "Orchestration"}},
			{FocusSystemDesign, []string{"CI/CD", "Infrastructure as Code"}},
			{FocusSystemDesign, []string{"Monitoring", "Incident Response"}},
			{FocusBehavioral, []string{"Incident Stories"}},
			{FocusReview, []string{"Weak Areas"}},
		}},
		{minDays: 3, days: []dayTemplate{
			{FocusSystemDesign, []string{"Containers", "Networking"}},
			{FocusSystemDesign, []string{"CI/CD"}},
			{FocusReview, []string{"Weak Areas"}},
		}},
		{minDays: 0, days: []dayTemplate{reviewDay}},
	},
}

// genericTier backs unrecognized role types: one review day, never an error.
var genericTier = []dayTemplate{reviewDay}

// lookupCurriculum picks the curriculum for a role and days-remaining count.
func lookupCurriculum(role RoleType, daysRemaining int) []dayTemplate {
	tiers, ok := roleTiers[role]
	if !ok {
		return genericTier
	}
	for _, t := range tiers {
		if daysRemaining >= t.minDays {
			return t.days
		}
	}
	return genericTier
}

// focusTaskTemplates holds the four task descriptions generated for each
// focus area. {topic} expands to the day's first topic, {topics} to the
// whole comma-joined list.
var focusTaskTemplates = map[Focus][]string{
	FocusDSA: {
		"Solve 2 problems on {topic}",
		"Review pattern: {topics}",
		"Practice timed coding (30 min)",
		"Review solutions and optimize",
	},
	FocusSystemDesign: {
		"Study {topic} fundamentals",
		"Design exercise: {topics}",
		"Read one system design case study",
		"Sketch the component diagram and note trade-offs",
	},
	FocusBehavioral: {
		"Draft a STAR story for {topic}",
		"Practice answers out loud: {topics}",
		"Research company values and recent news",
		"Run a 20-minute mock behavioral Q&A",
	},
	FocusReview: {
		"Revisit notes on {topic}",
		"Flash-card review: {topics}",
		"Redo one previously missed problem",
		"Summarize weak areas and plan follow-ups",
	},
	FocusMock: {
		"Full mock interview on {topic}",
		"Review mock feedback: {topics}",
		"Timed whiteboard run-through",
		"Write retrospective notes",
	},
}
