package components

// Product screenshots on feature pages are drawn from static sample data.
// The sample content stays in English in every locale, like a real screenshot.

type mockStat struct {
	Label string
	Value string
	Color string
}

type mockRow struct {
	Label    string
	Meta     string
	Status   string
	Color    string
	Progress int
	Done     bool
}

type dashboardMock struct {
	Title  string
	Stats  []mockStat
	Rows   []mockRow
	Mobile []mockRow
}

var dashboardMocks = map[string]dashboardMock{
	"tasks": {
		Title: "Tasks overview",
		Stats: []mockStat{{"Open", "48", "primary"}, {"Due today", "12", "warning"}, {"Completed", "186", "success"}},
		Rows: []mockRow{
			{Label: "Restock endcap display", Meta: "Store #12 · P1", Status: "Overdue", Color: "error", Progress: 20},
			{Label: "Price change: dairy aisle", Meta: "All stores · P2", Status: "In progress", Color: "warning", Progress: 65},
			{Label: "Weekly deep clean", Meta: "Region North · P3", Status: "Done", Color: "success", Progress: 100, Done: true},
		},
	},
	"checklists": {
		Title: "Opening checklist",
		Stats: []mockStat{{"Stores done", "38/42", "success"}, {"Avg. time", "14m", "primary"}, {"Missed items", "3", "error"}},
		Rows: []mockRow{
			{Label: "Unlock security system", Meta: "Store #07", Status: "Done", Color: "success", Progress: 100, Done: true},
			{Label: "Inspect entrance", Meta: "Photo required", Status: "Done", Color: "success", Progress: 100, Done: true},
			{Label: "Check cold chain temperatures", Meta: "Store #07", Status: "Pending", Color: "warning", Progress: 0},
		},
		Mobile: []mockRow{
			{Label: "Unlock security system", Done: true},
			{Label: "Turn on lighting", Done: true},
			{Label: "Inspect entrance", Done: true},
			{Label: "Count register float"},
			{Label: "Check cold chain"},
		},
	},
	"audits": {
		Title: "Audit scores",
		Stats: []mockStat{{"Avg. score", "91%", "success"}, {"Audits this month", "64", "primary"}, {"Failed items", "17", "error"}},
		Rows: []mockRow{
			{Label: "Store #03 · Food safety", Meta: "Auditor: J. Ruiz", Status: "96%", Color: "success", Progress: 96},
			{Label: "Store #18 · Brand standards", Meta: "Auditor: A. Chen", Status: "82%", Color: "warning", Progress: 82},
			{Label: "Store #22 · Safety walk", Meta: "Auditor: M. Silva", Status: "71%", Color: "error", Progress: 71},
		},
	},
	"campaigns": {
		Title: "Spring promo rollout",
		Stats: []mockStat{{"Stores live", "35/42", "success"}, {"Awaiting photos", "5", "warning"}, {"Days left", "4", "primary"}},
		Rows: []mockRow{
			{Label: "Window signage", Meta: "All stores", Status: "92%", Color: "success", Progress: 92},
			{Label: "Endcap build", Meta: "Flagship stores", Status: "70%", Color: "warning", Progress: 70},
			{Label: "Shelf talkers", Meta: "Region South", Status: "40%", Color: "error", Progress: 40},
		},
		Mobile: []mockRow{
			{Label: "Install window decal", Done: true},
			{Label: "Build endcap", Done: true},
			{Label: "Upload photo proof"},
		},
	},
	"training": {
		Title: "Team training",
		Stats: []mockStat{{"Completion", "87%", "success"}, {"Courses", "24", "primary"}, {"Overdue", "9", "error"}},
		Rows: []mockRow{
			{Label: "Food safety basics", Meta: "Required · 15 min", Status: "94%", Color: "success", Progress: 94},
			{Label: "New POS walkthrough", Meta: "Required · 10 min", Status: "68%", Color: "warning", Progress: 68},
			{Label: "Customer service 101", Meta: "Optional · 20 min", Status: "45%", Color: "primary", Progress: 45},
		},
		Mobile: []mockRow{
			{Label: "Lesson 1: Handwashing", Done: true},
			{Label: "Lesson 2: Storage temps", Done: true},
			{Label: "Quiz"},
		},
	},
	"corrective-actions": {
		Title: "Corrective actions",
		Stats: []mockStat{{"Open", "14", "warning"}, {"Resolved this week", "31", "success"}, {"Escalated", "2", "error"}},
		Rows: []mockRow{
			{Label: "Fix broken freezer seal", Meta: "From audit · Store #09", Status: "Open", Color: "warning", Progress: 30},
			{Label: "Replace fire exit sign", Meta: "From audit · Store #14", Status: "Escalated", Color: "error", Progress: 10},
			{Label: "Re-label allergen shelf", Meta: "From audit · Store #02", Status: "Resolved", Color: "success", Progress: 100, Done: true},
		},
		Mobile: []mockRow{
			{Label: "Take before photo", Done: true},
			{Label: "Replace seal", Done: true},
			{Label: "Take after photo"},
		},
	},
	"gamification": {
		Title: "Store leaderboard",
		Stats: []mockStat{{"Points awarded", "12,480", "primary"}, {"Badges earned", "156", "secondary"}, {"Streak leaders", "8", "success"}},
		Rows: []mockRow{
			{Label: "Store #12 · Downtown", Meta: "2,340 pts", Status: "#1", Color: "success", Progress: 100},
			{Label: "Store #07 · Harbor", Meta: "2,115 pts", Status: "#2", Color: "primary", Progress: 90},
			{Label: "Store #21 · Midtown", Meta: "1,980 pts", Status: "#3", Color: "secondary", Progress: 85},
		},
	},
	"visual-merchandising": {
		Title: "Planogram compliance",
		Stats: []mockStat{{"Compliant", "89%", "success"}, {"Photos reviewed", "412", "primary"}, {"Needs rework", "11", "error"}},
		Rows: []mockRow{
			{Label: "Seasonal front table", Meta: "Store #05", Status: "Approved", Color: "success", Progress: 100, Done: true},
			{Label: "Beverage cooler facing", Meta: "Store #16", Status: "Review", Color: "warning", Progress: 60},
			{Label: "Checkout impulse bay", Meta: "Store #30", Status: "Rework", Color: "error", Progress: 25},
		},
	},
	"issue-tracking": {
		Title: "Store issues",
		Stats: []mockStat{{"Open issues", "23", "warning"}, {"Avg. resolution", "1.8d", "primary"}, {"Critical", "2", "error"}},
		Rows: []mockRow{
			{Label: "Leaking ceiling, aisle 4", Meta: "Maintenance · Store #11", Status: "Critical", Color: "error", Progress: 15},
			{Label: "Card reader offline", Meta: "IT · Store #19", Status: "In progress", Color: "warning", Progress: 55},
			{Label: "Parking lot light out", Meta: "Facilities · Store #04", Status: "Resolved", Color: "success", Progress: 100, Done: true},
		},
		Mobile: []mockRow{
			{Label: "Category: Maintenance", Done: true},
			{Label: "Photo attached", Done: true},
			{Label: "Submit report"},
		},
	},
}
