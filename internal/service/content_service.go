package service

// ContentService 提供实习周程表与学习视频库，内容为内置静态数据
type ContentService struct{}

func NewContentService() *ContentService {
	return &ContentService{}
}

type ScheduleEvent struct {
	Time     string `json:"time"`
	Activity string `json:"activity"`
	Type     string `json:"type"` // meeting / training / work
}

type ScheduleDay struct {
	ID     int             `json:"id"`
	Day    string          `json:"day"`
	Events []ScheduleEvent `json:"events"`
}

type Video struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Duration    string `json:"duration"`
}

var weeklySchedule = []ScheduleDay{
	{
		ID:  1,
		Day: "Monday",
		Events: []ScheduleEvent{
			{Time: "09:00 AM", Activity: "Team Standup Meeting", Type: "meeting"},
			{Time: "10:00 AM", Activity: "Development Tasks", Type: "work"},
			{Time: "02:00 PM", Activity: "Code Review Session", Type: "meeting"},
		},
	},
	{
		ID:  2,
		Day: "Tuesday",
		Events: []ScheduleEvent{
			{Time: "09:00 AM", Activity: "Technical Training", Type: "training"},
			{Time: "11:00 AM", Activity: "Project Work", Type: "work"},
			{Time: "03:00 PM", Activity: "Mentor Session", Type: "meeting"},
		},
	},
	{
		ID:  3,
		Day: "Wednesday",
		Events: []ScheduleEvent{
			{Time: "09:00 AM", Activity: "Development Tasks", Type: "work"},
			{Time: "01:00 PM", Activity: "Testing & QA", Type: "work"},
			{Time: "04:00 PM", Activity: "Team Sync", Type: "meeting"},
		},
	},
	{
		ID:  4,
		Day: "Thursday",
		Events: []ScheduleEvent{
			{Time: "09:00 AM", Activity: "Sprint Planning", Type: "meeting"},
			{Time: "10:30 AM", Activity: "Development Tasks", Type: "work"},
			{Time: "03:00 PM", Activity: "Learning Session", Type: "training"},
		},
	},
	{
		ID:  5,
		Day: "Friday",
		Events: []ScheduleEvent{
			{Time: "09:00 AM", Activity: "Project Work", Type: "work"},
			{Time: "02:00 PM", Activity: "Sprint Review", Type: "meeting"},
			{Time: "04:00 PM", Activity: "Weekly Retrospective", Type: "meeting"},
		},
	},
}

var videoLibrary = []Video{
	{ID: 1, Title: "Introduction to Web Development", Description: "Learn the basics of HTML, CSS, and JavaScript", URL: "https://www.youtube.com/embed/UB1O30fR-EE", Duration: "45 min"},
	{ID: 2, Title: "React.js Fundamentals", Description: "Complete React tutorial for beginners", URL: "https://www.youtube.com/embed/SqcY0GlETPk", Duration: "2 hours"},
	{ID: 3, Title: "JavaScript ES6+ Features", Description: "Modern JavaScript features and best practices", URL: "https://www.youtube.com/embed/NCwa_xi0Uuc", Duration: "1 hour"},
	{ID: 4, Title: "Git and GitHub Tutorial", Description: "Version control and collaboration", URL: "https://www.youtube.com/embed/RGOj5yH7evk", Duration: "30 min"},
	{ID: 5, Title: "Node.js Backend Development", Description: "Building RESTful APIs with Node.js", URL: "https://www.youtube.com/embed/Oe421EPjeBE", Duration: "1.5 hours"},
	{ID: 6, Title: "Database Design Basics", Description: "SQL and database fundamentals", URL: "https://www.youtube.com/embed/HXV3zeQKqGY", Duration: "1 hour"},
}

func (s *ContentService) WeeklySchedule() []ScheduleDay {
	return weeklySchedule
}

func (s *ContentService) VideoLibrary() []Video {
	return videoLibrary
}
