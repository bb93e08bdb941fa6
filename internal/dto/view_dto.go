package dto

// View models handed to the HTML templates. All user-supplied text in these
// structs is raw; escaping happens at render time via html/template.

type SessionView struct {
	UserId   int
	UserName string
	SignedIn bool
}

type QuestionCard struct {
	Id        int
	Title     string
	Preview   string // first 200 characters of the raw body
	Upvotes   int
	Downvotes int
}

type AnswerCard struct {
	Id          int
	AuthorLabel string // e.g. "Mentor (User #3)"
	PostedAt    string // formatted from epoch seconds
	Body        string
	Upvotes     int
	Downvotes   int
}

type IndexPage struct {
	LoginMsg    string
	RegisterMsg string
	RegisterOk  bool
}

type PortalPage struct {
	Session SessionView
	Top     []QuestionCard
	Recent  []QuestionCard
	PostMsg string
	PostOk  bool
}

type DetailPage struct {
	Session    SessionView
	QuestionId int
	Title      string
	Body       string
	AiAnswer   string // placeholder text when no ai answer exists
	Mentors    []AnswerCard
	Students   []AnswerCard
	PostMsg    string
	PostOk     bool
}

type ProfileQuestionRow struct {
	Id     int
	Title  string
	Flags  int
	Hidden bool
}

type ProfilePage struct {
	Session        SessionView
	Name           string
	Email          string
	Questions      []ProfileQuestionRow
	QuestionsCount int
	Answers        int
	FlagsTotal     int
}

type ErrorPage struct {
	Message string
	BackURL string
}
