package entity

type AnswerRole string

const (
	AnswerRoleAi      AnswerRole = "ai"
	AnswerRoleMentor  AnswerRole = "mentor"
	AnswerRoleStudent AnswerRole = "student"
)

// TargetType discriminates what a vote or flag command applies to.
type TargetType string

const (
	TargetQuestion TargetType = "question"
	TargetAnswer   TargetType = "answer"
)

type Answer struct {
	Id         int        `json:"id"`
	QuestionId int        `json:"question_id"`
	UserId     int        `json:"user_id"`
	Role       AnswerRole `json:"role"`
	Body       string     `json:"body"`
	Flags      int        `json:"flags"`
	Hidden     bool       `json:"hidden"`
	Upvotes    int        `json:"upvotes"`
	Downvotes  int        `json:"downvotes"`
	CreatedAt  float64    `json:"created_at"` // epoch seconds
}
