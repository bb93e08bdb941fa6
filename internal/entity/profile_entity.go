package entity

type ProfileQuestion struct {
	Id     int    `json:"id"`
	Title  string `json:"title"`
	Flags  int    `json:"flags"`
	Hidden bool   `json:"hidden"`
}

// Profile is the backend's per-user summary.
type Profile struct {
	Name           string            `json:"name"`
	Email          string            `json:"email"`
	Questions      []ProfileQuestion `json:"questions"`
	Answers        int               `json:"answers"`
	FlagsTotal     int               `json:"flags_total"`
	QuestionsCount int               `json:"questions_count"`
}
