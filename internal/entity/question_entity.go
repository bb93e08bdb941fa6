package entity

// Question mirrors the backend representation. The frontend never mutates it
// directly; vote and flag commands go through the backend and the question is
// re-fetched.
type Question struct {
	Id        int     `json:"id"`
	Title     string  `json:"title"`
	Body      string  `json:"body"`
	UserId    int     `json:"user_id"`
	Flags     int     `json:"flags"`
	Hidden    bool    `json:"hidden"`
	Upvotes   int     `json:"upvotes"`
	Downvotes int     `json:"downvotes"`
	CreatedAt float64 `json:"created_at"` // epoch seconds, fractional on the wire
}
