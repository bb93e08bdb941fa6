package mapper

import (
	"classroom-portal-fe/internal/dto"
	"classroom-portal-fe/internal/entity"
)

// previewLength is the card body preview cutoff, in characters.
const previewLength = 200

type QuestionMapper struct{}

func NewQuestionMapper() *QuestionMapper {
	return &QuestionMapper{}
}

func (m *QuestionMapper) ToCard(q *entity.Question) dto.QuestionCard {
	return dto.QuestionCard{
		Id:        q.Id,
		Title:     q.Title,
		Preview:   truncate(q.Body, previewLength),
		Upvotes:   q.Upvotes,
		Downvotes: q.Downvotes,
	}
}

func (m *QuestionMapper) ToCards(questions []entity.Question) []dto.QuestionCard {
	cards := make([]dto.QuestionCard, len(questions))
	for i := range questions {
		cards[i] = m.ToCard(&questions[i])
	}
	return cards
}

// truncate cuts on character boundaries of the original text. The cut happens
// before template escaping so an escape sequence can never be split.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
