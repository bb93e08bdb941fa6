package mapper

import (
	"fmt"
	"time"

	"classroom-portal-fe/internal/dto"
	"classroom-portal-fe/internal/entity"
)

const postedAtLayout = "Jan 2, 2006 15:04"

type AnswerMapper struct{}

func NewAnswerMapper() *AnswerMapper {
	return &AnswerMapper{}
}

func (m *AnswerMapper) ToCard(a *entity.Answer) dto.AnswerCard {
	return dto.AnswerCard{
		Id:          a.Id,
		AuthorLabel: authorLabel(a),
		PostedAt:    time.Unix(int64(a.CreatedAt), 0).Format(postedAtLayout),
		Body:        a.Body,
		Upvotes:     a.Upvotes,
		Downvotes:   a.Downvotes,
	}
}

// FindAiAnswer returns the first answer authored by the ai role, or nil.
// At most one match is rendered; any further ai answers are ignored.
func (m *AnswerMapper) FindAiAnswer(answers []entity.Answer) *entity.Answer {
	for i := range answers {
		if answers[i].Role == entity.AnswerRoleAi {
			return &answers[i]
		}
	}
	return nil
}

// Partition splits answers into mentor and student card groups. Mentors
// always render before students, regardless of recency or votes; relative
// order within each group is preserved. Ai answers are excluded here since
// they get a dedicated slot.
func (m *AnswerMapper) Partition(answers []entity.Answer) (mentors, students []dto.AnswerCard) {
	for i := range answers {
		switch answers[i].Role {
		case entity.AnswerRoleMentor:
			mentors = append(mentors, m.ToCard(&answers[i]))
		case entity.AnswerRoleStudent:
			students = append(students, m.ToCard(&answers[i]))
		}
	}
	return mentors, students
}

func authorLabel(a *entity.Answer) string {
	switch a.Role {
	case entity.AnswerRoleMentor:
		return fmt.Sprintf("Mentor (User #%d)", a.UserId)
	default:
		return fmt.Sprintf("Student (User #%d)", a.UserId)
	}
}
