package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"classroom-portal-fe/internal/entity"
)

func TestPartitionOrdering(t *testing.T) {
	m := NewAnswerMapper()

	answers := []entity.Answer{
		{Id: 1, Role: entity.AnswerRoleStudent, UserId: 10},
		{Id: 2, Role: entity.AnswerRoleMentor, UserId: 20},
		{Id: 3, Role: entity.AnswerRoleAi},
		{Id: 4, Role: entity.AnswerRoleStudent, UserId: 11},
	}

	mentors, students := m.Partition(answers)

	require.Len(t, mentors, 1)
	require.Len(t, students, 2)
	assert.Equal(t, 2, mentors[0].Id)
	// relative order within the group is preserved
	assert.Equal(t, 1, students[0].Id)
	assert.Equal(t, 4, students[1].Id)
}

func TestFindAiAnswer(t *testing.T) {
	m := NewAnswerMapper()

	t.Run("first ai answer wins", func(t *testing.T) {
		answers := []entity.Answer{
			{Id: 1, Role: entity.AnswerRoleStudent},
			{Id: 2, Role: entity.AnswerRoleAi, Body: "from the model"},
			{Id: 3, Role: entity.AnswerRoleAi, Body: "ignored"},
		}
		ai := m.FindAiAnswer(answers)
		require.NotNil(t, ai)
		assert.Equal(t, 2, ai.Id)
	})

	t.Run("no ai answer", func(t *testing.T) {
		answers := []entity.Answer{{Id: 1, Role: entity.AnswerRoleMentor}}
		assert.Nil(t, m.FindAiAnswer(answers))
	})
}

func TestToCardLabelsAndTimestamp(t *testing.T) {
	m := NewAnswerMapper()

	mentor := m.ToCard(&entity.Answer{Id: 1, Role: entity.AnswerRoleMentor, UserId: 3, CreatedAt: 1700000000})
	student := m.ToCard(&entity.Answer{Id: 2, Role: entity.AnswerRoleStudent, UserId: 4, CreatedAt: 1700000000.9})

	assert.Equal(t, "Mentor (User #3)", mentor.AuthorLabel)
	assert.Equal(t, "Student (User #4)", student.AuthorLabel)
	assert.NotEmpty(t, mentor.PostedAt)
	// fractional epoch seconds are floored to the same instant
	assert.Equal(t, mentor.PostedAt, student.PostedAt)
}
