package dto

import "classroom-portal-fe/internal/entity"

type AnswerRequest struct {
	QuestionId int               `json:"question_id" form:"question_id" validate:"required"`
	Body       string            `json:"body" form:"body" validate:"required"`
	UserId     int               `json:"user_id" form:"-"`
	Role       entity.AnswerRole `json:"role" form:"role" validate:"required,oneof=student mentor"`
}
