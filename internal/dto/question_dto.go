package dto

import "classroom-portal-fe/internal/entity"

type AskRequest struct {
	Title  string `json:"title" form:"title" validate:"required"`
	Body   string `json:"body" form:"body"`
	UserId int    `json:"user_id" form:"-"`
}

// VoteRequest and FlagRequest are commands, not stored entities. The frontend
// never computes the resulting tally; it re-fetches after the command lands.
type VoteRequest struct {
	TargetType entity.TargetType `json:"target_type" form:"target_type" validate:"required,oneof=question answer"`
	TargetId   int               `json:"target_id" form:"target_id" validate:"required"`
	Delta      int               `json:"delta" form:"delta" validate:"required,oneof=-1 1"`
}

type FlagRequest struct {
	TargetType entity.TargetType `json:"target_type" form:"target_type" validate:"required,oneof=question answer"`
	TargetId   int               `json:"target_id" form:"target_id" validate:"required"`
}

type QuestionDetailResponse struct {
	Question entity.Question `json:"question"`
	Answers  []entity.Answer `json:"answers"`
}
