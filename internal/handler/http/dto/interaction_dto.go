package dto

// ReactRequest is the body of a post reaction.
type ReactRequest struct {
	Reaction string `json:"reaction" binding:"required,reaction"`
}
