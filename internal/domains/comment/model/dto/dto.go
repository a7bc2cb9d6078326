package dto

import (
	"time"

	"shareit/internal/domains/comment/model"
	"shareit/shared/constant"
)

type CreateCommentRequest struct {
	Text string `json:"text" validate:"required,max=1000"`
}

func (c *CreateCommentRequest) ToModel(itemID, authorID int64, now time.Time) model.Comment {
	return model.Comment{
		Text:     c.Text,
		ItemID:   itemID,
		AuthorID: authorID,
		Created:  now,
	}
}

type CommentResponse struct {
	ID         int64  `json:"id"`
	Text       string `json:"text"`
	AuthorName string `json:"authorName"`
	Created    string `json:"created"`
}

func (r *CommentResponse) FromModel(comment model.Comment) {
	r.ID = comment.ID
	r.Text = comment.Text
	r.AuthorName = comment.AuthorName
	r.Created = comment.Created.Format(constant.DateFormat)
}

func CommentsFromModels(comments []model.Comment) []CommentResponse {
	res := make([]CommentResponse, len(comments))
	for i, comment := range comments {
		res[i].FromModel(comment)
	}

	return res
}
