package model

import "inn/shared/model"

const (
	TableName  = "reviews"
	EntityName = "review"

	FieldID     = "id"
	FieldUserID = "user_id"
	FieldRoomID = "room_id"
	FieldRating = "rating"

	MinRating = 1
	MaxRating = 5
)

type Review struct {
	ID      string `db:"id"`
	UserID  string `db:"user_id"`
	RoomID  string `db:"room_id"`
	Rating  int    `db:"rating"`
	Comment string `db:"comment"`
	model.Metadata
}
