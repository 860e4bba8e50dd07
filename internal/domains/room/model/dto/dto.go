package dto

import (
	"inn/internal/domains/room/model"
	"inn/shared"
	gDto "inn/shared/dto"
	gModel "inn/shared/model"
	"inn/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	RoomNumber  string  `json:"room_number" validate:"required,max=20"`
	RoomType    string  `json:"room_type"   validate:"required,oneof=Single Double Deluxe Suite"`
	Price       float64 `json:"price"       validate:"required,gt=0"`
	Status      string  `json:"status"      validate:"omitempty,oneof=Available Occupied Maintenance"`
	Description string  `json:"description" validate:"omitempty"`
	ImageURL    string  `json:"image_url"   validate:"omitempty,url"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	status := model.RoomStatusAvailable
	if c.Status != "" {
		status = model.RoomStatus(c.Status)
	}

	return model.Room{
		ID:          uuid.NewString(),
		RoomNumber:  c.RoomNumber,
		RoomType:    model.RoomType(c.RoomType),
		Price:       c.Price,
		Status:      status,
		Description: c.Description,
		ImageURL:    c.ImageURL,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	RoomNumber  string   `db:"room_number" json:"room_number" validate:"omitempty,max=20"`
	RoomType    string   `db:"room_type"   json:"room_type"   validate:"omitempty,oneof=Single Double Deluxe Suite"`
	Price       *float64 `db:"price"       json:"price"       validate:"omitempty,gt=0"`
	Status      string   `db:"status"      json:"status"      validate:"omitempty,oneof=Available Occupied Maintenance"`
	Description string   `db:"description" json:"description" validate:"omitempty"`
	ImageURL    string   `db:"image_url"   json:"image_url"   validate:"omitempty,url"`
}

// AvailableRoomsRequest filters the availability search. The date range is
// optional but must be supplied as a whole.
type AvailableRoomsRequest struct {
	RoomType string  `json:"room_type" validate:"omitempty,oneof=Single Double Deluxe Suite"`
	MaxPrice float64 `json:"max_price" validate:"omitempty,gt=0"`
	CheckIn  string  `json:"check_in"  validate:"omitempty,dateonly,required_with=CheckOut"`
	CheckOut string  `json:"check_out" validate:"omitempty,dateonly,required_with=CheckIn"`
}

type RoomResponse struct {
	ID          string  `json:"id"`
	RoomNumber  string  `json:"room_number"`
	RoomType    string  `json:"room_type"`
	Price       float64 `json:"price"`
	Status      string  `json:"status"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.RoomNumber = model.RoomNumber
	r.RoomType = string(model.RoomType)
	r.Price = model.Price
	r.Status = string(model.Status)
	r.Description = model.Description
	r.ImageURL = model.ImageURL
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}

type AvailableRoomsResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

func (r *AvailableRoomsResponse) FromModels(models []model.Room) {
	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
