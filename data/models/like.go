package models

// Like records that a user liked an event. The (user, event) pair is unique;
// a second like for the same pair is rejected by the store.
type Like struct {
	ID      int64 `json:"id" db:"id" readOnly:"true"`
	UserID  int64 `validate:"required" json:"user_id" db:"user_id"`
	EventID int64 `validate:"required" json:"event_id" db:"event_id"`
}

func (Like) TableName() string {
	return "likes"
}

func (l Like) GetID() int64 {
	return l.ID
}

func (l Like) EmptySlice() interface{} {
	return &[]Like{}
}

type LikeFilter struct {
	ID      *int64
	UserID  *int64
	EventID *int64
	Limit   *int
}
