package models

// User's Hash column never leaves the process; it is excluded from JSON
// entirely.
type User struct {
	ID       int64   `json:"id" db:"id" readOnly:"true"`
	Username string  `validate:"required,min=1,max=60" json:"username" db:"username"`
	Email    string  `validate:"required,email" json:"email" db:"email"`
	Image    *string `json:"image" db:"image"`
	Hash     string  `json:"-" db:"hash"`
}

func (User) TableName() string {
	return "users"
}

func (u User) GetID() int64 {
	return u.ID
}

func (u User) EmptySlice() interface{} {
	return &[]User{}
}

// UserFilter is a pure filter specification: every field is independently
// optional and a nil filter means the default unfiltered read.
type UserFilter struct {
	ID       *int64
	Username *string
	Email    *string
	Limit    *int
}

// UserUpdate carries the fields a caller may change. Password is deliberately
// absent; credential changes do not go through the update path.
type UserUpdate struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Image    *string `json:"image"`
}
