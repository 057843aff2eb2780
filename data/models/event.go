package models

// Event field order matches the events table column order; the reflection
// scan helpers depend on it.
type Event struct {
	ID          int64     `json:"id" db:"id" readOnly:"true"`
	UserID      int64     `validate:"required" json:"userid" db:"userid"`
	Name        string    `validate:"required,min=1,max=100" json:"eventname" db:"eventname"`
	Description string    `validate:"required,max=500" json:"eventdescription" db:"eventdescription"`
	Date        Date      `validate:"required" json:"eventdate" db:"eventdate"`
	DateTime    DateTime  `validate:"required" json:"eventdatetime" db:"eventdatetime"`
	Type        EventType `validate:"required" json:"eventtype" db:"eventtype"`
	Country     string    `json:"eventcountry" db:"eventcountry"`
	City        string    `json:"eventcity" db:"eventcity"`
	Place       string    `json:"eventplace" db:"eventplace"`
	Image       string    `json:"eventimage" db:"eventimage"`
	TicketPrice int64     `json:"eventticketprice" db:"eventticketprice"`
}

func (Event) TableName() string {
	return "events"
}

func (e Event) GetID() int64 {
	return e.ID
}

func (e Event) EmptySlice() interface{} {
	return &[]Event{}
}

// EventWithLikeStatus is a read-only projection produced by enrichment
// queries; it is never persisted.
type EventWithLikeStatus struct {
	Event
	Liked bool `json:"eventliked"`
}

// EventFilter constrains event list reads. Date is the raw request text; the
// query builder parses it with DateFormat and drops the constraint when the
// text does not parse.
type EventFilter struct {
	ID      *int64
	UserID  *int64
	Name    *string
	Date    *string
	Type    *EventType
	Country *string
	City    *string
	Place   *string
	Limit   *int
}

type EventUpdate struct {
	UserID      *int64     `json:"userid"`
	Name        *string    `json:"eventname"`
	Description *string    `json:"eventdescription"`
	Date        *Date      `json:"eventdate"`
	DateTime    *DateTime  `json:"eventdatetime"`
	Type        *EventType `json:"eventtype"`
	Country     *string    `json:"eventcountry"`
	City        *string    `json:"eventcity"`
	Place       *string    `json:"eventplace"`
	Image       *string    `json:"eventimage"`
	TicketPrice *int64     `json:"eventticketprice"`
}
