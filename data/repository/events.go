package repository

import (
	"database/sql"
	"errors"
	"eventboard/data/models"
	"fmt"
)

// CreateEvent inserts an event owned by e.UserID. A nonexistent owner
// surfaces as ErrNonExistentUser via the foreign key, not a pre-check.
func (sr *SqlRepo) CreateEvent(e models.Event) (models.Event, error) {
	var created models.Event
	if err := sr.create(e, &created); err != nil {
		return models.Event{}, classifyError(err)
	}
	return created, nil
}

func (sr *SqlRepo) GetEventByID(id int64) (models.Event, error) {
	model, err := sr.GetModelByID(&models.Event{}, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Event{}, ErrNotFound
		}
		return models.Event{}, err
	}

	event, ok := model.(*models.Event)
	if !ok {
		return models.Event{}, fmt.Errorf("type assertion to Event failed")
	}

	return *event, nil
}

// QueryEvents is the anonymous read path: filtered events with no like
// information attached.
func (sr *SqlRepo) QueryEvents(f *models.EventFilter) ([]models.Event, error) {
	var conds []condition
	var limit int
	if f != nil {
		conds = eventConditions(f)
		limit = sr.limitFor(f.Limit)
	} else {
		limit = sr.limitFor(nil)
	}

	query, vals := buildListQuery("events", conds, limit)
	rows, err := sr.DB.Query(query, vals...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %v", err)
	}
	defer rows.Close()

	slice, err := models.ScanRowsToSliceOfModels(models.Event{}, rows, limit)
	if err != nil {
		return nil, err
	}
	return *(slice.(*[]models.Event)), nil
}

// QueryEventsForViewer runs the same filtered read and then asks, per event,
// whether the viewer has liked it. The existence checks are separate
// statements and are not wrapped in a transaction with the read; a like
// landing between the two can be observed.
func (sr *SqlRepo) QueryEventsForViewer(f *models.EventFilter, viewerID int64) ([]models.EventWithLikeStatus, error) {
	events, err := sr.QueryEvents(f)
	if err != nil {
		return nil, err
	}

	enriched := make([]models.EventWithLikeStatus, 0, len(events))
	for _, e := range events {
		liked, err := sr.EventLikedByUser(viewerID, e.ID)
		if err != nil {
			return nil, err
		}
		enriched = append(enriched, models.EventWithLikeStatus{Event: e, Liked: liked})
	}
	return enriched, nil
}

func (sr *SqlRepo) UpdateEvent(id int64, upd models.EventUpdate) (models.Event, error) {
	var sets []condition
	if upd.UserID != nil {
		sets = append(sets, condition{"userid", *upd.UserID})
	}
	if upd.Name != nil {
		sets = append(sets, condition{"eventname", *upd.Name})
	}
	if upd.Description != nil {
		sets = append(sets, condition{"eventdescription", *upd.Description})
	}
	if upd.Date != nil {
		sets = append(sets, condition{"eventdate", *upd.Date})
	}
	if upd.DateTime != nil {
		sets = append(sets, condition{"eventdatetime", *upd.DateTime})
	}
	if upd.Type != nil {
		sets = append(sets, condition{"eventtype", *upd.Type})
	}
	if upd.Country != nil {
		sets = append(sets, condition{"eventcountry", *upd.Country})
	}
	if upd.City != nil {
		sets = append(sets, condition{"eventcity", *upd.City})
	}
	if upd.Place != nil {
		sets = append(sets, condition{"eventplace", *upd.Place})
	}
	if upd.Image != nil {
		sets = append(sets, condition{"eventimage", *upd.Image})
	}
	if upd.TicketPrice != nil {
		sets = append(sets, condition{"eventticketprice", *upd.TicketPrice})
	}

	if len(sets) == 0 {
		return sr.GetEventByID(id)
	}

	query, vals := buildUpdateQuery("events", sets, id)
	var updated models.Event
	row := sr.DB.QueryRow(query, vals...)
	if err := models.ScanRowToModel(&updated, row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Event{}, ErrNotFound
		}
		return models.Event{}, classifyError(err)
	}
	return updated, nil
}

func (sr *SqlRepo) DeleteEvent(id int64) (int64, error) {
	return sr.deleteByID("events", id)
}
