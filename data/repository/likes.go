package repository

import (
	"eventboard/data/models"
	"fmt"
)

// CreateLike records that userID liked eventID. The store's constraints are
// the single source of truth: a duplicate pair, a missing user, or a missing
// event all surface as classified errors from the insert itself.
func (sr *SqlRepo) CreateLike(userID, eventID int64) (models.Like, error) {
	l := models.Like{
		UserID:  userID,
		EventID: eventID,
	}

	var created models.Like
	if err := sr.create(l, &created); err != nil {
		return models.Like{}, classifyError(err)
	}
	return created, nil
}

// QueryLikes is the filtered like read: raw like rows, no event contents.
func (sr *SqlRepo) QueryLikes(f *models.LikeFilter) ([]models.Like, error) {
	var conds []condition
	var limit int
	if f != nil {
		conds = likeConditions(f)
		limit = sr.limitFor(f.Limit)
	} else {
		limit = sr.limitFor(nil)
	}

	query, vals := buildListQuery("likes", conds, limit)
	rows, err := sr.DB.Query(query, vals...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %v", err)
	}
	defer rows.Close()

	slice, err := models.ScanRowsToSliceOfModels(models.Like{}, rows, limit)
	if err != nil {
		return nil, err
	}
	return *(slice.(*[]models.Like)), nil
}

// DeleteLike removes a single like by its own id.
func (sr *SqlRepo) DeleteLike(id int64) (int64, error) {
	return sr.deleteByID("likes", id)
}

// DeleteLikesByUser removes every like the user has placed and reports how
// many went away.
func (sr *SqlRepo) DeleteLikesByUser(userID int64) (int64, error) {
	res, err := sr.DB.Exec("DELETE FROM likes WHERE user_id = $1", userID)
	if err != nil {
		return 0, fmt.Errorf("error deleting likes: %v", err)
	}
	return rowsAffected(res)
}

// EventLikedByUser is a pure predicate: one EXISTS round trip, no row
// contents. False covers pairs where either id is absent from the store.
func (sr *SqlRepo) EventLikedByUser(userID, eventID int64) (bool, error) {
	var liked bool
	err := sr.DB.QueryRow(
		"SELECT EXISTS (SELECT 1 FROM likes WHERE user_id = $1 AND event_id = $2)",
		userID, eventID,
	).Scan(&liked)
	if err != nil {
		return false, fmt.Errorf("error executing query: %v", err)
	}
	return liked, nil
}

// QueryLikedEvents returns every event the user has liked, resolved in a
// single join rather than a per-like fetch. Each row is tagged liked = true
// by construction.
func (sr *SqlRepo) QueryLikedEvents(userID int64) ([]models.EventWithLikeStatus, error) {
	rows, err := sr.DB.Query(
		"SELECT e.* FROM events e JOIN likes l ON l.event_id = e.id WHERE l.user_id = $1",
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %v", err)
	}
	defer rows.Close()

	// the join is unbounded, so no row count is known up front
	slice, err := models.ScanRowsToSliceOfModels(models.Event{}, rows, 0)
	if err != nil {
		return nil, err
	}

	events := *(slice.(*[]models.Event))
	liked := make([]models.EventWithLikeStatus, 0, len(events))
	for _, e := range events {
		liked = append(liked, models.EventWithLikeStatus{Event: e, Liked: true})
	}
	return liked, nil
}
