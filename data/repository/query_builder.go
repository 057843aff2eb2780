package repository

import (
	"eventboard/data/models"
	"fmt"
	"log"
	"strings"
	"time"
)

// defaultQueryLimit bounds list reads when neither the caller nor the repo
// configuration supplies a limit.
const defaultQueryLimit = 5

// condition is one populated filter field: an equality constraint against a
// single column.
type condition struct {
	column string
	value  interface{}
}

// buildListQuery constructs a formatted and parameterized single-table read
// from the given conditions. Every condition is ANDed; the limit is always
// applied. It returns the finished sql string and the values to be passed
// alongside the query. No explicit ordering is applied; results come back in
// database order.
func buildListQuery(table string, conds []condition, limit int) (string, []interface{}) {
	whereClauseParts := make([]string, 0, len(conds))
	values := make([]interface{}, 0, len(conds)+1)
	phIndex := 1

	for _, c := range conds {
		whereClauseParts = append(whereClauseParts, fmt.Sprintf("%s = $%d", c.column, phIndex))
		values = append(values, c.value)
		phIndex++
	}

	query := fmt.Sprintf("SELECT * FROM %s", table)
	if len(whereClauseParts) > 0 {
		query += " WHERE " + strings.Join(whereClauseParts, " AND ")
	}

	query += fmt.Sprintf(" LIMIT $%d", phIndex)
	values = append(values, limit)

	return query, values
}

// limitFor resolves the row bound: the caller-supplied limit when present,
// otherwise the repo's configured default.
func (sr *SqlRepo) limitFor(requested *int) int {
	if requested != nil && *requested > 0 {
		return *requested
	}
	if sr.DefaultLimit > 0 {
		return sr.DefaultLimit
	}
	return defaultQueryLimit
}

func userConditions(f *models.UserFilter) []condition {
	var conds []condition
	if f.ID != nil {
		conds = append(conds, condition{"id", *f.ID})
	}
	if f.Username != nil {
		conds = append(conds, condition{"username", *f.Username})
	}
	if f.Email != nil {
		conds = append(conds, condition{"email", *f.Email})
	}
	return conds
}

// eventConditions translates an event filter. A date value that does not
// parse as 2006-01-02 is dropped with a diagnostic and the remaining
// constraints still apply; the read degrades instead of failing.
func eventConditions(f *models.EventFilter) []condition {
	var conds []condition
	if f.ID != nil {
		conds = append(conds, condition{"id", *f.ID})
	}
	if f.UserID != nil {
		conds = append(conds, condition{"userid", *f.UserID})
	}
	if f.Name != nil {
		conds = append(conds, condition{"eventname", *f.Name})
	}
	if f.Date != nil {
		if parsed, err := time.Parse(models.DateFormat, *f.Date); err != nil {
			log.Printf("dropping eventdate filter %q: %v", *f.Date, err)
		} else {
			conds = append(conds, condition{"eventdate", parsed})
		}
	}
	if f.Type != nil {
		conds = append(conds, condition{"eventtype", *f.Type})
	}
	if f.Country != nil {
		conds = append(conds, condition{"eventcountry", *f.Country})
	}
	if f.City != nil {
		conds = append(conds, condition{"eventcity", *f.City})
	}
	if f.Place != nil {
		conds = append(conds, condition{"eventplace", *f.Place})
	}
	return conds
}

func likeConditions(f *models.LikeFilter) []condition {
	var conds []condition
	if f.ID != nil {
		conds = append(conds, condition{"id", *f.ID})
	}
	if f.UserID != nil {
		conds = append(conds, condition{"user_id", *f.UserID})
	}
	if f.EventID != nil {
		conds = append(conds, condition{"event_id", *f.EventID})
	}
	return conds
}
