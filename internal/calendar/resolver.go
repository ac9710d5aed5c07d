package calendar

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"

	"discord-calendar-bot/internal/models"
	"discord-calendar-bot/internal/store"
)

// IDPrefix marks a query as a literal event id ("##42").
const IDPrefix = "##"

// ErrInvalidID means the query used the id prefix but the rest was not an
// integer.
var ErrInvalidID = errors.New("invalid event id")

// Kind classifies a resolution result.
type Kind int

const (
	NotFound Kind = iota
	Single
	Ambiguous
	TooMany
)

// Resolution is the outcome of resolving a user query. Event is set for
// Single; Candidates for Ambiguous.
type Resolution struct {
	Kind       Kind
	Event      *models.Event
	Candidates []models.Event
}

// Resolver turns a free-form user query into zero, one or several
// events. The strategies form a strict priority chain: an id-prefixed
// query is resolved by id alone, a parseable date by exact date match,
// anything else by substring search over title and message. Result sets
// from different strategies are never merged.
type Resolver struct {
	events  *store.EventStore
	tooMany int
}

// NewResolver builds a resolver; tooMany is the largest result set still
// offered as a choice.
func NewResolver(events *store.EventStore, tooMany int) *Resolver {
	return &Resolver{events: events, tooMany: tooMany}
}

// Resolve classifies query against the guild's events.
func (r *Resolver) Resolve(ctx context.Context, query string, guildID int64) (Resolution, error) {
	if strings.HasPrefix(query, IDPrefix) {
		id, err := strconv.ParseUint(strings.TrimPrefix(query, IDPrefix), 10, 64)
		if err != nil {
			return Resolution{}, ErrInvalidID
		}
		event, err := r.events.GetByID(ctx, uint(id), guildID)
		if err != nil {
			return Resolution{}, err
		}
		if event == nil {
			return Resolution{Kind: NotFound}, nil
		}
		return Resolution{Kind: Single, Event: event}, nil
	}

	var (
		matches []models.Event
		err     error
	)
	if date, dateErr := ParseDate(query); dateErr == nil {
		matches, err = r.events.ByDate(ctx, guildID, date)
	} else {
		matches, err = r.events.SearchText(ctx, guildID, query)
	}
	if err != nil {
		return Resolution{}, err
	}

	switch {
	case len(matches) == 0:
		return Resolution{Kind: NotFound}, nil
	case len(matches) == 1:
		return Resolution{Kind: Single, Event: &matches[0]}, nil
	case len(matches) > r.tooMany:
		return Resolution{Kind: TooMany}, nil
	default:
		SortEvents(matches)
		return Resolution{Kind: Ambiguous, Candidates: matches}, nil
	}
}

// SortEvents orders events by date, then time with all-day entries
// first. Stable, so equal keys keep their incoming order. Databases
// disagree on where NULL times sort, so anything user-facing normalizes
// here instead of trusting store order.
func SortEvents(events []models.Event) {
	sort.SliceStable(events, func(i, j int) bool {
		if !events[i].Date.Equal(events[j].Date) {
			return events[i].Date.Before(events[j].Date)
		}
		ti, tj := events[i].Time, events[j].Time
		switch {
		case ti == nil && tj == nil:
			return false
		case ti == nil:
			return true
		case tj == nil:
			return false
		default:
			return *ti < *tj
		}
	})
}
