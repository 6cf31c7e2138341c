package repositories

import (
	"net/url"
	"strings"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// EntryFilter is the typed form of the loosely-typed filter query on
// entries. Nil/empty members contribute no condition; everything present
// is combined with AND, and the repository adds the owning-user condition
// on top.
type EntryFilter struct {
	Date      *time.Time
	Mood      string
	Completed []string
	Struggles []string
	NextSteps []string
	Tags      []string
	IsPublic  *bool
}

var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// ParseEntryFilter normalizes raw query values into an EntryFilter.
// List fields accept either repeated parameters or a single
// comma-delimited value; members are trimmed, empties dropped, and the
// result deduplicated preserving order. isPublic accepts only the
// literal strings "true"/"false" (any case). A date that parses to
// nothing still produces a condition, pinned to the zero time so it
// matches no record.
func ParseEntryFilter(query url.Values) EntryFilter {
	filter := EntryFilter{
		Mood:      query.Get("mood"),
		Completed: toList(query["completed"]),
		Struggles: toList(query["struggles"]),
		NextSteps: toList(query["nextSteps"]),
		Tags:      toList(query["tags"]),
		IsPublic:  parseBool(query.Get("isPublic")),
	}

	if raw := query.Get("date"); raw != "" {
		var date time.Time
		for _, layout := range dateLayouts {
			if parsed, err := time.Parse(layout, raw); err == nil {
				date = parsed
				break
			}
		}
		filter.Date = &date
	}

	return filter
}

// Scope applies the filter's conditions to a gorm query. List fields use
// the Postgres array-overlap operator, matching records whose field
// shares at least one member with the requested set.
func (f EntryFilter) Scope(tx *gorm.DB) *gorm.DB {
	if f.Date != nil {
		tx = tx.Where("date = ?", *f.Date)
	}
	if f.Mood != "" {
		tx = tx.Where("mood = ?", f.Mood)
	}
	if len(f.Completed) > 0 {
		tx = tx.Where("completed && ?", pq.StringArray(f.Completed))
	}
	if len(f.Struggles) > 0 {
		tx = tx.Where("struggles && ?", pq.StringArray(f.Struggles))
	}
	if len(f.NextSteps) > 0 {
		tx = tx.Where("next_steps && ?", pq.StringArray(f.NextSteps))
	}
	if len(f.Tags) > 0 {
		tx = tx.Where("tags && ?", pq.StringArray(f.Tags))
	}
	if f.IsPublic != nil {
		tx = tx.Where("is_public = ?", *f.IsPublic)
	}
	return tx
}

func toList(values []string) []string {
	if len(values) == 0 {
		return nil
	}

	members := values
	if len(values) == 1 {
		members = strings.Split(values[0], ",")
	}

	seen := make(map[string]bool, len(members))
	var out []string
	for _, member := range members {
		member = strings.TrimSpace(member)
		if member == "" || seen[member] {
			continue
		}
		seen[member] = true
		out = append(out, member)
	}
	return out
}

func parseBool(value string) *bool {
	switch strings.ToLower(value) {
	case "true":
		v := true
		return &v
	case "false":
		v := false
		return &v
	}
	return nil
}
