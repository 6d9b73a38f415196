package models

import (
	"database/sql/driver"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Lines is an ordered list of non-empty text lines, stored as a JSON array.
// Older rows stored the same data as newline-joined plain text; Scan accepts
// both encodings so the rest of the application only ever sees the canonical
// slice form.
type Lines []string

// Value implements the driver.Valuer interface
func (l Lines) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	return json.Marshal(l)
}

// Scan implements the sql.Scanner interface
func (l *Lines) Scan(value interface{}) error {
	if value == nil {
		*l = Lines{}
		return nil
	}

	var raw string
	switch v := value.(type) {
	case []byte:
		raw = string(v)
	case string:
		raw = v
	default:
		*l = Lines{}
		return nil
	}

	var items []string
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		// Legacy rows hold newline-joined text rather than a JSON array.
		items = strings.Split(raw, "\n")
	}

	*l = SplitLines(strings.Join(items, "\n"))
	return nil
}

// SplitLines splits multiline text into trimmed, non-empty lines,
// preserving order.
func SplitLines(value string) Lines {
	out := Lines{}
	for _, line := range strings.Split(value, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

// Recipe is the sole persisted entity: one row per shared recipe.
// Optional free-text fields are nil when blank, never the empty string.
type Recipe struct {
	ID          uint       `gorm:"primarykey"`
	CreatedAt   time.Time  `gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime"`
	Title       string     `gorm:"size:255;not null"`
	Description *string    `gorm:"type:text"`
	ImageURL    *string    `gorm:"size:255"`
	Time        *string    `gorm:"size:50"`
	Difficulty  *string    `gorm:"size:50"`
	Calories    *string    `gorm:"size:50"`
	Author      *string    `gorm:"size:100"`
	Tag         *string    `gorm:"size:50"`
	Servings    *string    `gorm:"size:50"`
	Ingredients Lines      `gorm:"type:text;not null;default:'[]'"`
	Steps       Lines      `gorm:"type:text;not null;default:'[]'"`
	Likes       string     `gorm:"size:50"`
	UserID      *uuid.UUID `gorm:"type:uuid;index"`
}

// LikesCount coerces the textual likes column to a number. Legacy values
// such as "1.2k" or an empty column count as zero.
func (r *Recipe) LikesCount() int {
	n, err := strconv.Atoi(strings.TrimSpace(r.Likes))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// OwnedBy reports whether the given user owns this recipe. It is the single
// authorization predicate consulted by update, delete and the edit page; a
// false answer is always surfaced as not-found, never as forbidden.
func (r *Recipe) OwnedBy(userID uuid.UUID) bool {
	return r.UserID != nil && *r.UserID == userID
}
