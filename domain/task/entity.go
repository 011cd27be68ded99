package task

import (
	"strings"
	"time"
)

// Color is a palette token selected for a task card.
type Color string

const (
	ColorPink   Color = "pink"
	ColorPurple Color = "purple"
	ColorBlue   Color = "blue"
	ColorGreen  Color = "green"
	ColorYellow Color = "yellow"
	ColorOrange Color = "orange"
)

// DefaultColor is the first palette entry, used for new tasks.
const DefaultColor = ColorPink

var palette = []Color{
	ColorPink,
	ColorPurple,
	ColorBlue,
	ColorGreen,
	ColorYellow,
	ColorOrange,
}

// Palette returns the fixed, ordered set of selectable task colors.
func Palette() []Color {
	out := make([]Color, len(palette))
	copy(out, palette)
	return out
}

// Valid reports whether c is a palette member.
func (c Color) Valid() bool {
	for _, p := range palette {
		if p == c {
			return true
		}
	}
	return false
}

// Task is the core domain entity representing a todo item.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Reminder    *time.Time `json:"reminder,omitempty"`
	Tags        []string   `json:"tags"`
	Color       Color      `json:"color"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Clone returns a deep copy of the task.
func (t Task) Clone() Task {
	out := t
	out.Tags = append(make([]string, 0, len(t.Tags)), t.Tags...)
	if t.Reminder != nil {
		r := *t.Reminder
		out.Reminder = &r
	}
	return out
}

// Draft is a task's field set before an ID and creation time are assigned.
type Draft struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Reminder    *time.Time `json:"reminder,omitempty"`
	Tags        []string   `json:"tags"`
	Color       Color      `json:"color"`
	Completed   bool       `json:"completed"`
}

// HasTitle reports whether the draft carries a non-blank title.
func (d Draft) HasTitle() bool {
	return strings.TrimSpace(d.Title) != ""
}

// Patch replaces every mutable field with the draft's values.
// An absent reminder clears the stored one.
func (d Draft) Patch() Patch {
	title := d.Title
	description := d.Description
	tags := append(make([]string, 0, len(d.Tags)), d.Tags...)
	color := d.Color
	completed := d.Completed

	p := Patch{
		Title:       &title,
		Description: &description,
		Tags:        &tags,
		Color:       &color,
		Completed:   &completed,
	}
	if d.Reminder != nil {
		r := *d.Reminder
		p.Reminder = &r
	} else {
		p.ClearReminder = true
	}
	return p
}

// Patch is a partial update. Nil fields are left unchanged.
type Patch struct {
	Title         *string    `json:"title,omitempty"`
	Description   *string    `json:"description,omitempty"`
	Reminder      *time.Time `json:"reminder,omitempty"`
	ClearReminder bool       `json:"clear_reminder,omitempty"`
	Tags          *[]string  `json:"tags,omitempty"`
	Color         *Color     `json:"color,omitempty"`
	Completed     *bool      `json:"completed,omitempty"`
}

// Fields lists the names of the fields the patch sets.
func (p Patch) Fields() []string {
	var fields []string
	if p.Title != nil {
		fields = append(fields, "title")
	}
	if p.Description != nil {
		fields = append(fields, "description")
	}
	if p.Reminder != nil || p.ClearReminder {
		fields = append(fields, "reminder")
	}
	if p.Tags != nil {
		fields = append(fields, "tags")
	}
	if p.Color != nil {
		fields = append(fields, "color")
	}
	if p.Completed != nil {
		fields = append(fields, "completed")
	}
	return fields
}

// Apply merges the patch into t and returns the result. ID and CreatedAt are
// never touched; a blank title or an unknown color is ignored.
func (p Patch) Apply(t Task) Task {
	out := t.Clone()
	if p.Title != nil {
		if title := strings.TrimSpace(*p.Title); title != "" {
			out.Title = title
		}
	}
	if p.Description != nil {
		out.Description = strings.TrimSpace(*p.Description)
	}
	if p.ClearReminder {
		out.Reminder = nil
	}
	if p.Reminder != nil {
		r := *p.Reminder
		out.Reminder = &r
	}
	if p.Tags != nil {
		out.Tags = NormalizeTags(*p.Tags)
	}
	if p.Color != nil && p.Color.Valid() {
		out.Color = *p.Color
	}
	if p.Completed != nil {
		out.Completed = *p.Completed
	}
	return out
}
