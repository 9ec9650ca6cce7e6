package domain

import "strings"

// Color is the tag a user attaches to a note for visual grouping.
type Color string

const (
	ColorDefault Color = "default"
	ColorRed     Color = "red"
	ColorOrange  Color = "orange"
	ColorYellow  Color = "yellow"
	ColorGreen   Color = "green"
	ColorBlue    Color = "blue"
	ColorPurple  Color = "purple"
	ColorPink    Color = "pink"
)

// Palette lists every color a note may carry, in display order.
var Palette = []Color{
	ColorDefault, ColorRed, ColorOrange, ColorYellow,
	ColorGreen, ColorBlue, ColorPurple, ColorPink,
}

func (c Color) String() string { return string(c) }

func (c Color) IsValid() bool {
	switch c {
	case ColorDefault, ColorRed, ColorOrange, ColorYellow,
		ColorGreen, ColorBlue, ColorPurple, ColorPink:
		return true
	}
	return false
}

// ParseColor normalizes s into a Color. An empty string yields ColorDefault.
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ColorDefault, nil
	}
	c := Color(s)
	if !c.IsValid() {
		return "", NewValidationError("color", "unknown color")
	}
	return c, nil
}

// View is one of the three mutually exclusive partitions a note belongs to.
type View string

const (
	ViewActive   View = "active"
	ViewArchived View = "archived"
	ViewTrash    View = "trash"
)

func (v View) String() string { return string(v) }

func (v View) IsValid() bool {
	switch v {
	case ViewActive, ViewArchived, ViewTrash:
		return true
	}
	return false
}

// ParseView parses a view name. An empty string yields ViewActive.
func ParseView(s string) (View, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "":
		return ViewActive, nil
	case "trashed":
		return ViewTrash, nil
	}
	v := View(s)
	if !v.IsValid() {
		return "", NewValidationError("view", "must be one of active, archived, trash")
	}
	return v, nil
}

// ViewFromFlags maps the legacy archived/trashed query flags onto a View.
// trashed wins over archived.
func ViewFromFlags(archived, trashed bool) View {
	switch {
	case trashed:
		return ViewTrash
	case archived:
		return ViewArchived
	default:
		return ViewActive
	}
}

// DateFilter restricts a derived view to notes created within a window.
type DateFilter string

const (
	DateAll   DateFilter = "all"
	DateToday DateFilter = "today"
	DateWeek  DateFilter = "week"
	DateMonth DateFilter = "month"
)

func (d DateFilter) IsValid() bool {
	switch d {
	case DateAll, DateToday, DateWeek, DateMonth:
		return true
	}
	return false
}

// ParseDateFilter parses a date window name. An empty string yields DateAll.
func ParseDateFilter(s string) (DateFilter, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DateAll, nil
	}
	d := DateFilter(s)
	if !d.IsValid() {
		return "", NewValidationError("date", "must be one of all, today, week, month")
	}
	return d, nil
}

// SortOrder is the ordering applied by a derived view.
type SortOrder string

const (
	SortDateDesc  SortOrder = "date-desc"
	SortDateAsc   SortOrder = "date-asc"
	SortTitleAsc  SortOrder = "title-asc"
	SortTitleDesc SortOrder = "title-desc"
)

func (s SortOrder) IsValid() bool {
	switch s {
	case SortDateDesc, SortDateAsc, SortTitleAsc, SortTitleDesc:
		return true
	}
	return false
}

// ParseSortOrder parses a sort name. An empty string yields SortDateDesc.
func ParseSortOrder(s string) (SortOrder, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return SortDateDesc, nil
	}
	o := SortOrder(s)
	if !o.IsValid() {
		return "", NewValidationError("sort", "must be one of date-desc, date-asc, title-asc, title-desc")
	}
	return o, nil
}

// ExportFormat is the serialization used when exporting notes.
type ExportFormat string

const (
	ExportJSON ExportFormat = "json"
	ExportText ExportFormat = "txt"
)

// Extension returns the file extension for the format, without a dot.
func (f ExportFormat) Extension() string { return string(f) }

// ParseExportFormat parses an export format name. An empty string yields ExportJSON.
func ParseExportFormat(s string) (ExportFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return ExportJSON, nil
	case "txt", "text":
		return ExportText, nil
	}
	return "", NewValidationError("format", "must be json or txt")
}
