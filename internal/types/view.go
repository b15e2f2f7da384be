package types

import "errors"

// ViewMode is the granularity of the active snapshot.
type ViewMode string

// ViewScope is the projection of the data, either for the whole
// household or for a single member.
type ViewScope string

const (
	ViewModeMonth ViewMode = "month"
	ViewModeYear  ViewMode = "year"

	ScopeHousehold ViewScope = "household"
	ScopePersonal  ViewScope = "personal"
)

var (
	ErrInvalidViewMode  = errors.New("the view mode must be 'month' or 'year'")
	ErrInvalidViewScope = errors.New("the view scope must be 'household' or 'personal'")
)

// Validate checks the view mode. An empty value defaults to month view.
func (m ViewMode) Validate() error {
	switch m {
	case ViewModeMonth, ViewModeYear, "":
		return nil
	}

	return ErrInvalidViewMode
}

// Validate checks the view scope. An empty value defaults to the household scope.
func (s ViewScope) Validate() error {
	switch s {
	case ScopeHousehold, ScopePersonal, "":
		return nil
	}

	return ErrInvalidViewScope
}
