package tui

// State tracks collected values and previously reported errors keyed by
// field name.
type State struct {
	values map[string]any
	errors map[string][]string
}

// NewState seeds the state with prefilled values and errors. Both maps are
// copied.
func NewState(prefill map[string]any, errs map[string][]string) *State {
	values := make(map[string]any, len(prefill))
	for key, value := range prefill {
		values[key] = value
	}
	errors := make(map[string][]string, len(errs))
	for key, messages := range errs {
		errors[key] = append([]string(nil), messages...)
	}
	return &State{values: values, errors: errors}
}

// Values returns the collected values (mutable).
func (s *State) Values() map[string]any {
	if s == nil {
		return nil
	}
	return s.values
}

// ErrorsFor returns the errors attached to a field.
func (s *State) ErrorsFor(name string) []string {
	if s == nil {
		return nil
	}
	return s.errors[name]
}

// Get returns the value stored for a field.
func (s *State) Get(name string) (any, bool) {
	if s == nil {
		return nil, false
	}
	v, ok := s.values[name]
	return v, ok
}

// Set stores a field value and clears its reported errors. A nil value
// removes the field.
func (s *State) Set(name string, value any) {
	if s == nil {
		return
	}
	delete(s.errors, name)
	if value == nil {
		delete(s.values, name)
		return
	}
	s.values[name] = value
}
