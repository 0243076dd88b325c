package preferences

import (
	"context"
	"fmt"

	"github.com/diogovalentte/tukangkomik/src/errordefs"
	"github.com/diogovalentte/tukangkomik/src/util"
)

// ChangeListener is called with the new value before it's saved.
// Returning false rejects the change.
type ChangeListener func(ctx context.Context, newValue string) bool

// EditTextPreference is a preference edited in a text field
type EditTextPreference struct {
	Key           string
	Title         string
	Summary       string
	DefaultValue  string
	DialogTitle   string
	DialogMessage string
	onChange      ChangeListener
}

// SetOnPreferenceChangeListener sets the function called when the user changes the value
func (p *EditTextPreference) SetOnPreferenceChangeListener(listener ChangeListener) {
	p.onChange = listener
}

// Screen is the list of preferences of a source, backed by its store
type Screen struct {
	store       Store
	preferences []*EditTextPreference
}

// NewScreen returns an empty screen whose values are kept in store
func NewScreen(store Store) *Screen {
	return &Screen{store: store}
}

// AddPreference adds a preference to the end of the screen
func (s *Screen) AddPreference(preference *EditTextPreference) {
	s.preferences = append(s.preferences, preference)
}

// Preferences returns the preferences in the order they were added
func (s *Screen) Preferences() []*EditTextPreference {
	return s.preferences
}

// Preference returns the preference with key
func (s *Screen) Preference(key string) (*EditTextPreference, bool) {
	for _, preference := range s.preferences {
		if preference.Key == key {
			return preference, true
		}
	}

	return nil, false
}

// PreferenceValue is a preference with its current value, as shown to the user
type PreferenceValue struct {
	Key           string `json:"key" yaml:"key"`
	Title         string `json:"title" yaml:"title"`
	Summary       string `json:"summary" yaml:"summary"`
	DialogTitle   string `json:"dialog_title" yaml:"dialog_title"`
	DialogMessage string `json:"dialog_message" yaml:"dialog_message"`
	DefaultValue  string `json:"default_value" yaml:"default_value"`
	Value         string `json:"value" yaml:"value"`
}

// Values returns every preference of the screen with its stored value or default value
func (s *Screen) Values(ctx context.Context) ([]PreferenceValue, error) {
	values := make([]PreferenceValue, 0, len(s.preferences))
	for _, preference := range s.preferences {
		value, err := GetString(ctx, s.store, preference.Key, preference.DefaultValue)
		if err != nil {
			return nil, err
		}

		values = append(values, PreferenceValue{
			Key:           preference.Key,
			Title:         preference.Title,
			Summary:       preference.Summary,
			DialogTitle:   preference.DialogTitle,
			DialogMessage: preference.DialogMessage,
			DefaultValue:  preference.DefaultValue,
			Value:         value,
		})
	}

	return values, nil
}

// Change sets the value of the preference with key.
// The change listener of the preference runs first, and the value is saved only if it accepts it.
func (s *Screen) Change(ctx context.Context, key, value string) error {
	contextError := fmt.Sprintf("error changing preference '%s'", key)

	preference, ok := s.Preference(key)
	if !ok {
		return util.AddErrorContext(contextError, errordefs.ErrPreferenceNotFound)
	}

	if preference.onChange != nil && !preference.onChange(ctx, value) {
		return util.AddErrorContext(contextError, errordefs.ErrPreferenceChangeRejected)
	}

	if err := s.store.Set(ctx, key, value); err != nil {
		return util.AddErrorContext(contextError, err)
	}

	return nil
}
