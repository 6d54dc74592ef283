package reminder

import "encoding/json"

// Reminder is a single reminder record: a short description, a free-form
// category tag, and a completion flag. Description and tag are never empty
// once constructed; a mutation with an empty value fails and leaves the
// prior state intact.
type Reminder struct {
	description string
	tag         string
	completed   bool
}

// New creates a reminder with the completion flag unset. Both arguments go
// through the same validation as the setters.
func New(description, tag string) (*Reminder, error) {
	r := &Reminder{}
	if err := r.SetDescription(description); err != nil {
		return nil, err
	}
	if err := r.SetTag(tag); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Reminder) Description() string { return r.description }

func (r *Reminder) SetDescription(value string) error {
	if value == "" {
		return &ValidationError{Field: "description"}
	}
	r.description = value
	return nil
}

func (r *Reminder) Tag() string { return r.tag }

func (r *Reminder) SetTag(value string) error {
	if value == "" {
		return &ValidationError{Field: "tag"}
	}
	r.tag = value
	return nil
}

// ToggleCompletion flips the completion flag. The flag is only ever
// toggled, never set directly.
func (r *Reminder) ToggleCompletion() {
	r.completed = !r.completed
}

func (r *Reminder) Completed() bool { return r.completed }

func (r *Reminder) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Description string `json:"description"`
		Tag         string `json:"tag"`
		Completed   bool   `json:"completed"`
	}{
		Description: r.description,
		Tag:         r.tag,
		Completed:   r.completed,
	})
}
