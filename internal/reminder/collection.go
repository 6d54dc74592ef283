package reminder

import "strings"

// Matcher is the fuzzy-match collaborator used by Search's fallback stage:
// given a query and a set of candidate strings, it returns the subset judged
// to match, verbatim. The matching heuristic and its thresholds belong to
// the matcher.
type Matcher interface {
	Match(query string, candidates []string) []string
}

// Logger receives the informational notice emitted when Search falls back
// from exact tag matching to fuzzy description matching. A nil logger
// disables the notice.
type Logger interface {
	Infof(format string, args ...interface{})
}

// Collection is an ordered sequence of reminders addressed by 1-based
// position. It owns its reminders exclusively. The collection is meant for
// a single actor; callers sharing one across goroutines must lock around it.
type Collection struct {
	items   []*Reminder
	matcher Matcher
	logger  Logger
}

// NewCollection returns an empty collection. Both matcher and logger may be
// nil; a nil matcher makes Search's fallback stage return nothing.
func NewCollection(matcher Matcher, logger Logger) *Collection {
	return &Collection{matcher: matcher, logger: logger}
}

// Reminders returns the reminders in insertion order. The slice is a copy;
// the reminders themselves are shared.
func (c *Collection) Reminders() []*Reminder {
	out := make([]*Reminder, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Collection) Size() int { return len(c.items) }

// IsIndexValid reports whether position addresses a reminder: true iff the
// collection is non-empty and 1 <= position <= Size().
func (c *Collection) IsIndexValid(position int) bool {
	return position >= 1 && position <= len(c.items)
}

// AddReminder constructs a reminder and appends it. The new reminder's
// position is the new Size().
func (c *Collection) AddReminder(description, tag string) (*Reminder, error) {
	r, err := New(description, tag)
	if err != nil {
		return nil, err
	}
	c.items = append(c.items, r)
	return r, nil
}

// GetReminder returns the reminder at the 1-based position.
func (c *Collection) GetReminder(position int) (*Reminder, error) {
	if !c.IsIndexValid(position) {
		return nil, &IndexError{Position: position, Size: len(c.items)}
	}
	return c.items[position-1], nil
}

// ModifyReminder replaces the description of the reminder at position.
func (c *Collection) ModifyReminder(position int, description string) error {
	r, err := c.GetReminder(position)
	if err != nil {
		return err
	}
	return r.SetDescription(description)
}

// ToggleCompletion flips the completion flag of the reminder at position.
func (c *Collection) ToggleCompletion(position int) error {
	r, err := c.GetReminder(position)
	if err != nil {
		return err
	}
	r.ToggleCompletion()
	return nil
}

// Search looks up reminders by keyword in two stages. Reminders whose tag
// equals the keyword under case-insensitive comparison win outright; only
// when no tag matches does the search fall back to fuzzy matching the
// keyword against descriptions. Either way the result keeps the
// collection's insertion order.
func (c *Collection) Search(keyword string) []*Reminder {
	var byTag []*Reminder
	for _, r := range c.items {
		if strings.EqualFold(r.Tag(), keyword) {
			byTag = append(byTag, r)
		}
	}
	if len(byTag) > 0 {
		return byTag
	}

	if c.logger != nil {
		c.logger.Infof("no tag matches %q, searching descriptions", keyword)
	}
	if c.matcher == nil || len(c.items) == 0 {
		return nil
	}
	candidates := make([]string, len(c.items))
	for i, r := range c.items {
		candidates[i] = r.Description()
	}
	matched := make(map[string]bool)
	for _, m := range c.matcher.Match(keyword, candidates) {
		matched[m] = true
	}
	var byDescription []*Reminder
	for _, r := range c.items {
		if matched[r.Description()] {
			byDescription = append(byDescription, r)
		}
	}
	return byDescription
}

// TagGroup is one bucket produced by GroupByTag: a verbatim tag and its
// reminders in insertion order.
type TagGroup struct {
	Tag       string      `json:"tag"`
	Reminders []*Reminder `json:"reminders"`
}

// GroupByTag buckets the reminders by their exact tag. Unlike Search, the
// grouping key is case-sensitive: tags differing only in case form separate
// groups. Groups appear in the order their first member was added.
func (c *Collection) GroupByTag() []TagGroup {
	groups := []TagGroup{}
	index := make(map[string]int)
	for _, r := range c.items {
		i, ok := index[r.Tag()]
		if !ok {
			i = len(groups)
			index[r.Tag()] = i
			groups = append(groups, TagGroup{Tag: r.Tag()})
		}
		groups[i].Reminders = append(groups[i].Reminders, r)
	}
	return groups
}
