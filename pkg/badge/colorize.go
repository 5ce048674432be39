package badge

import "sync"

// Styler applies presentation properties to badge elements owned by a host.
type Styler interface {
	SetBackground(id int, color string)
	SetForeground(id int, color string)
}

// Assignment records the colours applied to one badge.
type Assignment struct {
	ID         int
	Color      Color
	Background string // rgb(r, g, b)
	Foreground string // Black or White
}

// Colorize paints every badge in ids with a fresh random background and its
// contrast foreground. Each badge is handled independently; an empty ids
// slice performs no mutations.
func Colorize(ids []int, s Styler, src Source) []Assignment {
	if len(ids) == 0 {
		return nil
	}
	out := make([]Assignment, 0, len(ids))
	for _, id := range ids {
		c := RandomColor(src)
		a := Assignment{
			ID:         id,
			Color:      c,
			Background: c.CSS(),
			Foreground: ContrastColor(c),
		}
		s.SetBackground(id, a.Background)
		s.SetForeground(id, a.Foreground)
		out = append(out, a)
	}
	return out
}

// Trigger runs Colorize at most once, mirroring a page-ready hook.
type Trigger struct {
	src  Source
	once sync.Once
}

// NewTrigger creates a Trigger drawing colours from src.
func NewTrigger(src Source) *Trigger {
	return &Trigger{src: src}
}

// Fire colorizes ids on the first call and reports true. Every later call
// leaves the host untouched and reports false.
func (t *Trigger) Fire(ids []int, s Styler) ([]Assignment, bool) {
	var (
		out   []Assignment
		fired bool
	)
	t.once.Do(func() {
		out = Colorize(ids, s, t.src)
		fired = true
	})
	return out, fired
}
