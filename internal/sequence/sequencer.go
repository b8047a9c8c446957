package sequence

import (
	"promissa/pkg/domain"
)

// Screen is one entry in the flattened ordered screen list.
type Screen struct {
	Path       string  `json:"path"`
	Title      string  `json:"title"`
	SectionID  string  `json:"section_id"`
	Subsection string  `json:"subsection_id"`
	Fields     []Field `json:"fields"`
}

// Sequencer answers navigation queries over the catalog. It holds no mutable
// state: the applicable screen list is recomputed fresh on every query from
// the role and the current answers, so navigation always reflects the latest
// visibility decisions.
type Sequencer struct {
	catalog *Catalog
}

func New(catalog *Catalog) *Sequencer {
	return &Sequencer{catalog: catalog}
}

// Screens flattens the catalog into the ordered applicable screen list:
// sections restricted to another role are skipped, subsections with a false
// visibility condition are skipped, and one-per-field subsections expand into
// one screen per visible field.
func (s *Sequencer) Screens(role domain.Role, snap Snapshot) []Screen {
	var screens []Screen
	for _, sec := range s.catalog.Sections {
		if sec.Role != "" && sec.Role != role {
			continue
		}
		for _, sub := range sec.Subsections {
			if !sub.ShowWhen.Evaluate(snap) {
				continue
			}
			if sub.OnePerField {
				for _, f := range sub.Fields {
					if !f.ShowWhen.Evaluate(snap) {
						continue
					}
					screens = append(screens, Screen{
						Path:       sub.Path + "/" + f.ID,
						Title:      sub.Title,
						SectionID:  sec.ID,
						Subsection: sub.ID,
						Fields:     []Field{f},
					})
				}
				continue
			}
			screens = append(screens, Screen{
				Path:       sub.Path,
				Title:      sub.Title,
				SectionID:  sec.ID,
				Subsection: sub.ID,
				Fields:     sub.Fields,
			})
		}
	}
	return screens
}

// Find returns the screen at the given path, if applicable for the role and
// answers.
func (s *Sequencer) Find(path string, role domain.Role, snap Snapshot) (Screen, bool) {
	for _, scr := range s.Screens(role, snap) {
		if scr.Path == path {
			return scr, true
		}
	}
	return Screen{}, false
}

// Next returns the path after the given one, or "", false at the last screen
// (and for paths not currently in the list).
func (s *Sequencer) Next(path string, role domain.Role, snap Snapshot) (string, bool) {
	screens := s.Screens(role, snap)
	for i, scr := range screens {
		if scr.Path == path {
			if i+1 >= len(screens) {
				return "", false
			}
			return screens[i+1].Path, true
		}
	}
	return "", false
}

// Previous returns the path before the given one, or "", false at the first
// screen (and for paths not currently in the list).
func (s *Sequencer) Previous(path string, role domain.Role, snap Snapshot) (string, bool) {
	screens := s.Screens(role, snap)
	for i, scr := range screens {
		if scr.Path == path {
			if i == 0 {
				return "", false
			}
			return screens[i-1].Path, true
		}
	}
	return "", false
}

// IsFirst reports whether the path is the first applicable screen.
func (s *Sequencer) IsFirst(path string, role domain.Role, snap Snapshot) bool {
	screens := s.Screens(role, snap)
	return len(screens) > 0 && screens[0].Path == path
}

// IsLast reports whether the path is the last applicable screen.
func (s *Sequencer) IsLast(path string, role domain.Role, snap Snapshot) bool {
	screens := s.Screens(role, snap)
	return len(screens) > 0 && screens[len(screens)-1].Path == path
}

// Progress returns the zero-based position of the path and the total screen
// count, for progress indication. Position is -1 when the path is not in the
// current list.
func (s *Sequencer) Progress(path string, role domain.Role, snap Snapshot) (int, int) {
	screens := s.Screens(role, snap)
	for i, scr := range screens {
		if scr.Path == path {
			return i, len(screens)
		}
	}
	return -1, len(screens)
}
