package designer

import (
	"fmt"

	"github.com/botdeck/botdeck-terminal/pkg/composer"
	"github.com/botdeck/botdeck-terminal/pkg/models"
	"github.com/botdeck/botdeck-terminal/pkg/templates"
)

// Session is the designer's aggregate root: the ordered element list, the
// ordered action list, the active template, and the serialized card text.
//
// The element/action lists are the sole source of truth for the structured
// editor. Every structural mutation re-projects them and overwrites the text
// buffer. SetText is the one exception: a manual buffer edit feeds the
// preview only and is never parsed back into the lists — the next structural
// mutation overwrites it. This one-way data flow is intentional.
//
// A Session is not safe for concurrent use; it is driven from a single
// update loop.
type Session struct {
	elements []models.Element
	actions  []models.Action
	template string
	text     string
}

// NewSession creates a session seeded from the named template.
func NewSession(templateKey string) (*Session, error) {
	s := &Session{}
	if err := s.SetTemplate(templateKey); err != nil {
		return nil, err
	}
	return s, nil
}

// Elements returns the ordered element list. The returned slice is a copy;
// the elements themselves are owned by the session.
func (s *Session) Elements() []models.Element {
	out := make([]models.Element, len(s.elements))
	copy(out, s.elements)
	return out
}

// Actions returns the ordered action list as a copy.
func (s *Session) Actions() []models.Action {
	out := make([]models.Action, len(s.actions))
	copy(out, s.actions)
	return out
}

// Template returns the active template key.
func (s *Session) Template() string {
	return s.template
}

// Text returns the current serialized card text.
func (s *Session) Text() string {
	return s.text
}

// SetTemplate atomically resets the session: both lists are cleared and the
// buffer is set to the template's document verbatim. An unknown key leaves
// the session untouched.
func (s *Session) SetTemplate(key string) error {
	tmpl, err := templates.Get(key)
	if err != nil {
		return err
	}
	s.template = key
	s.elements = nil
	s.actions = nil
	s.text = tmpl.Document
	return nil
}

// LoadDocument resets the structured lists and seeds the buffer from an
// externally produced document (a saved draft). There is no reverse parse:
// the loaded text behaves like a manual edit until the next structural
// mutation.
func (s *Session) LoadDocument(text string) {
	s.elements = nil
	s.actions = nil
	s.text = text
}

// SetText records a manual edit of the card text. The structured lists are
// deliberately left alone.
func (s *Session) SetText(text string) {
	s.text = text
}

// AddElement appends a new element of the given kind with its creation
// defaults and re-projects the buffer.
func (s *Session) AddElement(kind models.ElementKind) (models.Element, error) {
	el, err := models.NewElement(kind)
	if err != nil {
		return nil, err
	}
	s.elements = append(s.elements, el)
	s.sync()
	return el, nil
}

// UpdateElement applies a partial update to the element with the given id.
// The mutate callback changes only the fields it names; id and kind are
// fixed for an element's lifetime.
func (s *Session) UpdateElement(id string, mutate func(models.Element)) error {
	for _, el := range s.elements {
		if el.ElementID() == id {
			mutate(el)
			s.sync()
			return nil
		}
	}
	return fmt.Errorf("no element with id %s", id)
}

// RemoveElement deletes the element with the given id.
func (s *Session) RemoveElement(id string) error {
	for i, el := range s.elements {
		if el.ElementID() == id {
			s.elements = append(s.elements[:i], s.elements[i+1:]...)
			s.sync()
			return nil
		}
	}
	return fmt.Errorf("no element with id %s", id)
}

// MoveElement repositions the element at from to index to, preserving the
// relative order of everything else.
func (s *Session) MoveElement(from, to int) error {
	moved, err := Move(s.elements, from, to)
	if err != nil {
		return err
	}
	s.elements = moved
	s.sync()
	return nil
}

// AddAction appends a new action of the given kind with its default title.
func (s *Session) AddAction(kind models.ActionKind) (models.Action, error) {
	act, err := models.NewAction(kind)
	if err != nil {
		return nil, err
	}
	s.actions = append(s.actions, act)
	s.sync()
	return act, nil
}

// UpdateAction applies a partial update to the action with the given id.
func (s *Session) UpdateAction(id string, mutate func(models.Action)) error {
	for _, act := range s.actions {
		if act.ActionID() == id {
			mutate(act)
			s.sync()
			return nil
		}
	}
	return fmt.Errorf("no action with id %s", id)
}

// RemoveAction deletes the action with the given id.
func (s *Session) RemoveAction(id string) error {
	for i, act := range s.actions {
		if act.ActionID() == id {
			s.actions = append(s.actions[:i], s.actions[i+1:]...)
			s.sync()
			return nil
		}
	}
	return fmt.Errorf("no action with id %s", id)
}

// sync re-derives the text buffer from the structured lists, overwriting any
// manual edit made since the last structural mutation.
func (s *Session) sync() {
	doc := composer.Compose(s.elements, s.actions)
	text, err := doc.JSON()
	if err != nil {
		// Compose output is always marshalable; keep the previous buffer
		// rather than corrupting it if that ever stops holding.
		return
	}
	s.text = text
}
