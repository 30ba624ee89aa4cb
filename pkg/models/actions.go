package models

import (
	"encoding/json"
	"fmt"
)

// ActionKind is the canonical adaptive-card tag for an action variant.
type ActionKind string

const (
	ActionSubmit   ActionKind = "Action.Submit"
	ActionOpenURL  ActionKind = "Action.OpenUrl"
	ActionShowCard ActionKind = "Action.ShowCard"
)

// ActionKinds lists the action variants in display order.
var ActionKinds = []ActionKind{ActionSubmit, ActionOpenURL, ActionShowCard}

// Action is one button attached to a card. Like Element, the implementation
// set is closed to the three variants below.
type Action interface {
	ActionID() string
	Kind() ActionKind
	ActionTitle() string
}

// ActionBase carries the identity shared by every action variant.
type ActionBase struct {
	ID    string
	Title string
}

func (b *ActionBase) ActionID() string    { return b.ID }
func (b *ActionBase) ActionTitle() string { return b.Title }

// SubmitAction posts the card's input values back to the bot.
type SubmitAction struct {
	ActionBase
}

// OpenURLAction opens a link when pressed.
type OpenURLAction struct {
	ActionBase
	URL string
}

// ShowCardAction reveals a nested card. The nested payload is carried on the
// model but is not emitted by the projection; see composer.
type ShowCardAction struct {
	ActionBase
	Card json.RawMessage
}

func (*SubmitAction) Kind() ActionKind   { return ActionSubmit }
func (*OpenURLAction) Kind() ActionKind  { return ActionOpenURL }
func (*ShowCardAction) Kind() ActionKind { return ActionShowCard }

// NewAction constructs an action of the given kind with its default title.
func NewAction(kind ActionKind) (Action, error) {
	base := ActionBase{ID: NewID()}
	switch kind {
	case ActionSubmit:
		base.Title = "Submit"
		return &SubmitAction{ActionBase: base}, nil
	case ActionOpenURL:
		base.Title = "Open Link"
		return &OpenURLAction{ActionBase: base, URL: "https://example.com"}, nil
	case ActionShowCard:
		base.Title = "Show Card"
		return &ShowCardAction{ActionBase: base}, nil
	default:
		return nil, fmt.Errorf("unknown action kind: %s", kind)
	}
}
