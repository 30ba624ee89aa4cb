package models

import (
	"fmt"

	"github.com/oklog/ulid/v2"
)

// ElementKind is the canonical adaptive-card tag for an element variant.
type ElementKind string

const (
	KindTextBlock ElementKind = "TextBlock"
	KindImage     ElementKind = "Image"
	KindTextInput ElementKind = "Input.Text"
	KindNumber    ElementKind = "Input.Number"
	KindDate      ElementKind = "Input.Date"
	KindTime      ElementKind = "Input.Time"
	KindToggle    ElementKind = "Input.Toggle"
	KindChoiceSet ElementKind = "Input.ChoiceSet"
	KindColumnSet ElementKind = "ColumnSet"
	KindContainer ElementKind = "Container"
	KindFactSet   ElementKind = "FactSet"
)

// ElementKinds lists every element variant in palette display order.
var ElementKinds = []ElementKind{
	KindTextBlock,
	KindImage,
	KindFactSet,
	KindTextInput,
	KindNumber,
	KindDate,
	KindTime,
	KindToggle,
	KindChoiceSet,
	KindColumnSet,
	KindContainer,
}

// Shared property defaults. A value equal to its default is suppressed on
// projection, so an explicit default is indistinguishable from an absent one.
const (
	SpacingDefault = "Default"
	AlignmentLeft  = "Left"
	SizeDefault    = "Default"
	SizeAuto       = "Auto"
	WeightDefault  = "Default"
	ColorDefault   = "Default"
	StyleDefault   = "Default"
	StyleCompact   = "compact"
)

// Option lists for the designer's field editors.
var (
	SpacingOptions   = []string{"None", "Small", "Default", "Medium", "Large"}
	AlignmentOptions = []string{"Left", "Center", "Right"}
	TextSizes        = []string{"Small", "Default", "Medium", "Large", "ExtraLarge"}
	TextWeights      = []string{"Lighter", "Default", "Bolder"}
	TextColors       = []string{"Default", "Accent", "Good", "Warning", "Attention"}
	ImageSizes       = []string{"Auto", "Stretch", "Small", "Medium", "Large"}
	ImageStyles      = []string{"Default", "Person"}
	ChoiceStyles     = []string{"compact", "expanded"}
)

// Element is one visual or input unit of a card. The set of implementations
// is closed: exactly the eleven variant types in this package satisfy it, so
// a type switch over Element is exhaustive.
type Element interface {
	ElementID() string
	Kind() ElementKind
	Base() *ElementBase
}

// ElementBase carries the identity and shared layout properties common to
// every element variant.
type ElementBase struct {
	ID                  string
	Spacing             string
	Separator           bool
	HorizontalAlignment string
}

func (b *ElementBase) ElementID() string { return b.ID }
func (b *ElementBase) Base() *ElementBase { return b }

func newBase() ElementBase {
	return ElementBase{
		ID:                  NewID(),
		Spacing:             SpacingDefault,
		HorizontalAlignment: AlignmentLeft,
	}
}

// NewID returns a fresh element/action identifier. ULIDs are
// timestamp-ordered and unique, which is all callers rely on.
func NewID() string {
	return ulid.Make().String()
}

// TextBlock is a block of styled display text.
type TextBlock struct {
	ElementBase
	Text   string
	Size   string
	Weight string
	Color  string
}

// Image displays a picture fetched from a URL.
type Image struct {
	ElementBase
	URL   string
	Size  string
	Style string
}

// TextInput is a free-form text field, optionally multiline.
type TextInput struct {
	ElementBase
	Label       string
	Placeholder string
	Multiline   bool
}

// NumberInput is a numeric field. Min and Max are kept as the raw strings the
// user typed; the projection parses them and drops values that do not parse.
type NumberInput struct {
	ElementBase
	Label       string
	Placeholder string
	Min         string
	Max         string
}

// DateInput is a date picker field.
type DateInput struct {
	ElementBase
	Label       string
	Placeholder string
}

// TimeInput is a time picker field.
type TimeInput struct {
	ElementBase
	Label       string
	Placeholder string
}

// ToggleInput is a single on/off switch with a display title.
type ToggleInput struct {
	ElementBase
	Title string
}

// ChoiceSetInput is a pick list. Choices holds the user's comma-delimited
// titles; choice values are derived at projection time.
type ChoiceSetInput struct {
	ElementBase
	Label       string
	Choices     string
	Style       string
	MultiSelect bool
}

// Column is one column of a ColumnSet. The designer edits columns as flat
// text lines, so only the text survives a round trip.
type Column struct {
	ID   string
	Text string
}

// ColumnSet lays out columns side by side.
type ColumnSet struct {
	ElementBase
	Columns []Column
}

// ContainerItem is a child of a Container. Only its presence is projected;
// the content is replaced by a fixed placeholder block.
type ContainerItem struct {
	Text string
}

// Container groups child items.
type Container struct {
	ElementBase
	Items []ContainerItem
}

// Fact is one title/value row of a FactSet.
type Fact struct {
	Title string `yaml:"title"`
	Value string `yaml:"value"`
}

// FactSet renders a table of facts.
type FactSet struct {
	ElementBase
	Facts []Fact
}

func (*TextBlock) Kind() ElementKind      { return KindTextBlock }
func (*Image) Kind() ElementKind          { return KindImage }
func (*TextInput) Kind() ElementKind      { return KindTextInput }
func (*NumberInput) Kind() ElementKind    { return KindNumber }
func (*DateInput) Kind() ElementKind      { return KindDate }
func (*TimeInput) Kind() ElementKind      { return KindTime }
func (*ToggleInput) Kind() ElementKind    { return KindToggle }
func (*ChoiceSetInput) Kind() ElementKind { return KindChoiceSet }
func (*ColumnSet) Kind() ElementKind      { return KindColumnSet }
func (*Container) Kind() ElementKind      { return KindContainer }
func (*FactSet) Kind() ElementKind        { return KindFactSet }

// NewElement constructs an element of the given kind with its creation
// defaults filled in. The kind set is closed, so an unknown kind is a
// programming error and reported as such.
func NewElement(kind ElementKind) (Element, error) {
	base := newBase()
	switch kind {
	case KindTextBlock:
		return &TextBlock{
			ElementBase: base,
			Text:        "Your text here",
			Size:        SizeDefault,
			Weight:      WeightDefault,
			Color:       ColorDefault,
		}, nil
	case KindImage:
		return &Image{
			ElementBase: base,
			URL:         "https://via.placeholder.com/400x200",
			Size:        SizeAuto,
			Style:       StyleDefault,
		}, nil
	case KindTextInput:
		return &TextInput{
			ElementBase: base,
			Label:       "Label",
			Placeholder: "Enter value...",
		}, nil
	case KindNumber:
		return &NumberInput{
			ElementBase: base,
			Label:       "Label",
			Placeholder: "Enter value...",
		}, nil
	case KindDate:
		return &DateInput{
			ElementBase: base,
			Label:       "Label",
			Placeholder: "Enter value...",
		}, nil
	case KindTime:
		return &TimeInput{
			ElementBase: base,
			Label:       "Label",
			Placeholder: "Enter value...",
		}, nil
	case KindToggle:
		return &ToggleInput{
			ElementBase: base,
			Title:       "Toggle option",
		}, nil
	case KindChoiceSet:
		return &ChoiceSetInput{
			ElementBase: base,
			Label:       "Label",
			Choices:     "Option 1,Option 2,Option 3",
			Style:       StyleCompact,
		}, nil
	case KindColumnSet:
		return &ColumnSet{
			ElementBase: base,
			Columns: []Column{
				{ID: base.ID + "-col1", Text: "Column 1"},
				{ID: base.ID + "-col2", Text: "Column 2"},
			},
		}, nil
	case KindContainer:
		return &Container{ElementBase: base}, nil
	case KindFactSet:
		return &FactSet{
			ElementBase: base,
			Facts:       []Fact{{Title: "Title", Value: "Value"}},
		}, nil
	default:
		return nil, fmt.Errorf("unknown element kind: %s", kind)
	}
}
