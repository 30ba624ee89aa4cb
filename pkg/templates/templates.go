package templates

import "fmt"

// Template is an immutable named starter card. Document holds the full
// serialized card in canonical pretty-printed form; seeding the designer
// from a template copies it verbatim into the text buffer.
type Template struct {
	Key      string
	Name     string
	Document string
}

// All returns the built-in templates in display order. The set is fixed and
// not user-extensible.
func All() []Template {
	return []Template{
		blank,
		announcement,
		poll,
		feedback,
		twoColumn,
		contact,
	}
}

// Get returns the template with the given key. Unknown keys are a
// programming error in the closed UI but are still reported, never
// substituted.
func Get(key string) (Template, error) {
	for _, t := range All() {
		if t.Key == key {
			return t, nil
		}
	}
	return Template{}, fmt.Errorf("unknown template: %s", key)
}

var blank = Template{
	Key:  "blank",
	Name: "Blank Card",
	Document: `{
  "type": "AdaptiveCard",
  "version": "1.3",
  "body": []
}`,
}

var announcement = Template{
	Key:  "announcement",
	Name: "Announcement",
	Document: `{
  "type": "AdaptiveCard",
  "version": "1.3",
  "body": [
    {
      "type": "Container",
      "items": [
        {
          "type": "TextBlock",
          "text": "Important Announcement",
          "size": "Large",
          "weight": "Bolder",
          "color": "Accent"
        },
        {
          "type": "TextBlock",
          "text": "Your announcement message goes here. You can customize this text to share important information with your team.",
          "wrap": true,
          "spacing": "Small"
        }
      ]
    }
  ]
}`,
}

var poll = Template{
	Key:  "poll",
	Name: "Quick Poll",
	Document: `{
  "type": "AdaptiveCard",
  "version": "1.3",
  "body": [
    {
      "type": "TextBlock",
      "text": "Quick Poll",
      "size": "Large",
      "weight": "Bolder"
    },
    {
      "type": "TextBlock",
      "text": "What is your preference?",
      "wrap": true
    },
    {
      "type": "Input.ChoiceSet",
      "id": "poll",
      "style": "expanded",
      "choices": [
        {
          "title": "Option 1",
          "value": "option1"
        },
        {
          "title": "Option 2",
          "value": "option2"
        },
        {
          "title": "Option 3",
          "value": "option3"
        }
      ]
    }
  ],
  "actions": [
    {
      "type": "Action.Submit",
      "title": "Submit"
    }
  ]
}`,
}

var feedback = Template{
	Key:  "feedback",
	Name: "Feedback Form",
	Document: `{
  "type": "AdaptiveCard",
  "version": "1.3",
  "body": [
    {
      "type": "TextBlock",
      "text": "We value your feedback",
      "size": "Large",
      "weight": "Bolder"
    },
    {
      "type": "Input.Text",
      "id": "name",
      "placeholder": "Your name",
      "label": "Name"
    },
    {
      "type": "Input.Text",
      "id": "feedback",
      "placeholder": "Share your thoughts...",
      "isMultiline": true,
      "label": "Feedback"
    }
  ],
  "actions": [
    {
      "type": "Action.Submit",
      "title": "Send Feedback"
    }
  ]
}`,
}

var twoColumn = Template{
	Key:  "twoColumn",
	Name: "Two Column Layout",
	Document: `{
  "type": "AdaptiveCard",
  "version": "1.3",
  "body": [
    {
      "type": "TextBlock",
      "text": "Two Column Layout",
      "size": "Large",
      "weight": "Bolder"
    },
    {
      "type": "ColumnSet",
      "columns": [
        {
          "type": "Column",
          "width": "stretch",
          "items": [
            {
              "type": "TextBlock",
              "text": "Left Column",
              "weight": "Bolder"
            },
            {
              "type": "TextBlock",
              "text": "Content for the left side",
              "wrap": true
            }
          ]
        },
        {
          "type": "Column",
          "width": "stretch",
          "items": [
            {
              "type": "TextBlock",
              "text": "Right Column",
              "weight": "Bolder"
            },
            {
              "type": "TextBlock",
              "text": "Content for the right side",
              "wrap": true
            }
          ]
        }
      ]
    }
  ]
}`,
}

var contact = Template{
	Key:  "contact",
	Name: "Contact Card",
	Document: `{
  "type": "AdaptiveCard",
  "version": "1.3",
  "body": [
    {
      "type": "ColumnSet",
      "columns": [
        {
          "type": "Column",
          "width": "auto",
          "items": [
            {
              "type": "Image",
              "url": "https://via.placeholder.com/80",
              "size": "Medium",
              "style": "Person"
            }
          ]
        },
        {
          "type": "Column",
          "width": "stretch",
          "items": [
            {
              "type": "TextBlock",
              "text": "John Doe",
              "size": "Large",
              "weight": "Bolder"
            },
            {
              "type": "FactSet",
              "facts": [
                {
                  "title": "Email:",
                  "value": "john@example.com"
                },
                {
                  "title": "Phone:",
                  "value": "+1 234 567 8900"
                },
                {
                  "title": "Location:",
                  "value": "San Francisco, CA"
                }
              ]
            }
          ]
        }
      ]
    }
  ],
  "actions": [
    {
      "type": "Action.OpenUrl",
      "title": "Send Email",
      "url": "mailto:john@example.com"
    }
  ]
}`,
}
