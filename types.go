package client

import (
	"encoding/json"
	"time"
)

// Board is a TaskDeck board.
type Board struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Desc             string     `json:"desc"`
	Closed           bool       `json:"closed"`
	IDOrganization   string     `json:"idOrganization"`
	URL              string     `json:"url"`
	ShortURL         string     `json:"shortUrl"`
	Starred          bool       `json:"starred"`
	DateLastActivity *time.Time `json:"dateLastActivity,omitempty"`
}

// TaskList is a named column of cards on a board.
type TaskList struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	IDBoard string  `json:"idBoard"`
	Closed  bool    `json:"closed"`
	Pos     float64 `json:"pos"`
}

// Card is a single task on a board.
type Card struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Desc        string     `json:"desc"`
	Closed      bool       `json:"closed"`
	IDBoard     string     `json:"idBoard"`
	IDList      string     `json:"idList"`
	IDMembers   []string   `json:"idMembers"`
	IDLabels    []string   `json:"idLabels"`
	Labels      []Label    `json:"labels"`
	Due         *time.Time `json:"due,omitempty"`
	DueComplete bool       `json:"dueComplete"`
	Pos         float64    `json:"pos"`
	URL         string     `json:"url"`
	ShortURL    string     `json:"shortUrl"`
}

// Member is a TaskDeck user.
type Member struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	FullName  string `json:"fullName"`
	Initials  string `json:"initials"`
	URL       string `json:"url"`
	AvatarURL string `json:"avatarUrl"`
}

// Label is a colored tag scoped to one board.
type Label struct {
	ID      string `json:"id"`
	IDBoard string `json:"idBoard"`
	Name    string `json:"name"`
	Color   string `json:"color"`
}

// Checklist is a list of check items attached to a card.
type Checklist struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	IDBoard    string      `json:"idBoard"`
	IDCard     string      `json:"idCard"`
	Pos        float64     `json:"pos"`
	CheckItems []CheckItem `json:"checkItems"`
}

// CheckItem is one entry of a checklist. State is "complete" or
// "incomplete".
type CheckItem struct {
	ID          string  `json:"id"`
	IDChecklist string  `json:"idChecklist"`
	Name        string  `json:"name"`
	State       string  `json:"state"`
	Pos         float64 `json:"pos"`
}

// CustomField is a board-level custom field definition.
type CustomField struct {
	ID      string              `json:"id"`
	IDModel string              `json:"idModel"`
	Name    string              `json:"name"`
	Type    string              `json:"type"`
	Options []CustomFieldOption `json:"options,omitempty"`
}

// CustomFieldOption is one choice of a list-typed custom field.
type CustomFieldOption struct {
	ID    string `json:"id"`
	Value struct {
		Text string `json:"text"`
	} `json:"value"`
}

// CustomFieldValue carries the value written to a card's custom field.
// Exactly one field should be set, matching the field's type.
type CustomFieldValue struct {
	Text    string `json:"text,omitempty"`
	Number  string `json:"number,omitempty"`
	Date    string `json:"date,omitempty"`
	Checked string `json:"checked,omitempty"`
}

// Webhook is a registered callback for model changes.
type Webhook struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	IDModel     string `json:"idModel"`
	CallbackURL string `json:"callbackURL"`
	Active      bool   `json:"active"`
}

// Action is an audit-log entry. Data is kept raw because its shape
// depends on the action type.
type Action struct {
	ID              string          `json:"id"`
	Type            string          `json:"type"`
	Date            time.Time       `json:"date"`
	IDMemberCreator string          `json:"idMemberCreator"`
	Data            json.RawMessage `json:"data"`
}

// Attachment is a file or link attached to a card.
type Attachment struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	URL      string `json:"url"`
	MimeType string `json:"mimeType"`
	Bytes    int    `json:"bytes"`
}

// SearchResult is the response of the search endpoint.
type SearchResult struct {
	Boards  []Board  `json:"boards"`
	Cards   []Card   `json:"cards"`
	Members []Member `json:"members"`
}
