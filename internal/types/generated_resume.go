package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// GenerateResumeRequest is the body of POST /api/resume/generate/. Every field is
// optional and omitted when empty.
type GenerateResumeRequest struct {
	ResumeFormat       string           `json:"resume_format,omitempty"`
	TargetRole         string           `json:"target_role,omitempty"`
	Headline           string           `json:"headline,omitempty"`
	StrengthKeywords   []string         `json:"strength_keywords,omitempty"`
	Projects           []ProjectRequest `json:"projects,omitempty"`
	CollaborationStyle string           `json:"collaboration_style,omitempty"`
	MainTechStack      []string         `json:"main_tech_stack,omitempty"`
	FutureGoal         string           `json:"future_goal,omitempty"`
}

// ProjectRequest is one project entry in generate requests and parse responses.
type ProjectRequest struct {
	Start     string   `json:"start"`
	End       string   `json:"end"`
	Title     string   `json:"title"`
	Bullets   []string `json:"bullets"`
	TechStack []string `json:"tech_stack"`
}

// ItemType is the display type of a generated resume item.
type ItemType string

const (
	// ItemSimple renders content only.
	ItemSimple ItemType = "SIMPLE"
	// ItemTitled renders a subtitle above the content.
	ItemTitled ItemType = "TITLED"
)

// ParseItemType reads a wire type. Unknown types degrade to ItemSimple; known is
// false in that case so the caller can drop fields SIMPLE items do not render.
func ParseItemType(s string) (t ItemType, known bool) {
	switch ItemType(strings.ToUpper(strings.TrimSpace(s))) {
	case ItemSimple:
		return ItemSimple, true
	case ItemTitled:
		return ItemTitled, true
	default:
		return ItemSimple, false
	}
}

// ResumeItem is one display block of a generated resume.
type ResumeItem struct {
	ElementID string   `json:"element_id"`
	Type      ItemType `json:"type"`
	Subtitle  string   `json:"sub_title"`
	Content   string   `json:"content"`
}

// Render returns the item's display text.
func (i ResumeItem) Render() string {
	if i.Type == ItemTitled && i.Subtitle != "" {
		return i.Subtitle + "\n" + i.Content
	}
	return i.Content
}

// GeneratedResume is the result of a generate call. It is immutable once created;
// edits happen on local copies of Items.
type GeneratedResume struct {
	ID        string       `json:"resume_id"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
	Items     []ResumeItem `json:"items"`
}

// FlexibleID accepts either a JSON string or a JSON number.
type FlexibleID string

// UnmarshalJSON implements json.Unmarshaler.
func (id *FlexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = FlexibleID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	*id = FlexibleID(n.String())
	return nil
}

// GenerateResumeResponse is the wire response of the generate call.
type GenerateResumeResponse struct {
	ResumeID  FlexibleID         `json:"resume_id"`
	CreatedAt string             `json:"created_at"`
	UpdatedAt string             `json:"updated_at"`
	Items     []ResumeItemPayload `json:"items"`
}

// ResumeItemPayload is a wire resume item; sub_title and content may be absent.
type ResumeItemPayload struct {
	ElementID FlexibleID `json:"element_id"`
	Type      string     `json:"type"`
	SubTitle  *string    `json:"sub_title,omitempty"`
	Content   *string    `json:"content,omitempty"`
}

// ToGeneratedResume maps the response. Absent strings become "", absent item lists
// become empty and unknown item types lose their subtitle.
func (r GenerateResumeResponse) ToGeneratedResume() GeneratedResume {
	items := make([]ResumeItem, 0, len(r.Items))
	for _, p := range r.Items {
		itemType, known := ParseItemType(p.Type)
		item := ResumeItem{
			ElementID: string(p.ElementID),
			Type:      itemType,
			Content:   deref(p.Content),
		}
		if known && itemType == ItemTitled {
			item.Subtitle = deref(p.SubTitle)
		}
		items = append(items, item)
	}
	return GeneratedResume{
		ID:        string(r.ResumeID),
		CreatedAt: ParseTimestamp(r.CreatedAt),
		UpdatedAt: ParseTimestamp(r.UpdatedAt),
		Items:     items,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
