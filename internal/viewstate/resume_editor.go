package viewstate

import (
	"slices"
	"strings"

	"github.com/jonathan/resume-assistant/internal/types"
)

// ResumeEditorState holds local edits of a generated resume.
type ResumeEditorState struct {
	ResumeID string
	Items    []types.ResumeItem
	Dirty    bool
}

// ResumeEditor edits the items of a generated resume locally. Nothing is sent to the
// server; the generated resume itself stays unchanged.
type ResumeEditor struct {
	original []types.ResumeItem
	store    *Store[ResumeEditorState]
}

// NewResumeEditor starts editing a copy of resume.
func NewResumeEditor(resume types.GeneratedResume) *ResumeEditor {
	items := slices.Clone(resume.Items)
	if items == nil {
		items = []types.ResumeItem{}
	}
	return &ResumeEditor{
		original: items,
		store:    NewStore(ResumeEditorState{ResumeID: resume.ID, Items: items}),
	}
}

// State is the observable screen state.
func (e *ResumeEditor) State() *Store[ResumeEditorState] { return e.store }

// UpdateContent replaces the content of the item with elementID.
func (e *ResumeEditor) UpdateContent(elementID, content string) bool {
	return e.editItem(elementID, func(it *types.ResumeItem) bool {
		it.Content = content
		return true
	})
}

// UpdateSubtitle replaces the subtitle of a TITLED item. Other items have none.
func (e *ResumeEditor) UpdateSubtitle(elementID, subtitle string) bool {
	return e.editItem(elementID, func(it *types.ResumeItem) bool {
		if it.Type != types.ItemTitled {
			return false
		}
		it.Subtitle = subtitle
		return true
	})
}

// Reset drops every local edit.
func (e *ResumeEditor) Reset() {
	e.store.Update(func(s *ResumeEditorState) {
		s.Items = e.original
		s.Dirty = false
	})
}

// Text renders the edited resume as plain text, one block per item.
func (e *ResumeEditor) Text() string {
	items := e.store.Snapshot().Items
	blocks := make([]string, 0, len(items))
	for _, it := range items {
		if text := strings.TrimSpace(it.Render()); text != "" {
			blocks = append(blocks, text)
		}
	}
	return strings.Join(blocks, "\n\n")
}

func (e *ResumeEditor) editItem(elementID string, fn func(*types.ResumeItem) bool) bool {
	var ok bool
	e.store.Update(func(s *ResumeEditorState) {
		i := slices.IndexFunc(s.Items, func(it types.ResumeItem) bool { return it.ElementID == elementID })
		if i < 0 {
			return
		}
		items := slices.Clone(s.Items)
		if ok = fn(&items[i]); ok {
			s.Items = items
			s.Dirty = true
		}
	})
	return ok
}
