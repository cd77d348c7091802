package tui

import (
	"strings"

	"github.com/nikbrunner/shelf/internal/tui/layout"
)

// Hint is one keybind shown in the bottom bar.
type Hint struct {
	Key  string // e.g. "j/k", "Enter"
	Desc string // e.g. "move", "open"
}

// HintSet groups the hints of one screen. Groups render in field order.
type HintSet struct {
	Nav    []Hint
	Action []Hint
	Edit   []Hint
	System []Hint
}

// All flattens the groups.
func (h HintSet) All() []Hint {
	var all []Hint
	for _, group := range [][]Hint{h.Nav, h.Action, h.Edit, h.System} {
		all = append(all, group...)
	}
	return all
}

var (
	hintSave   = Hint{Key: "Enter", Desc: "save"}
	hintCancel = Hint{Key: "Esc", Desc: "cancel"}
	hintMove   = Hint{Key: "j/k", Desc: "move"}
	hintHelp   = Hint{Key: "?", Desc: "help"}
	hintQuit   = Hint{Key: "q", Desc: "quit"}
)

// getContextualHints returns the hints for the current mode and view.
func (a App) getContextualHints() HintSet {
	switch a.mode {
	case ModeNormal:
		if a.view == ViewFolders {
			return HintSet{
				Nav:    []Hint{hintMove, {Key: "l", Desc: "open"}},
				Edit:   []Hint{{Key: "a", Desc: "new"}, {Key: "e", Desc: "rename"}, {Key: "d", Desc: "del"}},
				System: []Hint{hintHelp, hintQuit},
			}
		}
		hints := HintSet{
			Nav:    []Hint{hintMove, {Key: "h", Desc: "back"}},
			Action: []Hint{{Key: "o", Desc: "open"}, {Key: "Y", Desc: "yank"}, {Key: "/", Desc: "search"}},
			Edit:   []Hint{{Key: "a", Desc: "add"}, {Key: "e", Desc: "edit"}, {Key: "d", Desc: "del"}},
			System: []Hint{hintHelp, hintQuit},
		}
		if !a.search.Active() {
			hints.Edit = append(hints.Edit, Hint{Key: "m", Desc: "drag"})
		}
		return hints
	case ModeSearch:
		return HintSet{
			Action: []Hint{{Key: "Enter", Desc: "keep"}},
			System: []Hint{{Key: "Esc", Desc: "clear"}},
		}
	case ModeCreateFolder, ModeRenameFolder, ModeEditTitle:
		return HintSet{Action: []Hint{hintSave}, System: []Hint{hintCancel}}
	case ModeAddBookmark:
		return HintSet{
			Nav:    []Hint{{Key: "Tab", Desc: "next field"}},
			Action: []Hint{hintSave},
			System: []Hint{hintCancel},
		}
	case ModeConfirmDelete:
		return HintSet{
			Action: []Hint{{Key: "y/Enter", Desc: "delete"}},
			System: []Hint{{Key: "n/Esc", Desc: "keep"}},
		}
	case ModeGrab:
		return HintSet{
			Nav:    []Hint{hintMove},
			Action: []Hint{{Key: "Enter", Desc: "drop"}},
			System: []Hint{hintCancel},
		}
	case ModeFetching:
		return HintSet{System: []Hint{hintCancel}}
	default:
		return HintSet{}
	}
}

// renderHints renders hints as "j/k:move h:back", dropping hints from the
// end until the line fits in width.
func (a App) renderHints(hints HintSet, width int) string {
	all := hints.All()
	parts := make([]string, len(all))
	for i, h := range all {
		parts[i] = a.styles.HintKey.Render(h.Key) + ":" + a.styles.HintDesc.Render(h.Desc)
	}

	for len(parts) > 0 {
		line := strings.Join(parts, " ")
		if layout.VisibleLength(line) <= width {
			return line
		}
		parts = parts[:len(parts)-1]
	}
	return ""
}
