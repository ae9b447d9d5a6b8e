// Package frame defines the semantic taxonomy of window-frame regions
// and the pure queries over it: containment between region tags and the
// mapping from a region tag to the resize edges it implies.
package frame

// PartType tags one hit-testable region of a window frame. Concrete tags
// are assigned to decoration parts; aggregate tags (PartButton,
// PartTitlebar, PartTitle via its range, PartFrame, PartAll) are only
// ever used as query arguments to Contains.
type PartType int

const (
	PartNone PartType = iota

	// Titlebar buttons.
	ButtonClose
	ButtonMaximize
	ButtonIconify
	ButtonWindowMenu
	ButtonWindowIcon
	ButtonShade
	ButtonOmnipresent

	// Titlebar background and title text.
	PartTitlebar
	PartTitle

	// Corners.
	CornerTopLeft
	CornerTopRight
	CornerBottomRight
	CornerBottomLeft

	// Borders.
	PartTop
	PartRight
	PartBottom
	PartLeft

	// The window's own content.
	PartClient

	// Aggregates. Never assigned to a decoration part.
	PartFrame
	PartButton
	PartAll
)

// Aggregate ranges, spelled out as explicit first/last pairs rather than
// open-coded comparisons so that verifyRanges can check them against the
// enumeration. Adding a tag to the enum requires revisiting these.
const (
	firstButton = ButtonClose
	lastButton  = ButtonOmnipresent

	firstTitlebar = ButtonClose
	lastTitlebar  = PartTitle

	firstTitle = PartTitlebar
	lastTitle  = PartTitle

	firstFrame = ButtonClose
	lastFrame  = PartClient
)

func (t PartType) String() string {
	switch t {
	case PartNone:
		return "none"
	case ButtonClose:
		return "button-close"
	case ButtonMaximize:
		return "button-maximize"
	case ButtonIconify:
		return "button-iconify"
	case ButtonWindowMenu:
		return "button-window-menu"
	case ButtonWindowIcon:
		return "button-window-icon"
	case ButtonShade:
		return "button-shade"
	case ButtonOmnipresent:
		return "button-omnipresent"
	case PartTitlebar:
		return "titlebar"
	case PartTitle:
		return "title"
	case CornerTopLeft:
		return "corner-top-left"
	case CornerTopRight:
		return "corner-top-right"
	case CornerBottomRight:
		return "corner-bottom-right"
	case CornerBottomLeft:
		return "corner-bottom-left"
	case PartTop:
		return "top"
	case PartRight:
		return "right"
	case PartBottom:
		return "bottom"
	case PartLeft:
		return "left"
	case PartClient:
		return "client"
	case PartFrame:
		return "frame"
	case PartButton:
		return "button"
	case PartAll:
		return "all"
	default:
		return "unknown"
	}
}

// Contains reports whether the candidate region is part of the whole.
// Every tag contains itself, PartAll contains everything, the edge tags
// contain exactly their two adjacent corners, and the aggregate tags
// cover contiguous ranges of the enumeration.
//
// PartTitle deliberately includes the blank titlebar background: "title"
// as a mouse context means the whole draggable strip, not just the text.
func Contains(whole, candidate PartType) bool {
	if whole == candidate || whole == PartAll {
		return true
	}
	switch whole {
	case PartButton:
		return candidate >= firstButton && candidate <= lastButton
	case PartTitlebar:
		return candidate >= firstTitlebar && candidate <= lastTitlebar
	case PartTitle:
		return candidate >= firstTitle && candidate <= lastTitle
	case PartFrame:
		return candidate >= firstFrame && candidate <= lastFrame
	case PartTop:
		return candidate == CornerTopLeft || candidate == CornerTopRight
	case PartRight:
		return candidate == CornerTopRight || candidate == CornerBottomRight
	case PartBottom:
		return candidate == CornerBottomRight || candidate == CornerBottomLeft
	case PartLeft:
		return candidate == CornerTopLeft || candidate == CornerBottomLeft
	}
	return false
}

// verifyRanges panics if the enumeration order no longer matches the
// aggregate range constants above. It runs once at init so a reordering
// of the enum fails immediately instead of corrupting hit tests.
func verifyRanges() {
	ordered := []PartType{
		ButtonClose, ButtonMaximize, ButtonIconify, ButtonWindowMenu,
		ButtonWindowIcon, ButtonShade, ButtonOmnipresent,
		PartTitlebar, PartTitle,
	}
	for i := 1; i < len(ordered); i++ {
		if ordered[i] != ordered[i-1]+1 {
			panic("frame: part enumeration is not contiguous")
		}
	}
	if firstButton != ButtonClose || lastButton != ButtonOmnipresent {
		panic("frame: button range out of sync")
	}
	if firstTitlebar != ButtonClose || lastTitlebar != PartTitle {
		panic("frame: titlebar range out of sync")
	}
	if firstFrame != ButtonClose || lastFrame != PartClient {
		panic("frame: frame range out of sync")
	}
	if lastFrame <= lastTitlebar {
		panic("frame: client must follow titlebar parts")
	}
}

func init() {
	verifyRanges()
}
