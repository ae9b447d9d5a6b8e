package frame

// EdgeMask is a bitmask of output/window edges.
type EdgeMask uint32

const (
	EdgeNone       EdgeMask = 0
	EdgeMaskTop    EdgeMask = 1 << 0
	EdgeMaskBottom EdgeMask = 1 << 1
	EdgeMaskLeft   EdgeMask = 1 << 2
	EdgeMaskRight  EdgeMask = 1 << 3
)

// ResizeEdges maps a frame part to the edges a resize initiated on it
// affects. Border parts map to one edge, corner parts to the union of
// their two adjacent edges, and everything else to EdgeNone.
func ResizeEdges(t PartType) EdgeMask {
	switch t {
	case PartTop:
		return EdgeMaskTop
	case PartRight:
		return EdgeMaskRight
	case PartBottom:
		return EdgeMaskBottom
	case PartLeft:
		return EdgeMaskLeft
	case CornerTopLeft:
		return EdgeMaskTop | EdgeMaskLeft
	case CornerTopRight:
		return EdgeMaskTop | EdgeMaskRight
	case CornerBottomRight:
		return EdgeMaskBottom | EdgeMaskRight
	case CornerBottomLeft:
		return EdgeMaskBottom | EdgeMaskLeft
	default:
		return EdgeNone
	}
}
