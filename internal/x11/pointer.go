package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
)

// PointerPosition returns the cursor position in root (global)
// coordinates.
func (c *Connection) PointerPosition() (x, y float64, err error) {
	reply, err := xproto.QueryPointer(c.XUtil.Conn(), c.Root).Reply()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to query pointer: %w", err)
	}
	return float64(reply.RootX), float64(reply.RootY), nil
}
