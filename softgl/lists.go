package softgl

import (
	"fmt"

	"go.uber.org/zap"

	"glscene/draw"
)

func (c *Context) GenList() uint32 {
	if c.recording != nil {
		return draw.InvalidList
	}
	c.nextList++
	id := c.nextList
	c.lists[id] = draw.NewDisplayList(0)
	return id
}

// NewList starts recording into id. Recording into a list while another is
// open is ignored.
func (c *Context) NewList(id uint32) {
	if id == draw.InvalidList || c.recording != nil {
		c.debugf("new list ignored", zap.Uint32("list", id))
		return
	}
	c.recording = draw.NewDisplayList(0)
	c.recordingID = id
}

func (c *Context) EndList() {
	if c.recording == nil {
		return
	}
	c.lists[c.recordingID] = c.recording
	if c.recordingID > c.nextList {
		c.nextList = c.recordingID
	}
	c.recording = nil
	c.recordingID = draw.InvalidList
}

func (c *Context) CallList(id uint32) {
	if c.recording != nil {
		c.recording.CallList(id)
		return
	}
	dl, ok := c.lists[id]
	if !ok {
		c.debugf("call of unknown list", zap.Uint32("list", id))
		return
	}
	if c.listDepth >= maxListDepth {
		c.debugf("list nesting too deep", zap.Uint32("list", id))
		return
	}
	c.listDepth++
	dl.Replay(c)
	c.listDepth--
}

func (c *Context) DeleteList(id uint32) error {
	if _, ok := c.lists[id]; !ok {
		return fmt.Errorf("delete list %d: %w", id, ErrUnknownList)
	}
	delete(c.lists, id)
	return nil
}

// Lists returns the number of live display lists.
func (c *Context) Lists() int {
	return len(c.lists)
}

// HasList reports whether id names a live display list.
func (c *Context) HasList(id uint32) bool {
	_, ok := c.lists[id]
	return ok
}
