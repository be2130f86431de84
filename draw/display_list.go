package draw

import (
	"github.com/go-gl/mathgl/mgl64"
)

type opcode uint8

const (
	opDepthMask opcode = iota
	opTexture
	opBegin
	opVertex
	opNormal
	opEnd
	opPushTransform
	opPopTransform
	opPushName
	opPopName
	opCallList
)

type command struct {
	op   opcode
	prim Primitive
	flag bool
	size float32
	pos  [3]float32
	col  Color
	mat  mgl64.Mat4
	id   uint32
}

// DisplayList records Canvas commands for later replay. Backends without
// native list support use it to implement NewList/EndList/CallList.
type DisplayList struct {
	cmds []command
}

func NewDisplayList(capacity int) *DisplayList {
	if capacity < 8 {
		capacity = 8
	}
	return &DisplayList{cmds: make([]command, 0, capacity)}
}

func (d *DisplayList) Len() int {
	return len(d.cmds)
}

func (d *DisplayList) Clear() {
	d.cmds = d.cmds[:0]
}

func (d *DisplayList) DepthMask(state bool) {
	d.cmds = append(d.cmds, command{op: opDepthMask, flag: state})
}

func (d *DisplayList) Texture(state bool) {
	d.cmds = append(d.cmds, command{op: opTexture, flag: state})
}

func (d *DisplayList) Begin(prim Primitive, size ...float32) {
	d.cmds = append(d.cmds, command{op: opBegin, prim: prim, size: PrimSize(size)})
}

func (d *DisplayList) Vertex(x, y, z float32, col Color) {
	d.cmds = append(d.cmds, command{op: opVertex, pos: [3]float32{x, y, z}, col: col})
}

func (d *DisplayList) Normal(x, y, z float32) {
	d.cmds = append(d.cmds, command{op: opNormal, pos: [3]float32{x, y, z}})
}

func (d *DisplayList) End() {
	d.cmds = append(d.cmds, command{op: opEnd})
}

func (d *DisplayList) PushTransform(m mgl64.Mat4) {
	d.cmds = append(d.cmds, command{op: opPushTransform, mat: m})
}

func (d *DisplayList) PopTransform() {
	d.cmds = append(d.cmds, command{op: opPopTransform})
}

func (d *DisplayList) PushName(name uint32) {
	d.cmds = append(d.cmds, command{op: opPushName, id: name})
}

func (d *DisplayList) PopName() {
	d.cmds = append(d.cmds, command{op: opPopName})
}

func (d *DisplayList) CallList(id uint32) {
	d.cmds = append(d.cmds, command{op: opCallList, id: id})
}

// Replay issues the recorded commands into c in order.
func (d *DisplayList) Replay(c Canvas) {
	if c == nil {
		return
	}
	for i := range d.cmds {
		cmd := &d.cmds[i]
		switch cmd.op {
		case opDepthMask:
			c.DepthMask(cmd.flag)
		case opTexture:
			c.Texture(cmd.flag)
		case opBegin:
			c.Begin(cmd.prim, cmd.size)
		case opVertex:
			c.Vertex(cmd.pos[0], cmd.pos[1], cmd.pos[2], cmd.col)
		case opNormal:
			c.Normal(cmd.pos[0], cmd.pos[1], cmd.pos[2])
		case opEnd:
			c.End()
		case opPushTransform:
			c.PushTransform(cmd.mat)
		case opPopTransform:
			c.PopTransform()
		case opPushName:
			c.PushName(cmd.id)
		case opPopName:
			c.PopName()
		case opCallList:
			c.CallList(cmd.id)
		}
	}
}

// GenList always fails: lists cannot be created while recording.
func (d *DisplayList) GenList() uint32 {
	return InvalidList
}

func (d *DisplayList) NewList(uint32) {}

func (d *DisplayList) EndList() {}
