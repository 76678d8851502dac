package view

// Drag tracks a primary-button rotation gesture.
type Drag struct {
	Active       bool
	LastX, LastY int
}

// Press starts a drag at (x, y).
func (d *Drag) Press(x, y int) {
	d.Active = true
	d.LastX, d.LastY = x, y
}

// Release ends the drag.
func (d *Drag) Release() {
	d.Active = false
}

// Motion rotates s by the pointer delta since the last recorded position.
// Returns true when s changed and needs a redraw.
func (d *Drag) Motion(x, y int, s *State) bool {
	if !d.Active {
		return false
	}

	dx := x - d.LastX
	dy := y - d.LastY
	s.AngleY += float32(dx) * DragFactor
	s.AngleX += float32(dy) * DragFactor

	d.LastX, d.LastY = x, y
	return true
}
