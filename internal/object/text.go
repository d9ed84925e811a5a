package object

// Text is a line of overlay text anchored at field coordinates.
type Text struct {
	X, Y  float64
	Value string
}

// Draw writes the text at the terminal cell covering its field position.
func (t Text) Draw(ctx DrawContext) error {
	if t.Value == "" || ctx.Text == nil {
		return nil
	}
	col, row := ctx.Canvas.Cell(t.X, t.Y)
	if col < 1 {
		col = 1
	}
	if row < 1 {
		row = 1
	}
	ctx.Text.WriteAt(col, row, t.Value)
	return nil
}
