package draw

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// maxChunkSize keeps each write under a typical MTU.
const maxChunkSize = 1400

// ChunkWriter collects one frame of terminal output and sends it in
// MTU-sized writes on Flush. Cursor positions are relative to the canvas
// origin and shifted by the centring offset.
type ChunkWriter struct {
	w      io.Writer
	buf    strings.Builder
	num    [20]byte
	offCol int
	offRow int
}

// NewChunkWriter creates a ChunkWriter that flushes to w.
func NewChunkWriter(w io.Writer, offsetCol, offsetRow int) *ChunkWriter {
	return &ChunkWriter{w: w, offCol: offsetCol, offRow: offsetRow}
}

// SetOffset moves the canvas origin, e.g. after a resize.
func (cw *ChunkWriter) SetOffset(offsetCol, offsetRow int) {
	cw.offCol = offsetCol
	cw.offRow = offsetRow
}

// moveCursor appends a cursor position sequence for the 1-based canvas cell.
func (cw *ChunkWriter) moveCursor(col, row int) {
	cw.buf.WriteString("\033[")
	cw.buf.Write(strconv.AppendInt(cw.num[:0], int64(row+cw.offRow), 10))
	cw.buf.WriteByte(';')
	cw.buf.Write(strconv.AppendInt(cw.num[:0], int64(col+cw.offCol), 10))
	cw.buf.WriteByte('H')
}

// Write appends raw bytes to the frame.
func (cw *ChunkWriter) Write(p []byte) (int, error) {
	return cw.buf.Write(p)
}

// WriteAt appends s at the 1-based canvas cell (col, row).
func (cw *ChunkWriter) WriteAt(col, row int, s string) {
	cw.moveCursor(col, row)
	cw.buf.WriteString(s)
}

// Flush sends the frame and starts a new one.
func (cw *ChunkWriter) Flush() error {
	data := cw.buf.String()
	cw.buf.Reset()
	for len(data) > 0 {
		n := min(len(data), maxChunkSize)
		if _, err := io.WriteString(cw.w, data[:n]); err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}

// TermSizeFunc reports the terminal size in cells.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc returns the size of the terminal attached to os.Stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// ClearScreen clears the terminal and homes the cursor.
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J")
}

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25l")
}

// ShowCursor shows the terminal cursor.
func ShowCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25h")
}
