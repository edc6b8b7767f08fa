// Package types contains shared data structures for termtris-local.
package types

import (
	"encoding/json"
	"fmt"
)

// Command is a discrete input code consumed by the game session.
type Command int

const (
	CmdNone        Command = -1
	CmdDown        Command = 0
	CmdLeft        Command = 1
	CmdRight       Command = 2
	CmdTransform   Command = 3
	CmdDrop        Command = 4
	CmdFastForward Command = 5
)

func (c Command) String() string {
	switch c {
	case CmdDown:
		return "down"
	case CmdLeft:
		return "left"
	case CmdRight:
		return "right"
	case CmdTransform:
		return "transform"
	case CmdDrop:
		return "drop"
	case CmdFastForward:
		return "fast-forward"
	}
	return "none"
}

// BoardPos represents a cell position on the board.
// Row index increases downward; negative rows are above the visible board.
type BoardPos struct {
	X int
	Y int
}

// MarshalJSON encodes BoardPos as a JSON array [x, y].
func (p BoardPos) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{p.X, p.Y})
}

// UnmarshalJSON allows BoardPos to be unmarshaled from a JSON array [x, y].
func (p *BoardPos) UnmarshalJSON(data []byte) error {
	var v []float64
	err := json.Unmarshal(data, &v)
	if err != nil {
		return err
	}
	if len(v) != 2 {
		return fmt.Errorf("board position %s: want [x, y]", data)
	}
	p.X = int(v[0])
	p.Y = int(v[1])
	return nil
}

// Snapshot is a read-only copy of a game session, pushed to renderers.
// Rows holds one string per board row: '.' for an empty cell, otherwise the shape name.
type Snapshot struct {
	Rows      []string   `json:"rows"`
	Active    []BoardPos `json:"active"`
	Shadow    []BoardPos `json:"shadow"`
	ActiveID  string     `json:"active_id"`
	Next      []BoardPos `json:"next"`
	NextID    string     `json:"next_id"`
	Score     int        `json:"score"`
	Lines     int        `json:"lines"`
	BestScore int        `json:"best_score"`
	BestLines int        `json:"best_lines"`
	Pieces    int        `json:"pieces"`
	Cadence   int        `json:"cadence"`
	Paused    bool       `json:"paused"`
	Over      bool       `json:"over"`
	Auto      bool       `json:"auto"`
}

// Height returns the board height.
func (s *Snapshot) Height() int {
	return len(s.Rows)
}

// Width returns the board width.
func (s *Snapshot) Width() int {
	if s.Height() == 0 {
		return 0
	}
	return len(s.Rows[0])
}

// At returns the shape name at (x, y), or 0 for an empty cell.
func (s *Snapshot) At(x, y int) byte {
	c := s.Rows[y][x]
	if c == '.' {
		return 0
	}
	return c
}
