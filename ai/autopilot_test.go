package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termtris-local/board"
	"termtris-local/piece"
	"termtris-local/types"
)

func TestPlan(t *testing.T) {
	j := piece.Standard().ByID('j')
	tests := []struct {
		name string
		form int
		x    int
		r    Result
		want []types.Command
	}{
		{"in place", 0, 3, Result{Form: 0, X: 3}, []types.Command{types.CmdDrop}},
		{"turn and right", 1, 3, Result{Form: 3, X: 5}, []types.Command{
			types.CmdTransform, types.CmdTransform, types.CmdRight, types.CmdRight, types.CmdDrop,
		}},
		{"wrap and left", 3, 5, Result{Form: 0, X: 2}, []types.Command{
			types.CmdTransform, types.CmdLeft, types.CmdLeft, types.CmdLeft, types.CmdDrop,
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := piece.New(j, tt.x, 0)
			p.Transform(tt.form)
			assert.Equal(t, tt.want, Plan(tt.r, p))
		})
	}
}

func TestAutopilotDrainsAndReplans(t *testing.T) {
	catalog := piece.Standard()
	b := board.New(10, 20)
	a := NewAutopilot(NewSearcher(piece.NewSource(catalog, nil), 3, -3))

	assert.Equal(t, types.CmdNone, a.NextMove(b))

	require.True(t, b.Accept(piece.New(catalog.ByID('o'), 3, -3)))
	var got []types.Command
	for cmd := a.NextMove(b); cmd != types.CmdNone; cmd = a.NextMove(b) {
		got = append(got, cmd)
		require.Less(t, len(got), 40)
	}
	require.NotEmpty(t, got)
	assert.Equal(t, types.CmdDrop, got[len(got)-1])
	assert.Equal(t, types.CmdNone, a.NextMove(b), "plan stays drained for the same piece")

	require.True(t, b.Accept(piece.New(catalog.ByID('i'), 3, -3)))
	assert.NotEqual(t, types.CmdNone, a.NextMove(b), "a new piece gets a new plan")

	a.Reset()
	assert.NotEqual(t, types.CmdNone, a.NextMove(b))
}
