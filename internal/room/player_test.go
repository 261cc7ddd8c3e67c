package room

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlayerDefaults(t *testing.T) {
	p := NewPlayer("p1", Avatar{Shape: "square", Pattern: "dotted", Color: "#FCD34D"}, nil)

	require.NotNil(t, p)
	assert.Equal(t, "p1", p.ID)
	assert.Equal(t, StartingLives, p.Lives)
	assert.True(t, p.Alive)
	assert.Equal(t, StateKing, p.State)
	assert.Equal(t, "square", p.Avatar.Shape)
}

func TestApplyCollisionLadder(t *testing.T) {
	p := NewPlayer("p1", Avatar{}, nil)

	steps := []struct {
		wantEliminated bool
		wantLives      int
		wantState      VisualState
		wantAlive      bool
	}{
		{false, 2, StateNormal, true},
		{false, 1, StateNervous, true},
		{true, 0, StateNervous, false},
	}

	for _, step := range steps {
		eliminated := p.ApplyCollision()
		assert.Equal(t, step.wantEliminated, eliminated)
		assert.Equal(t, step.wantLives, p.Lives)
		assert.Equal(t, step.wantState, p.State)
		assert.Equal(t, step.wantAlive, p.Alive)
	}
}

func TestApplyCollisionAfterElimination(t *testing.T) {
	p := NewPlayer("p1", Avatar{}, nil)
	for i := 0; i < StartingLives; i++ {
		p.ApplyCollision()
	}
	require.False(t, p.Alive)
	require.Equal(t, 0, p.Lives)

	// further hits must not decrement, and the report stays consistent
	assert.True(t, p.ApplyCollision())
	assert.Equal(t, 0, p.Lives)
	assert.False(t, p.Alive)
}

func TestSetPositionIsUnconditional(t *testing.T) {
	p := NewPlayer("p1", Avatar{}, nil)

	p.SetPosition(12.5, 480)
	assert.Equal(t, Position{X: 12.5, Y: 480}, p.Position)

	// out-of-arena values pass through, clamping is the client's convention
	p.SetPosition(-10, 9999)
	assert.Equal(t, Position{X: -10, Y: 9999}, p.Position)
}
