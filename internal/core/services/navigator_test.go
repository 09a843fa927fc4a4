package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowNavigator_InitialState(t *testing.T) {
	nav := NewWindowNavigator(5)
	nav.Rebind(8)

	assert.Equal(t, 0, nav.GlobalIndex())
	assert.Equal(t, 0, nav.CursorRow())

	start, end := nav.Window()
	assert.Equal(t, 0, start)
	assert.Equal(t, 5, end)
}

func TestWindowNavigator_WindowClampedToShortList(t *testing.T) {
	nav := NewWindowNavigator(5)
	nav.Rebind(3)

	start, end := nav.Window()
	assert.Equal(t, 0, start)
	assert.Equal(t, 3, end)
}

func TestWindowNavigator_MoveDown_WalksThenWraps(t *testing.T) {
	// Reference scenario: 8 items, window of 5. Seven moves visit
	// every remaining index, the eighth wraps to the top.
	nav := NewWindowNavigator(5)
	nav.Rebind(8)

	visited := []int{nav.GlobalIndex()}
	for i := 0; i < 7; i++ {
		nav.MoveDown()
		visited = append(visited, nav.GlobalIndex())
	}

	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7}, visited)

	nav.MoveDown()
	assert.Equal(t, 0, nav.GlobalIndex())
	assert.Equal(t, 0, nav.CursorRow())
}

func TestWindowNavigator_MoveDown_SlidesWindow(t *testing.T) {
	nav := NewWindowNavigator(5)
	nav.Rebind(8)

	for i := 0; i < 5; i++ {
		nav.MoveDown()
	}

	// Cursor pinned to the last visible row while the window slides.
	start, end := nav.Window()
	assert.Equal(t, 1, start)
	assert.Equal(t, 6, end)
	assert.Equal(t, 4, nav.CursorRow())
	assert.Equal(t, 5, nav.GlobalIndex())
}

func TestWindowNavigator_MoveUp_WrapsToBottom(t *testing.T) {
	nav := NewWindowNavigator(5)
	nav.Rebind(8)

	nav.MoveUp()

	assert.Equal(t, 7, nav.GlobalIndex())
	start, end := nav.Window()
	assert.Equal(t, 3, start)
	assert.Equal(t, 8, end)
	assert.Equal(t, 4, nav.CursorRow())
}

func TestWindowNavigator_MoveUp_WrapsOnShortList(t *testing.T) {
	nav := NewWindowNavigator(5)
	nav.Rebind(3)

	nav.MoveUp()

	assert.Equal(t, 2, nav.GlobalIndex())
	assert.Equal(t, 2, nav.CursorRow())
	start, _ := nav.Window()
	assert.Equal(t, 0, start)
}

func TestWindowNavigator_WrapInvariant_Down(t *testing.T) {
	for length := 1; length <= 12; length++ {
		nav := NewWindowNavigator(5)
		nav.Rebind(length)

		for i := 0; i < length; i++ {
			nav.MoveDown()
		}

		assert.Equalf(t, 0, nav.GlobalIndex(), "length %d", length)
	}
}

func TestWindowNavigator_WrapInvariant_Up(t *testing.T) {
	for length := 1; length <= 12; length++ {
		nav := NewWindowNavigator(5)
		nav.Rebind(length)

		for i := 0; i < length; i++ {
			nav.MoveUp()
		}

		assert.Equalf(t, 0, nav.GlobalIndex(), "length %d", length)
	}
}

func TestWindowNavigator_BoundsInvariant(t *testing.T) {
	// Any mixed sequence of moves keeps the global index in range.
	moves := []bool{true, true, false, true, false, false, false, true, true, true, true, false}

	for length := 1; length <= 9; length++ {
		nav := NewWindowNavigator(4)
		nav.Rebind(length)

		for _, down := range moves {
			if down {
				nav.MoveDown()
			} else {
				nav.MoveUp()
			}
			require.GreaterOrEqual(t, nav.GlobalIndex(), 0)
			require.Less(t, nav.GlobalIndex(), length)

			start, end := nav.Window()
			require.GreaterOrEqual(t, start, 0)
			require.LessOrEqual(t, end, length)
		}
	}
}

func TestWindowNavigator_EmptyListIsNoOp(t *testing.T) {
	nav := NewWindowNavigator(5)
	nav.Rebind(0)

	nav.MoveDown()
	nav.MoveUp()

	assert.Equal(t, 0, nav.GlobalIndex())
	start, end := nav.Window()
	assert.Equal(t, 0, start)
	assert.Equal(t, 0, end)
}

func TestWindowNavigator_SingleItem(t *testing.T) {
	nav := NewWindowNavigator(5)
	nav.Rebind(1)

	nav.MoveDown()
	assert.Equal(t, 0, nav.GlobalIndex())

	nav.MoveUp()
	assert.Equal(t, 0, nav.GlobalIndex())
}

func TestWindowNavigator_ShortListNeverSlides(t *testing.T) {
	nav := NewWindowNavigator(5)
	nav.Rebind(3)

	for i := 0; i < 9; i++ {
		nav.MoveDown()
		start, _ := nav.Window()
		assert.Equal(t, 0, start)
	}
}

func TestWindowNavigator_RebindResetsPosition(t *testing.T) {
	nav := NewWindowNavigator(5)
	nav.Rebind(8)
	for i := 0; i < 6; i++ {
		nav.MoveDown()
	}
	require.NotZero(t, nav.GlobalIndex())

	nav.Rebind(4)

	assert.Equal(t, 0, nav.GlobalIndex())
	assert.Equal(t, 4, nav.Length())
}

func TestWindowNavigator_ClampsWindowSize(t *testing.T) {
	nav := NewWindowNavigator(0)

	assert.Equal(t, 1, nav.WindowSize())
}

func TestWindowNavigator_NegativeLengthTreatedAsEmpty(t *testing.T) {
	nav := NewWindowNavigator(5)
	nav.Rebind(-3)

	assert.Equal(t, 0, nav.Length())
}
