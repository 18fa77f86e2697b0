package candidate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppendDedupesByOutput(t *testing.T) {
	l := NewList("あい")
	l.Append(Candidate{Output: "愛"})
	l.Append(Candidate{Output: "哀"})
	l.Append(Candidate{Output: "愛", Annotation: "different reading, same output"})

	require.Equal(t, 2, l.Len())
	require.Equal(t, "愛", l.All()[0].Output)
}

func TestDisplayWithAnnotation(t *testing.T) {
	c := Candidate{Output: "愛", Annotation: "love"}
	require.Equal(t, "愛;love", c.Display())

	c2 := Candidate{Output: "愛"}
	require.Equal(t, "愛", c2.Display())
}

func TestCursorNavigation(t *testing.T) {
	l := NewList("k")
	l.Append(Candidate{Output: "一"})
	l.Append(Candidate{Output: "二"})
	l.Append(Candidate{Output: "三"})

	cur, ok := l.Current()
	require.True(t, ok)
	require.Equal(t, "一", cur.Output)

	require.True(t, l.Next())
	cur, _ = l.Current()
	require.Equal(t, "二", cur.Output)

	require.True(t, l.Next())
	cur, _ = l.Current()
	require.Equal(t, "三", cur.Output)

	// spec §4.3 TryNextCandidate: advancing past the last candidate fails,
	// letting the engine fall back to Register.
	require.False(t, l.Next())
	cur, _ = l.Current()
	require.Equal(t, "三", cur.Output)

	require.True(t, l.Prev())
	cur, _ = l.Current()
	require.Equal(t, "二", cur.Output)

	require.True(t, l.Prev())
	// spec §4.3 TryPreviousCandidate: retreating before the first candidate
	// fails, letting the engine fall back to PreComposition.
	require.False(t, l.Prev())
}

func TestCurrentOnEmptyList(t *testing.T) {
	l := NewList("k")
	_, ok := l.Current()
	require.False(t, ok)
}

func TestSetCursorBounds(t *testing.T) {
	l := NewList("k")
	l.Append(Candidate{Output: "一"})
	l.Append(Candidate{Output: "二"})

	require.True(t, l.SetCursor(1))
	require.Equal(t, 1, l.Cursor())

	require.False(t, l.SetCursor(5))
	require.Equal(t, 1, l.Cursor())
	require.False(t, l.SetCursor(-1))
}

func TestReplaceAllResetsCursor(t *testing.T) {
	l := NewList("k")
	l.Append(Candidate{Output: "一"})
	l.SetCursor(0)
	l.ReplaceAll([]Candidate{{Output: "二"}, {Output: "三"}})

	require.Equal(t, 0, l.Cursor())
	require.Equal(t, 2, l.Len())
	cur, _ := l.Current()
	require.Equal(t, "二", cur.Output)
}
