package collision

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewTracker(t *testing.T) {
	tracker := NewTracker()

	require.NotNil(t, tracker)
	require.Equal(t, 0, tracker.Count())
	require.False(t, tracker.HasCollision())
	require.Empty(t, tracker.Names())
}

func TestTracker_TrackName_Success(t *testing.T) {
	tracker := NewTracker()

	err := tracker.TrackName("cpu.usage", 0x1234567890abcdef)
	require.NoError(t, err)
	require.Equal(t, 1, tracker.Count())
	require.False(t, tracker.HasCollision())
	require.Equal(t, []string{"cpu.usage"}, tracker.Names())

	err = tracker.TrackName("mem.usage", 0xfedcba0987654321)
	require.NoError(t, err)
	require.Equal(t, 2, tracker.Count())
	require.False(t, tracker.HasCollision())
	require.Equal(t, []string{"cpu.usage", "mem.usage"}, tracker.Names())
}

func TestTracker_TrackName_EmptyName(t *testing.T) {
	tracker := NewTracker()

	err := tracker.TrackName("", 0x1234567890abcdef)
	require.ErrorIs(t, err, ErrInvalidName)
}

func TestTracker_TrackName_Duplicate(t *testing.T) {
	tracker := NewTracker()

	require.NoError(t, tracker.TrackName("cpu.usage", 0x1111))
	err := tracker.TrackName("cpu.usage", 0x1111)
	require.ErrorIs(t, err, ErrDuplicateName)
}

func TestTracker_TrackName_Collision(t *testing.T) {
	tracker := NewTracker()

	require.NoError(t, tracker.TrackName("cpu.usage", 0x1111))
	err := tracker.TrackName("mem.usage", 0x1111)
	require.NoError(t, err)
	require.True(t, tracker.HasCollision())
	require.Equal(t, []string{"cpu.usage", "mem.usage"}, tracker.Names())
}

func TestTracker_TrackID(t *testing.T) {
	tracker := NewTracker()

	require.NoError(t, tracker.TrackID(0x1111))
	err := tracker.TrackID(0x1111)
	require.ErrorIs(t, err, ErrHashCollision)
}

func TestTracker_Reset(t *testing.T) {
	tracker := NewTracker()

	require.NoError(t, tracker.TrackName("cpu.usage", 0x1111))
	require.NoError(t, tracker.TrackName("mem.usage", 0x1111))
	require.True(t, tracker.HasCollision())

	tracker.Reset()
	require.Equal(t, 0, tracker.Count())
	require.False(t, tracker.HasCollision())
	require.Empty(t, tracker.Names())
}
