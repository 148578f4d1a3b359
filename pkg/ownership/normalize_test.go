package ownership

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		raw      map[string]string
		expected Assignment
	}{
		{
			name:     "empty input",
			raw:      map[string]string{},
			expected: Assignment{},
		},
		{
			name: "all levels kept",
			raw: map[string]string{
				"default": "0",
				"user1":   "1",
				"user2":   "2",
				"user3":   "3",
			},
			expected: Assignment{
				"default": LevelNone,
				"user1":   LevelLimited,
				"user2":   LevelObserver,
				"user3":   LevelOwner,
			},
		},
		{
			name: "inherit sentinel dropped",
			raw: map[string]string{
				"default": "2",
				"user1":   "-1",
			},
			expected: Assignment{"default": LevelObserver},
		},
		{
			name: "alternate sentinel encodings dropped",
			raw: map[string]string{
				"user1": "-2",
				"user2": "99",
				"user3": "4",
			},
			expected: Assignment{},
		},
		{
			name: "non-numeric garbage dropped",
			raw: map[string]string{
				"user1": "owner",
				"user2": "",
				"user3": "2.5",
				"user4": "1e1",
				"user5": " 2",
			},
			expected: Assignment{},
		},
		{
			name: "mixed valid and invalid",
			raw: map[string]string{
				"default": "3",
				"user1":   "-1",
				"user2":   "observer",
				"user3":   "0",
			},
			expected: Assignment{
				"default": LevelOwner,
				"user3":   LevelNone,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.raw))
		})
	}
}

func TestNormalizeOnlyEmitsLevels(t *testing.T) {
	raw := make(map[string]string)
	for i := -10; i <= 10; i++ {
		raw[fmt.Sprintf("user%d", i+10)] = fmt.Sprintf("%d", i)
	}

	assignment := Normalize(raw)

	require.Len(t, assignment, 4)
	for _, level := range assignment {
		assert.True(t, level.IsALevel())
	}
}

func TestLevelString(t *testing.T) {
	level, err := LevelString("observer")
	require.NoError(t, err)
	assert.Equal(t, LevelObserver, level)

	_, err = LevelString("inherit")
	require.Error(t, err)
}
