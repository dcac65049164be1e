package expenses

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFilter(t *testing.T) {
	t.Run("empty is all", func(t *testing.T) {
		f, err := ParseFilter("", "", "")
		require.NoError(t, err)
		assert.Empty(t, f.Category)
		assert.Nil(t, f.StartDate)
		assert.Nil(t, f.EndDate)
	})

	t.Run("valid category and range", func(t *testing.T) {
		f, err := ParseFilter("Salary", "2024-03-01", "2024-03-31")
		require.NoError(t, err)
		assert.Equal(t, "Salary", f.Category)
		require.NotNil(t, f.StartDate)
		assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), *f.StartDate)
		require.NotNil(t, f.EndDate)
	})

	t.Run("All passes through", func(t *testing.T) {
		f, err := ParseFilter("All", "", "")
		require.NoError(t, err)
		assert.Equal(t, "All", f.Category)
	})

	t.Run("unknown category rejected", func(t *testing.T) {
		_, err := ParseFilter("Snacks", "", "")
		assert.Error(t, err)
	})

	t.Run("malformed date rejected", func(t *testing.T) {
		_, err := ParseFilter("", "03/01/2024", "")
		assert.Error(t, err)
	})

	t.Run("inverted range rejected", func(t *testing.T) {
		_, err := ParseFilter("", "2024-03-31", "2024-03-01")
		assert.Error(t, err)
	})
}
