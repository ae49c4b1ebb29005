// internal/device/device_test.go
package device

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sychotixdev/Kalon/internal/motion"
)

func TestFixedCursor(t *testing.T) {
	t.Parallel()

	p := motion.Point{X: 33, Y: 44}
	cursor := Fixed(p)

	got, err := cursor.Position()
	require.NoError(t, err)
	assert.Equal(t, p, got)

	// Writes are accepted and discarded; the reported position never moves.
	require.NoError(t, cursor.MoveTo(motion.Point{X: 1, Y: 2}))
	got, err = cursor.Position()
	require.NoError(t, err)
	assert.Equal(t, p, got)
}
