package fetch

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type statusErr struct{ status int }

func (e *statusErr) Error() string   { return fmt.Sprintf("status %d", e.status) }
func (e *statusErr) StatusCode() int { return e.status }

func TestClassify(t *testing.T) {
	t.Parallel()

	t.Run("nil", func(t *testing.T) {
		assert.Nil(t, classify(nil))
	})

	t.Run("plain error", func(t *testing.T) {
		f := classify(errors.New("connection refused"))
		require.NotNil(t, f)
		assert.Equal(t, "connection refused", f.Message)
		assert.Zero(t, f.Status)
		assert.False(t, f.Canceled)
	})

	t.Run("cancellation", func(t *testing.T) {
		f := classify(fmt.Errorf("execute request: %w", context.Canceled))
		require.NotNil(t, f)
		assert.True(t, f.Canceled)
	})

	t.Run("deadline", func(t *testing.T) {
		f := classify(context.DeadlineExceeded)
		require.NotNil(t, f)
		assert.True(t, f.Canceled)
	})

	t.Run("status carrier", func(t *testing.T) {
		f := classify(fmt.Errorf("api: %w", &statusErr{status: 404}))
		require.NotNil(t, f)
		assert.Equal(t, 404, f.Status)
		assert.False(t, f.Canceled)
	})
}

func TestOutcomeOK(t *testing.T) {
	t.Parallel()

	assert.True(t, Outcome[int]{Data: 1}.OK())
	assert.False(t, Outcome[int]{Err: &Failure{Message: "x"}}.OK())
}
