package tabscrape_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/tabscrape"
	"github.com/fwojciec/tabscrape/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElementPresent(t *testing.T) {
	t.Parallel()

	t.Run("satisfied when at least one element matches", func(t *testing.T) {
		t.Parallel()

		var gotSelector string
		session := &mock.Session{
			CountFn: func(_ context.Context, selector string) (int, error) {
				gotSelector = selector
				return 2, nil
			},
		}

		ok, err := tabscrape.ElementPresent("table.data")(context.Background(), session)

		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "table.data", gotSelector)
	})

	t.Run("not satisfied when nothing matches", func(t *testing.T) {
		t.Parallel()

		session := &mock.Session{
			CountFn: func(_ context.Context, _ string) (int, error) {
				return 0, nil
			},
		}

		ok, err := tabscrape.TablePresent(context.Background(), session)

		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("reports count errors", func(t *testing.T) {
		t.Parallel()

		session := &mock.Session{
			CountFn: func(_ context.Context, _ string) (int, error) {
				return 0, errors.New("execution context was destroyed")
			},
		}

		ok, err := tabscrape.TablePresent(context.Background(), session)

		require.Error(t, err)
		assert.False(t, ok)
	})
}
