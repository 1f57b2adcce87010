package tabscrape_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/tabscrape"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := tabscrape.Errorf(tabscrape.ENOTFOUND, "table %q not found", "prices")

	assert.Equal(t, tabscrape.ENOTFOUND, tabscrape.ErrorCode(err))
	assert.Equal(t, "table \"prices\" not found", tabscrape.ErrorMessage(err))
	assert.Equal(t, "table \"prices\" not found", err.Error())
}

func TestWrapf(t *testing.T) {
	t.Parallel()

	cause := errors.New("exec: chrome not found")
	err := tabscrape.Wrapf(cause, tabscrape.EINTERNAL, "launching browser")

	assert.Equal(t, tabscrape.EINTERNAL, tabscrape.ErrorCode(err))
	assert.Equal(t, "launching browser", tabscrape.ErrorMessage(err))
	assert.Equal(t, "launching browser: exec: chrome not found", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("scrape: %w", tabscrape.Errorf(tabscrape.ETIMEOUT, "waited 30s"))

	assert.Equal(t, tabscrape.ETIMEOUT, tabscrape.ErrorCode(err))
	assert.Equal(t, "waited 30s", tabscrape.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")

	assert.Equal(t, tabscrape.EINTERNAL, tabscrape.ErrorCode(err))
	assert.Equal(t, "Internal error.", tabscrape.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, tabscrape.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, tabscrape.ErrorMessage(nil))
}
