package browser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLaunchOrder_PreferredFirst(t *testing.T) {
	assert.Equal(t, []string{"edge", "chrome", "chromium"}, launchOrder("edge"))
	assert.Equal(t, []string{"chromium", "chrome", "edge"}, launchOrder("chromium"))
}

func TestLaunchOrder_DefaultsToChrome(t *testing.T) {
	order := launchOrder("")
	assert.Equal(t, "chrome", order[0])
	assert.Len(t, order, 3)
}

func TestLaunchOrder_NoDuplicates(t *testing.T) {
	order := launchOrder("chrome")
	seen := map[string]bool{}
	for _, kind := range order {
		assert.False(t, seen[kind], "duplicate %s", kind)
		seen[kind] = true
	}
}

func TestLookupNames(t *testing.T) {
	assert.Contains(t, lookupNames("chromium"), "chromium-browser")
	assert.Contains(t, lookupNames("edge"), "msedge")
	assert.Contains(t, lookupNames("chrome"), "google-chrome")
	// Unknown kinds fall back to the chrome names
	assert.Contains(t, lookupNames("whatever"), "google-chrome")
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.True(t, opts.Headless)
	assert.Equal(t, "chrome", opts.Preferred)
	assert.Equal(t, 1920, opts.Width)
}
