package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, c *Collector) string {
	t.Helper()
	srv := httptest.NewServer(c.Handler())
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func TestObserveCall(t *testing.T) {
	c := New()
	c.ObserveCall("calculate", 2*time.Millisecond, "")
	c.ObserveCall("calculate", time.Millisecond, "syntax_error")
	c.ObserveCall("factorial", time.Microsecond, "")

	body := scrape(t, c)
	assert.Contains(t, body, `mathmcp_tool_calls_total{tool="calculate"} 2`)
	assert.Contains(t, body, `mathmcp_tool_calls_total{tool="factorial"} 1`)
	assert.Contains(t, body, `mathmcp_tool_errors_total{kind="syntax_error",tool="calculate"} 1`)
	assert.Contains(t, body, "mathmcp_tool_duration_seconds")
}

func TestNoErrorsWhenAllSucceed(t *testing.T) {
	c := New()
	c.ObserveCall("stats", time.Millisecond, "")

	body := scrape(t, c)
	assert.False(t, strings.Contains(body, "mathmcp_tool_errors_total{"),
		"success-only collector should not emit error series")
}
