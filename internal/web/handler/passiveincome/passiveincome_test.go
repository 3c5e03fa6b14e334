package passiveincome

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nosytlabs/nosytlabs-site/internal/calculator"
	"github.com/nosytlabs/nosytlabs-site/internal/web/handler/handlertest"
)

func setup(t *testing.T) (*fiber.App, *handlertest.Views) {
	t.Helper()

	cfg := handlertest.NewConfig()
	views := &handlertest.Views{}
	app := handlertest.NewApp(views)

	var s Service
	require.NoError(t, s.Init(app, cfg, handlertest.NewDeps(t, cfg)))

	return app, views
}

func estimate(t *testing.T, views *handlertest.Views) calculator.Estimate {
	t.Helper()

	e, ok := views.Last(t).Data["Estimate"].(calculator.Estimate)
	require.True(t, ok)

	return e
}

func TestListEstimate(t *testing.T) {
	app, views := setup(t)

	tests := []struct {
		query   string
		devices int
		hours   int
	}{
		{query: "", devices: 1, hours: 24},
		{query: "?devices=2&hours=12", devices: 2, hours: 12},
		{query: "?devices=3abc&hours=30", devices: 3, hours: 24},
		{query: "?devices=0&hours=-4", devices: 1, hours: 0},
		{query: "?devices=99999999999999999999", devices: 1, hours: 24},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			resp, _ := handlertest.Get(t, app, Path+tt.query)
			require.Equal(t, http.StatusOK, resp.StatusCode)

			e := estimate(t, views)
			assert.Equal(t, tt.devices, e.Input.Devices)
			assert.Equal(t, tt.hours, e.Input.Hours)
		})
	}
}

func TestDetail(t *testing.T) {
	app, views := setup(t)

	resp, _ := handlertest.Get(t, app, Path+"/honeygain?devices=1&hours=24")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, TemplateDetail, views.Last(t).Name)
	assert.InDelta(t, 0.10, estimate(t, views).Rates.USDPerGB, 1e-9)

	resp, _ = handlertest.Get(t, app, Path+"/brave")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotContains(t, views.Last(t).Data, "Estimate")

	resp, _ = handlertest.Get(t, app, Path+"/unknown")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
