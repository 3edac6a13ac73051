package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func metricsTestApp() *fiber.App {
	app := fiber.New()
	app.Use(MetricsMiddleware())
	app.Get("/teapot", func(c *fiber.Ctx) error { return fiber.ErrTeapot })
	app.Get("/fail", func(c *fiber.Ctx) error { return errors.New("db caída") })
	return app
}

// La etiqueta status debe ser el código final que ve el cliente, también cuando
// el handler devuelve un error que recién resuelve el error handler de Fiber.
func TestMetricsMiddleware_EtiquetaStatusDeFiberError(t *testing.T) {
	app := metricsTestApp()

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/teapot", "418"))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/teapot", nil), -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusTeapot, resp.StatusCode)

	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/teapot", "418"))
	assert.Equal(t, before+1, after, "la petición debe contarse con el status resuelto")
	assert.Zero(t, testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/teapot", "200")),
		"no debe quedar etiquetada con el status previo al error handler")
}

// Errores no-fiber se etiquetan como 500, el código que aplica el error handler.
func TestMetricsMiddleware_EtiquetaErroresGenericosComo500(t *testing.T) {
	app := metricsTestApp()

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/fail", "500"))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/fail", nil), -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/fail", "500"))
	assert.Equal(t, before+1, after)
}
