package api

import (
	"net/http"
)

// Routes returns the handler for all endpoints.
func (app *Application) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/", app.getOnly(app.home))
	mux.HandleFunc("/v1/colors", app.getOnly(app.getColor))
	mux.HandleFunc("/v1/colors/random", app.getOnly(app.getRandomColor))
	mux.HandleFunc("/v1/shades", app.getOnly(app.getShades))
	mux.HandleFunc("/v1/contrast", app.getOnly(app.getContrast))

	return withRequestID(logRequests(mux))
}
