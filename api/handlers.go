package api

import (
	"encoding/json"
	"net/http"

	"github.com/mrkndrei/hexlab/color"
	"github.com/mrkndrei/hexlab/palette"
)

type colorResponse struct {
	color.Info
	CSS string `json:"css"`
}

type contrastResponse struct {
	Background color.Hex `json:"background"`
	Foreground color.Hex `json:"foreground"`
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func (app *Application) home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		app.notFound(w, r)
		return
	}
	writeJSON(w, map[string]interface{}{
		"name":      "hexlab",
		"endpoints": []string{"/v1/colors?hex=", "/v1/colors/random", "/v1/shades?hex=", "/v1/contrast?hex="},
	})
}

func (app *Application) getColor(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("hex")
	info, ok := color.Inspect(raw)
	if !ok {
		app.invalidColor(w, r, raw)
		return
	}
	writeJSON(w, colorResponse{Info: info, CSS: info.RGB.CSS(1)})
}

func (app *Application) getRandomColor(w http.ResponseWriter, r *http.Request) {
	app.mu.Lock()
	h := color.Random(app.rnd)
	app.mu.Unlock()

	info, _ := color.Inspect(string(h))
	writeJSON(w, colorResponse{Info: info, CSS: info.RGB.CSS(1)})
}

func (app *Application) getShades(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("hex")
	set, ok := palette.Generate(raw)
	if !ok {
		app.invalidColor(w, r, raw)
		return
	}
	writeJSON(w, set)
}

func (app *Application) getContrast(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("hex")
	h, ok := color.Normalize(raw)
	if !ok {
		app.invalidColor(w, r, raw)
		return
	}
	writeJSON(w, contrastResponse{Background: h, Foreground: color.ContrastYIQ(string(h))})
}
