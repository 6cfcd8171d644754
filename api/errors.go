package api

import (
	"encoding/json"
	"fmt"
	"net/http"
)

type HandlerError struct {
	ErrorName        string `json:"errorName"`
	Description      string `json:"description"`
	PossibleSolution string `json:"possibleSolution"`
	RequestID        string `json:"requestId"`
}

var ErrGET = fmt.Errorf("GET method required for this endpoint")

func writeError(w http.ResponseWriter, status int, herr HandlerError) {
	herr.RequestID = w.Header().Get(requestIDHeader)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(herr)
}

func (app *Application) requireGetMethod(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Allow", http.MethodGet)
	writeError(w, http.StatusMethodNotAllowed, HandlerError{
		ErrorName:        "GET Method Required",
		Description:      ErrGET.Error() + " you used: " + r.Method,
		PossibleSolution: "Use GET method",
	})
}

func (app *Application) invalidColor(w http.ResponseWriter, r *http.Request, raw string) {
	writeError(w, http.StatusBadRequest, HandlerError{
		ErrorName:        "Invalid Color",
		Description:      fmt.Sprintf("'%s' is not a 3 or 6 digit hex color", raw),
		PossibleSolution: "Pass a color like ?hex=%2334a1eb or ?hex=1af",
	})
}

func (app *Application) notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, HandlerError{
		ErrorName:        "Not Found",
		Description:      "no endpoint at " + r.URL.Path,
		PossibleSolution: "Check the request path",
	})
}
