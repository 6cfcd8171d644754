package api

import (
	"encoding/json"
	"io/ioutil"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/mrkndrei/hexlab/color"
)

func TestMain(m *testing.M) {
	log.SetOutput(ioutil.Discard)
	os.Exit(m.Run())
}

func get(t *testing.T, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	app := NewApplication(Config{Addr: ":0"})
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	app.Routes().ServeHTTP(rec, req)
	return rec
}

func TestGetColor(t *testing.T) {
	rec := get(t, http.MethodGet, "/v1/colors?hex=%2334A1EB")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body)
	}

	var got struct {
		color.Info
		CSS string `json:"css"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	want := color.Info{
		Hex:      "#34a1eb",
		RGB:      color.RGB{R: 52, G: 161, B: 235},
		HSL:      color.HSL{H: 204, S: 82, L: 56},
		CMYK:     color.CMYK{C: 78, M: 31, Y: 0, K: 8},
		Contrast: color.DarkText,
	}
	if d := cmp.Diff(want, got.Info); d != "" {
		t.Errorf("response (-want +got):\n%s", d)
	}
	if got.CSS != "rgb(52, 161, 235)" {
		t.Errorf("css = %q", got.CSS)
	}
	if _, err := uuid.Parse(rec.Header().Get(requestIDHeader)); err != nil {
		t.Errorf("request id: %v", err)
	}
}

func TestGetShades(t *testing.T) {
	rec := get(t, http.MethodGet, "/v1/shades?hex=f00")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body)
	}
	var got struct {
		Shades   map[string]string `json:"shades"`
		Selected int               `json:"selected"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if len(got.Shades) != 10 || got.Selected != 500 || got.Shades["500"] != "#ff0000" {
		t.Errorf("got %+v", got)
	}
}

func TestGetContrast(t *testing.T) {
	rec := get(t, http.MethodGet, "/v1/contrast?hex=000")
	var got contrastResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	want := contrastResponse{Background: "#000000", Foreground: color.LightText}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestGetRandomColor(t *testing.T) {
	rec := get(t, http.MethodGet, "/v1/colors/random")
	var got color.Info
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if n, ok := color.Normalize(string(got.Hex)); !ok || n != got.Hex {
		t.Errorf("random color %q is not normalized", got.Hex)
	}
}

func TestErrors(t *testing.T) {
	tests := []struct {
		method, target string
		status         int
	}{
		{http.MethodGet, "/v1/colors?hex=12345", http.StatusBadRequest},
		{http.MethodGet, "/v1/colors", http.StatusBadRequest},
		{http.MethodGet, "/v1/shades?hex=zzz", http.StatusBadRequest},
		{http.MethodGet, "/v1/contrast?hex=", http.StatusBadRequest},
		{http.MethodPost, "/v1/colors?hex=fff", http.StatusMethodNotAllowed},
		{http.MethodGet, "/nope", http.StatusNotFound},
	}
	for _, test := range tests {
		rec := get(t, test.method, test.target)
		if rec.Code != test.status {
			t.Errorf("%s %s: status %d, want %d", test.method, test.target, rec.Code, test.status)
			continue
		}
		var herr HandlerError
		if err := json.Unmarshal(rec.Body.Bytes(), &herr); err != nil {
			t.Errorf("%s %s: %v", test.method, test.target, err)
			continue
		}
		if herr.ErrorName == "" || herr.RequestID != rec.Header().Get(requestIDHeader) {
			t.Errorf("%s %s: error body %+v", test.method, test.target, herr)
		}
	}
}

func TestRequestIDPassThrough(t *testing.T) {
	id := uuid.NewString()
	app := NewApplication(Config{})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(requestIDHeader, id)
	rec := httptest.NewRecorder()
	app.Routes().ServeHTTP(rec, req)
	if got := rec.Header().Get(requestIDHeader); got != id {
		t.Errorf("request id = %q, want %q", got, id)
	}
}
