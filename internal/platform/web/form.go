package web

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/form/v4"
)

var (
	decoderOnce sync.Once
	decoder     *form.Decoder
)

// DecodeForm liga query + body (url-encoded) sobre dst usando tags `form`.
func DecodeForm(r *http.Request, dst any) error {
	decoderOnce.Do(func() {
		decoder = form.NewDecoder()
	})

	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("parse form: %w", err)
	}
	if err := decoder.Decode(dst, r.Form); err != nil {
		return fmt.Errorf("decode form: %w", err)
	}
	return nil
}

// IntParam lee un path param numérico positivo. Los ids son SERIAL (int4), así que
// cualquier valor fuera de ese rango no existe.
func IntParam(r *http.Request, name string) (int, bool) {
	n, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || n <= 0 || n > math.MaxInt32 {
		return 0, false
	}
	return n, true
}
