// Package webtest provee un Renderer que registra las vistas, para tests de handlers.
package webtest

import (
	"net/http"
	"sort"
	"sync"

	"petclinic/internal/platform/web"
)

type Recorder struct {
	mu    sync.Mutex
	views []web.View
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

// Render registra la vista y escribe el status con el nombre de la vista como body.
func (r *Recorder) Render(w http.ResponseWriter, _ *http.Request, v web.View) error {
	r.mu.Lock()
	r.views = append(r.views, v)
	r.mu.Unlock()

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(v.Status)
	_, err := w.Write([]byte(v.Name))
	return err
}

// Last devuelve la última vista renderizada.
func (r *Recorder) Last() (web.View, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.views) == 0 {
		return web.View{}, false
	}
	return r.views[len(r.views)-1], true
}

func (r *Recorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.views)
}

// Keys devuelve los atributos del modelo ordenados.
func Keys(m web.Model) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
