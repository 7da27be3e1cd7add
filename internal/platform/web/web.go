// Package web define el contrato entre handlers y vistas: un nombre de vista,
// los atributos del modelo y los errores de formulario.
package web

import (
	"encoding/json"
	"net/http"

	"petclinic/internal/platform/validation"
)

// Nombres de vistas compartidas.
const (
	ViewWelcome = "welcome"
	ViewError   = "error"
)

// Model son los atributos que recibe la vista.
type Model map[string]any

// View es el resultado de un handler que renderiza.
// Errors no cuenta como atributo del modelo.
type View struct {
	Name   string
	Status int
	Model  Model
	Errors validation.Errors
}

// Renderer escribe una vista en la respuesta.
type Renderer interface {
	Render(w http.ResponseWriter, r *http.Request, v View) error
}

// Render escribe la vista; si el renderer falla responde 500 en texto plano.
func Render(w http.ResponseWriter, r *http.Request, rd Renderer, v View) {
	if v.Status == 0 {
		v.Status = http.StatusOK
	}
	if v.Model == nil {
		v.Model = Model{}
	}
	if err := rd.Render(w, r, v); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// Redirect responde 302 a target.
func Redirect(w http.ResponseWriter, r *http.Request, target string) {
	http.Redirect(w, r, target, http.StatusFound)
}

// Error renderiza la vista de error con el status dado.
func Error(w http.ResponseWriter, r *http.Request, rd Renderer, status int, message string) {
	Render(w, r, rd, View{
		Name:   ViewError,
		Status: status,
		Model: Model{
			"status":  status,
			"error":   http.StatusText(status),
			"message": message,
		},
	})
}

func NotFound(w http.ResponseWriter, r *http.Request, rd Renderer) {
	Error(w, r, rd, http.StatusNotFound, "The requested resource was not found.")
}

func InternalError(w http.ResponseWriter, r *http.Request, rd Renderer) {
	Error(w, r, rd, http.StatusInternalServerError, "Something happened...")
}

// WriteJSON para los pocos endpoints JSON (vets, health).
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
