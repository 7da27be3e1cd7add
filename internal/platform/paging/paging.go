package paging

import (
	"math"
	"strconv"
	"strings"
)

// DefaultSize es el tamaño de página de los listados (owners, vets).
const DefaultSize = 5

// Request pide una página 1-based.
type Request struct {
	Number int
	Size   int
}

// NewRequest normaliza número y tamaño: número < 1 => 1, tamaño < 1 => DefaultSize.
// El número se acota para que Offset no desborde int.
func NewRequest(number, size int) Request {
	if number < 1 {
		number = 1
	}
	if size < 1 {
		size = DefaultSize
	}
	if maxNumber := math.MaxInt/size + 1; number > maxNumber {
		number = maxNumber
	}
	return Request{Number: number, Size: size}
}

func (r Request) Offset() int {
	return (r.Number - 1) * r.Size
}

// ParseNumber lee el query param "page". Vacío, inválido o < 1 => 1.
func ParseNumber(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// Page es una porción de un resultado total.
type Page[T any] struct {
	Items      []T
	Number     int
	Size       int
	TotalItems int
}

func (p Page[T]) TotalPages() int {
	if p.Size <= 0 || p.TotalItems <= 0 {
		return 0
	}
	return (p.TotalItems + p.Size - 1) / p.Size
}

// Empty es true si la página no trae items, aunque existan en otras páginas.
func (p Page[T]) Empty() bool {
	return len(p.Items) == 0
}

// Slice pagina en memoria un resultado completo.
func Slice[T any](all []T, req Request) Page[T] {
	req = NewRequest(req.Number, req.Size)

	out := Page[T]{
		Items:      make([]T, 0),
		Number:     req.Number,
		Size:       req.Size,
		TotalItems: len(all),
	}

	start := req.Offset()
	if start < 0 || start >= len(all) {
		return out
	}
	end := start + req.Size
	if end > len(all) {
		end = len(all)
	}
	out.Items = append(out.Items, all[start:end]...)
	return out
}
