package router_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"petclinic/internal/middleware"
	"petclinic/internal/router"
)

func TestHTTP_EndToEnd_OwnerPetVisit(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	// 1) Alta de owner => redirect al detalle (los datos de ejemplo llegan hasta el 10)
	ownerPath := func() string {
		st, loc, body := doForm(t, ts.URL, "/owners/new", url.Values{
			"firstName": {"Joe"},
			"lastName":  {"Bloggs"},
			"address":   {"123 Caramel Street"},
			"city":      {"London"},
			"telephone": {"1316761638"},
		})
		if st != http.StatusFound {
			t.Fatalf("expected 302 create owner, got %d body=%s", st, body)
		}
		if loc != "/owners/11" {
			t.Fatalf("expected redirect to /owners/11, got %q", loc)
		}
		return loc
	}()

	// 2) Búsqueda con un único resultado => redirect
	{
		st, loc, _ := doGet(t, ts.URL, "/owners?lastName=Bloggs")
		if st != http.StatusFound || loc != ownerPath {
			t.Fatalf("expected 302 to %s, got %d %q", ownerPath, st, loc)
		}
	}

	// 3) Mascota nueva
	{
		st, loc, body := doForm(t, ts.URL, ownerPath+"/pets/new", url.Values{
			"name":      {"Betty"},
			"birthDate": {"2015-02-12"},
			"type":      {"dog"},
		})
		if st != http.StatusFound || loc != ownerPath {
			t.Fatalf("expected 302 create pet, got %d %q body=%s", st, loc, body)
		}
	}

	// 4) Mismo nombre => se vuelve a mostrar el formulario
	{
		st, _, body := doForm(t, ts.URL, ownerPath+"/pets/new", url.Values{
			"name":      {"betty"},
			"birthDate": {"2015-02-12"},
			"type":      {"dog"},
		})
		if st != http.StatusOK || !strings.Contains(body, "already exists") {
			t.Fatalf("expected 200 with duplicate error, got %d body=%s", st, body)
		}
	}

	// 5) Visita para la mascota recién creada (ID 14)
	{
		st, loc, body := doForm(t, ts.URL, ownerPath+"/pets/14/visits/new", url.Values{
			"date":        {"2024-03-01"},
			"description": {"annual checkup"},
		})
		if st != http.StatusFound || loc != ownerPath {
			t.Fatalf("expected 302 add visit, got %d %q body=%s", st, loc, body)
		}
	}

	// 6) El detalle muestra mascota y visita
	{
		st, _, body := doGet(t, ts.URL, ownerPath)
		if st != http.StatusOK {
			t.Fatalf("expected 200 owner details, got %d", st)
		}
		for _, want := range []string{"Joe Bloggs", "Betty", "2015-02-12", "annual checkup"} {
			if !strings.Contains(body, want) {
				t.Fatalf("owner details: missing %q body=%s", want, body)
			}
		}
	}

	// 7) Editar owner con teléfono inválido => 200 con error
	{
		st, _, body := doForm(t, ts.URL, ownerPath+"/edit", url.Values{
			"firstName": {"Joe"},
			"lastName":  {"Bloggs"},
			"address":   {"123 Caramel Street"},
			"city":      {"London"},
			"telephone": {"not-a-phone"},
		})
		if st != http.StatusOK || !strings.Contains(body, "must contain only digits") {
			t.Fatalf("expected 200 with telephone error, got %d body=%s", st, body)
		}
	}
}

func TestHTTP_FindOwners(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	// varios resultados => listado
	st, _, body := doGet(t, ts.URL, "/owners?lastName=Davis")
	if st != http.StatusOK || !strings.Contains(body, "Betty Davis") || !strings.Contains(body, "Harold Davis") {
		t.Fatalf("expected owners list, got %d body=%s", st, body)
	}

	// sin resultados => formulario de búsqueda con error
	st, _, body = doGet(t, ts.URL, "/owners?lastName=Unknown")
	if st != http.StatusOK || !strings.Contains(body, "has not been found") {
		t.Fatalf("expected not found error, got %d body=%s", st, body)
	}

	// página 3 de 10 owners con tamaño 5 => no existe
	st, _, body = doGet(t, ts.URL, "/owners?page=3")
	if st != http.StatusOK || !strings.Contains(body, "has not been found") {
		t.Fatalf("expected not found past last page, got %d body=%s", st, body)
	}
}

func TestHTTP_HugePageNumber(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	const page = "2305843009213693953"

	st, _, body := doGet(t, ts.URL, "/owners?lastName=&page="+page)
	if st != http.StatusOK || !strings.Contains(body, "has not been found") {
		t.Fatalf("expected not found on huge page, got %d body=%s", st, body)
	}

	st, _, body = doGet(t, ts.URL, "/vets.html?page="+page)
	if st != http.StatusOK || strings.Contains(body, "James Carter") {
		t.Fatalf("expected empty vet page, got %d body=%s", st, body)
	}
}

func TestHTTP_OwnerIDOutOfRange(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	for _, path := range []string{"/owners/3000000000", "/owners/3000000000/edit", "/owners/1/pets/3000000000/edit"} {
		st, _, body := doGet(t, ts.URL, path)
		if st != http.StatusNotFound {
			t.Fatalf("%s: expected 404, got %d body=%s", path, st, body)
		}
	}
}

func TestHTTP_VisitRedirectKeepsRawOwnerPath(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	st, loc, body := doForm(t, ts.URL, "/owners/*/pets/7/visits/new", url.Values{
		"description": {"booster"},
	})
	if st != http.StatusFound || loc != "/owners/*" {
		t.Fatalf("expected 302 to /owners/*, got %d %q body=%s", st, loc, body)
	}
}

func TestHTTP_Site(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	cases := []struct {
		path   string
		status int
		want   string
	}{
		{"/", http.StatusOK, "Welcome"},
		{"/health", http.StatusOK, "ok"},
		{"/oups", http.StatusInternalServerError, "Something happened..."},
		{"/does-not-exist", http.StatusNotFound, "404"},
		{"/owners/999", http.StatusNotFound, "404"},
		{"/owners/abc/edit", http.StatusNotFound, "404"},
		{"/owners/1/pets/7/edit", http.StatusNotFound, "404"},
		{"/vets.html", http.StatusOK, "James Carter"},
		{"/vets.html?page=2", http.StatusOK, "Sharon Jenkins"},
	}
	for _, tc := range cases {
		st, _, body := doGet(t, ts.URL, tc.path)
		if st != tc.status {
			t.Fatalf("%s: expected %d, got %d body=%s", tc.path, tc.status, st, body)
		}
		if !strings.Contains(body, tc.want) {
			t.Fatalf("%s: missing %q body=%s", tc.path, tc.want, body)
		}
	}
}

func TestHTTP_VetsJSON(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	st, _, body := doGet(t, ts.URL, "/vets")
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d", st)
	}

	var resp struct {
		VetList []struct {
			ID          int    `json:"id"`
			LastName    string `json:"lastName"`
			Specialties []struct {
				Name string `json:"name"`
			} `json:"specialties"`
		} `json:"vetList"`
	}
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatalf("decode vets: %v body=%s", err, body)
	}
	if len(resp.VetList) != 6 {
		t.Fatalf("expected 6 vets, got %d", len(resp.VetList))
	}
	if got := resp.VetList[2]; got.LastName != "Douglas" || len(got.Specialties) != 2 || got.Specialties[0].Name != "dentistry" {
		t.Fatalf("unexpected vet 3: %+v", got)
	}
}

func TestHTTP_RequestIDAndMetrics(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/owners/1", nil)
	req.Header.Set(middleware.HeaderRequestID, "req-123")
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	res.Body.Close()
	if got := res.Header.Get(middleware.HeaderRequestID); got != "req-123" {
		t.Fatalf("expected request id echoed, got %q", got)
	}

	st, _, body := doGet(t, ts.URL, "/metrics")
	if st != http.StatusOK {
		t.Fatalf("expected 200 metrics, got %d", st)
	}
	if !strings.Contains(body, `petclinic_http_requests_total{method="GET",route="/owners/{ownerID}`) {
		t.Fatalf("metrics: missing owner details counter body=%s", body)
	}
	if strings.Contains(body, `route="/owners/1"`) {
		t.Fatalf("metrics: raw path used as label body=%s", body)
	}
}

var noRedirect = &http.Client{
	CheckRedirect: func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	},
}

func doGet(t *testing.T, baseURL, path string) (int, string, string) {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, baseURL+path, nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	return do(t, req)
}

func doForm(t *testing.T, baseURL, path string, form url.Values) (int, string, string) {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return do(t, req)
}

func do(t *testing.T, req *http.Request) (int, string, string) {
	t.Helper()

	res, err := noRedirect.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	body, _ := io.ReadAll(res.Body)
	return res.StatusCode, res.Header.Get("Location"), string(body)
}
