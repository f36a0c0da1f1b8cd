package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"adopta-gatos/internal/domain"
)

func getJSON(t *testing.T, app *testApp, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	app.router.ServeHTTP(rec, req)
	return rec
}

func decodeCats(t *testing.T, rec *httptest.ResponseRecorder) []domain.Cat {
	t.Helper()
	var body struct {
		Cats []domain.Cat `json:"cats"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode cats: %v", err)
	}
	return body.Cats
}

func TestCats_PublicListAndFilters(t *testing.T) {
	app := newTestApp(t)
	app.catRepo.cats["c1"] = domain.Cat{ID: "c1", Name: "Michi", Breed: "siames", Sex: "f"}
	app.catRepo.cats["c2"] = domain.Cat{ID: "c2", Name: "Tofu", Breed: "mestizo", Sex: "m", Adopted: true}

	rec := getJSON(t, app, "/cats")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if cats := decodeCats(t, rec); len(cats) != 2 {
		t.Fatalf("expected 2 cats, got %+v", cats)
	}

	rec = getJSON(t, app, "/cats?breed=siames")
	if cats := decodeCats(t, rec); len(cats) != 1 || cats[0].ID != "c1" {
		t.Fatalf("unexpected breed filter result: %+v", decodeCats(t, rec))
	}

	rec = getJSON(t, app, "/cats?adopted=false")
	if cats := decodeCats(t, rec); len(cats) != 1 || cats[0].ID != "c1" {
		t.Fatalf("unexpected adopted filter result: %+v", cats)
	}

	rec = getJSON(t, app, "/cats?adopted=banana")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad adopted value, got %d", rec.Code)
	}
}

func TestCats_GetByID(t *testing.T) {
	app := newTestApp(t)
	app.catRepo.cats["c1"] = domain.Cat{ID: "c1", Name: "Michi"}

	rec := getJSON(t, app, "/cats/c1")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	rec = getJSON(t, app, "/cats/missing")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestCats_AdminCRUDRequiresSession(t *testing.T) {
	app := newTestApp(t)

	rec := postJSON(t, app, "/admin/cats", map[string]any{"name": "Michi"})
	if rec.Code != http.StatusFound {
		t.Fatalf("expected redirect without session, got %d", rec.Code)
	}

	cookie := validSessionCookie(t, app)
	rec = postJSON(t, app, "/admin/cats", map[string]any{
		"name":       "Michi",
		"breed":      "siames",
		"age_months": 6,
		"sex":        "f",
	}, cookie)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	// El alta se refleja en el listado público inmediatamente.
	list := getJSON(t, app, "/cats")
	if cats := decodeCats(t, list); len(cats) != 1 || cats[0].Name != "Michi" {
		t.Fatalf("expected created cat in public list, got %+v", cats)
	}
}

func TestAdoptions_PublicSubmitAndAdminReview(t *testing.T) {
	app := newTestApp(t)
	app.catRepo.cats["c1"] = domain.Cat{ID: "c1", Name: "Michi"}

	rec := postJSON(t, app, "/adoptions", map[string]string{
		"cat_id": "c1",
		"name":   "Juan Pérez",
		"email":  "juan@example.com",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var created struct {
		Request domain.AdoptionRequest `json:"request"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.Request.Status != domain.RequestPending {
		t.Fatalf("expected pending request, got %s", created.Request.Status)
	}

	cookie := validSessionCookie(t, app)
	rec = postJSON(t, app, "/admin/adoptions/"+created.Request.ID+"/review", map[string]string{"decision": "approved"}, cookie)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !app.catRepo.cats["c1"].Adopted {
		t.Fatalf("expected cat adopted after approval")
	}

	// Segunda revisión sobre la misma solicitud: conflicto.
	rec = postJSON(t, app, "/admin/adoptions/"+created.Request.ID+"/review", map[string]string{"decision": "rejected"}, cookie)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestAdoptions_SubmitValidation(t *testing.T) {
	app := newTestApp(t)
	app.catRepo.cats["c1"] = domain.Cat{ID: "c1", Adopted: true}

	rec := postJSON(t, app, "/adoptions", map[string]string{"cat_id": "c1"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing fields, got %d", rec.Code)
	}

	rec = postJSON(t, app, "/adoptions", map[string]string{
		"cat_id": "c1",
		"name":   "Juan",
		"email":  "juan@example.com",
	})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for adopted cat, got %d", rec.Code)
	}

	rec = postJSON(t, app, "/adoptions", map[string]string{
		"cat_id": "missing",
		"name":   "Juan",
		"email":  "juan@example.com",
	})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for missing cat, got %d", rec.Code)
	}
}
