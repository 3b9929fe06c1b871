package designs

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	auth "Girder/internal/auth"
	repo "Girder/internal/repo"
)

type fakeRepo struct {
	saved      []repo.SavedDesign
	lastUserID int
}

func (f *fakeRepo) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	return 0, nil
}

func (f *fakeRepo) GetByLogin(ctx context.Context, login string) (int, string, error) {
	return 0, "", nil
}

func (f *fakeRepo) SaveDesign(ctx context.Context, userID int, kind string, payload []byte) (int, error) {
	f.lastUserID = userID
	f.saved = append(f.saved, repo.SavedDesign{ID: len(f.saved) + 1, Kind: kind, Payload: payload})
	return len(f.saved), nil
}

func (f *fakeRepo) ListDesigns(ctx context.Context, userID int) ([]repo.SavedDesign, error) {
	f.lastUserID = userID
	return f.saved, nil
}

func authed(r *http.Request, userID int) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), auth.UserIDKey, userID))
}

func TestSaveUsesContextIdentity(t *testing.T) {
	fr := &fakeRepo{}
	h := &Handler{Repo: fr}

	body := strings.NewReader(`{"kind":"cost-optimization","payload":{"total":12345}}`)
	req := authed(httptest.NewRequest(http.MethodPost, "/api/user/designs", body), 7)
	rec := httptest.NewRecorder()
	h.Save(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusCreated)
	}
	if fr.lastUserID != 7 {
		t.Errorf("repo saw user %d, want 7 from the request context", fr.lastUserID)
	}
	var resp SaveResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ID != 1 {
		t.Errorf("id = %d, want 1", resp.ID)
	}
}

func TestSaveRejectsMissingIdentity(t *testing.T) {
	h := &Handler{Repo: &fakeRepo{}}
	req := httptest.NewRequest(http.MethodPost, "/api/user/designs",
		strings.NewReader(`{"kind":"rebar","payload":{}}`))
	rec := httptest.NewRecorder()
	h.Save(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d without identity in context", rec.Code, http.StatusUnauthorized)
	}
}

func TestListUsesContextIdentity(t *testing.T) {
	fr := &fakeRepo{saved: []repo.SavedDesign{{ID: 1, Kind: "beam-line", Payload: json.RawMessage(`{}`)}}}
	h := &Handler{Repo: fr}

	req := authed(httptest.NewRequest(http.MethodGet, "/api/user/designs", nil), 9)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if fr.lastUserID != 9 {
		t.Errorf("repo saw user %d, want 9 from the request context", fr.lastUserID)
	}
	var list []repo.SavedDesign
	if err := json.NewDecoder(rec.Body).Decode(&list); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(list) != 1 || list[0].Kind != "beam-line" {
		t.Errorf("list = %+v, want the one saved design", list)
	}
}
