package stub

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hoanghai1803/bookden/internal/models"
	"github.com/hoanghai1803/bookden/internal/storage"
)

// newTestServer starts a stub server over a fresh in-memory store seeded
// from the fixture.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	db, err := storage.OpenDatabase(":memory:")
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := storage.RunMigrations(db); err != nil {
		t.Fatalf("running migrations: %v", err)
	}
	store := storage.NewStore(db)
	if err := store.SeedFixture(context.Background()); err != nil {
		t.Fatalf("seeding fixture: %v", err)
	}

	srv := httptest.NewServer(NewRouter(store))
	t.Cleanup(srv.Close)
	return srv
}

// getJSON fetches a URL and decodes the JSON body into out.
func getJSON(t *testing.T, url string, out any) int {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	if out != nil && resp.StatusCode < 300 {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decoding %s response: %v", url, err)
		}
	}
	return resp.StatusCode
}

// doJSON issues a request with a JSON body and decodes the response into out.
func doJSON(t *testing.T, method, url string, body, out any) int {
	t.Helper()
	var buf io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("encoding request body: %v", err)
		}
		buf = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, url, buf)
	if err != nil {
		t.Fatalf("creating request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()
	if out != nil && resp.StatusCode < 300 {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decoding %s response: %v", url, err)
		}
	}
	return resp.StatusCode
}

func TestListBooks_Seeded(t *testing.T) {
	srv := newTestServer(t)

	var res struct {
		Books []models.Book `json:"books"`
	}
	if status := getJSON(t, srv.URL+"/api/books", &res); status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if len(res.Books) != 8 {
		t.Fatalf("got %d books, want 8 seeded from fixture", len(res.Books))
	}
	if res.Books[0].Title != "Dune" {
		t.Errorf("books[0].Title = %q, want %q", res.Books[0].Title, "Dune")
	}
}

func TestGetBook_NotFound(t *testing.T) {
	srv := newTestServer(t)

	if status := getJSON(t, srv.URL+"/api/books/999", nil); status != http.StatusNotFound {
		t.Errorf("status = %d, want 404", status)
	}
}

func TestCreateBook_AssignsID(t *testing.T) {
	srv := newTestServer(t)

	var created models.Book
	status := doJSON(t, http.MethodPost, srv.URL+"/api/books", models.Book{
		Title:  "New Book",
		Author: "Author",
		Genre:  "Fiction",
	}, &created)
	if status != http.StatusCreated {
		t.Fatalf("status = %d, want 201", status)
	}
	if created.ID == "" {
		t.Fatal("created.ID is empty, want assigned id")
	}

	var got models.Book
	if status := getJSON(t, srv.URL+"/api/books/"+created.ID, &got); status != http.StatusOK {
		t.Fatalf("follow-up GET status = %d, want 200", status)
	}
	if got.Title != "New Book" {
		t.Errorf("got.Title = %q, want %q", got.Title, "New Book")
	}
}

func TestCreateBook_Validation(t *testing.T) {
	srv := newTestServer(t)

	status := doJSON(t, http.MethodPost, srv.URL+"/api/books", models.Book{Title: "No Author"}, nil)
	if status != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for missing author", status)
	}
}

func TestUpdateBook_PartialPatch(t *testing.T) {
	srv := newTestServer(t)

	var updated models.Book
	status := doJSON(t, http.MethodPut, srv.URL+"/api/books/1",
		map[string]string{"title": "Dune (Annotated)"}, &updated)
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if updated.Title != "Dune (Annotated)" {
		t.Errorf("updated.Title = %q, want patched title", updated.Title)
	}
	if updated.Author != "Frank Herbert" {
		t.Errorf("updated.Author = %q, want untouched %q", updated.Author, "Frank Herbert")
	}
}

func TestDeleteBook(t *testing.T) {
	srv := newTestServer(t)

	if status := doJSON(t, http.MethodDelete, srv.URL+"/api/books/7", nil, nil); status != http.StatusNoContent {
		t.Fatalf("delete status = %d, want 204", status)
	}
	if status := getJSON(t, srv.URL+"/api/books/7", nil); status != http.StatusNotFound {
		t.Errorf("GET after delete status = %d, want 404", status)
	}
}

func TestReadingLists_OwnerQuery(t *testing.T) {
	srv := newTestServer(t)

	var res struct {
		Lists []models.ReadingList `json:"lists"`
	}
	if status := getJSON(t, srv.URL+"/api/reading-lists?userId=1", &res); status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if len(res.Lists) != 2 {
		t.Fatalf("got %d lists for user 1, want 2", len(res.Lists))
	}
	for _, l := range res.Lists {
		if l.UserID != "1" {
			t.Errorf("list %s owned by %q returned for user 1", l.ID, l.UserID)
		}
	}
}

func TestCreateAndUpdateReadingList(t *testing.T) {
	srv := newTestServer(t)

	var created models.ReadingList
	status := doJSON(t, http.MethodPost, srv.URL+"/api/reading-lists", models.ReadingList{
		UserID: "3",
		Name:   "Fresh List",
	}, &created)
	if status != http.StatusCreated {
		t.Fatalf("create status = %d, want 201", status)
	}
	if created.ID == "" || created.CreatedAt.IsZero() {
		t.Fatalf("created = %+v, want assigned id and timestamps", created)
	}
	if created.BookIDs == nil {
		t.Error("created.BookIDs is nil, want empty non-nil slice")
	}

	var updated models.ReadingList
	status = doJSON(t, http.MethodPut, srv.URL+"/api/reading-lists/"+created.ID,
		map[string]any{"userId": "3", "bookIds": []string{"1", "2"}}, &updated)
	if status != http.StatusOK {
		t.Fatalf("update status = %d, want 200", status)
	}
	if len(updated.BookIDs) != 2 {
		t.Errorf("updated.BookIDs = %v, want 2 ids", updated.BookIDs)
	}
	if updated.Name != "Fresh List" {
		t.Errorf("updated.Name = %q, want untouched name", updated.Name)
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) {
		t.Errorf("UpdatedAt %v not after creation %v", updated.UpdatedAt, created.UpdatedAt)
	}
}

func TestUpdateReadingList_WrongOwner(t *testing.T) {
	srv := newTestServer(t)

	status := doJSON(t, http.MethodPut, srv.URL+"/api/reading-lists/101",
		map[string]any{"userId": "2", "name": "Hijack"}, nil)
	if status != http.StatusNotFound {
		t.Errorf("status = %d, want 404 for non-owner update", status)
	}
}

func TestDeleteReadingList_OwnerScoped(t *testing.T) {
	srv := newTestServer(t)

	if status := doJSON(t, http.MethodDelete, srv.URL+"/api/reading-lists/101?userId=2", nil, nil); status != http.StatusNotFound {
		t.Errorf("cross-user delete status = %d, want 404", status)
	}
	if status := doJSON(t, http.MethodDelete, srv.URL+"/api/reading-lists/101?userId=1", nil, nil); status != http.StatusNoContent {
		t.Errorf("owner delete status = %d, want 204", status)
	}
}

func TestReviews_CreateAndList(t *testing.T) {
	srv := newTestServer(t)

	var created models.Review
	status := doJSON(t, http.MethodPost, srv.URL+"/api/books/1/reviews", models.Review{
		UserID:   "1",
		UserName: "Alice",
		Rating:   5,
		Comment:  "A classic.",
	}, &created)
	if status != http.StatusCreated {
		t.Fatalf("create status = %d, want 201", status)
	}
	if created.ID == "" || created.BookID != "1" || created.CreatedAt.IsZero() {
		t.Fatalf("created = %+v, want assigned id, book id and timestamp", created)
	}

	var res struct {
		Reviews []models.Review `json:"reviews"`
	}
	if status := getJSON(t, srv.URL+"/api/books/1/reviews", &res); status != http.StatusOK {
		t.Fatalf("list status = %d, want 200", status)
	}
	if len(res.Reviews) != 1 || res.Reviews[0].Comment != "A classic." {
		t.Errorf("reviews = %+v, want the created review", res.Reviews)
	}
}

func TestCreateReview_Validation(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name       string
		path       string
		review     models.Review
		wantStatus int
	}{
		{
			name:       "missing user",
			path:       "/api/books/1/reviews",
			review:     models.Review{Rating: 3},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "rating too low",
			path:       "/api/books/1/reviews",
			review:     models.Review{UserID: "1", Rating: 0},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "rating too high",
			path:       "/api/books/1/reviews",
			review:     models.Review{UserID: "1", Rating: 6},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown book",
			path:       "/api/books/999/reviews",
			review:     models.Review{UserID: "1", Rating: 3},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := doJSON(t, http.MethodPost, srv.URL+tt.path, tt.review, nil)
			if status != tt.wantStatus {
				t.Errorf("status = %d, want %d", status, tt.wantStatus)
			}
		})
	}
}

func TestListReviews_EmptyEnvelope(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/books/2/reviews")
	if err != nil {
		t.Fatalf("GET reviews: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading body: %v", err)
	}
	var res map[string]json.RawMessage
	if err := json.Unmarshal(raw, &res); err != nil {
		t.Fatalf("decoding body %s: %v", raw, err)
	}
	if string(res["reviews"]) != "[]" {
		t.Errorf(`reviews envelope = %s, want [] (never null)`, res["reviews"])
	}
}

func TestMalformedBody_BadRequest(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/books", "application/json", bytes.NewBufferString("{not json"))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for malformed JSON", resp.StatusCode)
	}
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(t)

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/api/books", nil)
	if err != nil {
		t.Fatalf("creating request: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("OPTIONS: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("status = %d, want 204", resp.StatusCode)
	}
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Allow-Origin = %q, want *", got)
	}
}

func TestRecommendations_GenreSets(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name      string
		query     string
		wantTitle string // title expected among results
	}{
		{name: "science fiction", query: "genre=science+fiction", wantTitle: "Dune"},
		{name: "fantasy", query: "genre=epic+fantasy", wantTitle: "The Name of the Wind"},
		{name: "mystery", query: "genre=cozy+mystery", wantTitle: "Murder on the Orient Express"},
		{name: "no genre falls back to default", query: "", wantTitle: "The Hobbit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var res struct {
				Recommendations []models.Recommendation `json:"recommendations"`
			}
			url := srv.URL + "/api/recommendations"
			if tt.query != "" {
				url += "?" + tt.query
			}
			if status := getJSON(t, url, &res); status != http.StatusOK {
				t.Fatalf("status = %d, want 200", status)
			}
			if len(res.Recommendations) == 0 {
				t.Fatal("got no recommendations")
			}
			found := false
			for _, r := range res.Recommendations {
				if r.Title == tt.wantTitle {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("recommendations %v missing %q", titles(res.Recommendations), tt.wantTitle)
			}
		})
	}
}

func TestRecommendations_LimitTruncates(t *testing.T) {
	srv := newTestServer(t)

	var res struct {
		Recommendations []models.Recommendation `json:"recommendations"`
	}
	url := srv.URL + "/api/recommendations?genre=science+fiction&limit=2"
	if status := getJSON(t, url, &res); status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if len(res.Recommendations) != 2 {
		t.Errorf("got %d recommendations, want 2", len(res.Recommendations))
	}
}

func titles(recs []models.Recommendation) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Title
	}
	return out
}
