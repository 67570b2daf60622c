package controllers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/yigit/collegeez/internal/app/models/dto"
	"github.com/yigit/collegeez/internal/pkg/apperrors"
	"github.com/yigit/collegeez/internal/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubCollegeService struct {
	all     []bson.M
	ratings []dto.CollegeRatingView
	byID    *dto.CollegeRatingView
	top     []dto.TopCollegeView
	reviews []dto.CollegeReviewsView
	papers  []dto.ResearchPapersView
	err     error

	gotID   string
	gotTerm string
}

func (s *stubCollegeService) GetAllColleges(context.Context) ([]bson.M, error) { return s.all, s.err }
func (s *stubCollegeService) GetCollegeRatings(context.Context) ([]dto.CollegeRatingView, error) {
	return s.ratings, s.err
}
func (s *stubCollegeService) GetCollegeByID(_ context.Context, id string) (*dto.CollegeRatingView, error) {
	s.gotID = id
	return s.byID, s.err
}
func (s *stubCollegeService) GetTopColleges(context.Context) ([]dto.TopCollegeView, error) {
	return s.top, s.err
}
func (s *stubCollegeService) GetCollegeReviews(context.Context) ([]dto.CollegeReviewsView, error) {
	return s.reviews, s.err
}
func (s *stubCollegeService) GetResearchPapers(context.Context) ([]dto.ResearchPapersView, error) {
	return s.papers, s.err
}
func (s *stubCollegeService) SearchColleges(_ context.Context, name string) ([]bson.M, error) {
	s.gotTerm = name
	return s.all, s.err
}

type stubStudentService struct {
	result  *dto.InsertResult
	student dto.StudentResponse
	err     error

	gotReq   *dto.RegisterStudentRequest
	gotEmail string
}

func (s *stubStudentService) RegisterStudent(_ context.Context, req *dto.RegisterStudentRequest) (*dto.InsertResult, error) {
	s.gotReq = req
	return s.result, s.err
}

func (s *stubStudentService) GetStudentByEmail(_ context.Context, email string) (dto.StudentResponse, error) {
	s.gotEmail = email
	return s.student, s.err
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

func newRouter(colleges *stubCollegeService, students *stubStudentService, ping error) *gin.Engine {
	cc := NewCollegeController(colleges)
	sc := NewStudentController(students)
	hc := NewHealthController(stubPinger{err: ping})

	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/", hc.Root)
	r.GET("/health", hc.Health)
	r.GET("/all", cc.GetAllColleges)
	r.GET("/colleges", cc.GetCollegeRatings)
	r.GET("/college/:collegeId", cc.GetCollegeByID)
	r.GET("/topCollege", cc.GetTopColleges)
	r.GET("/reviews", cc.GetCollegeReviews)
	r.GET("/researchPapers", cc.GetResearchPapers)
	r.GET("/search", cc.SearchColleges)
	r.GET("/students/:email", sc.GetStudentByEmail)
	r.POST("/updateUser", sc.RegisterStudent)
	return r
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRoot(t *testing.T) {
	w := do(newRouter(&stubCollegeService{}, &stubStudentService{}, nil), http.MethodGet, "/", "")
	if w.Code != http.StatusOK || w.Body.String() != "CollegeEZNow is running" {
		t.Fatalf("unexpected response %d %q", w.Code, w.Body.String())
	}
}

func TestHealth(t *testing.T) {
	w := do(newRouter(&stubCollegeService{}, &stubStudentService{}, nil), http.MethodGet, "/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w = do(newRouter(&stubCollegeService{}, &stubStudentService{}, errors.New("no reachable servers")), http.MethodGet, "/health", "")
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "no reachable servers") {
		t.Fatalf("driver error leaked: %s", w.Body.String())
	}
}

func TestEmptyListsSerializeAsArrays(t *testing.T) {
	colleges := &stubCollegeService{
		all:     []bson.M{},
		ratings: []dto.CollegeRatingView{},
		top:     []dto.TopCollegeView{},
		reviews: []dto.CollegeReviewsView{},
		papers:  []dto.ResearchPapersView{},
	}
	r := newRouter(colleges, &stubStudentService{}, nil)

	for _, path := range []string{"/all", "/colleges", "/topCollege", "/reviews", "/researchPapers", "/search?name=zzz"} {
		w := do(r, http.MethodGet, path, "")
		if w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, w.Code)
		}
		if got := strings.TrimSpace(w.Body.String()); got != "[]" {
			t.Fatalf("%s: expected [], got %s", path, got)
		}
	}
}

func TestGetCollegeRatings(t *testing.T) {
	id := primitive.NewObjectID()
	colleges := &stubCollegeService{ratings: []dto.CollegeRatingView{
		{ID: id, CollegeName: "Tech Institute", TotalReviews: 3, TotalRatings: 12, AverageRating: 4},
	}}
	w := do(newRouter(colleges, &stubStudentService{}, nil), http.MethodGet, "/colleges", "")

	var views []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &views); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("expected 1 view, got %d", len(views))
	}
	if views[0]["_id"] != id.Hex() || views[0]["averageRating"] != float64(4) || views[0]["totalRatings"] != float64(12) {
		t.Fatalf("unexpected view %v", views[0])
	}
}

func TestGetCollegeByID(t *testing.T) {
	id := primitive.NewObjectID()

	colleges := &stubCollegeService{byID: &dto.CollegeRatingView{ID: id, CollegeName: "Tech Institute"}}
	w := do(newRouter(colleges, &stubStudentService{}, nil), http.MethodGet, "/college/"+id.Hex(), "")
	if w.Code != http.StatusOK || colleges.gotID != id.Hex() {
		t.Fatalf("expected 200 for %s, got %d (id %q)", id.Hex(), w.Code, colleges.gotID)
	}

	colleges = &stubCollegeService{err: apperrors.ErrCollegeNotFound}
	w = do(newRouter(colleges, &stubStudentService{}, nil), http.MethodGet, "/college/"+id.Hex(), "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	colleges = &stubCollegeService{err: apperrors.ErrInvalidCollegeID}
	w = do(newRouter(colleges, &stubStudentService{}, nil), http.MethodGet, "/college/not-hex", "")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 for malformed id, got %d", w.Code)
	}
}

func TestSearchPassesNameQuery(t *testing.T) {
	colleges := &stubCollegeService{all: []bson.M{{"collegeName": "Tech Institute"}}}
	w := do(newRouter(colleges, &stubStudentService{}, nil), http.MethodGet, "/search?name=tech", "")
	if w.Code != http.StatusOK || colleges.gotTerm != "tech" {
		t.Fatalf("expected search for tech, got %d %q", w.Code, colleges.gotTerm)
	}
}

func TestCollegeFaultIs500(t *testing.T) {
	colleges := &stubCollegeService{err: errors.New("socket closed")}
	r := newRouter(colleges, &stubStudentService{}, nil)

	for _, path := range []string{"/all", "/colleges", "/topCollege", "/reviews", "/researchPapers", "/search"} {
		w := do(r, http.MethodGet, path, "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("%s: expected 500, got %d", path, w.Code)
		}
		if strings.Contains(w.Body.String(), "socket closed") {
			t.Fatalf("%s: fault leaked: %s", path, w.Body.String())
		}
	}
}

func TestRegisterStudent(t *testing.T) {
	students := &stubStudentService{result: &dto.InsertResult{Acknowledged: true, InsertedID: "6530f1c2a4b5c6d7e8f90123"}}
	r := newRouter(&stubCollegeService{}, students, nil)

	w := do(r, http.MethodPost, "/updateUser", `{"name":"Ada","email":"ada@example.com","college":"Tech Institute","gender":"f","createdAt":"1999-01-01T00:00:00Z"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var ack dto.InsertResult
	if err := json.Unmarshal(w.Body.Bytes(), &ack); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !ack.Acknowledged || ack.InsertedID != "6530f1c2a4b5c6d7e8f90123" {
		t.Fatalf("unexpected ack %+v", ack)
	}
	if students.gotReq == nil || students.gotReq.Email != "ada@example.com" {
		t.Fatalf("request not forwarded: %+v", students.gotReq)
	}
	if students.gotReq.Fields["college"] != "Tech Institute" || students.gotReq.Fields["gender"] != "f" {
		t.Fatalf("expected every body field forwarded, got %v", students.gotReq.Fields)
	}
}

func TestRegisterStudentErrors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		err    error
		status int
	}{
		{"malformed body", `{"email":`, nil, http.StatusBadRequest},
		{"missing email", `{"name":"Ada"}`, nil, http.StatusBadRequest},
		{"non-string email", `{"email":42}`, nil, http.StatusBadRequest},
		{"array body", `[{"email":"ada@example.com"}]`, nil, http.StatusBadRequest},
		{"duplicate email", `{"email":"ada@example.com"}`, apperrors.ErrEmailAlreadyExists, http.StatusConflict},
		{"store fault", `{"email":"ada@example.com"}`, errors.New("write concern error"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			students := &stubStudentService{err: tt.err}
			w := do(newRouter(&stubCollegeService{}, students, nil), http.MethodPost, "/updateUser", tt.body)
			if w.Code != tt.status {
				t.Fatalf("expected %d, got %d: %s", tt.status, w.Code, w.Body.String())
			}
			if tt.status == http.StatusBadRequest && students.gotReq != nil {
				t.Fatalf("service must not be called for a rejected body")
			}
		})
	}
}

func TestGetStudentByEmail(t *testing.T) {
	students := &stubStudentService{student: dto.NewStudentResponse(bson.M{
		"name":    "Ada",
		"email":   "ada@example.com",
		"college": "Tech Institute",
		"phone":   int64(5551234),
		"gender":  "f",
	}, "https://img.example.com/tech.png")}
	w := do(newRouter(&stubCollegeService{}, students, nil), http.MethodGet, "/students/ada@example.com", "")
	if w.Code != http.StatusOK || students.gotEmail != "ada@example.com" {
		t.Fatalf("expected 200 for ada, got %d (%q)", w.Code, students.gotEmail)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["name"] != "Ada" || body["logo"] != "https://img.example.com/tech.png" {
		t.Fatalf("unexpected body %v", body)
	}
	if body["phone"] != float64(5551234) || body["gender"] != "f" {
		t.Fatalf("expected stored fields as stored, got %v", body)
	}

	students = &stubStudentService{student: dto.NewStudentResponse(bson.M{"email": "bob@example.com"}, "")}
	w = do(newRouter(&stubCollegeService{}, students, nil), http.MethodGet, "/students/bob@example.com", "")
	if strings.Contains(w.Body.String(), `"logo"`) {
		t.Fatalf("expected logo omitted, got %s", w.Body.String())
	}

	students = &stubStudentService{err: apperrors.ErrStudentNotFound}
	w = do(newRouter(&stubCollegeService{}, students, nil), http.MethodGet, "/students/nobody@example.com", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
