package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/yigit/collegeez/internal/app/models/dto"
	"github.com/yigit/collegeez/internal/pkg/apperrors"
)

func newTestStudentService(store StudentStore, now time.Time) StudentService {
	return &studentServiceImpl{studentRepo: store, now: func() time.Time { return now }}
}

func registerRequest(t *testing.T, body string) *dto.RegisterStudentRequest {
	t.Helper()
	var req dto.RegisterStudentRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("decode request %s: %v", body, err)
	}
	return &req
}

func TestRegisterStudentStampsCreatedAt(t *testing.T) {
	store := newFakeStudentStore()
	now := time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC)
	svc := newTestStudentService(store, now)

	ack, err := svc.RegisterStudent(context.Background(), registerRequest(t,
		`{"name":"Ada","email":" ada@example.com ","college":"Tech Institute","createdAt":"1999-01-01T00:00:00Z"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ack.Acknowledged || len(ack.InsertedID) != 24 {
		t.Fatalf("unexpected ack %+v", ack)
	}

	stored := store.students["ada@example.com"]
	if stored == nil {
		t.Fatalf("expected student stored under trimmed email")
	}
	if got, _ := stored["createdAt"].(time.Time); !got.Equal(now) {
		t.Fatalf("expected createdAt %s, got %v", now, stored["createdAt"])
	}
	if id, _ := stored["_id"].(primitive.ObjectID); id.Hex() != ack.InsertedID {
		t.Fatalf("ack id %s does not match stored id %v", ack.InsertedID, stored["_id"])
	}
}

func TestRegisterStudentKeepsUnknownFields(t *testing.T) {
	store := newFakeStudentStore()
	svc := NewStudentService(store)
	ctx := context.Background()

	_, err := svc.RegisterStudent(ctx, registerRequest(t,
		`{"email":"ada@example.com","gender":"f","phone":5551234,"socials":{"github":"ada"},"_id":"client-chosen"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	student, err := svc.GetStudentByEmail(ctx, "ada@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if student["gender"] != "f" || student["phone"] != float64(5551234) {
		t.Fatalf("expected unknown fields kept, got %v", student)
	}
	if socials, _ := student["socials"].(map[string]interface{}); socials["github"] != "ada" {
		t.Fatalf("expected nested field kept, got %v", student["socials"])
	}
	if _, ok := student["_id"].(primitive.ObjectID); !ok {
		t.Fatalf("expected server generated _id, got %v", student["_id"])
	}
}

func TestRegisterStudentDuplicateEmail(t *testing.T) {
	store := newFakeStudentStore()
	svc := NewStudentService(store)

	if _, err := svc.RegisterStudent(context.Background(), registerRequest(t, `{"email":"ada@example.com"}`)); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}

	_, err := svc.RegisterStudent(context.Background(), registerRequest(t, `{"email":"ada@example.com","name":"Again"}`))
	if !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if store.count() != 1 {
		t.Fatalf("expected student count to stay 1, got %d", store.count())
	}
}

func TestRegisterStudentConcurrentDuplicates(t *testing.T) {
	store := newFakeStudentStore()
	svc := NewStudentService(store)

	const workers = 16
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		ok        int
		conflicts int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.RegisterStudent(context.Background(), &dto.RegisterStudentRequest{Email: "race@example.com"})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				ok++
			case errors.Is(err, apperrors.ErrEmailAlreadyExists):
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if ok != 1 || conflicts != workers-1 {
		t.Fatalf("expected 1 success and %d conflicts, got %d and %d", workers-1, ok, conflicts)
	}
}

func TestRegisterStudentRequiresEmail(t *testing.T) {
	store := newFakeStudentStore()
	svc := NewStudentService(store)

	reqs := []*dto.RegisterStudentRequest{
		nil,
		registerRequest(t, `{"name":"No Email"}`),
		registerRequest(t, `{"email":"   "}`),
		registerRequest(t, `{"email":42}`),
	}
	for _, req := range reqs {
		if _, err := svc.RegisterStudent(context.Background(), req); !errors.Is(err, apperrors.ErrValidationFailed) {
			t.Fatalf("expected validation error for %+v, got %v", req, err)
		}
	}
	if store.count() != 0 {
		t.Fatalf("nothing should be stored")
	}
}

func TestRegisterStudentStoreFault(t *testing.T) {
	store := newFakeStudentStore()
	fault := errors.New("not primary")
	store.err = fault

	_, err := NewStudentService(store).RegisterStudent(context.Background(), &dto.RegisterStudentRequest{Email: "a@b.c"})
	if !errors.Is(err, fault) || errors.Is(err, apperrors.ErrEmailAlreadyExists) {
		t.Fatalf("expected wrapped fault, got %v", err)
	}
}

func TestGetStudentByEmail(t *testing.T) {
	store := newFakeStudentStore()
	store.logos["Tech Institute"] = "https://img.example.com/tech.png"
	svc := NewStudentService(store)
	ctx := context.Background()

	for _, body := range []string{
		`{"email":"ada@example.com","name":"Ada","college":"Tech Institute"}`,
		`{"email":"bob@example.com","name":"Bob","college":"Renamed College"}`,
	} {
		if _, err := svc.RegisterStudent(ctx, registerRequest(t, body)); err != nil {
			t.Fatal(err)
		}
	}

	ada, err := svc.GetStudentByEmail(ctx, "ada@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ada["name"] != "Ada" || ada["logo"] != "https://img.example.com/tech.png" {
		t.Fatalf("unexpected student %v", ada)
	}

	bob, err := svc.GetStudentByEmail(ctx, "bob@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := bob["logo"]; ok {
		t.Fatalf("expected no logo for unmatched college, got %v", bob["logo"])
	}

	if _, err := svc.GetStudentByEmail(ctx, "nobody@example.com"); !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := svc.GetStudentByEmail(ctx, " "); !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Fatalf("expected not found for blank email, got %v", err)
	}
}
