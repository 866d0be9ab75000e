package respond

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gatherly/gatherly/internal/core"
)

func TestAbsentResultIs404(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteResult(rr, nil)
	if rr.Code != 404 {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
	if rr.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %q", rr.Body.String())
	}
}

func TestSuccessWithValueIs200(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteResult(rr, core.Ok(map[string]string{"title": "Run"}))
	if rr.Code != 200 {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["title"] != "Run" {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestEmptySuccessIs404(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteResult(rr, core.Empty[*struct{}]())
	if rr.Code != 404 {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestFailureIs400WithErrorBody(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteResult(rr, core.Fail[core.Unit]("failed to update activity"))
	if rr.Code != 400 {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["error"] != "failed to update activity" {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestBareQueryValueIs200(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteResult(rr, []int{1, 2, 3})
	if rr.Code != 200 {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}
