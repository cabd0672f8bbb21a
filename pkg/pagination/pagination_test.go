package pagination

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func testContext(t *testing.T, target string) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestFromContext_Defaults(t *testing.T) {
	p := FromContext(testContext(t, "/"))
	if p.Limit != DefaultLimit {
		t.Errorf("expected default limit %d, got %d", DefaultLimit, p.Limit)
	}
	if p.Offset != 0 {
		t.Errorf("expected default offset 0, got %d", p.Offset)
	}
}

func TestFromContext_CustomValues(t *testing.T) {
	p := FromContext(testContext(t, "/?limit=50&offset=10"))
	if p.Limit != 50 {
		t.Errorf("expected limit 50, got %d", p.Limit)
	}
	if p.Offset != 10 {
		t.Errorf("expected offset 10, got %d", p.Offset)
	}
}

func TestFromContext_MaxLimit(t *testing.T) {
	p := FromContext(testContext(t, "/?limit=500"))
	if p.Limit != MaxLimit {
		t.Errorf("expected limit capped at %d, got %d", MaxLimit, p.Limit)
	}
}

func TestFromContext_NegativeOffset(t *testing.T) {
	p := FromContext(testContext(t, "/?offset=-5"))
	if p.Offset != 0 {
		t.Errorf("expected negative offset clamped to 0, got %d", p.Offset)
	}
}

func TestNewResponse_HasMore(t *testing.T) {
	r := NewResponse(nil, 100, 20, 0)
	if !r.HasMore {
		t.Error("expected HasMore true for first page of 100")
	}
	r = NewResponse(nil, 100, 20, 80)
	if r.HasMore {
		t.Error("expected HasMore false on last page")
	}
}

func TestSlice(t *testing.T) {
	p := Params{Limit: 20, Offset: 10}
	lo, hi := p.Slice(15)
	if lo != 10 || hi != 15 {
		t.Errorf("Slice(15) = [%d,%d), want [10,15)", lo, hi)
	}
	lo, hi = p.Slice(5)
	if lo != 5 || hi != 5 {
		t.Errorf("Slice(5) = [%d,%d), want empty [5,5)", lo, hi)
	}
}
