package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/bizpeer/cdg-beauty/internal/model"
)

func TestShowcaseCreateDefaults(t *testing.T) {
	h := NewShowcaseHandler(&fakeShowcaseStore{})
	c, rec := newTestCtx(http.MethodPost, "/api/showcase",
		`{"title":"Glow Collection","subtitle":"New season","image_url":"/assets/images/glow.jpg"}`)
	_ = h.Create(c)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (body %s)", rec.Code, rec.Body)
	}
	var s model.ShowcaseSlide
	if err := json.Unmarshal(rec.Body.Bytes(), &s); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if s.Layout != model.LayoutStandard {
		t.Errorf("layout = %q, want standard default", s.Layout)
	}
	if s.BgColor != "#F3F3F3" {
		t.Errorf("bg_color = %q, want #F3F3F3 default", s.BgColor)
	}
}

func TestShowcaseCreateRejectsUnknownLayout(t *testing.T) {
	store := &fakeShowcaseStore{}
	h := NewShowcaseHandler(store)
	c, rec := newTestCtx(http.MethodPost, "/api/showcase",
		`{"title":"X","layout":"hero"}`)
	_ = h.Create(c)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if len(store.items) != 0 {
		t.Error("invalid slide was stored")
	}
}

// The statement layout is carried by the explicit field, never inferred from
// the title or slide position.
func TestShowcaseLayoutIsExplicit(t *testing.T) {
	store := &fakeShowcaseStore{}
	h := NewShowcaseHandler(store)

	// A slide titled like the brand statement but with standard layout stays
	// standard.
	c, _ := newTestCtx(http.MethodPost, "/api/showcase",
		`{"title":"PLAY BEAUTY","layout":"standard","order_index":0}`)
	_ = h.Create(c)
	// And a later slide can be the statement one.
	c, rec := newTestCtx(http.MethodPost, "/api/showcase",
		`{"title":"Second Slide","layout":"statement","description":"d","order_index":5}`)
	_ = h.Create(c)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}

	if store.items[0].Layout != model.LayoutStandard {
		t.Errorf("slide 0 layout = %q, want standard", store.items[0].Layout)
	}
	if store.items[1].Layout != model.LayoutStatement {
		t.Errorf("slide 1 layout = %q, want statement", store.items[1].Layout)
	}
}

func TestShowcaseCreateRequiresTitle(t *testing.T) {
	h := NewShowcaseHandler(&fakeShowcaseStore{})
	c, rec := newTestCtx(http.MethodPost, "/api/showcase", `{"layout":"standard"}`)
	_ = h.Create(c)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestShowcaseUpdateMissing(t *testing.T) {
	h := NewShowcaseHandler(&fakeShowcaseStore{})
	c, rec := newTestCtx(http.MethodPut, "/api/showcase/7", `{"title":"X"}`)
	c.SetParamNames("id")
	c.SetParamValues("7")
	_ = h.Update(c)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
