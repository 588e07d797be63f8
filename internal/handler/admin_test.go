package handler

import (
	"net/http"
	"strings"
	"testing"

	"github.com/bizpeer/cdg-beauty/internal/config"
	"github.com/bizpeer/cdg-beauty/internal/model"
)

func newAdminHandler() (*AdminHandler, *fakeAdminStore) {
	admins := &fakeAdminStore{}
	admins.add("top@kwavem.com", "topsecret", model.RoleMain, false)
	admins.add("sub@kwavem.com", "subsecret", model.RoleSub, false)
	return NewAdminHandler(config.Config{BcryptCost: 4}, admins), admins
}

func TestAdminListExcludesMainAndHashes(t *testing.T) {
	h, _ := newAdminHandler()
	c, rec := newTestCtx(http.MethodGet, "/api/admins", "")
	_ = h.List(c)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if strings.Contains(body, "top@kwavem.com") {
		t.Error("main admin included in sub-admin listing")
	}
	if !strings.Contains(body, "sub@kwavem.com") {
		t.Error("sub admin missing from listing")
	}
	if strings.Contains(body, "$2a$") || strings.Contains(body, "password") {
		t.Errorf("listing leaks credential material: %s", body)
	}
}

func TestAdminCreate(t *testing.T) {
	h, admins := newAdminHandler()
	c, rec := newTestCtx(http.MethodPost, "/api/admins",
		`{"email":"new@kwavem.com","password":"pw12345"}`)
	_ = h.Create(c)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (body %s)", rec.Code, rec.Body)
	}
	a, err := admins.GetByEmail(c.Request().Context(), "new@kwavem.com")
	if err != nil {
		t.Fatalf("created admin not stored: %v", err)
	}
	if a.Role != model.RoleSub {
		t.Errorf("role = %q, want sub", a.Role)
	}
	if a.PasswordHash == "pw12345" {
		t.Error("password stored in plaintext")
	}
}

func TestAdminCreateDuplicate(t *testing.T) {
	h, _ := newAdminHandler()
	c, rec := newTestCtx(http.MethodPost, "/api/admins",
		`{"email":"sub@kwavem.com","password":"pw12345"}`)
	_ = h.Create(c)
	if rec.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", rec.Code)
	}
}

func TestAdminDelete(t *testing.T) {
	h, admins := newAdminHandler()

	c, rec := newTestCtx(http.MethodDelete, "/api/admins/2", "")
	c.SetParamNames("id")
	c.SetParamValues("2")
	_ = h.Delete(c)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if _, err := admins.GetByEmail(c.Request().Context(), "sub@kwavem.com"); err == nil {
		t.Error("sub admin still present after delete")
	}

	// Missing ids surface as 404.
	c, rec = newTestCtx(http.MethodDelete, "/api/admins/99", "")
	c.SetParamNames("id")
	c.SetParamValues("99")
	_ = h.Delete(c)
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing id: status = %d, want 404", rec.Code)
	}

	// The seeded main admin (id 1) is out of the delete query's scope.
	c, rec = newTestCtx(http.MethodDelete, "/api/admins/1", "")
	c.SetParamNames("id")
	c.SetParamValues("1")
	_ = h.Delete(c)
	if rec.Code != http.StatusNotFound {
		t.Errorf("main admin delete: status = %d, want 404", rec.Code)
	}
}

func TestSetInquiryReceiver(t *testing.T) {
	h, admins := newAdminHandler()

	c, rec := newTestCtx(http.MethodPost, "/api/config/inquiry-receiver",
		`{"email":"sub@kwavem.com"}`)
	_ = h.SetInquiryReceiver(c)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body)
	}

	// Exactly one account carries the flag afterwards.
	flagged := 0
	for _, a := range admins.admins {
		if a.ReceivesInquiries {
			flagged++
			if a.Email != "sub@kwavem.com" {
				t.Errorf("flag on %s, want sub@kwavem.com", a.Email)
			}
		}
	}
	if flagged != 1 {
		t.Errorf("flagged accounts = %d, want 1", flagged)
	}

	// Reassigning moves the flag rather than adding a second one.
	c, _ = newTestCtx(http.MethodPost, "/api/config/inquiry-receiver",
		`{"email":"top@kwavem.com"}`)
	_ = h.SetInquiryReceiver(c)
	flagged = 0
	for _, a := range admins.admins {
		if a.ReceivesInquiries {
			flagged++
		}
	}
	if flagged != 1 {
		t.Errorf("flagged accounts after reassign = %d, want 1", flagged)
	}
}

func TestSetInquiryReceiverUnknownEmail(t *testing.T) {
	h, _ := newAdminHandler()
	c, rec := newTestCtx(http.MethodPost, "/api/config/inquiry-receiver",
		`{"email":"ghost@kwavem.com"}`)
	_ = h.SetInquiryReceiver(c)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
