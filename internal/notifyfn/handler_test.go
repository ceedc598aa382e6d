package notifyfn

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/capturesangli/studio-api/internal/pkg/email"
)

type fakeSender struct {
	messages []*email.EmailMessage
	sendErr  error
}

func (f *fakeSender) Send(ctx context.Context, msg *email.EmailMessage) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.messages = append(f.messages, msg)
	return nil
}

func newTestHandler(t *testing.T, sender *fakeSender) *Handler {
	t.Helper()
	renderer, err := email.NewRenderer()
	if err != nil {
		t.Fatal(err)
	}
	return NewHandler(sender, renderer, "info@capturesangli.com")
}

func post(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestContactNotification(t *testing.T) {
	sender := &fakeSender{}
	h := newTestHandler(t, sender)

	rec := post(h, `{"type":"contact","data":{"name":"Arjun Patil","email":"arjun@example.com","message":"Hello"}}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(sender.messages) != 1 {
		t.Fatalf("expected one email, got %d", len(sender.messages))
	}

	msg := sender.messages[0]
	if msg.To != "info@capturesangli.com" {
		t.Errorf("unexpected recipient %s", msg.To)
	}
	if msg.Subject != "New Contact Form Submission" {
		t.Errorf("unexpected subject %s", msg.Subject)
	}
	if !strings.Contains(msg.HTMLContent, "Arjun Patil") || !strings.Contains(msg.HTMLContent, "arjun@example.com") {
		t.Error("email body missing submission fields")
	}

	var resp struct {
		Success bool              `json:"success"`
		Data    map[string]string `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Success {
		t.Error("expected success=true")
	}
	if resp.Data["type"] != "contact" {
		t.Errorf("unexpected data: %+v", resp.Data)
	}
}

func TestBookingNotification(t *testing.T) {
	sender := &fakeSender{}
	h := newTestHandler(t, sender)

	rec := post(h, `{"type":"booking","data":{"name":"Meera Kulkarni","email":"meera@example.com","phone":"+91 98222 11000","service":"wedding","booking_date":"2026-10-15","time_slot":"9:00 AM - 11:00 AM"}}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(sender.messages) != 1 {
		t.Fatalf("expected one email, got %d", len(sender.messages))
	}

	msg := sender.messages[0]
	if msg.Subject != "New Photography Session Booking" {
		t.Errorf("unexpected subject %s", msg.Subject)
	}
	for _, want := range []string{"Meera Kulkarni", "wedding", "2026-10-15", "9:00 AM - 11:00 AM"} {
		if !strings.Contains(msg.HTMLContent, want) {
			t.Errorf("email body missing %q", want)
		}
	}
}

func TestUnknownType(t *testing.T) {
	sender := &fakeSender{}
	h := newTestHandler(t, sender)

	rec := post(h, `{"type":"newsletter","data":{}}`)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if len(sender.messages) != 0 {
		t.Error("no email should be sent for unknown type")
	}

	var resp struct {
		Success bool `json:"success"`
		Error   struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Success {
		t.Error("expected success=false")
	}
	if resp.Error.Code != "SEND_FAILED" {
		t.Errorf("unexpected error code %s", resp.Error.Code)
	}
}

func TestSenderFailure(t *testing.T) {
	sender := &fakeSender{sendErr: errors.New("resend API error (status 422)")}
	h := newTestHandler(t, sender)

	rec := post(h, `{"type":"contact","data":{"name":"A","email":"a@example.com","message":"Hi"}}`)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestPreflight(t *testing.T) {
	h := newTestHandler(t, &fakeSender{})

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("expected empty preflight body, got %q", rec.Body.String())
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("unexpected allow-origin %q", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Headers"); !strings.Contains(got, "apikey") {
		t.Errorf("unexpected allow-headers %q", got)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	h := newTestHandler(t, &fakeSender{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Error("CORS headers should be set on every response")
	}
}
