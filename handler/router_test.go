package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scamaware/jersey/banner"
	"github.com/scamaware/jersey/content"
	"github.com/scamaware/jersey/handler"
	"github.com/scamaware/jersey/pkg/email"
)

type stubMailer struct {
	sent []email.Message
	err  error
}

func (m *stubMailer) Send(_ context.Context, msg email.Message) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

type apiEnvelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Fields  map[string]string `json:"fields"`
	} `json:"error"`
}

func newAPI(t *testing.T, mailer *stubMailer, checks ...func(context.Context) error) http.Handler {
	t.Helper()

	store, err := content.Default()
	require.NoError(t, err)

	bannerStore := banner.NewMemoryStore(0)
	t.Cleanup(bannerStore.Close)

	return handler.New(handler.Config{
		Content:         store,
		Banner:          banner.NewService(bannerStore),
		Mailer:          mailer,
		ReportRecipient: "reports@scamaware.je",
		ReadyChecks:     checks,
	})
}

func doJSON(t *testing.T, api http.Handler, req *http.Request) (*httptest.ResponseRecorder, apiEnvelope) {
	t.Helper()
	rec := httptest.NewRecorder()
	api.ServeHTTP(rec, req)

	var body apiEnvelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec, body
}

func TestContentEndpoints(t *testing.T) {
	api := newAPI(t, &stubMailer{})

	t.Run("lists scam categories", func(t *testing.T) {
		rec, body := doJSON(t, api, httptest.NewRequest(http.MethodGet, "/api/v1/scams", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var cats []content.Category
		require.NoError(t, json.Unmarshal(body.Data, &cats))
		assert.NotEmpty(t, cats)
	})

	t.Run("fetches one category by slug", func(t *testing.T) {
		rec, body := doJSON(t, api, httptest.NewRequest(http.MethodGet, "/api/v1/scams/phone-scams", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var cat content.Category
		require.NoError(t, json.Unmarshal(body.Data, &cat))
		assert.Equal(t, "Phone scams", cat.Title)
	})

	t.Run("unknown slug is 404", func(t *testing.T) {
		rec, body := doJSON(t, api, httptest.NewRequest(http.MethodGet, "/api/v1/scams/nope", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		require.NotNil(t, body.Error)
		assert.Equal(t, "not_found", body.Error.Code)
	})

	t.Run("lists warning signs and help", func(t *testing.T) {
		rec, _ := doJSON(t, api, httptest.NewRequest(http.MethodGet, "/api/v1/warning-signs", nil))
		assert.Equal(t, http.StatusOK, rec.Code)

		rec, _ = doJSON(t, api, httptest.NewRequest(http.MethodGet, "/api/v1/help", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestReportEndpoint(t *testing.T) {
	validJSON := func() string {
		return `{
			"name": "  Jo Bloggs ",
			"email": "Jo@Example.COM",
			"scam_type": "phone-scams",
			"message": "Someone claiming to be my bank asked me to move money."
		}`
	}

	t.Run("accepts a valid JSON report and notifies", func(t *testing.T) {
		mailer := &stubMailer{}
		api := newAPI(t, mailer)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/report", strings.NewReader(validJSON()))
		req.Header.Set("Content-Type", "application/json")

		rec, body := doJSON(t, api, req)
		require.Equal(t, http.StatusAccepted, rec.Code)

		var data map[string]string
		require.NoError(t, json.Unmarshal(body.Data, &data))
		assert.NotEmpty(t, data["report_id"])

		require.Len(t, mailer.sent, 1)
		msg := mailer.sent[0]
		assert.Equal(t, "reports@scamaware.je", msg.To)
		assert.Contains(t, msg.Subject, "phone-scams")
		assert.Contains(t, msg.BodyText, "Jo Bloggs")
		assert.Contains(t, msg.BodyText, "jo@example.com")
	})

	t.Run("accepts a urlencoded form report", func(t *testing.T) {
		mailer := &stubMailer{}
		api := newAPI(t, mailer)

		form := url.Values{
			"name":    {"Jo Bloggs"},
			"email":   {"jo@example.com"},
			"message": {"A cold caller offered to resurface my driveway for cash."},
		}
		req := httptest.NewRequest(http.MethodPost, "/api/v1/report", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		rec, _ := doJSON(t, api, req)
		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.Len(t, mailer.sent, 1)
	})

	t.Run("rejects missing fields with per-field errors", func(t *testing.T) {
		mailer := &stubMailer{}
		api := newAPI(t, mailer)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/report", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")

		rec, body := doJSON(t, api, req)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		require.NotNil(t, body.Error)
		assert.Equal(t, "validation_error", body.Error.Code)
		assert.Equal(t, "This field is required", body.Error.Fields["name"])
		assert.Equal(t, "This field is required", body.Error.Fields["email"])
		assert.Equal(t, "Please tell us what happened", body.Error.Fields["message"])
		assert.Empty(t, mailer.sent)
	})

	t.Run("rejects invalid email and unknown scam type", func(t *testing.T) {
		api := newAPI(t, &stubMailer{})

		payload := `{
			"name": "Jo",
			"email": "not-an-email",
			"scam_type": "time-travel-scams",
			"message": "Long enough message describing what happened."
		}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/report", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")

		rec, body := doJSON(t, api, req)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "Please enter a valid email address", body.Error.Fields["email"])
		assert.Equal(t, "Please choose a scam type from the list", body.Error.Fields["scam_type"])
	})

	t.Run("rejects a too-short message", func(t *testing.T) {
		api := newAPI(t, &stubMailer{})

		payload := `{"name": "Jo", "email": "jo@example.com", "message": "scam"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/report", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")

		rec, body := doJSON(t, api, req)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "Please give us a little more detail", body.Error.Fields["message"])
	})

	t.Run("optional phone is validated when present", func(t *testing.T) {
		api := newAPI(t, &stubMailer{})

		payload := `{
			"name": "Jo",
			"email": "jo@example.com",
			"phone": "call me maybe",
			"message": "Long enough message describing what happened."
		}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/report", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")

		rec, body := doJSON(t, api, req)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "Please enter a valid phone number", body.Error.Fields["phone"])
	})

	t.Run("malformed JSON is 400", func(t *testing.T) {
		api := newAPI(t, &stubMailer{})

		req := httptest.NewRequest(http.MethodPost, "/api/v1/report", strings.NewReader("{broken"))
		req.Header.Set("Content-Type", "application/json")

		rec, _ := doJSON(t, api, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("delivery failure is 500 and no report id leaks", func(t *testing.T) {
		api := newAPI(t, &stubMailer{err: errors.New("postmark down")})

		req := httptest.NewRequest(http.MethodPost, "/api/v1/report", strings.NewReader(validJSON()))
		req.Header.Set("Content-Type", "application/json")

		rec, body := doJSON(t, api, req)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "report_failed", body.Error.Code)
		assert.Nil(t, body.Data)
	})
}

func TestBannerEndpoints(t *testing.T) {
	api := newAPI(t, &stubMailer{})

	t.Run("banner shows for a fresh visitor", func(t *testing.T) {
		rec, body := doJSON(t, api, httptest.NewRequest(http.MethodGet, "/api/v1/banner", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"dismissed": false}`, string(body.Data))
	})

	t.Run("dismiss sets a cookie and sticks for the visit", func(t *testing.T) {
		rec, body := doJSON(t, api, httptest.NewRequest(http.MethodPost, "/api/v1/banner/dismiss", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"dismissed": true}`, string(body.Data))

		cookies := rec.Result().Cookies()
		require.NotEmpty(t, cookies)
		visitor := cookies[0]
		assert.Equal(t, banner.CookieName, visitor.Name)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/banner", nil)
		req.AddCookie(visitor)
		rec, body = doJSON(t, api, req)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"dismissed": true}`, string(body.Data))

		restore := httptest.NewRequest(http.MethodPost, "/api/v1/banner/restore", nil)
		restore.AddCookie(visitor)
		rec, body = doJSON(t, api, restore)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"dismissed": false}`, string(body.Data))
	})
}

func TestHealthEndpoints(t *testing.T) {
	t.Run("liveness always passes", func(t *testing.T) {
		api := newAPI(t, &stubMailer{}, func(context.Context) error { return errors.New("down") })

		rec := httptest.NewRecorder()
		api.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("readiness reflects dependency checks", func(t *testing.T) {
		api := newAPI(t, &stubMailer{}, func(context.Context) error { return errors.New("down") })

		rec := httptest.NewRecorder()
		api.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}
