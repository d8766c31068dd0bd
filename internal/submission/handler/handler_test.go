package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/flyambition/flyambition-api/internal/models"
	"github.com/flyambition/flyambition-api/internal/notify"
	"github.com/flyambition/flyambition-api/internal/submission/repository"
	"github.com/flyambition/flyambition-api/internal/submission/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	sent []notify.Message
	err  error
}

func (r *recordingSender) Send(_ context.Context, msg notify.Message) error {
	r.sent = append(r.sent, msg)
	return r.err
}

type failingList struct{}

func (failingList) Submit(context.Context, models.Submission) error { return nil }
func (failingList) List(context.Context) ([]models.Submission, error) {
	return nil, errors.New("db down")
}

type testEnv struct {
	router *gin.Engine
	sender *recordingSender
}

func newEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	sender := &recordingSender{}
	n := notify.NewNotifier(sender, "inbox@example.com")
	g := gin.New()
	RegisterSubmissionRoutes(g,
		service.New(models.KindEmployment, repository.NewMemoryRepo(), n),
		service.New(models.KindEducation, repository.NewMemoryRepo(), n),
	)
	return &testEnv{router: g, sender: sender}
}

func (e *testEnv) do(method, target, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	var out map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	return w, out
}

func (e *testEnv) list(t *testing.T, target string) []interface{} {
	t.Helper()
	w, body := e.do(http.MethodGet, target, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, true, body["success"])
	data, ok := body["data"].([]interface{})
	require.True(t, ok, "data should be an array: %v", body["data"])
	return data
}

func TestSendFormScenario(t *testing.T) {
	e := newEnv(t)

	w, body := e.do(http.MethodPost, "/send-form", `{"name":"A","email":"a@x.com","mobile":"123"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Form saved & email sent", body["message"])

	data := e.list(t, "/submissions")
	require.Len(t, data, 1)
	doc := data[0].(map[string]interface{})
	assert.Equal(t, "A", doc["name"])
	assert.NotEmpty(t, doc["_id"])

	require.Len(t, e.sender.sent, 1)
	msg := e.sender.sent[0]
	assert.Equal(t, "inbox@example.com", msg.To)
	assert.True(t, msg.HighPriority)
	assert.Contains(t, msg.Subject, "Employment")
	assert.Contains(t, msg.Text, `"_id": "`+doc["_id"].(string)+`"`)

	// kinds do not share storage
	assert.Empty(t, e.list(t, "/apply-education"))
}

func TestSendFormStoresFreeFormFieldsVerbatim(t *testing.T) {
	e := newEnv(t)
	payload := `{"name":"A","email":"a@x.com","mobile":"123","desiredJob":"Welder","skills":["tig","mig"],"age":31,"nested":{"k":"v"}}`

	w, _ := e.do(http.MethodPost, "/send-form", payload)
	require.Equal(t, http.StatusOK, w.Code)

	doc := e.list(t, "/submissions")[0].(map[string]interface{})
	assert.Equal(t, "Welder", doc["desiredJob"])
	assert.Equal(t, []interface{}{"tig", "mig"}, doc["skills"])
	assert.Equal(t, float64(31), doc["age"])
	assert.Equal(t, map[string]interface{}{"k": "v"}, doc["nested"])
	assert.Contains(t, e.sender.sent[0].HTML, "<b>Skills:</b> tig,mig")
}

func TestSendFormMissingFields(t *testing.T) {
	cases := map[string]string{
		"no mobile":    `{"name":"A","email":"a@x.com"}`,
		"empty name":   `{"name":"","email":"a@x.com","mobile":"1"}`,
		"null email":   `{"name":"A","email":null,"mobile":"1"}`,
		"empty object": `{}`,
		"null body":    `null`,
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			e := newEnv(t)
			w, body := e.do(http.MethodPost, "/send-form", payload)
			require.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, "Required fields missing", body["error"])
			assert.Empty(t, e.list(t, "/submissions"))
			assert.Empty(t, e.sender.sent)
		})
	}
}

func TestSendFormEmptyBody(t *testing.T) {
	e := newEnv(t)
	req := httptest.NewRequest(http.MethodPost, "/send-form", strings.NewReader(""))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Required fields missing")
}

func TestSendFormMalformedJSON(t *testing.T) {
	e := newEnv(t)
	w, body := e.do(http.MethodPost, "/send-form", `{"name":`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid request body", body["error"])
}

func TestSendFormEmailFailureIsServerError(t *testing.T) {
	e := newEnv(t)
	e.sender.err = errors.New("smtp down")

	w, body := e.do(http.MethodPost, "/send-form", `{"name":"A","email":"a@x.com","mobile":"123"}`)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to process form", body["error"])
	assert.NotContains(t, w.Body.String(), "smtp down")

	// the document was saved before the email failed
	assert.Len(t, e.list(t, "/submissions"), 1)
}

func TestSendFormWithUnconfiguredEmailIsServerError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	sender, err := notify.NewSender(true, notify.SMTPConfig{Host: "smtp.example.com"})
	require.ErrorIs(t, err, notify.ErrSMTPNotConfigured)
	repo := repository.NewMemoryRepo()
	n := notify.NewNotifier(sender, "inbox@example.com")
	g := gin.New()
	RegisterSubmissionRoutes(g,
		service.New(models.KindEmployment, repo, n),
		service.New(models.KindEducation, repository.NewMemoryRepo(), n),
	)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/send-form", strings.NewReader(`{"name":"A","email":"a@x.com","mobile":"123"}`))
	req.Header.Set("Content-Type", "application/json")
	g.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to process form")
	stored, _ := repo.List(context.Background())
	assert.Len(t, stored, 1)
}

func TestSendEducationForm(t *testing.T) {
	e := newEnv(t)

	w, _ := e.do(http.MethodPost, "/send-education-form", `{"name":"B","email":"b@x.com","mobile":"1"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, e.list(t, "/apply-education"))

	w, body := e.do(http.MethodPost, "/send-education-form", `{"name":"B","email":"b@x.com","phone":"555","subject":"Nursing"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Form saved & email sent", body["message"])

	data := e.list(t, "/apply-education")
	require.Len(t, data, 1)
	assert.Equal(t, "Nursing", data[0].(map[string]interface{})["subject"])
	require.Len(t, e.sender.sent, 1)
	assert.Contains(t, e.sender.sent[0].Subject, "Education")
	assert.Contains(t, e.sender.sent[0].HTML, "<b>Phone:</b> 555")

	assert.Empty(t, e.list(t, "/submissions"))
}

func TestListFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	g := gin.New()
	RegisterSubmissionRoutes(g, failingList{}, failingList{})

	for _, path := range []string{"/submissions", "/apply-education"} {
		w := httptest.NewRecorder()
		g.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Failed to fetch submissions")
	}
}
