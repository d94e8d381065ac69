package controllers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"testing"
	"time"

	"gitea.com/go-chi/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/securefit/ecard/models"
	"github.com/securefit/ecard/services"
)

func TestResultsIndexShowsStoredTotal(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(".."))
	t.Cleanup(func() { os.Chdir(wd) })

	// One bucketed record, but two stored: a dateless record joins no
	// bucket yet still counts
	stub := &stubFitTestService{
		buckets: []services.MonthBucket{{
			Label: "March 2024",
			Year:  2024,
			Month: time.March,
			Count: 1,
			Records: []models.FitTestRecord{
				{ID: "rec-1", IssueDate: "03/10/2024", ClientName: "Jane Roe", Result: models.ResultPass},
			},
		}},
		count: 2,
	}
	ctrl := NewResultsController(&services.Services{FitTest: stub})

	sessioner, err := session.Sessioner(session.Options{
		Provider:    "memory",
		CookieName:  "test_session",
		Gclifetime:  3600,
		Maxlifetime: 3600,
	})
	require.NoError(t, err)
	handler := sessioner(http.HandlerFunc(ctrl.Index))

	req := httptest.NewRequest(http.MethodGet, "/results", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "2 record(s)")
	assert.Contains(t, body, "March 2024")
	assert.Contains(t, body, "Jane Roe")
}

func TestResendRedirectsWithSuccessMessage(t *testing.T) {
	ctrl := NewResultsController(&services.Services{FitTest: &stubFitTestService{}})

	req := httptest.NewRequest(http.MethodPost, "/results/rec-1/resend", nil)
	rec := httptest.NewRecorder()
	ctrl.Resend(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/results?success="+url.QueryEscape(services.MsgResent), rec.Header().Get("Location"))
}

func TestResendWithoutRecipientRedirectsWithError(t *testing.T) {
	ctrl := NewResultsController(&services.Services{FitTest: &stubFitTestService{resendErr: services.ErrNoRecipient}})

	req := httptest.NewRequest(http.MethodPost, "/results/rec-1/resend", nil)
	rec := httptest.NewRecorder()
	ctrl.Resend(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/results?error="+url.QueryEscape(services.ErrNoRecipient.Error()), rec.Header().Get("Location"))
}
