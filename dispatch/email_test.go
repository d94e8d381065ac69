package dispatch

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(baseURL string) Config {
	return Config{
		BaseURL:    baseURL,
		ServiceID:  "service_test",
		TemplateID: "template_test",
		PublicKey:  "key_test",
	}
}

func TestSendSuccess(t *testing.T) {
	var got sendRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1.0/email/send", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	d := NewDispatcher(testConfig(server.URL))
	err := d.Send(context.Background(), Message{
		Recipient:     "student@example.com",
		RecipientName: "Jane Roe",
		Subject:       "Fit Testing Results E-card",
		HTML:          "<html>card</html>",
	})
	require.NoError(t, err)

	assert.Equal(t, "service_test", got.ServiceID)
	assert.Equal(t, "student@example.com", got.TemplateParams["to_email"])
	assert.Equal(t, "Jane Roe", got.TemplateParams["to_name"])
	assert.Equal(t, "<html>card</html>", got.TemplateParams["html_message"])
	assert.Equal(t, "student@example.com", got.TemplateParams["reply_to"])
}

func TestSendEmptyRecipient(t *testing.T) {
	d := NewDispatcher(testConfig("http://localhost:0"))
	err := d.Send(context.Background(), Message{Recipient: "  "})
	assert.ErrorIs(t, err, ErrRecipientEmpty)
}

func TestSendNotConfigured(t *testing.T) {
	d := NewDispatcher(Config{})
	err := d.Send(context.Background(), Message{Recipient: "student@example.com"})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestSendTemplateRecipientMisconfiguration(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte("The recipients address is empty"))
	}))
	defer server.Close()

	d := NewDispatcher(testConfig(server.URL))
	err := d.Send(context.Background(), Message{Recipient: "student@example.com"})
	assert.ErrorIs(t, err, ErrTemplateRecipient)
}

func TestSendProviderRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte("invalid public key"))
	}))
	defer server.Close()

	d := NewDispatcher(testConfig(server.URL))
	err := d.Send(context.Background(), Message{Recipient: "student@example.com"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrTemplateRecipient)
	assert.Contains(t, err.Error(), "invalid public key")
}
