package ai

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestNewGeminiClient_DisabledWithoutKey(t *testing.T) {
	client, err := NewGeminiClient(Config{GeminiAPIKey: "   "})
	assert.ErrorIs(t, err, ErrDisabled)
	assert.Nil(t, client)
	assert.False(t, client.Enabled())
}

func TestNewGeminiClient_Defaults(t *testing.T) {
	client, err := NewGeminiClient(Config{GeminiAPIKey: "key"})
	require.NoError(t, err)
	assert.Equal(t, "gemini-1.5-flash", client.Name())
	assert.Equal(t, defaultGeminiBaseURL, client.baseURL)
	assert.Equal(t, 0.3, client.temperature)
	assert.Equal(t, 1000, client.maxTokens)
	assert.Equal(t, defaultTimeout, client.httpClient.Timeout)
}

func TestGeminiGenerate_Success(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/models/gemini-test:generateContent", r.URL.Path)
		assert.Equal(t, "secret", r.URL.Query().Get("key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, "explain this", gjson.GetBytes(body, "contents.0.parts.0.text").String())
		assert.Equal(t, 0.3, gjson.GetBytes(body, "generationConfig.temperature").Float())
		assert.Equal(t, int64(1000), gjson.GetBytes(body, "generationConfig.maxOutputTokens").Int())

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"شرح"},{"text":" إضافي"}]},"finishReason":"STOP"}]}`))
	}))
	defer ts.Close()

	client, err := NewGeminiClient(Config{GeminiAPIKey: "secret", GeminiModel: "gemini-test", GeminiBaseURL: ts.URL + "/"})
	require.NoError(t, err)

	text, err := client.Generate(context.Background(), "explain this")
	require.NoError(t, err)
	assert.Equal(t, "شرح إضافي", text)
}

func TestGeminiGenerate_Non200(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"quota"}}`))
	}))
	defer ts.Close()

	client, err := NewGeminiClient(Config{GeminiAPIKey: "k", GeminiBaseURL: ts.URL})
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), "p")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
	assert.Contains(t, err.Error(), "quota")
}

func TestGeminiGenerate_MissingText(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer ts.Close()

	client, err := NewGeminiClient(Config{GeminiAPIKey: "k", GeminiBaseURL: ts.URL})
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), "p")
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestGeminiGenerate_InvalidJSON(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>`))
	}))
	defer ts.Close()

	client, err := NewGeminiClient(Config{GeminiAPIKey: "k", GeminiBaseURL: ts.URL})
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), "p")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid json")
}

func TestRedact(t *testing.T) {
	assert.Equal(t, `Post "http://x/?key=API_KEY_HIDDEN": refused`, redact(`Post "http://x/?key=s%2Fk": refused`, "s/k"))
	assert.Equal(t, "key plain API_KEY_HIDDEN", redact("key plain abc", "abc"))
	assert.Equal(t, "nothing", redact("nothing", ""))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("  abc  ", 5))
	assert.Equal(t, "ab...", truncate("abcdef", 2))
}
