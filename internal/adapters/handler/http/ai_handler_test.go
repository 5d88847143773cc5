package http_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hardlevel/hardlevel-core/internal/core/domain"
)

func TestGenerateAvatar(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		env := setupEnv(t)
		want := domain.GenerateAvatarInput{Style: domain.AvatarStylePixar, Mood: "happy"}
		env.avatar.On("Generate", mock.Anything, want).Return(&domain.AvatarResult{URL: "https://cdn/a.png"}, nil).Once()

		w := env.do(http.MethodPost, "/api/v1/avatar", `{"style":"Pixar","mood":"happy"}`, env.token(t))
		require.Equal(t, http.StatusOK, w.Code)

		res := decode[map[string]string](t, w)
		assert.Equal(t, "https://cdn/a.png", res["url"])
		assert.Equal(t, domain.BuildAvatarPrompt(want), res["prompt"])
		env.avatar.AssertExpectations(t)
	})

	t.Run("Fail: 400 unknown style never reaches the port", func(t *testing.T) {
		env := setupEnv(t)

		w := env.do(http.MethodPost, "/api/v1/avatar", `{"style":"noir","mood":"happy"}`, env.token(t))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env.avatar.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
	})

	t.Run("Fail: 400 missing mood", func(t *testing.T) {
		env := setupEnv(t)

		w := env.do(http.MethodPost, "/api/v1/avatar", `{"style":"ghibli"}`, env.token(t))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Fail: 502 provider down", func(t *testing.T) {
		env := setupEnv(t)
		env.avatar.On("Generate", mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("%w: status 503", domain.ErrUpstream))

		w := env.do(http.MethodPost, "/api/v1/avatar", `{"style":"ghibli","mood":"calm"}`, env.token(t))

		assert.Equal(t, http.StatusBadGateway, w.Code)
	})

	t.Run("Fail: 500 unexpected error", func(t *testing.T) {
		env := setupEnv(t)
		env.avatar.On("Generate", mock.Anything, mock.Anything).Return(nil, fmt.Errorf("boom"))

		w := env.do(http.MethodPost, "/api/v1/avatar", `{"style":"ghibli","mood":"calm"}`, env.token(t))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "boom")
	})
}

func TestSummarizeJournal(t *testing.T) {
	t.Run("Success: result is returned untouched", func(t *testing.T) {
		env := setupEnv(t)
		env.journal.On("Summarize", mock.Anything, domain.JournalAIInput{Text: "long day"}).
			Return(&domain.JournalAIResult{Summary: "You pushed through.", Mood: "tired"}, nil)

		w := env.do(http.MethodPost, "/api/v1/journal/summarize", `{"text":"long day"}`, env.token(t))
		require.Equal(t, http.StatusOK, w.Code)

		res := decode[domain.JournalAIResult](t, w)
		assert.Equal(t, domain.JournalAIResult{Summary: "You pushed through.", Mood: "tired"}, res)
	})

	t.Run("Fail: 400 blank text", func(t *testing.T) {
		env := setupEnv(t)

		w := env.do(http.MethodPost, "/api/v1/journal/summarize", `{"text":"   "}`, env.token(t))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env.journal.AssertNotCalled(t, "Summarize", mock.Anything, mock.Anything)
	})

	t.Run("Fail: 502 provider down", func(t *testing.T) {
		env := setupEnv(t)
		env.journal.On("Summarize", mock.Anything, mock.Anything).Return(nil, domain.ErrUpstream)

		w := env.do(http.MethodPost, "/api/v1/journal/summarize", `{"text":"x"}`, env.token(t))

		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}
