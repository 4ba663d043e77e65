package story

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"anim-studio-server/modules/common/events"
	"anim-studio-server/modules/common/store"
)

func newTestHandler(t *testing.T) (*Handler, *store.Collection[Story]) {
	t.Helper()
	collection := store.NewCollection[Story](filepath.Join(t.TempDir(), "stories.json"), "stories")
	return NewHandler(collection, events.NewHub()), collection
}

func putRequest(id, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPut, "/api/stories/"+id, strings.NewReader(body))
	return mux.SetURLVars(req, map[string]string{"id": id})
}

func TestSaveStory(t *testing.T) {
	h, _ := newTestHandler(t)

	body := `{"id": 1, "text": "소년이 숲에 들어간다", "elements": [{"type": "text", "content": "소년이"}]}`
	rec := httptest.NewRecorder()
	h.HandleSave(rec, httptest.NewRequest(http.MethodPost, "/api/stories", strings.NewReader(body)))

	var resp struct {
		Success bool  `json:"success"`
		Story   Story `json:"story"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 1, resp.Story.ID)
	assert.NotEmpty(t, resp.Story.CreatedAt)
	assert.Empty(t, resp.Story.UpdatedAt)
}

func TestSaveStoryMissingText(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.HandleSave(rec, httptest.NewRequest(http.MethodPost, "/api/stories", strings.NewReader(`{"id": 1}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Text is required", resp["error"])
}

func TestUpdateStory(t *testing.T) {
	h, collection := newTestHandler(t)
	require.NoError(t, collection.Save([]Story{{ID: 3, Text: "원본", Elements: []Element{}, CreatedAt: "2026-01-01T00:00:00Z"}}))

	rec := httptest.NewRecorder()
	h.HandleUpdate(rec, putRequest("3", `{"text": "수정본", "elements": []}`))

	var resp struct {
		Success bool  `json:"success"`
		Story   Story `json:"story"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "수정본", resp.Story.Text)
	assert.NotEmpty(t, resp.Story.UpdatedAt)

	stories := collection.Load()
	require.Len(t, stories, 1)
	assert.Equal(t, "수정본", stories[0].Text)
}

func TestUpdateMissingStory(t *testing.T) {
	h, collection := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.HandleUpdate(rec, putRequest("3", `{"text": "없는 스토리", "elements": []}`))

	var resp map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "Story not found", resp["error"])

	// 컬렉션은 변하지 않아야 함
	assert.Empty(t, collection.Load())
}

func TestListStoriesFresh(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.HandleList(rec, httptest.NewRequest(http.MethodGet, "/api/stories", nil))

	var resp struct {
		Stories []Story `json:"stories"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Empty(t, resp.Stories)
}
