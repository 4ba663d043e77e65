package storyboard

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

	"anim-studio-server/modules/common/assets"
	"anim-studio-server/modules/common/events"
	"anim-studio-server/modules/common/store"
)

const baseURL = "http://localhost:8000"

func newTestHandler(t *testing.T) (*Handler, *store.Collection[Scene]) {
	t.Helper()

	manager, err := assets.NewManager(t.TempDir(), baseURL)
	require.NoError(t, err)

	collection := store.NewCollection[Scene](filepath.Join(t.TempDir(), "storyboards.json"), "storyboards")
	return NewHandler(collection, manager, events.NewHub()), collection
}

func TestSaveBatchScenes(t *testing.T) {
	h, collection := newTestHandler(t)

	body := `{"scenes": [
		{"id": 1, "imageUrl": "http://localhost:8000/static/images/a.png", "description": "소년이 숲에 들어간다"},
		{"id": 2, "imageUrl": "http://localhost:8000/static/images/b.png", "description": "여우를 만난다"}
	]}`
	rec := httptest.NewRecorder()
	h.HandleSave(rec, httptest.NewRequest(http.MethodPost, "/api/storyboards", strings.NewReader(body)))

	var resp struct {
		Success bool    `json:"success"`
		Scenes  []Scene `json:"scenes"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.Scenes, 2)
	assert.NotEmpty(t, resp.Scenes[0].CreatedAt)

	assert.Len(t, collection.Load(), 2)
}

func TestSaveSingleSceneWithDataURL(t *testing.T) {
	h, collection := newTestHandler(t)

	// 1x1 PNG
	body := `{"id": 1, "imageUrl": "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mP8z8BQDwAEhQGAhKmMIQAAAABJRU5ErkJggg==", "description": "키 프레임"}`
	rec := httptest.NewRecorder()
	h.HandleSave(rec, httptest.NewRequest(http.MethodPost, "/api/storyboards", strings.NewReader(body)))

	var resp struct {
		Success bool    `json:"success"`
		Scenes  []Scene `json:"scenes"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.Scenes, 1)

	// data URL은 정적 자산 URL로 교체되어 저장
	assert.True(t, strings.HasPrefix(resp.Scenes[0].ImageURL, baseURL+"/static/images/"))

	scenes := collection.Load()
	require.Len(t, scenes, 1)
	assert.Equal(t, resp.Scenes[0].ImageURL, scenes[0].ImageURL)
}

func TestUpdateEndFrame(t *testing.T) {
	h, collection := newTestHandler(t)
	require.NoError(t, collection.Save([]Scene{
		{ID: 7, ImageURL: baseURL + "/static/images/a.png", Description: "장면", CreatedAt: "2026-01-01T00:00:00Z"},
	}))

	req := httptest.NewRequest(http.MethodPut, "/api/storyboards/7",
		strings.NewReader(`{"endFrameUrl": "http://localhost:8000/static/images/end.png"}`))
	req = mux.SetURLVars(req, map[string]string{"id": "7"})
	rec := httptest.NewRecorder()

	h.HandleUpdate(rec, req)

	var resp struct {
		Success    bool  `json:"success"`
		Storyboard Scene `json:"storyboard"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Success)
	assert.Equal(t, baseURL+"/static/images/end.png", resp.Storyboard.EndFrameURL)

	scenes := collection.Load()
	require.Len(t, scenes, 1)
	assert.Equal(t, baseURL+"/static/images/end.png", scenes[0].EndFrameURL)
}

func TestUpdateMissingScene(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPut, "/api/storyboards/99",
		strings.NewReader(`{"endFrameUrl": "http://localhost:8000/static/images/end.png"}`))
	req = mux.SetURLVars(req, map[string]string{"id": "99"})
	rec := httptest.NewRecorder()

	h.HandleUpdate(rec, req)

	var resp map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "Storyboard not found", resp["error"])
}

func TestListFresh(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.HandleList(rec, httptest.NewRequest(http.MethodGet, "/api/storyboards", nil))

	var resp struct {
		Storyboards []Scene `json:"storyboards"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Empty(t, resp.Storyboards)
}
