package app

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"coursehub_backend/internal/config"
	"coursehub_backend/internal/model"
	"coursehub_backend/internal/service"
	"coursehub_backend/internal/testutil"

	"github.com/gin-gonic/gin"
)

type memoryFileHost struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func (h *memoryFileHost) Upload(ctx context.Context, name string, localPath string, contentType string) (string, error) {
	data, err := os.ReadFile(localPath)
	if err != nil {
		return "", err
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	id := "file-" + name
	h.objects[id] = data
	return id, nil
}

func (h *memoryFileHost) Share(ctx context.Context, objectID string) error { return nil }

func (h *memoryFileHost) PublicURL(objectID string) string {
	return "https://drive.google.com/uc?export=download&id=" + objectID
}

func (h *memoryFileHost) Delete(ctx context.Context, objectID string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.objects, objectID)
	return nil
}

type testServer struct {
	t      *testing.T
	router *gin.Engine
	files  *memoryFileHost
}

func testConfig(t *testing.T) *config.Config {
	return &config.Config{
		Server:    config.ServerConfig{Port: "5000", Mode: gin.TestMode},
		JWT:       config.JWTConfig{Secret: "router-test-secret", ExpireTime: time.Hour},
		Storage:   config.StorageConfig{Type: "drive", TempDir: t.TempDir()},
		Upload:    config.UploadConfig{MaxSizeMB: 1},
		CORS:      config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
		RateLimit: config.RateLimitConfig{MaxRequests: 1000, WindowMinutes: 1},
	}
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	files := &memoryFileHost{objects: map[string][]byte{}}
	s := newTestServerWith(t, testConfig(t), files)
	s.files = files
	return s
}

func newTestServerWith(t *testing.T, cfg *config.Config, files service.FileHost) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return &testServer{
		t:      t,
		router: NewRouter(ctx, cfg, testutil.OpenTestDB(t), files),
	}
}

func (s *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) json(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	s.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			s.t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return s.do(req)
}

func (s *testServer) upload(department, user, filename, content string) *httptest.ResponseRecorder {
	s.t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if filename != "" {
		fw, err := mw.CreateFormFile("file", filename)
		if err != nil {
			s.t.Fatalf("create form file: %v", err)
		}
		fw.Write([]byte(content))
	}
	mw.WriteField("selectedDipartment", department)
	mw.WriteField("user", user)
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return s.do(req)
}

func (s *testServer) login(email, password string) map[string]interface{} {
	s.t.Helper()
	w := s.json(http.MethodPost, "/login", "", gin.H{"email": email, "password": password})
	if w.Code != http.StatusOK {
		s.t.Fatalf("login %s: status=%d body=%s", email, w.Code, w.Body.String())
	}
	var profile map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &profile); err != nil {
		s.t.Fatalf("decode login: %v", err)
	}
	return profile
}

func expect(t *testing.T, w *httptest.ResponseRecorder, code int, body string) {
	t.Helper()
	if w.Code != code {
		t.Fatalf("status=%d, want %d (body=%s)", w.Code, code, w.Body.String())
	}
	if body != "" && w.Body.String() != body {
		t.Fatalf("body=%q, want %q", w.Body.String(), body)
	}
}

func errorKind(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		Kind    string `json:"kind"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error response %q: %v", w.Body.String(), err)
	}
	return resp.Kind
}

func TestRegisterLoginUploadAndList(t *testing.T) {
	s := newTestServer(t)

	expect(t, s.json(http.MethodPost, "/register", "", gin.H{"name": "alice", "email": "a@x.com", "password": "pw123"}),
		http.StatusOK, "User created successfully")

	profile := s.login("a@x.com", "pw123")
	if profile["username"] != "alice" || profile["role"] != "user" || profile["email"] != "a@x.com" {
		t.Fatalf("profile=%v", profile)
	}
	if profile["behavior_score"] != float64(0) {
		t.Fatalf("behavior_score=%v", profile["behavior_score"])
	}
	if tok, _ := profile["token"].(string); tok == "" {
		t.Fatalf("login should return a token")
	}
	aliceID := profile["user_id"].(float64)

	expect(t, s.json(http.MethodPost, "/dipartment", "", gin.H{"dipartment_name": "CS"}),
		http.StatusOK, "Department added successfully")

	expect(t, s.upload("CS", "alice", "notes.pdf", "%PDF-1.4 lecture"), http.StatusOK, "File uploaded and saved.")

	w := s.json(http.MethodGet, "/materials", "", nil)
	expect(t, w, http.StatusOK, "")
	var materials []model.Material
	if err := json.Unmarshal(w.Body.Bytes(), &materials); err != nil {
		t.Fatalf("decode materials: %v", err)
	}
	if len(materials) != 1 {
		t.Fatalf("materials=%d, want 1", len(materials))
	}
	m := materials[0]
	if m.Title != "notes.pdf" || float64(m.UploadedBy) != aliceID {
		t.Fatalf("material=%+v", m)
	}
	if m.FilePath != "https://drive.google.com/uc?export=download&id=file-notes.pdf" {
		t.Fatalf("file_path=%q", m.FilePath)
	}
	if string(s.files.objects["file-notes.pdf"]) != "%PDF-1.4 lecture" {
		t.Fatalf("hosted content mismatch")
	}
}

func TestRegisterValidation(t *testing.T) {
	s := newTestServer(t)

	w := s.json(http.MethodPost, "/register", "", gin.H{"name": "bob", "email": "b@x.com"})
	expect(t, w, http.StatusBadRequest, "")
	if errorKind(t, w) != "validation" {
		t.Fatalf("kind=%s", errorKind(t, w))
	}

	expect(t, s.json(http.MethodPost, "/register", "", gin.H{"name": "bob", "email": "b@x.com", "password": "pw", "role": "root"}),
		http.StatusBadRequest, "")

	// 重复邮箱由唯一约束拒绝，错误细节不外泄
	expect(t, s.json(http.MethodPost, "/register", "", gin.H{"name": "bob", "email": "b@x.com", "password": "pw"}), http.StatusOK, "")
	w = s.json(http.MethodPost, "/register", "", gin.H{"name": "bob2", "email": "b@x.com", "password": "pw"})
	expect(t, w, http.StatusInternalServerError, "")
	if strings.Contains(strings.ToLower(w.Body.String()), "unique") {
		t.Fatalf("store detail leaked: %s", w.Body.String())
	}
}

func TestLoginFailures(t *testing.T) {
	s := newTestServer(t)
	s.json(http.MethodPost, "/register", "", gin.H{"name": "alice", "email": "a@x.com", "password": "pw123"})

	expect(t, s.json(http.MethodPost, "/login", "", gin.H{"email": "nobody@x.com", "password": "pw123"}), http.StatusNotFound, "")
	expect(t, s.json(http.MethodPost, "/login", "", gin.H{"email": "a@x.com", "password": "wrong"}), http.StatusUnauthorized, "")
	expect(t, s.json(http.MethodPost, "/login", "", gin.H{"email": "a@x.com"}), http.StatusBadRequest, "")
}

func TestUploadFailures(t *testing.T) {
	s := newTestServer(t)
	s.json(http.MethodPost, "/register", "", gin.H{"name": "alice", "email": "a@x.com", "password": "pw123"})
	s.json(http.MethodPost, "/dipartment", "", gin.H{"dipartment_name": "CS"})

	w := s.upload("CS", "alice", "", "")
	expect(t, w, http.StatusBadRequest, "")
	if !strings.Contains(w.Body.String(), "No file uploaded.") {
		t.Fatalf("body=%s", w.Body.String())
	}

	w = s.upload("Math", "alice", "notes.pdf", "x")
	expect(t, w, http.StatusNotFound, "")
	if !strings.Contains(w.Body.String(), "Department not found.") {
		t.Fatalf("body=%s", w.Body.String())
	}

	expect(t, s.upload("CS", "mallory", "notes.pdf", "x"), http.StatusNotFound, "")

	w = s.upload("CS", "alice", "big.bin", strings.Repeat("a", 2<<20))
	expect(t, w, http.StatusBadRequest, "")
	if !strings.Contains(w.Body.String(), "exceeds the 1 MB limit") {
		t.Fatalf("body=%s", w.Body.String())
	}

	if len(s.files.objects) != 0 {
		t.Fatalf("rejected uploads should not reach the file host, got %d objects", len(s.files.objects))
	}
	w = s.json(http.MethodGet, "/materials", "", nil)
	expect(t, w, http.StatusOK, "")
	var materials []model.Material
	if err := json.Unmarshal(w.Body.Bytes(), &materials); err != nil || len(materials) != 0 {
		t.Fatalf("materials=%s", w.Body.String())
	}
}

func TestAddAdminRequiresAdmin(t *testing.T) {
	s := newTestServer(t)
	s.json(http.MethodPost, "/register", "", gin.H{"name": "alice", "email": "a@x.com", "password": "pw123"})
	userToken := s.login("a@x.com", "pw123")["token"].(string)

	body := gin.H{"email": "a@x.com", "position": "admin"}
	expect(t, s.json(http.MethodPatch, "/addadmin", "", body), http.StatusUnauthorized, "")
	expect(t, s.json(http.MethodPatch, "/addadmin", userToken, body), http.StatusForbidden, "")

	// 还没有管理员时允许注册第一个管理员
	expect(t, s.json(http.MethodPost, "/register", "", gin.H{"name": "root", "email": "root@x.com", "password": "pw", "role": "admin"}),
		http.StatusOK, "")
	expect(t, s.json(http.MethodPost, "/register", "", gin.H{"name": "eve", "email": "eve@x.com", "password": "pw", "role": "admin"}),
		http.StatusForbidden, "")

	adminToken := s.login("root@x.com", "pw")["token"].(string)
	expect(t, s.json(http.MethodPatch, "/addadmin", adminToken, body), http.StatusOK, "User role updated successfully")
	expect(t, s.json(http.MethodPatch, "/addadmin", adminToken, body), http.StatusOK, "User role updated successfully")
	if role := s.login("a@x.com", "pw123")["role"]; role != "admin" {
		t.Fatalf("role=%v, want admin", role)
	}

	expect(t, s.json(http.MethodPatch, "/addadmin", adminToken, gin.H{"email": "ghost@x.com", "position": "admin"}), http.StatusNotFound, "")
	expect(t, s.json(http.MethodPatch, "/addadmin", adminToken, gin.H{"email": "a@x.com", "position": "owner"}), http.StatusBadRequest, "")

	expect(t, s.json(http.MethodPost, "/register", adminToken, gin.H{"name": "eve", "email": "eve@x.com", "password": "pw", "role": "admin"}),
		http.StatusOK, "")
}

func TestDemotedAdminLosesAccessWithOldToken(t *testing.T) {
	s := newTestServer(t)
	s.json(http.MethodPost, "/register", "", gin.H{"name": "root", "email": "root@x.com", "password": "pw", "role": "admin"})
	s.json(http.MethodPost, "/register", "", gin.H{"name": "boss", "email": "boss@x.com", "password": "pw"})

	rootToken := s.login("root@x.com", "pw")["token"].(string)
	expect(t, s.json(http.MethodPatch, "/addadmin", rootToken, gin.H{"email": "boss@x.com", "position": "admin"}), http.StatusOK, "")

	bossToken := s.login("boss@x.com", "pw")["token"].(string)
	expect(t, s.json(http.MethodPatch, "/addadmin", bossToken, gin.H{"email": "root@x.com", "position": "user"}), http.StatusOK, "")

	// root 的令牌签发时还是 admin
	expect(t, s.json(http.MethodPatch, "/addadmin", rootToken, gin.H{"email": "root@x.com", "position": "admin"}), http.StatusForbidden, "")
	expect(t, s.json(http.MethodPost, "/register", rootToken, gin.H{"name": "eve", "email": "eve@x.com", "password": "pw", "role": "admin"}),
		http.StatusForbidden, "")
	if role := s.login("root@x.com", "pw")["role"]; role != "user" {
		t.Fatalf("role=%v, want user", role)
	}
}

func TestRegisterRejectsOverlongPassword(t *testing.T) {
	s := newTestServer(t)

	w := s.json(http.MethodPost, "/register", "", gin.H{"name": "long", "email": "long@x.com", "password": strings.Repeat("x", 80)})
	expect(t, w, http.StatusBadRequest, "")
	if errorKind(t, w) != "validation" {
		t.Fatalf("kind=%s, want validation", errorKind(t, w))
	}
}

func TestFallbackLocalStorageServesUploads(t *testing.T) {
	cfg := testConfig(t)
	cfg.Storage.LocalPath = t.TempDir()

	// drive 缺少凭据，退回本地存储
	storage := service.NewStorageService(context.Background(), cfg)
	if _, ok := storage.LocalRoot(); !ok {
		t.Fatalf("provider=%T, want local fallback", storage.Provider)
	}
	s := newTestServerWith(t, cfg, storage)

	s.json(http.MethodPost, "/register", "", gin.H{"name": "alice", "email": "a@x.com", "password": "pw123"})
	s.json(http.MethodPost, "/dipartment", "", gin.H{"dipartment_name": "CS"})
	expect(t, s.upload("CS", "alice", "notes.txt", "week one"), http.StatusOK, "File uploaded and saved.")

	var materials []model.Material
	if err := json.Unmarshal(s.json(http.MethodGet, "/materials", "", nil).Body.Bytes(), &materials); err != nil || len(materials) != 1 {
		t.Fatalf("materials=%v err=%v", materials, err)
	}
	if !strings.HasPrefix(materials[0].FilePath, "/uploads/") {
		t.Fatalf("file_path=%q", materials[0].FilePath)
	}

	w := s.do(httptest.NewRequest(http.MethodGet, materials[0].FilePath, nil))
	expect(t, w, http.StatusOK, "week one")
}

func TestFeedbackEndpoints(t *testing.T) {
	s := newTestServer(t)

	w := s.json(http.MethodPost, "/ratings", "", gin.H{"material_id": 1, "user_id": 1, "rating_value": 6})
	expect(t, w, http.StatusBadRequest, "")
	if !strings.Contains(w.Body.String(), "Rating must be between 1 and 5") {
		t.Fatalf("body=%s", w.Body.String())
	}
	expect(t, s.json(http.MethodPost, "/ratings", "", gin.H{"material_id": 1, "user_id": 1, "rating_value": 0}), http.StatusBadRequest, "")
	w = s.json(http.MethodPost, "/ratings", "", gin.H{"material_id": 1, "user_id": 1, "rating_value": 4.5})
	expect(t, w, http.StatusBadRequest, "")
	if !strings.Contains(w.Body.String(), "whole number") {
		t.Fatalf("body=%s", w.Body.String())
	}
	expect(t, s.json(http.MethodPost, "/ratings", "", gin.H{"material_id": 1, "user_id": 1, "rating_value": 4}), http.StatusOK, "Rating added successfully")
	expect(t, s.json(http.MethodPost, "/ratings", "", gin.H{"material_id": 1, "user_id": 2, "rating_value": 5}), http.StatusOK, "")

	w = s.json(http.MethodGet, "/materials/1/ratings", "", nil)
	expect(t, w, http.StatusOK, "")
	var summary model.RatingSummary
	if err := json.Unmarshal(w.Body.Bytes(), &summary); err != nil {
		t.Fatalf("decode summary: %v", err)
	}
	if summary.Count != 2 || summary.Average != 4.5 {
		t.Fatalf("summary=%+v", summary)
	}

	expect(t, s.json(http.MethodPost, "/comments", "", gin.H{"material_id": 1, "user_id": 1, "comment_text": "useful"}), http.StatusOK, "Comment added successfully")
	expect(t, s.json(http.MethodPost, "/favorites", "", gin.H{"user_id": 1, "material_id": 1}), http.StatusOK, "Material added to favorites")
	expect(t, s.json(http.MethodPost, "/logs", "", gin.H{"user_id": 1, "action": "viewed material 1"}), http.StatusOK, "User activity logged")

	w = s.json(http.MethodGet, "/materials/1/comments", "", nil)
	expect(t, w, http.StatusOK, "")
	if !strings.Contains(w.Body.String(), `"comment_text":"useful"`) {
		t.Fatalf("comments=%s", w.Body.String())
	}

	w = s.json(http.MethodGet, "/users/1/logs", "", nil)
	expect(t, w, http.StatusOK, "")
	if !strings.Contains(w.Body.String(), "viewed material 1") {
		t.Fatalf("logs=%s", w.Body.String())
	}

	expect(t, s.json(http.MethodGet, "/users/abc/favorites", "", nil), http.StatusBadRequest, "")

	req := httptest.NewRequest(http.MethodPost, "/comments", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	expect(t, s.do(req), http.StatusBadRequest, "")
}

func TestCatalogAndUserListing(t *testing.T) {
	s := newTestServer(t)

	expect(t, s.json(http.MethodPost, "/courses", "", gin.H{"course_name": "Algorithms", "course_category": "CS", "description": "graphs"}),
		http.StatusOK, "Course created successfully")
	expect(t, s.json(http.MethodPost, "/courses", "", gin.H{"course_name": "  ", "course_category": "CS"}), http.StatusBadRequest, "")
	expect(t, s.json(http.MethodPost, "/dipartment", "", gin.H{"dipartment_name": ""}), http.StatusBadRequest, "")
	expect(t, s.json(http.MethodPost, "/dipartment", "", gin.H{"dipartment_name": "CS"}), http.StatusOK, "")
	expect(t, s.json(http.MethodPost, "/dipartment", "", gin.H{"dipartment_name": "CS"}), http.StatusInternalServerError, "")

	w := s.json(http.MethodGet, "/dipartments", "", nil)
	expect(t, w, http.StatusOK, "")
	var departments []model.Department
	json.Unmarshal(w.Body.Bytes(), &departments)
	if len(departments) != 1 || departments[0].Name != "CS" {
		t.Fatalf("departments=%+v", departments)
	}

	w = s.json(http.MethodGet, "/courses", "", nil)
	expect(t, w, http.StatusOK, "")
	if !strings.Contains(w.Body.String(), `"course_name":"Algorithms"`) {
		t.Fatalf("courses=%s", w.Body.String())
	}

	s.json(http.MethodPost, "/register", "", gin.H{"name": "alice", "email": "a@x.com", "password": "pw123"})
	w = s.json(http.MethodGet, "/users", "", nil)
	expect(t, w, http.StatusOK, "")
	if strings.Contains(w.Body.String(), "password") || strings.Contains(w.Body.String(), "$2a$") {
		t.Fatalf("user listing leaked password: %s", w.Body.String())
	}
}

func TestHealthAndCORS(t *testing.T) {
	s := newTestServer(t)

	expect(t, s.json(http.MethodGet, "/health", "", nil), http.StatusOK, "")

	req := httptest.NewRequest(http.MethodGet, "/dipartments", nil)
	req.Header.Set("Origin", "https://evil.example")
	expect(t, s.do(req), http.StatusForbidden, "")

	req = httptest.NewRequest(http.MethodGet, "/dipartments", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := s.do(req)
	expect(t, w, http.StatusOK, "")
	if w.Header().Get("Access-Control-Allow-Origin") != "http://localhost:3000" {
		t.Fatalf("missing CORS header")
	}
	if w.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Fatalf("missing secure headers")
	}
}
