package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yrfilms/studio-backend/internal/cache"
	"github.com/yrfilms/studio-backend/internal/config"
	dbpkg "github.com/yrfilms/studio-backend/internal/db"
	"github.com/yrfilms/studio-backend/internal/models"
	"github.com/yrfilms/studio-backend/internal/routes"
	"github.com/yrfilms/studio-backend/internal/storage"
)

// stubUploader records every store and remove call instead of talking to
// the real asset host. Files still go through the same validation the
// real uploader applies.
type stubUploader struct {
	stored    []string
	removed   []string
	failStore bool
}

func (s *stubUploader) Store(ctx context.Context, file *multipart.FileHeader, folder string) (*storage.UploadResult, error) {
	if err := storage.ValidateFile(file); err != nil {
		return nil, err
	}
	if s.failStore {
		return nil, fmt.Errorf("store failed")
	}

	key := fmt.Sprintf("%s/%s-%d", folder, file.Filename, len(s.stored))
	s.stored = append(s.stored, key)
	return &storage.UploadResult{
		URL:    "https://assets.test/" + key,
		Key:    key,
		Thumb:  "https://assets.test/" + key + ".thumb.webp",
		Width:  800,
		Height: 600,
	}, nil
}

func (s *stubUploader) Remove(ctx context.Context, key string) error {
	s.removed = append(s.removed, key)
	return nil
}

type testEnv struct {
	router   *gin.Engine
	db       *gorm.DB
	cfg      *config.Config
	uploader *stubUploader
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, dbpkg.Migrate(db))

	cfg := &config.Config{
		JWTSecret:     "test-secret",
		AdminEmail:    "admin@yrfilms.com",
		AdminPassword: "admin123",
	}

	uploader := &stubUploader{}

	r := gin.New()
	routes.RegisterRoutes(r, db, cfg, uploader, cache.New("", "", time.Minute))

	return &testEnv{router: r, db: db, cfg: cfg, uploader: uploader}
}

func (e *testEnv) createUser(t *testing.T, name, email, password, role string) models.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{Name: name, Email: email, PasswordHash: string(hashed), Role: role}
	require.NoError(t, e.db.Create(&user).Error)
	return user
}

func (e *testEnv) tokenFor(t *testing.T, user models.User) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub": user.ID,
		"exp": time.Now().Add(time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(e.cfg.JWTSecret))
	require.NoError(t, err)
	return token
}

func (e *testEnv) adminToken(t *testing.T) string {
	t.Helper()
	admin := e.createUser(t, "Admin", e.cfg.AdminEmail, e.cfg.AdminPassword, models.RoleAdmin)
	return e.tokenFor(t, admin)
}

func (e *testEnv) doJSON(t *testing.T, method, path string, payload any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, path, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

type formFile struct {
	field       string
	name        string
	contentType string
	content     []byte
}

func (e *testEnv) doForm(t *testing.T, method, path string, fields map[string]string, files []formFile, token string) *httptest.ResponseRecorder {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	for _, f := range files {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, f.field, f.name))
		header.Set("Content-Type", f.contentType)
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(f.content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req, err := http.NewRequest(method, path, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func jpegFile(field, name string, size int) formFile {
	return formFile{
		field:       field,
		name:        name,
		contentType: "image/jpeg",
		content:     bytes.Repeat([]byte{0xFF}, size),
	}
}
