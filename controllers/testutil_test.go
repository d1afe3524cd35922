package controllers

import (
	"bytes"
	"encoding/json"
	"html/template"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"habittracker/config"
	"habittracker/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testTemplates = template.Must(template.New("").Parse(`
{{define "index.html"}}<ul>{{range .Habits}}<li>{{.Name}}</li>{{end}}</ul>{{end}}
{{define "profile.html"}}{{if .Errors}}<ul class="errors">{{range .Errors}}<li>{{.}}</li>{{end}}</ul>{{end}}<p>{{.User.DisplayName}}</p>{{end}}
{{define "page.html"}}<h1>{{.Title}}</h1>{{end}}
`))

func setupTestDB(t *testing.T) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Habit{}, &models.HabitLog{}, &models.User{}))

	config.DB = db
	config.UploadDir = t.TempDir()
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	setupTestDB(t)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.SetHTMLTemplate(testTemplates)

	r.GET("/", Dashboard)
	r.POST("/add_habit", AddHabit)
	r.POST("/delete_habit", DeleteHabit)
	r.POST("/logs", CreateLog)
	r.DELETE("/logs/:id", DeleteLog)
	r.GET("/calendar/:year/:month", MonthSummary)
	r.GET("/day/:year/:month/:day", DayDetail)
	r.GET("/profile", ShowProfile)
	r.POST("/profile", UpdateProfile)
	r.DELETE("/profile/picture", DeleteProfilePicture)
	r.GET("/streaks", PlaceholderPage("Streaks"))

	return r
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func doRequest(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createHabitVia(t *testing.T, r *gin.Engine, name string) uint {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/add_habit", map[string]any{"name": name})
	require.Equal(t, http.StatusCreated, w.Code)
	return uint(decodeBody(t, w)["id"].(float64))
}
