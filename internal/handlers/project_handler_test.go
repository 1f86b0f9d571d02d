package handlers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/yrfilms/studio-backend/internal/models"
)

func seedProject(t *testing.T, env *testEnv, p models.Project) models.Project {
	t.Helper()
	require.NoError(t, env.db.Create(&p).Error)
	return p
}

func portfolioProject(title string, visible, featured bool) models.Project {
	return models.Project{
		Title:         title,
		Description:   "A shoot",
		Category:      models.CategoryWeddings,
		CoverImage:    "https://assets.test/p/cover.jpg",
		CoverImageKey: "p/cover",
		Images: datatypes.NewJSONSlice([]models.ProjectImage{
			{ID: "img-1", Src: "https://assets.test/p/cover.jpg", Alt: title + " - Image 1", Key: "p/cover", Order: 0},
			{ID: "img-2", Src: "https://assets.test/p/second.jpg", Alt: title + " - Image 2", Key: "p/second", Order: 1},
		}),
		Featured: featured,
		Visible:  visible,
		Date:     "2024-06-15",
	}
}

func TestListProjectsPublicHidesInvisible(t *testing.T) {
	env := newTestEnv(t)
	seedProject(t, env, portfolioProject("Visible Wedding", true, true))
	seedProject(t, env, portfolioProject("Hidden Draft", false, false))

	w := env.doJSON(t, "GET", "/api/projects", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, float64(1), body["count"])
	projects := body["projects"].([]any)
	assert.Equal(t, "Visible Wedding", projects[0].(map[string]any)["title"])
}

func TestListProjectsFeaturedFilter(t *testing.T) {
	env := newTestEnv(t)
	seedProject(t, env, portfolioProject("Featured Wedding", true, true))
	seedProject(t, env, portfolioProject("Plain Wedding", true, false))

	featured := env.doJSON(t, "GET", "/api/projects?featured=true", nil, "")
	assert.Equal(t, float64(1), decode(t, featured)["count"])

	// Anything but the literal "true" is ignored.
	other := env.doJSON(t, "GET", "/api/projects?featured=yes", nil, "")
	assert.Equal(t, float64(2), decode(t, other)["count"])
}

func TestListAllProjects(t *testing.T) {
	env := newTestEnv(t)
	seedProject(t, env, portfolioProject("Visible Wedding", true, false))
	seedProject(t, env, portfolioProject("Hidden Draft", false, false))
	token := env.adminToken(t)

	anon := env.doJSON(t, "GET", "/api/projects/all", nil, "")
	assert.Equal(t, http.StatusUnauthorized, anon.Code)

	all := env.doJSON(t, "GET", "/api/projects/all", nil, token)
	assert.Equal(t, float64(2), decode(t, all)["count"])

	hidden := env.doJSON(t, "GET", "/api/projects/all?visible=false", nil, token)
	body := decode(t, hidden)
	assert.Equal(t, float64(1), body["count"])
	assert.Equal(t, "Hidden Draft", body["projects"].([]any)[0].(map[string]any)["title"])
}

func TestCreateProject(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	fields := map[string]string{
		"title":        "Elegant Wedding",
		"description":  "Outdoor ceremony",
		"category":     "weddings",
		"technologies": `["Canon EOS R5","Sony A7III"]`,
		"featured":     "true",
	}
	files := []formFile{
		jpegFile("images", "one.jpg", 128),
		jpegFile("images", "two.jpg", 128),
	}

	w := env.doForm(t, "POST", "/api/projects", fields, files, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	project := decode(t, w)["project"].(map[string]any)
	images := project["images"].([]any)
	require.Len(t, images, 2)

	first := images[0].(map[string]any)
	assert.Equal(t, project["coverImage"], first["src"], "first upload becomes the cover")
	assert.Equal(t, "Elegant Wedding - Image 1", first["alt"])
	assert.Equal(t, "Elegant Wedding - Image 2", images[1].(map[string]any)["alt"])
	assert.Equal(t, true, project["featured"])
	assert.Equal(t, true, project["visible"], "visible defaults to true")
	assert.NotEmpty(t, project["date"], "date defaults to today")

	assert.Len(t, env.uploader.stored, 2)
}

func TestCreateProjectRequiresImages(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	w := env.doForm(t, "POST", "/api/projects", map[string]string{
		"title":    "No Images",
		"category": "weddings",
	}, nil, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "At least one image is required", decode(t, w)["error"])
}

func TestCreateProjectRejectsBadCategory(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	w := env.doForm(t, "POST", "/api/projects", map[string]string{
		"title":    "Bad Category",
		"category": "landscapes",
	}, []formFile{jpegFile("images", "one.jpg", 128)}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Category must be one of: weddings, portraits, events, corporate", decode(t, w)["error"])
}

// One bad file fails the request before any upload happens.
func TestCreateProjectRejectsBadFileTypeUpfront(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	files := []formFile{
		jpegFile("images", "one.jpg", 128),
		{field: "images", name: "notes.pdf", contentType: "application/pdf", content: []byte("%PDF")},
	}

	w := env.doForm(t, "POST", "/api/projects", map[string]string{
		"title":    "Mixed Batch",
		"category": "weddings",
	}, files, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid file type. Only JPEG, PNG, WebP, and GIF are allowed.", decode(t, w)["error"])
	assert.Empty(t, env.uploader.stored, "no file may reach the asset host")
}

func TestCreateProjectTooManyImages(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	files := make([]formFile, 0, 11)
	for i := 0; i < 11; i++ {
		files = append(files, jpegFile("images", fmt.Sprintf("img-%d.jpg", i), 64))
	}

	w := env.doForm(t, "POST", "/api/projects", map[string]string{
		"title":    "Too Many",
		"category": "weddings",
	}, files, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateProjectPartial(t *testing.T) {
	env := newTestEnv(t)
	seedProject(t, env, portfolioProject("Old Title", true, false))
	token := env.adminToken(t)

	w := env.doForm(t, "PUT", "/api/projects/1", map[string]string{
		"title":    "New Title",
		"featured": "true",
	}, nil, token)
	assert.Equal(t, http.StatusOK, w.Code)

	project := decode(t, w)["project"].(map[string]any)
	assert.Equal(t, "New Title", project["title"])
	assert.Equal(t, true, project["featured"])
	assert.Equal(t, "A shoot", project["description"], "omitted fields stay put")
	assert.Len(t, project["images"].([]any), 2, "images survive metadata updates")
	assert.Empty(t, env.uploader.removed)
}

// Uploading replacement images swaps the entire set and discards the old
// assets.
func TestUpdateProjectReplacesImages(t *testing.T) {
	env := newTestEnv(t)
	seedProject(t, env, portfolioProject("Wedding", true, false))
	token := env.adminToken(t)

	w := env.doForm(t, "PUT", "/api/projects/1", nil,
		[]formFile{jpegFile("images", "fresh.jpg", 128)}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	project := decode(t, w)["project"].(map[string]any)
	images := project["images"].([]any)
	require.Len(t, images, 1)
	assert.Equal(t, project["coverImage"], images[0].(map[string]any)["src"])

	// Old cover plus both old images.
	assert.ElementsMatch(t, []string{"p/cover", "p/cover", "p/second"}, env.uploader.removed)
	assert.Len(t, env.uploader.stored, 1)
}

func TestDeleteProjectRemovesAssets(t *testing.T) {
	env := newTestEnv(t)
	seedProject(t, env, portfolioProject("Wedding", true, false))
	token := env.adminToken(t)

	w := env.doJSON(t, "DELETE", "/api/projects/1", nil, token)
	assert.Equal(t, http.StatusOK, w.Code)

	// One attempt for the cover key plus one per embedded image.
	assert.Len(t, env.uploader.removed, 3)

	var count int64
	env.db.Model(&models.Project{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestAddProjectImage(t *testing.T) {
	env := newTestEnv(t)
	seedProject(t, env, portfolioProject("Wedding", true, false))
	token := env.adminToken(t)

	w := env.doForm(t, "POST", "/api/projects/1/images", nil,
		[]formFile{jpegFile("image", "extra.jpg", 128)}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decode(t, w)
	image := body["image"].(map[string]any)
	assert.Equal(t, "Wedding - Image 3", image["alt"])
	assert.Equal(t, float64(2), image["order"])

	project := body["project"].(map[string]any)
	assert.Len(t, project["images"].([]any), 3)
	assert.Equal(t, "https://assets.test/p/cover.jpg", project["coverImage"], "cover is untouched")
}

func TestRemoveProjectImagePromotesCover(t *testing.T) {
	env := newTestEnv(t)
	seedProject(t, env, portfolioProject("Wedding", true, false))
	token := env.adminToken(t)

	w := env.doJSON(t, "DELETE", "/api/projects/1/images/img-1", nil, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	project := decode(t, w)["project"].(map[string]any)
	images := project["images"].([]any)
	require.Len(t, images, 1)
	assert.Equal(t, "https://assets.test/p/second.jpg", project["coverImage"], "next image becomes the cover")
	assert.Equal(t, "p/second", project["coverImageKey"])
	assert.Equal(t, []string{"p/cover"}, env.uploader.removed)
}

func TestRemoveLastProjectImageRefused(t *testing.T) {
	env := newTestEnv(t)
	p := models.Project{
		Title:         "Single Shot",
		Category:      models.CategoryPortraits,
		CoverImage:    "https://assets.test/p/only.jpg",
		CoverImageKey: "p/only",
		Images: datatypes.NewJSONSlice([]models.ProjectImage{
			{ID: "img-only", Src: "https://assets.test/p/only.jpg", Key: "p/only", Order: 0},
		}),
		Visible: true,
	}
	seedProject(t, env, p)
	token := env.adminToken(t)

	w := env.doJSON(t, "DELETE", "/api/projects/1/images/img-only", nil, token)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Cannot remove the only image of a project", decode(t, w)["error"])
	assert.Empty(t, env.uploader.removed)

	var stored models.Project
	require.NoError(t, env.db.First(&stored, 1).Error)
	assert.Len(t, stored.Images, 1)
}

func TestRemoveProjectImageNotFound(t *testing.T) {
	env := newTestEnv(t)
	seedProject(t, env, portfolioProject("Wedding", true, false))
	token := env.adminToken(t)

	w := env.doJSON(t, "DELETE", "/api/projects/1/images/no-such-id", nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Image not found", decode(t, w)["error"])
}

func TestProjectsOrderedNewestFirst(t *testing.T) {
	env := newTestEnv(t)

	older := portfolioProject("Older", true, false)
	older.CreatedAt = time.Now().Add(-2 * time.Hour)
	seedProject(t, env, older)

	newer := portfolioProject("Newer", true, false)
	newer.CreatedAt = time.Now().Add(-time.Hour)
	seedProject(t, env, newer)

	w := env.doJSON(t, "GET", "/api/projects", nil, "")
	projects := decode(t, w)["projects"].([]any)
	require.Len(t, projects, 2)
	assert.Equal(t, "Newer", projects[0].(map[string]any)["title"])
	assert.Equal(t, "Older", projects[1].(map[string]any)["title"])
}
