package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"mime/multipart"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yrfilms/studio-backend/internal/cache"
	"github.com/yrfilms/studio-backend/internal/httperr"
	"github.com/yrfilms/studio-backend/internal/httpresp"
	"github.com/yrfilms/studio-backend/internal/models"
	"github.com/yrfilms/studio-backend/internal/storage"
)

const (
	projectCachePrefix = "projects:"
	projectAssetFolder = "yrfilms/projects"
	maxProjectImages   = 10
)

type ProjectHandler struct {
	db       *gorm.DB
	uploader storage.Uploader
	cache    *cache.Cache
}

func NewProjectHandler(db *gorm.DB, uploader storage.Uploader, cache *cache.Cache) *ProjectHandler {
	return &ProjectHandler{db: db, uploader: uploader, cache: cache}
}

// --------- Handlers ---------

// ListVisible serves the public portfolio: visible projects only.
func (h *ProjectHandler) ListVisible(c *gin.Context) {
	category := strings.TrimSpace(c.Query("category"))
	featured := strings.TrimSpace(c.Query("featured"))

	cacheKey := fmt.Sprintf("%svisible:category=%s:featured=%s", projectCachePrefix, category, featured)
	if body, ok := h.cache.Get(c.Request.Context(), cacheKey); ok {
		writeCached(c, body)
		return
	}

	q := h.db.Model(&models.Project{}).Where("visible = ?", true)
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if featured == "true" {
		q = q.Where("featured = ?", true)
	}

	var projects []models.Project
	if err := q.Order("created_at DESC").Find(&projects).Error; err != nil {
		httperr.Internal(c, "Error fetching projects")
		return
	}

	body, err := marshalList("projects", projects)
	if err != nil {
		httperr.Internal(c, "Error fetching projects")
		return
	}
	h.cache.Set(c.Request.Context(), cacheKey, body)
	writeCached(c, body)
}

// ListAll serves the admin dashboard: every project, with an optional
// visibility filter on top of the public ones.
func (h *ProjectHandler) ListAll(c *gin.Context) {
	q := h.db.Model(&models.Project{})

	if category := strings.TrimSpace(c.Query("category")); category != "" {
		q = q.Where("category = ?", category)
	}
	if c.Query("featured") == "true" {
		q = q.Where("featured = ?", true)
	}
	switch c.Query("visible") {
	case "true":
		q = q.Where("visible = ?", true)
	case "false":
		q = q.Where("visible = ?", false)
	}

	var projects []models.Project
	if err := q.Order("created_at DESC").Find(&projects).Error; err != nil {
		httperr.Internal(c, "Error fetching projects")
		return
	}

	httpresp.List(c, "projects", projects)
}

func (h *ProjectHandler) Get(c *gin.Context) {
	project, ok := h.findProject(c)
	if !ok {
		return
	}
	httpresp.OK(c, gin.H{"project": project})
}

func (h *ProjectHandler) Create(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		httperr.BadRequest(c, "Expected multipart form data")
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		httperr.BadRequest(c, "At least one image is required")
		return
	}
	if len(files) > maxProjectImages {
		httperr.BadRequest(c, fmt.Sprintf("A maximum of %d images is allowed", maxProjectImages))
		return
	}

	title := strings.TrimSpace(c.PostForm("title"))
	if title == "" {
		httperr.BadRequest(c, "Project title is required")
		return
	}

	category := c.PostForm("category")
	if !models.IsValidCategory(category) {
		httperr.BadRequest(c, "Category must be one of: weddings, portraits, events, corporate")
		return
	}

	technologies, err := parseStringList(c.PostForm("technologies"))
	if err != nil {
		httperr.BadRequest(c, "Technologies must be a JSON array of strings")
		return
	}

	// Reject the whole batch before uploading anything so a bad file
	// never leaves earlier files orphaned on the asset host.
	for _, f := range files {
		if err := storage.ValidateFile(f); err != nil {
			writeUploadError(c, err)
			return
		}
	}

	images, err := h.uploadImages(c, files, title)
	if err != nil {
		writeUploadError(c, err)
		return
	}

	date := c.PostForm("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	project := models.Project{
		Title:         title,
		Description:   c.PostForm("description"),
		Category:      category,
		CoverImage:    images[0].Src,
		CoverImageKey: images[0].Key,
		Images:        datatypes.NewJSONSlice(images),
		Technologies:  datatypes.NewJSONSlice(technologies),
		GithubLink:    c.PostForm("githubLink"),
		LiveLink:      c.PostForm("liveLink"),
		Featured:      c.PostForm("featured") == "true",
		Visible:       c.PostForm("visible") != "false",
		Date:          date,
	}

	if err := h.db.Create(&project).Error; err != nil {
		httperr.Internal(c, "Error creating project")
		return
	}

	h.cache.Invalidate(c.Request.Context(), projectCachePrefix)
	httpresp.Created(c, gin.H{"project": project})
}

func (h *ProjectHandler) Update(c *gin.Context) {
	project, ok := h.findProject(c)
	if !ok {
		return
	}

	if title, exists := c.GetPostForm("title"); exists && strings.TrimSpace(title) != "" {
		project.Title = strings.TrimSpace(title)
	}
	if description, exists := c.GetPostForm("description"); exists {
		project.Description = description
	}
	if category, exists := c.GetPostForm("category"); exists {
		if !models.IsValidCategory(category) {
			httperr.BadRequest(c, "Category must be one of: weddings, portraits, events, corporate")
			return
		}
		project.Category = category
	}
	if raw, exists := c.GetPostForm("technologies"); exists {
		technologies, err := parseStringList(raw)
		if err != nil {
			httperr.BadRequest(c, "Technologies must be a JSON array of strings")
			return
		}
		project.Technologies = datatypes.NewJSONSlice(technologies)
	}
	if githubLink, exists := c.GetPostForm("githubLink"); exists {
		project.GithubLink = githubLink
	}
	if liveLink, exists := c.GetPostForm("liveLink"); exists {
		project.LiveLink = liveLink
	}
	if featured, exists := c.GetPostForm("featured"); exists {
		project.Featured = featured == "true"
	}
	if visible, exists := c.GetPostForm("visible"); exists {
		project.Visible = visible != "false"
	}
	if date, exists := c.GetPostForm("date"); exists && date != "" {
		project.Date = date
	}

	// Replacement images swap out the entire set, cover included.
	if form, err := c.MultipartForm(); err == nil && len(form.File["images"]) > 0 {
		files := form.File["images"]
		if len(files) > maxProjectImages {
			httperr.BadRequest(c, fmt.Sprintf("A maximum of %d images is allowed", maxProjectImages))
			return
		}
		for _, f := range files {
			if err := storage.ValidateFile(f); err != nil {
				writeUploadError(c, err)
				return
			}
		}

		h.removeAllAssets(c, project)

		images, err := h.uploadImages(c, files, project.Title)
		if err != nil {
			writeUploadError(c, err)
			return
		}

		project.CoverImage = images[0].Src
		project.CoverImageKey = images[0].Key
		project.Images = datatypes.NewJSONSlice(images)
	}

	if err := h.db.Save(project).Error; err != nil {
		httperr.Internal(c, "Error updating project")
		return
	}

	h.cache.Invalidate(c.Request.Context(), projectCachePrefix)
	httpresp.OK(c, gin.H{"project": project})
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	project, ok := h.findProject(c)
	if !ok {
		return
	}

	h.removeAllAssets(c, project)

	if err := h.db.Delete(project).Error; err != nil {
		httperr.Internal(c, "Error deleting project")
		return
	}

	h.cache.Invalidate(c.Request.Context(), projectCachePrefix)
	httpresp.OK(c, gin.H{"message": "Project deleted successfully"})
}

func (h *ProjectHandler) AddImage(c *gin.Context) {
	project, ok := h.findProject(c)
	if !ok {
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "Image is required")
		return
	}

	result, err := h.uploader.Store(c.Request.Context(), file, projectAssetFolder)
	if err != nil {
		writeUploadError(c, err)
		return
	}

	alt := c.PostForm("alt")
	if alt == "" {
		alt = fmt.Sprintf("%s - Image %d", project.Title, len(project.Images)+1)
	}

	image := models.ProjectImage{
		ID:     uuid.NewString(),
		Src:    result.URL,
		Alt:    alt,
		Key:    result.Key,
		Thumb:  result.Thumb,
		Width:  result.Width,
		Height: result.Height,
		Order:  len(project.Images),
	}

	project.Images = append(project.Images, image)

	if err := h.db.Save(project).Error; err != nil {
		httperr.Internal(c, "Error adding image")
		return
	}

	h.cache.Invalidate(c.Request.Context(), projectCachePrefix)
	httpresp.OK(c, gin.H{
		"image":   image,
		"project": project,
	})
}

func (h *ProjectHandler) RemoveImage(c *gin.Context) {
	project, ok := h.findProject(c)
	if !ok {
		return
	}

	imageID := c.Param("imageId")
	index := -1
	for i, img := range project.Images {
		if img.ID == imageID {
			index = i
			break
		}
	}
	if index == -1 {
		httperr.NotFound(c, "Image not found")
		return
	}

	image := project.Images[index]
	isCover := image.Src == project.CoverImage

	// A project must keep a cover. Removing the only remaining image
	// would leave coverImage pointing at nothing, so refuse outright.
	if isCover && len(project.Images) == 1 {
		httperr.Conflict(c, "Cannot remove the only image of a project")
		return
	}

	if image.Key != "" {
		if err := h.uploader.Remove(c.Request.Context(), image.Key); err != nil {
			log.Printf("asset delete failed for %s: %v", image.Key, err)
		}
	}

	remaining := make([]models.ProjectImage, 0, len(project.Images)-1)
	remaining = append(remaining, project.Images[:index]...)
	remaining = append(remaining, project.Images[index+1:]...)
	project.Images = datatypes.NewJSONSlice(remaining)

	if isCover {
		project.CoverImage = remaining[0].Src
		project.CoverImageKey = remaining[0].Key
	}

	if err := h.db.Save(project).Error; err != nil {
		httperr.Internal(c, "Error removing image")
		return
	}

	h.cache.Invalidate(c.Request.Context(), projectCachePrefix)
	httpresp.OK(c, gin.H{
		"message": "Image removed successfully",
		"project": project,
	})
}

// --------- Helpers ---------

func (h *ProjectHandler) findProject(c *gin.Context) (*models.Project, bool) {
	id, ok := parseIDParam(c, "Project not found")
	if !ok {
		return nil, false
	}

	var project models.Project
	if err := h.db.First(&project, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Project not found")
			return nil, false
		}
		httperr.Internal(c, "Error fetching project")
		return nil, false
	}
	return &project, true
}

func (h *ProjectHandler) uploadImages(
	c *gin.Context,
	files []*multipart.FileHeader,
	title string,
) ([]models.ProjectImage, error) {

	images := make([]models.ProjectImage, 0, len(files))
	for i, f := range files {
		result, err := h.uploader.Store(c.Request.Context(), f, projectAssetFolder)
		if err != nil {
			return nil, err
		}
		images = append(images, models.ProjectImage{
			ID:     uuid.NewString(),
			Src:    result.URL,
			Alt:    fmt.Sprintf("%s - Image %d", title, i+1),
			Key:    result.Key,
			Thumb:  result.Thumb,
			Width:  result.Width,
			Height: result.Height,
			Order:  i,
		})
	}
	return images, nil
}

// removeAllAssets makes one deletion attempt for the cover plus one per
// embedded image. Failures are logged and never block the caller.
func (h *ProjectHandler) removeAllAssets(c *gin.Context, project *models.Project) {
	if project.CoverImageKey != "" {
		if err := h.uploader.Remove(c.Request.Context(), project.CoverImageKey); err != nil {
			log.Printf("asset delete failed for %s: %v", project.CoverImageKey, err)
		}
	}
	for _, img := range project.Images {
		if img.Key == "" {
			continue
		}
		if err := h.uploader.Remove(c.Request.Context(), img.Key); err != nil {
			log.Printf("asset delete failed for %s: %v", img.Key, err)
		}
	}
}

func parseStringList(raw string) ([]string, error) {
	if strings.TrimSpace(raw) == "" {
		return []string{}, nil
	}
	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, err
	}
	return list, nil
}
