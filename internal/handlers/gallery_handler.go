package handlers

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yrfilms/studio-backend/internal/cache"
	"github.com/yrfilms/studio-backend/internal/httperr"
	"github.com/yrfilms/studio-backend/internal/httpresp"
	"github.com/yrfilms/studio-backend/internal/models"
	"github.com/yrfilms/studio-backend/internal/storage"
)

const (
	galleryCachePrefix = "gallery:"
	galleryAssetFolder = "yrfilms/gallery"
)

type GalleryHandler struct {
	db       *gorm.DB
	uploader storage.Uploader
	cache    *cache.Cache
}

func NewGalleryHandler(db *gorm.DB, uploader storage.Uploader, cache *cache.Cache) *GalleryHandler {
	return &GalleryHandler{db: db, uploader: uploader, cache: cache}
}

// --------- Handlers ---------

func (h *GalleryHandler) ListVisible(c *gin.Context) {
	category := strings.TrimSpace(c.Query("category"))
	featured := strings.TrimSpace(c.Query("featured"))

	cacheKey := fmt.Sprintf("%svisible:category=%s:featured=%s", galleryCachePrefix, category, featured)
	if body, ok := h.cache.Get(c.Request.Context(), cacheKey); ok {
		writeCached(c, body)
		return
	}

	q := h.db.Model(&models.GalleryImage{}).Where("visible = ?", true)
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if featured == "true" {
		q = q.Where("featured = ?", true)
	}

	var images []models.GalleryImage
	if err := q.Order("sort_order ASC, created_at DESC").Find(&images).Error; err != nil {
		httperr.Internal(c, "Error fetching gallery")
		return
	}

	body, err := marshalList("galleries", images)
	if err != nil {
		httperr.Internal(c, "Error fetching gallery")
		return
	}
	h.cache.Set(c.Request.Context(), cacheKey, body)
	writeCached(c, body)
}

func (h *GalleryHandler) ListAll(c *gin.Context) {
	q := h.db.Model(&models.GalleryImage{})

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

	var images []models.GalleryImage
	if err := q.Order("sort_order ASC, created_at DESC").Find(&images).Error; err != nil {
		httperr.Internal(c, "Error fetching gallery")
		return
	}

	httpresp.List(c, "galleries", images)
}

func (h *GalleryHandler) Get(c *gin.Context) {
	image, ok := h.findImage(c)
	if !ok {
		return
	}
	httpresp.OK(c, gin.H{"gallery": image})
}

func (h *GalleryHandler) Create(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "Image is required")
		return
	}

	category := c.PostForm("category")
	if !models.IsValidCategory(category) {
		httperr.BadRequest(c, "Category must be one of: weddings, portraits, events, corporate")
		return
	}

	result, err := h.uploader.Store(c.Request.Context(), file, galleryAssetFolder)
	if err != nil {
		writeUploadError(c, err)
		return
	}

	alt := c.PostForm("alt")
	if alt == "" {
		alt = "Gallery image"
	}

	order := 0
	if raw := c.PostForm("order"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			order = parsed
		}
	}

	image := models.GalleryImage{
		Src:       result.URL,
		Alt:       alt,
		Category:  category,
		Featured:  c.PostForm("featured") == "true",
		Visible:   c.PostForm("visible") != "false",
		Order:     order,
		Key:       result.Key,
		Thumb:     result.Thumb,
		Width:     result.Width,
		Height:    result.Height,
		ProjectID: parseProjectRef(c.PostForm("projectId")),
	}

	if err := h.db.Create(&image).Error; err != nil {
		httperr.Internal(c, "Error creating gallery image")
		return
	}

	h.cache.Invalidate(c.Request.Context(), galleryCachePrefix)
	httpresp.Created(c, gin.H{"gallery": image})
}

func (h *GalleryHandler) Update(c *gin.Context) {
	image, ok := h.findImage(c)
	if !ok {
		return
	}

	if alt, exists := c.GetPostForm("alt"); exists {
		image.Alt = alt
	}
	if category, exists := c.GetPostForm("category"); exists {
		if !models.IsValidCategory(category) {
			httperr.BadRequest(c, "Category must be one of: weddings, portraits, events, corporate")
			return
		}
		image.Category = category
	}
	if featured, exists := c.GetPostForm("featured"); exists {
		image.Featured = featured == "true"
	}
	if visible, exists := c.GetPostForm("visible"); exists {
		image.Visible = visible != "false"
	}
	if raw, exists := c.GetPostForm("order"); exists {
		if parsed, err := strconv.Atoi(raw); err == nil {
			image.Order = parsed
		}
	}
	if raw, exists := c.GetPostForm("projectId"); exists {
		image.ProjectID = parseProjectRef(raw)
	}

	// A replacement file swaps the remote asset before the row update.
	if file, err := c.FormFile("image"); err == nil {
		if image.Key != "" {
			if err := h.uploader.Remove(c.Request.Context(), image.Key); err != nil {
				log.Printf("asset delete failed for %s: %v", image.Key, err)
			}
		}

		result, err := h.uploader.Store(c.Request.Context(), file, galleryAssetFolder)
		if err != nil {
			writeUploadError(c, err)
			return
		}
		image.Src = result.URL
		image.Key = result.Key
		image.Thumb = result.Thumb
		image.Width = result.Width
		image.Height = result.Height
	}

	if err := h.db.Save(image).Error; err != nil {
		httperr.Internal(c, "Error updating gallery image")
		return
	}

	h.cache.Invalidate(c.Request.Context(), galleryCachePrefix)
	httpresp.OK(c, gin.H{"gallery": image})
}

func (h *GalleryHandler) Delete(c *gin.Context) {
	image, ok := h.findImage(c)
	if !ok {
		return
	}

	if image.Key != "" {
		if err := h.uploader.Remove(c.Request.Context(), image.Key); err != nil {
			log.Printf("asset delete failed for %s: %v", image.Key, err)
		}
	}

	if err := h.db.Delete(image).Error; err != nil {
		httperr.Internal(c, "Error deleting gallery image")
		return
	}

	h.cache.Invalidate(c.Request.Context(), galleryCachePrefix)
	httpresp.OK(c, gin.H{"message": "Gallery image deleted successfully"})
}

// --------- Helpers ---------

func (h *GalleryHandler) findImage(c *gin.Context) (*models.GalleryImage, bool) {
	id, ok := parseIDParam(c, "Gallery image not found")
	if !ok {
		return nil, false
	}

	var image models.GalleryImage
	if err := h.db.First(&image, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Gallery image not found")
			return nil, false
		}
		httperr.Internal(c, "Error fetching gallery image")
		return nil, false
	}
	return &image, true
}

// parseProjectRef keeps the project link a weak reference: any
// non-numeric value clears it rather than failing the request.
func parseProjectRef(raw string) *uint {
	if raw == "" {
		return nil
	}
	parsed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil
	}
	id := uint(parsed)
	return &id
}
