package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	photographerRepo "lenslink/database/repository/photographer"
	"lenslink/models"
	"lenslink/services/photographer"
	"lenslink/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PhotographerHandler exposes profile, availability, and portfolio endpoints.
type PhotographerHandler struct {
	Service photographer.PhotographerService
}

func NewPhotographerHandler(svc photographer.PhotographerService) *PhotographerHandler {
	return &PhotographerHandler{Service: svc}
}

// GetPhotographerHandler handles GET /photographers/:id.
func (h *PhotographerHandler) GetPhotographerHandler(c *gin.Context) {
	p, err := h.Service.GetByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

// SearchPhotographersHandler handles GET /photographers.
func (h *PhotographerHandler) SearchPhotographersHandler(c *gin.Context) {
	filter := photographerRepo.SearchFilter{
		Specialty: c.Query("specialty"),
		City:      c.Query("city"),
	}
	if v := c.Query("verified"); v != "" {
		verified := v == "true"
		filter.Verified = &verified
	}
	if page, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil {
		filter.Page = page
	}
	if limit, err := strconv.Atoi(c.DefaultQuery("limit", "20")); err == nil {
		filter.Limit = limit
	}

	results, err := h.Service.Search(filter)
	if err != nil {
		utils.GetLogger().Error("Photographer search failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"photographers": results})
}

// GetMyProfileHandler handles GET /photographers/me.
func (h *PhotographerHandler) GetMyProfileHandler(c *gin.Context) {
	p, err := h.Service.GetByUserID(c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

// UpdateProfileHandler handles PUT /photographers/me.
func (h *PhotographerHandler) UpdateProfileHandler(c *gin.Context) {
	var req photographer.ProfileUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	p, err := h.Service.UpdateProfile(c.GetString("userID"), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

// SetAvailabilityHandler handles PUT /photographers/me/availability.
func (h *PhotographerHandler) SetAvailabilityHandler(c *gin.Context) {
	var req models.WeeklyAvailability
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	p, err := h.Service.SetAvailability(c.GetString("userID"), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

// AddPortfolioItemHandler handles POST /photographers/me/portfolio.
// Expects a multipart form with a "file" part and optional metadata fields.
func (h *PhotographerHandler) AddPortfolioItemHandler(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file not provided", "details": err.Error()})
		return
	}

	tempFilePath := filepath.Join(os.TempDir(), fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file", "details": err.Error()})
		return
	}
	defer os.Remove(tempFilePath)

	p, err := h.Service.AddPortfolioItem(c.Request.Context(), c.GetString("userID"),
		tempFilePath, c.PostForm("title"), c.PostForm("description"), c.PostForm("category"))
	if err != nil {
		utils.GetLogger().Error("Portfolio upload failed",
			zap.String("userID", c.GetString("userID")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, p)
}

// RemovePortfolioItemHandler handles DELETE /photographers/me/portfolio/:itemID.
func (h *PhotographerHandler) RemovePortfolioItemHandler(c *gin.Context) {
	p, err := h.Service.RemovePortfolioItem(c.Request.Context(), c.GetString("userID"), c.Param("itemID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}
