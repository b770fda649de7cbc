package handlers

import (
	"errors"
	"net/http"

	"github.com/vdoan98/trivia-web-application/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CategoryHandler struct {
	categoryService *services.CategoryService
	questionService *services.QuestionService
	log             *zap.Logger
}

func NewCategoryHandler(categoryService *services.CategoryService, questionService *services.QuestionService, log *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		questionService: questionService,
		log:             log,
	}
}

type CategoriesResponse struct {
	Success    bool            `json:"success" example:"true"`
	Categories map[uint]string `json:"categories"`
}

type CategoryQuestionsResponse struct {
	Success         bool           `json:"success" example:"true"`
	Questions       []QuestionView `json:"questions"`
	TotalQuestions  int            `json:"total_questions" example:"4"`
	CurrentCategory uint           `json:"current_category" example:"1"`
}

type CreateCategoryRequest struct {
	Type *string `json:"type" example:"Literature"`
}

type CreatedResponse struct {
	Success bool `json:"success" example:"true"`
	Created uint `json:"created" example:"7"`
}

// ListCategories godoc
// @Summary      List categories
// @Description  All categories as a map of id to type
// @Tags         categories
// @Produce      json
// @Success      200 {object} CategoriesResponse
// @Failure      404 {object} ErrorResponse
// @Router       /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.Map()
	if err != nil {
		h.log.Error("list categories", zap.Error(err))
		abortWithError(c, http.StatusInternalServerError)
		return
	}
	if len(categories) == 0 {
		abortWithError(c, http.StatusNotFound)
		return
	}

	c.JSON(http.StatusOK, CategoriesResponse{Success: true, Categories: categories})
}

// CategoryQuestions godoc
// @Summary      Questions of a category
// @Tags         categories
// @Produce      json
// @Param        id   path  int true  "Category ID"
// @Param        page query int false "Page number" default(1)
// @Success      200 {object} CategoryQuestionsResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /categories/{id}/questions [get]
func (h *CategoryHandler) CategoryQuestions(c *gin.Context) {
	categoryID, ok := idParam(c, "id")
	if !ok {
		abortWithError(c, http.StatusBadRequest)
		return
	}

	selection, err := h.questionService.ByCategory(categoryID)
	if err != nil {
		h.log.Error("questions by category", zap.Uint("category", categoryID), zap.Error(err))
		abortWithError(c, http.StatusInternalServerError)
		return
	}
	if len(selection) == 0 {
		abortWithError(c, http.StatusNotFound)
		return
	}

	c.JSON(http.StatusOK, CategoryQuestionsResponse{
		Success:         true,
		Questions:       paginated(selection, pageParam(c)),
		TotalQuestions:  len(selection),
		CurrentCategory: categoryID,
	})
}

// CreateCategory godoc
// @Summary      Add a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        request body CreateCategoryRequest true "Category data"
// @Success      200 {object} CreatedResponse
// @Failure      405 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /categories/add [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Type == nil {
		abortWithError(c, http.StatusUnprocessableEntity)
		return
	}

	cat, err := h.categoryService.Create(*req.Type)
	if errors.Is(err, services.ErrInvalidCategory) {
		abortWithError(c, http.StatusUnprocessableEntity)
		return
	}
	if err != nil {
		// Insert failures answer 405; existing clients depend on it.
		h.log.Error("create category", zap.Error(err))
		abortWithError(c, http.StatusMethodNotAllowed)
		return
	}

	h.log.Info("category created", zap.Uint("id", cat.ID), zap.String("type", cat.Type))
	c.JSON(http.StatusOK, CreatedResponse{Success: true, Created: cat.ID})
}
