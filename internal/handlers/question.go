package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vdoan98/trivia-web-application/internal/models"
	"github.com/vdoan98/trivia-web-application/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type QuestionHandler struct {
	questionService *services.QuestionService
	categoryService *services.CategoryService
	log             *zap.Logger
}

func NewQuestionHandler(questionService *services.QuestionService, categoryService *services.CategoryService, log *zap.Logger) *QuestionHandler {
	return &QuestionHandler{
		questionService: questionService,
		categoryService: categoryService,
		log:             log,
	}
}

// CreateQuestionRequest accepts difficulty and category as JSON numbers or
// numeric strings.
type CreateQuestionRequest struct {
	Question   string      `json:"question" example:"Which house was Hannah Abbott sorted in?"`
	Answer     string      `json:"answer" example:"Hufflepuff"`
	Difficulty json.Number `json:"difficulty" swaggertype:"integer" example:"1"`
	Category   json.Number `json:"category" swaggertype:"integer" example:"5"`
}

type SearchRequest struct {
	SearchTerm string `json:"searchTerm" example:"title"`
}

type QuestionsResponse struct {
	Success         bool            `json:"success" example:"true"`
	Questions       []QuestionView  `json:"questions"`
	Categories      map[uint]string `json:"categories"`
	CurrentCategory *uint           `json:"current_category"`
	TotalQuestions  int             `json:"total_questions" example:"19"`
}

type DeleteQuestionResponse struct {
	Success        bool           `json:"success" example:"true"`
	Deleted        uint           `json:"deleted" example:"4"`
	Questions      []QuestionView `json:"questions"`
	TotalQuestions int            `json:"total_questions" example:"18"`
}

type CreateQuestionResponse struct {
	Success        bool           `json:"success" example:"true"`
	Created        uint           `json:"created" example:"24"`
	Question       []QuestionView `json:"question"`
	TotalQuestions int            `json:"total_questions" example:"20"`
}

type SearchResponse struct {
	Success         bool           `json:"success" example:"true"`
	Questions       []QuestionView `json:"questions"`
	TotalQuestions  int64          `json:"total_questions" example:"19"`
	CurrentCategory []uint         `json:"current_category"`
}

func paginated(questions []models.Question, page int) []QuestionView {
	return services.Paginate(models.FormatQuestions(questions), page)
}

// ListQuestions godoc
// @Summary      List questions
// @Description  Ten questions per page, with all categories
// @Tags         questions
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Success      200 {object} QuestionsResponse
// @Failure      404 {object} ErrorResponse
// @Router       /questions [get]
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	selection, err := h.questionService.List()
	if err != nil {
		h.log.Error("list questions", zap.Error(err))
		abortWithError(c, http.StatusInternalServerError)
		return
	}
	current := paginated(selection, pageParam(c))

	categories, err := h.categoryService.Map()
	if err != nil {
		h.log.Error("list categories", zap.Error(err))
		abortWithError(c, http.StatusInternalServerError)
		return
	}
	if len(current) == 0 {
		abortWithError(c, http.StatusNotFound)
		return
	}

	c.JSON(http.StatusOK, QuestionsResponse{
		Success:        true,
		Questions:      current,
		Categories:     categories,
		TotalQuestions: len(selection),
	})
}

// DeleteQuestion godoc
// @Summary      Delete a question
// @Tags         questions
// @Produce      json
// @Param        id   path  int true  "Question ID"
// @Param        page query int false "Page of the remaining questions" default(1)
// @Success      200 {object} DeleteQuestionResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /questions/{id} [delete]
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	questionID, ok := idParam(c, "id")
	if !ok {
		abortWithError(c, http.StatusBadRequest)
		return
	}

	err := h.questionService.Delete(questionID)
	if errors.Is(err, services.ErrQuestionNotFound) {
		abortWithError(c, http.StatusNotFound)
		return
	}
	if err != nil {
		h.log.Error("delete question", zap.Uint("id", questionID), zap.Error(err))
		abortWithError(c, http.StatusInternalServerError)
		return
	}

	selection, err := h.questionService.List()
	if err != nil {
		h.log.Error("list questions", zap.Error(err))
		abortWithError(c, http.StatusInternalServerError)
		return
	}

	h.log.Info("question deleted", zap.Uint("id", questionID))
	c.JSON(http.StatusOK, DeleteQuestionResponse{
		Success:        true,
		Deleted:        questionID,
		Questions:      paginated(selection, pageParam(c)),
		TotalQuestions: len(selection),
	})
}

// CreateQuestion godoc
// @Summary      Add a question
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        request body CreateQuestionRequest true "Question data"
// @Success      200 {object} CreateQuestionResponse
// @Failure      422 {object} ErrorResponse
// @Router       /questions/add [post]
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusUnprocessableEntity)
		return
	}

	difficulty, err := req.Difficulty.Int64()
	if err != nil {
		abortWithError(c, http.StatusUnprocessableEntity)
		return
	}
	category, err := req.Category.Int64()
	if err != nil {
		abortWithError(c, http.StatusUnprocessableEntity)
		return
	}

	question, err := h.questionService.Create(services.QuestionInput{
		Question:   req.Question,
		Answer:     req.Answer,
		Difficulty: int(difficulty),
		Category:   int(category),
	})
	if err != nil {
		if !errors.Is(err, services.ErrInvalidQuestion) {
			h.log.Error("create question", zap.Error(err))
		}
		abortWithError(c, http.StatusUnprocessableEntity)
		return
	}

	selection, err := h.questionService.List()
	if err != nil {
		h.log.Error("list questions", zap.Error(err))
		abortWithError(c, http.StatusUnprocessableEntity)
		return
	}

	h.log.Info("question created", zap.Uint("id", question.ID), zap.Uint("category", question.Category))
	c.JSON(http.StatusOK, CreateQuestionResponse{
		Success:        true,
		Created:        question.ID,
		Question:       paginated(selection, pageParam(c)),
		TotalQuestions: len(selection),
	})
}

// SearchQuestions godoc
// @Summary      Search questions
// @Description  Case-insensitive substring match on the question text
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        request body SearchRequest true "Search term"
// @Param        page    query int false "Page number" default(1)
// @Success      200 {object} SearchResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /questions/search [post]
func (h *QuestionHandler) SearchQuestions(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest)
		return
	}

	matches, err := h.questionService.Search(req.SearchTerm)
	if err != nil {
		h.log.Error("search questions", zap.String("term", req.SearchTerm), zap.Error(err))
		abortWithError(c, http.StatusInternalServerError)
		return
	}
	if len(matches) == 0 {
		abortWithError(c, http.StatusNotFound)
		return
	}

	total, err := h.questionService.Count()
	if err != nil {
		h.log.Error("count questions", zap.Error(err))
		abortWithError(c, http.StatusInternalServerError)
		return
	}

	current := paginated(matches, pageParam(c))
	currentCategory := make([]uint, 0, len(current))
	for _, q := range current {
		currentCategory = append(currentCategory, q.Category)
	}

	c.JSON(http.StatusOK, SearchResponse{
		Success:         true,
		Questions:       current,
		TotalQuestions:  total,
		CurrentCategory: currentCategory,
	})
}
