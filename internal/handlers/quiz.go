package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/vdoan98/trivia-web-application/internal/metrics"
	"github.com/vdoan98/trivia-web-application/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type QuizHandler struct {
	quizService *services.QuizService
	metrics     *metrics.Metrics
	log         *zap.Logger
}

func NewQuizHandler(quizService *services.QuizService, m *metrics.Metrics, log *zap.Logger) *QuizHandler {
	return &QuizHandler{quizService: quizService, metrics: m, log: log}
}

// QuizCategory.ID is 0 for "all categories". Clients send it either as a
// number or as the string key of the categories map.
type QuizCategory struct {
	ID json.Number `json:"id" swaggertype:"integer" example:"4"`
}

type NextQuestionRequest struct {
	PreviousQuestions []uint        `json:"previous_questions" example:"5,9"`
	QuizCategory      *QuizCategory `json:"quiz_category"`
}

type NextQuestionResponse struct {
	Success  bool          `json:"success" example:"true"`
	Question *QuestionView `json:"question"`
}

// NextQuestion godoc
// @Summary      Next quiz question
// @Description  A random question outside previous_questions, optionally within one category. question is null once every eligible question was played.
// @Tags         quizzes
// @Accept       json
// @Produce      json
// @Param        request body NextQuestionRequest true "Quiz state"
// @Success      200 {object} NextQuestionResponse
// @Failure      422 {object} ErrorResponse
// @Router       /quizzes [post]
func (h *QuizHandler) NextQuestion(c *gin.Context) {
	var req NextQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.QuizCategory == nil {
		abortWithError(c, http.StatusUnprocessableEntity)
		return
	}

	categoryID, err := req.QuizCategory.ID.Int64()
	if err != nil || categoryID < 0 {
		abortWithError(c, http.StatusUnprocessableEntity)
		return
	}

	question, err := h.quizService.Next(uint(categoryID), req.PreviousQuestions)
	if err != nil {
		h.log.Error("next quiz question", zap.Int64("category", categoryID), zap.Error(err))
		abortWithError(c, http.StatusUnprocessableEntity)
		return
	}

	resp := NextQuestionResponse{Success: true}
	if question != nil {
		view := question.Format()
		resp.Question = &view
		h.metrics.QuizServed.WithLabelValues(metrics.OutcomeQuestion).Inc()
	} else {
		h.metrics.QuizServed.WithLabelValues(metrics.OutcomeExhausted).Inc()
	}

	c.JSON(http.StatusOK, resp)
}
