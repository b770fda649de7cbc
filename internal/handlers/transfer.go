package handlers

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/vdoan98/trivia-web-application/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var csvHeader = []string{"category", "question", "answer", "difficulty"}

type ImportResponse struct {
	Success           bool `json:"success" example:"true"`
	ImportedQuestions int  `json:"imported_questions" example:"12"`
	CreatedCategories int  `json:"created_categories" example:"1"`
}

// ExportQuestions godoc
// @Summary      Export all questions
// @Description  Questions grouped by category type, as JSON (default) or CSV
// @Tags         questions
// @Produce      json
// @Produce      text/csv
// @Param        format query string false "json or csv" Enums(json, csv) default(json)
// @Success      200 {object} services.Catalog
// @Router       /questions/export [get]
func (h *QuestionHandler) ExportQuestions(c *gin.Context) {
	catalog, err := h.questionService.Export()
	if err != nil {
		h.log.Error("export questions", zap.Error(err))
		abortWithError(c, http.StatusInternalServerError)
		return
	}

	if c.DefaultQuery("format", "json") == "csv" {
		c.Header("Content-Type", "text/csv; charset=utf-8")
		c.Header("Content-Disposition", `attachment; filename="trivia.csv"`)
		c.Status(http.StatusOK)

		w := csv.NewWriter(c.Writer)
		w.Write(csvHeader)
		for _, cat := range catalog.Categories {
			for _, q := range cat.Questions {
				w.Write([]string{cat.Type, q.Question, q.Answer, strconv.Itoa(q.Difficulty)})
			}
		}
		for _, q := range catalog.Uncategorized {
			w.Write([]string{"", q.Question, q.Answer, strconv.Itoa(q.Difficulty)})
		}
		w.Flush()
		if err := w.Error(); err != nil {
			h.log.Error("write csv export", zap.Error(err))
		}
		return
	}

	c.Header("Content-Disposition", `attachment; filename="trivia.json"`)
	c.JSON(http.StatusOK, catalog)
}

// ImportQuestions godoc
// @Summary      Import questions
// @Description  Upload a .csv (category,question,answer,difficulty) or a JSON catalog. Categories are matched by type and created when missing.
// @Tags         questions
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "CSV or JSON file"
// @Success      200 {object} ImportResponse
// @Failure      400 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /questions/import [post]
func (h *QuestionHandler) ImportQuestions(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		abortWithError(c, http.StatusBadRequest)
		return
	}
	defer file.Close()

	body, err := io.ReadAll(file)
	if err != nil {
		abortWithError(c, http.StatusBadRequest)
		return
	}

	var catalog services.Catalog
	if strings.HasSuffix(strings.ToLower(header.Filename), ".csv") {
		catalog, err = parseCSV(body)
	} else {
		err = json.Unmarshal(body, &catalog)
	}
	if err != nil {
		h.log.Info("rejected import file", zap.String("file", header.Filename), zap.Error(err))
		abortWithError(c, http.StatusBadRequest)
		return
	}

	result, err := h.questionService.Import(catalog)
	if err != nil {
		if !errors.Is(err, services.ErrInvalidQuestion) && !errors.Is(err, services.ErrInvalidCategory) {
			h.log.Error("import questions", zap.Error(err))
		}
		abortWithError(c, http.StatusUnprocessableEntity)
		return
	}

	h.log.Info("questions imported",
		zap.String("file", header.Filename),
		zap.Int("questions", result.Questions),
		zap.Int("categories", result.Categories),
	)
	c.JSON(http.StatusOK, ImportResponse{
		Success:           true,
		ImportedQuestions: result.Questions,
		CreatedCategories: result.Categories,
	})
}

// parseCSV reads rows of category,question,answer,difficulty after a header
// line. Rows with an empty category land in Uncategorized.
func parseCSV(data []byte) (services.Catalog, error) {
	r := csv.NewReader(strings.NewReader(string(data)))
	r.FieldsPerRecord = len(csvHeader)
	records, err := r.ReadAll()
	if err != nil {
		return services.Catalog{}, fmt.Errorf("invalid CSV: %w", err)
	}
	if len(records) < 2 {
		return services.Catalog{}, fmt.Errorf("CSV must have header + at least 1 row")
	}

	catMap := make(map[string]int)
	var catalog services.Catalog

	for line, row := range records[1:] {
		difficulty, err := strconv.Atoi(strings.TrimSpace(row[3]))
		if err != nil {
			return services.Catalog{}, fmt.Errorf("row %d: invalid difficulty %q", line+2, row[3])
		}
		q := services.CatalogQuestion{
			Question:   strings.TrimSpace(row[1]),
			Answer:     strings.TrimSpace(row[2]),
			Difficulty: difficulty,
		}

		typ := strings.TrimSpace(row[0])
		if typ == "" {
			catalog.Uncategorized = append(catalog.Uncategorized, q)
			continue
		}
		i, ok := catMap[typ]
		if !ok {
			i = len(catalog.Categories)
			catMap[typ] = i
			catalog.Categories = append(catalog.Categories, services.CatalogCategory{Type: typ})
		}
		catalog.Categories[i].Questions = append(catalog.Categories[i].Questions, q)
	}
	return catalog, nil
}
