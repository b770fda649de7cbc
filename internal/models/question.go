package models

// Question.Category is a plain category id with no foreign key; a question
// can outlive the category it points at.
type Question struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Question   string `gorm:"type:text;not null" json:"question"`
	Answer     string `gorm:"type:text;not null" json:"answer"`
	Category   uint   `gorm:"not null;index" json:"category"`
	Difficulty int    `gorm:"not null" json:"difficulty"`
}

// QuestionView is the JSON shape of a question in every response.
type QuestionView struct {
	ID         uint   `json:"id" example:"5"`
	Question   string `json:"question" example:"Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?"`
	Answer     string `json:"answer" example:"Maya Angelou"`
	Category   uint   `json:"category" example:"4"`
	Difficulty int    `json:"difficulty" example:"2"`
}

func (q Question) Format() QuestionView {
	return QuestionView{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		Category:   q.Category,
		Difficulty: q.Difficulty,
	}
}

func FormatQuestions(questions []Question) []QuestionView {
	out := make([]QuestionView, 0, len(questions))
	for _, q := range questions {
		out = append(out, q.Format())
	}
	return out
}
