package services

import "errors"

var (
	ErrQuestionNotFound = errors.New("question not found")
	ErrInvalidQuestion  = errors.New("question, answer, difficulty and category are required")
	ErrInvalidCategory  = errors.New("category type is required")
)
