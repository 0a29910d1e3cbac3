package service

import "errors"

var (
	ErrSessionNotFound     = errors.New("study session not found")
	ErrTranslationNotFound = errors.New("translation not found")
	ErrBookNotFound        = errors.New("book not found")
	ErrChapterNotFound     = errors.New("chapter not found")
	ErrHomileticsNotFound  = errors.New("homiletics not found")
)
