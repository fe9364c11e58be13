package services

import "github.com/yigit/unidash/internal/app/models"

// NoGradeLetter is reported when there is nothing to average
const NoGradeLetter = "N/A"

// Progress summarizes a set of grades
type Progress struct {
	TotalCourses int     `json:"totalCourses"`
	AverageGrade float64 `json:"averageGrade"`
	LetterGrade  string  `json:"letterGrade"`
}

// LetterGrade maps a 0-100 average onto the letter scale.
func LetterGrade(average float64) string {
	for _, band := range models.LetterScale {
		if average >= band.Min {
			return band.Letter
		}
	}
	return models.LetterScale[len(models.LetterScale)-1].Letter
}

// Summarize counts and averages the grades and maps the average to a letter.
func Summarize(grades []models.Grade) Progress {
	if len(grades) == 0 {
		return Progress{LetterGrade: NoGradeLetter}
	}

	var sum float64
	for _, g := range grades {
		sum += g.NumericGrade
	}
	avg := sum / float64(len(grades))

	return Progress{
		TotalCourses: len(grades),
		AverageGrade: avg,
		LetterGrade:  LetterGrade(avg),
	}
}
