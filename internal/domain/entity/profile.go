// Package entity contains the core business objects of the project.
package entity

import "slices"

// CreditScore represents the coarse credit bands collected by the quiz.
type CreditScore string

const (
	CreditExcellent CreditScore = "excellent"
	CreditGood      CreditScore = "good"
	CreditFair      CreditScore = "fair"
	CreditPoor      CreditScore = "poor"
	CreditVeryPoor  CreditScore = "verypoor"
)

// String returns the string representation of the CreditScore.
func (c CreditScore) String() string {
	return string(c)
}

// IsValid checks if the CreditScore is a known band.
func (c CreditScore) IsValid() bool {
	return slices.Contains([]CreditScore{
		CreditExcellent, CreditGood, CreditFair, CreditPoor, CreditVeryPoor,
	}, c)
}

// Lifestyle captures the vehicle-preference half of the quiz. The quiz form
// submits numbers as strings, so Seats stays a string here and is parsed where
// it is consumed.
type Lifestyle struct {
	CarColor    string   `json:"carColor"`
	Seats       string   `json:"seats"`
	Range       string   `json:"range"` // short, medium or long.
	Accessories []string `json:"accessories"`
}
