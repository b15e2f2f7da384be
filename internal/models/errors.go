package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrAmountNegative = errors.New("amounts must be zero or positive")
	ErrMemberRequired = errors.New("a member name must be set")
	ErrTitleRequired  = errors.New("a title must be set")

	ErrInvalidExpenseCategory = errors.New("the expense category is not valid")
	ErrInvalidInvestmentType  = errors.New("the investment type is not valid")
	ErrInvalidActivityType    = errors.New("the activity type is not valid")
	ErrInvalidFundName        = errors.New("the fund name must be 'emergency' or 'vacation'")

	ErrMemberNameNotUnique = errors.New("this member name is already in use")
	ErrEmailNotUnique      = errors.New("an account with this email already exists")
)
