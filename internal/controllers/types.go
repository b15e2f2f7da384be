package controllers

import (
	ez_uuid "github.com/spend-tracker/backend/internal/uuid"
)

type URIID struct {
	ID ez_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

type URIYear struct {
	Year int `uri:"year" binding:"required" example:"2024"` // Four digit year
}

type URIYearMonth struct {
	URIYear
	Month int `uri:"month" binding:"required" example:"7"` // Calendar month, 1-12
}
