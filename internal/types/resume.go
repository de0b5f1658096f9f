// Package types provides type definitions for structured data used throughout the resume-review system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Top-level résumé fields, as they appear as the first token of a path.
const (
	FieldPersonalInfo   = "personalInfo"
	FieldSkills         = "skills"
	FieldWorkExperience = "workExperience"
	FieldEducation      = "education"
	FieldProjects       = "projects"
	FieldAwards         = "awards"
)

// Resume is the typed form of a résumé document
type Resume struct {
	PersonalInfo   PersonalInfo     `json:"personalInfo"`
	Skills         []string         `json:"skills" validate:"dive,required"`
	WorkExperience []WorkExperience `json:"workExperience" validate:"dive"`
	Education      []Education      `json:"education" validate:"dive"`
	Projects       []Project        `json:"projects" validate:"dive"`
	Awards         []Award          `json:"awards" validate:"dive"`
}

// PersonalInfo holds the candidate's contact record
type PersonalInfo struct {
	Name    string `json:"name" validate:"required"`
	Title   string `json:"title"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// WorkExperience represents one position held
type WorkExperience struct {
	ID               string   `json:"id" validate:"required"`
	Company          string   `json:"company" validate:"required"`
	Position         string   `json:"position"`
	StartDate        string   `json:"startDate"`
	EndDate          string   `json:"endDate"`
	Responsibilities []string `json:"responsibilities"`
}

// Education represents one degree or program
type Education struct {
	ID          string `json:"id" validate:"required"`
	Institution string `json:"institution" validate:"required"`
	Degree      string `json:"degree"`
	Field       string `json:"field,omitempty"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
}

// Project represents a personal or professional project
type Project struct {
	ID               string   `json:"id" validate:"required"`
	Name             string   `json:"name" validate:"required"`
	Description      string   `json:"description,omitempty"`
	Responsibilities []string `json:"responsibilities,omitempty"`
	TechStack        []string `json:"techStack,omitempty"`
}

// Award represents an award or honor
type Award struct {
	ID     string `json:"id" validate:"required"`
	Title  string `json:"title" validate:"required"`
	Issuer string `json:"issuer,omitempty"`
	Date   string `json:"date,omitempty"`
}

// Validate validates the Resume using the validator.
func (r *Resume) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// ResumeFromDocument converts a generic document back into a Resume.
// Fields the Resume does not model are dropped.
func ResumeFromDocument(doc any) (*Resume, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal resume document: %w", err)
	}
	var r Resume
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("document is not a resume: %w", err)
	}
	return &r, nil
}
