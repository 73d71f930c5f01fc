package models

import "time"

// Service is one bookable treatment. Category carries the owning group's slug
// and GroupID the numeric key; both are kept in sync on every write path.
// Price is in minor currency units.
type Service struct {
	ID       uint   `gorm:"primaryKey"`
	Slug     string `gorm:"uniqueIndex;not null"`
	Category string `gorm:"index;not null"`
	GroupID  uint   `gorm:"index"`

	NameEn string `gorm:"not null"`
	NameAr string
	NameDe string
	NameTr string

	ShortDescriptionEn string
	ShortDescriptionAr string
	ShortDescriptionDe string
	ShortDescriptionTr string

	LongDescriptionEn string `gorm:"type:text"`
	LongDescriptionAr string `gorm:"type:text"`
	LongDescriptionDe string `gorm:"type:text"`
	LongDescriptionTr string `gorm:"type:text"`

	Duration   int `gorm:"not null"` // minutes
	Price      int `gorm:"not null"` // minor currency units
	ImageURL   string
	ImageLarge string
	// No gorm default tag: gorm drops zero-value fields that carry one on
	// insert, which would silently store inactive rows as active. Every
	// create site sets IsActive explicitly.
	IsActive bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (s *Service) Name() LocalizedText {
	return LocalizedText{En: s.NameEn, Ar: s.NameAr, De: s.NameDe, Tr: s.NameTr}
}

func (s *Service) SetName(t LocalizedText) {
	s.NameEn, s.NameAr, s.NameDe, s.NameTr = t.En, t.Ar, t.De, t.Tr
}

func (s *Service) ShortDescription() LocalizedText {
	return LocalizedText{En: s.ShortDescriptionEn, Ar: s.ShortDescriptionAr, De: s.ShortDescriptionDe, Tr: s.ShortDescriptionTr}
}

func (s *Service) SetShortDescription(t LocalizedText) {
	s.ShortDescriptionEn, s.ShortDescriptionAr, s.ShortDescriptionDe, s.ShortDescriptionTr = t.En, t.Ar, t.De, t.Tr
}

func (s *Service) LongDescription() LocalizedText {
	return LocalizedText{En: s.LongDescriptionEn, Ar: s.LongDescriptionAr, De: s.LongDescriptionDe, Tr: s.LongDescriptionTr}
}

func (s *Service) SetLongDescription(t LocalizedText) {
	s.LongDescriptionEn, s.LongDescriptionAr, s.LongDescriptionDe, s.LongDescriptionTr = t.En, t.Ar, t.De, t.Tr
}

type ServiceResponse struct {
	ID               uint           `json:"id"`
	Slug             string         `json:"slug"`
	Category         string         `json:"category"`
	GroupID          uint           `json:"groupId"`
	Name             LocalizedText  `json:"name"`
	ShortDescription *LocalizedText `json:"shortDescription,omitempty"`
	LongDescription  *LocalizedText `json:"longDescription,omitempty"`
	Duration         int            `json:"duration"`
	Price            int            `json:"price"`
	ImageURL         string         `json:"imageUrl,omitempty"`
	ImageLarge       string         `json:"imageLarge,omitempty"`
	IsActive         bool           `json:"isActive"`
	CreatedAt        time.Time      `json:"createdAt"`
}

func (s *Service) ToResponse() ServiceResponse {
	resp := ServiceResponse{
		ID:         s.ID,
		Slug:       s.Slug,
		Category:   s.Category,
		GroupID:    s.GroupID,
		Name:       s.Name(),
		Duration:   s.Duration,
		Price:      s.Price,
		ImageURL:   s.ImageURL,
		ImageLarge: s.ImageLarge,
		IsActive:   s.IsActive,
		CreatedAt:  s.CreatedAt,
	}
	if short := s.ShortDescription(); !short.IsZero() {
		resp.ShortDescription = &short
	}
	if long := s.LongDescription(); !long.IsZero() {
		resp.LongDescription = &long
	}
	return resp
}
