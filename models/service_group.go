package models

import "time"

// ServiceGroup is a display category for services ("Facial Treatments").
// Services reference it by slug; a group with services cannot be deleted.
type ServiceGroup struct {
	ID   uint   `gorm:"primaryKey"`
	Slug string `gorm:"uniqueIndex;not null"`

	NameEn string `gorm:"not null"`
	NameAr string
	NameDe string
	NameTr string

	DescriptionEn string
	DescriptionAr string
	DescriptionDe string
	DescriptionTr string

	DisplayOrder int `gorm:"default:0"`
	// See Service.IsActive for why there is no default tag here.
	IsActive bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (g *ServiceGroup) Name() LocalizedText {
	return LocalizedText{En: g.NameEn, Ar: g.NameAr, De: g.NameDe, Tr: g.NameTr}
}

func (g *ServiceGroup) SetName(t LocalizedText) {
	g.NameEn, g.NameAr, g.NameDe, g.NameTr = t.En, t.Ar, t.De, t.Tr
}

func (g *ServiceGroup) Description() LocalizedText {
	return LocalizedText{En: g.DescriptionEn, Ar: g.DescriptionAr, De: g.DescriptionDe, Tr: g.DescriptionTr}
}

func (g *ServiceGroup) SetDescription(t LocalizedText) {
	g.DescriptionEn, g.DescriptionAr, g.DescriptionDe, g.DescriptionTr = t.En, t.Ar, t.De, t.Tr
}

// ServiceGroupResponse is the wire shape: localized fields nested, never flat.
type ServiceGroupResponse struct {
	ID           uint              `json:"id"`
	Slug         string            `json:"slug"`
	Name         LocalizedText     `json:"name"`
	Description  *LocalizedText    `json:"description,omitempty"`
	DisplayOrder int               `json:"displayOrder"`
	IsActive     bool              `json:"isActive"`
	CreatedAt    time.Time         `json:"createdAt"`
	Services     []ServiceResponse `json:"services,omitempty"`
}

func (g *ServiceGroup) ToResponse() ServiceGroupResponse {
	resp := ServiceGroupResponse{
		ID:           g.ID,
		Slug:         g.Slug,
		Name:         g.Name(),
		DisplayOrder: g.DisplayOrder,
		IsActive:     g.IsActive,
		CreatedAt:    g.CreatedAt,
	}
	if desc := g.Description(); !desc.IsZero() {
		resp.Description = &desc
	}
	return resp
}
