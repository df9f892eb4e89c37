package dto

import (
	"contentflow/internal/models"
)

// Pointer fields tell "missing or null" apart from an empty value.

type GalleryRequest struct {
	GalleryImages *[]string `json:"galleryImages"`
}

type GalleryUpdateResponse struct {
	Message string             `json:"message"`
	Gallery *models.GalleryDoc `json:"gallery"`
}

type NewsItemInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	ImageURL    string `json:"imageUrl"`
	Month       string `json:"month"`
	Year        int    `json:"year"`
}

func (in NewsItemInput) Model() models.NewsItem {
	return models.NewsItem{
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		ImageURL:    in.ImageURL,
		Month:       in.Month,
		Year:        in.Year,
	}
}

type NewsRequest struct {
	NewsItems *[]NewsItemInput `json:"newsItems"`
}

type NewsListResponse struct {
	NewsItems []models.NewsItem `json:"newsItems"`
}

type NewsUpdateResponse struct {
	Message string          `json:"message"`
	News    *models.NewsDoc `json:"news"`
}

type RemoveNewsRequest struct {
	ID string `json:"id"`
}

type ToggleRequest struct {
	IsActive *bool `json:"isActive"`
}

type ToggleResponse struct {
	IsActive bool   `json:"isActive"`
	Message  string `json:"message"`
}

func NewToggleResponse(doc *models.ToggleDoc) ToggleResponse {
	return ToggleResponse{IsActive: doc.IsActive, Message: models.DayMessage(doc.IsActive)}
}

type BannerRequest struct {
	Images *[]string `json:"images"`
}

// AllContentResponse is the aggregate of one tier; missing kinds are empty or false.
type AllContentResponse struct {
	NewsItems     []models.NewsItem `json:"newsItems"`
	GalleryImages []string          `json:"galleryImages"`
	Banner        []string          `json:"banner"`
	Toggle        bool              `json:"toggle"`
}

func NewAllContentResponse(c models.Content) AllContentResponse {
	out := AllContentResponse{
		NewsItems:     []models.NewsItem{},
		GalleryImages: []string{},
		Banner:        []string{},
	}
	if c.News != nil && c.News.NewsItems != nil {
		out.NewsItems = c.News.NewsItems
	}
	if c.Gallery != nil && c.Gallery.GalleryImages != nil {
		out.GalleryImages = c.Gallery.GalleryImages
	}
	if c.Banner != nil && c.Banner.Images != nil {
		out.Banner = c.Banner.Images
	}
	if c.Toggle != nil {
		out.Toggle = c.Toggle.IsActive
	}
	return out
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
