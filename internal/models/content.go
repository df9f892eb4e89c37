package models

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Kind names one of the four editable content kinds.
type Kind string

const (
	KindGallery Kind = "gallery"
	KindNews    Kind = "news"
	KindToggle  Kind = "toggle"
	KindBanner  Kind = "banner"
)

// Kinds lists every content kind in the order transitions walk them.
var Kinds = []Kind{KindGallery, KindNews, KindToggle, KindBanner}

// MissingPolicy says what a GET does when a kind has no document yet.
type MissingPolicy int

const (
	MissingCreate MissingPolicy = iota // lazily create an empty document
	MissingEmpty                       // answer with an empty value, store nothing
	MissingNotFound                    // answer 404
)

// MissingPolicies is the per-kind GET policy. Gallery and toggle are created on
// first read, banner is reported as not found.
var MissingPolicies = map[Kind]MissingPolicy{
	KindGallery: MissingCreate,
	KindNews:    MissingEmpty,
	KindToggle:  MissingCreate,
	KindBanner:  MissingNotFound,
}

// Document is implemented by every singleton content document.
type Document interface {
	Kind() Kind
	DocID() bson.ObjectID
}

type GalleryDoc struct {
	ID            bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	GalleryImages []string      `bson:"galleryImages" json:"galleryImages"`
}

func (d *GalleryDoc) Kind() Kind           { return KindGallery }
func (d *GalleryDoc) DocID() bson.ObjectID { return d.ID }

type NewsItem struct {
	ID          bson.ObjectID `bson:"_id" json:"_id"`
	Title       string        `bson:"title" json:"title"`
	Description string        `bson:"description" json:"description"`
	Category    string        `bson:"category" json:"category"`
	ImageURL    string        `bson:"imageUrl" json:"imageUrl"`
	Month       string        `bson:"month" json:"month"`
	Year        int           `bson:"year" json:"year"`
}

type NewsDoc struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	NewsItems []NewsItem    `bson:"newsItems" json:"newsItems"`
}

func (d *NewsDoc) Kind() Kind           { return KindNews }
func (d *NewsDoc) DocID() bson.ObjectID { return d.ID }

// Item returns the news item with the given id.
func (d *NewsDoc) Item(id bson.ObjectID) (NewsItem, bool) {
	for _, it := range d.NewsItems {
		if it.ID == id {
			return it, true
		}
	}
	return NewsItem{}, false
}

type ToggleDoc struct {
	ID       bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	IsActive bool          `bson:"isActive" json:"isActive"`
}

func (d *ToggleDoc) Kind() Kind           { return KindToggle }
func (d *ToggleDoc) DocID() bson.ObjectID { return d.ID }

// DayMessage is the label the website shows for the toggle state.
func DayMessage(active bool) string {
	if active {
		return "Independence Day"
	}
	return "Normal Day"
}

type BannerDoc struct {
	ID     bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	Images []string      `bson:"images" json:"images"`
}

func (d *BannerDoc) Kind() Kind           { return KindBanner }
func (d *BannerDoc) DocID() bson.ObjectID { return d.ID }

// Content is a snapshot of one namespace. A nil field means the kind has no
// document.
type Content struct {
	Gallery *GalleryDoc
	News    *NewsDoc
	Toggle  *ToggleDoc
	Banner  *BannerDoc
}

// Get returns the document of kind k, or nil.
func (c Content) Get(k Kind) Document {
	switch k {
	case KindGallery:
		if c.Gallery != nil {
			return c.Gallery
		}
	case KindNews:
		if c.News != nil {
			return c.News
		}
	case KindToggle:
		if c.Toggle != nil {
			return c.Toggle
		}
	case KindBanner:
		if c.Banner != nil {
			return c.Banner
		}
	}
	return nil
}

// Set stores doc in the slot matching its kind.
func (c *Content) Set(doc Document) {
	switch d := doc.(type) {
	case *GalleryDoc:
		c.Gallery = d
	case *NewsDoc:
		c.News = d
	case *ToggleDoc:
		c.Toggle = d
	case *BannerDoc:
		c.Banner = d
	}
}

// IsEmpty reports whether no kind has a document.
func (c Content) IsEmpty() bool {
	return c.Gallery == nil && c.News == nil && c.Toggle == nil && c.Banner == nil
}

// Normalize replaces nil slices with empty ones so JSON never carries null arrays.
func Normalize(doc Document) Document {
	switch d := doc.(type) {
	case *GalleryDoc:
		if d.GalleryImages == nil {
			d.GalleryImages = []string{}
		}
	case *NewsDoc:
		if d.NewsItems == nil {
			d.NewsItems = []NewsItem{}
		}
	case *BannerDoc:
		if d.Images == nil {
			d.Images = []string{}
		}
	}
	return doc
}

// Clone deep-copies a document so stores never share slices with callers.
func Clone(doc Document) Document {
	switch d := doc.(type) {
	case *GalleryDoc:
		cp := *d
		cp.GalleryImages = append([]string{}, d.GalleryImages...)
		return &cp
	case *NewsDoc:
		cp := *d
		cp.NewsItems = append([]NewsItem{}, d.NewsItems...)
		return &cp
	case *ToggleDoc:
		cp := *d
		return &cp
	case *BannerDoc:
		cp := *d
		cp.Images = append([]string{}, d.Images...)
		return &cp
	}
	return nil
}
