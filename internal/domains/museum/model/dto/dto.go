package dto

import (
	"maps"
	"museum/internal/domains/museum/model"
	"museum/shared/constant"
)

type GalleriesPage struct {
	Galleries any `json:"galleries"`
}

type GalleryObject struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	PageURL string `json:"page_url"`
	Image   string `json:"image"`
	People  string `json:"people"`
}

type GalleryPage struct {
	GalleryObjects []GalleryObject `json:"gallery_objects"`
	Images         []string        `json:"images"`
	Image1         string          `json:"image1"`
}

type ObjectPage struct {
	Object      map[string]any `json:"object"`
	ObjComments []string       `json:"obj_comments"`
}

func NewGalleriesPage(body any) GalleriesPage {
	return GalleriesPage{
		Galleries: model.RawRecords(body),
	}
}

// NewGalleryPage reshapes a gallery's object listing. Image1 keeps the last full image seen.
func NewGalleryPage(body any) (GalleryPage, error) {
	records, err := model.Records(body)
	if err != nil {
		return GalleryPage{}, err
	}

	page := GalleryPage{
		GalleryObjects: make([]GalleryObject, 0, len(records)),
		Images:         []string{},
	}

	for _, raw := range records {
		record, err := model.AsRecord(raw)
		if err != nil {
			return GalleryPage{}, err
		}

		image := constant.NoImage
		if url, ok := record.PrimaryImageURL(); ok {
			image = url + constant.ThumbnailQuery
			page.Image1 = url
			page.Images = append(page.Images, url)
		}

		page.GalleryObjects = append(page.GalleryObjects, GalleryObject{
			ID:      record.String(constant.HarvardFieldID),
			Title:   record.String(constant.HarvardFieldTitle),
			PageURL: record.String(constant.HarvardFieldURL),
			Image:   image,
			People:  JoinPeople(record.PeopleNames()),
		})
	}

	return page, nil
}

// JoinPeople builds the display string for a list of names. It starts from a single space,
// the first name follows it directly and later names are separated by ", ".
func JoinPeople(names []string) string {
	people := constant.PeopleSentinel

	for _, name := range names {
		if people == constant.PeopleSentinel {
			people += name
		} else {
			people += constant.PeopleSep + name
		}
	}

	return people
}

// NewObjectPage copies the object payload and replaces a missing primary image with the placeholder.
func NewObjectPage(body any, comments []string) (ObjectPage, error) {
	record, err := model.AsRecord(body)
	if err != nil {
		return ObjectPage{}, err
	}

	object := maps.Clone(map[string]any(record))

	if url, ok := record.PrimaryImageURL(); ok {
		object[constant.HarvardFieldPrimaryImageURL] = url
	} else {
		object[constant.HarvardFieldPrimaryImageURL] = constant.NoImage
	}

	if comments == nil {
		comments = []string{}
	}

	return ObjectPage{
		Object:      object,
		ObjComments: comments,
	}, nil
}
