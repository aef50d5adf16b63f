package models

type Category struct {
	Key   string `json:"value"`
	Label string `json:"label"`
}

// Selectable prize categories, in display order.
var categories = []Category{
	{Key: "Physics", Label: "Physics"},
	{Key: "Chemistry", Label: "Chemistry"},
	{Key: "Literature", Label: "Literature"},
	{Key: "Peace", Label: "Peace"},
	{Key: "Medicine", Label: "Medicine"},
	{Key: "Economics", Label: "Economics"},
}

var genders = []Category{
	{Key: "male", Label: "Male"},
	{Key: "female", Label: "Female"},
}

const (
	MinYear = 1900
	MaxYear = 2025
)

func Categories() []Category {
	return append([]Category(nil), categories...)
}

func Genders() []Category {
	return append([]Category(nil), genders...)
}

func GetCategory(key string) (Category, bool) {
	for _, c := range categories {
		if c.Key == key {
			return c, true
		}
	}
	return Category{}, false
}
