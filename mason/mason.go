// Package mason builds hypermedia response documents. Responses carry
// navigational @controls and @namespaces next to the payload, and errors use
// the @error envelope with a profile link.
package mason

import (
	"encoding/json"
	"fmt"
)

// ContentType is the media type of every response body.
const ContentType = "application/vnd.mason+json"

// Namespace is the prefix of application link relations.
const Namespace = "foodmanager"

// LinkRelationsURL documents where the link relations are described.
const LinkRelationsURL = "/food_manager/link-relations/"

// Profile paths for all resources.
const (
	FoodProfile       = "/profiles/food/"
	RecipeProfile     = "/profiles/recipe/"
	IngredientProfile = "/profiles/ingredient/"
	CategoryProfile   = "/profiles/category/"
	NutritionProfile  = "/profiles/nutrition/"
	ErrorProfile      = "/profiles/error/"
)

// Document is a Mason response body under construction.
type Document map[string]any

// New creates a Document with the application namespace declared.
func New() Document {
	d := Document{}
	d.AddNamespace(Namespace, LinkRelationsURL)
	return d
}

// NewError creates a Document carrying the @error envelope and the error
// profile control.
func NewError(title string, details ...string) Document {
	if len(details) == 0 {
		details = []string{title}
	}
	d := Document{
		"@error": map[string]any{
			"@message":  title,
			"@messages": details,
		},
	}
	d.AddControl("profile", ErrorProfile)
	return d
}

// AddNamespace declares where the application's link relations come from.
func (d Document) AddNamespace(ns, uri string) {
	namespaces, ok := d["@namespaces"].(map[string]any)
	if !ok {
		namespaces = map[string]any{}
		d["@namespaces"] = namespaces
	}
	namespaces[ns] = map[string]any{"name": uri}
}

// AddControl adds a control with the given hypermedia properties. The href
// is always set; method, title, encoding and schema come through props.
func (d Document) AddControl(name, href string, props ...map[string]any) {
	controls, ok := d["@controls"].(map[string]any)
	if !ok {
		controls = map[string]any{}
		d["@controls"] = controls
	}
	ctrl := map[string]any{}
	for _, p := range props {
		for k, v := range p {
			ctrl[k] = v
		}
	}
	ctrl["href"] = href
	controls[name] = ctrl
}

// AddControlPost adds a POST control in the application namespace.
func (d Document) AddControlPost(name, title, href string) {
	d.AddControl(Namespace+":"+name, href, map[string]any{
		"method":   "POST",
		"encoding": "json",
		"title":    title,
	})
}

// AddControlPut adds the edit control. Name, method and encoding are fixed.
func (d Document) AddControlPut(title, href string) {
	d.AddControl("edit", href, map[string]any{
		"method":   "PUT",
		"encoding": "json",
		"title":    title,
	})
}

// AddControlDelete adds the delete control in the application namespace.
func (d Document) AddControlDelete(title, href string) {
	d.AddControl(Namespace+":delete", href, map[string]any{
		"method": "DELETE",
		"title":  title,
	})
}

// Envelope flattens a resource's JSON fields onto a new Document with the
// application namespace declared, so controls sit next to the data.
func Envelope(resource any) Document {
	d := New()
	b, err := json.Marshal(resource)
	if err != nil {
		return d
	}
	var fields map[string]any
	if err := json.Unmarshal(b, &fields); err != nil {
		return d
	}
	for k, v := range fields {
		d[k] = v
	}
	return d
}

// Resource hrefs.

func FoodsHref() string { return "/api/foods/" }

func FoodHref(id uint) string { return fmt.Sprintf("/api/foods/%d/", id) }

func RecipesHref() string { return "/api/recipes/" }

func RecipeHref(id uint) string { return fmt.Sprintf("/api/recipes/%d/", id) }

func RecipeIngredientsHref(id uint) string {
	return fmt.Sprintf("/api/recipes/%d/ingredients/", id)
}

func RecipeCategoriesHref(id uint) string {
	return fmt.Sprintf("/api/recipes/%d/categories/", id)
}

func IngredientsHref() string { return "/api/ingredients/" }

func IngredientHref(id uint) string { return fmt.Sprintf("/api/ingredients/%d/", id) }

func CategoriesHref() string { return "/api/categories/" }

func CategoryHref(id uint) string { return fmt.Sprintf("/api/categories/%d/", id) }

func NutritionListHref() string { return "/api/nutritional-info/" }

func NutritionHref(id uint) string { return fmt.Sprintf("/api/nutritional-info/%d/", id) }
