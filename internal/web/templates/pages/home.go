package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/jtarrant/wanttogo/internal/model"
	"github.com/jtarrant/wanttogo/internal/web/templates/layout"
)

// HomeData holds data for the home page
type HomeData struct {
	layout.PageData
}

// Home renders the home page: categories with their destinations
func Home(data HomeData) templ.Component {
	content := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<h1>Where do you want to go?</h1>`); err != nil {
			return err
		}
		for _, cat := range model.Categories {
			if _, err := fmt.Fprintf(w,
				`<section class="category"><h2><a href="/%s">%s</a></h2><ul class="destinations">`,
				templ.EscapeString(string(cat)), templ.EscapeString(categoryTitle(cat))); err != nil {
				return err
			}
			for _, d := range model.DestinationsInCategory(cat) {
				if err := destinationItem(w, d); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, `</ul></section>`); err != nil {
				return err
			}
		}
		return nil
	})
	return layout.Base(data.PageData, content)
}

// CategoryData holds data for a category browsing page
type CategoryData struct {
	layout.PageData
	Category     model.Category
	Destinations []model.Destination
}

// Category renders a category page listing its destinations
func Category(data CategoryData) templ.Component {
	content := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<h1>%s</h1><ul class="destinations">`,
			templ.EscapeString(categoryTitle(data.Category))); err != nil {
			return err
		}
		for _, d := range data.Destinations {
			if err := destinationItem(w, d); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</ul>`)
		return err
	})
	return layout.Base(data.PageData, content)
}

// destinationItem writes one destination entry with its add-to-list form
func destinationItem(w io.Writer, d model.Destination) error {
	_, err := fmt.Fprintf(w,
		`<li><a href="%s">%s</a>`+
			`<form method="post" action="/wanttogo" class="inline">`+
			`<input type="hidden" name="place" value="%s">`+
			`<button type="submit">Want to go</button>`+
			`</form></li>`,
		templ.EscapeString(d.Path),
		templ.EscapeString(d.Name),
		templ.EscapeString(string(d.Code)))
	return err
}

func categoryTitle(cat model.Category) string {
	switch cat {
	case model.CategoryCities:
		return "Cities"
	case model.CategoryIslands:
		return "Islands"
	case model.CategoryHiking:
		return "Hiking"
	default:
		return string(cat)
	}
}
