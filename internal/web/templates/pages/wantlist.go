package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/jtarrant/wanttogo/internal/model"
	"github.com/jtarrant/wanttogo/internal/web/templates/layout"
)

// WantListData holds data for the want-to-go list page
type WantListData struct {
	layout.PageData
	Items []model.Destination
	Error string
}

// WantList renders the user's want-to-go list
func WantList(data WantListData) templ.Component {
	content := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<h1>My Want-to-Go list</h1>`); err != nil {
			return err
		}
		if data.Error != "" {
			if _, err := fmt.Fprintf(w, `<p class="error">%s</p>`,
				templ.EscapeString(data.Error)); err != nil {
				return err
			}
		}
		if len(data.Items) == 0 {
			_, err := io.WriteString(w,
				`<p class="empty">Nothing on your list yet. <a href="/home">Browse destinations</a>.</p>`)
			return err
		}
		if _, err := io.WriteString(w, `<ul class="wantlist">`); err != nil {
			return err
		}
		for _, item := range data.Items {
			if _, err := fmt.Fprintf(w, `<li><a href="%s">%s</a></li>`,
				templ.EscapeString(item.Path),
				templ.EscapeString(item.Name)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</ul>`)
		return err
	})
	return layout.Base(data.PageData, content)
}

// DestinationData holds data for a single destination page
type DestinationData struct {
	layout.PageData
	Destination model.Destination
	OnList      bool
}

// Destination renders a destination page
func Destination(data DestinationData) templ.Component {
	content := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		d := data.Destination
		if _, err := fmt.Fprintf(w,
			`<article class="destination"><h1>%s</h1>`+
				`<img src="/static/images/%s.jpg" alt="%s">`,
			templ.EscapeString(d.Name),
			templ.EscapeString(string(d.Code)),
			templ.EscapeString(d.Name)); err != nil {
			return err
		}
		if data.OnList {
			if _, err := io.WriteString(w,
				`<p class="on-list">Already on your <a href="/wanttogo">Want-to-Go list</a>.</p>`); err != nil {
				return err
			}
		} else {
			if _, err := fmt.Fprintf(w,
				`<form method="post" action="/wanttogo">`+
					`<input type="hidden" name="place" value="%s">`+
					`<button type="submit">Add to my Want-to-Go list</button>`+
					`</form>`,
				templ.EscapeString(string(d.Code))); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</article>`)
		return err
	})
	return layout.Base(data.PageData, content)
}
