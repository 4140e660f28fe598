// Package layout holds the shared page chrome. Components are written
// directly against templ's runtime API rather than generated from .templ
// sources, so the build has no codegen step.
package layout

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// FlashMessage is a one-shot notification shown at the top of a page
type FlashMessage struct {
	Type    string // "success", "error", "info"
	Message string
}

// PageData holds data common to all pages
type PageData struct {
	Title    string
	Username string // empty when not logged in
	Flash    *FlashMessage
	Message  string // query-string feedback, e.g. "Please log in first"
}

// Base wraps page content in the site chrome: head, nav, flash and feedback
// messages, footer.
func Base(data PageData, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`+
				`<meta name="viewport" content="width=device-width, initial-scale=1">`+
				`<title>%s - Want to Go</title>`+
				`<link rel="stylesheet" href="/static/site.css">`+
				`</head><body>`,
			templ.EscapeString(data.Title)); err != nil {
			return err
		}

		if err := nav(w, data); err != nil {
			return err
		}

		if data.Flash != nil {
			if _, err := fmt.Fprintf(w, `<div class="flash flash-%s">%s</div>`,
				templ.EscapeString(data.Flash.Type),
				templ.EscapeString(data.Flash.Message)); err != nil {
				return err
			}
		}

		if data.Message != "" {
			if _, err := fmt.Fprintf(w, `<p class="message">%s</p>`,
				templ.EscapeString(data.Message)); err != nil {
				return err
			}
		}

		if _, err := io.WriteString(w, `<main>`); err != nil {
			return err
		}
		if err := content.Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `</main>`); err != nil {
			return err
		}

		_, err := io.WriteString(w, `<footer><p>Want to Go - plan your next trip</p></footer></body></html>`)
		return err
	})
}

func nav(w io.Writer, data PageData) error {
	if _, err := io.WriteString(w, `<nav><a href="/home" class="brand">Want to Go</a>`); err != nil {
		return err
	}

	if data.Username != "" {
		_, err := fmt.Fprintf(w,
			`<span class="nav-user">%s</span>`+
				`<a href="/wanttogo">My list</a>`+
				`<form method="post" action="/logout" class="inline"><button type="submit">Log out</button></form>`+
				`</nav>`,
			templ.EscapeString(data.Username))
		return err
	}

	_, err := io.WriteString(w,
		`<a href="/login">Log in</a><a href="/registration">Register</a></nav>`)
	return err
}
