package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/jtarrant/wanttogo/internal/web/templates/layout"
)

// LoginData holds data for the login page
type LoginData struct {
	layout.PageData
	Error    string
	Username string // preserved form value after a failed attempt
}

// Login renders the login page
func Login(data LoginData) templ.Component {
	content := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<h1>Log in</h1>`); err != nil {
			return err
		}
		if err := formError(w, data.Error); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w,
			`<form method="post" action="/login" class="auth-form">`+
				`<label>Username <input type="text" name="username" value="%s"></label>`+
				`<label>Password <input type="password" name="password"></label>`+
				`<button type="submit">Log in</button>`+
				`</form>`+
				`<p>No account yet? <a href="/registration">Register</a></p>`,
			templ.EscapeString(data.Username))
		return err
	})
	return layout.Base(data.PageData, content)
}

// RegisterData holds data for the registration page
type RegisterData struct {
	layout.PageData
	Error    string
	Username string
}

// Register renders the registration page
func Register(data RegisterData) templ.Component {
	content := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<h1>Register</h1>`); err != nil {
			return err
		}
		if err := formError(w, data.Error); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w,
			`<form method="post" action="/register" class="auth-form">`+
				`<label>Username <input type="text" name="username" value="%s"></label>`+
				`<label>Password <input type="password" name="password"></label>`+
				`<button type="submit">Register</button>`+
				`</form>`+
				`<p>Already registered? <a href="/login">Log in</a></p>`,
			templ.EscapeString(data.Username))
		return err
	})
	return layout.Base(data.PageData, content)
}

// formError writes a styled error paragraph, or nothing when msg is empty
func formError(w io.Writer, msg string) error {
	if msg == "" {
		return nil
	}
	_, err := fmt.Fprintf(w, `<p class="error">%s</p>`, templ.EscapeString(msg))
	return err
}
