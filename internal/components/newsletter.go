package components

import (
	"context"
	"html/template"
	"io"

	"github.com/3-lines-studio/folio/internal/types"
)

const (
	DefaultNewsletterTitle = "Subscribe to the newsletter"
	DefaultNewsletterAPI   = "/api/newsletter"
)

var newsletterTemplate = template.Must(template.New("newsletter").Parse(
	`<div class="newsletter">` +
		`<div class="newsletter-title">{{.Title}}</div>` +
		`<form class="newsletter-form" action="{{.API}}" method="post">` +
		`<label for="email-input" class="sr-only">Email address</label>` +
		`<input type="email" id="email-input" name="email" autocomplete="email" placeholder="Enter your email" required />` +
		`<button type="submit">Sign up</button>` +
		`</form></div>`))

type newsletterData struct {
	Title string
	API   string
}

type NewsletterForm struct {
	api string
}

func NewNewsletterForm(api string) *NewsletterForm {
	if api == "" {
		api = DefaultNewsletterAPI
	}
	return &NewsletterForm{api: api}
}

func (c *NewsletterForm) Render(ctx context.Context, w io.Writer, props types.Props) error {
	data := newsletterData{
		Title: props.String("title"),
		API:   props.String("apiUrl"),
	}
	if data.Title == "" {
		data.Title = DefaultNewsletterTitle
	}
	if data.API == "" {
		data.API = c.api
	}
	return newsletterTemplate.Execute(w, data)
}
