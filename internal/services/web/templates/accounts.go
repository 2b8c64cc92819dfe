package templates

import (
	"context"

	"github.com/a-h/templ"
	"github.com/louisbranch/translating.space/internal/services/web/routepath"
)

// ProfileView is the combined profile and account form.
type ProfileView struct {
	UILanguages        []Option
	Languages          []Option
	SecondaryLanguages []Option
	FirstName          string
	LastName           string
	Email              string
	Errors             FieldErrors
	Loc                Localizer
}

// ProfilePage renders the profile settings form.
func ProfilePage(view ProfileView) templ.Component {
	return component(func(_ context.Context, m *markup) {
		loc := view.Loc
		m.elem("h1", T(loc, "profile.title"))
		m.open("form", at("method", "post"), at("action", routepath.Profile), at("class", "form"))
		m.formError(view.Errors)

		m.open("fieldset")
		m.elem("legend", T(loc, "profile.section.preferences"))
		m.selectInput(selectField{
			Name:    "language",
			Label:   T(loc, "profile.field.language"),
			Options: view.UILanguages,
			Error:   view.Errors.Get("language"),
		})
		m.selectInput(selectField{
			Name:     "languages",
			Label:    T(loc, "profile.field.languages"),
			Help:     T(loc, "profile.help.languages"),
			Options:  view.Languages,
			Multiple: true,
			Error:    view.Errors.Get("languages"),
		})
		m.selectInput(selectField{
			Name:     "secondary_languages",
			Label:    T(loc, "profile.field.secondary_languages"),
			Help:     T(loc, "profile.help.secondary_languages"),
			Options:  view.SecondaryLanguages,
			Multiple: true,
			Error:    view.Errors.Get("secondary_languages"),
		})
		m.close("fieldset")

		m.open("fieldset")
		m.elem("legend", T(loc, "profile.section.account"))
		m.input(inputField{
			Name:         "first_name",
			Label:        T(loc, "profile.field.first_name"),
			Value:        view.FirstName,
			Autocomplete: "given-name",
			Error:        view.Errors.Get("first_name"),
		})
		m.input(inputField{
			Name:         "last_name",
			Label:        T(loc, "profile.field.last_name"),
			Value:        view.LastName,
			Autocomplete: "family-name",
			Error:        view.Errors.Get("last_name"),
		})
		m.input(inputField{
			Name:         "email",
			Label:        T(loc, "profile.field.email"),
			Type:         "email",
			Value:        view.Email,
			Autocomplete: "email",
			Required:     true,
			Error:        view.Errors.Get("email"),
		})
		m.close("fieldset")

		m.submit(T(loc, "profile.action.save"))
		m.close("form")
	})
}

// LoginView is the sign-in form.
type LoginView struct {
	Username string
	Next     string
	Errors   FieldErrors
	Loc      Localizer
}

// LoginPage renders the sign-in form.
func LoginPage(view LoginView) templ.Component {
	return component(func(_ context.Context, m *markup) {
		loc := view.Loc
		m.elem("h1", T(loc, "login.title"))
		m.open("form", at("method", "post"), at("action", routepath.Login), at("class", "form"))
		m.formError(view.Errors)
		if view.Next != "" {
			m.open("input", at("type", "hidden"), at("name", routepath.NextQueryKey), at("value", view.Next))
		}
		m.input(inputField{
			Name:         "username",
			Label:        T(loc, "login.field.username"),
			Value:        view.Username,
			Autocomplete: "username",
			Required:     true,
			Error:        view.Errors.Get("username"),
		})
		m.input(inputField{
			Name:         "password",
			Label:        T(loc, "login.field.password"),
			Type:         "password",
			Autocomplete: "current-password",
			Required:     true,
			Error:        view.Errors.Get("password"),
		})
		m.submit(T(loc, "login.action.submit"))
		m.close("form")
	})
}

// ContactView is the contact form.
type ContactView struct {
	Subject string
	Name    string
	Email   string
	Content string
	Errors  FieldErrors
	Loc     Localizer
}

// ContactPage renders the contact form.
func ContactPage(view ContactView) templ.Component {
	return component(func(_ context.Context, m *markup) {
		loc := view.Loc
		m.elem("h1", T(loc, "contact.title"))
		m.elem("p", T(loc, "contact.intro"), at("class", "lead"))
		m.open("form", at("method", "post"), at("action", routepath.Contact), at("class", "form"))
		m.formError(view.Errors)
		m.input(inputField{
			Name:     "subject",
			Label:    T(loc, "contact.field.subject"),
			Value:    view.Subject,
			Required: true,
			Error:    view.Errors.Get("subject"),
		})
		m.input(inputField{
			Name:         "name",
			Label:        T(loc, "contact.field.name"),
			Value:        view.Name,
			Autocomplete: "name",
			Required:     true,
			Error:        view.Errors.Get("name"),
		})
		m.input(inputField{
			Name:         "email",
			Label:        T(loc, "contact.field.email"),
			Type:         "email",
			Value:        view.Email,
			Autocomplete: "email",
			Required:     true,
			Error:        view.Errors.Get("email"),
		})
		m.textarea(textareaField{
			Name:     "content",
			Label:    T(loc, "contact.field.content"),
			Value:    view.Content,
			Required: true,
			Error:    view.Errors.Get("content"),
		})
		m.submit(T(loc, "contact.action.send"))
		m.close("form")
	})
}
