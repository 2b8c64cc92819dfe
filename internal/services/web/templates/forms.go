package templates

import "strings"

// FieldErrors maps form field names to localized error messages. The empty
// key holds errors not tied to one field.
type FieldErrors map[string]string

// Get returns the message for field.
func (e FieldErrors) Get(field string) string {
	if e == nil {
		return ""
	}
	return strings.TrimSpace(e[field])
}

// Option is one choice of a select field.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

type inputField struct {
	Name         string
	Label        string
	Type         string
	Value        string
	Help         string
	Autocomplete string
	Required     bool
	Error        string
}

type selectField struct {
	Name     string
	Label    string
	Help     string
	Options  []Option
	Multiple bool
	Error    string
}

type textareaField struct {
	Name     string
	Label    string
	Value    string
	Rows     string
	Required bool
	Error    string
}

func fieldID(name string) string {
	return "id_" + name
}

func (m *markup) fieldStart(name, label, errMsg string) {
	class := "field"
	if errMsg != "" {
		class += " field-invalid"
	}
	m.open("div", at("class", class))
	m.elem("label", label, at("for", fieldID(name)))
}

func (m *markup) fieldEnd(name, help, errMsg string) {
	if help != "" {
		m.elem("p", help, at("class", "help"))
	}
	if errMsg != "" {
		m.elem("p", errMsg, at("class", "error"), at("id", fieldID(name)+"_error"))
	}
	m.close("div")
}

func (m *markup) input(f inputField) {
	typ := f.Type
	if typ == "" {
		typ = "text"
	}
	m.fieldStart(f.Name, f.Label, f.Error)
	attrs := []attr{
		at("type", typ),
		at("id", fieldID(f.Name)),
		at("name", f.Name),
		at("value", f.Value),
		flag("required", f.Required),
	}
	if f.Error != "" {
		attrs = append(attrs, at("aria-invalid", "true"))
	}
	if f.Autocomplete != "" {
		attrs = append(attrs, at("autocomplete", f.Autocomplete))
	}
	m.open("input", attrs...)
	m.fieldEnd(f.Name, f.Help, f.Error)
}

func (m *markup) selectInput(f selectField) {
	m.fieldStart(f.Name, f.Label, f.Error)
	m.open("select", at("id", fieldID(f.Name)), at("name", f.Name), flag("multiple", f.Multiple))
	for _, option := range f.Options {
		m.elem("option", option.Label, at("value", option.Value), flag("selected", option.Selected))
	}
	m.close("select")
	m.fieldEnd(f.Name, f.Help, f.Error)
}

func (m *markup) textarea(f textareaField) {
	rows := f.Rows
	if rows == "" {
		rows = "6"
	}
	m.fieldStart(f.Name, f.Label, f.Error)
	m.elem("textarea", f.Value,
		at("id", fieldID(f.Name)),
		at("name", f.Name),
		at("rows", rows),
		flag("required", f.Required),
	)
	m.fieldEnd(f.Name, "", f.Error)
}

func (m *markup) formError(errs FieldErrors) {
	if msg := errs.Get(""); msg != "" {
		m.elem("p", msg, at("class", "form-error"), at("role", "alert"))
	}
}

func (m *markup) submit(label string) {
	m.open("div", at("class", "actions"))
	m.elem("button", label, at("type", "submit"), at("class", "button primary"))
	m.close("div")
}
