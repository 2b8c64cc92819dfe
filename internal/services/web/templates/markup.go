package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// attr is one HTML attribute. Flag attributes render without a value and are
// omitted when off.
type attr struct {
	name  string
	value string
	flag  bool
	on    bool
}

func at(name, value string) attr {
	return attr{name: name, value: value}
}

func href(url string) attr {
	return attr{name: "href", value: string(templ.URL(url))}
}

func flag(name string, on bool) attr {
	return attr{name: name, flag: true, on: on}
}

// markup writes escaped HTML and keeps the first write error.
type markup struct {
	w   io.Writer
	err error
}

func component(fn func(ctx context.Context, m *markup)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := &markup{w: w}
		fn(ctx, m)
		return m.err
	})
}

func (m *markup) raw(s string) {
	if m.err != nil {
		return
	}
	_, m.err = io.WriteString(m.w, s)
}

func (m *markup) text(s string) {
	m.raw(templ.EscapeString(s))
}

func (m *markup) open(tag string, attrs ...attr) {
	m.raw("<" + tag)
	for _, a := range attrs {
		if a.flag {
			if a.on {
				m.raw(" " + a.name)
			}
			continue
		}
		m.raw(" " + a.name + "=\"" + templ.EscapeString(a.value) + "\"")
	}
	m.raw(">")
}

func (m *markup) close(tag string) {
	m.raw("</" + tag + ">")
}

// elem writes an element holding only escaped text.
func (m *markup) elem(tag, text string, attrs ...attr) {
	m.open(tag, attrs...)
	m.text(text)
	m.close(tag)
}

func (m *markup) render(ctx context.Context, c templ.Component) {
	if m.err != nil || c == nil {
		return
	}
	m.err = c.Render(ctx, m.w)
}

// children renders the component children carried by ctx.
func (m *markup) children(ctx context.Context) {
	children := templ.GetChildren(ctx)
	m.render(templ.ClearChildren(ctx), children)
}
