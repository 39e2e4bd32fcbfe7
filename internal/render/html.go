package render

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"regexp"
	"strings"

	"camscrape/lib/scrapers/cambridge"
)

const entryTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Cambridge: {{.Word}}</title>
  {{if .CSSPath}}<link rel="stylesheet" href="{{.CSSPath}}">{{else}}<style>{{.InlineCSS}}</style>{{end}}
</head>
<body>
  <div class="card">
    <div class="header">
      <div class="word">{{.Word}}</div>
      {{if .URL}}<div class="meta"><a href="{{.URL}}">{{.URL}}</a></div>{{end}}
    </div>
    <div class="pron">
      {{- range .Pronunciations}}
      <span>{{.Region}}: {{.Text}}</span>
      {{- end}}
    </div>
    <div class="section">
      <div class="section-title">Definitions</div>
      <ul class="definitions">
        {{- range .Definitions}}
        <li class="definition">
          <div class="definition-header">
            <span class="definition-index">{{.Index}}</span>
            {{- range .Tags}}<span class="tag">{{.}}</span>{{end}}
          </div>
          <div class="definition-text">{{.Text}}</div>
        </li>
        {{- else}}
        <li class="definition"><div class="definition-text">No definitions found.</div></li>
        {{- end}}
      </ul>
    </div>
    <div class="section">
      <div class="section-title">Images</div>
      <div class="media">
        {{- if .Thumb}}
        <img src="{{.Thumb}}" alt="Thumbnail">
        {{- end}}
        {{- if and .Image (ne .Image .Thumb)}}
        <img src="{{.Image}}" alt="Image">
        {{- end}}
        {{- if not (or .Thumb .Image)}}
        <div class="meta">No images available.</div>
        {{- end}}
      </div>
    </div>
    <div class="footer">Generated by camscrape</div>
  </div>
</body>
</html>
`

var entryTmpl = template.Must(template.New("entry").Parse(entryTemplate))

var (
	tagPrefixRegex = regexp.MustCompile(`^((?:\[[^\]]+\]\s*)+)(?s)(.*)$`)
	tagRegex       = regexp.MustCompile(`\[([^\]]+)\]`)
)

type pronunciationView struct {
	Region string
	Text   string
}

type definitionView struct {
	Index string
	Tags  []string
	Text  string
}

type entryView struct {
	Word           string
	URL            string
	Pronunciations []pronunciationView
	Definitions    []definitionView
	Image          string
	Thumb          string
	CSSPath        string
	InlineCSS      template.CSS
}

// splitTags peels the leading "[tag] [tag] ..." prefix off a definition
// so tags can be rendered as chips separate from the body text.
func splitTags(definition string) ([]string, string) {
	groups := tagPrefixRegex.FindStringSubmatch(definition)
	if groups == nil {
		return nil, strings.TrimSpace(definition)
	}
	matches := tagRegex.FindAllStringSubmatch(groups[1], -1)
	tags := make([]string, len(matches))
	for i, m := range matches {
		tags[i] = m[1]
	}
	return tags, strings.TrimSpace(groups[2])
}

func toView(e cambridge.Entry, cssPath string) entryView {
	view := entryView{
		Word:      e.Word,
		URL:       e.URL,
		Image:     e.Image,
		Thumb:     e.Thumb,
		CSSPath:   cssPath,
		InlineCSS: template.CSS(DefaultCSS),
	}
	for _, region := range []cambridge.Region{cambridge.RegionAmE, cambridge.RegionBrE} {
		pron, ok := e.Pronunciation[region]
		if !ok {
			continue
		}
		view.Pronunciations = append(view.Pronunciations, pronunciationView{
			Region: string(region),
			Text:   pron,
		})
	}
	for i, definition := range e.Definitions {
		tags, text := splitTags(definition)
		if text == "" {
			text = "No definition text."
		}
		view.Definitions = append(view.Definitions, definitionView{
			Index: fmt.Sprintf("%02d", i+1),
			Tags:  tags,
			Text:  text,
		})
	}
	return view
}

// HTML renders an Entry to a standalone document. If cssPath is empty
// the stylesheet is inlined, otherwise the document links to it.
func HTML(e cambridge.Entry, cssPath string) ([]byte, error) {
	var buffer bytes.Buffer
	err := entryTmpl.Execute(&buffer, toView(e, cssPath))
	if err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// WriteHTML renders an Entry to htmlPath. A non-empty cssPath also
// writes the stylesheet there and makes the document reference it.
func WriteHTML(e cambridge.Entry, htmlPath, cssPath string) error {
	if cssPath != "" {
		err := os.WriteFile(cssPath, []byte(DefaultCSS), 0644)
		if err != nil {
			return fmt.Errorf("write css %s: %w", cssPath, err)
		}
	}

	document, err := HTML(e, cssPath)
	if err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	err = os.WriteFile(htmlPath, document, 0644)
	if err != nil {
		return fmt.Errorf("write html %s: %w", htmlPath, err)
	}
	return nil
}
