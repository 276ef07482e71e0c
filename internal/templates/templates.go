package templates

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"github.com/vango-dev/htmlbuilder/internal/errors"
)

// Config contains template configuration.
type Config struct {
	// Title is the page title.
	Title string

	// Description is the meta description.
	Description string

	// Bucket is written to publish.bucket when set.
	Bucket string
}

// Template represents a project template.
type Template struct {
	// Name is the template name.
	Name string

	// Description describes the template.
	Description string

	// Document is the relative path of the starter document.
	Document string

	// Files is a map of relative paths to file contents.
	Files map[string]string
}

// funcs are available inside templates. quote emits a JSON string
// literal, which is also a valid YAML double-quoted scalar.
var funcs = template.FuncMap{
	"quote": func(s string) (string, error) {
		b, err := json.Marshal(s)
		return string(b), err
	},
}

var templates = map[string]*Template{
	"yaml": yamlTemplate(),
	"json": jsonTemplate(),
}

// Get returns a template by name.
func Get(name string) (*Template, error) {
	tmpl, ok := templates[name]
	if !ok {
		return nil, errors.New(errors.CodeTemplateNotFound).
			WithDetail("Template '" + name + "' not found").
			WithSuggestion("Available templates: json, yaml")
	}
	return tmpl, nil
}

// List returns all available template names, sorted.
func List() []string {
	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Create writes the template's files into dir. Existing files are an error
// unless force is set; nothing is written in that case.
func (t *Template) Create(dir string, cfg Config, force bool) error {
	if cfg.Title == "" {
		cfg.Title = "Hello"
	}

	rendered := make(map[string][]byte, len(t.Files))
	for relPath, content := range t.Files {
		tmpl, err := template.New(relPath).Funcs(funcs).Parse(content)
		if err != nil {
			return errors.Newf(errors.CategoryCLI, "invalid template %s: %v", relPath, err)
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, cfg); err != nil {
			return errors.Newf(errors.CategoryCLI, "template execute error %s: %v", relPath, err)
		}

		fullPath := filepath.Join(dir, relPath)
		if !force {
			if _, err := os.Stat(fullPath); err == nil {
				return errors.New(errors.CodeFileExists).
					WithDetail(fullPath).
					WithSuggestion("Use --force to overwrite")
			}
		}
		rendered[fullPath] = buf.Bytes()
	}

	for fullPath, data := range rendered {
		if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			return err
		}
		if err := os.WriteFile(fullPath, data, 0644); err != nil {
			return err
		}
	}

	return nil
}

const configFile = `{
  "document": "{{.Document}}",
  "render": {
    "pretty": true,
    "doctype": true
  },
  "preview": {
    "host": "localhost",
    "port": 4000
  }{{if .Bucket}},
  "publish": {
    "bucket": {{quote .Bucket}}
  }{{end}}
}
`

func yamlTemplate() *Template {
	return &Template{
		Name:        "yaml",
		Description: "A starter page described in YAML",
		Document:    "page.yaml",
		Files: map[string]string{
			"htmlbuilder.json": withDocument(configFile, "page.yaml"),
			"page.yaml": `tag: html
attrs:
  lang: en
children:
  - tag: head
    children:
      - tag: meta
        attrs:
          charset: utf-8
      - tag: meta
        attrs:
          name: description
          content: {{quote .Description}}
      - tag: title
        children: [{{quote .Title}}]
  - tag: body
    children:
      - tag: main
        style:
          max-width: 40em
          margin: 0 auto
        children:
          - tag: h1
            children: [{{quote .Title}}]
          - tag: p
            class: [lead]
            children:
              - "Edit page.yaml and the preview reloads."
`,
		},
	}
}

func jsonTemplate() *Template {
	return &Template{
		Name:        "json",
		Description: "A starter page described in JSON",
		Document:    "page.json",
		Files: map[string]string{
			"htmlbuilder.json": withDocument(configFile, "page.json"),
			"page.json": `{
  "tag": "html",
  "attrs": {"lang": "en"},
  "children": [
    {"tag": "head", "children": [
      {"tag": "meta", "attrs": {"charset": "utf-8"}},
      {"tag": "meta", "attrs": {"name": "description", "content": {{quote .Description}}}},
      {"tag": "title", "children": [{{quote .Title}}]}
    ]},
    {"tag": "body", "children": [
      {"tag": "main", "style": {"max-width": "40em", "margin": "0 auto"}, "children": [
        {"tag": "h1", "children": [{{quote .Title}}]},
        {"tag": "p", "class": ["lead"], "children": ["Edit page.json and the preview reloads."]}
      ]}
    ]}
  ]
}
`,
		},
	}
}

// withDocument fills the document name, which is fixed per template
// rather than a user variable.
func withDocument(content, document string) string {
	return strings.Replace(content, "{{.Document}}", document, 1)
}
