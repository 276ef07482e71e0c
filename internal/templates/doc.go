// Package templates provides project scaffolding templates.
//
// A template is a small set of files, an htmlbuilder.json and a starter
// document, used by "htmlbuilder init".
//
// # Available Templates
//
//   - yaml: a YAML document with the config file
//   - json: the same page described in JSON
//
// # Usage
//
//	tmpl, err := templates.Get("yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := tmpl.Create(dir, templates.Config{Title: "My site"}, false); err != nil {
//	    log.Fatal(err)
//	}
//
// # Template Variables
//
//	{{.Title}}        - page title
//	{{.Description}}  - meta description
//	{{.Bucket}}       - publish bucket, may be empty
package templates
