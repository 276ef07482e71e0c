// Package config provides configuration parsing for htmlbuilder projects.
//
// The configuration is stored in htmlbuilder.json at the project root.
// This package handles loading, saving, and validating configuration.
//
// # Configuration File Structure
//
//	{
//	  "document": "page.yaml",
//	  "render": {
//	    "pretty": true,
//	    "doctype": true
//	  },
//	  "preview": {
//	    "host": "localhost",
//	    "port": 4000,
//	    "watchInterval": "300ms"
//	  },
//	  "publish": {
//	    "bucket": "my-site",
//	    "prefix": "pages/",
//	    "region": "eu-west-1",
//	    "cacheControl": "max-age=300"
//	  },
//	  "metrics": {
//	    "namespace": "htmlbuilder"
//	  }
//	}
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(cfg.PreviewAddress()) // localhost:4000
package config
