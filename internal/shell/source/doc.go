// Package source acquires the deployment document from a local file or from
// a Cloudera Manager deployment endpoint over HTTP, and parses it.
//
// This package is part of the Imperative Shell.
//
// # Usage
//
//	doc, err := source.Load(ctx, source.Options{
//	    URL:      "http://cm.example.com:7180/api/v10/cm/deployment",
//	    Username: "admin",
//	    Password: "admin",
//	}, logger)
package source
