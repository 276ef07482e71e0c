// Package publish uploads rendered documents to S3.
//
// The publisher depends only on the PutObject call, so tests and other
// S3-compatible stores can supply their own client:
//
//	pub, err := publish.NewFromEnvironment(ctx, publish.Config{Bucket: "site"}, "eu-west-1")
//	res, err := pub.PublishElement(ctx, "index.html", root, renderer)
package publish
