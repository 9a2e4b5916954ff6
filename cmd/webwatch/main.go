// Package main provides the entry point for the webwatch CLI.
//
// Webwatch monitors web pages for changes. It keeps a watch list of URLs
// in a SQLite database, periodically fetches each page, and archives the
// previous version whenever the content hash changes.
//
// Usage:
//
//	webwatch run --add https://example.com/news
//	webwatch run
//	webwatch history https://example.com/news
//
// See --help for all available options.
package main

// main is the entry point for webwatch.
func main() {
	Execute()
}
